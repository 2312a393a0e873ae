package problem

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stagealloc/allocation"
)

// Report is a solved problem in presentation form.
type Report struct {
	Name      string        `yaml:"name,omitempty"`
	Direction string        `yaml:"direction"`
	Total     float64       `yaml:"total"`
	Stages    []StageReport `yaml:"stages"`
}

// StageReport is one stage's share of the resource.
type StageReport struct {
	Name     string  `yaml:"name"`
	Level    int     `yaml:"level"`
	Resource float64 `yaml:"resource"`
	Value    float64 `yaml:"value"`
}

// NewReport pairs res with the stage names of p and the normalized values of
// cfg. cfg must be the configuration res was computed from.
func NewReport(p *Problem, cfg *allocation.Config, res allocation.Result) Report {
	names := p.StageNames()
	values := cfg.Values()

	rep := Report{
		Name:      p.Name,
		Direction: cfg.Direction().String(),
		Total:     res.Total,
		Stages:    make([]StageReport, len(res.Indexes)),
	}
	for k, idx := range res.Indexes {
		rep.Stages[k] = StageReport{
			Name:     names[k],
			Level:    idx,
			Resource: res.Allocation[k],
			Value:    values[k][idx],
		}
	}

	return rep
}

// WriteText renders the report as an aligned table.
func (r Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if r.Name != "" {
		fmt.Fprintf(tw, "%s (%s)\n", r.Name, r.Direction)
	} else {
		fmt.Fprintf(tw, "(%s)\n", r.Direction)
	}
	fmt.Fprintln(tw, "STAGE\tLEVEL\tRESOURCE\tVALUE")
	for _, s := range r.Stages {
		fmt.Fprintf(tw, "%s\t%d\t%g\t%g\n", s.Name, s.Level, s.Resource, s.Value)
	}
	fmt.Fprintf(tw, "TOTAL\t\t\t%g\n", r.Total)

	return tw.Flush()
}

// WriteYAML renders the report as a YAML document.
func (r Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("problem: encode report: %w", err)
	}

	return enc.Close()
}
