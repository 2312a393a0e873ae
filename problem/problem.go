package problem

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stagealloc/aggregate"
	"github.com/katalvlaran/stagealloc/allocation"
)

// ErrEmptyDocument indicates a YAML stream without a document.
var ErrEmptyDocument = errors.New("problem: empty document")

// Problem is the YAML form of allocation.Parameters plus stage names.
type Problem struct {
	Name         string    `yaml:"name,omitempty"`
	Direction    string    `yaml:"direction"`
	LeadingZeros bool      `yaml:"leading_zeros,omitempty"`
	Policy       string    `yaml:"policy,omitempty"`
	Aggregate    string    `yaml:"aggregate,omitempty"`
	Levels       []float64 `yaml:"levels"`
	Stages       []Stage   `yaml:"stages"`
}

// Stage is one row of the value matrix.
type Stage struct {
	Name   string    `yaml:"name,omitempty"`
	Values []float64 `yaml:"values"`
}

// Decode reads a single problem document from r.
func Decode(r io.Reader) (*Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Problem
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}

		return nil, fmt.Errorf("problem: decode: %w", err)
	}

	return &p, nil
}

// Load decodes a problem document held in memory.
func Load(data []byte) (*Problem, error) {
	return Decode(bytes.NewReader(data))
}

// LoadFile decodes the problem document stored at path.
func LoadFile(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("problem: read %s: %w", path, err)
	}

	return Load(data)
}

// Parameters converts the document into allocation parameters. Direction,
// policy and aggregate expression are parsed here; the numeric checks are
// left to allocation.NewConfig.
func (p *Problem) Parameters() (*allocation.Parameters, error) {
	dir, err := allocation.ParseDirection(p.Direction)
	if err != nil {
		return nil, fmt.Errorf("problem: direction: %w", err)
	}
	policy, err := allocation.ParseCellPolicy(p.Policy)
	if err != nil {
		return nil, fmt.Errorf("problem: policy: %w", err)
	}

	params := &allocation.Parameters{
		Levels:       p.Levels,
		Values:       make([][]float64, len(p.Stages)),
		Direction:    dir,
		LeadingZeros: p.LeadingZeros,
		Policy:       policy,
	}
	for k, s := range p.Stages {
		params.Values[k] = s.Values
	}
	if p.Aggregate != "" {
		agg, err := aggregate.Compile(p.Aggregate)
		if err != nil {
			return nil, fmt.Errorf("problem: %w", err)
		}
		params.Aggregator = agg
	}

	return params, nil
}

// Config converts and validates the document in one step.
func (p *Problem) Config() (*allocation.Config, error) {
	params, err := p.Parameters()
	if err != nil {
		return nil, err
	}
	cfg, err := allocation.NewConfig(params)
	if err != nil {
		return nil, fmt.Errorf("problem: %w", err)
	}

	return cfg, nil
}

// StageNames returns the stage names, substituting "stage-<n>" (1-based)
// for unnamed stages.
func (p *Problem) StageNames() []string {
	names := make([]string, len(p.Stages))
	for k, s := range p.Stages {
		names[k] = s.Name
		if names[k] == "" {
			names[k] = fmt.Sprintf("stage-%d", k+1)
		}
	}

	return names
}
