// Command stagealloc solves a discrete multi-stage allocation problem read
// from a YAML document and prints the per-stage split.
//
// Usage:
//
//	stagealloc -f problem.yaml [-o text|yaml] [--log-level info] [--log-format console|json]
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/stagealloc/aggregate"
	"github.com/katalvlaran/stagealloc/allocation"
	"github.com/katalvlaran/stagealloc/problem"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options holds the parsed command line.
type options struct {
	problemPath string
	output      string
	logLevel    string
	logFormat   string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := pflag.NewFlagSet("stagealloc", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&o.problemPath, "problem", "f", "", "path to the YAML problem document")
	fs.StringVarP(&o.output, "output", "o", "text", "report format: text or yaml")
	fs.StringVar(&o.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.StringVar(&o.logFormat, "log-format", "console", "log encoding: console or json")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.problemPath == "" {
		return o, errors.New("--problem is required")
	}
	if o.output != "text" && o.output != "yaml" {
		return o, fmt.Errorf("unknown --output %q", o.output)
	}

	return o, nil
}

// newLogger builds a zap-backed logr.Logger writing to w. V(1) engine traces
// surface at --log-level=debug.
func newLogger(level, format string, w io.Writer) (logr.Logger, func(), error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return logr.Discard(), func() {}, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch format {
	case "json":
		enc = zapcore.NewJSONEncoder(encCfg)
	case "console":
		enc = zapcore.NewConsoleEncoder(encCfg)
	default:
		return logr.Discard(), func() {}, fmt.Errorf("unknown --log-format %q", format)
	}

	zl := zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl))

	return zapr.NewLogger(zl), func() { _ = zl.Sync() }, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintln(stderr, "stagealloc:", err)
		}

		return exitUsage
	}

	log, flush, err := newLogger(opts.logLevel, opts.logFormat, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "stagealloc:", err)

		return exitUsage
	}
	defer flush()

	p, err := problem.LoadFile(opts.problemPath)
	if err != nil {
		log.Error(err, "Failed to load problem", "path", opts.problemPath)

		return exitError
	}
	cfg, err := p.Config()
	if err != nil {
		log.Error(err, "Invalid problem", "path", opts.problemPath)

		return exitError
	}
	log.Info("Problem loaded",
		"name", p.Name,
		"stages", cfg.Stages(),
		"resourceCount", cfg.ResourceCount(),
		"direction", cfg.Direction().String(),
		"policy", cfg.Policy().String())

	a, err := allocation.New(cfg, allocation.WithLogger(log.WithName("engine")))
	if err != nil {
		log.Error(err, "Failed to create allocator")

		return exitError
	}
	res := a.Allocate()
	if e, ok := cfg.Aggregator().(*aggregate.Expr); ok {
		if err = e.Err(); err != nil {
			log.Error(err, "Aggregate expression failed", "expression", e.Source())

			return exitError
		}
	}
	rep := problem.NewReport(p, cfg, res)

	if opts.output == "yaml" {
		err = rep.WriteYAML(stdout)
	} else {
		err = rep.WriteText(stdout)
	}
	if err != nil {
		log.Error(err, "Failed to write report")

		return exitError
	}

	return exitOK
}
