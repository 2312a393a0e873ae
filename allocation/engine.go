package allocation

import "sync/atomic"

// Allocator runs the DP engine over its current Config.
//
// The Config is swapped atomically by SetConfig; each Allocate call reads it
// once, so a call never observes a half-replaced configuration. Allocate
// itself keeps no state between calls.
type Allocator struct {
	cfg  atomic.Pointer[Config]
	opts Options
}

// New returns an Allocator for cfg.
//
// Errors: *ConfigError wrapping ErrNilConfig if cfg is nil.
func New(cfg *Config, opts ...Option) (*Allocator, error) {
	if cfg == nil {
		return nil, newConfigError("config", -1, -1, ErrNilConfig)
	}
	a := &Allocator{opts: gatherOptions(opts)}
	a.cfg.Store(cfg)

	return a, nil
}

// MustNew is like New but panics on a nil cfg.
func MustNew(cfg *Config, opts ...Option) *Allocator {
	a, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}

	return a
}

// Solve builds a Config from p and allocates it in one call.
func Solve(p *Parameters, opts ...Option) (Result, error) {
	cfg, err := NewConfig(p)
	if err != nil {
		return Result{}, err
	}

	return MustNew(cfg, opts...).Allocate(), nil
}

// Config returns the configuration the next Allocate call will use.
func (a *Allocator) Config() *Config { return a.cfg.Load() }

// SetConfig replaces the configuration wholesale.
//
// Errors: *ConfigError wrapping ErrNilConfig if cfg is nil; the current
// configuration is kept in that case.
func (a *Allocator) SetConfig(cfg *Config) error {
	if cfg == nil {
		return newConfigError("config", -1, -1, ErrNilConfig)
	}
	a.cfg.Store(cfg)

	return nil
}

// Allocate computes the optimal split of the resource axis.
//
// Algorithm Outline:
//  1. Seed prev with stage 0's value row.
//  2. For each stage k = 1..N−1 build a table of width
//     min(len(prev)+len(cur)−1, R) where R is the effective resource count:
//     for every pair (i over cur, j over prev) with i+j < width, offer
//     cur[i]+prev[j] to cell i+j and remember i when the comparator accepts.
//  3. Trace back from cell R−1 of the last table: each table yields the
//     newest stage's index at the remaining amount; stage 0 receives what is
//     left.
//  4. Map indexes to levels and fold Aggregate(level, value) into Total.
//
// Complexity: O(N·R·L) time, O(N·R) memory.
func (a *Allocator) Allocate() Result {
	cfg := a.cfg.Load()
	log := a.opts.Logger

	steps := a.forward(cfg)
	indexes := backward(steps, len(cfg.values), cfg.resourceCount)

	res := Result{
		Allocation: make([]float64, len(indexes)),
		Indexes:    indexes,
	}
	for k, idx := range indexes {
		res.Allocation[k] = cfg.levels[idx]
		res.Total += cfg.aggregator.Aggregate(cfg.levels[idx], cfg.values[k][idx])
	}
	log.V(1).Info("allocation complete",
		"direction", cfg.direction.String(),
		"stages", len(indexes),
		"resourceCount", cfg.resourceCount,
		"indexes", indexes,
		"total", res.Total)

	return res
}

// stepTable is a StepResult plus the populated mask used by TrackPopulated.
type stepTable struct {
	best      []float64
	choice    []int
	populated []bool
}

func newStepTable(width int) stepTable {
	return stepTable{
		best:      make([]float64, width),
		choice:    make([]int, width),
		populated: make([]bool, width),
	}
}

// forward runs the convolution pass and returns one table per transition.
func (a *Allocator) forward(cfg *Config) []stepTable {
	var (
		steps = make([]stepTable, 0, len(cfg.values)-1)
		prev  = cfg.values[0]
		cur   []float64
		width int
		i, j  int
		cell  int
		sum   float64
	)
	for k := 1; k < len(cfg.values); k++ {
		cur = cfg.values[k]
		width = len(prev) + len(cur) - 1
		if width > cfg.resourceCount {
			width = cfg.resourceCount
		}

		st := newStepTable(width)
		for i = 0; i < len(cur); i++ {
			for j = 0; j < len(prev); j++ {
				cell = i + j
				if cell >= width {
					break // cells only grow with j
				}
				sum = cur[i] + prev[j]
				if cfg.better(st.best[cell], sum, st.populated[cell]) {
					st.best[cell] = sum
					st.choice[cell] = i
					st.populated[cell] = true
				}
			}
		}

		a.opts.Logger.V(2).Info("forward step", "stage", k, "width", width)
		if a.opts.OnStep != nil {
			a.opts.OnStep(k, StepResult{
				Best:   append([]float64(nil), st.best...),
				Choice: append([]int(nil), st.choice...),
			})
		}

		steps = append(steps, st)
		prev = st.best
	}

	return steps
}

// backward reconstructs per-stage level indexes from the forward tables.
// steps[k−1] belongs to the transition ending at stage k.
func backward(steps []stepTable, nStages, resourceCount int) []int {
	indexes := make([]int, nStages)
	total := resourceCount - 1
	if nStages == 1 {
		indexes[0] = total

		return indexes
	}

	indexes[nStages-1] = steps[len(steps)-1].choice[total]
	for i := nStages - 2; i > 0; i-- {
		indexes[i] = steps[i-1].choice[total-indexes[i+1]]
		total -= indexes[i+1]
	}
	// No table exists for stage 0 alone: it takes the remainder.
	indexes[0] = total - indexes[1]

	return indexes
}
