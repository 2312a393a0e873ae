package allocation

// Config is a validated, normalized allocation problem. It is immutable:
// replacing parameters means building a new Config with NewConfig and
// handing it to Allocator.SetConfig.
type Config struct {
	levels        []float64
	values        [][]float64
	resourceCount int
	direction     Direction
	policy        CellPolicy
	better        comparator
	aggregator    Aggregator
}

// NewConfig validates p, normalizes its level set and value rows, and
// resolves the comparator and aggregator strategies.
//
// The returned Config never aliases p's slices.
//
// Errors: a *ConfigError wrapping one of the sentinels in types.go;
// errors.Is(err, ErrConfiguration) holds for all of them.
//
// Complexity: O(Σ len(row) + len(levels)).
func NewConfig(p *Parameters) (*Config, error) {
	if err := validateBundle(p); err != nil {
		return nil, err
	}

	shift := 1
	if p.LeadingZeros {
		shift = 0
	}
	levels, values := normalize(p.Levels, p.Values, p.LeadingZeros)

	if err := validateLevels(levels, shift); err != nil {
		return nil, err
	}
	if err := validateRows(values, len(levels), shift, p.Direction, p.Policy); err != nil {
		return nil, err
	}

	agg := p.Aggregator
	if agg == nil {
		agg = RawValue
	}

	return &Config{
		levels:        levels,
		values:        values,
		resourceCount: effectiveResourceCount(len(levels), values),
		direction:     p.Direction,
		policy:        p.Policy,
		better:        newComparator(p.Direction, p.Policy),
		aggregator:    agg,
	}, nil
}

// Levels returns a copy of the normalized level set (index 0 is zero).
func (c *Config) Levels() []float64 {
	return append([]float64(nil), c.levels...)
}

// Values returns a deep copy of the normalized value matrix.
func (c *Config) Values() [][]float64 {
	out := make([][]float64, len(c.values))
	for k, row := range c.values {
		out[k] = append([]float64(nil), row...)
	}

	return out
}

// Stages returns the number of stages.
func (c *Config) Stages() int { return len(c.values) }

// ResourceCount returns the effective resource count: the width of the last
// DP table, never larger than the normalized level set.
func (c *Config) ResourceCount() int { return c.resourceCount }

// Direction returns the optimization direction.
func (c *Config) Direction() Direction { return c.direction }

// Policy returns the cell policy.
func (c *Config) Policy() CellPolicy { return c.policy }

// Aggregator returns the resolved aggregator (RawValue when none was given).
func (c *Config) Aggregator() Aggregator { return c.aggregator }
