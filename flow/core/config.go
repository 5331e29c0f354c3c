package core

// DefaultConcurrency is the concurrency degree of a freshly built Pipeline.
const DefaultConcurrency = 1

// Config holds the settings carried by a Pipeline and every Pipeline or
// Consumer derived from it.
type Config struct {
	// Concurrency is configuration only; no operation schedules work on it.
	Concurrency int
	// Random returns uniformly distributed values in [0, 1). It is used by
	// Shuffle when no explicit source is passed. Nil means math/rand/v2.
	Random func() float64
}

// Option is a functional option for configuring a Pipeline.
type Option func(*Config)

// WithConcurrency sets the concurrency degree carried by the Pipeline.
// Values below 1 are rejected with an ArgumentError.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic(argumentError("WithConcurrency", "n", "must be at least 1"))
	}
	return func(c *Config) {
		c.Concurrency = n
	}
}

// WithRandom sets the random source used by Shuffle.
//
// Example:
//
//	r := rand.New(rand.NewPCG(1, 2))
//	p := flow.FromSlice(items, core.WithRandom(r.Float64))
func WithRandom(random func() float64) Option {
	return func(c *Config) {
		c.Random = random
	}
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		Concurrency: DefaultConcurrency,
	}
}

// applyOptions applies functional options to a default config.
func applyOptions(opts ...Option) Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Number is the set of element types that Range and the statistics
// consumer accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// WithConfig replaces the whole configuration with cfg. It is used to
// carry the configuration of one Pipeline over to a new source.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}
