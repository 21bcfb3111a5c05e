package gapbuffer

// Default configuration values.
const (
	// DefaultMinGap is the slack kept free when allocating or growing the
	// gap. It amortizes runs of small insertions at the same position.
	DefaultMinGap = 10
)

type config struct {
	minGap int
}

func newConfig(opts []Option) config {
	cfg := config{minGap: DefaultMinGap}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures a Buffer during creation.
type Option func(*config)

// WithMinGap sets the minimum free-slot slack allocated with the gap.
// Values less than 1 are ignored.
func WithMinGap(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.minGap = n
		}
	}
}
