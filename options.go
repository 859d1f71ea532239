package fastasize

import "fmt"

const (
	// DefaultBufferSize is the streamed chunk size.
	DefaultBufferSize = 16 * 1024

	// maxConsecutiveEmptyReads matches bufio's limit before io.ErrNoProgress.
	maxConsecutiveEmptyReads = 100
)

// Strategy selects how CountFile acquires the bytes of a file.
type Strategy int

const (
	// StrategyAuto maps regular files and streams everything else.
	StrategyAuto Strategy = iota

	// StrategyStream always uses fixed-size reads.
	StrategyStream

	// StrategyMapped always maps the file and fails if that is impossible.
	StrategyMapped
)

func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyStream:
		return "stream"
	case StrategyMapped:
		return "mmap"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy is the inverse of Strategy.String.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "auto":
		return StrategyAuto, nil
	case "stream":
		return StrategyStream, nil
	case "mmap":
		return StrategyMapped, nil
	}
	return 0, fmt.Errorf("unknown strategy %q", s)
}

type config struct {
	bufferSize int
	mode       CountMode
	strategy   Strategy
}

func newConfig(opts []Option) config {
	c := config{
		bufferSize: DefaultBufferSize,
		mode:       Branching,
		strategy:   StrategyAuto,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Option configures a scan.
type Option func(*config)

// WithBufferSize sets the streamed chunk size. Values below 1 keep the default.
func WithBufferSize(size int) Option {
	return func(c *config) {
		if size > 0 {
			c.bufferSize = size
		}
	}
}

// WithCountMode selects the counting algorithm.
func WithCountMode(mode CountMode) Option {
	return func(c *config) {
		c.mode = mode
	}
}

// WithStrategy selects how CountFile reads the file.
func WithStrategy(s Strategy) Option {
	return func(c *config) {
		c.strategy = s
	}
}
