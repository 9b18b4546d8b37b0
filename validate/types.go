package validate

import "fmt"

const (
	// defaultSamples is the polyline resolution used when the caller does not
	// override it: each segment contributes this many chords.
	defaultSamples = 32
	// defaultEps is the penetration tolerance: a sampled point must sink
	// deeper than this below a foreign disk boundary to count as inside.
	defaultEps = 1e-6
	// closeTol is the endpoint gap below which a path counts as closed, which
	// exempts the seam chord pair from the crossing test.
	closeTol = 1e-6
)

// Report is the outcome of a single check. Count matches len(Issues); both
// are kept so callers can gate on the number without parsing strings.
type Report struct {
	Count  int
	Issues []string
}

// OK reports whether the check found nothing.
func (r Report) OK() bool { return r.Count == 0 }

func (r *Report) addf(format string, args ...interface{}) {
	r.Count++
	r.Issues = append(r.Issues, fmt.Sprintf(format, args...))
}

// Summary is the combined outcome of Run.
type Summary struct {
	Valid  bool
	Issues []string
}

// Options configures Run.
type Options struct {
	// SamplesPerSegment is the polyline resolution of both checks.
	SamplesPerSegment int
	// Eps is the penetration tolerance passed to the outside-disks check.
	Eps float64
}

// Option mutates Options.
type Option func(*Options)

// WithSamplesPerSegment overrides the polyline resolution.
// Panics if n is less than one.
func WithSamplesPerSegment(n int) Option {
	if n < 1 {
		panic("validate: samples per segment must be at least one")
	}
	return func(o *Options) { o.SamplesPerSegment = n }
}

// WithEpsilon overrides the penetration tolerance.
// Panics if eps is negative.
func WithEpsilon(eps float64) Option {
	if eps < 0 {
		panic("validate: epsilon must be non-negative")
	}
	return func(o *Options) { o.Eps = eps }
}

// DefaultOptions returns the baseline configuration: 32 chords per segment,
// penetration tolerance 1e-6.
func DefaultOptions() Options {
	return Options{SamplesPerSegment: defaultSamples, Eps: defaultEps}
}
