package layout

import "errors"

// Sentinel errors returned by FromGraph6 and Random.
var (
	// ErrBadGraph6 is returned when the input is not a valid graph6 string.
	ErrBadGraph6 = errors.New("layout: invalid graph6 string")
	// ErrNoNodes is returned when the decoded graph has no nodes.
	ErrNoNodes = errors.New("layout: graph has no nodes")
	// ErrNonPositiveCount is returned when Random is asked for fewer than one disk.
	ErrNonPositiveCount = errors.New("layout: disk count must be positive")
	// ErrPlacement is returned when no non-overlapping placement could be
	// found within the attempt budget.
	ErrPlacement = errors.New("layout: placement failed")
)

// Options configures disk generation.
type Options struct {
	// Radius is the disk radius. Random draws each radius between 60% and
	// 100% of this value; FromGraph6 uses it exactly.
	Radius float64
	// Spacing is the minimum center gap between two disks, in units of the
	// sum of their radii. 1 means touching is allowed.
	Spacing float64
	// Iterations is the force-layout update budget for FromGraph6.
	Iterations int
	// Seed feeds the force layout's jitter source in FromGraph6. Random
	// takes its seed as a parameter instead, one stream per call.
	Seed uint64
}

// Option mutates Options.
type Option func(*Options)

// WithRadius overrides the disk radius. Panics if r is not positive.
func WithRadius(r float64) Option {
	if r <= 0 {
		panic("layout: radius must be positive")
	}
	return func(o *Options) { o.Radius = r }
}

// WithSpacing overrides the separation factor. Panics if s is below one,
// which would permit overlap.
func WithSpacing(s float64) Option {
	if s < 1 {
		panic("layout: spacing must be at least one")
	}
	return func(o *Options) { o.Spacing = s }
}

// WithIterations overrides the force-layout update budget.
// Panics if n is less than one.
func WithIterations(n int) Option {
	if n < 1 {
		panic("layout: iterations must be at least one")
	}
	return func(o *Options) { o.Iterations = n }
}

// WithSeed overrides the force-layout jitter seed.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}

// DefaultOptions returns the baseline configuration: radius 50, spacing 1.5,
// 100 layout iterations, seed 1.
func DefaultOptions() Options {
	return Options{Radius: 50, Spacing: 1.5, Iterations: 100, Seed: 1}
}
