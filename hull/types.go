package hull

import (
	"errors"

	"github.com/katalvlaran/taut/geom"
)

// Sentinel errors returned by Hull.
var (
	// ErrNoDisks is returned when the input is empty.
	ErrNoDisks = errors.New("hull: no disks")
	// ErrDegenerate is returned when the tangent walk cannot close a cycle,
	// which only happens on numerically broken input.
	ErrDegenerate = errors.New("hull: degenerate configuration")
)

// Result is the convex closure of a disk set.
type Result struct {
	// Sequence lists the hull disk ids in counter-clockwise order, starting
	// from the lowest disk. A disk can appear more than once when smaller
	// neighbors poke out of it on two sides.
	Sequence []string
	// HullIndices maps Sequence positions back to indices of the input slice.
	HullIndices []int
	// Path is the closed envelope around the whole set: hull tangents joined
	// by counter-clockwise boundary arcs.
	Path []geom.Segment
	// Perimeter is the envelope length, rounded to 1e-9.
	Perimeter float64
}

// Options configures Hull.
type Options struct {
	// ArcEps is the degenerate-arc threshold forwarded to the envelope solve.
	ArcEps float64
}

// Option mutates Options.
type Option func(*Options)

// WithArcEpsilon overrides the degenerate-arc threshold.
// Panics if eps is negative.
func WithArcEpsilon(eps float64) Option {
	if eps < 0 {
		panic("hull: arc epsilon must be non-negative")
	}
	return func(o *Options) { o.ArcEps = eps }
}

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{ArcEps: geom.DefaultArcEps}
}
