package route

import (
	"errors"

	"github.com/katalvlaran/taut/geom"
)

// Sentinel errors returned by FindPathFromPoints.
var (
	// ErrTooFewAnchors is returned when fewer than two anchors are given.
	ErrTooFewAnchors = errors.New("route: need at least two anchors")
	// ErrAnchorInsideDisk is returned when an anchor lies strictly inside an
	// obstacle disk. Anchors on a disk boundary are fine.
	ErrAnchorInsideDisk = errors.New("route: anchor inside disk")
	// ErrNoRoute is returned when the search exhausts without connecting a
	// consecutive anchor pair.
	ErrNoRoute = errors.New("route: no route between anchors")
)

// Result is a routed path through the disk field.
type Result struct {
	// Path alternates straight runs and boundary arcs, in travel order,
	// covering every consecutive anchor pair back to back.
	Path []geom.Segment
	// Length is the total path length, rounded to 1e-9.
	Length float64
}

// Options configures FindPathFromPoints.
type Options struct {
	// ArcEps is the length below which a boundary arc is treated as
	// degenerate and omitted from the path.
	ArcEps float64
	// BoundaryTol is the distance within which an anchor counts as sitting
	// on a disk boundary, switching the router to boundary handling for it.
	BoundaryTol float64
}

// Option mutates Options.
type Option func(*Options)

// WithArcEpsilon overrides the degenerate-arc threshold.
// Panics if eps is negative.
func WithArcEpsilon(eps float64) Option {
	if eps < 0 {
		panic("route: arc epsilon must be non-negative")
	}
	return func(o *Options) { o.ArcEps = eps }
}

// WithBoundaryTolerance overrides the on-boundary detection distance.
// Panics if tol is negative.
func WithBoundaryTolerance(tol float64) Option {
	if tol < 0 {
		panic("route: boundary tolerance must be non-negative")
	}
	return func(o *Options) { o.BoundaryTol = tol }
}

// DefaultOptions returns the baseline configuration: arc epsilon
// geom.DefaultArcEps, boundary tolerance 1e-6.
func DefaultOptions() Options {
	return Options{
		ArcEps:      geom.DefaultArcEps,
		BoundaryTol: 1e-6,
	}
}
