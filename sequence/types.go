package sequence

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/taut/geom"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGraph is returned when the tangency graph is nil.
	ErrNilGraph = errors.New("sequence: graph is nil")
	// ErrShortSequence is returned when fewer than two disks are named.
	ErrShortSequence = errors.New("sequence: need at least two disks")
	// ErrUnknownDisk is returned when a named disk is not in the graph.
	ErrUnknownDisk = errors.New("sequence: unknown disk")
	// ErrRepeatedDisk is returned when the same disk appears twice in a row.
	ErrRepeatedDisk = errors.New("sequence: repeated disk")
	// ErrChiralityCount is returned when the pinned chirality list does not
	// have exactly one entry per disk of the sequence.
	ErrChiralityCount = errors.New("sequence: chirality count mismatch")
	// ErrNoPath is returned when no chirality assignment reaches the end of
	// the sequence through surviving tangents.
	ErrNoPath = errors.New("sequence: no path through sequence")
)

// Result is a solved envelope over a disk sequence.
type Result struct {
	// Path alternates tangent runs and boundary arcs, in travel order.
	// Arcs shorter than the configured epsilon are omitted, so two tangents
	// may sit back to back where the envelope merely grazes a disk.
	Path []geom.Segment
	// Chiralities records the wrap direction used on each disk of the
	// sequence, one entry per disk in sequence order.
	Chiralities []geom.Chirality
	// Length is the total envelope length, rounded to 1e-9.
	Length float64
}

// Options configures FindPath.
type Options struct {
	// Chiralities pins the wrap direction per disk. Empty means free search.
	Chiralities []geom.Chirality
	// Closed adds the closing tangent from the last disk back to the first
	// and the wrap arcs around the seam.
	Closed bool
	// ArcEps is the length below which a boundary arc is treated as
	// degenerate and omitted from the path.
	ArcEps float64
}

// Option mutates Options.
type Option func(*Options)

// WithChiralities pins the wrap direction on each disk of the sequence, in
// sequence order. Panics if any entry is not a valid chirality; the count is
// checked against the sequence inside FindPath.
func WithChiralities(chir ...geom.Chirality) Option {
	var c geom.Chirality
	for _, c = range chir {
		if !c.Valid() {
			panic(fmt.Sprintf("sequence: invalid chirality %q", byte(c)))
		}
	}
	return func(o *Options) { o.Chiralities = chir }
}

// WithClosed makes the envelope a closed loop.
func WithClosed() Option {
	return func(o *Options) { o.Closed = true }
}

// WithArcEpsilon overrides the degenerate-arc threshold.
// Panics if eps is negative.
func WithArcEpsilon(eps float64) Option {
	if eps < 0 {
		panic("sequence: arc epsilon must be non-negative")
	}
	return func(o *Options) { o.ArcEps = eps }
}

// DefaultOptions returns the baseline configuration: free chirality search,
// open path, arc epsilon geom.DefaultArcEps.
func DefaultOptions() Options {
	return Options{ArcEps: geom.DefaultArcEps}
}
