// Package dubins — pose, path word, and configuration types.
package dubins

import (
	"errors"
	"math"

	"github.com/katalvlaran/taut/geom"
)

// ErrBadMinRadius indicates a non-positive minimum turning radius.
var ErrBadMinRadius = errors.New("dubins: minimum turning radius must be positive")

// Pose is an oriented position: a point plus a heading angle in radians
// (counter-clockwise from the positive x-axis).
type Pose struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Theta float64 `json:"theta"`
}

// Point returns the pose position.
func (p Pose) Point() geom.Point { return geom.Point{X: p.X, Y: p.Y} }

// PathType is one of the six canonical Dubins words, or Straight for the
// degenerate fallback connector.
type PathType string

const (
	LSL PathType = "LSL"
	RSR PathType = "RSR"
	LSR PathType = "LSR"
	RSL PathType = "RSL"
	LRL PathType = "LRL"
	RLR PathType = "RLR"

	// Straight is the fallback connector used when no canonical word is
	// valid for the configuration.
	Straight PathType = "S"
)

// words is the fixed evaluation order; ties resolve in favor of the earlier
// word.
var words = [6]PathType{LSL, RSR, LSR, RSL, LRL, RLR}

// Path is one bounded-curvature candidate between two poses.
//
// Invalid configurations report Valid=false with TotalLength=+Inf and no
// segments, so candidate lists filter and compare uniformly.
type Path struct {
	Type        PathType       `json:"type"`
	Segments    []geom.Segment `json:"-"`
	TotalLength float64        `json:"totalLength"`
	Valid       bool           `json:"valid"`
	Start       Pose           `json:"start"`
	End         Pose           `json:"end"`
}

// invalidPath is the uniform non-existence value for a word.
func invalidPath(t PathType, start, end Pose) Path {
	return Path{
		Type:        t,
		TotalLength: math.Inf(1),
		Valid:       false,
		Start:       start,
		End:         end,
	}
}

// Options configures the path computation.
//
// MinRadius – minimum turning radius, must be positive. Default 1.
type Options struct {
	MinRadius float64
}

// Option is a functional option for MinimalPath and AllPaths.
type Option func(*Options)

// WithMinRadius sets the minimum turning radius. Panics with ErrBadMinRadius
// on a non-positive value; an impossible turning circle is a configuration
// bug, not a geometric edge case.
func WithMinRadius(r float64) Option {
	return func(o *Options) {
		if r <= 0 {
			panic(ErrBadMinRadius.Error())
		}
		o.MinRadius = r
	}
}

// DefaultOptions returns the computation defaults: MinRadius 1.
func DefaultOptions() Options {
	return Options{MinRadius: 1}
}
