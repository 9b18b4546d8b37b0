package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo/float"

	"github.com/katalvlaran/taut/geom"
)

// PathData renders a path as an SVG "d" string in scene coordinates.
//
// Tangents become L commands and arcs become A commands: the large-arc
// flag is set when the swept angle exceeds pi, and the sweep flag follows
// chirality (1 for counterclockwise, 0 for clockwise, matching the SVG
// positive-angle direction for y-up coordinates). A closed path gets a
// trailing Z. An empty path renders as "".
func PathData(path []geom.Segment) string {
	if len(path) == 0 {
		return ""
	}

	var (
		b     strings.Builder
		start geom.Point
		end   geom.Point
		large int
		sweep int
		i     int
	)

	start = path[0].From()
	fmt.Fprintf(&b, "M %.4f %.4f", start.X, start.Y)

	for i = range path {
		switch s := path[i].(type) {
		case geom.ArcSegment:
			large, sweep = 0, 0
			if s.Sweep() > math.Pi {
				large = 1
			}
			if s.Chirality == geom.CCW {
				sweep = 1
			}
			end = s.To()
			fmt.Fprintf(&b, " A %.4f %.4f 0 %d %d %.4f %.4f", s.Radius, s.Radius, large, sweep, end.X, end.Y)
		default:
			end = path[i].To()
			fmt.Fprintf(&b, " L %.4f %.4f", end.X, end.Y)
		}
	}

	if end.Distance(start) <= closeTol {
		b.WriteString(" Z")
	}

	return b.String()
}

// WriteSVG writes a standalone SVG document with the disks and the path.
//
// Scene coordinates are y-up; the document flips them once via a group
// transform so the drawing appears with y growing upward. Returns
// ErrEmptyScene when there is nothing to draw, or the first write error.
func WriteSVG(w io.Writer, disks []geom.Disk, path []geom.Segment, opts ...Option) error {
	var (
		cfg                    Options
		ew                     *errWriter
		canvas                 *svg.SVG
		minX, minY, maxX, maxY float64
		ok                     bool
		i                      int
	)

	cfg = buildOptions(opts)

	minX, minY, maxX, maxY, ok = bounds(disks, path)
	if !ok {
		return ErrEmptyScene
	}

	ew = &errWriter{w: w}
	canvas = svg.New(ew)

	canvas.Start(maxX-minX+2*cfg.Margin, maxY-minY+2*cfg.Margin)
	canvas.Gtransform(fmt.Sprintf("translate(%.4f,%.4f) scale(1,-1)", cfg.Margin-minX, cfg.Margin+maxY))

	for i = range disks {
		canvas.Circle(disks[i].Center.X, disks[i].Center.Y, disks[i].Radius, cfg.DiskStyle)
	}
	if len(path) > 0 {
		canvas.Path(PathData(path), cfg.PathStyle)
	}

	canvas.Gend()
	canvas.End()

	return ew.err
}

// bounds returns the scene bounding box. Arc extremes are bounded by the
// full circle of their disk; the loose box beats sampling.
func bounds(disks []geom.Disk, path []geom.Segment) (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)

	expand := func(x, y, pad float64) {
		minX = math.Min(minX, x-pad)
		minY = math.Min(minY, y-pad)
		maxX = math.Max(maxX, x+pad)
		maxY = math.Max(maxY, y+pad)
		ok = true
	}

	var i int
	for i = range disks {
		expand(disks[i].Center.X, disks[i].Center.Y, disks[i].Radius)
	}
	for i = range path {
		expand(path[i].From().X, path[i].From().Y, 0)
		expand(path[i].To().X, path[i].To().Y, 0)
		if arc, isArc := path[i].(geom.ArcSegment); isArc {
			expand(arc.Center.X, arc.Center.Y, arc.Radius)
		}
	}

	return minX, minY, maxX, maxY, ok
}

// errWriter remembers the first write error so svgo calls can stay unchecked.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}

	var n int
	n, ew.err = ew.w.Write(p)

	return n, ew.err
}
