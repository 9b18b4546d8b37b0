// Package geom defines the core value types for bounded-curvature envelopes:
// points, disks, wrap directions, tangent classifications, and the two
// segment kinds (arc and tangent) every solver in taut produces.
//
// All types are plain values with no hidden state; they marshal to the JSON
// shapes the HTTP layer exposes.
package geom

import (
	"fmt"
	"math"
)

// Geometric tolerances shared across the module.
//
// Eps           – absolute tolerance for existence checks (bitangents between
//                 mutually tangent disks, coincident-center detection).
// ParamEps      – open-interval margin on the segment parameter t in [0,1];
//                 intersections within ParamEps of an endpoint are treated as
//                 endpoint contact, not penetration.
// GrazeFraction – chords shorter than this fraction of the disk radius are
//                 considered tangential grazing, not penetration.
// DefaultArcEps – arcs shorter than this are dropped by the path assemblers;
//                 they are numerical residue of exact tangency, not geometry.
const (
	Eps           = 1e-9
	ParamEps      = 1e-6
	GrazeFraction = 0.01
	DefaultArcEps = 1e-7
)

// Point is a location or displacement in the plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p + q component-wise.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p - q component-wise.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns p scaled by f.
func (p Point) Scale(f float64) Point { return Point{X: p.X * f, Y: p.Y * f} }

// Dot returns the dot product p · q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the z-component of the cross product p × q.
// Positive means q lies counter-clockwise of p.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Norm returns the Euclidean length of p viewed as a vector.
func (p Point) Norm() float64 { return math.Hypot(p.X, p.Y) }

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Disk is a circular obstacle-and-rail: envelopes may run along its boundary
// but must never cut through its interior.
type Disk struct {
	ID     string  `json:"id"`
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
}

// Contains reports whether p lies strictly inside the disk, shrunk by tol.
func (d Disk) Contains(p Point, tol float64) bool {
	return d.Center.Distance(p) < d.Radius-tol
}

// AngleOf returns the boundary angle of p as seen from the disk center,
// in (-π, π]. p need not lie on the boundary.
func (d Disk) AngleOf(p Point) float64 {
	return math.Atan2(p.Y-d.Center.Y, p.X-d.Center.X)
}

// PointAt returns the boundary point at the given angle.
func (d Disk) PointAt(angle float64) Point {
	return Point{
		X: d.Center.X + d.Radius*math.Cos(angle),
		Y: d.Center.Y + d.Radius*math.Sin(angle),
	}
}

// Translate returns a copy of the disk moved by (dx, dy).
func (d Disk) Translate(dx, dy float64) Disk {
	return Disk{ID: d.ID, Center: Point{X: d.Center.X + dx, Y: d.Center.Y + dy}, Radius: d.Radius}
}

// Chirality is the wrap direction of an arc along a disk boundary.
//
// CCW ("L") – boundary angles increase along the travel direction.
// CW  ("R") – boundary angles decrease along the travel direction.
type Chirality byte

const (
	// CCW wraps counter-clockwise; serialized as "L".
	CCW Chirality = 'L'

	// CW wraps clockwise; serialized as "R".
	CW Chirality = 'R'
)

// Opposite returns the reversed wrap direction.
func (c Chirality) Opposite() Chirality {
	if c == CCW {
		return CW
	}
	return CCW
}

// Valid reports whether c is one of CCW, CW.
func (c Chirality) Valid() bool { return c == CCW || c == CW }

// String returns "L" for CCW, "R" for CW.
func (c Chirality) String() string { return string(rune(c)) }

// MarshalJSON encodes the chirality as the JSON string "L" or "R".
func (c Chirality) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("geom: invalid chirality %q", string(rune(c)))
	}
	return []byte(`"` + c.String() + `"`), nil
}

// UnmarshalJSON decodes "L" or "R" (quoted) into a Chirality.
func (c *Chirality) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"L"`:
		*c = CCW
	case `"R"`:
		*c = CW
	default:
		return fmt.Errorf("geom: invalid chirality %s", string(data))
	}
	return nil
}

// TangentType classifies a common tangent of two disks by the wrap
// directions it is compatible with: the first letter is the chirality on the
// start disk, the last letter the chirality on the end disk, and "S" is the
// straight run between the touch points.
type TangentType string

const (
	// LSL is the outer tangent compatible with CCW wraps on both disks.
	LSL TangentType = "LSL"

	// RSR is the outer tangent compatible with CW wraps on both disks.
	RSR TangentType = "RSR"

	// LSR is the inner (crossing) tangent: CCW departure, CW arrival.
	LSR TangentType = "LSR"

	// RSL is the inner (crossing) tangent: CW departure, CCW arrival.
	RSL TangentType = "RSL"
)

// Departure returns the wrap direction on the start disk.
func (t TangentType) Departure() Chirality { return Chirality(t[0]) }

// Arrival returns the wrap direction on the end disk.
func (t TangentType) Arrival() Chirality { return Chirality(t[2]) }

// Outer reports whether t is one of the non-crossing tangents (LSL, RSR).
func (t TangentType) Outer() bool { return t == LSL || t == RSR }

// Valid reports whether t is one of the four tangent classifications.
func (t TangentType) Valid() bool {
	return t == LSL || t == RSR || t == LSR || t == RSL
}

// TangentSegment is a straight run between two touch points. Disk-to-disk
// tangents carry their TangentType and both disk IDs; straight runs produced
// by the point-to-point router between free anchors leave the type and the
// disk IDs empty.
type TangentSegment struct {
	Type        TangentType `json:"type,omitempty"`
	Start       Point       `json:"start"`
	End         Point       `json:"end"`
	Length      float64     `json:"length"`
	StartDiskID string      `json:"startDiskId,omitempty"`
	EndDiskID   string      `json:"endDiskId,omitempty"`
}

// From returns the segment start point.
func (t TangentSegment) From() Point { return t.Start }

// To returns the segment end point.
func (t TangentSegment) To() Point { return t.End }

// Len returns the segment length.
func (t TangentSegment) Len() float64 { return t.Length }

// Sample returns n+1 points spaced evenly from Start to End inclusive.
// n must be ≥ 1; smaller values are treated as 1.
func (t TangentSegment) Sample(n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, 0, n+1)
	step := t.End.Sub(t.Start)
	var i int
	for i = 0; i <= n; i++ {
		f := float64(i) / float64(n)
		pts = append(pts, t.Start.Add(step.Scale(f)))
	}
	return pts
}

func (TangentSegment) isSegment() {}

// ArcSegment is a directed run along a disk boundary from StartAngle to
// EndAngle in the direction the Chirality dictates. Center and Radius are
// denormalized copies of the owning disk so consumers can sample the arc
// without a disk lookup.
type ArcSegment struct {
	DiskID     string    `json:"diskId"`
	Center     Point     `json:"center"`
	Radius     float64   `json:"radius"`
	StartAngle float64   `json:"startAngle"`
	EndAngle   float64   `json:"endAngle"`
	Chirality  Chirality `json:"chirality"`
	Length     float64   `json:"length"`
}

// From returns the boundary point at StartAngle.
func (a ArcSegment) From() Point {
	return Point{
		X: a.Center.X + a.Radius*math.Cos(a.StartAngle),
		Y: a.Center.Y + a.Radius*math.Sin(a.StartAngle),
	}
}

// To returns the boundary point at EndAngle.
func (a ArcSegment) To() Point {
	return Point{
		X: a.Center.X + a.Radius*math.Cos(a.EndAngle),
		Y: a.Center.Y + a.Radius*math.Sin(a.EndAngle),
	}
}

// Len returns the arc length.
func (a ArcSegment) Len() float64 { return a.Length }

// Sweep returns the angular extent of the arc in [0, 2π), measured along the
// travel direction.
func (a ArcSegment) Sweep() float64 {
	if a.Chirality == CCW {
		return CCWDelta(a.StartAngle, a.EndAngle)
	}
	return CCWDelta(a.EndAngle, a.StartAngle)
}

// Sample returns n+1 points spaced evenly along the arc from StartAngle to
// EndAngle, following the wrap direction. n must be ≥ 1; smaller values are
// treated as 1.
func (a ArcSegment) Sample(n int) []Point {
	if n < 1 {
		n = 1
	}
	sweep := a.Sweep()
	if a.Chirality == CW {
		sweep = -sweep
	}
	pts := make([]Point, 0, n+1)
	var i int
	for i = 0; i <= n; i++ {
		angle := a.StartAngle + sweep*float64(i)/float64(n)
		pts = append(pts, Point{
			X: a.Center.X + a.Radius*math.Cos(angle),
			Y: a.Center.Y + a.Radius*math.Sin(angle),
		})
	}
	return pts
}

func (ArcSegment) isSegment() {}

// Segment is either an ArcSegment or a TangentSegment. Envelope paths are
// alternating sequences of the two.
type Segment interface {
	// From returns the point where travel along the segment begins.
	From() Point

	// To returns the point where travel along the segment ends.
	To() Point

	// Len returns the traveled length of the segment.
	Len() float64

	// Sample returns n+1 points spaced evenly along the segment.
	Sample(n int) []Point

	isSegment()
}

// PathLength sums the lengths of all segments in a path.
func PathLength(path []Segment) float64 {
	var total float64
	var s Segment
	for _, s = range path {
		total += s.Len()
	}
	return total
}
