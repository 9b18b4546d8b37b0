package api

import (
	"fmt"
	"math"

	"github.com/katalvlaran/taut/dubins"
	"github.com/katalvlaran/taut/geom"
)

// Pose2D is a position with a heading angle in radians.
type Pose2D struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Theta float64 `json:"theta"`
}

// DubinsSegment is one wire segment of a returned path: a turning arc or a
// straight run. Center and Radius are set for arcs only.
type DubinsSegment struct {
	Type       string   `json:"type"` // arc_left, arc_right or line
	Length     float64  `json:"length"`
	StartPoint Pose2D   `json:"start_point"`
	EndPoint   Pose2D   `json:"end_point"`
	Center     *Pose2D  `json:"center,omitempty"`
	Radius     *float64 `json:"radius,omitempty"`
}

// DubinsPath is one bounded-curvature candidate on the wire.
type DubinsPath struct {
	PathType    string          `json:"path_type"`
	Segments    []DubinsSegment `json:"segments"`
	TotalLength float64         `json:"total_length"`
	StartPose   Pose2D          `json:"start_pose"`
	EndPose     Pose2D          `json:"end_pose"`
}

// DubinsPathRequest asks for the optimal path between two poses.
// MinRadius defaults to 1 when omitted; ComputeAll also returns every
// valid word.
type DubinsPathRequest struct {
	StartPose  *Pose2D  `json:"start_pose"`
	EndPose    *Pose2D  `json:"end_pose"`
	MinRadius  *float64 `json:"min_radius,omitempty"`
	ComputeAll bool     `json:"compute_all,omitempty"`
}

// DubinsPathResponse carries the optimal path and, on request, every valid
// word candidate.
type DubinsPathResponse struct {
	OptimalPath       DubinsPath   `json:"optimal_path"`
	AllPaths          []DubinsPath `json:"all_paths,omitempty"`
	ComputationTimeMS float64      `json:"computation_time_ms"`
}

// Disk is a wire disk. ID is optional; unnamed disks get d0, d1, ... in
// request order.
type Disk struct {
	ID     string  `json:"id,omitempty"`
	Center Pose2D  `json:"center"`
	Radius float64 `json:"radius"`
}

// EnvelopeSolveRequest pins an envelope to a disk visiting order.
// Chiralities, when present, pins the wrap direction per disk ("L" or "R").
type EnvelopeSolveRequest struct {
	Disks        []Disk   `json:"disks"`
	DiskSequence []string `json:"disk_sequence"`
	Chiralities  []string `json:"chiralities,omitempty"`
	Closed       bool     `json:"closed,omitempty"`
}

// EnvelopeSolveResponse reports the solved envelope, or Valid=false with a
// message when no envelope exists for the requested order.
type EnvelopeSolveResponse struct {
	Valid             bool            `json:"valid"`
	Message           string          `json:"message,omitempty"`
	Segments          []DubinsSegment `json:"segments,omitempty"`
	Chiralities       []string        `json:"chiralities,omitempty"`
	TotalLength       float64         `json:"total_length,omitempty"`
	PathData          string          `json:"path_data,omitempty"`
	ComputationTimeMS float64         `json:"computation_time_ms"`
}

// EnvelopeRouteRequest asks for the shortest path visiting the anchors in
// order around the disks. Anchor headings are ignored.
type EnvelopeRouteRequest struct {
	Anchors []Pose2D `json:"anchors"`
	Disks   []Disk   `json:"disks,omitempty"`
}

// EnvelopeRouteResponse reports the routed path, or Valid=false with a
// message when the disks disconnect an anchor pair.
type EnvelopeRouteResponse struct {
	Valid             bool            `json:"valid"`
	Message           string          `json:"message,omitempty"`
	Segments          []DubinsSegment `json:"segments,omitempty"`
	TotalLength       float64         `json:"total_length,omitempty"`
	PathData          string          `json:"path_data,omitempty"`
	ComputationTimeMS float64         `json:"computation_time_ms"`
}

// EnvelopePoint is a contact point on the hull envelope.
type EnvelopePoint struct {
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	TangentAngle float64 `json:"tangent_angle"`
}

// FlexibleEnvelopeRequest asks for the taut hull around a disk set.
// SmoothingFactor in [0, 1] scales the sampling density of the returned
// curve; it defaults to 0.8 when omitted.
type FlexibleEnvelopeRequest struct {
	Disks           []Disk   `json:"disks"`
	SmoothingFactor *float64 `json:"smoothing_factor,omitempty"`
}

// FlexibleEnvelopeResponse carries the hull contact points, the indices of
// the hull disks in walk order, and a dense polyline of the exact envelope.
type FlexibleEnvelopeResponse struct {
	EnvelopePoints    []EnvelopePoint `json:"envelope_points"`
	ConvexHullIndices []int           `json:"convex_hull_indices"`
	SmoothedCurve     []Pose2D        `json:"smoothed_curve"`
	ComputationTimeMS float64         `json:"computation_time_ms"`
}

// toGeomDisks converts wire disks, assigning d0, d1, ... to unnamed ones.
func toGeomDisks(in []Disk) []geom.Disk {
	var (
		out []geom.Disk
		i   int
		id  string
	)

	out = make([]geom.Disk, 0, len(in))
	for i = range in {
		id = in[i].ID
		if id == "" {
			id = fmt.Sprintf("d%d", i)
		}
		out = append(out, geom.Disk{
			ID:     id,
			Center: geom.Point{X: in[i].Center.X, Y: in[i].Center.Y},
			Radius: in[i].Radius,
		})
	}

	return out
}

// parseChiralities maps "L"/"R" strings onto wrap directions.
func parseChiralities(in []string) ([]geom.Chirality, error) {
	var (
		out []geom.Chirality
		i   int
	)

	out = make([]geom.Chirality, 0, len(in))
	for i = range in {
		switch in[i] {
		case "L":
			out = append(out, geom.CCW)
		case "R":
			out = append(out, geom.CW)
		default:
			return nil, fmt.Errorf("chirality %d must be \"L\" or \"R\", got %q", i, in[i])
		}
	}

	return out, nil
}

// chiralityStrings is the inverse of parseChiralities.
func chiralityStrings(in []geom.Chirality) []string {
	var (
		out []string
		i   int
	)

	out = make([]string, 0, len(in))
	for i = range in {
		out = append(out, string(in[i]))
	}

	return out
}

// pathDTO converts one Dubins candidate to the wire shape.
func pathDTO(p dubins.Path) DubinsPath {
	return DubinsPath{
		PathType:    string(p.Type),
		Segments:    segmentDTOs(p.Segments),
		TotalLength: p.TotalLength,
		StartPose:   Pose2D(p.Start),
		EndPose:     Pose2D(p.End),
	}
}

// segmentDTOs converts path segments to the wire shape. Endpoint thetas
// carry the travel heading at the endpoint.
func segmentDTOs(path []geom.Segment) []DubinsSegment {
	var (
		out []DubinsSegment
		i   int
	)

	out = make([]DubinsSegment, 0, len(path))
	for i = range path {
		switch s := path[i].(type) {
		case geom.ArcSegment:
			out = append(out, arcDTO(s))
		case geom.TangentSegment:
			out = append(out, lineDTO(s))
		}
	}

	return out
}

func arcDTO(s geom.ArcSegment) DubinsSegment {
	var (
		kind   string
		center Pose2D
		radius float64
	)

	kind = "arc_right"
	if s.Chirality == geom.CCW {
		kind = "arc_left"
	}
	center = Pose2D{X: s.Center.X, Y: s.Center.Y}
	radius = s.Radius

	return DubinsSegment{
		Type:       kind,
		Length:     s.Len(),
		StartPoint: posed(s.From(), arcHeading(s, s.StartAngle)),
		EndPoint:   posed(s.To(), arcHeading(s, s.EndAngle)),
		Center:     &center,
		Radius:     &radius,
	}
}

func lineDTO(s geom.TangentSegment) DubinsSegment {
	heading := math.Atan2(s.End.Y-s.Start.Y, s.End.X-s.Start.X)

	return DubinsSegment{
		Type:       "line",
		Length:     s.Len(),
		StartPoint: posed(s.Start, heading),
		EndPoint:   posed(s.End, heading),
	}
}

func posed(p geom.Point, theta float64) Pose2D {
	return Pose2D{X: p.X, Y: p.Y, Theta: theta}
}

// arcHeading is the travel heading at rim angle phi: a quarter turn off the
// radius, to the left for CCW wraps and to the right for CW wraps.
func arcHeading(s geom.ArcSegment, phi float64) float64 {
	if s.Chirality == geom.CCW {
		return geom.NormalizeAngle(phi + math.Pi/2)
	}

	return geom.NormalizeAngle(phi - math.Pi/2)
}

// sampleCurve flattens a path into poses, n chords per segment. Segment
// seams contribute one point: each segment drops its first sample, which
// repeats the previous segment's last.
func sampleCurve(path []geom.Segment, n int) []Pose2D {
	var (
		out  []Pose2D
		pts  []geom.Point
		i, k int
	)

	if len(path) == 0 {
		return nil
	}

	out = make([]Pose2D, 0, len(path)*n+1)
	out = append(out, curvePose(path[0], path[0].From(), 0, n))

	for i = range path {
		pts = path[i].Sample(n)
		for k = 1; k < len(pts); k++ {
			out = append(out, curvePose(path[i], pts[k], k, n))
		}
	}

	return out
}

// curvePose computes the pose at sample k of n along one segment.
func curvePose(seg geom.Segment, p geom.Point, k, n int) Pose2D {
	switch s := seg.(type) {
	case geom.ArcSegment:
		var phi float64
		if s.Chirality == geom.CCW {
			phi = s.StartAngle + s.Sweep()*float64(k)/float64(n)
		} else {
			phi = s.StartAngle - s.Sweep()*float64(k)/float64(n)
		}
		return posed(p, arcHeading(s, geom.NormalizeAngle(phi)))
	case geom.TangentSegment:
		return posed(p, math.Atan2(s.End.Y-s.Start.Y, s.End.X-s.Start.X))
	default:
		return posed(p, 0)
	}
}

// envelopePoints extracts the contact points of a path: the start of every
// segment, plus the open end when the path does not close.
func envelopePoints(path []geom.Segment, closed bool) []EnvelopePoint {
	var (
		out []EnvelopePoint
		i   int
	)

	out = make([]EnvelopePoint, 0, len(path)+1)
	for i = range path {
		out = append(out, contactPoint(path[i], path[i].From(), true))
	}
	if !closed && len(path) > 0 {
		out = append(out, contactPoint(path[len(path)-1], path[len(path)-1].To(), false))
	}

	return out
}

func contactPoint(seg geom.Segment, p geom.Point, atStart bool) EnvelopePoint {
	var theta float64

	switch s := seg.(type) {
	case geom.ArcSegment:
		if atStart {
			theta = arcHeading(s, s.StartAngle)
		} else {
			theta = arcHeading(s, s.EndAngle)
		}
	case geom.TangentSegment:
		theta = math.Atan2(s.End.Y-s.Start.Y, s.End.X-s.Start.X)
	}

	return EnvelopePoint{X: p.X, Y: p.Y, TangentAngle: theta}
}
