package validate

import "github.com/katalvlaran/taut/geom"

// chord is one polyline piece, tagged with the path segment it came from.
type chord struct {
	a, b geom.Point
	seg  int
}

// SelfIntersections samples every segment of the path into a polyline and
// tests all non-adjacent chord pairs for a proper crossing. Consecutive
// chords share an endpoint, so an adjacency skip of one keeps joints from
// registering; for closed paths the seam pair is skipped the same way.
//
// Count is the number of crossing chord pairs. An arc crossing a straight
// run twice is two crossings, not one.
//
// Complexity: O((n·s)²) for n segments at s chords each.
func SelfIntersections(path []geom.Segment, samplesPerSegment int) Report {
	return selfIntersections(path, samplesPerSegment)
}

func selfIntersections(path []geom.Segment, samples int) Report {
	var rep Report

	chords := flatten(path, samples)
	closed := pathClosed(path)

	n := len(chords)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 2; j < n; j++ {
			if closed && i == 0 && j == n-1 {
				continue
			}
			if geom.SegmentsIntersect(chords[i].a, chords[i].b, chords[j].a, chords[j].b) {
				rep.addf("path segments %d and %d cross near (%.2f, %.2f)",
					chords[i].seg, chords[j].seg, chords[i].b.X, chords[i].b.Y)
			}
		}
	}

	return rep
}

// OutsideDisks samples every segment of the path and flags each sampled
// point that sinks deeper than eps into a disk the segment does not
// legitimately touch. An arc touches its own disk; a tangent touches the
// disks at its two ends; a free run touches none.
//
// Count is the number of (segment, disk) penetration pairs; repeated samples
// inside the same disk collapse into one finding.
//
// Complexity: O(n·s·d) for n segments, s samples each, d disks.
func OutsideDisks(path []geom.Segment, disks []geom.Disk, eps float64) Report {
	return outsideDisks(path, disks, eps, defaultSamples)
}

func outsideDisks(path []geom.Segment, disks []geom.Disk, eps float64, samples int) Report {
	var rep Report

	var (
		k   int
		s   geom.Segment
		d   geom.Disk
		p   geom.Point
		pts []geom.Point
	)
	for k, s = range path {
		pts = s.Sample(samples)
		for _, d = range disks {
			if touches(s, d.ID) {
				continue
			}
			for _, p = range pts {
				if d.Contains(p, eps) {
					rep.addf("segment %d penetrates disk %q at (%.2f, %.2f)", k, d.ID, p.X, p.Y)
					break
				}
			}
		}
	}

	return rep
}

// Run performs both checks and merges their findings. It never mutates its
// inputs, so repeated calls on the same data return identical summaries.
func Run(path []geom.Segment, disks []geom.Disk, opts ...Option) Summary {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	self := selfIntersections(path, cfg.SamplesPerSegment)
	pen := outsideDisks(path, disks, cfg.Eps, cfg.SamplesPerSegment)

	issues := make([]string, 0, self.Count+pen.Count)
	issues = append(issues, self.Issues...)
	issues = append(issues, pen.Issues...)

	return Summary{Valid: len(issues) == 0, Issues: issues}
}

// flatten turns the path into one chord chain in travel order.
func flatten(path []geom.Segment, samples int) []chord {
	out := make([]chord, 0, len(path)*samples)
	var (
		k   int
		s   geom.Segment
		i   int
		pts []geom.Point
	)
	for k, s = range path {
		pts = s.Sample(samples)
		for i = 0; i+1 < len(pts); i++ {
			out = append(out, chord{a: pts[i], b: pts[i+1], seg: k})
		}
	}

	return out
}

// pathClosed reports whether the path returns to its starting point.
func pathClosed(path []geom.Segment) bool {
	if len(path) == 0 {
		return false
	}

	return path[len(path)-1].To().Distance(path[0].From()) <= closeTol
}

// touches reports whether the segment legitimately contacts the disk.
func touches(s geom.Segment, id string) bool {
	switch seg := s.(type) {
	case geom.ArcSegment:
		return seg.DiskID == id
	case geom.TangentSegment:
		return (seg.StartDiskID != "" && seg.StartDiskID == id) ||
			(seg.EndDiskID != "" && seg.EndDiskID == id)
	}

	return false
}
