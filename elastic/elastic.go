package elastic

import (
	"fmt"

	"github.com/katalvlaran/taut/geom"
)

// closeTol is the endpoint gap below which a concrete path counts as closed.
const closeTol = 1e-6

// clearanceTol is the boundary slack granted to reconstructed tangents before
// Validate reports them as cutting an uninvolved disk.
const clearanceTol = 1e-6

// FromPath freezes a concrete solved path into its coordinate-free form.
//
// Arcs keep their disk binding, angle pair and wrap direction; tangents keep
// only their endpoint disk ids and tangent type. A tangent that carries no
// disk binding on either side (a free run between anchors) has no
// coordinate-free identity and is rejected with ErrFreeTangent.
//
// The disk sequence is the consecutive-deduplicated list of contacted disk
// ids in travel order; when the path is closed and the chain returns to its
// first disk, the trailing duplicate is dropped so the sequence reads as one
// cycle. Each visit records the wrap direction observed at that disk.
func FromPath(path []geom.Segment) (Envelope, error) {
	if len(path) == 0 {
		return Envelope{}, ErrEmptyPath
	}

	// --- 1. Freeze every segment to its topological form. ---
	segments := make([]Segment, 0, len(path))
	for i, s := range path {
		switch seg := s.(type) {
		case geom.ArcSegment:
			segments = append(segments, DiskArc{
				DiskID:     seg.DiskID,
				StartAngle: seg.StartAngle,
				EndAngle:   seg.EndAngle,
				Chirality:  seg.Chirality,
			})
		case geom.TangentSegment:
			if !seg.Type.Valid() || seg.StartDiskID == "" || seg.EndDiskID == "" {
				return Envelope{}, fmt.Errorf("%w: segment %d", ErrFreeTangent, i)
			}
			segments = append(segments, Tangent{
				FromDiskID: seg.StartDiskID,
				ToDiskID:   seg.EndDiskID,
				Type:       seg.Type,
			})
		}
	}

	// --- 2. Record disk visits in travel order, deduplicating stays. ---
	var (
		seqIDs []string
		chir   []geom.Chirality
	)
	visit := func(id string, ch geom.Chirality) {
		if n := len(seqIDs); n > 0 && seqIDs[n-1] == id {
			return
		}
		seqIDs = append(seqIDs, id)
		chir = append(chir, ch)
	}
	for _, s := range segments {
		switch seg := s.(type) {
		case DiskArc:
			visit(seg.DiskID, seg.Chirality)
		case Tangent:
			visit(seg.FromDiskID, seg.Type.Departure())
			visit(seg.ToDiskID, seg.Type.Arrival())
		}
	}

	// --- 3. Detect closure and collapse the seam duplicate. ---
	closed := path[len(path)-1].To().Distance(path[0].From()) <= closeTol
	if closed {
		if n := len(seqIDs); n > 1 && seqIDs[0] == seqIDs[n-1] {
			seqIDs = seqIDs[:n-1]
			chir = chir[:n-1]
		}
	}

	return Envelope{
		Segments:     segments,
		DiskSequence: seqIDs,
		Chiralities:  chir,
		Closed:       closed,
	}, nil
}

// Reconstruct rebuilds a concrete path from an envelope against the current
// disk positions.
//
// Tangents are re-derived from live geometry by their stored type; stored
// coordinates play no part. Arcs then slide elastically: each arc's start
// angle snaps to the live touch point of the tangent arriving before it and
// its end angle to the touch point of the tangent departing after it, with
// neighbors wrapping around the seam when the envelope is closed. An arc
// side with no adjacent tangent keeps its stored angle.
//
// Returns ErrUnknownDisk when a referenced disk id is absent from disks, and
// ErrNoTangent when a stored tangent type no longer exists between its two
// disks (one disk has swallowed the other's tangent line).
func Reconstruct(env Envelope, disks []geom.Disk) ([]geom.Segment, error) {
	byID := make(map[string]geom.Disk, len(disks))
	for _, d := range disks {
		byID[d.ID] = d
	}

	out := make([]geom.Segment, len(env.Segments))

	// --- 1. Re-derive every tangent from live disk geometry. ---
	for i, s := range env.Segments {
		t, ok := s.(Tangent)
		if !ok {
			continue
		}
		from, okFrom := byID[t.FromDiskID]
		if !okFrom {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDisk, t.FromDiskID)
		}
		to, okTo := byID[t.ToDiskID]
		if !okTo {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDisk, t.ToDiskID)
		}
		conc, found := liveTangent(from, to, t.Type)
		if !found {
			return nil, fmt.Errorf("%w: %s between %q and %q",
				ErrNoTangent, t.Type, t.FromDiskID, t.ToDiskID)
		}
		out[i] = conc
	}

	// --- 2. Slide every arc onto its neighbors' live touch points. ---
	for i, s := range env.Segments {
		a, ok := s.(DiskArc)
		if !ok {
			continue
		}
		d, okDisk := byID[a.DiskID]
		if !okDisk {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDisk, a.DiskID)
		}

		start, end := a.StartAngle, a.EndAngle
		if prev, okPrev := neighborTangent(out, i, -1, env.Closed); okPrev && prev.EndDiskID == a.DiskID {
			start = d.AngleOf(prev.End)
		}
		if next, okNext := neighborTangent(out, i, +1, env.Closed); okNext && next.StartDiskID == a.DiskID {
			end = d.AngleOf(next.Start)
		}

		out[i] = geom.ArcSegment{
			DiskID:     a.DiskID,
			Center:     d.Center,
			Radius:     d.Radius,
			StartAngle: start,
			EndAngle:   end,
			Chirality:  a.Chirality,
			Length:     geom.ArcLength(d.Radius, start, end, a.Chirality),
		}
	}

	return out, nil
}

// liveTangent computes the concrete tangent of the wanted type between two
// disks at their current positions.
func liveTangent(from, to geom.Disk, want geom.TangentType) (geom.TangentSegment, bool) {
	for _, t := range geom.Bitangents(from, to) {
		if t.Type == want {
			return t, true
		}
	}

	return geom.TangentSegment{}, false
}

// neighborTangent returns the tangent adjacent to segment i in the given
// direction, wrapping across the seam for closed envelopes.
func neighborTangent(segs []geom.Segment, i, step int, closed bool) (geom.TangentSegment, bool) {
	j := i + step
	if closed {
		n := len(segs)
		j = ((j % n) + n) % n
	} else if j < 0 || j >= len(segs) {
		return geom.TangentSegment{}, false
	}

	t, ok := segs[j].(geom.TangentSegment)

	return t, ok
}

// Validate checks an envelope against the current disk positions and
// accumulates every problem found into a Report. It never fails fast: a
// broken envelope yields a report naming each issue, not an error.
//
// Checks, in order:
//
//  1. Every disk id referenced by the sequence or a segment exists in disks.
//  2. No stored arc has collapsed to zero sweep.
//  3. Segment disk ids chain: an arc stays on the current disk, a tangent
//     departs it, and a closed envelope's last contact meets its first.
//  4. Reconstructed tangents keep clear of every disk they do not touch.
func Validate(env Envelope, disks []geom.Disk) Report {
	var rep Report

	byID := make(map[string]geom.Disk, len(disks))
	for _, d := range disks {
		byID[d.ID] = d
	}

	// --- 1. Referenced disks must exist. ---
	for _, id := range env.DiskSequence {
		if _, ok := byID[id]; !ok {
			rep.addf("unknown disk %q in sequence", id)
		}
	}
	for i, s := range env.Segments {
		switch seg := s.(type) {
		case DiskArc:
			if _, ok := byID[seg.DiskID]; !ok {
				rep.addf("segment %d: unknown disk %q", i, seg.DiskID)
			}
		case Tangent:
			if _, ok := byID[seg.FromDiskID]; !ok {
				rep.addf("segment %d: unknown disk %q", i, seg.FromDiskID)
			}
			if _, ok := byID[seg.ToDiskID]; !ok {
				rep.addf("segment %d: unknown disk %q", i, seg.ToDiskID)
			}
		}
	}

	// --- 2. Stored arcs must sweep a nonzero angle. ---
	for i, s := range env.Segments {
		a, ok := s.(DiskArc)
		if !ok {
			continue
		}
		sweep := geom.CCWDelta(a.StartAngle, a.EndAngle)
		if a.Chirality == geom.CW {
			sweep = geom.CCWDelta(a.EndAngle, a.StartAngle)
		}
		if sweep == 0 {
			rep.addf("segment %d: zero-length arc on disk %q", i, a.DiskID)
		}
	}

	// --- 3. Disk ids must chain through the segment list. ---
	current := ""
	for i, s := range env.Segments {
		switch seg := s.(type) {
		case DiskArc:
			if current != "" && current != seg.DiskID {
				rep.addf("segment %d: arc on disk %q but the chain is on %q", i, seg.DiskID, current)
			}
			current = seg.DiskID
		case Tangent:
			if current != "" && current != seg.FromDiskID {
				rep.addf("segment %d: tangent departs %q but the chain is on %q", i, seg.FromDiskID, current)
			}
			current = seg.ToDiskID
		}
	}
	if env.Closed && len(env.Segments) > 0 && current != "" {
		first := contactID(env.Segments[0])
		if first != "" && first != current {
			rep.addf("closed chain ends on %q but starts on %q", current, first)
		}
	}

	// --- 4. Reconstructed tangents must clear uninvolved disks. ---
	concrete, err := Reconstruct(env, disks)
	if err != nil {
		rep.addf("reconstruct: %v", err)

		return rep
	}
	for i, s := range concrete {
		t, ok := s.(geom.TangentSegment)
		if !ok {
			continue
		}
		for _, d := range disks {
			if d.ID == t.StartDiskID || d.ID == t.EndDiskID {
				continue
			}
			if geom.DistanceToSegment(d.Center, t.Start, t.End) < d.Radius-clearanceTol {
				rep.addf("segment %d: tangent %s→%s cuts disk %q", i, t.StartDiskID, t.EndDiskID, d.ID)
			}
		}
	}

	return rep
}

// contactID returns the disk id a segment first touches.
func contactID(s Segment) string {
	switch seg := s.(type) {
	case DiskArc:
		return seg.DiskID
	case Tangent:
		return seg.FromDiskID
	}

	return ""
}
