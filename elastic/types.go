package elastic

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/katalvlaran/taut/geom"
)

// Sentinel errors returned by FromPath and Reconstruct.
var (
	// ErrEmptyPath is returned when freezing an empty path.
	ErrEmptyPath = errors.New("elastic: empty path")
	// ErrFreeTangent is returned when a path contains a straight run without
	// disk bindings; such runs have no topological form.
	ErrFreeTangent = errors.New("elastic: tangent without disk binding")
	// ErrUnknownDisk is returned when an envelope references a disk id the
	// live configuration does not contain.
	ErrUnknownDisk = errors.New("elastic: unknown disk")
	// ErrNoTangent is returned when a stored tangent class no longer exists
	// between its two disks, typically after they moved into each other.
	ErrNoTangent = errors.New("elastic: tangent no longer exists")
)

// DiskArc is the topological arc: which disk, which boundary angles, which
// wrap direction. No coordinates; geometry is rederived from live disk state.
type DiskArc struct {
	DiskID     string
	StartAngle float64
	EndAngle   float64
	Chirality  geom.Chirality
}

// Tangent is the topological tangent run: which disk pair and which of the
// four tangent classes. No coordinates.
type Tangent struct {
	FromDiskID string
	ToDiskID   string
	Type       geom.TangentType
}

// Segment is either a DiskArc or a Tangent.
type Segment interface {
	isElastic()
}

func (DiskArc) isElastic() {}
func (Tangent) isElastic() {}

// Envelope is the persisted, coordinate-free form of an envelope. It stays
// reconstructible under arbitrary disk translation and resizing because all
// geometry is rederived from the live disks on demand.
type Envelope struct {
	Segments     []Segment        `json:"segments"`
	DiskSequence []string         `json:"diskSequence"`
	Chiralities  []geom.Chirality `json:"chiralities"`
	Closed       bool             `json:"closed"`
}

// diskArcJSON is the wire shape of a DiskArc, tagged "diskArc".
type diskArcJSON struct {
	Type       string         `json:"type"`
	DiskID     string         `json:"diskId"`
	StartAngle float64        `json:"startAngle"`
	EndAngle   float64        `json:"endAngle"`
	Chirality  geom.Chirality `json:"chirality"`
}

// tangentJSON is the wire shape of a Tangent, tagged "tangent".
type tangentJSON struct {
	Type        string           `json:"type"`
	FromDiskID  string           `json:"fromDiskId"`
	ToDiskID    string           `json:"toDiskId"`
	TangentType geom.TangentType `json:"tangentType"`
}

// MarshalJSON encodes the arc with its "diskArc" tag.
func (a DiskArc) MarshalJSON() ([]byte, error) {
	return json.Marshal(diskArcJSON{
		Type:       "diskArc",
		DiskID:     a.DiskID,
		StartAngle: a.StartAngle,
		EndAngle:   a.EndAngle,
		Chirality:  a.Chirality,
	})
}

// MarshalJSON encodes the tangent with its "tangent" tag.
func (t Tangent) MarshalJSON() ([]byte, error) {
	return json.Marshal(tangentJSON{
		Type:        "tangent",
		FromDiskID:  t.FromDiskID,
		ToDiskID:    t.ToDiskID,
		TangentType: t.Type,
	})
}

// UnmarshalJSON decodes the tagged segment union.
func (e *Envelope) UnmarshalJSON(data []byte) error {
	var raw struct {
		Segments     []json.RawMessage `json:"segments"`
		DiskSequence []string          `json:"diskSequence"`
		Chiralities  []geom.Chirality  `json:"chiralities"`
		Closed       bool              `json:"closed"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("elastic: %w", err)
	}

	segments := make([]Segment, 0, len(raw.Segments))
	var (
		msg   json.RawMessage
		probe struct {
			Type string `json:"type"`
		}
	)
	for _, msg = range raw.Segments {
		if err := json.Unmarshal(msg, &probe); err != nil {
			return fmt.Errorf("elastic: %w", err)
		}
		switch probe.Type {
		case "diskArc":
			var a diskArcJSON
			if err := json.Unmarshal(msg, &a); err != nil {
				return fmt.Errorf("elastic: %w", err)
			}
			segments = append(segments, DiskArc{
				DiskID:     a.DiskID,
				StartAngle: a.StartAngle,
				EndAngle:   a.EndAngle,
				Chirality:  a.Chirality,
			})
		case "tangent":
			var t tangentJSON
			if err := json.Unmarshal(msg, &t); err != nil {
				return fmt.Errorf("elastic: %w", err)
			}
			segments = append(segments, Tangent{
				FromDiskID: t.FromDiskID,
				ToDiskID:   t.ToDiskID,
				Type:       t.TangentType,
			})
		default:
			return fmt.Errorf("elastic: unknown segment type %q", probe.Type)
		}
	}

	e.Segments = segments
	e.DiskSequence = raw.DiskSequence
	e.Chiralities = raw.Chiralities
	e.Closed = raw.Closed

	return nil
}

// Report collects human-readable findings from Validate. An empty report
// means the envelope is sound.
type Report struct {
	Issues []string
}

// OK reports whether no issues were found.
func (r Report) OK() bool { return len(r.Issues) == 0 }

func (r *Report) addf(format string, args ...interface{}) {
	r.Issues = append(r.Issues, fmt.Sprintf(format, args...))
}
