// Package tangency — graph types and build configuration.
package tangency

import (
	"errors"

	"github.com/katalvlaran/taut/geom"
)

// Sentinel errors returned by Build.
var (
	// ErrNoDisks indicates that Build was called with an empty disk list.
	ErrNoDisks = errors.New("tangency: no disks provided")

	// ErrDuplicateDiskID indicates that two disks in the input share an id.
	ErrDuplicateDiskID = errors.New("tangency: duplicate disk id")

	// ErrNonPositiveRadius indicates a disk whose radius is zero or negative.
	ErrNonPositiveRadius = errors.New("tangency: disk radius must be positive")
)

// Obstacle is a straight wall segment; tangents crossing it are discarded.
type Obstacle struct {
	A geom.Point `json:"a"`
	B geom.Point `json:"b"`
}

// Graph is the throwaway, per-layout tangency graph: the disks of the
// configuration plus every tangent segment that survived filtering.
//
// Edges keep the deterministic construction order: ordered disk pairs in
// input order, each pair's tangents in Bitangents order (LSL, RSR, LSR,
// RSL). Solvers rely on this order for reproducible tie-breaking.
type Graph struct {
	disks []geom.Disk
	byID  map[string]geom.Disk

	// Edges is the flat list of surviving tangent segments.
	Edges []geom.TangentSegment

	byPair map[pairKey][]int // indices into Edges
	byFrom map[string][]int  // indices into Edges
}

type pairKey struct {
	from, to string
}

// Disks returns the graph's disks in input order. The slice is shared;
// callers must not mutate it.
func (g *Graph) Disks() []geom.Disk { return g.disks }

// Disk returns the disk with the given id.
func (g *Graph) Disk(id string) (geom.Disk, bool) {
	d, ok := g.byID[id]
	return d, ok
}

// Between returns the surviving tangents running from one disk to another,
// in construction order. The result is nil when no tangent survived.
func (g *Graph) Between(fromID, toID string) []geom.TangentSegment {
	idx := g.byPair[pairKey{from: fromID, to: toID}]
	if len(idx) == 0 {
		return nil
	}
	out := make([]geom.TangentSegment, 0, len(idx))
	var i int
	for _, i = range idx {
		out = append(out, g.Edges[i])
	}
	return out
}

// From returns all surviving tangents departing the given disk, in
// construction order.
func (g *Graph) From(fromID string) []geom.TangentSegment {
	idx := g.byFrom[fromID]
	if len(idx) == 0 {
		return nil
	}
	out := make([]geom.TangentSegment, 0, len(idx))
	var i int
	for _, i = range idx {
		out = append(out, g.Edges[i])
	}
	return out
}

// Options configures graph construction.
//
// CheckCollisions – discard tangents that cut through a third disk or cross
//
//	an obstacle wall (default true).
//
// OuterOnly       – keep only LSL/RSR tangents (default false).
// Obstacles       – straight walls candidates are tested against.
type Options struct {
	CheckCollisions bool
	OuterOnly       bool
	Obstacles       []Obstacle
}

// Option is a functional option for configuring Build.
type Option func(*Options)

// WithoutCollisionChecks keeps every geometric tangent regardless of what it
// cuts through. The resulting graph is a superset of the filtered one.
func WithoutCollisionChecks() Option {
	return func(o *Options) {
		o.CheckCollisions = false
	}
}

// WithOuterOnly restricts the graph to outer (LSL/RSR) tangents.
func WithOuterOnly() Option {
	return func(o *Options) {
		o.OuterOnly = true
	}
}

// WithObstacles adds straight wall segments; any tangent crossing a wall is
// discarded. Has no effect when collision checks are disabled.
func WithObstacles(walls ...Obstacle) Option {
	return func(o *Options) {
		o.Obstacles = append(o.Obstacles, walls...)
	}
}

// DefaultOptions returns the construction defaults: collision checks on, all
// four tangent classes kept, no obstacle walls.
func DefaultOptions() Options {
	return Options{
		CheckCollisions: true,
		OuterOnly:       false,
		Obstacles:       nil,
	}
}
