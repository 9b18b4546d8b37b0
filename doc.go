// Package taut is your in-memory workbench for bounded-curvature envelopes:
// closed and open curves made of circular arcs on disk boundaries joined by
// straight tangent runs, tangent-continuous at every seam.
//
// 🚀 What is taut?
//
//	A thread-friendly geometry library that brings together:
//		• Core primitives: points, disks, the four classified bitangents, arcs
//		• Tangency graphs: which tangents survive a crowded disk field
//		• Dubins words: all six bounded-curvature paths between oriented poses
//		• Sequence envelopes: the taut curve visiting disks in a pinned order
//		• Routing: shortest anchor-to-anchor paths around disk obstacles
//		• Elastic shapes: coordinate-free envelopes that follow moving disks
//		• Validation: self-intersection and penetration checks on any path
//		• Hulls, layouts, SVG: the taut convex hull, scene generators, rendering
//
// ✨ Why choose taut?
//
//   - Deterministic - fixed tie-breaking everywhere, same input same output
//   - Honest geometry - non-existence is an answer, not an error
//   - Exact arcs - no polyline smoothing, curvature bounds hold by construction
//   - Extensible - every solver takes functional options with eager validation
//
// Under the hood, everything is organized by concern:
//
//	geom/     - points, disks, tangent classification & arc plumbing
//	tangency/ - the surviving-tangent graph over a disk field
//	dubins/   - the six bounded-curvature words between poses
//	sequence/ - envelopes pinned to a disk visiting order
//	route/    - shortest anchor-to-anchor paths around disk fields
//	elastic/  - envelope shapes that reconstruct after disks move
//	validate/ -
//	hull/     - the taut convex hull of a disk set
//	layout/   - disk field generators (seeded random, graph6)
//	render/   - SVG path data & documents
//	api/      - the HTTP shell (echo)
//
// Quick ASCII example:
//
//	    A───B        the closed envelope around disks A, B and C:
//	     \ /         three outer tangents plus three boundary arcs,
//	      C          meeting tangentially at the six touch points.
//
// Dive into the package docs for invariants, edge cases and examples.
//
//	go get github.com/katalvlaran/taut
package taut
