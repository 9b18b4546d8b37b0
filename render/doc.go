// Package render turns paths and disk layouts into SVG.
//
// PathData is the pure half: it maps a segment path to an SVG "d" string
// in raw scene coordinates, one L per tangent and one A per arc. WriteSVG
// is the document half: it wraps the path data and the disk circles into
// a standalone SVG, sized from the scene bounding box plus a margin.
//
// Scene geometry is y-up while SVG is y-down, so WriteSVG emits a single
// scale(1,-1) group transform instead of flipping every coordinate. The
// arc flags in PathData are therefore chosen for the raw coordinates:
// counterclockwise arcs get sweep-flag 1.
package render
