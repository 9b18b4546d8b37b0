// Package layout generates disk configurations for the solvers to chew on.
//
// Two sources are provided. FromGraph6 decodes a combinatorial graph in
// graph6 notation, spreads it with a force-directed layout and turns each
// node into a disk, so envelope scenes can be derived from graph structure
// alone. Random produces seeded non-overlapping scatters and doubles as the
// fixture generator for property tests: a fixed (count, seed) pair always
// yields the identical layout.
//
// Both sources guarantee pairwise non-overlap under the configured spacing
// factor, which keeps the generated scenes inside the solvers' supported
// regime (tangency construction assumes disks do not contain one another).
package layout
