// Package dubins computes shortest bounded-curvature paths between oriented
// poses: the classic six-word Dubins system of arcs on minimum-radius
// turning circles joined by straight tangent runs.
//
// Overview:
//
//   - A Pose is a position plus heading. Each pose owns two turning circles
//     of the minimum radius, one for each turn direction; the circle is
//     tangent to the heading at the pose position by construction.
//   - CSC words (LSL, RSR, LSR, RSL) run arc → straight tangent → arc. They
//     are considered valid only when the two turning-circle centers are at
//     least 2·minRadius apart (with tolerance): below that bound this
//     system treats the configuration as a CCC candidate instead.
//   - CCC words (LRL, RLR) insert a third circle externally tangent to both
//     endpoint circles; they exist only when the centers are at most
//     4·minRadius apart. The middle circle can sit on either side of the
//     center line (law of cosines, α = acos(D/4r)); the shorter side is
//     kept.
//   - MinimalPath evaluates all six words in the fixed order LSL, RSR, LSR,
//     RSL, LRL, RLR and returns the first strictly shortest valid path.
//     When no word is valid it falls back to the straight connector rather
//     than failing, so callers always receive a drawable path.
//
// Error handling:
//
//   - Geometric non-existence is never an error: an invalid word reports
//     Valid=false with TotalLength=+Inf, so candidates filter and compare
//     uniformly. The only panic in the package is WithMinRadius on a
//     non-positive radius, which is a configuration bug, not geometry.
//
// Determinism: identical inputs produce identical paths; ties between words
// resolve by the fixed evaluation order.
//
// Complexity: O(1) per word, O(1) overall: six candidate constructions of
// constant size.
package dubins
