// Package api is the HTTP shell around the path solvers: Dubins words,
// pinned-sequence envelopes, anchor routing and taut hulls, served with
// echo.
//
// The wire contract uses snake_case JSON. Three failure modes map to
// three very different responses:
//
//   - malformed requests (bad JSON, missing poses, non-positive radii)
//     return 400 with a message;
//   - well-formed scenes the solver cannot accept (unknown disk ids,
//     anchors inside disks) return 422;
//   - geometric non-existence (no envelope for the order, no route
//     between anchors) is a 200 with valid=false, because "the geometry
//     says no" is an answer, not an error.
//
// Every compute response carries computation_time_ms with the observed
// wall time.
package api
