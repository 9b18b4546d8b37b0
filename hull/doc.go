// Package hull computes the convex closure of a disk set: which disks carry
// the outer boundary, in what order, and the closed envelope wrapped around
// all of them.
//
// The hull of disks is not the hull of their centers. A disk whose center
// sits inside the center hull can still bulge past it when its radius is
// large enough, and then the envelope must wrap it; conversely a disk
// swallowed by a bigger neighbor never touches the boundary no matter where
// its center lies. The walk therefore works on tangent lines directly: from
// the bottom of the lowest disk it repeatedly takes the counter-clockwise
// outer tangent that departs first along the current rim while keeping every
// disk on its left, until it returns to the opening tangent. A disk may
// appear twice in the resulting sequence when smaller neighbors poke out of
// it on two sides.
//
// The returned envelope is the closed all-counter-clockwise solve over the
// walk order, so Perimeter and Path match what the sequence solver would
// produce for the same tour.
package hull
