package geom_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/taut/geom"
)

// ExampleBitangents computes the four common tangents of two equal disks.
// The outer pair runs along the top and bottom; the inner pair crosses
// between the disks.
func ExampleBitangents() {
	d0 := geom.Disk{ID: "d0", Center: geom.Point{X: 0, Y: 0}, Radius: 50}
	d1 := geom.Disk{ID: "d1", Center: geom.Point{X: 150, Y: 0}, Radius: 50}

	for _, t := range geom.Bitangents(d0, d1) {
		fmt.Printf("%s (%.0f,%.0f)->(%.0f,%.0f) len=%.0f\n",
			t.Type, t.Start.X, t.Start.Y, t.End.X, t.End.Y, t.Length)
	}

	// Output:
	// LSL (0,-50)->(150,-50) len=150
	// RSR (0,50)->(150,50) len=150
	// LSR (33,-37)->(117,37) len=112
	// RSL (33,37)->(117,-37) len=112
}

// ExampleArcLength shows that the wrap direction, not the angle pair,
// decides how far an arc travels.
func ExampleArcLength() {
	quarterCCW := geom.ArcLength(50, 0, math.Pi/2, geom.CCW)
	longWayCW := geom.ArcLength(50, 0, math.Pi/2, geom.CW)

	fmt.Printf("ccw: %.2f\n", quarterCCW)
	fmt.Printf("cw:  %.2f\n", longWayCW)

	// Output:
	// ccw: 78.54
	// cw:  235.62
}
