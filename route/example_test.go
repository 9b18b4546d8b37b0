package route_test

import (
	"fmt"

	"github.com/katalvlaran/taut/geom"
	"github.com/katalvlaran/taut/route"
)

// ExampleFindPathFromPoints routes around a disk sitting exactly on the
// straight line between two anchors.
func ExampleFindPathFromPoints() {
	anchors := []geom.Point{
		{X: -100, Y: 0},
		{X: 100, Y: 0},
	}
	obstacles := []geom.Disk{
		{ID: "block", Center: geom.Point{X: 0, Y: 0}, Radius: 50},
	}

	res, err := route.FindPathFromPoints(anchors, obstacles)
	if err != nil {
		fmt.Println("route:", err)
		return
	}

	for _, seg := range res.Path {
		switch s := seg.(type) {
		case geom.TangentSegment:
			fmt.Printf("tangent %.2f\n", s.Length)
		case geom.ArcSegment:
			fmt.Printf("arc %.2f on %s\n", s.Length, s.DiskID)
		}
	}
	fmt.Printf("total %.2f\n", res.Length)
	// Output:
	// tangent 86.60
	// arc 52.36 on block
	// tangent 86.60
	// total 225.56
}
