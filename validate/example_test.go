package validate_test

import (
	"fmt"

	"github.com/katalvlaran/taut/geom"
	"github.com/katalvlaran/taut/validate"
)

// ExampleRun flags a straight run that plows through a disk.
func ExampleRun() {
	path := []geom.Segment{
		geom.TangentSegment{Start: geom.Point{X: -100}, End: geom.Point{X: 100}, Length: 200},
	}
	disks := []geom.Disk{{ID: "wall", Center: geom.Point{}, Radius: 30}}

	sum := validate.Run(path, disks)
	fmt.Println("valid:", sum.Valid)
	fmt.Println(sum.Issues[0])
	// Output:
	// valid: false
	// segment 0 penetrates disk "wall" at (-25.00, 0.00)
}
