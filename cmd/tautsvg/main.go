// Command tautsvg renders a scene JSON file as SVG.
//
// The scene names disks and picks one of three constructions: anchors
// route a path through the disk field, a disk_sequence solves the pinned
// envelope, and a bare disk set falls back to the taut hull. The SVG goes
// to stdout unless -out is given; status and validation warnings go to
// stderr.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/taut/geom"
	"github.com/katalvlaran/taut/hull"
	"github.com/katalvlaran/taut/render"
	"github.com/katalvlaran/taut/route"
	"github.com/katalvlaran/taut/sequence"
	"github.com/katalvlaran/taut/tangency"
	"github.com/katalvlaran/taut/validate"
)

type scenePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type sceneDisk struct {
	ID     string     `json:"id"`
	Center scenePoint `json:"center"`
	Radius float64    `json:"radius"`
}

type scene struct {
	Disks        []sceneDisk  `json:"disks"`
	DiskSequence []string     `json:"disk_sequence"`
	Chiralities  []string     `json:"chiralities"`
	Closed       bool         `json:"closed"`
	Anchors      []scenePoint `json:"anchors"`
}

func main() {
	in := flag.String("in", "", "scene JSON file")
	out := flag.String("out", "", "output SVG file (default: stdout)")
	flag.Parse()

	if *in == "" {
		fmt.Println("Usage: tautsvg -in <scene.json> [-out <file.svg>]")
		os.Exit(1)
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read scene: %v\n", err)
		os.Exit(1)
	}

	var sc scene
	if err = json.Unmarshal(data, &sc); err != nil {
		fmt.Fprintf(os.Stderr, "parse scene: %v\n", err)
		os.Exit(1)
	}

	disks := make([]geom.Disk, 0, len(sc.Disks))
	for i, d := range sc.Disks {
		id := d.ID
		if id == "" {
			id = fmt.Sprintf("d%d", i)
		}
		disks = append(disks, geom.Disk{
			ID:     id,
			Center: geom.Point{X: d.Center.X, Y: d.Center.Y},
			Radius: d.Radius,
		})
	}

	path, length, err := solve(sc, disks)
	if err != nil {
		fmt.Fprintf(os.Stderr, "solve scene: %v\n", err)
		os.Exit(1)
	}

	// Warn on paths the checks would reject, but still draw them.
	sum := validate.Run(path, disks)
	for _, issue := range sum.Issues {
		fmt.Fprintf(os.Stderr, "warning: %s\n", issue)
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		f, cerr := os.Create(*out)
		if cerr != nil {
			fmt.Fprintf(os.Stderr, "create output: %v\n", cerr)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if err = render.WriteSVG(w, disks, path); err != nil {
		fmt.Fprintf(os.Stderr, "write svg: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "%d segments, length %.4f\n", len(path), length)
}

// solve picks the construction the scene asks for.
func solve(sc scene, disks []geom.Disk) ([]geom.Segment, float64, error) {
	switch {
	case len(sc.Anchors) >= 2:
		anchors := make([]geom.Point, 0, len(sc.Anchors))
		for _, a := range sc.Anchors {
			anchors = append(anchors, geom.Point{X: a.X, Y: a.Y})
		}
		res, err := route.FindPathFromPoints(anchors, disks)
		if err != nil {
			return nil, 0, err
		}
		return res.Path, res.Length, nil

	case len(sc.DiskSequence) >= 2:
		g, err := tangency.Build(disks)
		if err != nil {
			return nil, 0, err
		}
		opts := make([]sequence.Option, 0, 2)
		if sc.Closed {
			opts = append(opts, sequence.WithClosed())
		}
		if len(sc.Chiralities) > 0 {
			chir, cerr := parseChiralities(sc.Chiralities)
			if cerr != nil {
				return nil, 0, cerr
			}
			opts = append(opts, sequence.WithChiralities(chir...))
		}
		res, err := sequence.FindPath(g, sc.DiskSequence, opts...)
		if err != nil {
			return nil, 0, err
		}
		return res.Path, res.Length, nil

	default:
		res, err := hull.Hull(disks)
		if err != nil {
			return nil, 0, err
		}
		return res.Path, res.Perimeter, nil
	}
}

func parseChiralities(in []string) ([]geom.Chirality, error) {
	out := make([]geom.Chirality, 0, len(in))
	for i, s := range in {
		switch s {
		case "L":
			out = append(out, geom.CCW)
		case "R":
			out = append(out, geom.CW)
		default:
			return nil, fmt.Errorf("chirality %d must be \"L\" or \"R\", got %q", i, s)
		}
	}
	return out, nil
}
