package layout

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/taut/geom"
)

// maxPlacementTries bounds the rejection sampling, per requested disk.
const maxPlacementTries = 1000

// Random returns n non-overlapping disks placed by rejection sampling inside
// a square sized to the count. Radii vary between 60% and 100% of the
// configured radius. The same n and seed always produce the identical
// layout; distinct seeds produce independent ones.
func Random(n int, seed int64, opts ...Option) ([]geom.Disk, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNonPositiveCount, n)
	}
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	rng := rand.New(rand.NewSource(uint64(seed)))

	// Square side sized for easy rejection sampling: about four diameters of
	// head room per disk row.
	side := 4 * cfg.Radius * cfg.Spacing * math.Sqrt(float64(n))

	disks := make([]geom.Disk, 0, n)
	var tries int
	for len(disks) < n {
		tries++
		if tries > maxPlacementTries*n {
			return nil, fmt.Errorf("%w: placed %d of %d disks", ErrPlacement, len(disks), n)
		}

		r := cfg.Radius * (0.6 + 0.4*rng.Float64())
		c := geom.Point{
			X: (rng.Float64() - 0.5) * side,
			Y: (rng.Float64() - 0.5) * side,
		}
		if !fits(disks, c, r, cfg.Spacing) {
			continue
		}
		disks = append(disks, geom.Disk{
			ID:     fmt.Sprintf("d%d", len(disks)),
			Center: c,
			Radius: r,
		})
	}

	return disks, nil
}

// fits reports whether a disk at c with radius r keeps the spacing gap to
// every disk already placed.
func fits(disks []geom.Disk, c geom.Point, r, spacing float64) bool {
	var d geom.Disk
	for _, d = range disks {
		if c.Distance(d.Center) < (r+d.Radius)*spacing {
			return false
		}
	}

	return true
}
