package tangency_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/taut/geom"
	"github.com/katalvlaran/taut/tangency"
)

func disk(id string, x, y, r float64) geom.Disk {
	return geom.Disk{ID: id, Center: geom.Point{X: x, Y: y}, Radius: r}
}

func TestBuild_TwoDisks(t *testing.T) {
	g, err := tangency.Build([]geom.Disk{
		disk("d0", 0, 0, 50),
		disk("d1", 150, 0, 50),
	})
	require.NoError(t, err)

	// Four tangents per ordered pair, both directions.
	require.Len(t, g.Edges, 8)
	require.Len(t, g.Between("d0", "d1"), 4)
	require.Len(t, g.Between("d1", "d0"), 4)
	require.Len(t, g.From("d0"), 4)
	require.Nil(t, g.Between("d0", "d0"))
	require.Nil(t, g.Between("d0", "nope"))

	d, ok := g.Disk("d1")
	require.True(t, ok)
	require.InDelta(t, 150.0, d.Center.X, 1e-12)
	_, ok = g.Disk("nope")
	require.False(t, ok)
}

func TestBuild_OuterOnly(t *testing.T) {
	g, err := tangency.Build([]geom.Disk{
		disk("d0", 0, 0, 50),
		disk("d1", 150, 0, 50),
	}, tangency.WithOuterOnly())
	require.NoError(t, err)

	require.Len(t, g.Edges, 4)
	for _, e := range g.Edges {
		require.True(t, e.Type.Outer(), "unexpected inner tangent %s", e.Type)
	}
}

// TestBuild_CollisionFiltering: an oversized middle disk blocks every direct
// tangent between the outer pair; disabling collision checks restores them.
func TestBuild_CollisionFiltering(t *testing.T) {
	disks := []geom.Disk{
		disk("d0", 0, 0, 50),
		disk("d1", 300, 0, 50),
		disk("mid", 150, 0, 60),
	}

	g, err := tangency.Build(disks)
	require.NoError(t, err)
	require.Empty(t, g.Between("d0", "d1"))
	require.Empty(t, g.Between("d1", "d0"))
	// Hops to and from the middle disk survive.
	require.NotEmpty(t, g.Between("d0", "mid"))
	require.NotEmpty(t, g.Between("mid", "d1"))

	unfiltered, err := tangency.Build(disks, tangency.WithoutCollisionChecks())
	require.NoError(t, err)
	require.Len(t, unfiltered.Between("d0", "d1"), 4)
	require.Greater(t, len(unfiltered.Edges), len(g.Edges))
}

// TestBuild_GrazingThirdDisk: a middle disk the tangent line exactly touches
// must not block it; exact tangency is contact, not penetration.
func TestBuild_GrazingThirdDisk(t *testing.T) {
	g, err := tangency.Build([]geom.Disk{
		disk("d0", 0, 0, 50),
		disk("d1", 300, 0, 50),
		disk("mid", 150, 0, 50),
	})
	require.NoError(t, err)

	between := g.Between("d0", "d1")
	var outer int
	for _, e := range between {
		if e.Type.Outer() {
			outer++
		}
	}
	require.Equal(t, 2, outer, "grazing contact must not discard outer tangents")
}

func TestBuild_Obstacles(t *testing.T) {
	disks := []geom.Disk{
		disk("d0", 0, 0, 50),
		disk("d1", 300, 0, 50),
	}
	wall := tangency.Obstacle{
		A: geom.Point{X: 150, Y: -200},
		B: geom.Point{X: 150, Y: 200},
	}

	g, err := tangency.Build(disks, tangency.WithObstacles(wall))
	require.NoError(t, err)
	require.Empty(t, g.Edges)

	// The wall is ignored when collision checks are off.
	g, err = tangency.Build(disks, tangency.WithObstacles(wall), tangency.WithoutCollisionChecks())
	require.NoError(t, err)
	require.Len(t, g.Edges, 8)
}

func TestBuild_Validation(t *testing.T) {
	_, err := tangency.Build(nil)
	require.ErrorIs(t, err, tangency.ErrNoDisks)

	_, err = tangency.Build([]geom.Disk{
		disk("a", 0, 0, 10),
		disk("a", 50, 0, 10),
	})
	require.ErrorIs(t, err, tangency.ErrDuplicateDiskID)

	_, err = tangency.Build([]geom.Disk{disk("a", 0, 0, 0)})
	require.ErrorIs(t, err, tangency.ErrNonPositiveRadius)

	_, err = tangency.Build([]geom.Disk{disk("a", 0, 0, -5)})
	require.ErrorIs(t, err, tangency.ErrNonPositiveRadius)
}

// TestBuild_Deterministic: identical input produces identical graphs,
// including edge order.
func TestBuild_Deterministic(t *testing.T) {
	disks := []geom.Disk{
		disk("a", 0, 0, 30),
		disk("b", 120, 10, 40),
		disk("c", 60, 140, 25),
		disk("d", -80, 90, 35),
	}

	first, err := tangency.Build(disks)
	require.NoError(t, err)

	var i int
	for i = 0; i < 5; i++ {
		again, err := tangency.Build(disks)
		require.NoError(t, err)
		require.Equal(t, first.Edges, again.Edges)
	}
}

// TestBuild_InputIsolation: mutating the caller's slice after Build must not
// change the graph.
func TestBuild_InputIsolation(t *testing.T) {
	disks := []geom.Disk{
		disk("a", 0, 0, 30),
		disk("b", 100, 0, 30),
	}

	g, err := tangency.Build(disks)
	require.NoError(t, err)

	disks[0].Center.X = 999
	d, ok := g.Disk("a")
	require.True(t, ok)
	require.InDelta(t, 0.0, d.Center.X, 1e-12)
	require.Len(t, g.Between("a", "b"), 4)
}
