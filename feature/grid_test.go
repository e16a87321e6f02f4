package feature

import (
	"github.com/stretchr/testify/require"
	"github.com/swdee/go-pawss/geom"
	"testing"
)

func TestPatchGridTilesRect(t *testing.T) {

	grid := newPatchGrid(3, 2)
	rect := geom.NewIntRect(5, 4, 10, 7)

	patches := grid.place(rect, nil)
	require.Len(t, patches, 6)

	area := 0

	for i, p := range patches {
		require.True(t, rect.Contains(p), "patch %d %+v outside rect", i, p)
		area += p.Area()

		for j := i + 1; j < len(patches); j++ {
			require.True(t, p.Intersect(patches[j]).Empty(), "patches %d and %d overlap", i, j)
		}
	}

	require.Equal(t, rect.Area(), area)
	require.Equal(t, rect, geom.Union(patches))

	// row major order
	require.Equal(t, geom.NewIntRect(5, 4, 3, 3), patches[0])
	require.Equal(t, geom.NewIntRect(8, 4, 3, 3), patches[1])
	require.Equal(t, geom.NewIntRect(11, 4, 4, 3), patches[2])
	require.Equal(t, geom.NewIntRect(5, 7, 3, 4), patches[3])
}

func TestPatchGridCachedBySize(t *testing.T) {

	grid := newPatchGrid(4, 4)

	a := grid.place(geom.NewIntRect(0, 0, 20, 20), nil)
	b := grid.place(geom.NewIntRect(7, 3, 20, 20), nil)

	for i := range a {
		require.Equal(t, a[i].Offset(7, 3), b[i])
	}

	c := grid.place(geom.NewIntRect(0, 0, 8, 8), nil)
	require.Equal(t, geom.NewIntRect(6, 6, 2, 2), c[15])
}

func TestPatchGridNarrowRect(t *testing.T) {

	grid := newPatchGrid(4, 1)
	patches := grid.place(geom.NewIntRect(0, 0, 2, 5), nil)

	area := 0
	empty := 0

	for _, p := range patches {
		area += p.Area()

		if p.Empty() {
			empty++
		}
	}

	require.Equal(t, 10, area)
	require.Equal(t, 2, empty)

	// negative sizes are treated as empty
	for _, p := range grid.place(geom.NewIntRect(3, 3, -4, 2), nil) {
		require.True(t, p.Empty())
	}
}
