package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntRectClamp(t *testing.T) {

	tests := []struct {
		name     string
		rect     IntRect
		expected IntRect
	}{
		{"inside", NewIntRect(10, 10, 20, 20), NewIntRect(10, 10, 20, 20)},
		{"left edge", NewIntRect(-5, 10, 20, 20), NewIntRect(0, 10, 15, 20)},
		{"bottom right", NewIntRect(90, 95, 20, 20), NewIntRect(90, 95, 10, 5)},
		{"outside", NewIntRect(120, 10, 20, 20), NewIntRect(100, 10, 0, 20)},
		{"negative size", NewIntRect(10, 10, -4, 5), NewIntRect(10, 10, 0, 5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.rect.Clamp(100, 100)
			require.Equal(t, tc.expected, got)
			require.GreaterOrEqual(t, got.W, 0)
			require.GreaterOrEqual(t, got.H, 0)
		})
	}
}

func TestIntRectArea(t *testing.T) {
	require.Equal(t, 200, NewIntRect(0, 0, 10, 20).Area())
	require.Equal(t, 0, NewIntRect(0, 0, 0, 20).Area())
	require.Equal(t, 0, NewIntRect(0, 0, -3, 20).Area())
	require.True(t, NewIntRect(5, 5, 10, 0).Empty())
}

func TestIntRectPad(t *testing.T) {
	r := NewIntRect(10, 20, 30, 40).Pad(2)
	require.Equal(t, NewIntRect(8, 18, 34, 44), r)
	require.Equal(t, 42, r.XMax())
	require.Equal(t, 62, r.YMax())
}

func TestUnion(t *testing.T) {
	rects := []IntRect{
		NewIntRect(10, 10, 5, 5),
		NewIntRect(30, 2, 10, 4),
		NewIntRect(12, 40, 1, 1),
	}

	require.Equal(t, RectFromBounds(10, 2, 40, 41), Union(rects))
	require.Equal(t, IntRect{}, Union(nil))
}

func TestContains(t *testing.T) {
	outer := NewIntRect(0, 0, 50, 50)
	require.True(t, outer.Contains(NewIntRect(10, 10, 40, 40)))
	require.False(t, outer.Contains(NewIntRect(10, 10, 41, 40)))
	require.True(t, outer.ContainsPoint(49, 0))
	require.False(t, outer.ContainsPoint(50, 0))
}

func TestFloatRectOverlap(t *testing.T) {
	a := NewFloatRect(0, 0, 10, 10)

	require.InDelta(t, 1.0, a.Overlap(a), 1e-12)
	require.InDelta(t, 0.0, a.Overlap(NewFloatRect(20, 20, 5, 5)), 1e-12)
	// half overlapping boxes share 50 of 150 pixels
	require.InDelta(t, 50.0/150.0, a.Overlap(NewFloatRect(5, 0, 10, 10)), 1e-12)
}

func TestFloatRectInt(t *testing.T) {
	r := NewFloatRect(10.4, 19.6, 30.5, 9.49).Int()
	require.Equal(t, NewIntRect(10, 20, 31, 9), r)

	s := NewFloatRect(10, 20, 30, 40).Scale(0.5, 0.25)
	require.Equal(t, NewFloatRect(5, 5, 15, 10), s)
}

func TestTile(t *testing.T) {
	rect := NewIntRect(10, 20, 10, 7)

	tiles := Tile(rect, 3, 2, nil)
	require.Len(t, tiles, 6)
	require.Equal(t, rect, Union(tiles))
	require.Equal(t, NewIntRect(10, 20, 3, 3), tiles[0])
	require.Equal(t, NewIntRect(16, 23, 4, 4), tiles[5])

	area := 0

	for _, tile := range tiles {
		area += tile.Area()
	}

	require.Equal(t, rect.Area(), area)

	// out is reused
	buf := make([]IntRect, 0, 6)
	require.Len(t, Tile(rect, 2, 1, buf), 2)

	require.Empty(t, Tile(rect, 0, 2, nil))

	for _, tile := range Tile(NewIntRect(3, 3, -4, 2), 2, 1, nil) {
		require.True(t, tile.Empty())
	}
}
