package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointArithmetic(t *testing.T) {
	p := Point{X: 5, Y: 7}

	t.Run("Add point and scalar", func(t *testing.T) {
		assert.Equal(t, Point{X: 6, Y: 9}, p.Add(Point{X: 1, Y: 2}))
		assert.Equal(t, Point{X: 8, Y: 10}, p.AddScalar(3))
	})

	t.Run("Sub within range", func(t *testing.T) {
		got, err := p.Sub(Point{X: 5, Y: 1})
		require.NoError(t, err)
		assert.Equal(t, Point{X: 0, Y: 6}, got)

		got, err = p.SubScalar(5)
		require.NoError(t, err)
		assert.Equal(t, Point{X: 0, Y: 2}, got)
	})

	t.Run("Sub underflow fails", func(t *testing.T) {
		_, err := p.Sub(Point{X: 6, Y: 0})
		assert.ErrorIs(t, err, ErrUnderflow)

		_, err = p.SubScalar(6)
		assert.ErrorIs(t, err, ErrUnderflow)
	})
}

func TestStrictlyDominates(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		want bool
	}{
		{"greater on both axes", Point{3, 3}, Point{1, 1}, true},
		{"equal", Point{2, 2}, Point{2, 2}, false},
		{"equal on one axis", Point{3, 2}, Point{1, 2}, false},
		{"axes disagree", Point{3, 1}, Point{1, 3}, false},
		{"smaller on both axes", Point{1, 1}, Point{3, 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.StrictlyDominates(tt.q))
		})
	}

	// three mutually incomparable points
	a, b, c := Point{0, 2}, Point{1, 1}, Point{2, 0}
	for _, pair := range [][2]Point{{a, b}, {b, c}, {a, c}} {
		assert.False(t, pair[0].StrictlyDominates(pair[1]))
		assert.False(t, pair[1].StrictlyDominates(pair[0]))
	}
}

func TestRegionIntersect(t *testing.T) {
	r := Region{TopLeft: Point{X: 2, Y: 3}, Size: Point{X: 4, Y: 5}}
	br := r.BottomRight()
	assert.Equal(t, Point{X: 6, Y: 8}, br)

	t.Run("Corners are excluded", func(t *testing.T) {
		for _, p := range []Point{r.TopLeft, br, {X: br.X, Y: r.TopLeft.Y}, {X: r.TopLeft.X, Y: br.Y}} {
			assert.False(t, r.Intersect(p), "corner %v", p)
		}
	})

	t.Run("Boundary pixels are excluded", func(t *testing.T) {
		for x := r.TopLeft.X; x <= br.X; x++ {
			assert.False(t, r.Intersect(Point{X: x, Y: r.TopLeft.Y}))
			assert.False(t, r.Intersect(Point{X: x, Y: br.Y}))
		}
		for y := r.TopLeft.Y; y <= br.Y; y++ {
			assert.False(t, r.Intersect(Point{X: r.TopLeft.X, Y: y}))
			assert.False(t, r.Intersect(Point{X: br.X, Y: y}))
		}
	})

	t.Run("Interior is included", func(t *testing.T) {
		count := 0
		for y := 0; y < 12; y++ {
			for x := 0; x < 12; x++ {
				if r.Intersect(Point{X: x, Y: y}) {
					count++
				}
			}
		}
		assert.Equal(t, (r.Size.X-1)*(r.Size.Y-1), count)
	})
}

func TestRegionShrink(t *testing.T) {
	r := Region{TopLeft: Point{X: 0, Y: 0}, Size: Point{X: 40, Y: 24}}

	t.Run("Shrink by scalar", func(t *testing.T) {
		got, err := r.ShrinkBy(4)
		require.NoError(t, err)
		assert.Equal(t, Region{TopLeft: Point{X: 4, Y: 4}, Size: Point{X: 32, Y: 16}}, got)
	})

	t.Run("Shrink by point", func(t *testing.T) {
		got, err := r.Shrink(Point{X: 1, Y: 2})
		require.NoError(t, err)
		assert.Equal(t, Region{TopLeft: Point{X: 1, Y: 2}, Size: Point{X: 38, Y: 20}}, got)
	})

	t.Run("Shrink composes additively", func(t *testing.T) {
		for a := 0; a <= 6; a++ {
			for b := 0; a+b <= 12; b++ {
				step, err := r.ShrinkBy(a)
				require.NoError(t, err)
				twice, err := step.ShrinkBy(b)
				require.NoError(t, err)
				once, err := r.ShrinkBy(a + b)
				require.NoError(t, err)
				assert.Equal(t, once, twice)
			}
		}
	})

	t.Run("Shrink to zero size is valid", func(t *testing.T) {
		got, err := r.ShrinkBy(12)
		require.NoError(t, err)
		assert.Equal(t, Point{X: 16, Y: 0}, got.Size)
	})

	t.Run("Shrink past zero fails", func(t *testing.T) {
		_, err := r.ShrinkBy(13)
		assert.ErrorIs(t, err, ErrUnderflow)
	})
}
