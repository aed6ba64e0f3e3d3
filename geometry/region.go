package geometry

import "fmt"

// Region is an axis-aligned rectangle defined by its top-left corner and size.
type Region struct {
	TopLeft Point `json:"top_left" bson:"topLeft"`
	Size    Point `json:"size" bson:"size"`
}

// BottomRight returns TopLeft + Size.
func (r Region) BottomRight() Point {
	return r.TopLeft.Add(r.Size)
}

// Intersect reports whether p lies strictly inside r. Pixels on any of the
// four edges, corners included, are outside.
func (r Region) Intersect(p Point) bool {
	return p.StrictlyDominates(r.TopLeft) && r.BottomRight().StrictlyDominates(p)
}

// Shrink insets every side of r by amount. The size shrinks by twice the
// amount on each axis.
func (r Region) Shrink(amount Point) (Region, error) {
	size, err := r.Size.Sub(amount.Add(amount))
	if err != nil {
		return Region{}, fmt.Errorf("shrinking %v by %v: %w", r, amount, err)
	}
	return Region{TopLeft: r.TopLeft.Add(amount), Size: size}, nil
}

// ShrinkBy insets every side of r by n pixels.
func (r Region) ShrinkBy(n int) (Region, error) {
	return r.Shrink(Point{X: n, Y: n})
}

func (r Region) String() string {
	return fmt.Sprintf("[%v+%v]", r.TopLeft, r.Size)
}
