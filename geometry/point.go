/*
Package geometry provides the pixel-space value types used by the maze
generator: an integer Point and an axis-aligned Region.

Coordinates live in an unsigned space. Operations that would move a
coordinate or a size below zero fail with ErrUnderflow instead of wrapping.
*/
package geometry

import (
	"errors"
	"fmt"
)

var (
	ErrUnderflow = errors.New("coordinate underflow")
)

// Point is a position or a size in pixel space.
type Point struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// AddScalar adds n to both components.
func (p Point) AddScalar(n int) Point {
	return p.Add(Point{X: n, Y: n})
}

// Sub returns p - q, failing if either component would become negative.
func (p Point) Sub(q Point) (Point, error) {
	if q.X > p.X || q.Y > p.Y {
		return Point{}, fmt.Errorf("%v - %v: %w", p, q, ErrUnderflow)
	}
	return Point{X: p.X - q.X, Y: p.Y - q.Y}, nil
}

// SubScalar subtracts n from both components.
func (p Point) SubScalar(n int) (Point, error) {
	return p.Sub(Point{X: n, Y: n})
}

// StrictlyDominates reports whether p is strictly greater than q on both
// axes. Points that agree on an axis, or disagree in direction, are
// incomparable and yield false both ways.
func (p Point) StrictlyDominates(q Point) bool {
	return p.X > q.X && p.Y > q.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
