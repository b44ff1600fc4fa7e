package furniture

import (
	"errors"
	"math"
)

const (
	fullTurn   = 360
	rightAngle = 90
)

var ErrInvalidRotation = errors.New("rotation must be a multiple of 90 degrees")

type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ResolveDimensions returns the explicit size when both sides are given, otherwise the kind default.
func ResolveDimensions(kind Kind, width, height *int) Size {
	if width != nil && height != nil {
		return Size{Width: *width, Height: *height}
	}

	spec, _ := Lookup(kind)

	return spec.Size
}

// Rotated swaps the sides for quarter turns.
func (s Size) Rotated(rotation int) Size {
	if rotation%180 == rightAngle || rotation%180 == -rightAngle {
		return Size{Width: s.Height, Height: s.Width}
	}

	return s
}

// Snap rounds v to the nearest multiple of grid, halves rounding up.
func Snap(v float64, grid int) int {
	if grid <= 0 {
		return int(math.Floor(v + 0.5))
	}

	g := float64(grid)

	return int(math.Floor(v/g+0.5)) * grid
}

func SnapPoint(x, y float64, grid int) Point {
	return Point{X: Snap(x, grid), Y: Snap(y, grid)}
}

func Distance(a, b Point) float64 {
	return math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
}

// AngleDegrees is the direction from a to b, in (-180, 180].
func AngleDegrees(a, b Point) float64 {
	return math.Atan2(float64(b.Y-a.Y), float64(b.X-a.X)) * 180 / math.Pi
}

// NormalizeRotation folds deg into [0, 360) and rejects anything off the quarter turns.
func NormalizeRotation(deg int) (int, error) {
	r := ((deg % fullTurn) + fullTurn) % fullTurn
	if r%rightAngle != 0 {
		return 0, ErrInvalidRotation
	}

	return r, nil
}

// NextRotation turns a quarter clockwise.
func NextRotation(deg int) int {
	r, err := NormalizeRotation(deg + rightAngle)
	if err != nil {
		return ((deg+rightAngle)%fullTurn + fullTurn) % fullTurn
	}

	return r
}
