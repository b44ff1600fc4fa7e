package editor

import (
	"math"

	"pureheart/internal/domains/furniture"
)

// Item is one piece of furniture on the floor plan. Walls use Rotation as the
// segment angle and Length for their extent; other kinds keep Rotation on quarter turns.
type Item struct {
	ID          string
	Kind        furniture.Kind
	Position    furniture.Point
	Rotation    float64
	Size        furniture.Size
	Length      int
	TableNumber int
	MaxGuests   int
}

func (i Item) Family() furniture.Family {
	return i.Kind.Family()
}

// Label is the display name, e.g. "VIP table №2".
func (i Item) Label() string {
	return furniture.Label(i.Kind, i.TableNumber)
}

// Shape adapts the item for the preview renderer.
func (i Item) Shape() furniture.Shape {
	return furniture.Shape{
		Kind:     i.Kind,
		Position: i.Position,
		Size:     i.Size,
		Rotation: i.Rotation,
		Length:   i.Length,
	}
}

// NormalizeAngle folds any angle in degrees into [0, 360).
func NormalizeAngle(deg float64) float64 {
	r := math.Mod(deg, 360)
	if r < 0 {
		r += 360
	}

	return r
}
