package furniture

import (
	"math"
	"slices"
	"strings"
)

const (
	DefaultPreviewScale = 20
	emptyCell           = ' '
)

// Shape is one placed item as the preview renderer sees it.
type Shape struct {
	Kind     Kind
	Position Point
	Size     Size
	Rotation float64
	Length   int
}

func (s Shape) drawOrder() int {
	switch s.Kind.Family() {
	case FamilyWall:
		return 0
	case FamilyStatic:
		return 1
	default:
		return 2
	}
}

// Render draws a read-only text preview, one character per scale×scale cell.
// Walls are drawn first and tables last, so tables stay visible where they overlap.
func Render(shapes []Shape, scale int) string {
	if len(shapes) == 0 {
		return ""
	}

	if scale <= 0 {
		scale = DefaultPreviewScale
	}

	ordered := slices.Clone(shapes)
	slices.SortStableFunc(ordered, func(a, b Shape) int { return a.drawOrder() - b.drawOrder() })

	cols, rows := 1, 1
	for _, shape := range ordered {
		maxX, maxY := shape.extent()
		cols = max(cols, maxX/scale+1)
		rows = max(rows, maxY/scale+1)
	}

	canvas := make([][]rune, rows)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(string(emptyCell), cols))
	}

	plot := func(x, y float64, glyph rune) {
		col, row := int(math.Floor(x/float64(scale))), int(math.Floor(y/float64(scale)))
		if row >= 0 && row < rows && col >= 0 && col < cols {
			canvas[row][col] = glyph
		}
	}

	for _, shape := range ordered {
		spec, _ := Lookup(shape.Kind)

		if spec.Family == FamilyWall {
			rad := shape.Rotation * math.Pi / 180
			step := float64(scale) / 2

			for d := 0.0; d <= float64(shape.Length); d += step {
				plot(float64(shape.Position.X)+d*math.Cos(rad), float64(shape.Position.Y)+d*math.Sin(rad), spec.Glyph)
			}

			continue
		}

		minX, minY, maxX, maxY := shape.bounds()
		for y := minY; y < maxY; y += float64(scale) {
			for x := minX; x < maxX; x += float64(scale) {
				plot(x, y, spec.Glyph)
			}
		}
	}

	lines := make([]string, rows)
	for i, row := range canvas {
		lines[i] = strings.TrimRight(string(row), string(emptyCell))
	}

	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func (s Shape) bounds() (minX, minY, maxX, maxY float64) {
	rotated := s.Size.Rotated(int(s.Rotation))
	cx := float64(s.Position.X) + float64(s.Size.Width)/2
	cy := float64(s.Position.Y) + float64(s.Size.Height)/2

	return cx - float64(rotated.Width)/2, cy - float64(rotated.Height)/2,
		cx + float64(rotated.Width)/2, cy + float64(rotated.Height)/2
}

func (s Shape) extent() (int, int) {
	if s.Kind.Family() == FamilyWall {
		rad := s.Rotation * math.Pi / 180
		endX := float64(s.Position.X) + float64(s.Length)*math.Cos(rad)
		endY := float64(s.Position.Y) + float64(s.Length)*math.Sin(rad)

		return int(math.Max(float64(s.Position.X), endX)), int(math.Max(float64(s.Position.Y), endY))
	}

	_, _, maxX, maxY := s.bounds()

	return int(math.Ceil(maxX)), int(math.Ceil(maxY))
}
