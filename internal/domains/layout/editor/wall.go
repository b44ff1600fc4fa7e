package editor

import (
	"math"

	"pureheart/internal/domains/furniture"
)

const (
	WallGrid          = 20
	AxisSnapThreshold = 20
	MinWallLength     = 20
)

type DrawState int

const (
	// DrawIdle means drawing mode is off.
	DrawIdle DrawState = iota
	// DrawArmed waits for the pointer to press the start point.
	DrawArmed
	// DrawDragging has a start point and tracks the end point.
	DrawDragging
)

func (s DrawState) String() string {
	switch s {
	case DrawArmed:
		return "armed"
	case DrawDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// WallRequest is the wall to create once a drag is committed.
type WallRequest struct {
	X        int     `json:"x"`
	Y        int     `json:"y"`
	Rotation float64 `json:"rotation"`
	Length   int     `json:"length"`
}

// WallDrawer captures one wall from two pointer positions, snapping both to
// the wall grid and straightening nearly horizontal or vertical segments.
type WallDrawer struct {
	state DrawState
	start furniture.Point
	end   furniture.Point
}

func NewWallDrawer() *WallDrawer {
	return &WallDrawer{}
}

func (w *WallDrawer) State() DrawState {
	return w.state
}

func (w *WallDrawer) Active() bool {
	return w.state != DrawIdle
}

// Toggle switches drawing mode and drops any segment in progress.
func (w *WallDrawer) Toggle() DrawState {
	if w.state == DrawIdle {
		w.state = DrawArmed
	} else {
		w.state = DrawIdle
	}

	w.start, w.end = furniture.Point{}, furniture.Point{}

	return w.state
}

func (w *WallDrawer) PointerDown(x, y float64) bool {
	if w.state != DrawArmed {
		return false
	}

	w.start = furniture.SnapPoint(x, y, WallGrid)
	w.end = w.start
	w.state = DrawDragging

	return true
}

// PointerMove updates and returns the preview end point.
func (w *WallDrawer) PointerMove(x, y float64) (furniture.Point, bool) {
	if w.state != DrawDragging {
		return furniture.Point{}, false
	}

	w.end = w.endPoint(x, y)

	return w.end, true
}

// PointerUp commits the segment. Clicks without a drag and segments shorter
// than MinWallLength are discarded and drawing mode stays on; a committed wall
// switches drawing mode off.
func (w *WallDrawer) PointerUp(x, y float64) (WallRequest, bool) {
	if w.state != DrawDragging {
		return WallRequest{}, false
	}

	end := w.endPoint(x, y)
	length := furniture.Distance(w.start, end)

	if end == w.start || length < MinWallLength {
		w.state = DrawArmed
		w.start, w.end = furniture.Point{}, furniture.Point{}

		return WallRequest{}, false
	}

	req := WallRequest{
		X:        w.start.X,
		Y:        w.start.Y,
		Rotation: furniture.AngleDegrees(w.start, end),
		Length:   int(math.Round(length)),
	}

	w.state = DrawIdle
	w.start, w.end = furniture.Point{}, furniture.Point{}

	return req, true
}

// PointerLeave aborts the segment but keeps drawing mode on.
func (w *WallDrawer) PointerLeave() {
	if w.state != DrawDragging {
		return
	}

	w.state = DrawArmed
	w.start, w.end = furniture.Point{}, furniture.Point{}
}

// Segment returns the in-progress start and end points.
func (w *WallDrawer) Segment() (furniture.Point, furniture.Point, bool) {
	if w.state != DrawDragging {
		return furniture.Point{}, furniture.Point{}, false
	}

	return w.start, w.end, true
}

// endPoint snaps the raw position to the grid and, when the raw delta is
// within the threshold of an axis, pins the off-axis coordinate to the start.
// Horizontal wins when both deltas are under the threshold.
func (w *WallDrawer) endPoint(x, y float64) furniture.Point {
	end := furniture.SnapPoint(x, y, WallGrid)

	dx := math.Abs(x - float64(w.start.X))
	dy := math.Abs(y - float64(w.start.Y))

	if dx > 0 && dy > 0 {
		switch {
		case dy < AxisSnapThreshold:
			end.Y = w.start.Y
		case dx < AxisSnapThreshold:
			end.X = w.start.X
		}
	}

	return end
}
