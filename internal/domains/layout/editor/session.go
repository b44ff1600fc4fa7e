// Package editor holds the in-memory floor plan of one room while it is being
// edited: item collections, selection, optimistic changes awaiting the server,
// and the wall drawing state machine. A Session is owned by a single caller.
package editor

import (
	"errors"
	"fmt"
	"slices"

	"pureheart/internal/domains/furniture"

	"github.com/rs/zerolog/log"
)

const (
	MoveGrid = 5

	StagingX = 150
	StagingY = 150
)

var (
	ErrNotTableKind  = errors.New("kind is not a table kind")
	ErrNotStaticKind = errors.New("kind is not a static item kind")
)

type entry struct {
	current   Item
	confirmed Item
	pending   bool
}

type Session struct {
	roomID   string
	order    []string
	entries  map[string]*entry
	selected string
	drawer   *WallDrawer
}

func NewSession(roomID string) *Session {
	return &Session{
		roomID:  roomID,
		entries: map[string]*entry{},
		drawer:  NewWallDrawer(),
	}
}

// Load replaces the session contents with authoritative items.
func (s *Session) Load(items ...Item) {
	s.order = nil
	s.entries = map[string]*entry{}
	s.selected = ""

	for _, item := range items {
		s.Merge(item)
	}
}

func (s *Session) RoomID() string {
	return s.roomID
}

func (s *Session) Drawer() *WallDrawer {
	return s.drawer
}

// AddTable drafts a new table of kind at the staging position. The draft has no
// ID and is not part of the session until merged back with the server response.
func (s *Session) AddTable(kind furniture.Kind) (Item, error) {
	spec, _ := furniture.Lookup(kind)
	if spec.Family != furniture.FamilyTable {
		return Item{}, fmt.Errorf("%w: %s", ErrNotTableKind, kind)
	}

	return Item{
		Kind:        kind,
		Position:    furniture.Point{X: StagingX, Y: StagingY},
		Size:        furniture.ResolveDimensions(kind, nil, nil),
		TableNumber: s.NextTableNumber(kind),
		MaxGuests:   spec.MaxGuests,
	}, nil
}

// NextTableNumber is the count of tables of that kind plus one, or the highest
// number plus one when that number is already taken.
func (s *Session) NextTableNumber(kind furniture.Kind) int {
	numbers := []int{}

	for _, item := range s.Tables() {
		if item.Kind == kind {
			numbers = append(numbers, item.TableNumber)
		}
	}

	next := len(numbers) + 1
	if slices.Contains(numbers, next) {
		next = slices.Max(numbers) + 1
	}

	return next
}

func (s *Session) AddStaticItem(kind furniture.Kind) (Item, error) {
	if family := kind.Family(); family == furniture.FamilyTable || family == furniture.FamilyWall || kind == "" {
		return Item{}, fmt.Errorf("%w: %s", ErrNotStaticKind, kind)
	}

	return Item{
		Kind:     kind,
		Position: furniture.Point{X: StagingX, Y: StagingY},
		Size:     furniture.ResolveDimensions(kind, nil, nil),
	}, nil
}

func (s *Session) AddWall(x, y int, rotation float64, length int) Item {
	return Item{
		Kind:     furniture.KindWall,
		Position: furniture.Point{X: x, Y: y},
		Rotation: NormalizeAngle(rotation),
		Size:     furniture.Size{Width: length, Height: furniture.WallThickness},
		Length:   length,
	}
}

// Merge inserts or replaces an item with its authoritative state. The item is confirmed afterwards.
func (s *Session) Merge(item Item) {
	if item.ID == "" {
		log.Debug().Str("kind", string(item.Kind)).Msg("merge ignored, item has no id")

		return
	}

	if item.Family() == furniture.FamilyWall {
		item.Rotation = NormalizeAngle(item.Rotation)
	}

	if e, ok := s.entries[item.ID]; ok {
		e.current, e.confirmed, e.pending = item, item, false

		return
	}

	s.order = append(s.order, item.ID)
	s.entries[item.ID] = &entry{current: item, confirmed: item}
}

// Confirm reconciles a pending item with the server's copy.
func (s *Session) Confirm(id string, item Item) {
	item.ID = id
	s.Merge(item)
}

// Revert restores the last confirmed copy after the server rejected a change.
func (s *Session) Revert(id string) (Item, bool) {
	e, ok := s.entries[id]
	if !ok {
		log.Debug().Str("id", id).Msg("revert ignored, item not found")

		return Item{}, false
	}

	e.current, e.pending = e.confirmed, false

	return e.current, true
}

// Pending lists items changed locally and not yet confirmed, in layout order.
func (s *Session) Pending() []Item {
	return s.collect(func(e *entry) bool { return e.pending })
}

// MoveItem shifts the item by the deltas rounded to the 5-unit grid.
func (s *Session) MoveItem(id string, dx, dy float64) (Item, bool) {
	e, ok := s.entries[id]
	if !ok {
		log.Debug().Str("id", id).Msg("move ignored, item not found")

		return Item{}, false
	}

	e.current.Position.X += furniture.Snap(dx, MoveGrid)
	e.current.Position.Y += furniture.Snap(dy, MoveGrid)
	e.pending = true

	return e.current, true
}

// RotateItem turns the item a quarter clockwise.
func (s *Session) RotateItem(id string) (Item, bool) {
	e, ok := s.entries[id]
	if !ok {
		log.Debug().Str("id", id).Msg("rotate ignored, item not found")

		return Item{}, false
	}

	e.current.Rotation = NormalizeAngle(e.current.Rotation + 90)
	e.pending = true

	return e.current, true
}

func (s *Session) DeleteItem(id string) bool {
	if _, ok := s.entries[id]; !ok {
		log.Debug().Str("id", id).Msg("delete ignored, item not found")

		return false
	}

	delete(s.entries, id)
	s.order = slices.DeleteFunc(s.order, func(v string) bool { return v == id })

	if s.selected == id {
		s.selected = ""
	}

	return true
}

// SelectItem selects id; an unknown id clears the selection.
func (s *Session) SelectItem(id string) {
	if _, ok := s.entries[id]; !ok {
		s.selected = ""

		return
	}

	s.selected = id
}

func (s *Session) ClearSelection() {
	s.selected = ""
}

func (s *Session) Selected() (Item, bool) {
	if s.selected == "" {
		return Item{}, false
	}

	return s.Item(s.selected)
}

func (s *Session) ClearLayout() {
	s.Load()
}

func (s *Session) Item(itemID string) (Item, bool) {
	e, ok := s.entries[itemID]
	if !ok {
		return Item{}, false
	}

	return e.current, true
}

func (s *Session) Items() []Item {
	return s.collect(func(*entry) bool { return true })
}

func (s *Session) Tables() []Item {
	return s.byFamily(furniture.FamilyTable)
}

func (s *Session) StaticItems() []Item {
	return s.collect(func(e *entry) bool {
		family := e.current.Family()

		return family != furniture.FamilyTable && family != furniture.FamilyWall
	})
}

func (s *Session) Walls() []Item {
	return s.byFamily(furniture.FamilyWall)
}

// Preview renders the current layout as text.
func (s *Session) Preview(scale int) string {
	items := s.Items()
	shapes := make([]furniture.Shape, len(items))

	for i, item := range items {
		shapes[i] = item.Shape()
	}

	return furniture.Render(shapes, scale)
}

func (s *Session) byFamily(family furniture.Family) []Item {
	return s.collect(func(e *entry) bool { return e.current.Family() == family })
}

func (s *Session) collect(keep func(*entry) bool) []Item {
	items := []Item{}

	for _, itemID := range s.order {
		if e := s.entries[itemID]; keep(e) {
			items = append(items, e.current)
		}
	}

	return items
}
