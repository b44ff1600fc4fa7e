package model

import (
	"time"

	"pureheart/internal/domains/furniture"
	"pureheart/internal/domains/layout/editor"
	"pureheart/internal/domains/reservation/availability"
	"pureheart/shared/model"
)

const (
	TableNameTables      = "tables"
	TableNameStaticItems = "static_items"
	TableNameWalls       = "walls"
	TableNameBookings    = "reservations"

	EntityNameTable      = "table"
	EntityNameStaticItem = "static_item"
	EntityNameWall       = "wall"
	EntityNameBooking    = "reservation"

	FieldID          = "id"
	FieldRoomID      = "room_id"
	FieldTypeID      = "type_id"
	FieldTableNumber = "table_number"
	FieldMaxGuests   = "max_guests"
	FieldX           = "x"
	FieldY           = "y"
	FieldRotation    = "rotation"
	FieldWidth       = "width"
	FieldHeight      = "height"
	FieldIsActive    = "is_active"
	FieldType        = "type"
	FieldLength      = "length"

	FieldTableID         = "table_id"
	FieldReservationDate = "reservation_date"
	FieldStatus          = "status"
	FieldGuestsCount     = "guests_count"
)

type Table struct {
	ID          string `db:"id"`
	RoomID      string `db:"room_id"`
	TypeID      int    `db:"type_id"`
	TableNumber int    `db:"table_number"`
	MaxGuests   int    `db:"max_guests"`
	X           int    `db:"x"`
	Y           int    `db:"y"`
	Rotation    int    `db:"rotation"`
	Width       *int   `db:"width"`
	Height      *int   `db:"height"`
	IsActive    bool   `db:"is_active"`
	model.Metadata
}

func (t Table) Kind() furniture.Kind {
	kind, _ := furniture.KindByTypeID(t.TypeID)

	return kind
}

func (t Table) Item() editor.Item {
	return editor.Item{
		ID:          t.ID,
		Kind:        t.Kind(),
		Position:    furniture.Point{X: t.X, Y: t.Y},
		Rotation:    float64(t.Rotation),
		Size:        furniture.ResolveDimensions(t.Kind(), t.Width, t.Height),
		TableNumber: t.TableNumber,
		MaxGuests:   t.MaxGuests,
	}
}

type StaticItem struct {
	ID       string `db:"id"`
	RoomID   string `db:"room_id"`
	Type     string `db:"type"`
	X        int    `db:"x"`
	Y        int    `db:"y"`
	Rotation int    `db:"rotation"`
	Width    *int   `db:"width"`
	Height   *int   `db:"height"`
	model.Metadata
}

func (s StaticItem) Item() editor.Item {
	kind := furniture.Kind(s.Type)

	return editor.Item{
		ID:       s.ID,
		Kind:     kind,
		Position: furniture.Point{X: s.X, Y: s.Y},
		Rotation: float64(s.Rotation),
		Size:     furniture.ResolveDimensions(kind, s.Width, s.Height),
	}
}

type Wall struct {
	ID       string  `db:"id"`
	RoomID   string  `db:"room_id"`
	X        int     `db:"x"`
	Y        int     `db:"y"`
	Rotation float64 `db:"rotation"`
	Length   int     `db:"length"`
	model.Metadata
}

func (w Wall) Item() editor.Item {
	return editor.Item{
		ID:       w.ID,
		Kind:     furniture.KindWall,
		Position: furniture.Point{X: w.X, Y: w.Y},
		Rotation: w.Rotation,
		Size:     furniture.Size{Width: w.Length, Height: furniture.WallThickness},
		Length:   w.Length,
	}
}

// Layout is everything placed in one room.
type Layout struct {
	RoomID      string
	Tables      []Table
	StaticItems []StaticItem
	Walls       []Wall
}

// Items lists walls first, then static items, then tables.
func (l Layout) Items() []editor.Item {
	items := make([]editor.Item, 0, len(l.Tables)+len(l.StaticItems)+len(l.Walls))

	for _, wall := range l.Walls {
		items = append(items, wall.Item())
	}

	for _, item := range l.StaticItems {
		items = append(items, item.Item())
	}

	for _, table := range l.Tables {
		items = append(items, table.Item())
	}

	return items
}

// Booking is the slice of a reservation the layout needs when tables go away.
type Booking struct {
	ID              string    `db:"id"`
	TableID         string    `db:"table_id"`
	ReservationDate time.Time `db:"reservation_date"`
	StartHour       int       `db:"start_hour"`
	Duration        int       `db:"duration"`
	GuestsCount     int       `db:"guests_count"`
}

func (b Booking) Reservation() availability.Reservation {
	return availability.Reservation{
		ID:        b.ID,
		TableID:   b.TableID,
		Date:      b.ReservationDate,
		StartHour: b.StartHour,
		Duration:  b.Duration,
	}
}
