package dto

import (
	"pureheart/internal/domains/furniture"
	"pureheart/internal/domains/layout/editor"
	"pureheart/internal/domains/layout/model"
	gModel "pureheart/shared/model"

	"github.com/google/uuid"
)

type CreateTableRequest struct {
	RoomID      string `json:"room_id"      validate:"omitempty,uuid"`
	TypeID      int    `json:"type_id"      validate:"required,min=1,max=5"`
	TableNumber int    `json:"table_number" validate:"omitempty,min=1"`
	MaxGuests   int    `json:"max_guests"   validate:"omitempty,min=1,max=50"`
	X           *int   `json:"x"`
	Y           *int   `json:"y"`
	Rotation    int    `json:"rotation"     validate:"rotation"`
	Width       *int   `json:"width"        validate:"omitempty,min=1"`
	Height      *int   `json:"height"       validate:"omitempty,min=1"`
}

// Apply overrides the drafted table with the values given in the request.
func (c *CreateTableRequest) Apply(draft editor.Item) editor.Item {
	if c.TableNumber > 0 {
		draft.TableNumber = c.TableNumber
	}

	if c.MaxGuests > 0 {
		draft.MaxGuests = c.MaxGuests
	}

	if c.X != nil {
		draft.Position.X = *c.X
	}

	if c.Y != nil {
		draft.Position.Y = *c.Y
	}

	draft.Rotation = float64(quarterTurn(c.Rotation))
	draft.Size = furniture.ResolveDimensions(draft.Kind, c.Width, c.Height)

	return draft
}

func (c *CreateTableRequest) ToModel(roomID string, item editor.Item, user string) model.Table {
	return model.Table{
		ID:          uuid.NewString(),
		RoomID:      roomID,
		TypeID:      c.TypeID,
		TableNumber: item.TableNumber,
		MaxGuests:   item.MaxGuests,
		X:           item.Position.X,
		Y:           item.Position.Y,
		Rotation:    int(item.Rotation),
		Width:       explicit(c.Width, c.Height, c.Width),
		Height:      explicit(c.Width, c.Height, c.Height),
		IsActive:    true,
		Metadata:    gModel.NewMetadata(user),
	}
}

type CreateStaticItemRequest struct {
	RoomID   string `json:"room_id"  validate:"omitempty,uuid"`
	Type     string `json:"type"     validate:"required,max=50"`
	X        *int   `json:"x"`
	Y        *int   `json:"y"`
	Rotation int    `json:"rotation" validate:"rotation"`
	Width    *int   `json:"width"    validate:"omitempty,min=1"`
	Height   *int   `json:"height"   validate:"omitempty,min=1"`
}

func (c *CreateStaticItemRequest) Apply(draft editor.Item) editor.Item {
	if c.X != nil {
		draft.Position.X = *c.X
	}

	if c.Y != nil {
		draft.Position.Y = *c.Y
	}

	draft.Rotation = float64(quarterTurn(c.Rotation))
	draft.Size = furniture.ResolveDimensions(draft.Kind, c.Width, c.Height)

	return draft
}

func (c *CreateStaticItemRequest) ToModel(roomID string, item editor.Item, user string) model.StaticItem {
	return model.StaticItem{
		ID:       uuid.NewString(),
		RoomID:   roomID,
		Type:     string(item.Kind),
		X:        item.Position.X,
		Y:        item.Position.Y,
		Rotation: int(item.Rotation),
		Width:    explicit(c.Width, c.Height, c.Width),
		Height:   explicit(c.Width, c.Height, c.Height),
		Metadata: gModel.NewMetadata(user),
	}
}

type CreateWallRequest struct {
	RoomID   string  `json:"room_id"  validate:"omitempty,uuid"`
	X        int     `json:"x"`
	Y        int     `json:"y"`
	Rotation float64 `json:"rotation"`
	Length   int     `json:"length"   validate:"required,min=1"`
}

func WallModel(roomID string, item editor.Item, user string) model.Wall {
	return model.Wall{
		ID:       uuid.NewString(),
		RoomID:   roomID,
		X:        item.Position.X,
		Y:        item.Position.Y,
		Rotation: item.Rotation,
		Length:   item.Length,
		Metadata: gModel.NewMetadata(user),
	}
}

type PointerPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DrawWallRequest carries the raw pointer positions of one drag.
type DrawWallRequest struct {
	RoomID string          `json:"room_id" validate:"omitempty,uuid"`
	Start  PointerPosition `json:"start"`
	End    PointerPosition `json:"end"`
}

type MoveItemRequest struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

type SaveTableRequest struct {
	ID          string `json:"id"           validate:"omitempty,uuid"`
	TypeID      int    `json:"type_id"      validate:"required,min=1,max=5"`
	TableNumber int    `json:"table_number" validate:"required,min=1"`
	MaxGuests   int    `json:"max_guests"   validate:"required,min=1,max=50"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Rotation    int    `json:"rotation"     validate:"rotation"`
	Width       *int   `json:"width"        validate:"omitempty,min=1"`
	Height      *int   `json:"height"       validate:"omitempty,min=1"`
}

type SaveStaticItemRequest struct {
	Type     string `json:"type"     validate:"required,max=50"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Rotation int    `json:"rotation" validate:"rotation"`
	Width    *int   `json:"width"    validate:"omitempty,min=1"`
	Height   *int   `json:"height"   validate:"omitempty,min=1"`
}

type SaveWallRequest struct {
	X        int     `json:"x"`
	Y        int     `json:"y"`
	Rotation float64 `json:"rotation"`
	Length   int     `json:"length"   validate:"required,min=1"`
}

type SaveLayoutRequest struct {
	RoomID      string                  `json:"room_id"      validate:"omitempty,uuid"`
	Tables      []SaveTableRequest      `json:"tables"       validate:"dive"`
	StaticItems []SaveStaticItemRequest `json:"static_items" validate:"dive"`
	Walls       []SaveWallRequest       `json:"walls"        validate:"dive"`
}

// ToModel builds the replacement layout. Tables keep their ids so existing
// ones are updated in place; static items and walls are always recreated.
func (s *SaveLayoutRequest) ToModel(roomID, user string) model.Layout {
	layout := model.Layout{
		RoomID:      roomID,
		Tables:      make([]model.Table, len(s.Tables)),
		StaticItems: make([]model.StaticItem, len(s.StaticItems)),
		Walls:       make([]model.Wall, len(s.Walls)),
	}

	for i, t := range s.Tables {
		layout.Tables[i] = model.Table{
			ID:          t.ID,
			RoomID:      roomID,
			TypeID:      t.TypeID,
			TableNumber: t.TableNumber,
			MaxGuests:   t.MaxGuests,
			X:           t.X,
			Y:           t.Y,
			Rotation:    quarterTurn(t.Rotation),
			Width:       explicit(t.Width, t.Height, t.Width),
			Height:      explicit(t.Width, t.Height, t.Height),
			IsActive:    true,
			Metadata:    gModel.NewMetadata(user),
		}
	}

	for i, item := range s.StaticItems {
		layout.StaticItems[i] = model.StaticItem{
			ID:       uuid.NewString(),
			RoomID:   roomID,
			Type:     item.Type,
			X:        item.X,
			Y:        item.Y,
			Rotation: quarterTurn(item.Rotation),
			Width:    explicit(item.Width, item.Height, item.Width),
			Height:   explicit(item.Width, item.Height, item.Height),
			Metadata: gModel.NewMetadata(user),
		}
	}

	for i, wall := range s.Walls {
		layout.Walls[i] = model.Wall{
			ID:       uuid.NewString(),
			RoomID:   roomID,
			X:        wall.X,
			Y:        wall.Y,
			Rotation: editor.NormalizeAngle(wall.Rotation),
			Length:   wall.Length,
			Metadata: gModel.NewMetadata(user),
		}
	}

	return layout
}

type TableResponse struct {
	ID          string `json:"id"`
	RoomID      string `json:"room_id"`
	TypeID      int    `json:"type_id"`
	Kind        string `json:"kind"`
	Label       string `json:"label"`
	TableNumber int    `json:"table_number"`
	MaxGuests   int    `json:"max_guests"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Rotation    int    `json:"rotation"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

func (r *TableResponse) FromModel(m model.Table) {
	item := m.Item()

	r.ID = m.ID
	r.RoomID = m.RoomID
	r.TypeID = m.TypeID
	r.Kind = string(item.Kind)
	r.Label = item.Label()
	r.TableNumber = m.TableNumber
	r.MaxGuests = m.MaxGuests
	r.X = m.X
	r.Y = m.Y
	r.Rotation = m.Rotation
	r.Width = item.Size.Width
	r.Height = item.Size.Height
}

type StaticItemResponse struct {
	ID       string `json:"id"`
	RoomID   string `json:"room_id"`
	Type     string `json:"type"`
	Label    string `json:"label"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Rotation int    `json:"rotation"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

func (r *StaticItemResponse) FromModel(m model.StaticItem) {
	item := m.Item()

	r.ID = m.ID
	r.RoomID = m.RoomID
	r.Type = m.Type
	r.Label = item.Label()
	r.X = m.X
	r.Y = m.Y
	r.Rotation = m.Rotation
	r.Width = item.Size.Width
	r.Height = item.Size.Height
}

type WallResponse struct {
	ID       string  `json:"id"`
	RoomID   string  `json:"room_id"`
	X        int     `json:"x"`
	Y        int     `json:"y"`
	Rotation float64 `json:"rotation"`
	Length   int     `json:"length"`
}

func (r *WallResponse) FromModel(m model.Wall) {
	r.ID = m.ID
	r.RoomID = m.RoomID
	r.X = m.X
	r.Y = m.Y
	r.Rotation = m.Rotation
	r.Length = m.Length
}

type LayoutResponse struct {
	RoomID      string               `json:"room_id"`
	Tables      []TableResponse      `json:"tables"`
	StaticItems []StaticItemResponse `json:"static_items"`
	Walls       []WallResponse       `json:"walls"`
}

func (r *LayoutResponse) FromModel(m model.Layout) {
	r.RoomID = m.RoomID
	r.Tables = make([]TableResponse, len(m.Tables))
	r.StaticItems = make([]StaticItemResponse, len(m.StaticItems))
	r.Walls = make([]WallResponse, len(m.Walls))

	for i, table := range m.Tables {
		r.Tables[i].FromModel(table)
	}

	for i, item := range m.StaticItems {
		r.StaticItems[i].FromModel(item)
	}

	for i, wall := range m.Walls {
		r.Walls[i].FromModel(wall)
	}
}

// ItemResponse is any item after a move or rotation.
type ItemResponse struct {
	ID          string  `json:"id"`
	Kind        string  `json:"kind"`
	Label       string  `json:"label"`
	X           int     `json:"x"`
	Y           int     `json:"y"`
	Rotation    float64 `json:"rotation"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Length      int     `json:"length,omitempty"`
	TableNumber int     `json:"table_number,omitempty"`
}

func (r *ItemResponse) FromItem(item editor.Item) {
	r.ID = item.ID
	r.Kind = string(item.Kind)
	r.Label = item.Label()
	r.X = item.Position.X
	r.Y = item.Position.Y
	r.Rotation = item.Rotation
	r.Width = item.Size.Width
	r.Height = item.Size.Height
	r.Length = item.Length
	r.TableNumber = item.TableNumber
}

type PreviewResponse struct {
	RoomID  string `json:"room_id"`
	Scale   int    `json:"scale"`
	Preview string `json:"preview"`
}

// explicit keeps an override only when both sides are given.
func explicit(width, height, side *int) *int {
	if width == nil || height == nil {
		return nil
	}

	return side
}

// quarterTurn folds a validated rotation into [0, 360).
func quarterTurn(deg int) int {
	r, _ := furniture.NormalizeRotation(deg)

	return r
}
