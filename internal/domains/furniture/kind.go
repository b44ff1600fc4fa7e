// Package furniture is the single registry of furniture kinds: default sizes,
// table type ids, capacities, display labels and preview glyphs.
package furniture

import (
	"fmt"
	"slices"
)

type Kind string

const (
	KindCircular      Kind = "circular"
	KindCircularLarge Kind = "circular-large"
	KindRectangular   Kind = "rectangular"
	KindVIP           Kind = "vip"
	KindBanquet       Kind = "banquet"

	KindBar      Kind = "bar"
	KindBathroom Kind = "bathroom"
	KindWC       Kind = "wc"
	KindKitchen  Kind = "kitchen"
	KindWardrobe Kind = "wardrobe"
	KindWindow   Kind = "window"

	KindWall Kind = "wall"
)

type Family int

const (
	FamilyUnknown Family = iota
	FamilyTable
	FamilyStatic
	FamilyWall
)

func (f Family) String() string {
	switch f {
	case FamilyTable:
		return "table"
	case FamilyStatic:
		return "static"
	case FamilyWall:
		return "wall"
	default:
		return "unknown"
	}
}

const (
	WallThickness = 10

	unknownLabel = "Item"
	unknownGlyph = '?'
)

// DefaultSize applies to any kind missing from the registry.
var DefaultSize = Size{Width: 80, Height: 80}

type Spec struct {
	Kind      Kind
	Family    Family
	TypeID    int
	Size      Size
	MaxGuests int
	Label     string
	Glyph     rune
}

var registry = []Spec{
	{Kind: KindCircular, Family: FamilyTable, TypeID: 1, Size: Size{60, 60}, MaxGuests: 2, Label: "Round table", Glyph: 'o'},
	{Kind: KindCircularLarge, Family: FamilyTable, TypeID: 2, Size: Size{80, 80}, MaxGuests: 4, Label: "Large round table", Glyph: 'O'},
	{Kind: KindRectangular, Family: FamilyTable, TypeID: 3, Size: Size{140, 60}, MaxGuests: 10, Label: "Rectangular table", Glyph: 'R'},
	{Kind: KindVIP, Family: FamilyTable, TypeID: 4, Size: Size{180, 180}, MaxGuests: 8, Label: "VIP table", Glyph: 'V'},
	{Kind: KindBanquet, Family: FamilyTable, TypeID: 5, Size: Size{200, 100}, MaxGuests: 25, Label: "Banquet hall", Glyph: 'B'},

	{Kind: KindBar, Family: FamilyStatic, Size: Size{120, 50}, Label: "Bar", Glyph: '='},
	{Kind: KindBathroom, Family: FamilyStatic, Size: Size{80, 80}, Label: "Restroom", Glyph: 'W'},
	{Kind: KindWC, Family: FamilyStatic, Size: Size{80, 80}, Label: "Restroom", Glyph: 'W'},
	{Kind: KindKitchen, Family: FamilyStatic, Size: Size{120, 80}, Label: "Kitchen", Glyph: 'K'},
	{Kind: KindWardrobe, Family: FamilyStatic, Size: Size{80, 80}, Label: "Wardrobe", Glyph: 'H'},
	{Kind: KindWindow, Family: FamilyStatic, Size: Size{100, 50}, Label: "Window", Glyph: ':'},

	{Kind: KindWall, Family: FamilyWall, Size: Size{0, WallThickness}, Label: "Wall", Glyph: '#'},
}

// Lookup returns the registry entry for kind. Unknown kinds get a generic entry with DefaultSize.
func Lookup(kind Kind) (Spec, bool) {
	idx := slices.IndexFunc(registry, func(s Spec) bool { return s.Kind == kind })
	if idx == -1 {
		return Spec{Kind: kind, Size: DefaultSize, Label: unknownLabel, Glyph: unknownGlyph}, false
	}

	return registry[idx], true
}

// KindByTypeID maps the numeric table type used on the wire to its kind.
func KindByTypeID(typeID int) (Kind, bool) {
	idx := slices.IndexFunc(registry, func(s Spec) bool { return s.Family == FamilyTable && s.TypeID == typeID })
	if idx == -1 {
		return "", false
	}

	return registry[idx].Kind, true
}

func (k Kind) Family() Family {
	spec, _ := Lookup(k)

	return spec.Family
}

func (k Kind) IsTable() bool {
	return k.Family() == FamilyTable
}

func (k Kind) IsStatic() bool {
	return k.Family() == FamilyStatic
}

// Kinds lists the registered kinds of a family in registry order.
func Kinds(family Family) []Kind {
	kinds := []Kind{}

	for _, spec := range registry {
		if spec.Family == family {
			kinds = append(kinds, spec.Kind)
		}
	}

	return kinds
}

// Label renders the display name, numbering tables e.g. "Round table №3".
func Label(kind Kind, number int) string {
	spec, _ := Lookup(kind)
	if spec.Family == FamilyTable && number > 0 {
		return fmt.Sprintf("%s №%d", spec.Label, number)
	}

	return spec.Label
}
