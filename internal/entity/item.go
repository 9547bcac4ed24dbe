package entity

import "github.com/samdwyer/greenchapel/internal/gamedata"

// Item is an instance of an item template. It is copied by value so edits
// never reach the template table.
type Item struct {
	ID          string
	Name        string
	Type        gamedata.ItemType
	Description string
	Heal        int
	Attack      int
	Defense     int
	Charm       string
}

// NewItem copies an item definition into an instance.
func NewItem(def *gamedata.ItemDef) Item {
	return Item{
		ID:          def.ID,
		Name:        def.Name,
		Type:        def.Type,
		Description: def.Description,
		Heal:        def.Heal,
		Attack:      def.Attack,
		Defense:     def.Defense,
		Charm:       def.Charm,
	}
}

// IsEquippable reports whether the item goes into an equipment slot.
func (i Item) IsEquippable() bool {
	switch i.Type {
	case gamedata.ItemWeapon, gamedata.ItemArmor, gamedata.ItemCharm:
		return true
	}
	return false
}

// GroundItem is an item lying on the level, waiting to be picked up.
type GroundItem struct {
	Item
	X, Y int
}

// Encounter is a shrine bound to an encounter script. It fires once.
type Encounter struct {
	ID        string
	X, Y      int
	Triggered bool
}
