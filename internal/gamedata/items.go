package gamedata

import "fmt"

// ItemType classifies what an item does when used.
type ItemType string

const (
	ItemConsumable ItemType = "consumable"
	ItemWeapon     ItemType = "weapon"
	ItemArmor      ItemType = "armor"
	ItemCharm      ItemType = "charm"
	ItemMisc       ItemType = "misc"
)

// Valid reports whether t is a known item type.
func (t ItemType) Valid() bool {
	switch t {
	case ItemConsumable, ItemWeapon, ItemArmor, ItemCharm, ItemMisc:
		return true
	}
	return false
}

// Charm powers. Only sight and immortality change play; the rest are flavor.
const (
	CharmLuck        = "luck"
	CharmProtection  = "protection"
	CharmStrength    = "strength"
	CharmSight       = "sight"
	CharmStealth     = "stealth"
	CharmImmortality = "immortality"
)

// GreenSashID is the item that unlocks the honest ending.
const GreenSashID = "green_sash"

// ItemDef defines an item type loaded from JSON.
type ItemDef struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        ItemType `json:"type"`
	Description string   `json:"description"`
	Heal        int      `json:"heal,omitempty"`    // consumables
	Attack      int      `json:"attack,omitempty"`  // weapons
	Defense     int      `json:"defense,omitempty"` // armor
	Charm       string   `json:"charm,omitempty"`   // charms
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	for _, it := range file.Items {
		if !it.Type.Valid() {
			return nil, fmt.Errorf("item %s: unknown type %q", it.ID, it.Type)
		}
	}
	return file.Items, nil
}
