package entity

import (
	"github.com/samdwyer/greenchapel/internal/combat"
	"github.com/samdwyer/greenchapel/internal/gamedata"
)

// Starting stats and leveling rules.
const (
	StartHP        = 50
	StartAttack    = 5
	StartDefense   = 2
	StartXPToLevel = 30

	LevelHPGain      = 8
	LevelAttackGain  = 1
	LevelDefenseGain = 1
)

// Stat names understood by Buff and Curse. Any other name is tracked in
// Player.Extra.
const (
	StatAttack  = "attack"
	StatDefense = "defense"
	StatMaxHP   = "maxHp"
)

// Player is the knight.
type Player struct {
	X, Y int

	HP, MaxHP int
	Attack    int
	Defense   int

	Level     int
	XP        int
	XPToLevel int

	Weapon    *Item
	Armor     *Item
	Charm     *Item
	Inventory []Item

	Karma        int
	HasGreenSash bool
	Extra        map[string]int // buffs to stats that have no mechanical effect
}

// NewPlayer creates a level 1 player carrying the given items.
func NewPlayer(inventory ...Item) *Player {
	return &Player{
		HP:        StartHP,
		MaxHP:     StartHP,
		Attack:    StartAttack,
		Defense:   StartDefense,
		Level:     1,
		XPToLevel: StartXPToLevel,
		Inventory: append([]Item(nil), inventory...),
		Extra:     make(map[string]int),
	}
}

// Clone returns a deep copy of the player.
func (p *Player) Clone() *Player {
	c := *p
	c.Inventory = append([]Item(nil), p.Inventory...)
	c.Extra = make(map[string]int, len(p.Extra))
	for k, v := range p.Extra {
		c.Extra[k] = v
	}
	c.Weapon = cloneItem(p.Weapon)
	c.Armor = cloneItem(p.Armor)
	c.Charm = cloneItem(p.Charm)
	return &c
}

func cloneItem(i *Item) *Item {
	if i == nil {
		return nil
	}
	c := *i
	return &c
}

// SetPosition updates the player's position.
func (p *Player) SetPosition(x, y int) {
	p.X = x
	p.Y = y
}

// WeaponBonus returns the equipped weapon's attack bonus.
func (p *Player) WeaponBonus() int {
	if p.Weapon == nil {
		return 0
	}
	return p.Weapon.Attack
}

// ArmorBonus returns the equipped armor's defense bonus.
func (p *Player) ArmorBonus() int {
	if p.Armor == nil {
		return 0
	}
	return p.Armor.Defense
}

// SightBonus returns extra reveal radius from the equipped charm.
func (p *Player) SightBonus() int {
	if p.Charm != nil && p.Charm.Charm == gamedata.CharmSight {
		return 2
	}
	return 0
}

// HasItem reports whether the player carries or wears an item with the
// given ID.
func (p *Player) HasItem(id string) bool {
	for _, it := range p.Inventory {
		if it.ID == id {
			return true
		}
	}
	for _, slot := range []*Item{p.Weapon, p.Armor, p.Charm} {
		if slot != nil && slot.ID == id {
			return true
		}
	}
	return false
}

// Receive puts an item into the inventory.
func (p *Player) Receive(item Item) {
	p.Inventory = append(p.Inventory, item)
	if item.ID == gamedata.GreenSashID {
		p.HasGreenSash = true
	}
}

// Consume uses the consumable at index, removing it and healing. It returns
// the item and the HP actually restored. ok is false for a bad index or a
// non-consumable.
func (p *Player) Consume(index int) (item Item, healed int, ok bool) {
	if index < 0 || index >= len(p.Inventory) {
		return Item{}, 0, false
	}
	item = p.Inventory[index]
	if item.Type != gamedata.ItemConsumable {
		return Item{}, 0, false
	}
	p.removeAt(index)
	return item, p.Heal(item.Heal), true
}

// Equip moves the weapon, armor or charm at index into its slot. Whatever
// was in the slot goes back to the end of the inventory.
func (p *Player) Equip(index int) (Item, bool) {
	if index < 0 || index >= len(p.Inventory) {
		return Item{}, false
	}
	item := p.Inventory[index]

	var slot **Item
	switch item.Type {
	case gamedata.ItemWeapon:
		slot = &p.Weapon
	case gamedata.ItemArmor:
		slot = &p.Armor
	case gamedata.ItemCharm:
		slot = &p.Charm
	default:
		return Item{}, false
	}

	p.removeAt(index)
	if *slot != nil {
		p.Inventory = append(p.Inventory, **slot)
	}
	equipped := item
	*slot = &equipped

	if item.ID == gamedata.GreenSashID {
		p.HasGreenSash = true
	}
	return item, true
}

func (p *Player) removeAt(index int) {
	p.Inventory = append(p.Inventory[:index:index], p.Inventory[index+1:]...)
}

// GainXP adds experience and applies every level-up it pays for. It returns
// the new level reached by each level-up, in order.
func (p *Player) GainXP(amount int) []int {
	p.XP += amount

	var levels []int
	for p.XPToLevel > 0 && p.XP >= p.XPToLevel {
		p.XP -= p.XPToLevel
		p.Level++
		p.XPToLevel = p.XPToLevel * 3 / 2
		p.MaxHP += LevelHPGain
		p.Heal(LevelHPGain)
		p.Attack += LevelAttackGain
		p.Defense += LevelDefenseGain
		levels = append(levels, p.Level)
	}
	return levels
}

// Buff raises a stat. Raising max HP also restores the same amount of HP.
func (p *Player) Buff(stat string, amount int) {
	switch stat {
	case StatAttack:
		p.Attack += amount
	case StatDefense:
		p.Defense += amount
	case StatMaxHP:
		p.MaxHP += amount
		p.HP += amount
		p.clampHP()
	default:
		p.Extra[stat] += amount
	}
}

// Curse adds amount (usually negative) to a stat, never taking it below 1.
func (p *Player) Curse(stat string, amount int) {
	switch stat {
	case StatAttack:
		p.Attack = max(1, p.Attack+amount)
	case StatDefense:
		p.Defense = max(1, p.Defense+amount)
	case StatMaxHP:
		p.MaxHP = max(1, p.MaxHP+amount)
		p.clampHP()
	default:
		p.Extra[stat] = max(1, p.Extra[stat]+amount)
	}
}

// Stat returns the named stat's base value.
func (p *Player) Stat(stat string) int {
	switch stat {
	case StatAttack:
		return p.Attack
	case StatDefense:
		return p.Defense
	case StatMaxHP:
		return p.MaxHP
	default:
		return p.Extra[stat]
	}
}

func (p *Player) clampHP() {
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
	if p.HP < 0 {
		p.HP = 0
	}
}

// GetName returns the player's name.
func (p *Player) GetName() string { return "You" }

// IsAlive returns true if the player has HP remaining.
func (p *Player) IsAlive() bool { return p.HP > 0 }

// GetHP returns current HP.
func (p *Player) GetHP() int { return p.HP }

// GetMaxHP returns maximum HP.
func (p *Player) GetMaxHP() int { return p.MaxHP }

// GetAttack returns attack including the weapon bonus.
func (p *Player) GetAttack() int { return p.Attack + p.WeaponBonus() }

// GetDefense returns defense including the armor bonus.
func (p *Player) GetDefense() int { return p.Defense + p.ArmorBonus() }

// TakeDamage reduces HP and returns actual damage taken.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > p.HP {
		actual = p.HP
	}
	p.HP -= actual
	return actual
}

// Heal restores HP and returns actual amount healed.
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if p.HP+actual > p.MaxHP {
		actual = p.MaxHP - p.HP
	}
	if actual < 0 {
		actual = 0
	}
	p.HP += actual
	return actual
}

// Ensure Player implements combat.Combatant
var _ combat.Combatant = (*Player)(nil)
