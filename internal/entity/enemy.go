// Package entity provides the player, enemies, items and shrines that live
// on a level.
package entity

import (
	"github.com/samdwyer/greenchapel/internal/combat"
	"github.com/samdwyer/greenchapel/internal/gamedata"
)

// Enemy represents a hostile creature on the level. Dead enemies stay in the
// level's list with zero HP; callers filter with IsAlive.
type Enemy struct {
	ID          string // template identifier
	Name        string
	Description string
	Symbol      rune   // Display symbol
	Color       string // Hex color code
	X, Y        int    // Position on the level
	HP          int
	MaxHP       int
	Attack      int
	Defense     int
	XP          int
	Loot        []string
	Boss        bool
}

// NewEnemy creates an enemy from a data-driven definition. The loot table is
// copied so the instance never aliases the template.
func NewEnemy(def *gamedata.EnemyDef, x, y int) *Enemy {
	return &Enemy{
		ID:          def.ID,
		Name:        def.Name,
		Description: def.Description,
		Symbol:      def.GlyphRune(),
		Color:       def.Color,
		X:           x,
		Y:           y,
		HP:          def.HP,
		MaxHP:       def.HP,
		Attack:      def.Attack,
		Defense:     def.Defense,
		XP:          def.XP,
		Loot:        append([]string(nil), def.Loot...),
		Boss:        def.Boss,
	}
}

// Clone returns an independent copy of the enemy.
func (e *Enemy) Clone() *Enemy {
	c := *e
	c.Loot = append([]string(nil), e.Loot...)
	return &c
}

// At reports whether the enemy is alive and standing on (x, y).
func (e *Enemy) At(x, y int) bool {
	return e.IsAlive() && e.X == x && e.Y == y
}

// GetName returns the enemy's name.
func (e *Enemy) GetName() string { return e.Name }

// IsAlive returns true if the enemy has HP remaining.
func (e *Enemy) IsAlive() bool { return e.HP > 0 }

// GetHP returns current HP.
func (e *Enemy) GetHP() int { return e.HP }

// GetMaxHP returns maximum HP.
func (e *Enemy) GetMaxHP() int { return e.MaxHP }

// GetAttack returns attack stat.
func (e *Enemy) GetAttack() int { return e.Attack }

// GetDefense returns defense stat.
func (e *Enemy) GetDefense() int { return e.Defense }

// TakeDamage reduces HP and returns actual damage taken.
func (e *Enemy) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > e.HP {
		actual = e.HP
	}
	e.HP -= actual
	return actual
}

// Heal restores HP and returns actual amount healed.
func (e *Enemy) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if e.HP+actual > e.MaxHP {
		actual = e.MaxHP - e.HP
	}
	e.HP += actual
	return actual
}

// Ensure Enemy implements combat.Combatant
var _ combat.Combatant = (*Enemy)(nil)
