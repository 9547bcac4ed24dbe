// Package combat resolves single blows between two combatants.
package combat

import "github.com/samdwyer/greenchapel/internal/rng"

// DefendBonus is added to the defender's defense for one incoming hit after
// it braces.
const DefendBonus = 3

// Combatant is the interface for any entity that can participate in combat.
// Both the player and enemies implement this interface.
type Combatant interface {
	// Identity
	GetName() string
	IsAlive() bool

	// Stats
	GetHP() int
	GetMaxHP() int
	GetAttack() int  // includes equipment
	GetDefense() int // includes equipment

	// Mutations
	TakeDamage(amount int) int // Returns actual damage taken
	Heal(amount int) int       // Returns actual amount healed
}

// Hit is the outcome of one blow.
type Hit struct {
	Damage int  // rolled damage, always at least 1
	Dealt  int  // HP actually removed after clamping at zero
	Killed bool // target reached zero HP from this blow
}

// Resolver rolls damage with a variance of -1, 0 or +1 drawn from its
// stream.
type Resolver struct {
	src rng.Stream
}

// NewResolver creates a resolver that draws variance from src.
func NewResolver(src rng.Stream) *Resolver {
	return &Resolver{src: src}
}

// Roll returns max(1, attack - defense + variance) without applying it.
func (r *Resolver) Roll(attack, defense int) int {
	damage := attack - defense + rng.Intn(r.src, 3) - 1
	if damage < 1 {
		damage = 1
	}
	return damage
}

// Strike rolls attacker against target, adding bonusDefense to the target's
// defense for this blow only, and applies the damage.
func (r *Resolver) Strike(attacker, target Combatant, bonusDefense int) Hit {
	damage := r.Roll(attacker.GetAttack(), target.GetDefense()+bonusDefense)
	dealt := target.TakeDamage(damage)
	return Hit{
		Damage: damage,
		Dealt:  dealt,
		Killed: !target.IsAlive(),
	}
}
