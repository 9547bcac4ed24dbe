package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/greenchapel/internal/combat"
	"github.com/samdwyer/greenchapel/internal/entity"
	"github.com/samdwyer/greenchapel/internal/gamedata"
	"github.com/samdwyer/greenchapel/internal/rng"
	"github.com/samdwyer/greenchapel/internal/telemetry"
	"github.com/samdwyer/greenchapel/internal/world"
)

// CombatAction is a player choice during combat.
type CombatAction int

const (
	ActionAttack CombatAction = iota
	ActionDefend
	ActionFlee
	// ActionUseItem is accepted but does nothing here; items are used
	// through UseItem, which works during combat.
	ActionUseItem
)

// String returns a human-readable action name.
func (a CombatAction) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionDefend:
		return "defend"
	case ActionFlee:
		return "flee"
	case ActionUseItem:
		return "use_item"
	default:
		return "unknown"
	}
}

// CombatState holds all state for an active fight. Enemy is a working copy;
// every change to its HP is mirrored onto the enemy on the level so both end
// the fight in the same state.
type CombatState struct {
	Enemy     *entity.Enemy
	Defending bool // adds combat.DefendBonus to the next incoming hit
	Round     int
	Log       []string

	ref *entity.Enemy
}

// NewCombatState creates the state for a fight against enemy.
func NewCombatState(enemy *entity.Enemy) *CombatState {
	cs := &CombatState{
		Enemy: enemy.Clone(),
		ref:   enemy,
	}
	cs.logf("A %s blocks your path!", enemy.Name)
	if enemy.Description != "" {
		cs.logf("%s", enemy.Description)
	}
	return cs
}

func (cs *CombatState) logf(format string, args ...any) {
	cs.Log = append(cs.Log, fmt.Sprintf(format, args...))
	if len(cs.Log) > CombatLogCap {
		cs.Log = append([]string(nil), cs.Log[len(cs.Log)-CombatLogCap:]...)
	}
}

// sync mirrors the working copy's HP onto the level enemy.
func (cs *CombatState) sync() {
	cs.ref.HP = cs.Enemy.HP
}

// startCombat enters combat against enemy.
func (g *Game) startCombat(ctx context.Context, enemy *entity.Enemy) {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.start")
	span.SetAttributes(
		attribute.String("enemy.id", enemy.ID),
		attribute.Int("enemy.hp", enemy.HP),
		attribute.Bool("enemy.boss", enemy.Boss),
	)
	span.End()

	g.mode = ModeCombat
	g.encounter = nil
	g.combat = NewCombatState(enemy)
	g.logf("Combat: %s!", enemy.Name)

	g.logger.Debug("combat started", g.fields(zap.String("enemy", enemy.ID))...)
}

// CombatAction resolves one player action and, unless the fight ended, the
// enemy's reply.
func (g *Game) CombatAction(ctx context.Context, action CombatAction) {
	if g.mode != ModeCombat || g.combat == nil {
		return
	}
	if action == ActionUseItem {
		return
	}

	c := g.combat
	c.Round++

	tracer := telemetry.Tracer("combat")
	ctx, span := tracer.Start(ctx, "combat.turn")
	span.SetAttributes(
		attribute.String("action", action.String()),
		attribute.String("enemy.id", c.Enemy.ID),
		attribute.Int("round", c.Round),
	)
	defer span.End()

	switch action {
	case ActionAttack:
		hit := g.resolver.Strike(g.player, c.Enemy, 0)
		c.sync()
		c.logf("You strike for %d damage.", hit.Damage)
		span.SetAttributes(attribute.Int("damage.dealt", hit.Damage))
		if hit.Killed {
			g.defeatEnemy(ctx)
			return
		}
	case ActionDefend:
		c.logf("You brace yourself.")
		c.Defending = true
	case ActionFlee:
		if rng.Chance(g.ambient, FleeChance) {
			c.logf("You escape!")
			g.addLog("Fled from combat.")
			g.endCombat(ctx, "fled")
			return
		}
		c.logf("You can't escape!")
	default:
		return
	}

	g.enemyTurn()
	span.SetAttributes(attribute.Int("player.hp", g.player.HP))
}

// enemyTurn lets the enemy strike back once.
func (g *Game) enemyTurn() {
	c := g.combat
	if c == nil || !c.Enemy.IsAlive() {
		return
	}

	bonus := 0
	if c.Defending {
		bonus = combat.DefendBonus
	}
	hit := g.resolver.Strike(c.Enemy, g.player, bonus)
	c.logf("%s strikes for %d damage.", c.Enemy.Name, hit.Damage)
	c.Defending = false

	if !g.player.IsAlive() {
		g.die("slain by " + c.Enemy.ID)
	}
}

// defeatEnemy handles a killing blow: clear the enemy from the level, award
// XP and one loot roll, then either win (boss) or return to exploring.
func (g *Game) defeatEnemy(ctx context.Context) {
	c := g.combat
	e := c.Enemy

	c.logf("The %s falls.", e.Name)
	g.logf("Defeated: %s (+%d XP)", e.Name, e.XP)

	c.ref.HP = 0
	if g.level.GetTile(c.ref.X, c.ref.Y) == world.TileEnemy {
		g.level.SetTile(c.ref.X, c.ref.Y, world.TileFloor)
	}

	g.gainXP(e.XP)
	if len(e.Loot) > 0 {
		id := e.Loot[rng.Intn(g.ambient, len(e.Loot))]
		if def := g.reg.Item(id); def != nil {
			loot := entity.NewItem(def)
			g.player.Receive(loot)
			g.logf("Loot: %s", loot.Name)
		}
	}

	if e.Boss {
		g.endCombat(ctx, "boss_defeated")
		g.win(gamedata.TestCombat)
		return
	}
	g.endCombat(ctx, "victory")
}

// endCombat leaves combat for exploration.
func (g *Game) endCombat(ctx context.Context, outcome string) {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.end")
	span.SetAttributes(attribute.String("outcome", outcome))
	if g.combat != nil {
		span.SetAttributes(attribute.Int("rounds", g.combat.Round))
	}
	span.End()

	g.logger.Debug("combat ended", g.fields(zap.String("outcome", outcome))...)

	g.combat = nil
	g.mode = ModePlaying
}
