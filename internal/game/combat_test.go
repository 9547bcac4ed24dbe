package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/greenchapel/internal/entity"
	"github.com/samdwyer/greenchapel/internal/world"
)

func TestCombatActionString(t *testing.T) {
	tests := []struct {
		action   CombatAction
		expected string
	}{
		{ActionAttack, "attack"},
		{ActionDefend, "defend"},
		{ActionFlee, "flee"},
		{ActionUseItem, "use_item"},
		{CombatAction(42), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.action.String())
	}
}

// fightNextTo isolates the player, spawns id to the east and walks into it.
func fightNextTo(t *testing.T, g *Game, id string) *entity.Enemy {
	t.Helper()
	isolate(g)
	e := spawn(g, id, g.player.X+1, g.player.Y)
	g.Move(context.Background(), East)
	require.Equal(t, ModeCombat, g.Mode())
	return e
}

func TestNewCombatStateLogsIntro(t *testing.T) {
	wolf := entity.NewEnemy(testRegistry.Enemy("wolf"), 3, 4)
	cs := NewCombatState(wolf)

	assert.Equal(t, []string{"A Hungry Wolf blocks your path!", "Ribs showing. Desperate."}, cs.Log)
	assert.Equal(t, 0, cs.Round)
	assert.False(t, cs.Defending)
	assert.NotSame(t, wolf, cs.Enemy)
}

func TestAttackKillsWeakEnemy(t *testing.T) {
	g := newTestGame(t)
	isolate(g)
	x, y := g.player.X, g.player.Y
	wolf := spawn(g, "wolf", x+1, y)
	wolf.HP = 1

	g.Move(context.Background(), East)
	require.Equal(t, ModeCombat, g.Mode())
	g.CombatAction(context.Background(), ActionAttack)

	assert.Equal(t, ModePlaying, g.Mode())
	assert.Nil(t, g.combat)
	assert.Equal(t, 0, wolf.HP, "the level enemy shares the fight's outcome")
	assert.Len(t, g.enemies, 1, "dead enemies stay in the list")
	assert.Equal(t, world.TileFloor, g.level.GetTile(x+1, y))
	assert.Equal(t, x, g.player.X)

	assert.Equal(t, 8, g.player.XP)
	require.Len(t, g.player.Inventory, 3)
	assert.Equal(t, "wolf_pelt", g.player.Inventory[2].ID)
	assert.Contains(t, g.log, "Defeated: Hungry Wolf (+8 XP)")
	assert.Contains(t, g.log, "+8 XP")
	assert.Contains(t, g.log, "Loot: Wolf Pelt")

	s := g.Snapshot()
	assert.Empty(t, s.Enemies)

	// The corpse no longer blocks movement.
	g.Move(context.Background(), East)
	assert.Equal(t, x+1, g.player.X)
}

func TestCombatDamageMirrored(t *testing.T) {
	g := newTestGame(t)
	wolf := fightNextTo(t, g, "wolf")

	g.CombatAction(context.Background(), ActionAttack)

	// 5 ATK against 1 DEF with zero variance, then 4 ATK against 2 DEF.
	require.NotNil(t, g.combat)
	assert.Equal(t, 8, g.combat.Enemy.HP)
	assert.Equal(t, 8, wolf.HP)
	assert.Equal(t, 48, g.player.HP)
	assert.Equal(t, 1, g.combat.Round)
	assert.Contains(t, g.combat.Log, "You strike for 4 damage.")
	assert.Contains(t, g.combat.Log, "Hungry Wolf strikes for 2 damage.")
}

func TestDefendReducesNextHit(t *testing.T) {
	g := newTestGame(t)
	fightNextTo(t, g, "wolf")

	g.CombatAction(context.Background(), ActionDefend)

	assert.Equal(t, 49, g.player.HP, "4 ATK against 2+3 DEF still deals 1")
	assert.False(t, g.combat.Defending, "the bonus lasts for one hit")
	assert.Contains(t, g.combat.Log, "You brace yourself.")
}

func TestFleeSuccess(t *testing.T) {
	g := newTestGame(t, 0.4)
	wolf := fightNextTo(t, g, "wolf")

	g.CombatAction(context.Background(), ActionFlee)

	assert.Equal(t, ModePlaying, g.Mode())
	assert.Nil(t, g.combat)
	assert.Equal(t, 50, g.player.HP)
	assert.Equal(t, wolf.MaxHP, wolf.HP)
	assert.Equal(t, "Fled from combat.", g.log[len(g.log)-1])
}

func TestFleeFailure(t *testing.T) {
	g := newTestGame(t, 0.6)
	fightNextTo(t, g, "wolf")

	g.CombatAction(context.Background(), ActionFlee)

	assert.Equal(t, ModeCombat, g.Mode())
	assert.Equal(t, 48, g.player.HP)
	assert.Contains(t, g.combat.Log, "You can't escape!")
}

func TestUseItemActionIsNoop(t *testing.T) {
	g := newTestGame(t)
	fightNextTo(t, g, "wolf")

	g.CombatAction(context.Background(), ActionUseItem)

	assert.Equal(t, 0, g.combat.Round)
	assert.Equal(t, 50, g.player.HP)
}

func TestBossKillIsVictory(t *testing.T) {
	g := newTestGame(t)
	isolate(g)
	knight := entity.NewEnemy(testRegistry.Enemy("green_knight"), g.player.X, g.player.Y)
	knight.HP = 1
	g.startCombat(context.Background(), knight)

	g.CombatAction(context.Background(), ActionAttack)

	assert.Equal(t, ModeVictory, g.Mode())
	assert.Nil(t, g.combat)
	s := g.Snapshot()
	assert.Equal(t, "combat", s.VictoryKind)
	assert.Equal(t, testRegistry.VictoryMessage("combat"), s.VictoryText)
	assert.Equal(t, 50, g.player.HP, "no counter-attack after the killing blow")
}

func TestDeathInCombat(t *testing.T) {
	g := newTestGame(t)
	fightNextTo(t, g, "wolf")
	g.player.HP = 1

	g.CombatAction(context.Background(), ActionAttack)

	assert.Equal(t, ModeDead, g.Mode())
	assert.Equal(t, 0, g.player.HP)
	assert.Nil(t, g.combat)
	assert.Contains(t, testRegistry.DeathMessages(), g.Snapshot().DeathMessage)

	// Nothing but Restart moves the run on.
	g.CombatAction(context.Background(), ActionAttack)
	g.Move(context.Background(), West)
	g.UseItem(context.Background(), 0)
	assert.Equal(t, ModeDead, g.Mode())
	assert.Len(t, g.player.Inventory, 2)
}

func TestCombatLogCapped(t *testing.T) {
	g := newTestGame(t)
	fightNextTo(t, g, "wolf")

	for i := 0; i < 20; i++ {
		g.CombatAction(context.Background(), ActionDefend)
	}

	require.Equal(t, ModeCombat, g.Mode())
	assert.Len(t, g.combat.Log, CombatLogCap)
	assert.Equal(t, 30, g.player.HP)
	assert.Equal(t, 20, g.combat.Round)
}

func TestLevelUpThroughCombat(t *testing.T) {
	g := newTestGame(t)
	isolate(g)
	wolf := spawn(g, "wolf", g.player.X+1, g.player.Y)
	wolf.HP = 1
	g.player.XP = 25

	g.Move(context.Background(), East)
	g.CombatAction(context.Background(), ActionAttack)

	assert.Equal(t, 2, g.player.Level)
	assert.Equal(t, 3, g.player.XP)
	assert.Equal(t, 58, g.player.MaxHP)
	assert.Contains(t, g.log, "Level 2! HP+8, ATK+1, DEF+1")
}

func TestCombatActionOutsideCombat(t *testing.T) {
	g := newTestGame(t)
	g.CombatAction(context.Background(), ActionAttack)
	assert.Equal(t, ModePlaying, g.Mode())
	assert.Nil(t, g.combat)
}
