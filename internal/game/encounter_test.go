package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/greenchapel/internal/gamedata"
)

func TestHermitShareFood(t *testing.T) {
	g := newTestGame(t)
	openEncounter(t, g, "hermit")
	assert.Equal(t, "† The Hermit", g.log[len(g.log)-1])

	g.ChooseEncounter(context.Background(), 2)

	assert.Equal(t, ModePlaying, g.Mode())
	assert.Nil(t, g.encounter)
	assert.Equal(t, 45, g.player.HP)
	assert.True(t, g.player.HasGreenSash)
	assert.True(t, g.player.HasItem("green_sash"))
	assert.Contains(t, g.log, testRegistry.ResultText("share_food"))
	assert.Contains(t, g.log, "Received: Green Sash")
}

func TestCostNeverKills(t *testing.T) {
	g := newTestGame(t)
	openEncounter(t, g, "hermit")
	g.player.HP = 3

	g.ChooseEncounter(context.Background(), 2)

	assert.Equal(t, 1, g.player.HP)
	assert.Equal(t, ModePlaying, g.Mode())
}

func TestCostTurns(t *testing.T) {
	g := newTestGame(t)
	openEncounter(t, g, "lost_traveler")

	g.ChooseEncounter(context.Background(), 0)

	assert.Equal(t, 3, g.turns)
	assert.Equal(t, 20, g.player.XP)
}

func TestCostDefense(t *testing.T) {
	g := newTestGame(t)
	openEncounter(t, g, "lost_traveler")

	g.ChooseEncounter(context.Background(), 1)

	assert.Equal(t, 1, g.player.Defense)
	assert.Equal(t, 1, g.player.Karma)
}

func TestInvalidChoiceIndex(t *testing.T) {
	g := newTestGame(t)
	openEncounter(t, g, "the_ford")
	n := len(g.log)

	g.ChooseEncounter(context.Background(), -1)
	g.ChooseEncounter(context.Background(), 2)

	assert.Equal(t, ModeEncounter, g.Mode())
	assert.Len(t, g.log, n)
}

func TestGreenSashGate(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t)
	openEncounter(t, g, "the_bargain")

	view := g.Snapshot().Encounter
	require.NotNil(t, view)
	require.Len(t, view.Choices, 3)
	assert.True(t, view.Choices[0].Available)
	assert.False(t, view.Choices[2].Available)
	assert.Equal(t, "green_sash", view.Choices[2].Requires)

	g.ChooseEncounter(ctx, 2)
	assert.Equal(t, ModeEncounter, g.Mode(), "a locked choice leaves the encounter open")
	assert.Equal(t, "You don't have what's needed for that.", g.log[len(g.log)-1])

	g.player.Receive(item("green_sash"))
	assert.True(t, g.Snapshot().Encounter.Choices[2].Available)

	g.ChooseEncounter(ctx, 2)
	assert.Equal(t, ModeVictory, g.Mode())
	assert.Equal(t, "honesty", g.Snapshot().VictoryKind)
	assert.Equal(t, testRegistry.VictoryMessage("honesty"), g.Snapshot().VictoryText)
	assert.Nil(t, g.encounter)
}

func TestSashFlagSatisfiesRequirement(t *testing.T) {
	g := newTestGame(t)
	openEncounter(t, g, "the_bargain")
	g.player.HasGreenSash = true

	assert.True(t, g.CanChoose(g.encounter.Def.Choices[2]))

	gated := gamedata.ChoiceDef{Text: "Drink", Requires: "healing_draught"}
	require.False(t, g.player.HasItem("healing_draught"))
	assert.True(t, g.CanChoose(gated), "the flag unlocks any requirement")

	g.player.HasGreenSash = false
	assert.False(t, g.CanChoose(gated))
}

func TestBargainAccept(t *testing.T) {
	g := newTestGame(t)
	openEncounter(t, g, "the_bargain")

	g.ChooseEncounter(context.Background(), 0)

	assert.Equal(t, ModeVictory, g.Mode())
	assert.Equal(t, "courage", g.Snapshot().VictoryKind)
}

func TestBargainFightStartsBossCombat(t *testing.T) {
	g := newTestGame(t)
	openEncounter(t, g, "the_bargain")

	g.ChooseEncounter(context.Background(), 1)

	assert.Equal(t, ModeCombat, g.Mode())
	require.NotNil(t, g.combat)
	assert.Equal(t, "green_knight", g.combat.Enemy.ID)
	assert.True(t, g.combat.Enemy.Boss)
	assert.Equal(t, g.player.X, g.combat.Enemy.X)
	assert.Empty(t, g.enemies, "scripted enemies are not placed on the level")
	assert.Nil(t, g.encounter)
}

func TestConfessionAttackStartsCombat(t *testing.T) {
	g := newTestGame(t)
	openEncounter(t, g, "confession")

	g.ChooseEncounter(context.Background(), 2)

	assert.Equal(t, ModeCombat, g.Mode())
	assert.Equal(t, "false_monk", g.combat.Enemy.ID)
	assert.Contains(t, g.log, "The screen splinters. Behind it...")
}

func TestRandomEffectGoodBranch(t *testing.T) {
	g := newTestGame(t, 0.4)
	openEncounter(t, g, "strange_light")

	g.ChooseEncounter(context.Background(), 0)

	assert.True(t, g.player.HasItem("wisp_light"))
	assert.Equal(t, 50, g.player.HP)
}

func TestRandomEffectBadBranch(t *testing.T) {
	g := newTestGame(t, 0.6)
	openEncounter(t, g, "strange_light")

	g.ChooseEncounter(context.Background(), 0)

	assert.False(t, g.player.HasItem("wisp_light"))
	assert.Equal(t, 35, g.player.HP)
	assert.Equal(t, ModePlaying, g.Mode())
}

func TestAltarDamageKills(t *testing.T) {
	g := newTestGame(t)
	openEncounter(t, g, "altar")
	g.player.HP = 1

	g.ChooseEncounter(context.Background(), 0)

	assert.Equal(t, ModeDead, g.Mode())
	assert.Equal(t, 0, g.player.HP)
	assert.Nil(t, g.encounter)
	assert.NotEmpty(t, g.Snapshot().DeathMessage)
}

func TestLibraryBurnCurse(t *testing.T) {
	g := newTestGame(t, 0.6)
	openEncounter(t, g, "library")

	g.ChooseEncounter(context.Background(), 2)

	assert.Equal(t, 3, g.player.Attack)
	assert.Contains(t, g.log, "attack decreased!")
}

func TestNoneEffect(t *testing.T) {
	g := newTestGame(t)
	openEncounter(t, g, "altar")
	before := *g.player

	g.ChooseEncounter(context.Background(), 2)

	assert.Equal(t, ModePlaying, g.Mode())
	assert.Equal(t, before.HP, g.player.HP)
	assert.Equal(t, before.XP, g.player.XP)
	assert.Equal(t, testRegistry.ResultText("leave"), g.log[len(g.log)-1])
}
