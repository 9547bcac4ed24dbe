package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/greenchapel/internal/entity"
	"github.com/samdwyer/greenchapel/internal/gamedata"
	"github.com/samdwyer/greenchapel/internal/telemetry"
	"github.com/samdwyer/greenchapel/internal/world"
)

// EncounterState is the encounter waiting for a choice.
type EncounterState struct {
	ID  string
	Def *gamedata.EncounterDef
}

// triggerEncounter marks the shrine used and opens its script.
func (g *Game) triggerEncounter(ctx context.Context, enc *entity.Encounter) {
	def := g.reg.Encounter(enc.ID)
	if def == nil {
		return
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "encounter.trigger")
	span.SetAttributes(attribute.String("encounter.id", enc.ID))
	span.End()

	enc.Triggered = true
	g.level.SetTile(enc.X, enc.Y, world.TileFloor)
	g.mode = ModeEncounter
	g.encounter = &EncounterState{ID: enc.ID, Def: def}
	g.logf("† %s", def.Title)

	g.logger.Debug("encounter triggered", g.fields(zap.String("encounter", enc.ID))...)
}

// CanChoose reports whether the player meets a choice's requirement. The
// green sash flag unlocks every gated choice.
func (g *Game) CanChoose(choice gamedata.ChoiceDef) bool {
	if choice.Requires == "" {
		return true
	}
	if g.player.HasItem(choice.Requires) {
		return true
	}
	return g.player.HasGreenSash
}

// ChooseEncounter resolves choice index of the open encounter: result text,
// effect, cost, then reward. The encounter closes afterwards. Cost and
// reward are skipped if the effect ended the run, and the mode returns to
// Playing only if the effect did not move it elsewhere.
func (g *Game) ChooseEncounter(ctx context.Context, index int) {
	if g.mode != ModeEncounter || g.encounter == nil {
		return
	}
	def := g.encounter.Def
	if index < 0 || index >= len(def.Choices) {
		return
	}
	choice := def.Choices[index]

	if !g.CanChoose(choice) {
		g.addLog("You don't have what's needed for that.")
		return
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "encounter.choose")
	defer span.End()
	span.SetAttributes(
		attribute.String("encounter.id", g.encounter.ID),
		attribute.Int("choice", index),
		attribute.String("result", choice.Result),
	)

	g.logger.Debug("encounter choice", g.fields(
		zap.String("encounter", g.encounter.ID),
		zap.String("result", choice.Result),
	)...)

	if text := g.reg.ResultText(choice.Result); text != "" {
		g.addLog(text)
	}

	g.applyEffect(ctx, choice.Effect)
	if choice.Cost != nil && !g.mode.Terminal() {
		g.payCost(*choice.Cost)
	}
	if choice.Reward != nil && !g.mode.Terminal() {
		g.applyEffect(ctx, choice.Reward)
	}

	if g.mode == ModeEncounter {
		g.mode = ModePlaying
	}
	g.encounter = nil
	span.SetAttributes(attribute.String("mode", g.mode.String()))
}

// payCost applies a choice's price. HP never drops below 1 from a cost.
func (g *Game) payCost(cost gamedata.CostDef) {
	p := g.player
	if cost.HP != 0 {
		p.HP = min(p.MaxHP, max(1, p.HP+cost.HP))
	}
	if cost.Defense != 0 {
		p.Defense += cost.Defense
	}
	if cost.Turns > 0 {
		g.turns += cost.Turns
	}
}
