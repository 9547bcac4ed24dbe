package game

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/samdwyer/greenchapel/internal/rng"
	"github.com/samdwyer/greenchapel/internal/world"
)

// play replays a sequence of encoded intents.
func play(ctx context.Context, g *Game, steps []int, check func()) {
	for _, s := range steps {
		switch {
		case s < 4:
			g.Move(ctx, Direction(s))
		case s < 7:
			g.CombatAction(ctx, CombatAction(s-4))
		case s < 10:
			g.ChooseEncounter(ctx, s-7)
		case s == 10:
			g.UseItem(ctx, 0)
		default:
			g.Wait(ctx)
		}
		if check != nil {
			check()
		}
	}
}

func TestEngineInvariants_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ctx := context.Background()
		seed := rapid.Uint32Range(1, math.MaxUint32).Draw(rt, "seed")
		draws := rapid.SliceOfN(rapid.Float64Range(0, 0.999), 1, 8).Draw(rt, "draws")
		steps := rapid.SliceOfN(rapid.IntRange(0, 11), 1, 200).Draw(rt, "steps")

		g := New(testRegistry, WithSeed(seed), WithAmbient(rng.NewFixed(draws...)))
		g.Start(ctx)

		play(ctx, g, steps, func() {
			p := g.player
			if p.HP < 0 || p.HP > p.MaxHP {
				rt.Fatalf("hp %d outside [0,%d]", p.HP, p.MaxHP)
			}
			if (p.HP == 0) != (g.mode == ModeDead) {
				rt.Fatalf("hp %d in mode %s", p.HP, g.mode)
			}
			if !g.level.IsPassable(p.X, p.Y) {
				rt.Fatalf("player on blocked cell (%d,%d)", p.X, p.Y)
			}
			if g.depth < 1 || g.depth > world.MaxDepth {
				rt.Fatalf("depth %d", g.depth)
			}
			if len(g.log) > LogCap {
				rt.Fatalf("log length %d", len(g.log))
			}
			if (g.combat != nil) != (g.mode == ModeCombat) {
				rt.Fatalf("combat state %v in mode %s", g.combat != nil, g.mode)
			}
			if (g.encounter != nil) != (g.mode == ModeEncounter) {
				rt.Fatalf("encounter state %v in mode %s", g.encounter != nil, g.mode)
			}
			if g.combat != nil && len(g.combat.Log) > CombatLogCap {
				rt.Fatalf("combat log length %d", len(g.combat.Log))
			}
			if g.mode == ModePlaying && !g.fog.Revealed(p.X, p.Y) {
				rt.Fatalf("player cell hidden")
			}
		})
	})
}

func TestReplayIsDeterministic_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ctx := context.Background()
		seed := rapid.Uint32Range(1, math.MaxUint32).Draw(rt, "seed")
		draws := rapid.SliceOfN(rapid.Float64Range(0, 0.999), 1, 8).Draw(rt, "draws")
		steps := rapid.SliceOfN(rapid.IntRange(0, 11), 1, 120).Draw(rt, "steps")

		run := func() Snapshot {
			g := New(testRegistry, WithSeed(seed), WithAmbient(rng.NewFixed(draws...)))
			g.Start(ctx)
			play(ctx, g, steps, nil)
			s := g.Snapshot()
			s.RunID = ""
			return s
		}

		a, b := run(), run()
		assert.Equal(rt, a, b)
	})
}
