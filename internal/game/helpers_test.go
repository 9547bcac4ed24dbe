package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samdwyer/greenchapel/internal/entity"
	"github.com/samdwyer/greenchapel/internal/gamedata"
	"github.com/samdwyer/greenchapel/internal/rng"
	"github.com/samdwyer/greenchapel/internal/world"
)

var testRegistry = gamedata.MustLoadRegistry()

// newTestGame starts a seed-42 run whose ambient stream replays draws
// (0.5 by default, which means zero combat variance and failed coin flips).
func newTestGame(t *testing.T, draws ...float64) *Game {
	t.Helper()
	if len(draws) == 0 {
		draws = []float64{0.5}
	}
	g := New(testRegistry, WithSeed(42), WithAmbient(rng.NewFixed(draws...)))
	g.Start(context.Background())
	require.Equal(t, ModePlaying, g.Mode())
	return g
}

// isolate clears every spawn and opens the four cells around the player so
// a test controls exactly what is next to them.
func isolate(g *Game) {
	g.enemies = nil
	g.items = nil
	g.encounters = nil
	g.level.Stairs = nil
	for _, d := range []Direction{North, South, West, East} {
		dx, dy := d.Delta()
		g.level.SetTile(g.player.X+dx, g.player.Y+dy, world.TileFloor)
	}
}

// spawn places a fresh enemy from the registry on the level.
func spawn(g *Game, id string, x, y int) *entity.Enemy {
	e := entity.NewEnemy(testRegistry.Enemy(id), x, y)
	g.enemies = append(g.enemies, e)
	g.level.SetTile(x, y, world.TileEnemy)
	return e
}

// item builds an item instance from the registry.
func item(id string) entity.Item {
	return entity.NewItem(testRegistry.Item(id))
}

// openEncounter triggers encounter id under the player.
func openEncounter(t *testing.T, g *Game, id string) {
	t.Helper()
	isolate(g)
	g.triggerEncounter(context.Background(), &entity.Encounter{ID: id, X: g.player.X, Y: g.player.Y})
	require.Equal(t, ModeEncounter, g.Mode())
}
