package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/greenchapel/internal/entity"
	"github.com/samdwyer/greenchapel/internal/rng"
	"github.com/samdwyer/greenchapel/internal/telemetry"
	"github.com/samdwyer/greenchapel/internal/world"
)

// enterLevel generates the level for the current depth and populates it.
// Which template lands on each spawn point is a pure function of
// (seed, depth, category, index).
func (g *Game) enterLevel(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "level.enter")
	defer span.End()

	g.biome = g.reg.BiomeFor(g.depth)
	g.level = world.Generate(ctx, g.depth, g.seed)
	g.player.SetPosition(g.level.Start.X, g.level.Start.Y)
	g.fog = world.NewFogMap(g.level.Width, g.level.Height)

	g.spawnEnemies()
	g.spawnItems()
	g.spawnEncounters()

	g.updateFog()
	g.logf("=== %s (Depth %d) ===", g.biome.Name, g.depth)
	g.addLog(g.biome.Description)

	span.SetAttributes(
		attribute.Int("level.depth", g.depth),
		attribute.String("level.biome", g.biome.ID),
		attribute.Int("level.enemies", len(g.enemies)),
		attribute.Int("level.items", len(g.items)),
		attribute.Int("level.encounters", len(g.encounters)),
	)
	g.logger.Debug("level entered", g.fields(zap.String("biome", g.biome.ID))...)
}

// pick draws an index in [0, n) from a one-shot sub-seeded stream.
func (g *Game) pick(purpose rng.Purpose, index, n int) int {
	return rng.Intn(rng.NewDeterministic(rng.SubSeed(g.seed, g.depth, purpose, index)), n)
}

func (g *Game) spawnEnemies() {
	pool := g.biome.Enemies
	g.enemies = make([]*entity.Enemy, 0, len(g.level.Enemies))
	for i, p := range g.level.Enemies {
		if len(pool) == 0 {
			g.level.SetTile(p.X, p.Y, world.TileFloor)
			continue
		}
		def := g.reg.Enemy(pool[g.pick(rng.Enemy, i, len(pool))])
		g.enemies = append(g.enemies, entity.NewEnemy(def, p.X, p.Y))
	}
}

func (g *Game) spawnItems() {
	pool := g.reg.GroundItemIDs()
	g.items = make([]entity.GroundItem, 0, len(g.level.Items))
	for i, p := range g.level.Items {
		if len(pool) == 0 {
			g.level.SetTile(p.X, p.Y, world.TileFloor)
			continue
		}
		def := g.reg.Item(pool[g.pick(rng.Item, i, len(pool))])
		g.items = append(g.items, entity.GroundItem{Item: entity.NewItem(def), X: p.X, Y: p.Y})
	}
}

func (g *Game) spawnEncounters() {
	pool := g.biome.Encounters
	g.encounters = make([]entity.Encounter, 0, len(g.level.Encounters))
	for i, p := range g.level.Encounters {
		if len(pool) == 0 {
			g.level.SetTile(p.X, p.Y, world.TileFloor)
			continue
		}
		id := pool[g.pick(rng.Encounter, i, len(pool))]
		g.encounters = append(g.encounters, entity.Encounter{ID: id, X: p.X, Y: p.Y})
	}
}

// sightRadius returns the current reveal radius including charm bonuses.
func (g *Game) sightRadius() int {
	return RevealRadius + g.player.SightBonus()
}

func (g *Game) updateFog() {
	g.fog.Update(g.level, world.Point{X: g.player.X, Y: g.player.Y}, g.sightRadius())
}
