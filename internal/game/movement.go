package game

import (
	"context"

	"github.com/samdwyer/greenchapel/internal/entity"
	"github.com/samdwyer/greenchapel/internal/world"
)

// Direction is one of the four cardinal moves.
type Direction int

const (
	North Direction = iota
	South
	West
	East
)

// Delta returns the x, y offset of one step.
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case West:
		return -1, 0
	case East:
		return 1, 0
	default:
		return 0, 0
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case West:
		return "west"
	case East:
		return "east"
	default:
		return "unknown"
	}
}

// Move attempts one step. Walls and the map edge reject the move without
// consuming a turn; walking into a living enemy starts combat instead.
func (g *Game) Move(ctx context.Context, dir Direction) {
	if g.mode != ModePlaying {
		return
	}
	dx, dy := dir.Delta()
	if dx == 0 && dy == 0 {
		return
	}
	nx, ny := g.player.X+dx, g.player.Y+dy

	if !g.level.InBounds(nx, ny) || g.level.GetTile(nx, ny) == world.TileWall {
		return
	}

	if enemy := g.enemyAt(nx, ny); enemy != nil {
		g.startCombat(ctx, enemy)
		return
	}

	g.player.SetPosition(nx, ny)
	g.turns++

	g.checkTile(ctx)
	g.updateFog()
}

// Wait passes a turn in place.
func (g *Game) Wait(ctx context.Context) {
	if g.mode != ModePlaying {
		return
	}
	g.turns++
}

// checkTile resolves what is under the player after a step: pickup, then
// stairs (which end the step), then an untriggered encounter.
func (g *Game) checkTile(ctx context.Context) {
	x, y := g.player.X, g.player.Y

	for i := range g.items {
		if g.items[i].X == x && g.items[i].Y == y {
			item := g.items[i].Item
			g.items = append(g.items[:i:i], g.items[i+1:]...)
			g.level.SetTile(x, y, world.TileFloor)
			g.player.Receive(item)
			g.logf("Found: %s. %s", item.Name, item.Description)
			break
		}
	}

	if s := g.level.Stairs; s != nil && s.X == x && s.Y == y {
		g.addLog("You descend deeper...")
		g.depth++
		g.enterLevel(ctx)
		return
	}

	if enc := g.encounterAt(x, y); enc != nil {
		g.triggerEncounter(ctx, enc)
	}
}

// enemyAt returns the living enemy at (x, y), or nil.
func (g *Game) enemyAt(x, y int) *entity.Enemy {
	for _, e := range g.enemies {
		if e.At(x, y) {
			return e
		}
	}
	return nil
}

// encounterAt returns the untriggered encounter at (x, y), or nil.
func (g *Game) encounterAt(x, y int) *entity.Encounter {
	for i := range g.encounters {
		enc := &g.encounters[i]
		if !enc.Triggered && enc.X == x && enc.Y == y {
			return enc
		}
	}
	return nil
}
