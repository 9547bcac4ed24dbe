package game

import (
	"context"

	"go.uber.org/zap"

	"github.com/samdwyer/greenchapel/internal/entity"
	"github.com/samdwyer/greenchapel/internal/gamedata"
	"github.com/samdwyer/greenchapel/internal/rng"
	"github.com/samdwyer/greenchapel/internal/world"
)

// teleportAttempts bounds the search for a free landing cell.
const teleportAttempts = 20

// applyEffect resolves one encounter effect against the game state.
func (g *Game) applyEffect(ctx context.Context, effect gamedata.Effect) {
	if effect == nil {
		return
	}
	p := g.player

	switch e := effect.(type) {
	case gamedata.Heal:
		p.Heal(e.Amount)
		g.logf("Healed %d HP.", e.Amount)

	case gamedata.FullHeal:
		p.HP = p.MaxHP
		g.addLog("Fully healed!")

	case gamedata.Damage:
		p.TakeDamage(e.Amount)
		g.logf("Took %d damage!", e.Amount)
		if !p.IsAlive() {
			g.die("encounter")
		}

	case gamedata.GrantItem:
		if def := g.reg.Item(e.ItemID); def != nil {
			item := entity.NewItem(def)
			p.Receive(item)
			g.logf("Received: %s", item.Name)
		}

	case gamedata.GrantXP:
		g.gainXP(e.Amount)

	case gamedata.Buff:
		p.Buff(e.Stat, e.Amount)
		g.logf("%s increased by %d.", e.Stat, e.Amount)

	case gamedata.Curse:
		p.Curse(e.Stat, e.Amount)
		g.logf("%s decreased!", e.Stat)

	case gamedata.Karma:
		p.Karma += e.Amount

	case gamedata.StartCombat:
		if def := g.reg.Enemy(e.EnemyID); def != nil {
			g.startCombat(ctx, entity.NewEnemy(def, p.X, p.Y))
		}

	case gamedata.RevealMap:
		g.fog.RevealAll()
		g.addLog("The map reveals itself.")

	case gamedata.Random:
		if rng.Chance(g.ambient, 0.5) {
			g.applyEffect(ctx, e.Good)
		} else {
			g.applyEffect(ctx, e.Bad)
		}

	case gamedata.FinalTest:
		g.win(e.Test)

	case gamedata.Teleport:
		g.teleport()

	case gamedata.RevealStairs:
		if s := g.level.Stairs; s != nil {
			g.fog.Update(g.level, *s, StairsRevealRadius)
			g.addLog("You sense the way down.")
		} else {
			g.addLog("The echoes fade. There is no way further down.")
		}

	case gamedata.NoEffect:

	default:
		g.logger.Warn("unhandled effect", g.fields(zap.String("kind", string(effect.Kind())))...)
	}
}

// teleport moves the player to a random plain floor cell of a random room
// and refreshes sight. Stairs, shrines, items and enemies are never landing
// cells, since nothing fires until the player steps onto them.
func (g *Game) teleport() {
	for i := 0; i < teleportAttempts; i++ {
		room := rng.Intn(g.ambient, len(g.level.Rooms))
		pt := g.level.RandomFloorInRoom(room, g.ambient)
		if pt.X < 0 || g.level.GetTile(pt.X, pt.Y) != world.TileFloor || g.enemyAt(pt.X, pt.Y) != nil {
			continue
		}
		g.player.SetPosition(pt.X, pt.Y)
		g.addLog("The world tilts. You are somewhere else.")
		g.updateFog()
		return
	}
	g.addLog("The world tilts, then settles.")
}
