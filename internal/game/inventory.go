package game

import (
	"context"

	"go.uber.org/zap"

	"github.com/samdwyer/greenchapel/internal/gamedata"
)

// UseItem consumes or equips the inventory item at index. It works while
// exploring and during combat; in combat it does not cost a round.
func (g *Game) UseItem(ctx context.Context, index int) {
	if g.mode != ModePlaying && g.mode != ModeCombat {
		return
	}
	p := g.player
	if index < 0 || index >= len(p.Inventory) {
		return
	}

	var msg string
	switch item := p.Inventory[index]; item.Type {
	case gamedata.ItemConsumable:
		used, healed, ok := p.Consume(index)
		if !ok {
			return
		}
		g.logf("Used %s. Healed %d HP.", used.Name, healed)
		msg = "You use " + used.Name + "."

	case gamedata.ItemWeapon:
		if _, ok := p.Equip(index); !ok {
			return
		}
		g.logf("Equipped: %s (+%d ATK)", item.Name, item.Attack)
		msg = "You draw " + item.Name + "."

	case gamedata.ItemArmor:
		if _, ok := p.Equip(index); !ok {
			return
		}
		g.logf("Equipped: %s (+%d DEF)", item.Name, item.Defense)
		msg = "You don " + item.Name + "."

	case gamedata.ItemCharm:
		if _, ok := p.Equip(index); !ok {
			return
		}
		g.logf("Attuned: %s", item.Name)
		msg = "You clutch " + item.Name + "."
		if g.mode == ModePlaying {
			g.updateFog()
		}

	default:
		return
	}

	if g.combat != nil {
		g.combat.logf("%s", msg)
	}
	g.logger.Debug("item used", g.fields(zap.Int("index", index))...)
}
