package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/samdwyer/greenchapel/internal/gamedata"
)

var (
	bread = Item{ID: "bread_loaf", Name: "Stale Bread", Type: gamedata.ItemConsumable, Heal: 8}
	sword = Item{ID: "rusty_sword", Name: "Rusty Sword", Type: gamedata.ItemWeapon, Attack: 2}
	blade = Item{ID: "blessed_blade", Name: "Blessed Blade", Type: gamedata.ItemWeapon, Attack: 7}
	pelt  = Item{ID: "wolf_pelt", Name: "Wolf Pelt", Type: gamedata.ItemArmor, Defense: 1}
	wisp  = Item{ID: "wisp_light", Name: "Captured Wisp", Type: gamedata.ItemCharm, Charm: gamedata.CharmSight}
	sash  = Item{ID: gamedata.GreenSashID, Name: "Green Sash", Type: gamedata.ItemCharm, Charm: gamedata.CharmImmortality}
	coin  = Item{ID: "stolen_coin", Name: "Stolen Coin", Type: gamedata.ItemMisc}
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(bread, bread)

	assert.Equal(t, 50, p.HP)
	assert.Equal(t, 50, p.MaxHP)
	assert.Equal(t, 5, p.Attack)
	assert.Equal(t, 2, p.Defense)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 0, p.XP)
	assert.Equal(t, 30, p.XPToLevel)
	assert.Len(t, p.Inventory, 2)
	assert.False(t, p.HasGreenSash)
}

func TestGainXPExactThreshold(t *testing.T) {
	p := NewPlayer()
	levels := p.GainXP(30)

	assert.Equal(t, []int{2}, levels)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 0, p.XP)
	assert.Equal(t, 45, p.XPToLevel)
	assert.Equal(t, 58, p.MaxHP)
	assert.Equal(t, 58, p.HP)
	assert.Equal(t, 6, p.Attack)
	assert.Equal(t, 3, p.Defense)
}

func TestGainXPMultipleLevels(t *testing.T) {
	p := NewPlayer()
	p.HP = 10
	levels := p.GainXP(75)

	assert.Equal(t, []int{2, 3}, levels)
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 0, p.XP)
	assert.Equal(t, 67, p.XPToLevel, "floor(45 * 1.5)")
	assert.Equal(t, 66, p.MaxHP)
	assert.Equal(t, 26, p.HP)
}

func TestGainXPBelowThreshold(t *testing.T) {
	p := NewPlayer()
	assert.Empty(t, p.GainXP(29))
	assert.Equal(t, 29, p.XP)
	assert.Equal(t, 1, p.Level)
}

func TestGainXP_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		p := NewPlayer()
		gains := rapid.SliceOfN(rapid.IntRange(0, 200), 1, 20).Draw(rt, "gains")
		for _, g := range gains {
			p.GainXP(g)
			if p.XP < 0 || p.XP >= p.XPToLevel {
				rt.Fatalf("xp %d outside [0, %d)", p.XP, p.XPToLevel)
			}
			if p.HP > p.MaxHP {
				rt.Fatalf("hp %d above max %d", p.HP, p.MaxHP)
			}
		}
	})
}

func TestTakeDamageAndHealClamp(t *testing.T) {
	p := NewPlayer()

	assert.Equal(t, 0, p.Heal(10), "already full")
	assert.Equal(t, 50, p.TakeDamage(80))
	assert.Equal(t, 0, p.HP)
	assert.False(t, p.IsAlive())
	assert.Equal(t, 0, p.TakeDamage(-3))
	assert.Equal(t, 15, p.Heal(15))
}

func TestConsume(t *testing.T) {
	p := NewPlayer(sword, bread, coin)
	p.HP = 45

	item, healed, ok := p.Consume(1)
	require.True(t, ok)
	assert.Equal(t, "bread_loaf", item.ID)
	assert.Equal(t, 5, healed, "capped at max HP")
	assert.Equal(t, 50, p.HP)
	assert.Equal(t, []Item{sword, coin}, p.Inventory)

	_, _, ok = p.Consume(0)
	assert.False(t, ok, "weapons are not consumable")
	_, _, ok = p.Consume(9)
	assert.False(t, ok)
}

func TestEquipSwapsSlot(t *testing.T) {
	p := NewPlayer(sword, blade, pelt)

	item, ok := p.Equip(0)
	require.True(t, ok)
	assert.Equal(t, "rusty_sword", item.ID)
	assert.Equal(t, 7, p.GetAttack())
	assert.Equal(t, []Item{blade, pelt}, p.Inventory)

	_, ok = p.Equip(0)
	require.True(t, ok)
	assert.Equal(t, 12, p.GetAttack())
	assert.Equal(t, []Item{pelt, sword}, p.Inventory, "old weapon returns to the end")

	_, ok = p.Equip(0)
	require.True(t, ok)
	assert.Equal(t, 3, p.GetDefense())
	assert.Equal(t, []Item{sword}, p.Inventory)
}

func TestEquipRejectsConsumablesAndMisc(t *testing.T) {
	p := NewPlayer(bread, coin)
	_, ok := p.Equip(0)
	assert.False(t, ok)
	_, ok = p.Equip(1)
	assert.False(t, ok)
	_, ok = p.Equip(-1)
	assert.False(t, ok)
	assert.Len(t, p.Inventory, 2)
}

func TestSightCharm(t *testing.T) {
	p := NewPlayer(wisp)
	assert.Equal(t, 0, p.SightBonus())
	p.Equip(0)
	assert.Equal(t, 2, p.SightBonus())
}

func TestGreenSashFlag(t *testing.T) {
	p := NewPlayer()
	p.Receive(sash)
	assert.True(t, p.HasGreenSash)
	assert.True(t, p.HasItem(gamedata.GreenSashID))

	p = NewPlayer(sash)
	assert.False(t, p.HasGreenSash, "starting inventory does not go through Receive")
	p.Equip(0)
	assert.True(t, p.HasGreenSash)
	assert.True(t, p.HasItem(gamedata.GreenSashID), "equipped items count")
	assert.Empty(t, p.Inventory)
}

func TestBuffAndCurse(t *testing.T) {
	p := NewPlayer()

	p.Buff(StatDefense, 2)
	assert.Equal(t, 4, p.Defense)

	p.Buff(StatMaxHP, 5)
	assert.Equal(t, 55, p.MaxHP)
	assert.Equal(t, 55, p.HP)

	p.Buff("speed", 2)
	assert.Equal(t, 2, p.Stat("speed"))

	p.Curse(StatAttack, -2)
	assert.Equal(t, 3, p.Attack)
	p.Curse(StatAttack, -10)
	assert.Equal(t, 1, p.Attack, "curses floor at 1")

	p.Curse(StatMaxHP, -60)
	assert.Equal(t, 1, p.MaxHP)
	assert.Equal(t, 1, p.HP)
}

func TestPlayerClone(t *testing.T) {
	p := NewPlayer(bread, sword)
	p.Equip(1)
	p.Extra["speed"] = 2

	c := p.Clone()
	c.Inventory[0].Name = "changed"
	c.Weapon.Attack = 99
	c.Extra["speed"] = 7

	assert.Equal(t, "Stale Bread", p.Inventory[0].Name)
	assert.Equal(t, 2, p.Weapon.Attack)
	assert.Equal(t, 2, p.Extra["speed"])
}

func TestNewEnemyCopiesTemplate(t *testing.T) {
	def := &gamedata.EnemyDef{
		ID: "wolf", Name: "Hungry Wolf", Glyph: "w", HP: 12, Attack: 4, Defense: 1,
		XP: 8, Loot: []string{"wolf_pelt"},
	}
	e := NewEnemy(def, 3, 4)

	assert.Equal(t, 12, e.HP)
	assert.Equal(t, 12, e.MaxHP)
	assert.Equal(t, 'w', e.Symbol)
	assert.Equal(t, 3, e.X)
	assert.Equal(t, 4, e.Y)

	e.Loot[0] = "changed"
	e.TakeDamage(5)
	assert.Equal(t, "wolf_pelt", def.Loot[0], "template loot is not aliased")
	assert.Equal(t, 12, def.HP)
}

func TestEnemyDeathAndAt(t *testing.T) {
	e := NewEnemy(&gamedata.EnemyDef{ID: "wolf", HP: 12}, 1, 1)
	assert.True(t, e.At(1, 1))
	assert.Equal(t, 12, e.TakeDamage(40))
	assert.Equal(t, 0, e.HP)
	assert.False(t, e.IsAlive())
	assert.False(t, e.At(1, 1), "dead enemies occupy nothing")

	c := e.Clone()
	c.HP = 5
	assert.Equal(t, 0, e.HP)
}

func TestNewItem(t *testing.T) {
	def := &gamedata.ItemDef{ID: "troll_hide", Name: "Troll Hide", Type: gamedata.ItemArmor, Defense: 3}
	it := NewItem(def)
	assert.Equal(t, "troll_hide", it.ID)
	assert.Equal(t, 3, it.Defense)
	assert.True(t, it.IsEquippable())
	assert.False(t, bread.IsEquippable())
}
