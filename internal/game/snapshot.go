package game

import (
	"github.com/samdwyer/greenchapel/internal/entity"
	"github.com/samdwyer/greenchapel/internal/world"
)

// Snapshot is a read-only copy of everything the presentation layer draws.
// Nothing in it aliases engine state.
type Snapshot struct {
	Mode   Mode
	RunID  string
	Seed   uint32
	Depth  int
	Turns  int
	Width  int
	Height int

	Tiles  [][]world.Tile
	Fog    [][]bool
	Biome  Biome
	Stairs *world.Point

	Player     *entity.Player
	Enemies    []entity.Enemy // living enemies only
	Items      []entity.GroundItem
	Encounters []entity.Encounter // untriggered only

	Combat    *CombatView
	Encounter *EncounterView

	Log []string

	VictoryKind  string
	VictoryText  string
	DeathMessage string
}

// Biome is the presentation subset of a biome definition.
type Biome struct {
	Name        string
	Description string
	FloorGlyph  string
	WallGlyph   string
}

// CombatView describes an active fight.
type CombatView struct {
	Enemy     entity.Enemy
	Defending bool
	Round     int
	Log       []string
}

// EncounterView describes an open encounter and which choices are allowed.
type EncounterView struct {
	ID      string
	Title   string
	Text    string
	Choices []ChoiceView
}

// ChoiceView is one encounter option.
type ChoiceView struct {
	Text      string
	Requires  string
	Available bool
}

// Snapshot returns a deep copy of the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Mode:         g.mode,
		RunID:        g.runID,
		Seed:         g.seed,
		Depth:        g.depth,
		Turns:        g.turns,
		Log:          append([]string(nil), g.log...),
		VictoryKind:  g.victoryKind,
		VictoryText:  g.victoryText,
		DeathMessage: g.deathMessage,
	}
	if g.player != nil {
		s.Player = g.player.Clone()
	}
	if g.level == nil {
		return s
	}

	s.Width = g.level.Width
	s.Height = g.level.Height
	s.Tiles = g.level.Clone()
	s.Fog = g.fog.Clone()
	if g.level.Stairs != nil {
		stairs := *g.level.Stairs
		s.Stairs = &stairs
	}
	if g.biome != nil {
		s.Biome = Biome{
			Name:        g.biome.Name,
			Description: g.biome.Description,
			FloorGlyph:  g.biome.FloorGlyph,
			WallGlyph:   g.biome.WallGlyph,
		}
	}

	for _, e := range g.enemies {
		if e.IsAlive() {
			s.Enemies = append(s.Enemies, *e.Clone())
		}
	}
	s.Items = append([]entity.GroundItem(nil), g.items...)
	for _, enc := range g.encounters {
		if !enc.Triggered {
			s.Encounters = append(s.Encounters, enc)
		}
	}

	if c := g.combat; c != nil {
		s.Combat = &CombatView{
			Enemy:     *c.Enemy.Clone(),
			Defending: c.Defending,
			Round:     c.Round,
			Log:       append([]string(nil), c.Log...),
		}
	}
	if enc := g.encounter; enc != nil {
		view := &EncounterView{ID: enc.ID, Title: enc.Def.Title, Text: enc.Def.Text}
		for _, ch := range enc.Def.Choices {
			view.Choices = append(view.Choices, ChoiceView{
				Text:      ch.Text,
				Requires:  ch.Requires,
				Available: g.CanChoose(ch),
			})
		}
		s.Encounter = view
	}
	return s
}
