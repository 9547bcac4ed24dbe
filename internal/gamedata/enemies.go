package gamedata

// EnemyDef is one enemy template from enemies.json. Biomes list the
// templates that may spawn on their depths.
type EnemyDef struct {
	ID          string   `json:"id"`          // key referenced by biome pools and start_combat
	Name        string   `json:"name"`        // shown in combat and the log
	Glyph       string   `json:"glyph"`       // map glyph
	Color       string   `json:"color"`       // "#RRGGBB"
	HP          int      `json:"hp"`          // spawn and maximum HP
	Attack      int      `json:"attack"`      // before variance
	Defense     int      `json:"defense"`     // subtracted from incoming attack
	Description string   `json:"description"` // logged when combat starts
	XP          int      `json:"xp"`          // Experience granted on defeat
	Loot        []string `json:"loot"`        // Item IDs dropped on defeat, in order
	Boss        bool     `json:"boss"`        // Defeating a boss ends the run
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EnemyDef) GlyphRune() rune {
	for _, r := range e.Glyph {
		return r
	}
	return '?'
}

// EnemiesFile is the top level of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// LoadEnemies decodes the enemy templates.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
