package gamedata

// BiomeDef describes the theme of one or more depths: its name, map glyphs,
// and the pools enemies and encounters are drawn from.
type BiomeDef struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Depth       [2]int   `json:"depth"` // inclusive [min, max]
	Description string   `json:"description"`
	FloorGlyph  string   `json:"floorGlyph"`
	WallGlyph   string   `json:"wallGlyph"`
	Enemies     []string `json:"enemies"`
	Encounters  []string `json:"encounters"`
}

// Covers reports whether depth falls inside the biome's range.
func (b *BiomeDef) Covers(depth int) bool {
	return depth >= b.Depth[0] && depth <= b.Depth[1]
}

// BiomesFile represents the structure of biomes.json.
type BiomesFile struct {
	Biomes []BiomeDef `json:"biomes"`
}

// LoadBiomes loads biome definitions from the embedded biomes.json file.
func LoadBiomes() ([]BiomeDef, error) {
	file, err := Load[BiomesFile]("biomes.json")
	if err != nil {
		return nil, err
	}
	return file.Biomes, nil
}
