package gamedata

import (
	"errors"
	"fmt"
)

// Content is the full set of loaded definitions before validation.
type Content struct {
	Biomes     []BiomeDef
	Enemies    []EnemyDef
	Items      []ItemDef
	Encounters []EncounterDef
	Text       TextFile
}

// LoadContent reads every embedded data file.
func LoadContent() (Content, error) {
	var c Content
	var err error
	if c.Biomes, err = LoadBiomes(); err != nil {
		return c, err
	}
	if c.Enemies, err = LoadEnemies(); err != nil {
		return c, err
	}
	if c.Items, err = LoadItems(); err != nil {
		return c, err
	}
	if c.Encounters, err = LoadEncounters(); err != nil {
		return c, err
	}
	if c.Text, err = LoadText(); err != nil {
		return c, err
	}
	return c, nil
}

// Registry holds validated content tables and provides lookups. It is
// read-only after construction and safe to share between runs.
type Registry struct {
	biomes      []BiomeDef
	enemies     map[string]*EnemyDef
	items       map[string]*ItemDef
	groundItems []string
	encounters  map[string]*EncounterDef
	text        TextFile
}

// NewRegistry indexes content and checks that every cross reference
// resolves: biome pools, loot tables, choice effects, and requirements.
func NewRegistry(c Content) (*Registry, error) {
	if len(c.Biomes) == 0 {
		return nil, errors.New("no biomes loaded from biomes.json")
	}
	if len(c.Enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	if len(c.Text.DeathMessages) == 0 {
		return nil, errors.New("no death messages loaded from text.json")
	}

	r := &Registry{
		biomes:     c.Biomes,
		enemies:    make(map[string]*EnemyDef, len(c.Enemies)),
		items:      make(map[string]*ItemDef, len(c.Items)),
		encounters: make(map[string]*EncounterDef, len(c.Encounters)),
		text:       c.Text,
	}
	for i := range c.Enemies {
		if _, dup := r.enemies[c.Enemies[i].ID]; dup {
			return nil, fmt.Errorf("duplicate enemy id %q", c.Enemies[i].ID)
		}
		r.enemies[c.Enemies[i].ID] = &c.Enemies[i]
	}
	for i := range c.Items {
		if _, dup := r.items[c.Items[i].ID]; dup {
			return nil, fmt.Errorf("duplicate item id %q", c.Items[i].ID)
		}
		r.items[c.Items[i].ID] = &c.Items[i]
		switch c.Items[i].Type {
		case ItemConsumable, ItemWeapon, ItemArmor:
			r.groundItems = append(r.groundItems, c.Items[i].ID)
		}
	}
	for i := range c.Encounters {
		if _, dup := r.encounters[c.Encounters[i].ID]; dup {
			return nil, fmt.Errorf("duplicate encounter id %q", c.Encounters[i].ID)
		}
		r.encounters[c.Encounters[i].ID] = &c.Encounters[i]
	}

	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Registry) validate() error {
	for _, b := range r.biomes {
		if b.Depth[0] > b.Depth[1] {
			return fmt.Errorf("biome %s: depth range %v is inverted", b.ID, b.Depth)
		}
		for _, id := range b.Enemies {
			if r.enemies[id] == nil {
				return fmt.Errorf("biome %s: unknown enemy %q", b.ID, id)
			}
		}
		for _, id := range b.Encounters {
			if r.encounters[id] == nil {
				return fmt.Errorf("biome %s: unknown encounter %q", b.ID, id)
			}
		}
	}
	for id, e := range r.enemies {
		for _, loot := range e.Loot {
			if r.items[loot] == nil {
				return fmt.Errorf("enemy %s: unknown loot item %q", id, loot)
			}
		}
	}
	for id, enc := range r.encounters {
		if len(enc.Choices) == 0 {
			return fmt.Errorf("encounter %s: no choices", id)
		}
		for i, ch := range enc.Choices {
			if ch.Requires != "" && r.items[ch.Requires] == nil {
				return fmt.Errorf("encounter %s choice %d: unknown required item %q", id, i, ch.Requires)
			}
			if err := r.checkEffect(ch.Effect); err != nil {
				return fmt.Errorf("encounter %s choice %d: %w", id, i, err)
			}
			if ch.Reward != nil {
				if err := r.checkEffect(ch.Reward); err != nil {
					return fmt.Errorf("encounter %s choice %d reward: %w", id, i, err)
				}
			}
		}
	}
	return nil
}

func (r *Registry) checkEffect(e Effect) error {
	switch e := e.(type) {
	case GrantItem:
		if r.items[e.ItemID] == nil {
			return fmt.Errorf("unknown item %q", e.ItemID)
		}
	case StartCombat:
		if r.enemies[e.EnemyID] == nil {
			return fmt.Errorf("unknown enemy %q", e.EnemyID)
		}
	case FinalTest:
		if _, ok := r.text.VictoryMessages[e.Test]; !ok {
			return fmt.Errorf("final test %q has no victory message", e.Test)
		}
	case Random:
		if err := r.checkEffect(e.Good); err != nil {
			return err
		}
		return r.checkEffect(e.Bad)
	}
	return nil
}

// LoadRegistry loads and validates the embedded content.
func LoadRegistry() (*Registry, error) {
	c, err := LoadContent()
	if err != nil {
		return nil, err
	}
	return NewRegistry(c)
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// BiomeFor returns the first biome whose depth range covers depth, or the
// first biome when none does.
func (r *Registry) BiomeFor(depth int) *BiomeDef {
	for i := range r.biomes {
		if r.biomes[i].Covers(depth) {
			return &r.biomes[i]
		}
	}
	return &r.biomes[0]
}

// Enemy returns the enemy definition with the given ID, or nil if not found.
func (r *Registry) Enemy(id string) *EnemyDef {
	return r.enemies[id]
}

// Item returns the item definition with the given ID, or nil if not found.
func (r *Registry) Item(id string) *ItemDef {
	return r.items[id]
}

// Encounter returns the encounter definition with the given ID, or nil if not found.
func (r *Registry) Encounter(id string) *EncounterDef {
	return r.encounters[id]
}

// GroundItemIDs returns the IDs of items that may lie on the floor
// (consumables, weapons, armor) in file order. Ground spawns index into this
// list, so the order is part of seed reproducibility.
func (r *Registry) GroundItemIDs() []string {
	return append([]string(nil), r.groundItems...)
}

// ResultText returns the prose for an encounter result key.
func (r *Registry) ResultText(key string) string {
	return r.text.Results[key]
}

// DeathMessages returns the death message pool.
func (r *Registry) DeathMessages() []string {
	return r.text.DeathMessages
}

// VictoryMessage returns the ending text for a victory kind.
func (r *Registry) VictoryMessage(kind string) string {
	return r.text.VictoryMessages[kind]
}

// Biomes returns all biome definitions in file order.
func (r *Registry) Biomes() []BiomeDef {
	return r.biomes
}

// EnemyCount returns the number of enemy types in the registry.
func (r *Registry) EnemyCount() int {
	return len(r.enemies)
}

// ItemCount returns the number of item types in the registry.
func (r *Registry) ItemCount() int {
	return len(r.items)
}

// EncounterCount returns the number of encounters in the registry.
func (r *Registry) EncounterCount() int {
	return len(r.encounters)
}
