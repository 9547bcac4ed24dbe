package game

import (
	"go.uber.org/zap"

	"github.com/samdwyer/greenchapel/internal/rng"
)

// Rule constants.
const (
	// RevealRadius is the base sight radius, before charm bonuses.
	RevealRadius = 4
	// LogCap bounds the message log.
	LogCap = 50
	// CombatLogCap bounds the per-fight log.
	CombatLogCap = 8
	// FleeChance is the probability a flee attempt succeeds.
	FleeChance = 0.5
	// StairsRevealRadius is how much fog lifts around the stairs when they
	// are revealed by an effect.
	StairsRevealRadius = 2

	startingItemID = "bread_loaf"
	startingItems  = 2
)

// Option configures a Game.
type Option func(*Game)

// WithSeed fixes the seed of the first run. A seed of 0 means a random seed
// will be generated.
func WithSeed(seed uint32) Option {
	return func(g *Game) {
		g.initialSeed = seed
	}
}

// WithAmbient replaces the non-reproducible stream used for combat variance,
// flee rolls, loot picks and effect coin flips.
func WithAmbient(src rng.Stream) Option {
	return func(g *Game) {
		g.ambient = src
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}
