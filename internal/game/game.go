package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/greenchapel/internal/combat"
	"github.com/samdwyer/greenchapel/internal/entity"
	"github.com/samdwyer/greenchapel/internal/gamedata"
	"github.com/samdwyer/greenchapel/internal/rng"
	"github.com/samdwyer/greenchapel/internal/telemetry"
	"github.com/samdwyer/greenchapel/internal/world"
)

// Game holds the entire game state. It is not safe for concurrent use; the
// caller must finish one intent before issuing the next.
type Game struct {
	reg      *gamedata.Registry
	ambient  rng.Stream
	resolver *combat.Resolver
	logger   *zap.Logger

	initialSeed uint32

	// Per-run state, replaced wholesale by Start and Restart.
	runID      string
	seed       uint32
	mode       Mode
	depth      int
	turns      int
	level      *world.Dungeon
	fog        *world.FogMap
	biome      *gamedata.BiomeDef
	player     *entity.Player
	enemies    []*entity.Enemy
	items      []entity.GroundItem
	encounters []entity.Encounter
	combat     *CombatState
	encounter  *EncounterState
	log        []string

	victoryKind  string
	victoryText  string
	deathMessage string
}

// New creates a game in title mode.
func New(reg *gamedata.Registry, opts ...Option) *Game {
	g := &Game{
		reg:  reg,
		mode: ModeTitle,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.ambient == nil {
		g.ambient = rng.NewAmbient()
	}
	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	g.resolver = combat.NewResolver(g.ambient)
	return g
}

// Start begins the first run. Only valid from the title screen.
func (g *Game) Start(ctx context.Context) {
	if g.mode != ModeTitle {
		return
	}
	g.newRun(ctx, g.initialSeed)
}

// Restart replaces the finished run with a new one. A seed of 0 picks a
// fresh random seed. Only valid once the run is dead or victorious.
func (g *Game) Restart(ctx context.Context, seed uint32) {
	if !g.mode.Terminal() {
		return
	}
	g.newRun(ctx, seed)
}

func (g *Game) newRun(ctx context.Context, seed uint32) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.run")
	defer span.End()

	g.runID = uuid.NewString()
	g.seed = g.pickSeed(seed)
	g.depth = 1
	g.turns = 0
	g.log = nil
	g.combat = nil
	g.encounter = nil
	g.victoryKind = ""
	g.victoryText = ""
	g.deathMessage = ""
	g.player = entity.NewPlayer(g.startingInventory()...)
	g.mode = ModePlaying

	span.SetAttributes(
		attribute.String("run.id", g.runID),
		attribute.Int64("run.seed", int64(g.seed)),
	)
	g.logger.Info("run started", g.fields()...)

	g.enterLevel(ctx)
}

func (g *Game) pickSeed(seed uint32) uint32 {
	if seed != 0 {
		return seed
	}
	s, err := rng.NewSeed()
	if err != nil {
		g.logger.Warn("crypto seed unavailable, using ambient stream", zap.Error(err))
		return uint32(g.ambient.Float64() * (1 << 32))
	}
	return s
}

func (g *Game) startingInventory() []entity.Item {
	def := g.reg.Item(startingItemID)
	if def == nil {
		return nil
	}
	items := make([]entity.Item, startingItems)
	for i := range items {
		items[i] = entity.NewItem(def)
	}
	return items
}

// Mode returns the current game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Seed returns the seed of the current run.
func (g *Game) Seed() uint32 {
	return g.seed
}

// RunID returns the identifier of the current run, or "" before Start.
func (g *Game) RunID() string {
	return g.runID
}

// logf appends a player-facing message, keeping the most recent LogCap.
func (g *Game) logf(format string, args ...any) {
	g.addLog(fmt.Sprintf(format, args...))
}

func (g *Game) addLog(msg string) {
	g.log = append(g.log, msg)
	if len(g.log) > LogCap {
		g.log = append([]string(nil), g.log[len(g.log)-LogCap:]...)
	}
}

// fields returns the common diagnostic fields for the current run.
func (g *Game) fields(extra ...zap.Field) []zap.Field {
	return append([]zap.Field{
		zap.String("run_id", g.runID),
		zap.Int("depth", g.depth),
		zap.Int("turn", g.turns),
	}, extra...)
}

// die moves the run to Dead. It only ever happens once per run.
func (g *Game) die(reason string) {
	if g.mode.Terminal() {
		return
	}
	g.mode = ModeDead
	g.combat = nil
	g.encounter = nil

	messages := g.reg.DeathMessages()
	g.deathMessage = messages[rng.Intn(g.ambient, len(messages))]
	g.addLog(g.deathMessage)

	g.logger.Info("player died", g.fields(zap.String("cause", reason))...)
}

// win moves the run to Victory with the given ending.
func (g *Game) win(kind string) {
	if g.mode.Terminal() {
		return
	}
	text := g.reg.VictoryMessage(kind)
	if text == "" {
		kind = gamedata.TestCourage
		text = g.reg.VictoryMessage(kind)
	}
	g.mode = ModeVictory
	g.combat = nil
	g.encounter = nil
	g.victoryKind = kind
	g.victoryText = text

	g.logger.Info("run won", g.fields(zap.String("ending", kind))...)
}

// gainXP awards experience and logs every level gained.
func (g *Game) gainXP(amount int) {
	levels := g.player.GainXP(amount)
	g.logf("+%d XP", amount)
	for _, lvl := range levels {
		g.logf("Level %d! HP+%d, ATK+%d, DEF+%d", lvl,
			entity.LevelHPGain, entity.LevelAttackGain, entity.LevelDefenseGain)
		g.logger.Debug("level up", g.fields(zap.Int("level", lvl))...)
	}
}
