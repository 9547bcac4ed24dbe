package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/greenchapel/internal/game"
	"github.com/samdwyer/greenchapel/internal/telemetry"
)

// App drives one engine from a terminal.
type App struct {
	screen    *Screen
	renderer  *Renderer
	game      *game.Game
	logger    *zap.Logger
	inventory bool
	page      int
	running   bool
}

// NewApp binds an engine to a screen.
func NewApp(screen *Screen, g *game.Game, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		screen:   screen,
		renderer: NewRenderer(screen),
		game:     g,
		logger:   logger,
		running:  true,
	}
}

// Run executes the main loop until the player quits or ctx is done. The
// screen is closed on return.
func (a *App) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("ui")
	ctx, span := tracer.Start(ctx, "ui.session")
	defer span.End()
	defer a.screen.Close()

	for a.running {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.renderer.Render(a.game.Snapshot(), a.inventory, a.page)
		a.handleInput(ctx)
	}

	span.SetAttributes(
		attribute.String("final.mode", a.game.Mode().String()),
		attribute.String("run.id", a.game.RunID()),
	)
	return nil
}

// handleInput processes a single input event.
func (a *App) handleInput(ctx context.Context) {
	switch ev := a.screen.PollEvent().(type) {
	case *tcell.EventKey:
		a.Dispatch(ctx, MapKey(a.game.Mode(), a.inventory, ev))
	case *tcell.EventResize:
		a.screen.Sync()
	case nil:
		// The screen was finalized underneath us.
		a.running = false
	}
}

// Dispatch applies one decoded command to the engine.
func (a *App) Dispatch(ctx context.Context, cmd Command) {
	switch cmd.Kind {
	case CmdQuit:
		a.running = false
	case CmdStart:
		a.game.Start(ctx)
	case CmdRestart:
		a.game.Restart(ctx, 0)
	case CmdMove:
		a.game.Move(ctx, cmd.Dir)
	case CmdWait:
		a.game.Wait(ctx)
	case CmdCombat:
		a.game.CombatAction(ctx, cmd.Action)
	case CmdChoose:
		a.game.ChooseEncounter(ctx, cmd.Index)
	case CmdUseItem:
		a.game.UseItem(ctx, a.page*itemsPerPage+cmd.Index)
	case CmdToggleInventory:
		a.inventory = !a.inventory
	case CmdInventoryPage:
		a.page += cmd.Index
	default:
		return
	}

	// The pane only makes sense while items can be used.
	if m := a.game.Mode(); m != game.ModePlaying && m != game.ModeCombat {
		a.inventory = false
	}
	if a.inventory {
		a.page = min(max(a.page, 0), pageCount(a.inventorySize())-1)
	} else {
		a.page = 0
	}
	a.logger.Debug("command", zap.Int("kind", int(cmd.Kind)), zap.String("mode", a.game.Mode().String()))
}

func (a *App) inventorySize() int {
	if p := a.game.Snapshot().Player; p != nil {
		return len(p.Inventory)
	}
	return 0
}

// Running reports whether the loop will keep going.
func (a *App) Running() bool {
	return a.running
}
