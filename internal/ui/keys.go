package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/greenchapel/internal/game"
)

// CommandKind identifies what a key press asks for.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdQuit
	CmdStart
	CmdRestart
	CmdMove
	CmdWait
	CmdCombat
	CmdChoose
	CmdUseItem
	CmdToggleInventory
	CmdInventoryPage
)

// Command is a decoded key press. For CmdUseItem Index is the slot on the
// visible inventory page; for CmdInventoryPage it is the page step.
type Command struct {
	Kind   CommandKind
	Dir    game.Direction
	Action game.CombatAction
	Index  int
}

// MapKey decodes a key press for the given mode. inventory reports whether
// the inventory pane is open, which turns the digit keys into item slots.
func MapKey(mode game.Mode, inventory bool, ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return Command{Kind: CmdQuit}
	case tcell.KeyEscape:
		if inventory {
			return Command{Kind: CmdToggleInventory}
		}
		return Command{Kind: CmdQuit}
	case tcell.KeyEnter:
		switch {
		case mode == game.ModeTitle:
			return Command{Kind: CmdStart}
		case mode.Terminal():
			return Command{Kind: CmdRestart}
		}
		return Command{}
	case tcell.KeyUp:
		return moveIn(mode, game.North)
	case tcell.KeyDown:
		return moveIn(mode, game.South)
	case tcell.KeyLeft:
		return moveIn(mode, game.West)
	case tcell.KeyRight:
		return moveIn(mode, game.East)
	case tcell.KeyPgUp:
		return turnPage(inventory, -1)
	case tcell.KeyPgDn:
		return turnPage(inventory, 1)
	case tcell.KeyRune:
	default:
		return Command{}
	}

	r := ev.Rune()
	if r == 'q' || r == 'Q' {
		return Command{Kind: CmdQuit}
	}
	if r >= '1' && r <= '9' {
		index := int(r - '1')
		switch {
		case inventory && (mode == game.ModePlaying || mode == game.ModeCombat):
			return Command{Kind: CmdUseItem, Index: index}
		case mode == game.ModeEncounter:
			return Command{Kind: CmdChoose, Index: index}
		}
		return Command{}
	}
	switch r {
	case '[', '<':
		return turnPage(inventory, -1)
	case ']', '>':
		return turnPage(inventory, 1)
	}

	switch mode {
	case game.ModeDead, game.ModeVictory:
		if r == 'r' || r == 'R' {
			return Command{Kind: CmdRestart}
		}

	case game.ModeCombat:
		switch r {
		case 'a', 'A':
			return Command{Kind: CmdCombat, Action: game.ActionAttack}
		case 'd', 'D':
			return Command{Kind: CmdCombat, Action: game.ActionDefend}
		case 'f', 'F':
			return Command{Kind: CmdCombat, Action: game.ActionFlee}
		case 'i', 'I', 'u', 'U':
			return Command{Kind: CmdToggleInventory}
		}

	case game.ModePlaying:
		switch r {
		case 'w', 'W', 'k':
			return moveIn(mode, game.North)
		case 's', 'S', 'j':
			return moveIn(mode, game.South)
		case 'a', 'A', 'h':
			return moveIn(mode, game.West)
		case 'd', 'D', 'l':
			return moveIn(mode, game.East)
		case ' ', '.':
			return Command{Kind: CmdWait}
		case 'i', 'I', 'u', 'U':
			return Command{Kind: CmdToggleInventory}
		}
	}
	return Command{}
}

func moveIn(mode game.Mode, dir game.Direction) Command {
	if mode != game.ModePlaying {
		return Command{}
	}
	return Command{Kind: CmdMove, Dir: dir}
}

func turnPage(inventory bool, step int) Command {
	if !inventory {
		return Command{}
	}
	return Command{Kind: CmdInventoryPage, Index: step}
}
