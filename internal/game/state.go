// Package game implements the rules engine: run lifecycle, movement,
// combat, encounters and inventory. It owns the game state and exposes it
// only through intents and read-only snapshots.
package game

// Mode represents the current game mode.
type Mode int

const (
	// ModeTitle is shown before a run starts.
	ModeTitle Mode = iota
	// ModePlaying is free movement on the current level.
	ModePlaying
	// ModeCombat is a fight against a single enemy.
	ModeCombat
	// ModeEncounter is waiting for an encounter choice.
	ModeEncounter
	// ModeDead ends the run in defeat.
	ModeDead
	// ModeVictory ends the run at the Green Chapel.
	ModeVictory
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeTitle:
		return "title"
	case ModePlaying:
		return "playing"
	case ModeCombat:
		return "combat"
	case ModeEncounter:
		return "encounter"
	case ModeDead:
		return "dead"
	case ModeVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Terminal reports whether the run is over.
func (m Mode) Terminal() bool {
	return m == ModeDead || m == ModeVictory
}
