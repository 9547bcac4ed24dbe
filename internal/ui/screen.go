// Package ui is the terminal front end: it draws engine snapshots with tcell
// and turns key presses into engine intents.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Screen owns the terminal for the life of the app. Drawing happens between
// Begin and End; anything outside the terminal bounds is dropped by tcell.
type Screen struct {
	term tcell.Screen
}

// NewScreen takes over the controlling terminal.
func NewScreen() (*Screen, error) {
	term, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return newScreen(term)
}

func newScreen(term tcell.Screen) (*Screen, error) {
	if err := term.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	term.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	term.HideCursor()
	term.Clear()
	return &Screen{term: term}, nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.term.Fini()
}

// PollEvent blocks for the next terminal event. It returns nil once the
// screen has been closed.
func (s *Screen) PollEvent() tcell.Event {
	return s.term.PollEvent()
}

// Begin starts a frame on a blank buffer.
func (s *Screen) Begin() {
	s.term.Clear()
}

// End flushes the frame to the terminal.
func (s *Screen) End() {
	s.term.Show()
}

// Fits reports whether the terminal is at least width x height cells.
func (s *Screen) Fits(width, height int) bool {
	w, h := s.term.Size()
	return w >= width && h >= height
}

// SetContent sets one cell.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.term.SetContent(x, y, r, nil, style)
}

// DrawText writes text left to right from (x, y) and returns the column
// after the last rune.
func (s *Screen) DrawText(x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		s.term.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// Sync repaints everything, e.g. after a resize.
func (s *Screen) Sync() {
	s.term.Sync()
}
