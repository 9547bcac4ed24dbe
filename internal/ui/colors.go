package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts a "#RRGGBB" string to a tcell color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}
	return tcell.NewRGBColor(int32(v>>16&0xFF), int32(v>>8&0xFF), int32(v&0xFF)), nil
}

// colorOr parses hex and falls back when it is malformed.
func colorOr(hex string, fallback tcell.Color) tcell.Color {
	c, err := ParseHexColor(hex)
	if err != nil {
		return fallback
	}
	return c
}

// hpColor picks green, amber or red by the fraction of HP left.
func hpColor(hp, maxHP int) tcell.Color {
	if maxHP <= 0 {
		return tcell.ColorRed
	}
	switch pct := float64(hp) / float64(maxHP); {
	case pct > 0.6:
		return tcell.NewRGBColor(0x44, 0xFF, 0x44)
	case pct > 0.3:
		return tcell.NewRGBColor(0xFF, 0xAA, 0x00)
	default:
		return tcell.NewRGBColor(0xFF, 0x44, 0x44)
	}
}
