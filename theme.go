package main

// Color palette and theme used by the editor. Maps semantic color names to
// specific terminal attributes (foreground and background). The text colors
// come from the configuration, everything around the device screen is fixed.

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nsf/termbox-go"
)

// To see available colors execute `picoed -colors`.

// Color represents a pair of foreground and background terminal attributes.
type Color struct {
	Background termbox.Attribute
	Foreground termbox.Attribute
}

// ColorName is an enum-like type for semantic color identifiers.
type ColorName int

const (
	ColorDefault     ColorName = iota // Default terminal colors.
	ColorText                         // Text on the emulated device screen.
	ColorFrame                        // Border drawn around the device screen.
	ColorTitle                        // Title in the top border.
	ColorStatusBar                    // Position line under the device screen.
	ColorDebugWindow                  // Log window under the status bar.
	ColorDebugTitle                   // Header for the log window.
)

// Theme maps each ColorName to its actual visual attributes.
var Theme = map[ColorName]Color{
	ColorDefault:     {Background: termbox.ColorDefault, Foreground: termbox.ColorDefault},
	ColorText:        {Background: termbox.ColorBlack, Foreground: termbox.ColorGreen},
	ColorFrame:       {Background: termbox.ColorDefault, Foreground: termbox.Attribute(244)},
	ColorTitle:       {Background: termbox.ColorDefault, Foreground: termbox.Attribute(254) | termbox.AttrBold},
	ColorStatusBar:   {Background: termbox.Attribute(250), Foreground: termbox.Attribute(1)},
	ColorDebugWindow: {Background: termbox.Attribute(19), Foreground: termbox.Attribute(16)},
	ColorDebugTitle:  {Background: termbox.Attribute(19), Foreground: termbox.Attribute(215)},
}

// GetThemeColor returns the foreground and background attributes for a given semantic name.
func GetThemeColor(name ColorName) (termbox.Attribute, termbox.Attribute) {
	if c, ok := Theme[name]; ok {
		return c.Foreground, c.Background
	}
	// Fallback to default if name is not found.
	return termbox.ColorDefault, termbox.ColorDefault
}

// SetTextColors installs the configured text colors.
func SetTextColors(fg, bg termbox.Attribute) {
	Theme[ColorText] = Color{Background: bg, Foreground: fg}
}

var namedColors = map[string]termbox.Attribute{
	"default": termbox.ColorDefault,
	"black":   termbox.ColorBlack,
	"red":     termbox.ColorRed,
	"green":   termbox.ColorGreen,
	"yellow":  termbox.ColorYellow,
	"blue":    termbox.ColorBlue,
	"magenta": termbox.ColorMagenta,
	"cyan":    termbox.ColorCyan,
	"white":   termbox.ColorWhite,
}

// ParseColor accepts a basic color name or a 256-color palette index.
func ParseColor(s string) (termbox.Attribute, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if a, ok := namedColors[s]; ok {
		return a, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return 0, fmt.Errorf("invalid color %q: want a color name or 0-255", s)
	}
	// In Output256 mode attribute n+1 selects palette entry n.
	return termbox.Attribute(n + 1), nil
}
