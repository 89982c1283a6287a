package main

// Provides a way to view the screen geometry derived from the configured
// pixel sizes.

import (
	"fmt"
	"io"
	"strings"
)

// PrintInfo prints a summary table of the display settings.
func PrintInfo(w io.Writer, c Configuration) {
	g := c.Geometry()

	// Table header.
	fmt.Fprintf(w, "%-15s %-20s\n", "Setting", "Value")
	fmt.Fprintln(w, strings.Repeat("-", 40))

	rows := []struct {
		name  string
		value string
	}{
		{"Screen", fmt.Sprintf("%dx%d px", g.ScreenWidth, g.ScreenHeight)},
		{"Glyph", fmt.Sprintf("%dx%d px", g.CharWidth, g.CharHeight)},
		{"Line distance", fmt.Sprintf("%d px", g.LineDist)},
		{"Text area", fmt.Sprintf("%d cols x %d rows", g.Cols(), g.Rows())},
		{"Colors", fmt.Sprintf("%s on %s", c.Foreground, c.Background)},
		{"Backend", c.Backend},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%-15s %-20s\n", r.name, r.value)
	}
}
