package main

// Global configuration of the editor. Settings are populated from
// command-line flags and an optional TOML file during initialization and stay
// fixed for the rest of the process.

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Configuration holds all adjustable settings for the editor.
type Configuration struct {
	ScreenWidth          int    // Device screen width in pixels.
	ScreenHeight         int    // Device screen height in pixels.
	CharWidth            int    // Glyph cell width in pixels.
	CharHeight           int    // Glyph cell height in pixels.
	LineDist             int    // Pixels between text rows.
	Foreground           string // Text color, name or palette index.
	Background           string // Screen color, name or palette index.
	Backend              string // Terminal backend: termbox or tcell.
	Keys                 string // Key script to replay headless instead of reading the keyboard.
	UseLogFile           bool   // Whether to write debug logs to a file.
	LogFilePath          string // Where to store the debug logs.
	NumLogsInDebugWindow int    // How many recent logs to show in the UI debug window.
	DevMode              bool   // Check editor invariants after every key and log keys.
	ShowColors           bool   // Command-line flag to show available colors and exit.
	ShowInfo             bool   // Command-line flag to show the derived geometry and exit.
	ShowVersion          bool   // Command-line flag to show version and exit.
	ConfigPath           string // Optional TOML file with the settings above.
	TextPath             string // Optional file with the initial text (read only).
}

// Config is the global configuration instance.
var Config Configuration

// fileConfig mirrors the settings that may come from a TOML file. Pointer
// fields tell "absent" from zero values.
type fileConfig struct {
	ScreenWidth  *int    `toml:"screen_width"`
	ScreenHeight *int    `toml:"screen_height"`
	CharWidth    *int    `toml:"char_width"`
	CharHeight   *int    `toml:"char_height"`
	LineDist     *int    `toml:"line_dist"`
	Foreground   *string `toml:"foreground"`
	Background   *string `toml:"background"`
	Backend      *string `toml:"backend"`
	Log          *bool   `toml:"log"`
	LogPath      *string `toml:"log_path"`
	NumLogs      *int    `toml:"num_logs"`
	Dev          *bool   `toml:"dev"`
}

// Geometry returns the display geometry described by the configuration.
func (c Configuration) Geometry() Geometry {
	return Geometry{
		ScreenWidth:  c.ScreenWidth,
		ScreenHeight: c.ScreenHeight,
		CharWidth:    c.CharWidth,
		CharHeight:   c.CharHeight,
		LineDist:     c.LineDist,
	}
}

// InitConfig parses the process arguments into the global Config.
func InitConfig() error {
	c, err := parseConfig(os.Args[1:])
	if err != nil {
		return err
	}
	Config = c
	return nil
}

// parseConfig builds a configuration from defaults, then the TOML file named
// by -config, then any explicitly given flags.
func parseConfig(args []string) (Configuration, error) {
	var c Configuration
	fs := flag.NewFlagSet("picoed", flag.ContinueOnError)

	fs.IntVar(&c.ScreenWidth, "screen-width", 320, "Screen width in pixels")
	fs.IntVar(&c.ScreenHeight, "screen-height", 320, "Screen height in pixels")
	fs.IntVar(&c.CharWidth, "char-width", 6, "Glyph width in pixels")
	fs.IntVar(&c.CharHeight, "char-height", 8, "Glyph height in pixels")
	fs.IntVar(&c.LineDist, "line-dist", 1, "Pixels between text rows")
	fs.StringVar(&c.Foreground, "fg", "green", "Text color (name or 0-255)")
	fs.StringVar(&c.Background, "bg", "black", "Background color (name or 0-255)")
	fs.StringVar(&c.Backend, "backend", "termbox", "Terminal backend (termbox, tcell)")
	fs.StringVar(&c.Keys, "keys", "", "Replay a key script headless and print the text")
	fs.BoolVar(&c.UseLogFile, "log", false, "Enable logging to file")
	fs.StringVar(&c.LogFilePath, "log-path", "/tmp/picoed-debug.log", "Path to log file")
	fs.IntVar(&c.NumLogsInDebugWindow, "num-logs", 10, "Number of logs in debug window")
	fs.BoolVar(&c.DevMode, "dev", false, "Enable development mode")
	fs.BoolVar(&c.ShowColors, "colors", false, "Show available colors")
	fs.BoolVar(&c.ShowInfo, "info", false, "Show screen geometry")
	fs.BoolVar(&c.ShowVersion, "version", false, "Show version")
	fs.StringVar(&c.ConfigPath, "config", "", "Path to a TOML config file")

	if err := fs.Parse(args); err != nil {
		return c, err
	}

	if c.ConfigPath != "" {
		set := map[string]bool{}
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if err := c.applyFile(c.ConfigPath, set); err != nil {
			return c, err
		}
	}

	switch fs.NArg() {
	case 0:
	case 1:
		c.TextPath = fs.Arg(0)
	default:
		return c, errors.New("at most one text file may be given")
	}

	if err := c.validate(); err != nil {
		return c, err
	}
	return c, nil
}

// applyFile loads path and copies every value whose flag was not set on the
// command line.
func (c *Configuration) applyFile(path string, set map[string]bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var fc fileConfig
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	setInt := func(flagName string, dst *int, v *int) {
		if v != nil && !set[flagName] {
			*dst = *v
		}
	}
	setString := func(flagName string, dst *string, v *string) {
		if v != nil && !set[flagName] {
			*dst = *v
		}
	}
	setBool := func(flagName string, dst *bool, v *bool) {
		if v != nil && !set[flagName] {
			*dst = *v
		}
	}

	setInt("screen-width", &c.ScreenWidth, fc.ScreenWidth)
	setInt("screen-height", &c.ScreenHeight, fc.ScreenHeight)
	setInt("char-width", &c.CharWidth, fc.CharWidth)
	setInt("char-height", &c.CharHeight, fc.CharHeight)
	setInt("line-dist", &c.LineDist, fc.LineDist)
	setString("fg", &c.Foreground, fc.Foreground)
	setString("bg", &c.Background, fc.Background)
	setString("backend", &c.Backend, fc.Backend)
	setBool("log", &c.UseLogFile, fc.Log)
	setString("log-path", &c.LogFilePath, fc.LogPath)
	setInt("num-logs", &c.NumLogsInDebugWindow, fc.NumLogs)
	setBool("dev", &c.DevMode, fc.Dev)
	return nil
}

func (c Configuration) validate() error {
	if err := c.Geometry().Validate(); err != nil {
		return fmt.Errorf("invalid geometry: %w", err)
	}
	if _, err := ParseColor(c.Foreground); err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	switch c.Backend {
	case "termbox", "tcell":
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.NumLogsInDebugWindow < 0 {
		return fmt.Errorf("num-logs %d must not be negative", c.NumLogsInDebugWindow)
	}
	return nil
}
