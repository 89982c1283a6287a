package main

// The entry point of the picoed editor. It handles command-line flags,
// initializes configuration, loads the initial text, opens the terminal
// backend and starts the main editor loop.

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

// Version of the editor, injected at build time.
var Version = "dev"

// sampleText is shown when no text file is given.
//
//go:embed sample.txt
var sampleText string

func main() {
	// Initialize configuration from flags and the optional config file.
	if err := InitConfig(); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// If -version flag is provided, print version and exit.
	if Config.ShowVersion {
		fmt.Println(Version)
		return
	}

	// Print available colors if -colors flag is provided.
	if Config.ShowColors {
		PrintColors()
		return
	}

	// Print screen geometry if -info flag is provided.
	if Config.ShowInfo {
		PrintInfo(os.Stdout, Config)
		return
	}

	// Colors were checked by InitConfig.
	fg, _ := ParseColor(Config.Foreground)
	bg, _ := ParseColor(Config.Background)
	SetTextColors(fg, bg)

	text, err := initialText(Config.TextPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", Config.TextPath, err)
		os.Exit(1)
	}

	editor := NewEditor(Config.Geometry(), Config.DevMode)
	editor.Load(text)

	// Headless run: replay the key script and print the resulting text.
	if Config.Keys != "" {
		if err := runScript(editor, Config.Keys, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	term, err := OpenTerminal(Config.Backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer term.Close()

	// Enter the main event loop.
	if err := editor.Run(term, NewRenderer(term)); err != nil {
		term.Close()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// initialText returns the content of path, or the built-in sample when path
// is empty. The file is never written back.
func initialText(path string) (string, error) {
	if path == "" {
		return sampleText, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// runScript drives the editor with a key script against an off-screen
// display and writes the final text to w.
func runScript(e *Editor, script string, w io.Writer) error {
	events, err := ParseKeys(script)
	if err != nil {
		return fmt.Errorf("parsing key script: %w", err)
	}

	screen := newMemScreen(e.view.Cols+2, e.view.Rows+3)
	if err := e.Run(newScriptedInput(events), NewRenderer(screen)); err != nil {
		return err
	}
	_, err = io.WriteString(w, e.buf.Text())
	return err
}
