package main

// Display and keyboard backends. The renderer draws into a Screen; terminal
// backends also act as the InputSource by translating their key events into
// device keycodes.

import (
	"fmt"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/nsf/termbox-go"
)

// Screen is a grid of character cells.
type Screen interface {
	Size() (width, height int)
	SetCell(x, y int, ch rune, fg, bg termbox.Attribute)
	Clear(fg, bg termbox.Attribute) error
	Flush() error
}

// Terminal is a screen with a keyboard attached.
type Terminal interface {
	Screen
	InputSource
	Close()
}

// OpenTerminal initializes the named backend ("termbox" or "tcell").
func OpenTerminal(backend string) (Terminal, error) {
	switch backend {
	case "", "termbox":
		return openTermbox()
	case "tcell":
		return openTcell()
	}
	return nil, fmt.Errorf("unknown backend %q", backend)
}

type termboxTerminal struct{}

func openTermbox() (*termboxTerminal, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("failed to init termbox: %w", err)
	}
	termbox.SetInputMode(termbox.InputEsc)
	// Use 256 color mode so palette indices from the config work as is.
	termbox.SetOutputMode(termbox.Output256)
	// The renderer draws its own cursor.
	termbox.HideCursor()
	return &termboxTerminal{}, nil
}

func (t *termboxTerminal) Size() (int, int) { return termbox.Size() }

func (t *termboxTerminal) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	termbox.SetCell(x, y, ch, fg, bg)
}

func (t *termboxTerminal) Clear(fg, bg termbox.Attribute) error { return termbox.Clear(fg, bg) }

func (t *termboxTerminal) Flush() error { return termbox.Flush() }

func (t *termboxTerminal) Close() { termbox.Close() }

func (t *termboxTerminal) NextEvent() (KeyEvent, error) {
	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventKey:
			if k, ok := termboxKeycode(ev); ok {
				return Press(k), nil
			}
		case termbox.EventResize:
			// A resize wipes the terminal; ask for a full refresh.
			return Press(KeyF5), nil
		case termbox.EventError:
			return KeyEvent{}, ev.Err
		case termbox.EventInterrupt:
			return KeyEvent{}, io.EOF
		}
	}
}

// termboxKeycode maps a termbox key event onto the device keyboard.
func termboxKeycode(ev termbox.Event) (Keycode, bool) {
	if ev.Ch != 0 {
		if ev.Ch < 0x80 && Keycode(ev.Ch).Printable() {
			return Keycode(ev.Ch), true
		}
		return 0, false
	}

	switch ev.Key {
	case termbox.KeySpace:
		return ' ', true
	case termbox.KeyArrowUp:
		return KeyArrowUp, true
	case termbox.KeyArrowDown:
		return KeyArrowDown, true
	case termbox.KeyArrowLeft:
		return KeyArrowLeft, true
	case termbox.KeyArrowRight:
		return KeyArrowRight, true
	case termbox.KeyHome:
		return KeyHome, true
	case termbox.KeyEnd:
		return KeyEnd, true
	case termbox.KeyDelete:
		return KeyDelete, true
	case termbox.KeyInsert:
		return KeyInsert, true
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return KeyBackspace, true
	case termbox.KeyEnter:
		return KeyEnter, true
	case termbox.KeyTab:
		return KeyTab, true
	case termbox.KeyEsc:
		return KeyEsc, true
	case termbox.KeyCtrlC, termbox.KeyCtrlQ:
		return KeyBreak, true
	case termbox.KeyF1:
		return KeyF1, true
	case termbox.KeyF2:
		return KeyF2, true
	case termbox.KeyF3:
		return KeyF3, true
	case termbox.KeyF4:
		return KeyF4, true
	case termbox.KeyF5:
		return KeyF5, true
	case termbox.KeyF6:
		return KeyF6, true
	case termbox.KeyF7:
		return KeyF7, true
	case termbox.KeyF8:
		return KeyF8, true
	case termbox.KeyF9:
		return KeyF9, true
	case termbox.KeyF10:
		return KeyF10, true
	}
	return 0, false
}

type tcellTerminal struct {
	screen tcell.Screen
}

func openTcell() (*tcellTerminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init tcell: %w", err)
	}
	screen.HideCursor()
	return &tcellTerminal{screen: screen}, nil
}

func (t *tcellTerminal) Size() (int, int) { return t.screen.Size() }

func (t *tcellTerminal) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	t.screen.SetContent(x, y, ch, nil, tcellStyle(fg, bg))
}

func (t *tcellTerminal) Clear(fg, bg termbox.Attribute) error {
	t.screen.SetStyle(tcellStyle(fg, bg))
	t.screen.Clear()
	return nil
}

func (t *tcellTerminal) Flush() error {
	t.screen.Show()
	return nil
}

func (t *tcellTerminal) Close() { t.screen.Fini() }

func (t *tcellTerminal) NextEvent() (KeyEvent, error) {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			// Screen finalized.
			return KeyEvent{}, io.EOF
		case *tcell.EventKey:
			if k, ok := tcellKeycode(ev); ok {
				return Press(k), nil
			}
		case *tcell.EventResize:
			t.screen.Sync()
			return Press(KeyF5), nil
		}
	}
}

// tcellStyle converts termbox 256-color attributes into a tcell style.
func tcellStyle(fg, bg termbox.Attribute) tcell.Style {
	return tcell.StyleDefault.Foreground(tcellColor(fg)).Background(tcellColor(bg))
}

// tcellColor maps a termbox Output256 color (palette index + 1, 0 meaning
// default) onto tcell.
func tcellColor(a termbox.Attribute) tcell.Color {
	a &= 0x1FF
	if a == termbox.ColorDefault {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(int(a) - 1)
}

// tcellKeycode maps a tcell key event onto the device keyboard.
func tcellKeycode(ev *tcell.EventKey) (Keycode, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		if r < 0x80 && Keycode(r).Printable() {
			return Keycode(r), true
		}
		return 0, false
	case tcell.KeyUp:
		return KeyArrowUp, true
	case tcell.KeyDown:
		return KeyArrowDown, true
	case tcell.KeyLeft:
		return KeyArrowLeft, true
	case tcell.KeyRight:
		return KeyArrowRight, true
	case tcell.KeyHome:
		return KeyHome, true
	case tcell.KeyEnd:
		return KeyEnd, true
	case tcell.KeyDelete:
		return KeyDelete, true
	case tcell.KeyInsert:
		return KeyInsert, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace, true
	case tcell.KeyEnter:
		return KeyEnter, true
	case tcell.KeyTab:
		return KeyTab, true
	case tcell.KeyEscape:
		return KeyEsc, true
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return KeyBreak, true
	case tcell.KeyF1:
		return KeyF1, true
	case tcell.KeyF2:
		return KeyF2, true
	case tcell.KeyF3:
		return KeyF3, true
	case tcell.KeyF4:
		return KeyF4, true
	case tcell.KeyF5:
		return KeyF5, true
	case tcell.KeyF6:
		return KeyF6, true
	case tcell.KeyF7:
		return KeyF7, true
	case tcell.KeyF8:
		return KeyF8, true
	case tcell.KeyF9:
		return KeyF9, true
	case tcell.KeyF10:
		return KeyF10, true
	}
	return 0, false
}

// memCell is one cell of a memScreen.
type memCell struct {
	Ch rune
	Fg termbox.Attribute
	Bg termbox.Attribute
}

// memScreen is an in-memory Screen, used headless and in tests.
type memScreen struct {
	width, height int
	cells         []memCell
	flushes       int
}

func newMemScreen(width, height int) *memScreen {
	s := &memScreen{width: width, height: height, cells: make([]memCell, width*height)}
	s.Clear(termbox.ColorDefault, termbox.ColorDefault)
	return s
}

func (s *memScreen) Size() (int, int) { return s.width, s.height }

func (s *memScreen) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.cells[y*s.width+x] = memCell{Ch: ch, Fg: fg, Bg: bg}
}

func (s *memScreen) Clear(fg, bg termbox.Attribute) error {
	for i := range s.cells {
		s.cells[i] = memCell{Ch: ' ', Fg: fg, Bg: bg}
	}
	return nil
}

func (s *memScreen) Flush() error {
	s.flushes++
	return nil
}

// Cell returns the cell at x, y.
func (s *memScreen) Cell(x, y int) memCell {
	return s.cells[y*s.width+x]
}

// Row returns the characters of screen row y from column x0 up to x1.
func (s *memScreen) Row(y, x0, x1 int) string {
	var sb strings.Builder
	for x := x0; x < x1; x++ {
		sb.WriteRune(s.Cell(x, y).Ch)
	}
	return sb.String()
}
