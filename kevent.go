package main

// Input processing. Key events carry the keycodes of the device keyboard;
// terminal backends translate their own events into these codes. The event
// loop feeds one event at a time through the editor and hands the resulting
// redraw directive to the renderer.

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// KeyState tells presses from releases.
type KeyState int

const (
	KeyPress KeyState = iota
	KeyRelease
)

// Keycode is a key as reported by the keyboard. Printable ASCII codes stand
// for themselves.
type Keycode byte

const (
	KeyBackspace Keycode = 0x08
	KeyTab       Keycode = 0x09
	KeyEnter     Keycode = 0x0A

	// Cursor movement
	KeyArrowLeft  Keycode = 0xB4
	KeyArrowUp    Keycode = 0xB5
	KeyArrowDown  Keycode = 0xB6
	KeyArrowRight Keycode = 0xB7
	KeyHome       Keycode = 0xD2
	KeyEnd        Keycode = 0xD5

	KeyDelete Keycode = 0xD4
	KeyInsert Keycode = 0xD1
	KeyBreak  Keycode = 0xD0
	KeyEsc    Keycode = 0xB1

	KeyF1  Keycode = 0x81
	KeyF2  Keycode = 0x82
	KeyF3  Keycode = 0x83
	KeyF4  Keycode = 0x84
	KeyF5  Keycode = 0x85
	KeyF6  Keycode = 0x86
	KeyF7  Keycode = 0x87
	KeyF8  Keycode = 0x88
	KeyF9  Keycode = 0x89
	KeyF10 Keycode = 0x90
)

var keyNames = map[Keycode]string{
	KeyBackspace:  "bs",
	KeyTab:        "tab",
	KeyEnter:      "enter",
	KeyArrowLeft:  "left",
	KeyArrowUp:    "up",
	KeyArrowDown:  "down",
	KeyArrowRight: "right",
	KeyHome:       "home",
	KeyEnd:        "end",
	KeyDelete:     "del",
	KeyInsert:     "ins",
	KeyBreak:      "break",
	KeyEsc:        "esc",
	KeyF1:         "f1",
	KeyF2:         "f2",
	KeyF3:         "f3",
	KeyF4:         "f4",
	KeyF5:         "f5",
	KeyF6:         "f6",
	KeyF7:         "f7",
	KeyF8:         "f8",
	KeyF9:         "f9",
	KeyF10:        "f10",
}

func (k Keycode) String() string {
	if name, ok := keyNames[k]; ok {
		return "<" + name + ">"
	}
	if k.Printable() {
		return fmt.Sprintf("%q", rune(k))
	}
	return fmt.Sprintf("0x%02X", byte(k))
}

// Printable reports whether k is literal insertable text.
func (k Keycode) Printable() bool {
	return k >= 0x20 && k <= 0x7e
}

// KeyEvent is one press or release of a key.
type KeyEvent struct {
	State KeyState
	Code  Keycode
}

// Press returns a press event for k.
func Press(k Keycode) KeyEvent {
	return KeyEvent{State: KeyPress, Code: k}
}

// InputSource produces key events one at a time. NextEvent blocks until an
// event is available and returns io.EOF once the source is exhausted.
type InputSource interface {
	NextEvent() (KeyEvent, error)
}

// scriptedInput replays a fixed list of events.
type scriptedInput struct {
	events []KeyEvent
	pos    int
}

func newScriptedInput(events []KeyEvent) *scriptedInput {
	return &scriptedInput{events: events}
}

func (s *scriptedInput) NextEvent() (KeyEvent, error) {
	if s.pos >= len(s.events) {
		return KeyEvent{}, io.EOF
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, nil
}

// ParseKeys turns a key script into press events. Printable ASCII stands for
// itself, a newline is Enter and named keys are written in angle brackets,
// e.g. "ab<left><bs>". "<lt>" is a literal '<'.
func ParseKeys(script string) ([]KeyEvent, error) {
	byName := make(map[string]Keycode, len(keyNames)+1)
	for k, name := range keyNames {
		byName[name] = k
	}
	byName["lt"] = '<'

	var events []KeyEvent
	for i := 0; i < len(script); i++ {
		c := script[i]
		switch {
		case c == '<':
			end := strings.IndexByte(script[i:], '>')
			if end < 0 {
				return nil, fmt.Errorf("unterminated key name at offset %d", i)
			}
			name := strings.ToLower(script[i+1 : i+end])
			k, ok := byName[name]
			if !ok {
				return nil, fmt.Errorf("unknown key <%s> at offset %d", name, i)
			}
			events = append(events, Press(k))
			i += end
		case c == '\n':
			events = append(events, Press(KeyEnter))
		case Keycode(c).Printable():
			events = append(events, Press(Keycode(c)))
		default:
			return nil, fmt.Errorf("unsupported byte 0x%02X at offset %d", c, i)
		}
	}
	return events, nil
}

// HandleKey applies one key event to the editor. Releases and keys the core
// does not know are ignored.
func (e *Editor) HandleKey(ev KeyEvent) Redraw {
	if ev.State != KeyPress {
		return RedrawNone
	}

	var redraw Redraw
	if ev.Code.Printable() {
		redraw = e.InsertChar(byte(ev.Code))
	} else {
		switch ev.Code {
		case KeyArrowUp:
			redraw = e.MoveUp()
		case KeyArrowDown:
			redraw = e.MoveDown()
		case KeyArrowLeft:
			redraw = e.MoveLeft()
		case KeyArrowRight:
			redraw = e.MoveRight()
		case KeyHome:
			redraw = e.MoveHome()
		case KeyEnd:
			redraw = e.MoveEnd()
		case KeyDelete:
			redraw = e.Delete()
		case KeyBackspace:
			redraw = e.Backspace()
		case KeyEnter:
			redraw = e.Enter()
		default:
			return RedrawNone
		}
	}

	if e.devMode {
		if err := e.checkInvariants(); err != nil {
			panic(fmt.Sprintf("editor: state broken after %s: %v", ev.Code, err))
		}
		row, col := e.Position()
		e.addLog("Key", fmt.Sprintf("%s -> %d,%d redraw=%s", ev.Code, row, col, redraw))
	}
	return redraw
}

// Run is the central loop: it pulls events from in until the source is
// exhausted or Break is pressed, and repaints through r after each event.
func (e *Editor) Run(in InputSource, r *Renderer) error {
	if err := r.Draw(e, RedrawFull); err != nil {
		return err
	}

	for {
		ev, err := in.NextEvent()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		redraw := RedrawNone
		switch {
		case ev.State == KeyPress && ev.Code == KeyBreak:
			e.addLog("Editor", "Break pressed, leaving")
			return nil
		case ev.State == KeyPress && ev.Code == KeyF1:
			e.toggleDebugWindow()
			redraw = RedrawFull
		case ev.State == KeyPress && ev.Code == KeyF5:
			redraw = RedrawFull
		default:
			redraw = e.HandleKey(ev)
		}

		if err := r.Draw(e, redraw); err != nil {
			return err
		}
	}
}
