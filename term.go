package main

import (
	"bytes"
	"fmt"
	"io"
	"unicode"

	"github.com/chip8vm/chip8/chip8"
	"github.com/pkg/term"
)

// ANSI control sequences used by the terminal frontend.
const (
	cursorHome  = "\x1b[H"
	clearScreen = "\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// bytes read from a raw mode terminal that quit the emulator
const (
	keyCtrlC  = 0x03
	keyEscape = 0x1b
)

// terminals report presses but never releases, so a press holds the key
// down for this many frames.
const keyHoldFrames = 6

/// TermKeyMap maps typed characters to CHIP-8 keys, using the same layout
/// as KeyMap.
///
var TermKeyMap = map[rune]uint{
	'x': 0x0,
	'1': 0x1,
	'2': 0x2,
	'3': 0x3,
	'q': 0x4,
	'w': 0x5,
	'e': 0x6,
	'a': 0x7,
	's': 0x8,
	'd': 0x9,
	'z': 0xA,
	'c': 0xB,
	'4': 0xC,
	'r': 0xD,
	'f': 0xE,
	'v': 0xF,
}

/// termFrontend renders the CHIP-8 display with half-block characters in
/// a raw mode terminal.
///
type termFrontend struct {
	tty *term.Term
	out io.Writer

	// bytes typed, fed by readInput
	input chan byte

	// frames each key has left before it is released
	held [16]int

	buf bytes.Buffer
}

/// newTermFrontend puts the controlling terminal in raw mode.
///
func newTermFrontend() (*termFrontend, error) {
	tty, err := term.Open("/dev/tty", term.RawMode)
	if err != nil {
		return nil, fmt.Errorf("opening terminal: %w", err)
	}

	fe := &termFrontend{
		tty:   tty,
		out:   tty,
		input: make(chan byte, 64),
	}

	go fe.readInput()

	if _, err := io.WriteString(fe.out, hideCursor+clearScreen); err != nil {
		fe.Close()
		return nil, err
	}

	return fe, nil
}

// readInput forwards typed bytes until the terminal is closed.
func (fe *termFrontend) readInput() {
	defer close(fe.input)

	b := make([]byte, 16)
	for {
		n, err := fe.tty.Read(b)
		if err != nil {
			return
		}

		for _, c := range b[:n] {
			select {
			case fe.input <- c:
			default:
			}
		}
	}
}

/// ProcessEvents releases expired keys and presses newly typed ones.
///
func (fe *termFrontend) ProcessEvents(vm *chip8.CHIP_8) bool {
	for key := range fe.held {
		if fe.held[key] == 0 {
			continue
		}

		fe.held[key]--
		if fe.held[key] == 0 {
			vm.ReleaseKey(uint(key))
		}
	}

	for {
		select {
		case c, ok := <-fe.input:
			if !ok || c == keyCtrlC || c == keyEscape {
				return false
			}

			if key, ok := TermKeyMap[unicode.ToLower(rune(c))]; ok {
				vm.PressKey(key)
				fe.held[key] = keyHoldFrames
			}
		default:
			return true
		}
	}
}

/// Render the video memory, two pixel rows per line of text.
///
func (fe *termFrontend) Render(vm *chip8.CHIP_8) error {
	fe.buf.Reset()
	fe.buf.WriteString(cursorHome)

	for y := 0; y < chip8.Height; y += 2 {
		for x := 0; x < chip8.Width; x++ {
			top := vm.Pixel(x, y)
			bottom := vm.Pixel(x, y+1)

			switch {
			case top && bottom:
				fe.buf.WriteRune('█')
			case top:
				fe.buf.WriteRune('▀')
			case bottom:
				fe.buf.WriteRune('▄')
			default:
				fe.buf.WriteByte(' ')
			}
		}

		// raw mode doesn't translate newlines
		fe.buf.WriteString("\r\n")
	}

	_, err := fe.out.Write(fe.buf.Bytes())
	return err
}

/// Close restores the terminal.
///
func (fe *termFrontend) Close() {
	io.WriteString(fe.out, showCursor+"\r\n")

	fe.tty.Restore()
	fe.tty.Close()
}
