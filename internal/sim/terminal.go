// Package sim runs the counter against a terminal instead of hardware: the
// matrix and indicator are drawn with ANSI escapes and the A and B keys act
// as the two buttons.
package sim

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/fkcurrie/digit-matrix-golang/internal/display"
	"github.com/fkcurrie/digit-matrix-golang/internal/input"
)

const (
	cellOn  = "\x1b[97m██\x1b[0m"
	cellDim = "\x1b[90m··\x1b[0m"
	ledOn   = "\x1b[91m●\x1b[0m"
	ledOff  = "\x1b[90m○\x1b[0m"

	home       = "\x1b[H"
	clearBelow = "\x1b[J"

	ctrlC = 0x03
)

// Terminal is a pixel sink and indicator pin that draws to a writer.
// The render loop and the blink timer both write to it, so drawing is
// serialized.
type Terminal struct {
	mu        sync.Mutex
	out       io.Writer
	pending   []display.PixelColor
	frame     display.Frame
	indicator bool
	frames    int
}

// NewTerminal creates a terminal display writing to out
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{
		out:     out,
		pending: make([]display.PixelColor, 0, display.NumPixels),
	}
}

// Put collects one pixel word. The screen is redrawn when a full frame has
// arrived.
func (t *Terminal) Put(c display.PixelColor) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.pending = append(t.pending, c)
	if len(t.pending) < display.NumPixels {
		return nil
	}
	copy(t.frame[:], t.pending)
	t.pending = t.pending[:0]
	t.frames++
	return t.draw()
}

// SetValue sets the simulated indicator LED
func (t *Terminal) SetValue(value int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.indicator = value != 0
	return t.draw()
}

// Frame returns the last complete frame
func (t *Terminal) Frame() display.Frame {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frame
}

// Frames returns how many complete frames have been drawn
func (t *Terminal) Frames() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frames
}

func (t *Terminal) draw() error {
	var sb strings.Builder
	sb.WriteString(home)
	for y := 0; y < display.Rows; y++ {
		sb.WriteString("  ")
		for x := 0; x < display.Columns; x++ {
			if t.frame.At(x, y) != 0 {
				sb.WriteString(cellOn)
			} else {
				sb.WriteString(cellDim)
			}
		}
		sb.WriteString("\r\n")
	}
	led := ledOff
	if t.indicator {
		led = ledOn
	}
	fmt.Fprintf(&sb, "\r\n  %s  [a] up  [b] down  [q] quit\r\n%s", led, clearBelow)

	if _, err := io.WriteString(t.out, sb.String()); err != nil {
		return fmt.Errorf("failed to draw: %w", err)
	}
	return nil
}

// ReadKeys reads key presses from in and reports A and B as button edges.
// It returns nil on q, Ctrl-C or end of input.
func ReadKeys(in io.Reader, edge func(input.Button)) error {
	r := bufio.NewReader(in)
	for {
		key, err := r.ReadByte()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read key: %w", err)
		}

		switch key {
		case 'a', 'A':
			edge(input.ButtonA)
		case 'b', 'B':
			edge(input.ButtonB)
		case 'q', 'Q', ctrlC:
			return nil
		}
	}
}

// RawMode puts f into raw mode if it is a terminal and returns the function
// that restores it.
func RawMode(f *os.File) (func(), error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return func() {}, nil
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	return func() { term.Restore(fd, state) }, nil
}
