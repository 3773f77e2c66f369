package display

import (
	"fmt"
	"image/color"
	"io"
	"sort"
	"strings"
	"sync"
)

// glyphWidth approximates the 5x8 font so the frame is as wide as the matrix
const glyphWidth = 5

// Terminal writes each presented frame as a boxed block of text
type Terminal struct {
	mu    sync.Mutex
	w     io.Writer
	width int
	ops   []textOp
}

type textOp struct {
	x, y int
	text string
}

// NewTerminal creates a sink writing to w
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w, width: 64 / glyphWidth}
}

func (t *Terminal) Configure(opts Options) error {
	if opts.Rows <= 0 || opts.Cols <= 0 {
		return fmt.Errorf("invalid matrix size %dx%d", opts.Rows, opts.Cols)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.width = opts.Cols / glyphWidth
	return nil
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ops = t.ops[:0]
}

// DrawText ignores color; rows are ordered by baseline when presented
func (t *Terminal) DrawText(x, y int, _ color.RGBA, text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ops = append(t.ops, textOp{x: x, y: y, text: text})
}

func (t *Terminal) Present() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	ops := make([]textOp, len(t.ops))
	copy(ops, t.ops)
	sort.SliceStable(ops, func(i, j int) bool { return ops[i].y < ops[j].y })

	// the matrix clips long lines; the terminal widens the box instead
	width := t.width
	for _, op := range ops {
		if len(op.text) > width {
			width = len(op.text)
		}
	}

	var b strings.Builder
	border := "+" + strings.Repeat("-", width) + "+\n"
	b.WriteString(border)
	for _, op := range ops {
		fmt.Fprintf(&b, "|%-*s|\n", width, op.text)
	}
	b.WriteString(border)

	_, err := io.WriteString(t.w, b.String())
	return err
}
