package display

import (
	"fmt"
	"image/color"

	"github.com/theoremus-urban-solutions/buspi/message"
)

// Layout positions the label and message lines. Y values are text baselines.
type Layout struct {
	Label       string
	Color       color.RGBA
	X           int
	LabelY      int
	FirstLineY  int
	LineSpacing int
}

// DefaultLayout matches a 5x8 font on a 32 row matrix
func DefaultLayout(label string, c color.RGBA) Layout {
	return Layout{
		Label:       label,
		Color:       c,
		X:           3,
		LabelY:      7,
		FirstLineY:  15,
		LineSpacing: 8,
	}
}

// Render replaces the frame with the label and at most message.MaxLines lines
func Render(s Sink, l Layout, m message.Message) error {
	s.Clear()
	s.DrawText(l.X, l.LabelY, l.Color, l.Label)
	for i, line := range m.Lines {
		if i == message.MaxLines {
			break
		}
		s.DrawText(l.X, l.FirstLineY+l.LineSpacing*i, l.Color, line)
	}
	if err := s.Present(); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	return nil
}
