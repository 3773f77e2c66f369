package display

import "image/color"

// Options configures the matrix once at startup
type Options struct {
	Rows            int
	Cols            int
	HardwareMapping string
	GPIOSlowdown    int
}

// Sink is a double-buffered pixel target. Draw calls go to an offscreen
// frame; Present swaps it onto the display.
type Sink interface {
	Configure(opts Options) error
	Clear()
	DrawText(x, y int, c color.RGBA, text string)
	Present() error
}
