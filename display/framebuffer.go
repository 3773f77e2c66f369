package display

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Matrix font cell the layout coordinates assume
const (
	matrixGlyphWidth  = glyphWidth
	matrixGlyphHeight = 8
)

// Framebuffer rasterizes frames into an RGBA image and writes it as a PNG on
// every Present. The file is replaced atomically so a viewer never sees a
// partial frame.
//
// The image is the matrix scaled from its 5x8 font cell to the 7x13 cell of
// basicfont, so a 64x32 matrix becomes a 90x52 image. Layout coordinates are
// scaled the same way and rows keep their spacing.
type Framebuffer struct {
	mu   sync.Mutex
	path string
	face *basicfont.Face
	back *image.RGBA
}

// NewFramebuffer creates a sink that writes to path
func NewFramebuffer(path string) *Framebuffer {
	return &Framebuffer{path: path, face: basicfont.Face7x13}
}

func (f *Framebuffer) Configure(opts Options) error {
	if opts.Rows <= 0 || opts.Cols <= 0 {
		return fmt.Errorf("invalid matrix size %dx%d", opts.Rows, opts.Cols)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	w := ceilDiv(opts.Cols*f.face.Advance, matrixGlyphWidth)
	h := ceilDiv(opts.Rows*f.face.Height, matrixGlyphHeight)
	f.back = image.NewRGBA(image.Rect(0, 0, w, h))
	return nil
}

// scale maps a matrix coordinate onto the image
func (f *Framebuffer) scale(x, y int) fixed.Point26_6 {
	return fixed.P(x*f.face.Advance/matrixGlyphWidth, y*f.face.Height/matrixGlyphHeight)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func (f *Framebuffer) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.back == nil {
		return
	}
	draw.Draw(f.back, f.back.Bounds(), image.Black, image.Point{}, draw.Src)
}

func (f *Framebuffer) DrawText(x, y int, c color.RGBA, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.back == nil {
		return
	}
	d := &font.Drawer{
		Dst:  f.back,
		Src:  image.NewUniform(c),
		Face: f.face,
		Dot:  f.scale(x, y),
	}
	d.DrawString(text)
}

func (f *Framebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.back == nil {
		return fmt.Errorf("framebuffer not configured")
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".frame-*.png")
	if err != nil {
		return fmt.Errorf("failed to create frame file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := png.Encode(tmp, f.back); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to encode frame: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to publish frame: %w", err)
	}
	return nil
}

// Frame returns a copy of the offscreen image
func (f *Framebuffer) Frame() *image.RGBA {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.back == nil {
		return nil
	}
	out := image.NewRGBA(f.back.Bounds())
	copy(out.Pix, f.back.Pix)
	return out
}
