package render

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strconv"
)

// Framebuffer is a 2D grid of pixels.
// Row 0 is the bottom of the screen, as glReadPixels returns it.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []Color
	BG     Color
}

// NewFramebuffer creates a framebuffer of the given size.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
	}
}

// Resize reallocates the framebuffer when the size changed.
func (fb *Framebuffer) Resize(width, height int) {
	if width == fb.Width && height == fb.Height {
		return
	}
	fb.Width = width
	fb.Height = height
	fb.Pixels = make([]Color, width*height)
	fb.Clear()
}

// Clear fills the framebuffer with the background color.
func (fb *Framebuffer) Clear() {
	for i := range fb.Pixels {
		fb.Pixels[i] = fb.BG
	}
}

// SetPixel sets the pixel at (x, y), y counted from the bottom.
// Out of range coordinates are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the pixel at (x, y), y counted from the bottom.
func (fb *Framebuffer) GetPixel(x, y int) Color {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return Color{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// ToImage converts the framebuffer to an upright image.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	fb.CopyRGBA(img.Pix)
	return img
}

// CopyRGBA writes the framebuffer as top-down RGBA bytes into dst, which must
// hold at least Width*Height*4 bytes.
func (fb *Framebuffer) CopyRGBA(dst []byte) {
	i := 0
	for y := fb.Height - 1; y >= 0; y-- {
		for _, c := range fb.Pixels[y*fb.Width : (y+1)*fb.Width] {
			dst[i] = c.R
			dst[i+1] = c.G
			dst[i+2] = c.B
			dst[i+3] = 255
			i += 4
		}
	}
}

// SavePNG writes the framebuffer to a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}

// WritePPM writes the framebuffer as a plain-text (P3) PPM image.
// Rows are written top of screen first, so the last stored row comes first.
func (fb *Framebuffer) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width, fb.Height)
	line := make([]byte, 0, fb.Width*12)
	for y := fb.Height - 1; y >= 0; y-- {
		line = line[:0]
		for _, c := range fb.Pixels[y*fb.Width : (y+1)*fb.Width] {
			line = strconv.AppendUint(line, uint64(c.R), 10)
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(c.G), 10)
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(c.B), 10)
			line = append(line, ' ')
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
