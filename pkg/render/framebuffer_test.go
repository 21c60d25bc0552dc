package render

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFramebufferSavePNG(t *testing.T) {
	// Row y of the framebuffer is y pixels above the bottom edge.
	fb := NewFramebuffer(64, 32)
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			fb.SetPixel(x, y, RGB(uint8(x*4), uint8(y*8), 128))
		}
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := fb.SavePNG(path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Fatalf("decoded size = %v, want 64x32", b.Size())
	}
	for _, p := range []struct{ x, y int }{{0, 0}, {10, 5}, {63, 31}} {
		want := fb.GetPixel(p.x, p.y)
		r, g, b, _ := img.At(p.x, fb.Height-1-p.y).RGBA()
		if got := RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8)); got != want {
			t.Errorf("pixel (%d,%d) = %v, want %v", p.x, p.y, got, want)
		}
	}
}

func TestFramebufferToImage(t *testing.T) {
	fb := NewFramebuffer(50, 40)
	fb.SetPixel(10, 0, ColorRed)    // bottom row
	fb.SetPixel(30, 39, ColorGreen) // top row

	img := fb.ToImage()

	if img.Bounds().Dx() != 50 || img.Bounds().Dy() != 40 {
		t.Errorf("Image dimensions wrong: got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}

	// Image rows run top-down, framebuffer rows bottom-up
	r, g, b, a := img.At(10, 39).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("Red pixel wrong: got %d,%d,%d,%d", r>>8, g>>8, b>>8, a>>8)
	}

	r, g, b, a = img.At(30, 0).RGBA()
	if r>>8 != 0 || g>>8 != 255 || b>>8 != 0 {
		t.Errorf("Green pixel wrong: got %d,%d,%d,%d", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestFramebufferClearAndResize(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.BG = RGB(1, 2, 3)
	fb.Clear()
	for i, c := range fb.Pixels {
		if c != fb.BG {
			t.Fatalf("pixel %d = %v after Clear, want %v", i, c, fb.BG)
		}
	}
	fb.Resize(8, 2)
	if len(fb.Pixels) != 16 || fb.Width != 8 || fb.Height != 2 {
		t.Fatalf("Resize: got %dx%d with %d pixels", fb.Width, fb.Height, len(fb.Pixels))
	}
	if fb.GetPixel(7, 1) != fb.BG {
		t.Errorf("resized framebuffer not cleared to background")
	}
	// Out of range access is ignored
	fb.SetPixel(-1, 0, ColorRed)
	fb.SetPixel(8, 0, ColorRed)
	if c := fb.GetPixel(100, 100); c != (Color{}) {
		t.Errorf("GetPixel out of range = %v", c)
	}
}

func TestWritePPMHeader(t *testing.T) {
	fb := NewFramebuffer(7, 3)
	var buf bytes.Buffer
	if err := fb.WritePPM(&buf); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "P3\n7 3\n255\n") {
		t.Errorf("header = %q", buf.String()[:min(20, buf.Len())])
	}
}

func TestWritePPMRowsAndFlip(t *testing.T) {
	fb := NewFramebuffer(3, 4)
	fb.SetPixel(0, 3, RGB(10, 20, 30)) // top row of the screen
	fb.SetPixel(2, 0, RGB(40, 50, 60)) // bottom row of the screen

	var buf bytes.Buffer
	if err := fb.WritePPM(&buf); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3+fb.Height {
		t.Fatalf("got %d lines, want %d header + %d rows", len(lines), 3, fb.Height)
	}
	rows := lines[3:]
	for i, row := range rows {
		if n := len(strings.Fields(row)); n != fb.Width*3 {
			t.Errorf("row %d has %d values, want %d", i, n, fb.Width*3)
		}
	}
	if want := "10 20 30 0 0 0 0 0 0 "; rows[0] != want {
		t.Errorf("first written row = %q, want %q (last stored row)", rows[0], want)
	}
	if want := "0 0 0 0 0 0 40 50 60 "; rows[len(rows)-1] != want {
		t.Errorf("last written row = %q, want %q (first stored row)", rows[len(rows)-1], want)
	}
}

func TestWritePPMPropagatesErrors(t *testing.T) {
	fb := NewFramebuffer(64, 64)
	if err := fb.WritePPM(failingWriter{}); err == nil {
		t.Error("expected write error")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, fmt.Errorf("disk full")
}

func TestCopyRGBA(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.SetPixel(0, 1, RGB(9, 8, 7))
	dst := make([]byte, 2*2*4)
	fb.CopyRGBA(dst)
	if dst[0] != 9 || dst[1] != 8 || dst[2] != 7 || dst[3] != 255 {
		t.Errorf("first top-down pixel = %v", dst[:4])
	}
}
