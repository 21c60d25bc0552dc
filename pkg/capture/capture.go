// Package capture writes framebuffer screenshots as numbered PPM files.
package capture

import (
	"fmt"
	"path/filepath"

	"github.com/ansipixels/orrery/pkg/render"
	"github.com/spf13/afero"
)

// DefaultPrefix is the file name prefix used when none is configured.
const DefaultPrefix = "orrery-ss"

// Capturer names and writes screenshots: <dir>/<prefix><counter>.ppm.
// The counter starts at 0 and increments after every successful capture.
type Capturer struct {
	Fs     afero.Fs
	Dir    string
	Prefix string

	counter int
}

// New creates a capturer writing through fs. An empty prefix uses
// DefaultPrefix; an empty dir writes to the working directory.
func New(fs afero.Fs, dir, prefix string) *Capturer {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Capturer{Fs: fs, Dir: dir, Prefix: prefix}
}

// NewOS creates a capturer writing to the real filesystem.
func NewOS(dir, prefix string) *Capturer {
	return New(afero.NewOsFs(), dir, prefix)
}

// Count returns the number of captures written so far.
func (c *Capturer) Count() int {
	return c.counter
}

// Next returns the path the next capture will be written to.
func (c *Capturer) Next() string {
	return filepath.Join(c.Dir, fmt.Sprintf("%s%d.ppm", c.Prefix, c.counter))
}

// Capture writes the framebuffer as a P3 PPM and returns the file path.
func (c *Capturer) Capture(fb *render.Framebuffer) (string, error) {
	if c.Dir != "" {
		if err := c.Fs.MkdirAll(c.Dir, 0o755); err != nil {
			return "", fmt.Errorf("create capture dir: %w", err)
		}
	}
	path := c.Next()
	f, err := c.Fs.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := fb.WritePPM(f); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	c.counter++
	return path, nil
}
