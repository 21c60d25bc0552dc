package main

import (
	"errors"
	"fmt"

	"fortio.org/log"
	"github.com/ansipixels/orrery/pkg/capture"
	"github.com/ansipixels/orrery/pkg/config"
	"github.com/ansipixels/orrery/pkg/render"
	"github.com/ansipixels/orrery/pkg/scene"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"
)

func newWindowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Show the orrery in a desktop window",
		Long: `Show the orrery in a desktop window.

The cursor is captured: move the mouse to look around, scroll to zoom,
W/A/S/D to move, P to capture, Space to pause, R to reset, Esc to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runWindow(cfg)
		},
	}
	sizeFlags(cmd)
	return cmd
}

var moveKeys = map[ebiten.Key]render.Movement{
	ebiten.KeyW: render.Forward,
	ebiten.KeyS: render.Backward,
	ebiten.KeyA: render.Left,
	ebiten.KeyD: render.Right,
}

// windowGame implements ebiten.Game around the software rasterizer.
type windowGame struct {
	sc         *scene.Scene
	rasterizer *render.Rasterizer
	capturer   *capture.Capturer
	dt         float64
	pix        []byte

	lastX, lastY int
	firstMouse   bool
}

func (g *windowGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for key, m := range moveKeys {
		if ebiten.IsKeyPressed(key) {
			g.sc.Camera.ProcessKeyboard(m, g.dt)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		captureFrame(g.capturer, g.rasterizer.FB)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sc.Apply(scene.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sc.Apply(scene.ActionReset)
	}

	x, y := ebiten.CursorPosition()
	if g.firstMouse {
		g.lastX, g.lastY = x, y
		g.firstMouse = false
	}
	// reversed since window y-coordinates go from top to bottom
	g.sc.Camera.ProcessMouseMovement(float64(x-g.lastX), float64(g.lastY-y), true)
	g.lastX, g.lastY = x, y
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.sc.Camera.ProcessMouseScroll(wy)
	}

	g.sc.Advance()
	g.sc.Draw(g.rasterizer)
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	g.rasterizer.FB.CopyRGBA(g.pix)
	screen.WritePixels(g.pix)
}

func (g *windowGame) Layout(_, _ int) (int, int) {
	return g.rasterizer.FB.Width, g.rasterizer.FB.Height
}

func runWindow(cfg *config.Config) error {
	sc, err := newScene(cfg, float64(cfg.Width)/float64(cfg.Height))
	if err != nil {
		return err
	}
	r := sc.NewRasterizer(cfg.Width, cfg.Height)
	g := &windowGame{
		sc:         sc,
		rasterizer: r,
		capturer:   capture.NewOS(cfg.CaptureDir, cfg.Prefix),
		dt:         1 / float64(cfg.FPS),
		pix:        make([]byte, cfg.Width*cfg.Height*4),
		firstMouse: true,
	}

	ebiten.SetWindowTitle("orrery")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	ebiten.SetTPS(cfg.FPS)

	log.Infof("Opening %dx%d window at %d FPS", cfg.Width, cfg.Height, cfg.FPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
