package main

import (
	"fmt"
	"time"

	"fortio.org/log"
	"fortio.org/terminal/ansipixels"
	"fortio.org/terminal/ansipixels/tcolor"
	"github.com/ansipixels/orrery/pkg/capture"
	"github.com/ansipixels/orrery/pkg/config"
	"github.com/ansipixels/orrery/pkg/render"
	"github.com/ansipixels/orrery/pkg/scene"
)

// terminalMouseScale converts a drag of one cell into camera mouse units.
const terminalMouseScale = 20.0

// HUD renders an overlay with the day, frame rate and last capture.
type HUD struct {
	visible     bool
	fps         float64
	fpsFrames   int
	fpsTime     time.Time
	lastCapture string
	sc          *scene.Scene
}

// NewHUD creates a new HUD.
func NewHUD(sc *scene.Scene) *HUD {
	return &HUD{visible: true, fpsTime: time.Now(), sc: sc}
}

// UpdateFPS updates the FPS counter (call once per frame).
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

func (h *HUD) dayLine() string {
	s := fmt.Sprintf("day %.2f", h.sc.Clock.Day)
	if h.sc.Paused {
		s += " (paused)"
	}
	return s
}

// Draw renders the HUD overlay to the terminal using ansipixels.
func (h *HUD) Draw(ap *ansipixels.AnsiPixels) {
	if !h.visible {
		return
	}
	ap.WriteAt(0, 0, tcolor.Green.Foreground()+"%.0f FPS "+tcolor.Reset, h.fps)
	ap.WriteCentered(0, "%s", h.dayLine())
	ap.WriteRight(0, tcolor.Cyan.Foreground()+"fov %.0f°"+tcolor.Reset, h.sc.Camera.Zoom)

	if h.lastCapture != "" {
		ap.WriteAt(0, ap.H-1, "%ssaved %s%s", tcolor.BrightYellow.Foreground(), h.lastCapture, tcolor.Reset)
	}
	ap.WriteRight(ap.H-1, "%sP: capture  Space: pause  ?: HUD%s", tcolor.Yellow.Foreground(), tcolor.Reset)
}

func runTerminal(cfg *config.Config) error {
	// Initialize ansipixels for terminal rendering
	ap := ansipixels.NewAnsiPixels(float64(cfg.FPS))
	if err := ap.Open(); err != nil {
		return fmt.Errorf("open ansipixels: %w", err)
	}
	defer func() {
		ap.ShowCursor()
		ap.MouseTrackingOff()
		ap.Out.Flush()
		ap.Restore()
	}()
	ap.MouseTrackingOn()
	ap.HideCursor()

	if ap.W <= 0 || ap.H <= 0 {
		return fmt.Errorf("invalid terminal size: %dx%d", ap.W, ap.H)
	}

	// Using 2x height for half-block characters
	sc, err := newScene(cfg, float64(ap.W)/float64(ap.H*2))
	if err != nil {
		return err
	}
	rasterizer := sc.NewRasterizer(ap.W, ap.H*2)
	capturer := capture.NewOS(cfg.CaptureDir, cfg.Prefix)
	hud := NewHUD(sc)

	lastMouseX, lastMouseY := 0, 0
	ap.OnMouse = func() {
		switch {
		case ap.MouseWheelUp():
			sc.Camera.ProcessMouseScroll(1)
		case ap.MouseWheelDown():
			sc.Camera.ProcessMouseScroll(-1)
		case ap.LeftClick():
		case ap.LeftDrag():
			dx := ap.Mx - lastMouseX
			dy := lastMouseY - ap.My // reversed: terminal rows grow downward
			sc.Camera.ProcessMouseMovement(float64(dx)*terminalMouseScale, float64(dy)*terminalMouseScale, true)
		}
		lastMouseX, lastMouseY = ap.Mx, ap.My
	}
	// Update framebuffer and camera aspect ratio on terminal resize
	ap.OnResize = func() error {
		rasterizer.FB.Resize(ap.W, ap.H*2)
		sc.Camera.SetAspectRatio(float64(rasterizer.FB.Width) / float64(rasterizer.FB.Height))
		return nil
	}

	lastFrame := time.Now()
	err = ap.FPSTicks(func() bool {
		now := time.Now()
		dt := min(now.Sub(lastFrame).Seconds(), 0.1)
		lastFrame = now

		for _, action := range scene.KeyActions(ap.Data) {
			switch action {
			case scene.ActionQuit:
				return false
			case scene.ActionCapture:
				hud.lastCapture = captureFrame(capturer, rasterizer.FB)
			case scene.ActionToggleHUD:
				hud.visible = !hud.visible
			default:
				sc.Apply(action)
			}
		}

		sc.Camera.Update(dt)
		sc.Advance()
		sc.Draw(rasterizer)

		ap.ClearScreen()
		if err := ap.ShowScaledImage(rasterizer.FB.ToImage()); err != nil {
			log.Errf("show image: %v", err)
			return false
		}
		hud.UpdateFPS()
		hud.Draw(ap)
		return true
	})
	if err != nil {
		return fmt.Errorf("main loop: %w", err)
	}
	return nil
}

// captureFrame writes a capture and logs the outcome. It returns the path
// written, or "" on failure; failures do not stop the frame loop.
func captureFrame(c *capture.Capturer, fb *render.Framebuffer) string {
	path, err := c.Capture(fb)
	if err != nil {
		log.Errf("capture: %v", err)
		return ""
	}
	log.S(log.Info, "Capture window", log.Str("file", path), log.Any("count", c.Count()))
	return path
}
