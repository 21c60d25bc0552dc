// orrery - sun, earth and moon as spinning cubes.
//
// Controls:
//
//	W/A/S/D     - Move camera
//	Mouse       - Look around (drag in the terminal)
//	Scroll      - Zoom in/out
//	P           - Save the current frame as <prefix><n>.ppm
//	Space       - Pause/resume time
//	R           - Reset day and camera
//	?           - Toggle HUD overlay (terminal)
//	+/-         - Adjust zoom (terminal)
//	Esc         - Quit
package main

import (
	"context"
	"fmt"
	"os"

	"fortio.org/log"
	"github.com/ansipixels/orrery/pkg/capture"
	"github.com/ansipixels/orrery/pkg/config"
	"github.com/ansipixels/orrery/pkg/kinematics"
	"github.com/ansipixels/orrery/pkg/render"
	"github.com/ansipixels/orrery/pkg/scene"
	"github.com/charmbracelet/fang"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func main() {
	if err := fang.Execute(context.Background(), newRootCmd()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orrery",
		Short: "Sun, earth and moon orrery in your terminal",
		Long: `orrery - sun, earth and moon as spinning cubes

The earth orbits the sun every 365 days and spins daily with a 23.4 degree
tilt; the moon circles the earth every 28 days. Time advances one step per
frame (an hour by default).

Controls:
  W/S/A/D     - Move camera
  Mouse drag  - Look around
  Scroll      - Zoom in/out
  P           - Capture frame to PPM
  Space       - Pause/resume
  R           - Reset
  ?           - Toggle HUD
  Esc         - Quit`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if err := log.SetLogLevelStr(cfg.LogLevel); err != nil {
				return fmt.Errorf("log level: %w", err)
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, configKey{}, cfg))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runTerminal(cfg)
		},
	}

	pf := cmd.PersistentFlags()
	pf.Int("fps", 60, "Target FPS")
	pf.Float64("day-step", kinematics.DefaultStep, "Simulated days per frame")
	pf.Float64("start-day", 0, "Simulated day to start at")
	pf.String("prefix", capture.DefaultPrefix, "File name prefix for captures")
	pf.String("capture-dir", "", "Directory captures are written to")
	pf.String("log-level", "info", "Log level (debug, verbose, info, warning, error)")
	pf.String("mesh", "", "OBJ file drawn for every body instead of the cube")

	cmd.AddCommand(newWindowCmd(), newSnapshotCmd(), newEphemerisCmd(), newExportCmd())
	return cmd
}

type configKey struct{}

// loadConfig returns the configuration resolved by the root pre-run, or
// resolves it from the command's flags when the pre-run did not run.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if ctx := cmd.Context(); ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
			return cfg, nil
		}
	}
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func newScene(cfg *config.Config, aspect float64) (*scene.Scene, error) {
	sc := scene.New(scene.Options{
		StartDay: cfg.StartDay,
		DayStep:  cfg.DayStep,
		FPS:      cfg.FPS,
		Aspect:   aspect,
	})
	if cfg.Mesh != "" {
		mesh, err := render.LoadOBJFile(afero.NewOsFs(), cfg.Mesh)
		if err != nil {
			return nil, err
		}
		log.Infof("Loaded %s: %d triangles", cfg.Mesh, mesh.TriangleCount())
		sc.Mesh = mesh
	}
	return sc, nil
}

// sizeFlags adds --width/--height to commands that own their framebuffer.
func sizeFlags(cmd *cobra.Command) {
	cmd.Flags().Int("width", 1024, "Framebuffer width in pixels")
	cmd.Flags().Int("height", 768, "Framebuffer height in pixels")
}
