package main

import (
	"fmt"

	"fortio.org/log"
	"github.com/ansipixels/orrery/pkg/capture"
	"github.com/ansipixels/orrery/pkg/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newSnapshotCmd() *cobra.Command {
	var day float64
	var frames int
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render frames without a display and save them as PPM",
		Long: `Render one or more consecutive frames starting at --day and write each
as <capture-dir>/<prefix><n>.ppm, numbered from 0.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			paths, err := snapshot(afero.NewOsFs(), cfg, day, frames)
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return err
		},
	}
	cmd.Flags().Float64Var(&day, "day", 0, "Simulated day of the first frame")
	cmd.Flags().IntVar(&frames, "frames", 1, "Number of consecutive frames to capture")
	sizeFlags(cmd)
	return cmd
}

func snapshot(fs afero.Fs, cfg *config.Config, day float64, frames int) ([]string, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("invalid frame count %d", frames)
	}
	sc, err := newScene(cfg, float64(cfg.Width)/float64(cfg.Height))
	if err != nil {
		return nil, err
	}
	r := sc.NewRasterizer(cfg.Width, cfg.Height)
	capturer := capture.New(fs, cfg.CaptureDir, cfg.Prefix)

	sc.Seek(day)
	paths := make([]string, 0, frames)
	for i := range frames {
		if i > 0 {
			sc.Advance()
		}
		sc.Draw(r)
		path, err := capturer.Capture(r.FB)
		if err != nil {
			return paths, err
		}
		log.LogVf("Captured day %.3f to %s", sc.Clock.Day, path)
		paths = append(paths, path)
	}
	log.Infof("Wrote %d capture(s) of %dx%d", len(paths), cfg.Width, cfg.Height)
	return paths, nil
}
