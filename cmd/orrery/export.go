package main

import (
	"fmt"

	"fortio.org/log"
	"github.com/ansipixels/orrery/pkg/export"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var day float64
	cmd := &cobra.Command{
		Use:   "export <file.glb>",
		Short: "Export the scene at a given day as a binary glTF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			sc, err := newScene(cfg, 4.0/3.0)
			if err != nil {
				return err
			}
			frame := sc.Seek(day)
			if err := export.SaveGLB(args[0], frame, sc.Mesh); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			log.Infof("Exported day %.3f to %s", day, args[0])
			return nil
		},
	}
	cmd.Flags().Float64Var(&day, "day", 0, "Simulated day to export")
	return cmd
}
