package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"fortio.org/log"
	"github.com/ansipixels/orrery/pkg/kinematics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"
)

func newEphemerisCmd() *cobra.Command {
	var from, to, step float64
	cmd := &cobra.Command{
		Use:   "ephemeris",
		Short: "Print body angles and positions over a range of days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if step <= 0 {
				return fmt.Errorf("invalid step %v: must be positive", step)
			}
			if to < from {
				return fmt.Errorf("invalid range: --to %v is before --from %v", to, from)
			}
			sys := kinematics.SolarSystem()
			for i := range sys.Bodies {
				log.LogVf("Body %v", &sys.Bodies[i])
			}
			printEphemeris(cmd.OutOrStdout(), sys, from, to, step)
			return nil
		},
	}
	cmd.Flags().Float64Var(&from, "from", 0, "First day")
	cmd.Flags().Float64Var(&to, "to", 28, "Last day")
	cmd.Flags().Float64Var(&step, "step", 7, "Days between rows")
	return cmd
}

// printEphemeris writes one row per body per day in [from, to].
func printEphemeris(w io.Writer, sys *kinematics.System, from, to, step float64) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "day\tbody\torbit°\tspin°\tx\ty\tz\t")
	for i := 0; ; i++ {
		day := from + float64(i)*step
		if day > to {
			break
		}
		frame := sys.Evaluate(day)
		for _, st := range frame.States {
			fmt.Fprintf(tw, "%.2f\t%s\t%.1f\t%.1f\t%.3f\t%.3f\t%.3f\t\n",
				day, st.Body.Name,
				wrapDegrees(st.OrbitalRotation), wrapDegrees(st.SelfRotation),
				st.Position.X(), st.Position.Y(), st.Position.Z())
		}
	}
	tw.Flush()
}

// wrapDegrees converts radians to degrees in [0, 360).
func wrapDegrees(rad float64) float64 {
	d := math.Mod(mgl64.RadToDeg(rad), 360)
	if d < 0 {
		d += 360
	}
	return d
}
