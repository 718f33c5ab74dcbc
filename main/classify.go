package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phil-mansfield/planegeom/geom"
	"github.com/phil-mansfield/planegeom/io"
	"github.com/phil-mansfield/planegeom/monitoring"
	"github.com/phil-mansfield/planegeom/render"
)

func newClassifyCmd() *cobra.Command {
	var (
		warn                bool
		pngFile, pyplotFile string
		projName            string
	)

	cmd := &cobra.Command{
		Use:   "classify CONFIG",
		Short: "Classify the [Classify] points of a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := render.ParseProjection(projName)
			if err != nil { return err }

			c, err := io.ReadConfig(args[0])
			if err != nil { return err }
			p, err := c.ClassifyPlane()
			if err != nil { return err }
			vs, err := c.Classify.Points()
			if err != nil { return err }

			var hook geom.NearPlaneFunc
			if warn { hook = monitoring.NearPlaneLogger }
			sides := geom.ClassifyAll(p, vs, hook)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s: %s\n",
				labelColor.Sprint("Plane"), c.Classify.Plane, p)
			for i, v := range vs {
				fmt.Fprintf(out, "%s %s distance %g\n",
					badge(sides[i]), vecString(v), p.Distance(v))
			}

			if pngFile != "" {
				if err := render.SavePNG(pngFile, p, vs, sides, proj); err != nil {
					return err
				}
			}
			if pyplotFile != "" {
				if err := render.Pyplot(pyplotFile, p, vs, sides, proj); err != nil {
					return err
				}
				render.Execute()
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&warn, "warn", true,
		"Warn about points which are barely in front of the plane.")
	cmd.Flags().StringVar(&pngFile, "png", "",
		"Write a scatter plot of the classified points to this file.")
	cmd.Flags().StringVar(&pyplotFile, "pyplot", "",
		"Render a scatter plot of the classified points with matplotlib.")
	cmd.Flags().StringVar(&projName, "projection", "xy",
		"Coordinates shown in plots: 'xy', 'xz', or 'yz'.")
	return cmd
}
