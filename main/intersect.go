package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phil-mansfield/planegeom/geom"
	"github.com/phil-mansfield/planegeom/io"
)

func newIntersectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "intersect CONFIG",
		Short: "Intersect the three [Intersect] planes of a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := io.ReadConfig(args[0])
			if err != nil { return err }
			p1, p2, p3, err := c.IntersectPlanes()
			if err != nil { return err }

			out := cmd.OutOrStdout()
			pt, err := p1.Intersect(p2, p3)
			if errors.Is(err, geom.ErrNoUniqueIntersection) {
				fmt.Fprintf(out, "%s planes %v do not meet at a single point\n",
					errorColor.Sprint("No intersection:"), c.Intersect.Plane)
				return err
			} else if err != nil {
				return err
			}

			fmt.Fprintf(out, "%s %s\n", labelColor.Sprint("Intersection"), vecString(pt))
			return nil
		},
	}
}
