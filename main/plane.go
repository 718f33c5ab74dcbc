package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/phil-mansfield/planegeom/geom"
	"github.com/phil-mansfield/planegeom/io"
)

func newPlaneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plane AX AY AZ BX BY BZ CX CY CZ",
		Short: "Print the normal and offset of the plane through three points",
		Args:  cobra.ExactArgs(9),
		RunE: func(cmd *cobra.Command, args []string) error {
			var xs [9]float64
			for i, arg := range args {
				x, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("Argument %d, '%s', is not a number.", i+1, arg)
				}
				xs[i] = x
			}

			a := r3.Vec{X: xs[0], Y: xs[1], Z: xs[2]}
			b := r3.Vec{X: xs[3], Y: xs[4], Z: xs[5]}
			c := r3.Vec{X: xs[6], Y: xs[7], Z: xs[8]}

			out := cmd.OutOrStdout()
			p, err := geom.New(a, b, c)
			if errors.Is(err, geom.ErrCollinearPoints) {
				fmt.Fprintf(out, "%s the points lie on one line, move one of them\n",
					errorColor.Sprint("No plane:"))
				return err
			} else if err != nil {
				return err
			}

			fmt.Fprintf(out, "%s %s\n", labelColor.Sprint("Normal"), vecString(p.Normal()))
			fmt.Fprintf(out, "%s %g\n", labelColor.Sprint("Offset"), p.Offset())
			return nil
		},
	}
}

func newExampleConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example-config",
		Short: "Print a documented example configuration file",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), io.ExampleConfigFile)
		},
	}
}
