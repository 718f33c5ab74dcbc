package main

import (
	"github.com/spf13/cobra"

	"github.com/phil-mansfield/planegeom/monitoring"
)

func newRootCmd() *cobra.Command {
	var quiet bool

	root := &cobra.Command{
		Use:     "planes",
		Version: version,
		Short:   "Classify points against planes and intersect planes",
		Long: `planes reads gcfg configuration files describing planes built from three
points. It classifies points as lying in front of, behind, or on a plane and
computes the point where three planes meet.

Run 'planes example-config' for a documented configuration file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if quiet { monitoring.SetLogger(nil) }
		},
	}
	root.PersistentFlags().BoolVarP(
		&quiet, "quiet", "q", false, "Suppress diagnostic warnings.",
	)

	root.AddCommand(
		newClassifyCmd(),
		newIntersectCmd(),
		newPlaneCmd(),
		newExampleConfigCmd(),
	)
	return root
}
