package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	a := &app{}
	var configDir string

	root := &cobra.Command{
		Use:   appName,
		Short: "Survey map for archaeological field scans",
		Long: `fieldmap plots detected finds on a projected survey map.

It renders the map to PNG, answers hit-tests, exports the catalog as GeoJSON
or KML, seeds a SQLite catalog and runs an interactive terminal map.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(configDir)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return a.shutdown(ctx)
		},
	}
	root.PersistentFlags().StringVarP(&configDir, "config", "c", ".", "directory holding fieldmap.json")

	root.AddCommand(
		newRenderCmd(a),
		newPickCmd(a),
		newExportCmd(a),
		newSeedCmd(a),
		newTUICmd(a),
	)
	return root
}
