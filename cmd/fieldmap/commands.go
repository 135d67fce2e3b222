package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/archaeoscan/fieldmap/internal/catalog"
	"github.com/archaeoscan/fieldmap/internal/config"
	"github.com/archaeoscan/fieldmap/internal/export"
	"github.com/archaeoscan/fieldmap/internal/render"
	"github.com/archaeoscan/fieldmap/internal/session"
	"github.com/archaeoscan/fieldmap/internal/tui"
)

func newRenderCmd(a *app) *cobra.Command {
	var vf viewFlags
	var out string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the survey map to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sess, closeFn, err := a.openSession(ctx, vf)
			if err != nil {
				return err
			}
			defer closeFn()

			w, h := sess.Size()
			canvas := render.NewRaster(w, h)
			stats := sess.Draw(ctx, canvas)
			if err := canvas.SavePNG(out); err != nil {
				return err
			}
			a.log.Info("Rendered map", "path", out, "drawn", stats.Drawn, "culled", stats.Culled)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d drawn, %d off-surface)\n", out, stats.Drawn, stats.Culled)
			return nil
		},
	}
	vf.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "fieldmap.png", "output PNG path")
	return cmd
}

func newPickCmd(a *app) *cobra.Command {
	var vf viewFlags

	cmd := &cobra.Command{
		Use:   "pick X Y",
		Short: "Hit-test a click at surface pixel X,Y",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid x %q: %w", args[0], err)
			}
			y, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid y %q: %w", args[1], err)
			}

			ctx := cmd.Context()
			sess, closeFn, err := a.openSession(ctx, vf)
			if err != nil {
				return err
			}
			defer closeFn()

			if _, ok := sess.Click(ctx, x, y); !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "no object at %g,%g\n", x, y)
				return nil
			}
			d, _ := sess.Detail()
			printDetail(cmd.OutOrStdout(), d)
			return nil
		},
	}
	vf.register(cmd)
	return cmd
}

func printDetail(w io.Writer, d session.Detail) {
	fmt.Fprintf(w, "%s\n", d.Name)
	if d.Description != "" {
		fmt.Fprintf(w, "%s\n", d.Description)
	}
	for _, f := range d.Fields() {
		fmt.Fprintf(w, "  %-11s %s\n", f[0], f[1])
	}
}

func newExportCmd(a *app) *cobra.Command {
	var (
		format string
		srid   int
		out    string
		filter string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog as GeoJSON or KML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ec := config.GetExportConfig()
			if !cmd.Flags().Changed("format") {
				format = ec.Format
			}
			if !cmd.Flags().Changed("srid") {
				srid = ec.SRID
			}

			ctx := cmd.Context()
			sess, closeFn, err := a.openSession(ctx, viewFlags{filter: filter})
			if err != nil {
				return err
			}
			defer closeFn()

			// nothing is created until encoding succeeds
			var buf bytes.Buffer
			if err := export.Write(&buf, format, sess.Visible(), export.Options{SRID: srid}); err != nil {
				return err
			}
			if err := writeOutput(cmd.OutOrStdout(), out, buf.Bytes()); err != nil {
				return err
			}
			a.log.Info("Exported catalog", "format", format, "srid", srid, "objects", len(sess.Visible()), "path", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", export.FormatGeoJSON, "geojson or kml")
	cmd.Flags().IntVar(&srid, "srid", 4326, "GeoJSON coordinate system: 4326 or 3857")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "object type filter")
	return cmd
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

func newSeedCmd(a *app) *cobra.Command {
	var (
		dbPath string
		from   string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load survey objects into a SQLite catalog",
		Long: `seed writes the reference survey objects, or the objects of a JSON
catalog given with --from, into a SQLite catalog. Existing IDs are updated.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if dbPath == "" {
				dbPath = config.GetCatalogConfig().Path
			}
			if dbPath == "" {
				dbPath = appName + ".db"
			}

			var src catalog.Source = catalog.FixtureSource()
			if from != "" {
				src = catalog.JSONFile{Path: from}
			}
			objects, err := src.Objects(ctx)
			if err != nil {
				return err
			}

			store, err := catalog.OpenStore(dbPath, a.storeLog)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Seed(ctx, objects); err != nil {
				return err
			}
			n, err := store.Count(ctx)
			if err != nil {
				return err
			}
			a.log.Info("Seeded catalog", "path", dbPath, "seeded", len(objects), "total", n)
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d objects into %s (%d total)\n", len(objects), dbPath, n)
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite file (default catalog.path or fieldmap.db)")
	cmd.Flags().StringVar(&from, "from", "", "JSON catalog to import instead of the reference set")
	return cmd
}

func newTUICmd(a *app) *cobra.Command {
	var vf viewFlags

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive terminal map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sess, closeFn, err := a.openSession(ctx, vf)
			if err != nil {
				return err
			}
			defer closeFn()
			return tui.Run(ctx, sess, a.log)
		},
	}
	vf.register(cmd)
	return cmd
}
