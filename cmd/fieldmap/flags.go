package main

import (
	"github.com/spf13/cobra"

	"github.com/archaeoscan/fieldmap/internal/geo"
	"github.com/archaeoscan/fieldmap/internal/session"
)

// viewFlags are the map overrides shared by render, pick and tui.
type viewFlags struct {
	width  int
	height int
	zoom   int
	center string
	filter string
	noGrid bool
}

func (o *viewFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.width, "width", 0, "surface width in pixels (default from config)")
	cmd.Flags().IntVar(&o.height, "height", 0, "surface height in pixels (default from config)")
	cmd.Flags().IntVarP(&o.zoom, "zoom", "z", 0, "zoom level 1-20 (default from config)")
	cmd.Flags().StringVar(&o.center, "center", "", `map centre as "lat,lng"`)
	cmd.Flags().StringVarP(&o.filter, "filter", "f", "", "object type filter: all, artifact, structure, anomaly, organic")
	cmd.Flags().BoolVar(&o.noGrid, "no-grid", false, "hide the grid overlay")
}

// apply sets the centre and filter on a loaded session.
func (o viewFlags) apply(sess *session.Session) error {
	if o.center != "" {
		c, err := geo.CoordinateFromString(o.center)
		if err != nil {
			return err
		}
		sess.Controller().SetCenter(c)
	}
	if o.filter != "" {
		if err := sess.SetFilter(o.filter); err != nil {
			return err
		}
	}
	return nil
}
