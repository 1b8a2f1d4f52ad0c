package main

import (
	"github.com/spf13/cobra"

	"github.com/bulgogipedas/isUMREnough/internal/geo"
)

var (
	geoSource    string
	geoShpPath   string
	geoNameField string
)

var geoNormalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Normalize province geometry and report join coverage",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		bridge := loadBridge()

		var collection *geo.Collection
		var report geo.JoinReport

		if geoShpPath != "" {
			collection, report, err = geo.ReadShapefile(geoShpPath, geoNameField, bridge)
		} else {
			source := geoSource
			if source == "" {
				source = cfg.Geo.Source
			}
			var raw []byte
			raw, err = readGeoSource(ctx, env, source)
			if err == nil {
				collection, report, err = geo.Normalize(raw, bridge)
			}
		}
		if err != nil {
			return err
		}

		cmd.Printf("Features: %d, joined: %d, unjoined: %d\n",
			report.Total, report.Joined, len(report.Unjoined))

		for _, f := range collection.Features() {
			marker := " "
			if f.CanonicalID == "" {
				marker = "!"
			}
			cmd.Printf("%s %-30s id=%-28s canonical=%s\n",
				marker, f.NormalizedName, f.NormalizedID, f.CanonicalID)
		}

		if len(report.Unjoined) > 0 {
			cmd.Printf("\nUnjoined features (add entries to the bridge file to fix):\n")
			for _, name := range report.Unjoined {
				cmd.Printf("  %s\n", name)
			}
		}
		return nil
	},
}

func init() {
	geoNormalizeCmd.Flags().StringVar(&geoSource, "source", "", "GeoJSON URL or file (default: configured geo.source)")
	geoNormalizeCmd.Flags().StringVar(&geoShpPath, "shp", "", "read a local shapefile instead of GeoJSON")
	geoNormalizeCmd.Flags().StringVar(&geoNameField, "name-field", "PROVINSI", "shapefile attribute carrying the province name")
	geoCmd.AddCommand(geoNormalizeCmd)
}
