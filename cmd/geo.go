package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bulgogipedas/isUMREnough/internal/geo"
)

var geoCmd = &cobra.Command{
	Use:   "geo",
	Short: "Province geometry normalization",
	Long:  "Normalize province map geometry (GeoJSON or shapefile) so features join against canonical province ids.",
}

// loadBridge returns the slug bridge, merging the configured override
// file when present.
func loadBridge() geo.Bridge {
	if cfg.Geo.BridgePath == "" {
		return geo.DefaultBridge()
	}
	bridge, err := geo.LoadBridge(cfg.Geo.BridgePath)
	if err != nil {
		zap.L().Warn("loading bridge file failed, using defaults",
			zap.String("path", cfg.Geo.BridgePath),
			zap.Error(err),
		)
		return geo.DefaultBridge()
	}
	return bridge
}

func init() { rootCmd.AddCommand(geoCmd) }
