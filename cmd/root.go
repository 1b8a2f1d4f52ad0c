package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bulgogipedas/isUMREnough/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "isumrenough",
	Short: "Cost-of-living calculator against provincial UMP benchmarks",
	Long:  "Ingests BPS per-capita expenditure tables, resolves province names against the UMP reference table, and computes household surplus/deficit positions for Indonesia's 38 provinces.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
