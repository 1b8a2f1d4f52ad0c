package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bulgogipedas/isUMREnough/internal/expenditure"
	"github.com/bulgogipedas/isUMREnough/internal/geo"
	"github.com/bulgogipedas/isUMREnough/internal/model"
)

var (
	ingestXLSXPath  string
	ingestXLSXSheet string
	ingestRefresh   bool
	ingestWithGeo   bool
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest the expenditure dataset and persist a snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("ingest"); err != nil {
			return err
		}

		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		// XLSX input bypasses the session loader: it is an explicit
		// local-file operation.
		if ingestXLSXPath != "" {
			data, err := expenditure.IngestXLSX(ingestXLSXPath, expenditure.XLSXOptions{SheetName: ingestXLSXSheet})
			if err != nil {
				return err
			}
			if _, err := env.Store.SaveSnapshot(ctx, ingestXLSXPath, data); err != nil {
				return err
			}
			printIngestSummary(cmd, data)
			return nil
		}

		g, gctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			data, err := env.provinceData(gctx, ingestRefresh)
			if err != nil {
				return err
			}
			printIngestSummary(cmd, data)
			return nil
		})

		if ingestWithGeo {
			g.Go(func() error {
				raw, err := readGeoSource(gctx, env, cfg.Geo.Source)
				if err != nil {
					return err
				}
				_, report, err := geo.Normalize(raw, loadBridge())
				if err != nil {
					return err
				}
				zap.L().Info("geometry prefetched",
					zap.Int("features", report.Total),
					zap.Int("joined", report.Joined),
				)
				return nil
			})
		}

		return g.Wait()
	},
}

func printIngestSummary(cmd *cobra.Command, data map[string]model.ProvinceData) {
	withData := 0
	for _, p := range data {
		if p.HasData() {
			withData++
		}
	}
	cmd.Printf("Ingested %d provinces (%d with expenditure data, %d without)\n",
		len(data), withData, len(data)-withData)
}

func init() {
	ingestCmd.Flags().StringVar(&ingestXLSXPath, "xlsx", "", "ingest from a local XLSX workbook instead of the configured source")
	ingestCmd.Flags().StringVar(&ingestXLSXSheet, "sheet", "", "XLSX sheet name (default: first sheet)")
	ingestCmd.Flags().BoolVar(&ingestRefresh, "refresh", false, "ignore cached snapshots and re-ingest")
	ingestCmd.Flags().BoolVar(&ingestWithGeo, "with-geo", false, "also prefetch and validate province geometry")
	rootCmd.AddCommand(ingestCmd)
}
