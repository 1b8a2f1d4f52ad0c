package main

import (
	"github.com/spf13/cobra"

	"github.com/bulgogipedas/isUMREnough/internal/format"
)

var (
	historyProvince string
	historyLimit    int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded calculations",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		records, err := env.Store.ListCalculations(ctx, historyProvince, historyLimit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			cmd.Println("No recorded calculations.")
			return nil
		}

		for _, rec := range records {
			cmd.Printf("%s  %-22s income %-14s dependents %d  balance %-14s %s\n",
				rec.CreatedAt.Format("2006-01-02 15:04"),
				rec.ProvinceID,
				format.Rupiah(rec.Income),
				rec.Dependents,
				format.Rupiah(rec.Result.Balance),
				rec.Result.Status,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVarP(&historyProvince, "province", "p", "", "filter by province id")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum records to list")
	rootCmd.AddCommand(historyCmd)
}
