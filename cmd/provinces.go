package main

import (
	"github.com/spf13/cobra"

	"github.com/bulgogipedas/isUMREnough/internal/expenditure"
	"github.com/bulgogipedas/isUMREnough/internal/format"
	"github.com/bulgogipedas/isUMREnough/internal/province"
)

var provincesAll bool

var provincesCmd = &cobra.Command{
	Use:   "provinces",
	Short: "List provinces and their benchmarks",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if provincesAll {
			// Reference table only, no dataset needed.
			for _, rec := range province.All() {
				cmd.Printf("%-22s %-28s UMP %s\n", rec.ID, rec.Name, format.Rupiah(rec.UMP))
			}
			return nil
		}

		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		data, err := env.provinceData(ctx, false)
		if err != nil {
			return err
		}

		options := expenditure.Options(data)
		if len(options) == 0 {
			cmd.Println("No provinces with expenditure data; run `isumrenough ingest` first.")
			return nil
		}

		for _, opt := range options {
			cmd.Printf("%-22s %-28s pengeluaran %-14s UMP %s\n",
				opt.ID, opt.Name, format.Rupiah(opt.Expenditure), format.Rupiah(opt.UMP))
		}
		return nil
	},
}

func init() {
	provincesCmd.Flags().BoolVar(&provincesAll, "all", false, "list the full reference table, including provinces without data")
	rootCmd.AddCommand(provincesCmd)
}
