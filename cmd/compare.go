package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/bulgogipedas/isUMREnough/internal/finance"
	"github.com/bulgogipedas/isUMREnough/internal/format"
)

var (
	compareOrigin     string
	compareTarget     string
	compareIncome     float64
	compareDependents int
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare household position between two provinces",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if compareIncome < 0 {
			return eris.New("income must be >= 0")
		}
		if compareDependents < 1 {
			return eris.New("dependents must be >= 1")
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

		originRec, ok := resolveProvinceArg(compareOrigin)
		if !ok {
			return eris.Errorf("unknown province %q", compareOrigin)
		}
		targetRec, ok := resolveProvinceArg(compareTarget)
		if !ok {
			return eris.Errorf("unknown province %q", compareTarget)
		}

		originResult, ok := finance.Calculate(compareIncome, compareDependents, data[originRec.ID])
		if !ok {
			cmd.Printf("Data pengeluaran untuk %s belum tersedia.\n", originRec.Name)
			return nil
		}
		targetResult, ok := finance.Calculate(compareIncome, compareDependents, data[targetRec.ID])
		if !ok {
			cmd.Printf("Data pengeluaran untuk %s belum tersedia.\n", targetRec.Name)
			return nil
		}

		insight := finance.Compare(*originResult, *targetResult)

		cmd.Printf("%s -> %s (pendapatan %s, %d tanggungan)\n\n",
			originRec.Name, targetRec.Name, format.Rupiah(compareIncome), compareDependents)
		cmd.Printf("Saldo asal         : %s\n", format.Rupiah(originResult.Balance))
		cmd.Printf("Saldo tujuan       : %s\n", format.Rupiah(targetResult.Balance))
		cmd.Printf("Selisih saldo      : %s\n", format.Rupiah(insight.DiffSurplus))
		cmd.Printf("Perubahan biaya    : %s\n", format.Percentage(insight.PercentageChange, 1))
		cmd.Printf("Selisih pengeluaran: %s per kapita\n", format.Rupiah(insight.DiffExpenditure))

		if insight.IsBetter {
			cmd.Printf("\nPindah ke %s menyisakan lebih banyak uang.\n", targetRec.Name)
		} else {
			cmd.Printf("\nPindah ke %s tidak menambah sisa uang.\n", targetRec.Name)
		}
		return nil
	},
}

func init() {
	compareCmd.Flags().StringVar(&compareOrigin, "from", "", "origin province id or name (required)")
	compareCmd.Flags().StringVar(&compareTarget, "to", "", "target province id or name (required)")
	compareCmd.Flags().Float64VarP(&compareIncome, "income", "i", 0, "monthly income in Rupiah")
	compareCmd.Flags().IntVarP(&compareDependents, "dependents", "d", 1, "number of dependents (>= 1)")
	_ = compareCmd.MarkFlagRequired("from")
	_ = compareCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(compareCmd)
}
