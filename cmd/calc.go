package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bulgogipedas/isUMREnough/internal/finance"
	"github.com/bulgogipedas/isUMREnough/internal/format"
	"github.com/bulgogipedas/isUMREnough/internal/model"
	"github.com/bulgogipedas/isUMREnough/internal/province"
)

var (
	calcProvince   string
	calcIncome     float64
	calcDependents int
	calcNoRecord   bool
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate household position for one province",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if calcIncome < 0 {
			return eris.New("income must be >= 0")
		}
		if calcDependents < 1 {
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

		rec, ok := resolveProvinceArg(calcProvince)
		if !ok {
			return eris.Errorf("unknown province %q", calcProvince)
		}

		result, ok := finance.Calculate(calcIncome, calcDependents, data[rec.ID])
		if !ok {
			cmd.Printf("Data pengeluaran untuk %s belum tersedia; hasil tidak dapat dihitung.\n", rec.Name)
			return nil
		}

		cmd.Printf("Provinsi           : %s\n", rec.Name)
		cmd.Printf("Pendapatan         : %s\n", format.Rupiah(calcIncome))
		cmd.Printf("Tanggungan         : %d orang\n", calcDependents)
		cmd.Printf("Total pengeluaran  : %s\n", format.Rupiah(result.TotalExpense))
		cmd.Printf("  Makanan/kapita   : %s\n", format.Rupiah(result.ExpenditureFood))
		cmd.Printf("  Non-makanan/kap. : %s\n", format.Rupiah(result.ExpenditureNonFood))
		cmd.Printf("Saldo              : %s (%s)\n", format.Rupiah(result.Balance), result.Status.Label())
		cmd.Printf("Rasio thd. biaya   : %s\n", format.Percentage(result.IncomeVsExpenseRatio, 1))
		cmd.Printf("Perbandingan UMP   : %s\n", format.Percentage(result.UMPComparison, 1))
		cmd.Printf("\n%s\n", finance.AnalysisText(result.IncomeVsExpenseRatio))

		if !calcNoRecord {
			if _, err := env.Store.RecordCalculation(ctx, rec.ID, calcIncome, calcDependents, *result); err != nil {
				zap.L().Warn("recording calculation failed", zap.Error(err))
			}
		}
		return nil
	},
}

// resolveProvinceArg accepts either a province id or a free-text name.
func resolveProvinceArg(arg string) (*model.UMPRecord, bool) {
	if rec, ok := province.LookupByID(arg); ok {
		return rec, true
	}
	return province.Resolve(arg)
}

func init() {
	calcCmd.Flags().StringVarP(&calcProvince, "province", "p", "", "province id or name (required)")
	calcCmd.Flags().Float64VarP(&calcIncome, "income", "i", 0, "monthly income in Rupiah")
	calcCmd.Flags().IntVarP(&calcDependents, "dependents", "d", 1, "number of dependents (>= 1)")
	calcCmd.Flags().BoolVar(&calcNoRecord, "no-record", false, "do not persist this calculation to history")
	_ = calcCmd.MarkFlagRequired("province")
	rootCmd.AddCommand(calcCmd)
}
