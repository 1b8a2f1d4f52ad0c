package expenditure

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/bulgogipedas/isUMREnough/internal/model"
)

// Options lists provinces that carry expenditure data, sorted by name
// with Indonesian collation.
func Options(data map[string]model.ProvinceData) []model.ProvinceOption {
	options := make([]model.ProvinceOption, 0, len(data))
	for id, p := range data {
		if !p.HasData() {
			continue
		}
		options = append(options, model.ProvinceOption{
			ID:          id,
			Name:        p.Name,
			Expenditure: p.ExpenditurePerCapita,
			UMP:         p.UMP,
		})
	}

	c := collate.New(language.Indonesian)
	sort.Slice(options, func(i, j int) bool {
		return c.CompareString(options[i].Name, options[j].Name) < 0
	})
	return options
}
