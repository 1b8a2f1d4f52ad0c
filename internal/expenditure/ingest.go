package expenditure

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/bulgogipedas/isUMREnough/internal/model"
	"github.com/bulgogipedas/isUMREnough/internal/province"
)

// Seed returns the full province mapping initialized from the UMP
// reference table with zeroed expenditure fields. Every province id is
// present; a zero ExpenditurePerCapita downstream means "no data".
func Seed() map[string]model.ProvinceData {
	data := make(map[string]model.ProvinceData, len(province.All()))
	for _, rec := range province.All() {
		data[rec.ID] = model.ProvinceData{
			Name: rec.Name,
			UMP:  rec.UMP,
		}
	}
	return data
}

// Ingest parses a BPS expenditure CSV and merges it into a seeded
// province mapping. A header that cannot be interpreted is fatal;
// individual rows that are empty, aggregate, or unmatchable are
// skipped. The result always covers all 38 province ids.
func Ingest(r io.Reader) (map[string]model.ProvinceData, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "expenditure: read csv")
	}
	if len(records) == 0 {
		return nil, eris.New("expenditure: empty table")
	}

	return mergeTable(records[0], records[1:])
}

// mergeTable applies header-keyed data rows onto the seeded mapping.
// Shared by the CSV and XLSX paths. Headers are trimmed once so that
// validation and row mapping agree on padded sources.
func mergeTable(headers []string, rows [][]string) (map[string]model.ProvinceData, error) {
	trimmed := make([]string, len(headers))
	for i, h := range headers {
		trimmed[i] = strings.TrimSpace(h)
	}
	headers = trimmed

	if err := checkHeaders(headers); err != nil {
		return nil, err
	}

	data := Seed()
	log := zap.L().With(zap.String("component", "expenditure"))

	var merged, dropped int
	for _, row := range rows {
		cells := mapRow(headers, row)

		name := strings.TrimSpace(cells[ColumnProvince])
		if name == "" || name == aggregateRow {
			continue
		}

		rec, ok := province.Resolve(name)
		if !ok {
			// Expected for footnote and aggregate rows.
			log.Debug("unresolved province row", zap.String("name", name))
			dropped++
			continue
		}

		entry, ok := data[rec.ID]
		if !ok {
			continue
		}
		entry.ExpenditurePerCapita = ParseAmount(cells[ColumnTotal])
		entry.ExpenditureFood = ParseAmount(cells[ColumnFood])
		entry.ExpenditureNonFood = ParseAmount(cells[ColumnNonFood])
		data[rec.ID] = entry
		merged++
	}

	log.Info("expenditure table merged",
		zap.Int("rows_merged", merged),
		zap.Int("rows_dropped", dropped),
	)
	return data, nil
}

func checkHeaders(headers []string) error {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}
	for _, required := range []string{ColumnProvince, ColumnTotal, ColumnFood, ColumnNonFood} {
		if !present[required] {
			return eris.Errorf("expenditure: missing column %q", required)
		}
	}
	return nil
}
