package model

// UMPRecord is one entry of the canonical province reference table.
// ID is a stable slug used as the join key across the whole system.
type UMPRecord struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Aliases []string `json:"aliases"`
	UMP     float64  `json:"ump"`
	Year    int      `json:"year"`
}

// ProvinceData holds per-province expenditure figures merged with the
// UMP benchmark. ExpenditurePerCapita of 0 means the source table had
// no usable row for the province.
type ProvinceData struct {
	Name                 string  `json:"name"`
	ExpenditurePerCapita float64 `json:"expenditure_per_capita"`
	ExpenditureFood      float64 `json:"expenditure_food"`
	ExpenditureNonFood   float64 `json:"expenditure_non_food"`
	UMP                  float64 `json:"ump"`
}

// HasData reports whether the province carries usable expenditure data.
func (p ProvinceData) HasData() bool {
	return p.ExpenditurePerCapita > 0
}

// ProvinceOption is a listing entry for selection UIs and API clients.
type ProvinceOption struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Expenditure float64 `json:"expenditure"`
	UMP         float64 `json:"ump"`
}
