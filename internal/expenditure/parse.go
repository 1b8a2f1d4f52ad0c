// Package expenditure ingests BPS per-capita expenditure tables (CSV
// or XLSX) and merges them into UMP-seeded per-province records.
package expenditure

import (
	"regexp"
	"strconv"
	"strings"
)

// Column labels of the BPS expenditure table. These must match the
// source headers exactly.
const (
	ColumnProvince = "Provinsi"
	ColumnTotal    = "Rata-rata Pengeluaran per Kapita Sebulan di Perkotaan dan Perdesaan - Jumlah"
	ColumnFood     = "Rata-rata Pengeluaran per Kapita Sebulan di Perkotaan dan Perdesaan - Makanan"
	ColumnNonFood  = "Rata-rata Pengeluaran per Kapita Sebulan di Perkotaan dan Perdesaan - Bukan Makanan"
)

// aggregateRow is the nationwide summary row; it must never overwrite
// a provincial record. Matched case-sensitively.
const aggregateRow = "Indonesia"

// dotGrouped matches Indonesian thousands grouping: 1-3 leading digits
// followed by dot-separated triples ("600.000", "1.234.567").
var dotGrouped = regexp.MustCompile(`^\d{1,3}(\.\d{3})+$`)

// ParseAmount converts a raw table cell to a numeric value. Grouping
// punctuation (currency prefixes, spaces, thousands separators) is
// tolerated: every rune outside [0-9.] is stripped first. A residue in
// Indonesian thousands grouping is read as grouped digits ("600.000"
// -> 600000, "1.234.567" -> 1234567); any other dotted residue is a
// plain decimal ("2500.5" -> 2500.5). Empty or unparsable residues
// yield 0.
func ParseAmount(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0
	}

	if dotGrouped.MatchString(cleaned) {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// mapRow pairs each header with the corresponding value in the row.
// Rows shorter than the header get empty strings for the tail.
func mapRow(headers []string, row []string) map[string]string {
	result := make(map[string]string, len(headers))
	for i, h := range headers {
		if i < len(row) {
			result[h] = row[i]
		} else {
			result[h] = ""
		}
	}
	return result
}
