// Package province holds the canonical UMP reference table for the 38
// Indonesian provinces and the name matcher used to resolve free-text
// province names from external datasets against it.
package province

import "github.com/bulgogipedas/isUMREnough/internal/model"

// umpTable is the UMP 2024/2025 reference table, one entry per
// province, in official table order. Source: government announcements.
// Changing province coverage means editing this table; nothing is
// derived at runtime.
var umpTable = []model.UMPRecord{
	{ID: "aceh", Name: "Aceh", Aliases: []string{"ACEH", "NAD", "NANGGROE ACEH DARUSSALAM"}, UMP: 3413666, Year: 2024},
	{ID: "sumatera-utara", Name: "Sumatera Utara", Aliases: []string{"SUMATERA UTARA", "SUMUT"}, UMP: 2809915, Year: 2024},
	{ID: "sumatera-barat", Name: "Sumatera Barat", Aliases: []string{"SUMATERA BARAT", "SUMBAR"}, UMP: 2742476, Year: 2024},
	{ID: "riau", Name: "Riau", Aliases: []string{"RIAU"}, UMP: 3191662, Year: 2024},
	{ID: "jambi", Name: "Jambi", Aliases: []string{"JAMBI"}, UMP: 2943000, Year: 2024},
	{ID: "sumatera-selatan", Name: "Sumatera Selatan", Aliases: []string{"SUMATERA SELATAN", "SUMSEL"}, UMP: 3456874, Year: 2024},
	{ID: "bengkulu", Name: "Bengkulu", Aliases: []string{"BENGKULU"}, UMP: 2507079, Year: 2024},
	{ID: "lampung", Name: "Lampung", Aliases: []string{"LAMPUNG"}, UMP: 2633284, Year: 2024},
	{ID: "bangka-belitung", Name: "Kepulauan Bangka Belitung", Aliases: []string{"KEPULAUAN BANGKA BELITUNG", "BABEL", "BANGKA BELITUNG"}, UMP: 3498479, Year: 2024},
	{ID: "kepulauan-riau", Name: "Kepulauan Riau", Aliases: []string{"KEPULAUAN RIAU", "KEPRI"}, UMP: 3402492, Year: 2024},
	{ID: "dki-jakarta", Name: "DKI Jakarta", Aliases: []string{"DKI JAKARTA", "JAKARTA"}, UMP: 5067381, Year: 2024},
	{ID: "jawa-barat", Name: "Jawa Barat", Aliases: []string{"JAWA BARAT", "JABAR"}, UMP: 2057495, Year: 2024},
	{ID: "jawa-tengah", Name: "Jawa Tengah", Aliases: []string{"JAWA TENGAH", "JATENG"}, UMP: 2035807, Year: 2024},
	{ID: "di-yogyakarta", Name: "DI Yogyakarta", Aliases: []string{"DI YOGYAKARTA", "DIY", "YOGYAKARTA", "D.I. YOGYAKARTA"}, UMP: 2125898, Year: 2024},
	{ID: "jawa-timur", Name: "Jawa Timur", Aliases: []string{"JAWA TIMUR", "JATIM"}, UMP: 2040244, Year: 2024},
	{ID: "banten", Name: "Banten", Aliases: []string{"BANTEN"}, UMP: 2727514, Year: 2024},
	{ID: "bali", Name: "Bali", Aliases: []string{"BALI"}, UMP: 2971250, Year: 2024},
	{ID: "nusa-tenggara-barat", Name: "Nusa Tenggara Barat", Aliases: []string{"NUSA TENGGARA BARAT", "NTB"}, UMP: 2444067, Year: 2024},
	{ID: "nusa-tenggara-timur", Name: "Nusa Tenggara Timur", Aliases: []string{"NUSA TENGGARA TIMUR", "NTT"}, UMP: 2123994, Year: 2024},
	{ID: "kalimantan-barat", Name: "Kalimantan Barat", Aliases: []string{"KALIMANTAN BARAT", "KALBAR"}, UMP: 2702616, Year: 2024},
	{ID: "kalimantan-tengah", Name: "Kalimantan Tengah", Aliases: []string{"KALIMANTAN TENGAH", "KALTENG"}, UMP: 3181013, Year: 2024},
	{ID: "kalimantan-selatan", Name: "Kalimantan Selatan", Aliases: []string{"KALIMANTAN SELATAN", "KALSEL"}, UMP: 3268612, Year: 2024},
	{ID: "kalimantan-timur", Name: "Kalimantan Timur", Aliases: []string{"KALIMANTAN TIMUR", "KALTIM"}, UMP: 3360449, Year: 2024},
	{ID: "kalimantan-utara", Name: "Kalimantan Utara", Aliases: []string{"KALIMANTAN UTARA", "KALTARA"}, UMP: 3466653, Year: 2024},
	{ID: "sulawesi-utara", Name: "Sulawesi Utara", Aliases: []string{"SULAWESI UTARA", "SULUT"}, UMP: 3485000, Year: 2024},
	{ID: "sulawesi-tengah", Name: "Sulawesi Tengah", Aliases: []string{"SULAWESI TENGAH", "SULTENG"}, UMP: 2599546, Year: 2024},
	{ID: "sulawesi-selatan", Name: "Sulawesi Selatan", Aliases: []string{"SULAWESI SELATAN", "SULSEL"}, UMP: 3385145, Year: 2024},
	{ID: "sulawesi-tenggara", Name: "Sulawesi Tenggara", Aliases: []string{"SULAWESI TENGGARA", "SULTRA"}, UMP: 2758984, Year: 2024},
	{ID: "gorontalo", Name: "Gorontalo", Aliases: []string{"GORONTALO"}, UMP: 2989350, Year: 2024},
	{ID: "sulawesi-barat", Name: "Sulawesi Barat", Aliases: []string{"SULAWESI BARAT", "SULBAR"}, UMP: 2879135, Year: 2024},
	{ID: "maluku", Name: "Maluku", Aliases: []string{"MALUKU"}, UMP: 2812827, Year: 2024},
	{ID: "maluku-utara", Name: "Maluku Utara", Aliases: []string{"MALUKU UTARA", "MALUT"}, UMP: 2976720, Year: 2024},
	{ID: "papua-barat", Name: "Papua Barat", Aliases: []string{"PAPUA BARAT"}, UMP: 3282000, Year: 2024},
	{ID: "papua", Name: "Papua", Aliases: []string{"PAPUA"}, UMP: 3864696, Year: 2024},
	{ID: "papua-tengah", Name: "Papua Tengah", Aliases: []string{"PAPUA TENGAH"}, UMP: 3516700, Year: 2024},
	{ID: "papua-pegunungan", Name: "Papua Pegunungan", Aliases: []string{"PAPUA PEGUNUNGAN"}, UMP: 3501874, Year: 2024},
	{ID: "papua-selatan", Name: "Papua Selatan", Aliases: []string{"PAPUA SELATAN"}, UMP: 3300000, Year: 2024},
	{ID: "papua-barat-daya", Name: "Papua Barat Daya", Aliases: []string{"PAPUA BARAT DAYA"}, UMP: 3282000, Year: 2024},
}

var umpByID = func() map[string]*model.UMPRecord {
	m := make(map[string]*model.UMPRecord, len(umpTable))
	for i := range umpTable {
		m[umpTable[i].ID] = &umpTable[i]
	}
	return m
}()

// LookupByID returns the reference record for a province id.
func LookupByID(id string) (*model.UMPRecord, bool) {
	rec, ok := umpByID[id]
	return rec, ok
}

// All returns the reference table in table order. The returned slice
// must not be modified.
func All() []model.UMPRecord {
	return umpTable
}
