package geo

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Bridge maps geometry-derived slugs to canonical province ids for the
// cases where slugifying the feature name does not coincide with the
// curated id (older map sources use pre-split or long-form names).
type Bridge map[string]string

// DefaultBridge returns the built-in slug bridge.
func DefaultBridge() Bridge {
	return Bridge{
		"daerah-istimewa-yogyakarta": "di-yogyakarta",
		"yogyakarta":                 "di-yogyakarta",
		"kepulauan-bangka-belitung":  "bangka-belitung",
		"nanggroe-aceh-darussalam":   "aceh",
		"irian-jaya-barat":           "papua-barat",
		"jakarta-raya":               "dki-jakarta",
	}
}

// LoadBridge reads slug overrides from a YAML file and merges them
// over the defaults. Entries in the file win.
func LoadBridge(path string) (Bridge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "geo: read bridge %s", path)
	}

	var overrides map[string]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, eris.Wrap(err, "geo: parse bridge")
	}

	bridge := DefaultBridge()
	for slug, id := range overrides {
		bridge[slug] = id
	}
	return bridge, nil
}
