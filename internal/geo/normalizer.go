// Package geo normalizes province map geometry so features can be
// joined against canonical province ids.
package geo

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"

	"github.com/bulgogipedas/isUMREnough/internal/province"
)

// nameKeys are the candidate property keys carrying the province name,
// in priority order; the first non-empty value wins.
var nameKeys = []string{"Propinsi", "PROVINSI", "provinsi", "name"}

// Feature is a geometry feature augmented with normalized identifiers.
// NormalizedID is the pure slug of the feature's name and is what map
// joins key on. CanonicalID is the resolved reference-table id, empty
// when resolution failed.
type Feature struct {
	NormalizedName string
	NormalizedID   string
	CanonicalID    string
	Geometry       geom.T
	Properties     map[string]any
}

// MarshalJSON emits the feature with its geometry re-encoded as a
// GeoJSON geometry object so API clients can render it directly.
func (f Feature) MarshalJSON() ([]byte, error) {
	out := struct {
		NormalizedName string            `json:"normalized_name"`
		NormalizedID   string            `json:"normalized_id"`
		CanonicalID    string            `json:"canonical_id,omitempty"`
		Geometry       *geojson.Geometry `json:"geometry,omitempty"`
		Properties     map[string]any    `json:"properties,omitempty"`
	}{
		NormalizedName: f.NormalizedName,
		NormalizedID:   f.NormalizedID,
		CanonicalID:    f.CanonicalID,
		Properties:     f.Properties,
	}
	if f.Geometry != nil {
		g, err := geojson.Encode(f.Geometry)
		if err != nil {
			return nil, eris.Wrap(err, "geo: encode geometry")
		}
		out.Geometry = g
	}
	return json.Marshal(out)
}

// Collection holds normalized features with id-based lookup.
type Collection struct {
	features []Feature
	byID     map[string]*Feature
}

// JoinReport summarizes how well the geometry joined against the
// reference table. Slug agreement between geometry names and curated
// ids is best-effort, so unjoined features are expected to be flagged
// rather than dropped.
type JoinReport struct {
	Total    int      `json:"total"`
	Joined   int      `json:"joined"`
	Unjoined []string `json:"unjoined,omitempty"`
}

var slugStrip = regexp.MustCompile(`[^a-z0-9-]`)
var slugSpace = regexp.MustCompile(`\s+`)

// Slugify derives a join id from a free-text province name: lowercase,
// whitespace runs replaced by a single hyphen, every other character
// outside [a-z0-9-] stripped.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugSpace.ReplaceAllString(s, "-")
	return slugStrip.ReplaceAllString(s, "")
}

// FeatureName extracts the province name from raw feature properties
// using the candidate keys in priority order.
func FeatureName(properties map[string]any) string {
	for _, key := range nameKeys {
		if v, ok := properties[key].(string); ok {
			if name := strings.TrimSpace(v); name != "" {
				return name
			}
		}
	}
	return ""
}

// Normalize decodes a GeoJSON feature collection and augments every
// feature with NormalizedName, NormalizedID and CanonicalID. Features
// without a resolvable canonical id are kept and reported.
func Normalize(raw []byte, bridge Bridge) (*Collection, JoinReport, error) {
	var fc geojson.FeatureCollection
	if err := json.Unmarshal(raw, &fc); err != nil {
		return nil, JoinReport{}, eris.Wrap(err, "geo: decode feature collection")
	}

	log := zap.L().With(zap.String("component", "geo"))

	collection := &Collection{
		features: make([]Feature, 0, len(fc.Features)),
		byID:     make(map[string]*Feature, len(fc.Features)),
	}
	report := JoinReport{Total: len(fc.Features)}

	for _, f := range fc.Features {
		name := FeatureName(f.Properties)
		feature := Feature{
			NormalizedName: name,
			NormalizedID:   Slugify(name),
			CanonicalID:    resolveCanonical(name, bridge),
			Geometry:       f.Geometry,
			Properties:     f.Properties,
		}

		if feature.CanonicalID == "" {
			report.Unjoined = append(report.Unjoined, name)
			log.Warn("geometry feature failed to join", zap.String("name", name))
		} else {
			report.Joined++
		}

		collection.features = append(collection.features, feature)
		idx := len(collection.features) - 1
		if feature.NormalizedID != "" {
			collection.byID[feature.NormalizedID] = &collection.features[idx]
		}
	}

	return collection, report, nil
}

// resolveCanonical maps a feature name to a reference-table id: slug
// agreement first, then the explicit bridge table, then the same
// tiered matcher used for expenditure rows.
func resolveCanonical(name string, bridge Bridge) string {
	slug := Slugify(name)
	if slug == "" {
		return ""
	}
	if _, ok := province.LookupByID(slug); ok {
		return slug
	}
	if id, ok := bridge[slug]; ok {
		return id
	}
	if rec, ok := province.Resolve(name); ok {
		return rec.ID
	}
	return ""
}

// Features returns all normalized features in document order.
func (c *Collection) Features() []Feature {
	return c.features
}

// ByID returns the feature with the given normalized id.
func (c *Collection) ByID(id string) (*Feature, bool) {
	f, ok := c.byID[id]
	return f, ok
}

// Names returns all non-empty normalized feature names.
func (c *Collection) Names() []string {
	names := make([]string, 0, len(c.features))
	for _, f := range c.features {
		if f.NormalizedName != "" {
			names = append(names, f.NormalizedName)
		}
	}
	return names
}
