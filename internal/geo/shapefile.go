package geo

import (
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"
)

// ReadShapefile reads a province boundary shapefile and normalizes it
// the same way Normalize does for GeoJSON. nameField is the attribute
// carrying the province name (commonly "PROVINSI" or "NAME_1").
func ReadShapefile(path, nameField string, bridge Bridge) (*Collection, JoinReport, error) {
	reader, err := shp.Open(path)
	if err != nil {
		return nil, JoinReport{}, eris.Wrapf(err, "geo: open shapefile %s", path)
	}
	defer func() { _ = reader.Close() }()

	nameIdx := -1
	for i, f := range reader.Fields() {
		name := strings.TrimRight(f.String(), "\x00")
		if strings.EqualFold(name, nameField) {
			nameIdx = i
			break
		}
	}
	if nameIdx < 0 {
		return nil, JoinReport{}, eris.Errorf("geo: field %q not found in shapefile", nameField)
	}

	log := zap.L().With(zap.String("component", "geo"))

	collection := &Collection{}
	var report JoinReport
	var skipped int

	for reader.Next() {
		_, shape := reader.Shape()

		polygon, ok := shape.(*shp.Polygon)
		if !ok {
			skipped++
			continue
		}
		geometry := polygonToMultiPolygon(polygon)
		if geometry == nil {
			skipped++
			continue
		}

		name := strings.TrimSpace(strings.TrimRight(reader.Attribute(nameIdx), "\x00"))
		report.Total++

		feature := Feature{
			NormalizedName: name,
			NormalizedID:   Slugify(name),
			CanonicalID:    resolveCanonical(name, bridge),
			Geometry:       geometry,
			Properties:     map[string]any{nameField: name},
		}

		if feature.CanonicalID == "" {
			report.Unjoined = append(report.Unjoined, name)
			log.Warn("shapefile feature failed to join", zap.String("name", name))
		} else {
			report.Joined++
		}

		collection.features = append(collection.features, feature)
	}

	// Index after the loop: appends may move the backing array.
	collection.byID = make(map[string]*Feature, len(collection.features))
	for i := range collection.features {
		if id := collection.features[i].NormalizedID; id != "" {
			collection.byID[id] = &collection.features[i]
		}
	}

	if skipped > 0 {
		log.Debug("skipped non-polygon shapefile records", zap.Int("skipped", skipped))
	}

	return collection, report, nil
}

// polygonToMultiPolygon converts a shapefile Polygon to a geom.MultiPolygon.
func polygonToMultiPolygon(p *shp.Polygon) geom.T {
	if p == nil || p.NumParts == 0 || len(p.Points) == 0 {
		return nil
	}

	mp := geom.NewMultiPolygon(geom.XY).SetSRID(4326)

	for i := int32(0); i < p.NumParts; i++ {
		start := p.Parts[i]
		var end int32
		if i+1 < p.NumParts {
			end = p.Parts[i+1]
		} else {
			end = int32(len(p.Points))
		}

		flat := make([]float64, 0, (end-start)*2)
		for j := start; j < end; j++ {
			flat = append(flat, p.Points[j].X, p.Points[j].Y)
		}

		ring := geom.NewLinearRingFlat(geom.XY, flat)
		poly := geom.NewPolygon(geom.XY)
		if err := poly.Push(ring); err != nil {
			zap.L().Debug("skipping malformed polygon ring", zap.Int32("part", i), zap.Error(err))
			continue
		}
		if err := mp.Push(poly); err != nil {
			zap.L().Debug("skipping malformed polygon part", zap.Int32("part", i), zap.Error(err))
			continue
		}
	}

	if mp.NumPolygons() == 0 {
		return nil
	}
	return mp
}
