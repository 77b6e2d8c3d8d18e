// Package export renders routes into map interchange formats
package export

import (
	"time"

	"github.com/paulmach/orb/geojson"

	"github.com/jengzang/tracks-backend-go/internal/models"
	"github.com/jengzang/tracks-backend-go/internal/spatial"
)

// Feature roles stored in the "role" property
const (
	RolePath  = "path"
	RolePlace = "place"
)

// RouteFeatureCollection converts a route to GeoJSON: one feature for the
// path, then one point feature per rendered place
func RouteFeatureCollection(r models.Route) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	switch len(r.Path) {
	case 0:
	case 1:
		f := geojson.NewFeature(spatial.ToOrbPoint(r.Path[0]))
		f.Properties["role"] = RolePath
		fc.Append(f)
	default:
		f := geojson.NewFeature(spatial.ToLineString(r.Path))
		f.Properties["role"] = RolePath
		fc.Append(f)
	}

	for _, p := range r.Points {
		f := geojson.NewFeature(spatial.ToOrbPoint(p.Place.Position))
		f.Properties["role"] = RolePlace
		f.Properties["id"] = p.Place.ID
		f.Properties["timestamp"] = p.Place.Timestamp.UTC().Format(time.RFC3339)
		f.Properties["dwellMinutes"] = p.Place.DwellMinutes()
		f.Properties["radiusMeters"] = p.Place.RadiusMeters
		f.Properties["kind"] = string(p.Place.Kind)
		f.Properties["icon"] = p.Icon.String()
		f.Properties["activities"] = activityNames(p.Activities)
		fc.Append(f)
	}

	return fc
}

// MarshalGeoJSON encodes a route as a GeoJSON FeatureCollection
func MarshalGeoJSON(r models.Route) ([]byte, error) {
	return RouteFeatureCollection(r).MarshalJSON()
}

func activityNames(modes []models.ActivityMode) []string {
	names := make([]string, 0, len(modes))
	for _, m := range modes {
		names = append(names, string(m))
	}
	return names
}
