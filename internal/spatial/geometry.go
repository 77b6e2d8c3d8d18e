package spatial

import (
	"github.com/paulmach/orb"

	"github.com/jengzang/tracks-backend-go/internal/models"
)

// ToOrbPoint converts a position to an orb point (lon, lat order)
func ToOrbPoint(p models.Position) orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

// ToLineString converts a path to an orb line string
func ToLineString(path []models.Position) orb.LineString {
	ls := make(orb.LineString, 0, len(path))
	for _, p := range path {
		ls = append(ls, ToOrbPoint(p))
	}
	return ls
}

// FromOrbPoint converts an orb point back to a position
func FromOrbPoint(p orb.Point) models.Position {
	return models.Position{Latitude: p.Lat(), Longitude: p.Lon()}
}

// BoundingBox calculates the bounding box of a path.
// Returns false for an empty path.
func BoundingBox(path []models.Position) (models.Bounds, bool) {
	if len(path) == 0 {
		return models.Bounds{}, false
	}

	b := orb.MultiPoint(ToLineString(path)).Bound()
	return models.Bounds{
		Min: FromOrbPoint(b.Min),
		Max: FromOrbPoint(b.Max),
	}, true
}
