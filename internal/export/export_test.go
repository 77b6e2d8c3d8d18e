package export

import (
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/tkrajina/gpxgo/gpx"

	"github.com/jengzang/tracks-backend-go/internal/models"
)

func sampleRoute() models.Route {
	ts := time.Date(2026, 10, 18, 8, 10, 0, 0, time.UTC)
	p1 := models.PlaceVisit{
		ID:           "p1",
		Position:     models.Position{Latitude: 60.2, Longitude: 24.8},
		RadiusMeters: 30,
		Timestamp:    ts,
		Dwell:        20 * time.Minute,
		Kind:         models.PlaceKindWork,
	}
	return models.Route{
		Points: []models.RenderedPoint{{
			Place:      p1,
			Activities: []models.ActivityMode{models.ActivityWalking, models.ActivityInVehicle},
			Icon:       models.IconLarge,
		}},
		Path: []models.Position{
			{Latitude: 60.1, Longitude: 24.9},
			{Latitude: 60.2, Longitude: 24.8},
		},
	}
}

func TestMarshalGeoJSON(t *testing.T) {
	data, err := MarshalGeoJSON(sampleRoute())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(fc.Features) != 2 {
		t.Fatalf("expected path and one place, got %d features", len(fc.Features))
	}

	path, ok := fc.Features[0].Geometry.(orb.LineString)
	if !ok {
		t.Fatalf("expected LineString path, got %T", fc.Features[0].Geometry)
	}
	if path[0] != (orb.Point{24.9, 60.1}) || path[1] != (orb.Point{24.8, 60.2}) {
		t.Fatalf("path order not preserved: %v", path)
	}

	place := fc.Features[1]
	if place.Properties.MustString("icon") != "large" || place.Properties.MustString("kind") != "WORK" {
		t.Fatalf("unexpected place properties %v", place.Properties)
	}
	if place.Properties.MustFloat64("dwellMinutes") != 20 {
		t.Fatalf("unexpected dwell %v", place.Properties["dwellMinutes"])
	}
}

func TestRouteFeatureCollectionSinglePosition(t *testing.T) {
	fc := RouteFeatureCollection(models.Route{Path: []models.Position{{Latitude: 1, Longitude: 2}}})
	if len(fc.Features) != 1 {
		t.Fatalf("expected a single feature, got %d", len(fc.Features))
	}
	if _, ok := fc.Features[0].Geometry.(orb.Point); !ok {
		t.Fatalf("expected Point geometry, got %T", fc.Features[0].Geometry)
	}

	if empty := RouteFeatureCollection(models.Route{}); len(empty.Features) != 0 {
		t.Fatalf("expected no features for empty route, got %d", len(empty.Features))
	}
}

func TestMarshalGPX(t *testing.T) {
	data, err := MarshalGPX(sampleRoute(), "2026-10-18")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	g, err := gpx.ParseBytes(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(g.Tracks) != 1 || len(g.Tracks[0].Segments) != 1 {
		t.Fatalf("expected one track segment, got %+v", g.Tracks)
	}
	pts := g.Tracks[0].Segments[0].Points
	if len(pts) != 2 || pts[0].Latitude != 60.1 || pts[1].Longitude != 24.8 {
		t.Fatalf("path order not preserved: %+v", pts)
	}
	if len(g.Waypoints) != 1 || g.Waypoints[0].Name != "WORK large" {
		t.Fatalf("unexpected waypoints %+v", g.Waypoints)
	}
	if !g.Waypoints[0].Timestamp.Equal(time.Date(2026, 10, 18, 8, 10, 0, 0, time.UTC)) {
		t.Fatalf("unexpected waypoint time %v", g.Waypoints[0].Timestamp)
	}
}
