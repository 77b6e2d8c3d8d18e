package export

import (
	"fmt"
	"strings"

	"github.com/tkrajina/gpxgo/gpx"

	"github.com/jengzang/tracks-backend-go/internal/models"
)

const gpxCreator = "tracks-backend-go"

// RouteGPX converts a route to a GPX document: the path as a single track
// segment and each rendered place as a waypoint
func RouteGPX(r models.Route, name string) *gpx.GPX {
	g := &gpx.GPX{
		Version: "1.1",
		Creator: gpxCreator,
		Name:    name,
	}

	segment := gpx.GPXTrackSegment{Points: make([]gpx.GPXPoint, 0, len(r.Path))}
	for _, p := range r.Path {
		segment.Points = append(segment.Points, gpx.GPXPoint{
			Point: gpx.Point{Latitude: p.Latitude, Longitude: p.Longitude},
		})
	}
	if len(segment.Points) > 0 {
		g.Tracks = append(g.Tracks, gpx.GPXTrack{
			Name:     name,
			Segments: []gpx.GPXTrackSegment{segment},
		})
	}

	for _, p := range r.Points {
		g.Waypoints = append(g.Waypoints, gpx.GPXPoint{
			Point:       gpx.Point{Latitude: p.Place.Position.Latitude, Longitude: p.Place.Position.Longitude},
			Timestamp:   p.Place.Timestamp.UTC(),
			Name:        fmt.Sprintf("%s %s", p.Place.Kind, p.Icon),
			Description: waypointDescription(p),
			Type:        string(p.Place.Kind),
		})
	}

	return g
}

// MarshalGPX encodes a route as an indented GPX 1.1 document
func MarshalGPX(r models.Route, name string) ([]byte, error) {
	data, err := RouteGPX(r, name).ToXml(gpx.ToXmlParams{Version: "1.1", Indent: true})
	if err != nil {
		return nil, fmt.Errorf("failed to encode gpx: %w", err)
	}
	return data, nil
}

func waypointDescription(p models.RenderedPoint) string {
	desc := fmt.Sprintf("%.0f min, radius %.0f m", p.Place.DwellMinutes(), p.Place.RadiusMeters)
	if len(p.Activities) > 0 {
		desc += ", " + strings.Join(activityNames(p.Activities), " ")
	}
	return desc
}
