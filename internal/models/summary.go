package models

// RouteSummary holds aggregate figures for a drawn route
type RouteSummary struct {
	PlaceCount          int     `json:"placeCount"`    // places fetched for the selection
	RenderedCount       int     `json:"renderedCount"` // places that passed the filter
	PathLengthMeters    float64 `json:"pathLengthMeters"`
	TotalDwellMinutes   float64 `json:"totalDwellMinutes"`
	MedianDwellMinutes  float64 `json:"medianDwellMinutes"`
	P90DwellMinutes     float64 `json:"p90DwellMinutes"`
	LongestDwellMinutes float64 `json:"longestDwellMinutes"`
}

// Bounds is the bounding box of a path
type Bounds struct {
	Min Position `json:"min"`
	Max Position `json:"max"`
}

// PlaceDetail is the detail view of a single place
type PlaceDetail struct {
	ID              string         `json:"id"`
	Latitude        float64        `json:"latitude"`
	Longitude       float64        `json:"longitude"`
	DurationMinutes float64        `json:"durationMinutes"`
	RadiusMeters    float64        `json:"radiusMeters"`
	Timestamp       string         `json:"timestamp"` // Format: Jan 02 2006 15:04:05
	Kind            PlaceKind      `json:"kind"`
	Activities      []ActivityMode `json:"activities"`
}
