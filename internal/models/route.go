package models

// IconTier is the marker size used for a rendered point
type IconTier int

// IconTier values
const (
	IconNone IconTier = iota
	IconSmall
	IconLarge
)

// String returns the lowercase tier name
func (t IconTier) String() string {
	switch t {
	case IconSmall:
		return "small"
	case IconLarge:
		return "large"
	default:
		return "none"
	}
}

// MarshalText encodes the tier by name
func (t IconTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a tier name; unknown names decode to IconNone
func (t *IconTier) UnmarshalText(text []byte) error {
	switch string(text) {
	case "small":
		*t = IconSmall
	case "large":
		*t = IconLarge
	default:
		*t = IconNone
	}
	return nil
}

// RenderedPoint is a place that passed the dwell filter, annotated with the
// activities seen on the way to it
type RenderedPoint struct {
	Place      PlaceVisit     `json:"place"`
	Activities []ActivityMode `json:"activities"`
	Icon       IconTier       `json:"icon"`
}

// Route is the result of one filter pass: points to mark and the path
// connecting them, both in timestamp order
type Route struct {
	Points []RenderedPoint `json:"points"`
	Path   []Position      `json:"path"`
}

// RouteResponse is a drawn route together with its map framing and summary
type RouteResponse struct {
	Day     string       `json:"day"` // YYYY-MM-DD or "all"
	MinStay int          `json:"minStay"`
	Route   Route        `json:"route"`
	Center  *Position    `json:"center,omitempty"` // first path position, absent for an empty route
	Bounds  *Bounds      `json:"bounds,omitempty"`
	Summary RouteSummary `json:"summary"`
}
