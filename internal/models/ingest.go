package models

// PlaceVisitRequest is the wire form of a place visit submitted for storage
type PlaceVisitRequest struct {
	ID           string  `json:"id" binding:"omitempty,uuid"`
	Latitude     float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude    float64 `json:"longitude" binding:"min=-180,max=180"`
	RadiusMeters float64 `json:"radiusMeters" binding:"min=0"`
	Timestamp    int64   `json:"timestamp" binding:"required"` // Unix timestamp in seconds
	DwellSeconds int64   `json:"dwellSeconds" binding:"min=0"`
	Kind         string  `json:"kind" binding:"omitempty,placekind"`
}

// PlaceBatchRequest wraps a batch of place visits
type PlaceBatchRequest struct {
	Places []PlaceVisitRequest `json:"places" binding:"required,min=1,dive"`
}

// ActivityRequest is the wire form of an activity sample
type ActivityRequest struct {
	Mode      string `json:"mode" binding:"required,activitymode"`
	Timestamp int64  `json:"timestamp" binding:"required"` // Unix timestamp in seconds
}

// ActivityBatchRequest wraps a batch of activity samples
type ActivityBatchRequest struct {
	Activities []ActivityRequest `json:"activities" binding:"required,min=1,dive"`
}
