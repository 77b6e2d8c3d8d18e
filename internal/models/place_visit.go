package models

import (
	"encoding/json"
	"time"
)

// Position is a WGS84 coordinate in degrees
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PlaceKind classifies a visited place
type PlaceKind string

// PlaceKind constants
const (
	PlaceKindHome     PlaceKind = "HOME"
	PlaceKindWork     PlaceKind = "WORK"
	PlaceKindFrequent PlaceKind = "FREQUENT"
	PlaceKindKnown    PlaceKind = "KNOWN"
	PlaceKindUnknown  PlaceKind = "UNKNOWN"
)

// Valid reports whether k is one of the known place kinds
func (k PlaceKind) Valid() bool {
	switch k {
	case PlaceKindHome, PlaceKindWork, PlaceKindFrequent, PlaceKindKnown, PlaceKindUnknown:
		return true
	}
	return false
}

// PlaceVisit is a recorded stay at a location.
// Timestamp marks the arrival; Dwell is how long the device stayed. In JSON
// the dwell is carried as whole seconds in "dwellSeconds".
type PlaceVisit struct {
	ID           string        `json:"id,omitempty"`
	Position     Position      `json:"position"`
	RadiusMeters float64       `json:"radiusMeters"`
	Timestamp    time.Time     `json:"timestamp"`
	Dwell        time.Duration `json:"-"`
	Kind         PlaceKind     `json:"kind"`
}

// DwellSeconds returns the dwell duration in whole seconds
func (p PlaceVisit) DwellSeconds() int64 {
	return int64(p.Dwell / time.Second)
}

// DwellMinutes returns the dwell duration in minutes
func (p PlaceVisit) DwellMinutes() float64 {
	return p.Dwell.Minutes()
}

// StayEnd returns the instant the device left the place
func (p PlaceVisit) StayEnd() time.Time {
	return p.Timestamp.Add(p.Dwell)
}

type placeVisitFields PlaceVisit

// MarshalJSON encodes the visit with its dwell as dwellSeconds
func (p PlaceVisit) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		placeVisitFields
		DwellSeconds int64 `json:"dwellSeconds"`
	}{placeVisitFields(p), p.DwellSeconds()})
}

// UnmarshalJSON decodes a visit written by MarshalJSON
func (p *PlaceVisit) UnmarshalJSON(data []byte) error {
	aux := struct {
		*placeVisitFields
		DwellSeconds int64 `json:"dwellSeconds"`
	}{placeVisitFields: (*placeVisitFields)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.Dwell = time.Duration(aux.DwellSeconds) * time.Second
	return nil
}
