package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestPlaceVisitJSONCarriesDwell(t *testing.T) {
	p := PlaceVisit{
		ID:        "p1",
		Position:  Position{Latitude: 60.2, Longitude: 24.8},
		Timestamp: time.Date(2026, 10, 18, 8, 10, 0, 0, time.UTC),
		Dwell:     20 * time.Minute,
		Kind:      PlaceKindWork,
	}

	data, err := json.Marshal(RenderedPoint{Place: p, Activities: []ActivityMode{}, Icon: IconLarge})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"dwellSeconds":1200`) {
		t.Fatalf("expected dwellSeconds in %s", data)
	}
	if !strings.Contains(string(data), `"id":"p1"`) || !strings.Contains(string(data), `"kind":"WORK"`) {
		t.Fatalf("expected place fields kept in %s", data)
	}

	var back RenderedPoint
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Place.Dwell != 20*time.Minute || back.Place.ID != "p1" || !back.Place.Timestamp.Equal(p.Timestamp) {
		t.Fatalf("unexpected decoded place %+v", back.Place)
	}
	if back.Icon != IconLarge {
		t.Fatalf("expected large icon, got %s", back.Icon)
	}
}
