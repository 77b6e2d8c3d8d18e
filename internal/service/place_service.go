package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jengzang/tracks-backend-go/internal/models"
	"github.com/jengzang/tracks-backend-go/internal/route"
)

// detailTimeLayout is the timestamp format of the place detail view
const detailTimeLayout = "Jan 02 2006 15:04:05"

// PlaceService handles business logic for single place visits
type PlaceService struct {
	places     PlaceStore
	activities ActivityStore
	loc        *time.Location
}

// NewPlaceService creates a new place service
func NewPlaceService(places PlaceStore, activities ActivityStore, loc *time.Location) *PlaceService {
	if loc == nil {
		loc = time.Local
	}
	return &PlaceService{places: places, activities: activities, loc: loc}
}

// GetPlaceDetail returns the detail view of a place, including the
// activities from the previous place of the same day through the end of
// this stay, the same labels its rendered point carries in a day route
func (s *PlaceService) GetPlaceDetail(ctx context.Context, id string) (*models.PlaceDetail, error) {
	p, err := s.places.GetPlaceByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get place: %w", err)
	}
	if p == nil {
		return nil, ErrPlaceNotFound
	}

	prev, err := s.places.GetPreviousPlace(ctx, *p)
	if err != nil {
		return nil, fmt.Errorf("failed to get previous place: %w", err)
	}

	// The first place of a day is drawn without activities, so its detail
	// shows none either
	modes := []models.ActivityMode{}
	if prev == nil || prev.Timestamp.Before(startOfDay(p.Timestamp.In(s.loc))) {
		return s.detail(p, modes), nil
	}

	start, end := prev.Timestamp, p.StayEnd()
	if start.Before(end) {
		activities, err := s.activities.GetActivities(ctx, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to get activities: %w", err)
		}
		modes = route.ActivitiesDuring(activities, start, end)
	}

	return s.detail(p, modes), nil
}

func (s *PlaceService) detail(p *models.PlaceVisit, modes []models.ActivityMode) *models.PlaceDetail {
	return &models.PlaceDetail{
		ID:              p.ID,
		Latitude:        p.Position.Latitude,
		Longitude:       p.Position.Longitude,
		DurationMinutes: p.DwellMinutes(),
		RadiusMeters:    p.RadiusMeters,
		Timestamp:       p.Timestamp.In(s.loc).Format(detailTimeLayout),
		Kind:            p.Kind,
		Activities:      modes,
	}
}
