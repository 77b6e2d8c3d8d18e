package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jengzang/tracks-backend-go/internal/logger"
	"github.com/jengzang/tracks-backend-go/internal/models"
)

// IngestService stores place visits and activity samples reported by devices
type IngestService struct {
	places     PlaceStore
	activities ActivityStore
}

// NewIngestService creates a new ingest service
func NewIngestService(places PlaceStore, activities ActivityStore) *IngestService {
	return &IngestService{places: places, activities: activities}
}

// AddPlaces validates and stores place visits, returning their IDs in input order
func (s *IngestService) AddPlaces(ctx context.Context, reqs []models.PlaceVisitRequest) ([]string, error) {
	places := make([]models.PlaceVisit, 0, len(reqs))
	ids := make([]string, 0, len(reqs))

	for i, r := range reqs {
		p, err := toPlaceVisit(r)
		if err != nil {
			return nil, fmt.Errorf("place %d: %w", i, err)
		}
		places = append(places, p)
		ids = append(ids, p.ID)
	}

	if err := s.places.SavePlaces(ctx, places); err != nil {
		return nil, fmt.Errorf("failed to save places: %w", err)
	}

	logger.C(ctx).Info().Int("count", len(places)).Msg("places stored")
	return ids, nil
}

// AddActivities validates and stores activity samples
func (s *IngestService) AddActivities(ctx context.Context, reqs []models.ActivityRequest) (int, error) {
	activities := make([]models.ActivityInterval, 0, len(reqs))
	for i, r := range reqs {
		mode := models.ActivityMode(r.Mode)
		if !mode.Valid() {
			return 0, fmt.Errorf("activity %d: %w: unknown mode %q", i, ErrInvalidActivity, r.Mode)
		}
		activities = append(activities, models.ActivityInterval{
			Mode:      mode,
			Timestamp: time.Unix(r.Timestamp, 0).UTC(),
		})
	}

	if err := s.activities.SaveActivities(ctx, activities); err != nil {
		return 0, fmt.Errorf("failed to save activities: %w", err)
	}

	logger.C(ctx).Info().Int("count", len(activities)).Msg("activities stored")
	return len(activities), nil
}

func toPlaceVisit(r models.PlaceVisitRequest) (models.PlaceVisit, error) {
	if r.Latitude < -90 || r.Latitude > 90 || r.Longitude < -180 || r.Longitude > 180 {
		return models.PlaceVisit{}, fmt.Errorf("%w: coordinates out of range", ErrInvalidPlace)
	}
	if r.DwellSeconds < 0 || r.RadiusMeters < 0 {
		return models.PlaceVisit{}, fmt.Errorf("%w: negative dwell or radius", ErrInvalidPlace)
	}

	id := r.ID
	if id == "" {
		id = uuid.NewString()
	} else if _, err := uuid.Parse(id); err != nil {
		return models.PlaceVisit{}, fmt.Errorf("%w: id %q is not a UUID", ErrInvalidPlace, id)
	}

	kind := models.PlaceKindUnknown
	if r.Kind != "" {
		kind = models.PlaceKind(r.Kind)
		if !kind.Valid() {
			return models.PlaceVisit{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidPlace, r.Kind)
		}
	}

	return models.PlaceVisit{
		ID:           id,
		Position:     models.Position{Latitude: r.Latitude, Longitude: r.Longitude},
		RadiusMeters: r.RadiusMeters,
		Timestamp:    time.Unix(r.Timestamp, 0).UTC(),
		Dwell:        time.Duration(r.DwellSeconds) * time.Second,
		Kind:         kind,
	}, nil
}
