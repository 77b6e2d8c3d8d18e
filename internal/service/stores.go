package service

import (
	"context"
	"time"

	"github.com/jengzang/tracks-backend-go/internal/models"
)

// PlaceStore is the storage the services need for place visits
type PlaceStore interface {
	GetPlaces(ctx context.Context, start, end time.Time) ([]models.PlaceVisit, error)
	GetPlaceByID(ctx context.Context, id string) (*models.PlaceVisit, error)
	GetPreviousPlace(ctx context.Context, p models.PlaceVisit) (*models.PlaceVisit, error)
	SavePlaces(ctx context.Context, places []models.PlaceVisit) error
}

// ActivityStore is the storage the services need for activity samples
type ActivityStore interface {
	GetActivities(ctx context.Context, start, end time.Time) ([]models.ActivityInterval, error)
	SaveActivities(ctx context.Context, activities []models.ActivityInterval) error
}
