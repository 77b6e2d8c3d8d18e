package service

import (
	"context"
	"sort"
	"time"

	"github.com/jengzang/tracks-backend-go/internal/models"
)

// memStore is an in-memory PlaceStore and ActivityStore
type memStore struct {
	places     []models.PlaceVisit
	activities []models.ActivityInterval
	err        error
}

func (m *memStore) GetPlaces(_ context.Context, start, end time.Time) ([]models.PlaceVisit, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []models.PlaceVisit{}
	for _, p := range m.places {
		if !p.Timestamp.Before(start) && p.Timestamp.Before(end) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (m *memStore) GetPlaceByID(_ context.Context, id string) (*models.PlaceVisit, error) {
	for _, p := range m.places {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, m.err
}

func (m *memStore) GetPreviousPlace(_ context.Context, cur models.PlaceVisit) (*models.PlaceVisit, error) {
	var prev *models.PlaceVisit
	for _, p := range m.places {
		if p.Timestamp.Before(cur.Timestamp) && (prev == nil || p.Timestamp.After(prev.Timestamp)) {
			p := p
			prev = &p
		}
	}
	return prev, nil
}

func (m *memStore) SavePlaces(_ context.Context, places []models.PlaceVisit) error {
	if m.err != nil {
		return m.err
	}
	m.places = append(m.places, places...)
	return nil
}

func (m *memStore) GetActivities(_ context.Context, start, end time.Time) ([]models.ActivityInterval, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []models.ActivityInterval{}
	for i, a := range m.activities {
		inEffect := !a.Timestamp.After(start) && (i+1 == len(m.activities) || m.activities[i+1].Timestamp.After(start))
		if inEffect || (a.Timestamp.After(start) && a.Timestamp.Before(end)) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memStore) SaveActivities(_ context.Context, activities []models.ActivityInterval) error {
	if m.err != nil {
		return m.err
	}
	m.activities = append(m.activities, activities...)
	return nil
}
