package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jengzang/tracks-backend-go/internal/database"
	"github.com/jengzang/tracks-backend-go/internal/models"
)

const placeColumns = `id, latitude, longitude, radius_meters, timestamp, dwell_seconds, kind`

// PlaceRepository handles database operations for place visits
type PlaceRepository struct {
	db *sql.DB
}

// NewPlaceRepository creates a new place repository
func NewPlaceRepository(db *sql.DB) *PlaceRepository {
	return &PlaceRepository{db: db}
}

// GetPlaces retrieves place visits with start <= timestamp < end, oldest first
func (r *PlaceRepository) GetPlaces(ctx context.Context, start, end time.Time) ([]models.PlaceVisit, error) {
	query := `SELECT ` + placeColumns + `
		FROM place_visits
		WHERE timestamp >= ? AND timestamp < ?
		ORDER BY timestamp ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, start.Unix(), end.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to query place visits: %w", err)
	}
	defer rows.Close()

	places := []models.PlaceVisit{}
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan place visit: %w", err)
		}
		places = append(places, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate place visits: %w", err)
	}

	return places, nil
}

// GetPlaceByID retrieves a single place visit by ID
func (r *PlaceRepository) GetPlaceByID(ctx context.Context, id string) (*models.PlaceVisit, error) {
	query := `SELECT ` + placeColumns + ` FROM place_visits WHERE id = ?`

	p, err := scanPlace(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get place visit: %w", err)
	}

	return &p, nil
}

// GetPreviousPlace retrieves the visit stored immediately before p
func (r *PlaceRepository) GetPreviousPlace(ctx context.Context, p models.PlaceVisit) (*models.PlaceVisit, error) {
	query := `SELECT ` + placeColumns + `
		FROM place_visits
		WHERE timestamp < ? OR (timestamp = ? AND id < ?)
		ORDER BY timestamp DESC, id DESC
		LIMIT 1`

	ts := p.Timestamp.Unix()
	prev, err := scanPlace(r.db.QueryRowContext(ctx, query, ts, ts, p.ID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get previous place visit: %w", err)
	}

	return &prev, nil
}

// SavePlaces inserts or replaces place visits in a single transaction
func (r *PlaceRepository) SavePlaces(ctx context.Context, places []models.PlaceVisit) error {
	query := `INSERT INTO place_visits (` + placeColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			radius_meters = excluded.radius_meters,
			timestamp = excluded.timestamp,
			dwell_seconds = excluded.dwell_seconds,
			kind = excluded.kind`

	return database.Transaction(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, query)
		if err != nil {
			return fmt.Errorf("failed to prepare place insert: %w", err)
		}
		defer stmt.Close()

		for _, p := range places {
			_, err := stmt.ExecContext(ctx,
				p.ID, p.Position.Latitude, p.Position.Longitude, p.RadiusMeters,
				p.Timestamp.Unix(), p.DwellSeconds(), string(p.Kind),
			)
			if err != nil {
				return fmt.Errorf("failed to insert place visit %s: %w", p.ID, err)
			}
		}
		return nil
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlace(row rowScanner) (models.PlaceVisit, error) {
	var (
		p     models.PlaceVisit
		ts    int64
		dwell int64
		kind  string
	)
	err := row.Scan(
		&p.ID, &p.Position.Latitude, &p.Position.Longitude, &p.RadiusMeters,
		&ts, &dwell, &kind,
	)
	if err != nil {
		return p, err
	}

	p.Timestamp = time.Unix(ts, 0).UTC()
	p.Dwell = time.Duration(dwell) * time.Second
	p.Kind = models.PlaceKind(kind)
	return p, nil
}
