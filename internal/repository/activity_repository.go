package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jengzang/tracks-backend-go/internal/database"
	"github.com/jengzang/tracks-backend-go/internal/models"
)

// ActivityRepository handles database operations for activity samples
type ActivityRepository struct {
	db *sql.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// GetActivities retrieves the activity samples covering [start, end), oldest
// first. The sample already in effect at start is included.
func (r *ActivityRepository) GetActivities(ctx context.Context, start, end time.Time) ([]models.ActivityInterval, error) {
	query := `SELECT mode, timestamp
		FROM activity_intervals
		WHERE timestamp >= (
			SELECT COALESCE(MAX(timestamp), ?) FROM activity_intervals WHERE timestamp <= ?
		)
		AND timestamp < ?
		ORDER BY timestamp ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, start.Unix(), start.Unix(), end.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to query activity samples: %w", err)
	}
	defer rows.Close()

	activities := []models.ActivityInterval{}
	for rows.Next() {
		var (
			mode string
			ts   int64
		)
		if err := rows.Scan(&mode, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan activity sample: %w", err)
		}
		activities = append(activities, models.ActivityInterval{
			Mode:      models.ActivityMode(mode),
			Timestamp: time.Unix(ts, 0).UTC(),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activity samples: %w", err)
	}

	return activities, nil
}

// SaveActivities inserts activity samples in a single transaction
func (r *ActivityRepository) SaveActivities(ctx context.Context, activities []models.ActivityInterval) error {
	return database.Transaction(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO activity_intervals (mode, timestamp) VALUES (?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare activity insert: %w", err)
		}
		defer stmt.Close()

		for _, a := range activities {
			if _, err := stmt.ExecContext(ctx, string(a.Mode), a.Timestamp.Unix()); err != nil {
				return fmt.Errorf("failed to insert activity sample: %w", err)
			}
		}
		return nil
	})
}
