// Package route turns ordered place visits and activity samples into the
// points and path drawn on a map.
package route

import (
	"time"

	"github.com/jengzang/tracks-backend-go/internal/models"
)

// LargeIconCutoff is the dwell above which a point gets the large icon.
// It is independent of the user-selected dwell threshold.
const LargeIconCutoff = 15 * time.Minute

// Include reports whether a place with the given dwell passes the filter.
// A zero threshold shows everything; otherwise the threshold is an inclusive
// lower bound.
func Include(dwell, threshold time.Duration) bool {
	return threshold <= 0 || dwell >= threshold
}

// TierFor returns the icon tier for a rendered place
func TierFor(dwell time.Duration) models.IconTier {
	if dwell > LargeIconCutoff {
		return models.IconLarge
	}
	return models.IconSmall
}

// Build filters places by dwell threshold, annotates each kept place with the
// activities seen since the previous place, and builds the connecting path.
//
// The activity window of places[j] is [places[j-1].Timestamp,
// places[j].StayEnd()). Windows of neighbouring places overlap on the stay of
// places[j], so activity during that stay labels both point j and point j+1.
//
// Both inputs must be sorted by timestamp ascending. places[0] always anchors
// the path, whether or not it passes the filter itself.
func Build(places []models.PlaceVisit, activities []models.ActivityInterval, threshold time.Duration) models.Route {
	r := models.Route{
		Points: []models.RenderedPoint{},
		Path:   []models.Position{},
	}
	if len(places) == 0 {
		return r
	}

	first := places[0]
	r.Path = append(r.Path, first.Position)
	if Include(first.Dwell, threshold) {
		r.Points = append(r.Points, models.RenderedPoint{
			Place:      first,
			Activities: []models.ActivityMode{},
			Icon:       TierFor(first.Dwell),
		})
	}

	sc := newScanner(activities)
	for j := 1; j < len(places); j++ {
		prev, cur := places[j-1], places[j]
		modes := sc.modes(prev.Timestamp, cur.StayEnd())

		if !Include(cur.Dwell, threshold) {
			continue
		}
		r.Path = append(r.Path, cur.Position)
		r.Points = append(r.Points, models.RenderedPoint{
			Place:      cur,
			Activities: modes,
			Icon:       TierFor(cur.Dwell),
		})
	}

	return r
}

// ActivitiesDuring returns the distinct modes, in first-seen order, of the
// activity intervals overlapping [start, end)
func ActivitiesDuring(activities []models.ActivityInterval, start, end time.Time) []models.ActivityMode {
	return newScanner(activities).modes(start, end)
}

// scanner walks activity samples forward as windows move forward in time.
// Successive calls to modes must use non-decreasing start instants.
type scanner struct {
	activities []models.ActivityInterval
	cur        int
}

func newScanner(activities []models.ActivityInterval) *scanner {
	return &scanner{activities: activities}
}

func (s *scanner) modes(start, end time.Time) []models.ActivityMode {
	out := []models.ActivityMode{}
	if len(s.activities) == 0 || !start.Before(end) {
		return out
	}

	// Skip intervals that ended at or before start
	for s.cur+1 < len(s.activities) && !s.activities[s.cur+1].Timestamp.After(start) {
		s.cur++
	}

	seen := make(map[models.ActivityMode]struct{})
	for k := s.cur; k < len(s.activities); k++ {
		a := s.activities[k]
		if !a.Timestamp.Before(end) {
			break
		}
		if k+1 < len(s.activities) {
			next := s.activities[k+1].Timestamp
			// empty interval, or one that ended before the window
			if !next.After(a.Timestamp) || !next.After(start) {
				continue
			}
		}
		if _, dup := seen[a.Mode]; dup {
			continue
		}
		seen[a.Mode] = struct{}{}
		out = append(out, a.Mode)
	}
	return out
}
