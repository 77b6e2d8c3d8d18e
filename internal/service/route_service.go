package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jengzang/tracks-backend-go/internal/logger"
	"github.com/jengzang/tracks-backend-go/internal/models"
	"github.com/jengzang/tracks-backend-go/internal/route"
	"github.com/jengzang/tracks-backend-go/internal/spatial"
	"github.com/jengzang/tracks-backend-go/internal/stats"
)

const dayLayout = "2006-01-02"

// timeFilterMinutes are the dwell presets offered to clients; 0 means all
var timeFilterMinutes = []int{10, 15, 30, 60, 0}

// RouteQuery selects the day and dwell threshold of one route draw
type RouteQuery struct {
	Day     time.Time // start of the selected day; ignored when All is set
	All     bool      // whole history window
	MinStay time.Duration
}

// RouteService draws filtered routes from stored places and activities
type RouteService struct {
	places      PlaceStore
	activities  ActivityStore
	loc         *time.Location
	historyDays int
	now         func() time.Time
}

// NewRouteService creates a new route service
func NewRouteService(places PlaceStore, activities ActivityStore, loc *time.Location, historyDays int) *RouteService {
	if loc == nil {
		loc = time.Local
	}
	if historyDays < 1 {
		historyDays = 10
	}
	return &RouteService{
		places:      places,
		activities:  activities,
		loc:         loc,
		historyDays: historyDays,
		now:         time.Now,
	}
}

// ParseQuery validates a route filter. An empty day selects today.
func (s *RouteService) ParseQuery(filter models.RouteFilter) (RouteQuery, error) {
	if filter.MinStay < 0 {
		return RouteQuery{}, ErrInvalidThreshold
	}
	q := RouteQuery{MinStay: time.Duration(filter.MinStay) * time.Minute}

	switch filter.Day {
	case models.DayAll:
		q.All = true
	case "":
		q.Day = startOfDay(s.now().In(s.loc))
	default:
		day, err := time.ParseInLocation(dayLayout, filter.Day, s.loc)
		if err != nil {
			return RouteQuery{}, fmt.Errorf("%w: %q", ErrInvalidDay, filter.Day)
		}
		q.Day = day
	}
	return q, nil
}

// DaySelections lists today and the six previous days, then "All"
func (s *RouteService) DaySelections(now time.Time) []models.DaySelection {
	today := startOfDay(now.In(s.loc))

	days := make([]models.DaySelection, 0, 8)
	for i := 0; i < 7; i++ {
		day := today.AddDate(0, 0, -i)
		name := day.Weekday().String()
		if i == 0 {
			name += " Today"
		}
		days = append(days, models.DaySelection{
			Name:  name + " " + day.Format(dayLayout),
			Value: day.Format(dayLayout),
			Day:   day,
		})
	}
	return append(days, models.DaySelection{Name: "All", Value: models.DayAll, All: true})
}

// Days lists the day selections for the current time
func (s *RouteService) Days() []models.DaySelection {
	return s.DaySelections(s.now())
}

// TimeFilters lists the dwell filter presets
func (s *RouteService) TimeFilters() []models.TimeFilterOption {
	out := make([]models.TimeFilterOption, 0, len(timeFilterMinutes))
	for _, m := range timeFilterMinutes {
		name := "All"
		if m > 0 {
			name = fmt.Sprintf("%d Minutes", m)
		}
		out = append(out, models.TimeFilterOption{Name: name, Minutes: m})
	}
	return out
}

// DrawRoute fetches the places and activities of the selection and builds the route
func (s *RouteService) DrawRoute(ctx context.Context, q RouteQuery) (*models.RouteResponse, error) {
	if q.MinStay < 0 {
		return nil, ErrInvalidThreshold
	}

	start, end := s.window(q)
	places, err := s.places.GetPlaces(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get places: %w", err)
	}

	var activities []models.ActivityInterval
	if len(places) > 0 {
		activities, err = s.activities.GetActivities(ctx, places[0].Timestamp, latestStayEnd(places))
		if err != nil {
			return nil, fmt.Errorf("failed to get activities: %w", err)
		}
	}

	r := route.Build(places, activities, q.MinStay)

	resp := &models.RouteResponse{
		Day:     models.DayAll,
		MinStay: int(q.MinStay / time.Minute),
		Route:   r,
		Summary: summarize(places, r),
	}
	if !q.All {
		resp.Day = q.Day.Format(dayLayout)
	}
	if len(r.Path) > 0 {
		center := r.Path[0]
		resp.Center = &center
	}
	if b, ok := spatial.BoundingBox(r.Path); ok {
		resp.Bounds = &b
	}

	logger.C(ctx).Debug().
		Str("day", resp.Day).
		Int("min_stay", resp.MinStay).
		Int("places", len(places)).
		Int("activities", len(activities)).
		Int("rendered", len(r.Points)).
		Msg("route drawn")

	return resp, nil
}

// window returns the [start, end) range of a query
func (s *RouteService) window(q RouteQuery) (time.Time, time.Time) {
	if q.All {
		now := s.now()
		return now.AddDate(0, 0, -s.historyDays), now
	}
	return q.Day, q.Day.AddDate(0, 0, 1)
}

func summarize(places []models.PlaceVisit, r models.Route) models.RouteSummary {
	dwells := make([]time.Duration, 0, len(r.Points))
	for _, p := range r.Points {
		dwells = append(dwells, p.Place.Dwell)
	}
	d := stats.SummarizeDwell(dwells)

	return models.RouteSummary{
		PlaceCount:          len(places),
		RenderedCount:       len(r.Points),
		PathLengthMeters:    spatial.PathLength(r.Path),
		TotalDwellMinutes:   d.Total,
		MedianDwellMinutes:  d.Median,
		P90DwellMinutes:     d.P90,
		LongestDwellMinutes: d.Longest,
	}
}

func latestStayEnd(places []models.PlaceVisit) time.Time {
	end := places[0].StayEnd()
	for _, p := range places[1:] {
		if e := p.StayEnd(); e.After(end) {
			end = e
		}
	}
	return end
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
