package stats

import (
	"time"
)

// DwellSummary aggregates a set of dwell durations, in minutes
type DwellSummary struct {
	Count   int
	Total   float64
	Median  float64
	P90     float64
	Longest float64
}

// SummarizeDwell computes the summary of the given dwell durations
func SummarizeDwell(dwells []time.Duration) DwellSummary {
	s := DwellSummary{Count: len(dwells)}
	if len(dwells) == 0 {
		return s
	}

	minutes := make([]float64, len(dwells))
	for i, d := range dwells {
		m := d.Minutes()
		minutes[i] = m
		s.Total += m
		if m > s.Longest {
			s.Longest = m
		}
	}
	s.Median = Median(minutes)
	s.P90 = Percentile(minutes, 90)
	return s
}
