package models

import "time"

// RouteFilter represents query parameters for drawing a route
type RouteFilter struct {
	Day     string `form:"day"`                     // YYYY-MM-DD or "all"
	MinStay int    `form:"minStay" binding:"min=0"` // Minimum dwell in minutes, 0 shows everything
}

// DayAll selects the whole history window instead of a single day
const DayAll = "all"

// DaySelection is one entry of the day picker
type DaySelection struct {
	Name  string    `json:"name"`
	Value string    `json:"value"` // value to pass back as RouteFilter.Day
	Day   time.Time `json:"day,omitempty"`
	All   bool      `json:"all"`
}

// TimeFilterOption is one entry of the dwell filter picker
type TimeFilterOption struct {
	Name    string `json:"name"`
	Minutes int    `json:"minutes"`
}
