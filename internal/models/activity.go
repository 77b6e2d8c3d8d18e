package models

import "time"

// ActivityMode is an inferred motion mode
type ActivityMode string

// ActivityMode constants
const (
	ActivityIdle       ActivityMode = "IDLE"
	ActivityStationary ActivityMode = "STATIONARY"
	ActivityWalking    ActivityMode = "WALKING"
	ActivityRunning    ActivityMode = "RUNNING"
	ActivityBiking     ActivityMode = "BIKING"
	ActivityInVehicle  ActivityMode = "IN_VEHICLE"
	ActivityMoving     ActivityMode = "MOVING"
	ActivityUnknown    ActivityMode = "UNKNOWN"
)

// Valid reports whether m is one of the known activity modes
func (m ActivityMode) Valid() bool {
	switch m {
	case ActivityIdle, ActivityStationary, ActivityWalking, ActivityRunning,
		ActivityBiking, ActivityInVehicle, ActivityMoving, ActivityUnknown:
		return true
	}
	return false
}

// ActivityInterval is a timestamped activity sample. The sample holds until
// the next sample's timestamp, so consecutive samples form half-open
// intervals [Timestamp_k, Timestamp_k+1).
type ActivityInterval struct {
	Mode      ActivityMode `json:"mode"`
	Timestamp time.Time    `json:"timestamp"`
}
