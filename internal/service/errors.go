package service

import "errors"

// Errors returned by the services; handlers map them to HTTP status codes
var (
	ErrInvalidThreshold = errors.New("minimum stay must not be negative")
	ErrInvalidDay       = errors.New("day must be YYYY-MM-DD or all")
	ErrPlaceNotFound    = errors.New("place not found")
	ErrInvalidPlace     = errors.New("invalid place visit")
	ErrInvalidActivity  = errors.New("invalid activity sample")
)
