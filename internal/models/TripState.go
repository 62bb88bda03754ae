package models

import "time"

// TripState is the part of a bus that only matters while it runs a route.
// It is persisted apart from the roster, one record per bus.
type TripState struct {
	BusNumber         string
	IsOnRoute         bool
	CurrentLocation   string
	RouteName         string
	IsReverse         bool
	CurrentPassengers int
	Traffic           Traffic
	LastUpdatedTime   time.Time
}
