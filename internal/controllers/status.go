package controllers

import (
	"fmt"

	"bus_tracker/internal/models"
)

const (
	DirectionFromTerminal = "From City Bus Terminal"
	DirectionToTerminal   = "To City Bus Terminal"
	NotOnTrip             = "Not on trip"
)

// BusStatus is the tracking view of one bus shown to commuters and owners.
type BusStatus struct {
	BusNumber         string
	Route             string
	Direction         string
	Capacity          int
	AvailableSeats    int
	CurrentLocation   string
	Traffic           string
	DriverName        string
	DriverPhoneNumber string
	AttendantName     string
}

func newBusStatus(b *models.Bus) BusStatus {
	status := BusStatus{
		BusNumber:         b.BusNumber,
		Route:             b.Route,
		Direction:         models.LocationBusStation,
		Capacity:          b.Capacity,
		AvailableSeats:    b.AvailableSeats(),
		CurrentLocation:   NotOnTrip,
		Traffic:           b.Traffic.String(),
		DriverName:        b.DriverName,
		DriverPhoneNumber: b.DriverPhoneNumber,
		AttendantName:     b.AttendantName,
	}
	if b.IsOnRoute {
		status.Direction = DirectionFromTerminal
		if b.IsReverse {
			status.Direction = DirectionToTerminal
		}
		status.CurrentLocation = fmt.Sprintf("%s at (%s)", b.CurrentLocation(), b.LastUpdatedTime.Format("03:04 PM"))
	}
	return status
}

func busStatuses(buses []*models.Bus) []BusStatus {
	out := make([]BusStatus, 0, len(buses))
	for _, b := range buses {
		out = append(out, newBusStatus(b))
	}
	return out
}
