package models

import (
	"fmt"
	"time"
)

const (
	// LocationBusStation is where a bus sits when it is not running a route.
	LocationBusStation = "Bus Station"
	// LocationStartingPoint is used when the stop of a started route cannot be resolved.
	LocationStartingPoint = "Starting Point"
)

// Now is the clock used for location timestamps.
var Now = time.Now

// Bus is the live state of one vehicle. Route holds a route name only; the
// route itself is owned by the fleet and looked up on demand.
type Bus struct {
	BusNumber         string
	Route             string
	DriverName        string
	DriverPhoneNumber string
	AttendantName     string
	Capacity          int
	CurrentPassengers int
	Traffic           Traffic
	IsOnRoute         bool
	IsReverse         bool
	LastUpdatedTime   time.Time
	TravelHistory     []string

	currentLocation string
}

// NewBus validates the roster fields and parks the bus at the bus station.
func NewBus(busNumber, route, driverName, driverPhoneNumber, attendantName string, capacity int) (*Bus, error) {
	if err := ValidateBusNumber(busNumber); err != nil {
		return nil, err
	}
	if err := ValidateRouteName(route); err != nil {
		return nil, err
	}
	for _, f := range []struct{ name, value string }{
		{"driver name", driverName},
		{"driver phone number", driverPhoneNumber},
		{"attendant name", attendantName},
	} {
		if err := ValidateField(f.name, f.value); err != nil {
			return nil, err
		}
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be greater than 0", ErrValidation)
	}

	b := &Bus{
		BusNumber:         busNumber,
		Route:             route,
		DriverName:        driverName,
		DriverPhoneNumber: driverPhoneNumber,
		AttendantName:     attendantName,
		Capacity:          capacity,
		Traffic:           TrafficLight,
	}
	b.SetLocation(LocationBusStation)
	return b, nil
}

// CurrentLocation returns the last location written with SetLocation.
func (b *Bus) CurrentLocation() string {
	return b.currentLocation
}

// SetLocation moves the bus and stamps LastUpdatedTime.
func (b *Bus) SetLocation(location string) {
	b.currentLocation = location
	b.LastUpdatedTime = Now()
}

// UpdateRoute reassigns the route name without checking that the route exists.
func (b *Bus) UpdateRoute(route string) {
	b.Route = route
}

// AvailableSeats returns how many more passengers can board.
func (b *Bus) AvailableSeats() int {
	if free := b.Capacity - b.CurrentPassengers; free > 0 {
		return free
	}
	return 0
}

// BoardPassengers boards all n passengers or none of them.
func (b *Bus) BoardPassengers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: passenger count cannot be negative", ErrValidation)
	}
	if b.CurrentPassengers+n > b.Capacity {
		return fmt.Errorf("%w: cannot board %d passengers, only %d seats available",
			ErrValidation, n, b.AvailableSeats())
	}
	b.CurrentPassengers += n
	return nil
}

// AlightPassengers removes all n passengers or none of them.
func (b *Bus) AlightPassengers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: passenger count cannot be negative", ErrValidation)
	}
	if n > b.CurrentPassengers {
		return fmt.Errorf("%w: cannot alight %d passengers, only %d passengers on board",
			ErrValidation, n, b.CurrentPassengers)
	}
	b.CurrentPassengers -= n
	return nil
}

// StopsInTravelOrder returns the route's stops in the bus's current direction.
func (b *Bus) StopsInTravelOrder(route *Route) []Stop {
	if route == nil {
		return nil
	}
	return route.OrderedStops(b.IsReverse)
}

// TripState snapshots the fields persisted while the bus is on a route.
func (b *Bus) TripState() TripState {
	return TripState{
		BusNumber:         b.BusNumber,
		IsOnRoute:         b.IsOnRoute,
		CurrentLocation:   b.currentLocation,
		RouteName:         b.Route,
		IsReverse:         b.IsReverse,
		CurrentPassengers: b.CurrentPassengers,
		Traffic:           b.Traffic,
		LastUpdatedTime:   b.LastUpdatedTime,
	}
}

// ApplyTripState restores a persisted trip onto the bus. The stored timestamp
// wins over the one SetLocation would stamp, and the passenger count is
// clamped to the bus capacity.
func (b *Bus) ApplyTripState(ts TripState) {
	b.IsOnRoute = ts.IsOnRoute
	b.currentLocation = ts.CurrentLocation
	b.UpdateRoute(ts.RouteName)
	b.IsReverse = ts.IsReverse
	b.CurrentPassengers = min(max(ts.CurrentPassengers, 0), b.Capacity)
	b.Traffic = ts.Traffic
	b.LastUpdatedTime = ts.LastUpdatedTime
}

// FindBus looks a bus up by number, ignoring case.
func FindBus(buses []*Bus, busNumber string) *Bus {
	for _, b := range buses {
		if equalFold(b.BusNumber, busNumber) {
			return b
		}
	}
	return nil
}
