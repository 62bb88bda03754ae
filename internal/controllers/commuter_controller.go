package controllers

import (
	"bus_tracker/internal/fleet"
	"bus_tracker/internal/models"
)

// CommuterSession is read-only access to the fleet for riders.
type CommuterSession struct {
	fleet *fleet.Fleet
}

func NewCommuterSession(f *fleet.Fleet) *CommuterSession {
	return &CommuterSession{fleet: f}
}

// TrackBus returns the tracking view of one bus.
func (c *CommuterSession) TrackBus(busNumber string) (BusStatus, error) {
	bus, err := c.fleet.Bus(busNumber)
	if err != nil {
		return BusStatus{}, err
	}
	return newBusStatus(bus), nil
}

// TrackAllBuses returns the tracking view of every bus.
func (c *CommuterSession) TrackAllBuses() []BusStatus {
	return busStatuses(c.fleet.Buses())
}

// Routes returns every route.
func (c *CommuterSession) Routes() []*models.Route {
	return c.fleet.Routes()
}

// StopsFor lists the stops of the bus's route in the bus's current direction.
func (c *CommuterSession) StopsFor(busNumber string) ([]models.Stop, error) {
	bus, err := c.fleet.Bus(busNumber)
	if err != nil {
		return nil, err
	}
	route, err := c.fleet.Route(bus.Route)
	if err != nil {
		return nil, err
	}
	return bus.StopsInTravelOrder(route), nil
}

// FareQuote is the fare for one ride.
type FareQuote struct {
	From     string
	To       string
	Distance float64
	Fare     float64
}

// CalculateFare prices a ride on busNumber between two stop indexes in the
// bus's direction of travel.
func (c *CommuterSession) CalculateFare(busNumber string, start, end int) (FareQuote, error) {
	stops, err := c.StopsFor(busNumber)
	if err != nil {
		return FareQuote{}, err
	}
	fare, err := models.FareBetween(stops, start, end)
	if err != nil {
		return FareQuote{}, err
	}
	from, to := stops[start], stops[end]
	distance := to.Distance - from.Distance
	if distance < 0 {
		distance = -distance
	}
	return FareQuote{From: from.Location, To: to.Location, Distance: distance, Fare: fare}, nil
}

// ReportEmergency records an emergency raised by a commuter.
func (c *CommuterSession) ReportEmergency() EmergencyReport {
	return newEmergencyReport("Commuter has reported an emergency.")
}
