package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"bus_tracker/internal/fleet"
	"bus_tracker/internal/models"
)

// AttendantSession drives one bus through a trip. Every change to the trip
// is written to the trip state store before returning.
type AttendantSession struct {
	fleet *fleet.Fleet
	bus   *models.Bus
}

// NewAttendantSession opens a session for busNumber and reloads its stored trip.
func NewAttendantSession(f *fleet.Fleet, busNumber string) (*AttendantSession, error) {
	bus, err := f.Bus(busNumber)
	if err != nil {
		return nil, err
	}
	if _, err := f.RestoreTrip(bus); err != nil {
		// The in-memory state from startup is still usable.
		logrus.WithError(err).WithField("bus_number", bus.BusNumber).Warn("could not reload trip state")
	}
	return &AttendantSession{fleet: f, bus: bus}, nil
}

// Bus returns the bus this session drives.
func (a *AttendantSession) Bus() *models.Bus { return a.bus }

// StopsFor lists the bus route's stops in the given direction.
func (a *AttendantSession) StopsFor(reverse bool) ([]models.Stop, error) {
	route, err := a.fleet.Route(a.bus.Route)
	if err != nil {
		return nil, err
	}
	return route.OrderedStops(reverse), nil
}

// StartRouteInput is what the attendant enters when starting a trip.
// StopIndex indexes the stops in travel order.
type StartRouteInput struct {
	Reverse   bool
	Boarding  int
	StopIndex int
}

// StartRouteResult reports the parts of a start that were only partly applied.
type StartRouteResult struct {
	StartedAt   time.Time
	Boarded     int
	BoardingErr error
	Location    string
	LocationErr error
}

// StartRoute puts the bus on its route. Rejected boarding or an unknown stop
// do not stop the trip: nobody boards, and the bus starts at the starting point.
func (a *AttendantSession) StartRoute(in StartRouteInput) (StartRouteResult, error) {
	b := a.bus
	if b.IsOnRoute {
		return StartRouteResult{}, fmt.Errorf("%w: route is already in progress", models.ErrValidation)
	}

	b.IsOnRoute = true
	b.IsReverse = in.Reverse
	b.LastUpdatedTime = models.Now()
	res := StartRouteResult{StartedAt: b.LastUpdatedTime}

	if err := b.BoardPassengers(in.Boarding); err != nil {
		res.BoardingErr = err
	} else {
		res.Boarded = in.Boarding
	}

	res.Location = models.LocationStartingPoint
	if route, err := a.fleet.Route(b.Route); err != nil {
		res.LocationErr = err
	} else if stops := b.StopsInTravelOrder(route); in.StopIndex < 0 || in.StopIndex >= len(stops) {
		res.LocationErr = fmt.Errorf("%w: stop %d is not on route %s", models.ErrValidation, in.StopIndex+1, route.Name)
	} else {
		res.Location = stops[in.StopIndex].Location
	}
	b.SetLocation(res.Location)

	logrus.WithFields(logrus.Fields{
		"bus_number": b.BusNumber,
		"route":      b.Route,
		"reverse":    b.IsReverse,
		"location":   res.Location,
		"passengers": b.CurrentPassengers,
	}).Info("route started")
	return res, a.fleet.SaveTrip(b)
}

// UpdateStatus moves the bus to a stop and, when traffic is set, records the
// traffic condition. Invalid input leaves the bus unchanged.
func (a *AttendantSession) UpdateStatus(stopIndex int, traffic *models.Traffic) error {
	b := a.bus
	if !b.IsOnRoute {
		return fmt.Errorf("%w: cannot update status, start the route first", models.ErrValidation)
	}
	route, err := a.fleet.Route(b.Route)
	if err != nil {
		return err
	}
	stops := b.StopsInTravelOrder(route)
	if stopIndex < 0 || stopIndex >= len(stops) {
		return fmt.Errorf("%w: stop %d is not on route %s", models.ErrValidation, stopIndex+1, route.Name)
	}
	if traffic != nil && !traffic.Valid() {
		return fmt.Errorf("%w: unknown traffic condition", models.ErrValidation)
	}

	b.SetLocation(stops[stopIndex].Location)
	if traffic != nil {
		b.Traffic = *traffic
	}
	logrus.WithFields(logrus.Fields{
		"bus_number": b.BusNumber,
		"location":   b.CurrentLocation(),
		"traffic":    b.Traffic.String(),
	}).Info("bus status updated")
	return a.fleet.SaveTrip(b)
}

// Board boards n passengers, all or none.
func (a *AttendantSession) Board(n int) error {
	if err := a.requireOnRoute(); err != nil {
		return err
	}
	if err := a.bus.BoardPassengers(n); err != nil {
		return err
	}
	return a.fleet.SaveTrip(a.bus)
}

// Alight lets n passengers off, all or none.
func (a *AttendantSession) Alight(n int) error {
	if err := a.requireOnRoute(); err != nil {
		return err
	}
	if err := a.bus.AlightPassengers(n); err != nil {
		return err
	}
	return a.fleet.SaveTrip(a.bus)
}

// EndRoute finishes the trip, logs it to the travel history and forgets the trip state.
func (a *AttendantSession) EndRoute() error {
	b := a.bus
	if !b.IsOnRoute {
		return fmt.Errorf("%w: no route in progress to end", models.ErrValidation)
	}

	b.IsOnRoute = false
	b.IsReverse = false
	record := fmt.Sprintf("Completed route %s at %s", b.Route, models.Now().Format(time.RFC3339))
	historyErr := a.fleet.RecordHistory(b, record)
	b.SetLocation(models.LocationBusStation)

	logrus.WithFields(logrus.Fields{
		"bus_number": b.BusNumber,
		"route":      b.Route,
	}).Info("route ended")
	return errors.Join(historyErr, a.fleet.ClearTrip(b))
}

func (a *AttendantSession) requireOnRoute() error {
	if !a.bus.IsOnRoute {
		return fmt.Errorf("%w: route is not in progress, start the route first", models.ErrValidation)
	}
	return nil
}

// ReportEmergency reports a breakdown of the bus.
func (a *AttendantSession) ReportEmergency() EmergencyReport {
	logrus.WithField("bus_number", a.bus.BusNumber).Warn("breakdown reported")
	return newEmergencyReport("Breakdown reported. Assistance will be dispatched.")
}
