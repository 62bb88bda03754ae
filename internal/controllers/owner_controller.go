package controllers

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"bus_tracker/internal/fleet"
	"bus_tracker/internal/models"
)

// OwnerSession manages the fleet roster and routes. Callers open it only
// after the owner PIN has been checked.
type OwnerSession struct {
	fleet *fleet.Fleet
}

func NewOwnerSession(f *fleet.Fleet) *OwnerSession {
	return &OwnerSession{fleet: f}
}

// StopInput describes a stop entered by the owner.
type StopInput struct {
	Location string
	Distance float64
}

// BusInput describes a bus to register. NewRouteStops is only used when
// RouteName does not name an existing route.
type BusInput struct {
	BusNumber         string
	DriverName        string
	DriverPhoneNumber string
	AttendantName     string
	Capacity          int
	RouteName         string
	NewRouteStops     []StopInput
}

// RouteExists reports whether name names a known route.
func (o *OwnerSession) RouteExists(name string) bool {
	_, err := o.fleet.Route(name)
	return err == nil
}

// AddBus registers a bus, creating its route first when the route is new.
func (o *OwnerSession) AddBus(in BusInput) (*models.Bus, error) {
	bus, err := models.NewBus(in.BusNumber, in.RouteName, in.DriverName, in.DriverPhoneNumber, in.AttendantName, in.Capacity)
	if err != nil {
		return nil, err
	}
	if _, err := o.fleet.Bus(in.BusNumber); err == nil {
		return nil, fmt.Errorf("%w: bus with number %q already exists", models.ErrValidation, in.BusNumber)
	}

	route, err := o.fleet.Route(in.RouteName)
	if err != nil {
		if route, err = buildRoute(in.RouteName, in.NewRouteStops); err != nil {
			return nil, err
		}
		if err := o.fleet.AddRoute(route); err != nil {
			return nil, err
		}
		logrus.WithFields(logrus.Fields{
			"route": route.Name,
			"stops": len(route.Stops),
		}).Info("route created")
	}
	bus.UpdateRoute(route.Name)

	if err := o.fleet.AddBus(bus); err != nil {
		return bus, err
	}
	logrus.WithFields(logrus.Fields{
		"bus_number": bus.BusNumber,
		"route":      bus.Route,
		"capacity":   bus.Capacity,
	}).Info("bus added")
	return bus, nil
}

func buildRoute(name string, stops []StopInput) (*models.Route, error) {
	route, err := models.NewRoute(name)
	if err != nil {
		return nil, err
	}
	for _, s := range stops {
		if _, err := route.AddStop(s.Location, s.Distance); err != nil {
			return nil, err
		}
	}
	return route, nil
}

// RemoveBus deletes a bus from the roster.
func (o *OwnerSession) RemoveBus(busNumber string) error {
	bus, err := o.fleet.RemoveBus(busNumber)
	if bus != nil {
		logrus.WithField("bus_number", bus.BusNumber).Info("bus removed")
	}
	return err
}

// UpdateBusInfo replaces the crew details of a bus.
func (o *OwnerSession) UpdateBusInfo(busNumber, driverName, driverPhoneNumber, attendantName string) error {
	for _, f := range []struct{ name, value string }{
		{"driver name", driverName},
		{"driver phone number", driverPhoneNumber},
		{"attendant name", attendantName},
	} {
		if err := models.ValidateField(f.name, f.value); err != nil {
			return err
		}
	}
	bus, err := o.fleet.Bus(busNumber)
	if err != nil {
		return err
	}
	bus.DriverName = driverName
	bus.DriverPhoneNumber = driverPhoneNumber
	bus.AttendantName = attendantName
	return o.fleet.SaveBuses()
}

// MonitorAllBuses returns the tracking view of every bus.
func (o *OwnerSession) MonitorAllBuses() []BusStatus {
	return busStatuses(o.fleet.Buses())
}

// ViewTravelHistory returns the completed trips of a bus.
func (o *OwnerSession) ViewTravelHistory(busNumber string) ([]string, error) {
	bus, err := o.fleet.Bus(busNumber)
	if err != nil {
		return nil, err
	}
	return o.fleet.History(bus)
}

// DeleteTravelHistory erases the travel history of a bus.
func (o *OwnerSession) DeleteTravelHistory(busNumber string) error {
	bus, err := o.fleet.Bus(busNumber)
	if err != nil {
		return err
	}
	return o.fleet.DeleteHistory(bus)
}

// ReportEmergency notifies the authorities on behalf of the owner.
func (o *OwnerSession) ReportEmergency() EmergencyReport {
	logrus.Warn("owner reported an emergency")
	return newEmergencyReport("Emergency reported. Notifying authorities...")
}
