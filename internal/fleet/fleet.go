// Package fleet holds the in-memory roster and routes, and keeps them in
// step with the flat-file stores. A Fleet is created once at startup and
// passed to every session.
package fleet

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"bus_tracker/internal/config"
	"bus_tracker/internal/models"
	"bus_tracker/internal/store"
)

// Stores groups the files a fleet persists to.
type Stores struct {
	Trips   *store.TripStateStore
	Routes  *store.RouteStore
	Buses   *store.BusRegistryStore
	History *store.TravelHistory
}

// NewStores lays the stores out in the configured data directory.
func NewStores(cfg config.Config) Stores {
	return Stores{
		Trips:   store.NewTripStateStore(cfg.TripStatePath(), cfg.TripStateAutoCreate),
		Routes:  store.NewRouteStore(cfg.RoutesPath()),
		Buses:   store.NewBusRegistryStore(cfg.BusRegistryPath()),
		History: store.NewTravelHistory(cfg.DataDir),
	}
}

// Fleet is the registry of buses and routes.
type Fleet struct {
	stores Stores
	buses  []*models.Bus
	routes []*models.Route
}

// New returns an empty fleet backed by stores.
func New(stores Stores) *Fleet {
	return &Fleet{stores: stores}
}

// Load reads routes and the roster, then restores each bus's travel history
// and in-progress trip. The fleet is always usable; the error reports what
// could not be read.
func Load(stores Stores) (*Fleet, error) {
	f := New(stores)
	var errs []error

	routes, err := stores.Routes.LoadAll()
	if err != nil {
		errs = append(errs, fmt.Errorf("load routes: %w", err))
	}
	f.routes = routes

	buses, err := stores.Buses.LoadAll()
	if err != nil {
		errs = append(errs, fmt.Errorf("load buses: %w", err))
	}
	f.buses = buses

	for _, b := range f.buses {
		history, err := stores.History.ReadAll(b.BusNumber)
		if err != nil {
			errs = append(errs, fmt.Errorf("load travel history of %s: %w", b.BusNumber, err))
			continue
		}
		b.TravelHistory = history
	}

	trips, err := stores.Trips.LoadAll()
	if err != nil {
		errs = append(errs, fmt.Errorf("load trip states: %w", err))
	}
	for _, ts := range trips {
		b := f.findBus(ts.BusNumber)
		if b == nil {
			logrus.WithField("bus_number", ts.BusNumber).Warn("trip state for unknown bus ignored")
			continue
		}
		b.ApplyTripState(ts)
	}

	logrus.WithFields(logrus.Fields{
		"routes": len(f.routes),
		"buses":  len(f.buses),
		"trips":  len(trips),
	}).Info("fleet loaded")
	return f, errors.Join(errs...)
}

// Buses returns the roster in registration order.
func (f *Fleet) Buses() []*models.Bus { return f.buses }

// Routes returns every route in store order.
func (f *Fleet) Routes() []*models.Route { return f.routes }

func (f *Fleet) findBus(busNumber string) *models.Bus {
	return models.FindBus(f.buses, busNumber)
}

// Bus looks a bus up by number, ignoring case.
func (f *Fleet) Bus(busNumber string) (*models.Bus, error) {
	if b := f.findBus(busNumber); b != nil {
		return b, nil
	}
	return nil, fmt.Errorf("%w: bus %q", models.ErrNotFound, busNumber)
}

// Route looks a route up by name, ignoring case.
func (f *Fleet) Route(name string) (*models.Route, error) {
	if r := models.FindRoute(f.routes, name); r != nil {
		return r, nil
	}
	return nil, fmt.Errorf("%w: route %q", models.ErrNotFound, name)
}

// AddBus registers b and saves the roster.
func (f *Fleet) AddBus(b *models.Bus) error {
	if f.findBus(b.BusNumber) != nil {
		return fmt.Errorf("%w: bus %q already exists", models.ErrValidation, b.BusNumber)
	}
	f.buses = append(f.buses, b)
	return f.SaveBuses()
}

// RemoveBus drops the bus from the roster and forgets its trip state.
func (f *Fleet) RemoveBus(busNumber string) (*models.Bus, error) {
	b, err := f.Bus(busNumber)
	if err != nil {
		return nil, err
	}
	i := slices.Index(f.buses, b)
	f.buses = slices.Delete(f.buses, i, i+1)
	return b, errors.Join(f.SaveBuses(), f.stores.Trips.Clear(b.BusNumber))
}

// AddRoute registers r and saves all routes.
func (f *Fleet) AddRoute(r *models.Route) error {
	if models.FindRoute(f.routes, r.Name) != nil {
		return fmt.Errorf("%w: route %q already exists", models.ErrValidation, r.Name)
	}
	f.routes = append(f.routes, r)
	return f.SaveRoutes()
}

// SaveBuses rewrites the roster.
func (f *Fleet) SaveBuses() error {
	return f.stores.Buses.SaveAll(f.buses)
}

// SaveRoutes rewrites every route.
func (f *Fleet) SaveRoutes() error {
	return f.stores.Routes.SaveAll(f.routes)
}

// RestoreTrip applies the stored trip state of b, if any.
func (f *Fleet) RestoreTrip(b *models.Bus) (bool, error) {
	ts, ok, err := f.stores.Trips.Load(b.BusNumber)
	if err != nil || !ok {
		return false, err
	}
	b.ApplyTripState(ts)
	logrus.WithFields(logrus.Fields{
		"bus_number": b.BusNumber,
		"on_route":   ts.IsOnRoute,
		"location":   ts.CurrentLocation,
		"route":      ts.RouteName,
		"reverse":    ts.IsReverse,
		"passengers": ts.CurrentPassengers,
		"traffic":    ts.Traffic.String(),
	}).Info("trip state restored")
	return true, nil
}

// SaveTrip persists the live trip of b.
func (f *Fleet) SaveTrip(b *models.Bus) error {
	return f.stores.Trips.Save(b.TripState())
}

// ClearTrip forgets the live trip of b.
func (f *Fleet) ClearTrip(b *models.Bus) error {
	return f.stores.Trips.Clear(b.BusNumber)
}

// RecordHistory appends record to the bus's history in memory and on disk.
func (f *Fleet) RecordHistory(b *models.Bus, record string) error {
	b.TravelHistory = append(b.TravelHistory, record)
	return f.stores.History.Append(b.BusNumber, record)
}

// History re-reads the bus's travel history from disk.
func (f *Fleet) History(b *models.Bus) ([]string, error) {
	history, err := f.stores.History.ReadAll(b.BusNumber)
	if err != nil {
		return b.TravelHistory, err
	}
	b.TravelHistory = history
	return history, nil
}

// DeleteHistory removes the bus's travel history.
func (f *Fleet) DeleteHistory(b *models.Bus) error {
	if err := f.stores.History.Delete(b.BusNumber); err != nil {
		return err
	}
	b.TravelHistory = nil
	return nil
}
