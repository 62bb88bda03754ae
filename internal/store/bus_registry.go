package store

import (
	"errors"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"bus_tracker/internal/models"
)

const busRegistryMinFields = 6

// BusRegistryStore keeps the fleet roster, one bus per line:
// busNumber,route,driverName,driverPhoneNumber,attendantName,capacity,traffic
//
// Passenger counts, location and route progress are not stored here; they
// live in the TripStateStore.
type BusRegistryStore struct {
	path string
}

func NewBusRegistryStore(path string) *BusRegistryStore {
	return &BusRegistryStore{path: path}
}

// LoadAll parses the roster. Short or invalid lines and repeated bus numbers
// are skipped.
func (s *BusRegistryStore) LoadAll() ([]*models.Bus, error) {
	lines, err := readLines(s.path)
	if isNotExist(err) {
		logrus.WithField("path", s.path).Info("bus registry not found, starting with an empty fleet")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var buses []*models.Bus
	for n, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		bus, err := decodeBus(line)
		if err == nil && models.FindBus(buses, bus.BusNumber) != nil {
			err = errors.New("duplicate bus number")
		}
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"path": s.path,
				"line": n + 1,
			}).Warn("skipping invalid bus data")
			continue
		}
		buses = append(buses, bus)
	}
	logrus.WithField("buses", len(buses)).Info("buses loaded")
	return buses, nil
}

// SaveAll overwrites the roster with buses.
func (s *BusRegistryStore) SaveAll(buses []*models.Bus) error {
	lines := make([]string, 0, len(buses))
	for _, b := range buses {
		lines = append(lines, strings.Join([]string{
			b.BusNumber,
			b.Route,
			b.DriverName,
			b.DriverPhoneNumber,
			b.AttendantName,
			strconv.Itoa(b.Capacity),
			b.Traffic.String(),
		}, ","))
	}
	if err := writeLines(s.path, lines); err != nil {
		return err
	}
	logrus.WithField("buses", len(buses)).Debug("buses saved")
	return nil
}

func decodeBus(line string) (*models.Bus, error) {
	fields := strings.Split(line, ",")
	if len(fields) < busRegistryMinFields {
		return nil, errors.New("expected at least 6 fields")
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if fields[0] == "" {
		return nil, errors.New("missing bus number")
	}
	capacity, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, err
	}
	if capacity <= 0 {
		return nil, errors.New("capacity must be greater than 0")
	}

	bus := &models.Bus{
		BusNumber:         fields[0],
		Route:             fields[1],
		DriverName:        fields[2],
		DriverPhoneNumber: fields[3],
		AttendantName:     fields[4],
		Capacity:          capacity,
		Traffic:           models.TrafficLight,
	}
	if len(fields) > busRegistryMinFields {
		bus.Traffic, _ = models.ParseTraffic(fields[6])
	}
	bus.SetLocation(models.LocationBusStation)
	return bus, nil
}
