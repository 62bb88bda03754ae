package store

import (
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"bus_tracker/internal/models"
)

// tripStateMinFields is the shortest line that still identifies a trip:
// bus number, on-route flag, location and route name.
const tripStateMinFields = 4

// legacyTimeLayouts are accepted on read besides RFC 3339.
var legacyTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"1/2/2006 3:04:05 PM",
	"1/2/2006 15:04:05",
}

// TripStateStore keeps one line per bus that is on a route:
// busNumber,isOnRoute,currentLocation,routeName,isReverse,currentPassengers,traffic,lastUpdatedTime
type TripStateStore struct {
	path       string
	autoCreate bool
}

// NewTripStateStore returns a store backed by path. When autoCreate is false,
// Save does nothing until the file exists.
func NewTripStateStore(path string, autoCreate bool) *TripStateStore {
	return &TripStateStore{path: path, autoCreate: autoCreate}
}

// Path returns the backing file.
func (s *TripStateStore) Path() string { return s.path }

// Load returns the trip state of busNumber. When several lines match, the
// last one that parses wins.
func (s *TripStateStore) Load(busNumber string) (models.TripState, bool, error) {
	lines, err := readLines(s.path)
	if isNotExist(err) {
		logrus.WithField("path", s.path).Debug("trip state store not found, nothing to load")
		return models.TripState{}, false, nil
	}
	if err != nil {
		return models.TripState{}, false, err
	}

	var (
		found bool
		state models.TripState
	)
	for n, line := range lines {
		if lineKey(line) != busNumber {
			continue
		}
		ts, ok := s.decode(line, n+1)
		if !ok {
			continue
		}
		state, found = ts, true
	}
	return state, found, nil
}

// LoadAll returns every parsable trip state, one per bus, in file order.
func (s *TripStateStore) LoadAll() ([]models.TripState, error) {
	lines, err := readLines(s.path)
	if isNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var states []models.TripState
	for n, line := range lines {
		ts, ok := s.decode(line, n+1)
		if !ok {
			continue
		}
		if i, seen := index[ts.BusNumber]; seen {
			states[i] = ts
			continue
		}
		index[ts.BusNumber] = len(states)
		states = append(states, ts)
	}
	return states, nil
}

// Save rewrites the store with ts replacing the line of its bus, or appended
// when the bus has no line yet. Any duplicate lines for the bus are dropped.
func (s *TripStateStore) Save(ts models.TripState) error {
	lines, err := readLines(s.path)
	switch {
	case isNotExist(err) && !s.autoCreate:
		logrus.WithFields(logrus.Fields{
			"path":       s.path,
			"bus_number": ts.BusNumber,
		}).Warn("trip state store not found, state not saved")
		return nil
	case isNotExist(err):
		lines = nil
	case err != nil:
		return err
	}

	encoded := encodeTripState(ts)
	out := make([]string, 0, len(lines)+1)
	written := false
	for _, line := range lines {
		if lineKey(line) != ts.BusNumber {
			out = append(out, line)
			continue
		}
		if !written {
			out = append(out, encoded)
			written = true
		}
	}
	if !written {
		out = append(out, encoded)
	}

	if err := writeLines(s.path, out); err != nil {
		return err
	}
	logrus.WithField("bus_number", ts.BusNumber).Debug("trip state saved")
	return nil
}

// Clear removes the line of busNumber. A missing store is not an error.
func (s *TripStateStore) Clear(busNumber string) error {
	lines, err := readLines(s.path)
	if isNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if lineKey(line) != busNumber {
			out = append(out, line)
		}
	}
	if len(out) == len(lines) {
		return nil
	}
	if err := writeLines(s.path, out); err != nil {
		return err
	}
	logrus.WithField("bus_number", busNumber).Debug("trip state cleared")
	return nil
}

func lineKey(line string) string {
	key, _, _ := strings.Cut(line, ",")
	return key
}

func encodeTripState(ts models.TripState) string {
	return strings.Join([]string{
		ts.BusNumber,
		strconv.FormatBool(ts.IsOnRoute),
		ts.CurrentLocation,
		ts.RouteName,
		strconv.FormatBool(ts.IsReverse),
		strconv.Itoa(ts.CurrentPassengers),
		ts.Traffic.String(),
		ts.LastUpdatedTime.Format(time.RFC3339),
	}, ",")
}

// decode parses one line. Missing or invalid optional fields fall back to
// false, 0, Light and the current time; only short lines are rejected.
func (s *TripStateStore) decode(line string, lineNo int) (models.TripState, bool) {
	fields := strings.Split(line, ",")
	if len(fields) < tripStateMinFields || fields[0] == "" {
		if strings.TrimSpace(line) != "" {
			logrus.WithFields(logrus.Fields{
				"path": s.path,
				"line": lineNo,
			}).Warn("skipping malformed trip state line")
		}
		return models.TripState{}, false
	}

	ts := models.TripState{
		BusNumber:       fields[0],
		IsOnRoute:       parseBool(fields[1]),
		CurrentLocation: fields[2],
		RouteName:       fields[3],
		LastUpdatedTime: models.Now(),
	}
	if len(fields) > 4 {
		ts.IsReverse = parseBool(fields[4])
	}
	if len(fields) > 5 {
		if n, err := strconv.Atoi(strings.TrimSpace(fields[5])); err == nil && n >= 0 {
			ts.CurrentPassengers = n
		}
	}
	if len(fields) > 6 {
		ts.Traffic, _ = models.ParseTraffic(fields[6])
	}
	if len(fields) > 7 {
		if t, ok := parseTime(fields[7]); ok {
			ts.LastUpdatedTime = t
		}
	}
	return ts, true
}

// parseBool accepts anything strconv does, including "True"; the rest is false.
func parseBool(s string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && v
}

func parseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	for _, layout := range legacyTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
