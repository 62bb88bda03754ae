package store

import (
	"errors"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"bus_tracker/internal/models"
)

// RouteStore keeps every route as a block: the route name, one
// location,distance,fare line per stop, then the END sentinel.
type RouteStore struct {
	path string
}

func NewRouteStore(path string) *RouteStore {
	return &RouteStore{path: path}
}

// LoadAll parses every route block in file order. A missing file is an
// empty fleet; malformed stop lines are skipped.
func (s *RouteStore) LoadAll() ([]*models.Route, error) {
	lines, err := readLines(s.path)
	if isNotExist(err) {
		logrus.WithField("path", s.path).Info("route store not found, starting with no routes")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var (
		routes  []*models.Route
		current *models.Route
	)
	for n, line := range lines {
		switch {
		case line == models.RouteSentinel:
			if current != nil {
				routes = append(routes, current)
			}
			current = nil
		case current == nil:
			if strings.TrimSpace(line) == "" {
				continue
			}
			current = &models.Route{Name: line}
		default:
			stop, err := decodeStop(line)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"path":  s.path,
					"line":  n + 1,
					"route": current.Name,
				}).Warn("skipping malformed stop line")
				continue
			}
			current.Stops = append(current.Stops, stop)
		}
	}
	if current != nil {
		logrus.WithFields(logrus.Fields{
			"path":  s.path,
			"route": current.Name,
		}).Warn("route block not terminated, keeping it")
		routes = append(routes, current)
	}
	return routes, nil
}

// SaveAll overwrites the store with routes.
func (s *RouteStore) SaveAll(routes []*models.Route) error {
	var lines []string
	for _, r := range routes {
		lines = append(lines, r.Name)
		for _, stop := range r.Stops {
			lines = append(lines, encodeStop(stop))
		}
		lines = append(lines, models.RouteSentinel)
	}
	if err := writeLines(s.path, lines); err != nil {
		return err
	}
	logrus.WithField("routes", len(routes)).Debug("routes saved")
	return nil
}

func encodeStop(s models.Stop) string {
	return strings.Join([]string{
		s.Location,
		strconv.FormatFloat(s.Distance, 'f', -1, 64),
		strconv.FormatFloat(s.Fare, 'f', -1, 64),
	}, ",")
}

func decodeStop(line string) (models.Stop, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 3 {
		return models.Stop{}, errors.New("expected location,distance,fare")
	}
	distance, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return models.Stop{}, err
	}
	fare, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return models.Stop{}, err
	}
	if err := models.ValidateAmount("distance", distance); err != nil {
		return models.Stop{}, err
	}
	if err := models.ValidateAmount("fare", fare); err != nil {
		return models.Stop{}, err
	}
	return models.Stop{Location: fields[0], Distance: distance, Fare: fare}, nil
}
