package models

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"bus_tracker/internal/fare"
)

// Route is an ordered list of stops. Insertion order is the outbound direction;
// the inbound direction is the same list reversed and is never stored.
type Route struct {
	Name  string
	Stops []Stop
}

func NewRoute(name string) (*Route, error) {
	if err := ValidateRouteName(name); err != nil {
		return nil, err
	}
	return &Route{Name: name}, nil
}

// AddStop appends a stop priced from its distance to the origin.
func (r *Route) AddStop(location string, distance float64) (Stop, error) {
	stop, err := NewStop(location, distance)
	if err != nil {
		return Stop{}, err
	}
	r.Stops = append(r.Stops, stop)
	return stop, nil
}

// RemoveStop deletes the first stop whose location matches, ignoring case.
func (r *Route) RemoveStop(location string) error {
	for i, s := range r.Stops {
		if strings.EqualFold(s.Location, location) {
			r.Stops = slices.Delete(r.Stops, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("%w: stop %q on route %q", ErrNotFound, location, r.Name)
}

// AdjustFares reprices every stop with a new base fare and per-km charge past the flat band.
func (r *Route) AdjustFares(baseFare, perKm float64) error {
	if err := ValidateAmount("base fare", baseFare); err != nil {
		return err
	}
	if err := ValidateAmount("fare per km", perKm); err != nil {
		return err
	}
	policy := fare.Policy{Base: baseFare, PerKm: perKm, FlatKm: fare.Default.FlatKm}
	for i := range r.Stops {
		r.Stops[i].Fare = policy.Fare(r.Stops[i].Distance)
	}
	return nil
}

// OrderedStops returns a copy of the stops in travel order.
func (r *Route) OrderedStops(reverse bool) []Stop {
	stops := slices.Clone(r.Stops)
	if reverse {
		slices.Reverse(stops)
	}
	return stops
}

// FindRoute looks a route up by name, ignoring case.
func FindRoute(routes []*Route, name string) *Route {
	for _, r := range routes {
		if equalFold(r.Name, name) {
			return r
		}
	}
	return nil
}

// FareBetween prices a ride between two indexes of a travel-ordered stop list.
// The destination must come strictly after the origin.
func FareBetween(stops []Stop, start, end int) (float64, error) {
	if start < 0 || start >= len(stops) || end < 0 || end >= len(stops) {
		return 0, fmt.Errorf("%w: stop selection out of range", ErrValidation)
	}
	if end <= start {
		return 0, fmt.Errorf("%w: destination must be after the starting point", ErrValidation)
	}
	return fare.Calculate(math.Abs(stops[end].Distance - stops[start].Distance)), nil
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
