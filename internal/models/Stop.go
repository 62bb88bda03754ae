package models

import "bus_tracker/internal/fare"

// Stop is a named point along a route. Distance is measured in km from the route origin.
type Stop struct {
	Location string
	Distance float64
	Fare     float64
}

// NewStop builds a stop priced by the default fare policy.
func NewStop(location string, distance float64) (Stop, error) {
	if err := ValidateField("stop location", location); err != nil {
		return Stop{}, err
	}
	if err := ValidateAmount("distance", distance); err != nil {
		return Stop{}, err
	}
	return Stop{Location: location, Distance: distance, Fare: fare.Calculate(distance)}, nil
}
