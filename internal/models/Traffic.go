package models

import "strings"

// Traffic is the road condition an attendant reports for the bus.
type Traffic int

const (
	TrafficLight Traffic = iota
	TrafficModerate
	TrafficHeavy
)

var trafficNames = [...]string{"Light", "Moderate", "Heavy"}

// Traffics lists every condition in menu order.
func Traffics() []Traffic {
	return []Traffic{TrafficLight, TrafficModerate, TrafficHeavy}
}

func (t Traffic) String() string {
	if t.Valid() {
		return trafficNames[t]
	}
	return trafficNames[TrafficLight]
}

// Valid reports whether t is one of the defined conditions.
func (t Traffic) Valid() bool {
	return t >= TrafficLight && t <= TrafficHeavy
}

// ParseTraffic decodes a stored traffic name, case-insensitively.
// Unknown or empty values decode to TrafficLight and ok is false.
func ParseTraffic(s string) (t Traffic, ok bool) {
	s = strings.TrimSpace(s)
	for i, name := range trafficNames {
		if strings.EqualFold(s, name) {
			return Traffic(i), true
		}
	}
	return TrafficLight, false
}
