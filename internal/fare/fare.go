// Package fare maps travelled distance to a fare using a flat band plus a per-km charge.
package fare

import "math"

// Policy describes the fare rule: Base covers the first FlatKm kilometres,
// every kilometre after that adds PerKm.
type Policy struct {
	Base   float64
	PerKm  float64
	FlatKm float64
}

// Default is the fleet-wide policy: 12.00 for up to 5 km, then 2.25 per km.
var Default = Policy{Base: 12, PerKm: 2.25, FlatKm: 5}

// Fare returns the fare for distanceKm. It never drops below Base.
func (p Policy) Fare(distanceKm float64) float64 {
	if distanceKm <= p.FlatKm {
		return p.Base
	}
	return math.Max(p.Base, p.Base+(distanceKm-p.FlatKm)*p.PerKm)
}

// Calculate applies the Default policy.
func Calculate(distanceKm float64) float64 {
	return Default.Fare(distanceKm)
}
