package controllers

import (
	"github.com/sirupsen/logrus"

	"bus_tracker/internal/models"
)

// Routes returns every route.
func (o *OwnerSession) Routes() []*models.Route {
	return o.fleet.Routes()
}

// AddStop appends a stop to a route, priced from its distance to the origin.
func (o *OwnerSession) AddStop(routeName, location string, distance float64) (models.Stop, error) {
	route, err := o.fleet.Route(routeName)
	if err != nil {
		return models.Stop{}, err
	}
	stop, err := route.AddStop(location, distance)
	if err != nil {
		return models.Stop{}, err
	}
	logrus.WithFields(logrus.Fields{
		"route":    route.Name,
		"location": stop.Location,
		"fare":     stop.Fare,
	}).Info("stop added")
	return stop, o.fleet.SaveRoutes()
}

// RemoveStop deletes a stop from a route.
func (o *OwnerSession) RemoveStop(routeName, location string) error {
	route, err := o.fleet.Route(routeName)
	if err != nil {
		return err
	}
	if err := route.RemoveStop(location); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"route":    route.Name,
		"location": location,
	}).Info("stop removed")
	return o.fleet.SaveRoutes()
}

// AdjustFares reprices every stop of a route.
func (o *OwnerSession) AdjustFares(routeName string, baseFare, perKm float64) error {
	route, err := o.fleet.Route(routeName)
	if err != nil {
		return err
	}
	if err := route.AdjustFares(baseFare, perKm); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"route":  route.Name,
		"base":   baseFare,
		"per_km": perKm,
	}).Info("fares adjusted")
	return o.fleet.SaveRoutes()
}
