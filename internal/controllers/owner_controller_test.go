package controllers

import (
	"errors"
	"math"
	"testing"

	"bus_tracker/internal/models"
)

func TestAddBus_ExistingRoute(t *testing.T) {
	env := newTestEnv(t)
	owner := NewOwnerSession(env.fleet)

	bus, err := owner.AddBus(BusInput{
		BusNumber: "B-2", DriverName: "Pedro", DriverPhoneNumber: "0918",
		AttendantName: "Lita", Capacity: 30, RouteName: "cityline",
	})
	if err != nil {
		t.Fatalf("AddBus() error = %v", err)
	}
	if bus.Route != "CityLine" {
		t.Errorf("Route = %q, want the existing route's name", bus.Route)
	}
	if len(owner.Routes()) != 1 {
		t.Errorf("Routes() = %d, want 1", len(owner.Routes()))
	}

	reloaded := env.reload(t)
	if len(reloaded.Buses()) != 2 {
		t.Errorf("reloaded %d buses, want 2", len(reloaded.Buses()))
	}
}

func TestAddBus_Rejections(t *testing.T) {
	env := newTestEnv(t)
	owner := NewOwnerSession(env.fleet)
	base := BusInput{BusNumber: "B-9", DriverName: "Pedro", DriverPhoneNumber: "0918", AttendantName: "Lita", Capacity: 30, RouteName: "New Line"}

	tests := []struct {
		name   string
		mutate func(*BusInput)
	}{
		{"duplicate", func(in *BusInput) { in.BusNumber = "b-1" }},
		{"zero capacity", func(in *BusInput) { in.Capacity = 0 }},
		{"comma in driver", func(in *BusInput) { in.DriverName = "Cruz, Juan" }},
		{"padded bus number", func(in *BusInput) { in.BusNumber = " B-9" }},
		{"negative stop distance", func(in *BusInput) { in.NewRouteStops = []StopInput{{"X", -2}} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mutate(&in)
			if _, err := owner.AddBus(in); !errors.Is(err, models.ErrValidation) {
				t.Errorf("AddBus() error = %v, want ErrValidation", err)
			}
		})
	}
	if len(owner.Routes()) != 1 || len(env.fleet.Buses()) != 1 {
		t.Errorf("rejected input changed the fleet: %d routes, %d buses", len(owner.Routes()), len(env.fleet.Buses()))
	}
}

func TestUpdateBusInfoAndRemove(t *testing.T) {
	env := newTestEnv(t)
	owner := NewOwnerSession(env.fleet)

	if err := owner.UpdateBusInfo("b-1", "Maria", "0919", "Ben"); err != nil {
		t.Fatalf("UpdateBusInfo() error = %v", err)
	}
	if err := owner.UpdateBusInfo("B-1", "", "0919", "Ben"); !errors.Is(err, models.ErrValidation) {
		t.Errorf("UpdateBusInfo() with empty driver error = %v, want ErrValidation", err)
	}
	if err := owner.UpdateBusInfo("B-7", "Maria", "0919", "Ben"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("UpdateBusInfo() unknown bus error = %v, want ErrNotFound", err)
	}
	bus, _ := env.reload(t).Bus("B-1")
	if bus.DriverName != "Maria" || bus.AttendantName != "Ben" {
		t.Errorf("reloaded bus = %+v", bus)
	}

	if err := owner.RemoveBus("B-1"); err != nil {
		t.Fatalf("RemoveBus() error = %v", err)
	}
	if err := owner.RemoveBus("B-1"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("RemoveBus() twice error = %v, want ErrNotFound", err)
	}
}

func TestTravelHistoryManagement(t *testing.T) {
	env := newTestEnv(t)
	owner := NewOwnerSession(env.fleet)
	att, _ := NewAttendantSession(env.fleet, "B-1")
	for i := 0; i < 2; i++ {
		if _, err := att.StartRoute(StartRouteInput{}); err != nil {
			t.Fatal(err)
		}
		if err := att.EndRoute(); err != nil {
			t.Fatal(err)
		}
	}

	history, err := owner.ViewTravelHistory("B-1")
	if err != nil || len(history) != 2 {
		t.Fatalf("ViewTravelHistory() = %v, %v", history, err)
	}
	if err := owner.DeleteTravelHistory("B-1"); err != nil {
		t.Fatalf("DeleteTravelHistory() error = %v", err)
	}
	if err := owner.DeleteTravelHistory("B-1"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("DeleteTravelHistory() twice error = %v, want ErrNotFound", err)
	}
	if _, err := owner.ViewTravelHistory("B-404"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("ViewTravelHistory() unknown bus error = %v, want ErrNotFound", err)
	}
}

func TestRouteManagement(t *testing.T) {
	env := newTestEnv(t)
	owner := NewOwnerSession(env.fleet)

	stop, err := owner.AddStop("cityline", "D", 13)
	if err != nil {
		t.Fatalf("AddStop() error = %v", err)
	}
	if math.Abs(stop.Fare-30) > 1e-9 {
		t.Errorf("stop fare = %v, want 30", stop.Fare)
	}
	if _, err := owner.AddStop("Nowhere", "D", 1); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("AddStop() unknown route error = %v, want ErrNotFound", err)
	}
	if err := owner.RemoveStop("CityLine", "b"); err != nil {
		t.Fatalf("RemoveStop() error = %v", err)
	}
	if err := owner.AdjustFares("CityLine", 15, 3); err != nil {
		t.Fatalf("AdjustFares() error = %v", err)
	}

	route, err := env.reload(t).Route("CityLine")
	if err != nil {
		t.Fatal(err)
	}
	wantLoc := []string{"A", "C", "D"}
	wantFare := []float64{15, 27, 39}
	if len(route.Stops) != 3 {
		t.Fatalf("reloaded stops = %+v", route.Stops)
	}
	for i, s := range route.Stops {
		if s.Location != wantLoc[i] || math.Abs(s.Fare-wantFare[i]) > 1e-9 {
			t.Errorf("stop %d = %+v, want %s at %v", i, s, wantLoc[i], wantFare[i])
		}
	}
}

func TestMonitorAllBuses(t *testing.T) {
	env := newTestEnv(t)
	owner := NewOwnerSession(env.fleet)
	statuses := owner.MonitorAllBuses()
	if len(statuses) != 1 {
		t.Fatalf("MonitorAllBuses() = %d statuses", len(statuses))
	}
	if statuses[0].Direction != models.LocationBusStation || statuses[0].CurrentLocation != NotOnTrip {
		t.Errorf("idle status = %+v", statuses[0])
	}
}
