package models

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func fixedClock(t *testing.T, ts time.Time) {
	t.Helper()
	prev := Now
	Now = func() time.Time { return ts }
	t.Cleanup(func() { Now = prev })
}

func newTestBus(t *testing.T, capacity int) *Bus {
	t.Helper()
	b, err := NewBus("B-101", "CityLine", "Juan Cruz", "09171234567", "Ana Reyes", capacity)
	if err != nil {
		t.Fatalf("NewBus() error = %v", err)
	}
	return b
}

func TestNewBus_Defaults(t *testing.T) {
	at := time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)
	fixedClock(t, at)

	b := newTestBus(t, 40)
	if b.CurrentLocation() != LocationBusStation {
		t.Errorf("CurrentLocation() = %q, want %q", b.CurrentLocation(), LocationBusStation)
	}
	if b.Traffic != TrafficLight {
		t.Errorf("Traffic = %v, want Light", b.Traffic)
	}
	if !b.LastUpdatedTime.Equal(at) {
		t.Errorf("LastUpdatedTime = %v, want %v", b.LastUpdatedTime, at)
	}
}

func TestNewBus_Validation(t *testing.T) {
	tests := []struct {
		name      string
		busNumber string
		route     string
		driver    string
		capacity  int
	}{
		{"empty bus number", "", "CityLine", "Juan", 40},
		{"comma in bus number", "B,1", "CityLine", "Juan", 40},
		{"path in bus number", "../B1", "CityLine", "Juan", 40},
		{"sentinel route", "B1", "END", "Juan", 40},
		{"blank driver", "B1", "CityLine", "  ", 40},
		{"padded bus number", " B1", "CityLine", "Juan", 40},
		{"padded route", "B1", "CityLine ", "Juan", 40},
		{"padded driver", "B1", "CityLine", "Juan\t", 40},
		{"zero capacity", "B1", "CityLine", "Juan", 0},
		{"negative capacity", "B1", "CityLine", "Juan", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBus(tt.busNumber, tt.route, tt.driver, "0917", "Ana", tt.capacity)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("NewBus() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestBoardPassengers_AllOrNothing(t *testing.T) {
	b := newTestBus(t, 40)
	b.CurrentPassengers = 38

	err := b.BoardPassengers(5)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("BoardPassengers(5) error = %v, want ErrValidation", err)
	}
	if !strings.Contains(err.Error(), "only 2 seats available") {
		t.Errorf("error %q does not report the available seats", err)
	}
	if b.CurrentPassengers != 38 {
		t.Errorf("CurrentPassengers = %d after rejected boarding, want 38", b.CurrentPassengers)
	}

	if err := b.BoardPassengers(2); err != nil {
		t.Fatalf("BoardPassengers(2) error = %v", err)
	}
	if b.CurrentPassengers != 40 {
		t.Errorf("CurrentPassengers = %d, want 40", b.CurrentPassengers)
	}
	if b.AvailableSeats() != 0 {
		t.Errorf("AvailableSeats() = %d, want 0", b.AvailableSeats())
	}
}

func TestBoardPassengers_Property(t *testing.T) {
	for current := 0; current <= 10; current++ {
		for n := 0; n <= 12; n++ {
			b := newTestBus(t, 10)
			b.CurrentPassengers = current
			err := b.BoardPassengers(n)
			if current+n > 10 {
				if err == nil || b.CurrentPassengers != current {
					t.Fatalf("board %d onto %d/10: err = %v, current = %d", n, current, err, b.CurrentPassengers)
				}
				continue
			}
			if err != nil || b.CurrentPassengers != current+n {
				t.Fatalf("board %d onto %d/10: err = %v, current = %d", n, current, err, b.CurrentPassengers)
			}
		}
	}
}

func TestAlightPassengers(t *testing.T) {
	tests := []struct {
		name    string
		current int
		alight  int
		want    int
		wantErr bool
	}{
		{"some", 10, 4, 6, false},
		{"all", 10, 10, 0, false},
		{"none", 3, 0, 3, false},
		{"too many", 3, 4, 3, true},
		{"negative", 3, -1, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBus(t, 40)
			b.CurrentPassengers = tt.current
			err := b.AlightPassengers(tt.alight)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AlightPassengers(%d) error = %v, wantErr %v", tt.alight, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrValidation) {
				t.Errorf("error = %v, want ErrValidation", err)
			}
			if b.CurrentPassengers != tt.want {
				t.Errorf("CurrentPassengers = %d, want %d", b.CurrentPassengers, tt.want)
			}
		})
	}
}

func TestSetLocation_StampsTime(t *testing.T) {
	b := newTestBus(t, 40)
	later := time.Date(2024, 3, 1, 17, 5, 0, 0, time.UTC)
	fixedClock(t, later)

	b.SetLocation("Plaza")
	if b.CurrentLocation() != "Plaza" {
		t.Errorf("CurrentLocation() = %q, want Plaza", b.CurrentLocation())
	}
	if !b.LastUpdatedTime.Equal(later) {
		t.Errorf("LastUpdatedTime = %v, want %v", b.LastUpdatedTime, later)
	}
}

func TestTripState_RoundTripOnBus(t *testing.T) {
	b := newTestBus(t, 40)
	ts := TripState{
		BusNumber:         b.BusNumber,
		IsOnRoute:         true,
		CurrentLocation:   "Market",
		RouteName:         "Harbor Loop",
		IsReverse:         true,
		CurrentPassengers: 12,
		Traffic:           TrafficHeavy,
		LastUpdatedTime:   time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	b.ApplyTripState(ts)
	if got := b.TripState(); got != ts {
		t.Errorf("TripState() = %+v, want %+v", got, ts)
	}
	if b.Route != "Harbor Loop" {
		t.Errorf("Route = %q, want Harbor Loop", b.Route)
	}
}

func TestApplyTripState_ClampsPassengers(t *testing.T) {
	b := newTestBus(t, 20)
	b.ApplyTripState(TripState{BusNumber: b.BusNumber, CurrentPassengers: 55})
	if b.CurrentPassengers != 20 {
		t.Errorf("CurrentPassengers = %d, want 20", b.CurrentPassengers)
	}
}

func TestFindBus_IgnoresCase(t *testing.T) {
	b := newTestBus(t, 40)
	if got := FindBus([]*Bus{b}, "b-101"); got != b {
		t.Errorf("FindBus() = %v, want %v", got, b)
	}
	if got := FindBus([]*Bus{b}, "B-999"); got != nil {
		t.Errorf("FindBus() = %v, want nil", got)
	}
}

func TestParseTraffic(t *testing.T) {
	tests := []struct {
		in     string
		want   Traffic
		wantOK bool
	}{
		{"Light", TrafficLight, true},
		{"moderate", TrafficModerate, true},
		{" Heavy ", TrafficHeavy, true},
		{"", TrafficLight, false},
		{"Gridlock", TrafficLight, false},
	}
	for _, tt := range tests {
		got, ok := ParseTraffic(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseTraffic(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
	if Traffic(9).String() != "Light" {
		t.Errorf("unknown traffic should print as Light")
	}
}
