package routes

import (
	"fmt"

	"bus_tracker/internal/controllers"
	"bus_tracker/internal/models"
)

// AttendantRoutes registers the attendant entry. The attendant picks a bus
// by number; there is no PIN.
func AttendantRoutes(s *Shell, m *Menu) {
	m.Handle("Bus Attendant", s.attendantLogin)
}

type attendantHandlers struct {
	shell   *Shell
	session *controllers.AttendantSession
}

func (s *Shell) attendantLogin() error {
	busNumber, err := s.readRequired("Enter your bus number: ")
	if err != nil {
		return err
	}
	session, err := controllers.NewAttendantSession(s.fleet, busNumber)
	if err != nil {
		return err
	}
	h := &attendantHandlers{shell: s, session: session}

	menu := s.NewMenu(fmt.Sprintf("Attendant Menu (Bus %s)", session.Bus().BusNumber), "Logout")
	menu.Handle("Start Route", h.startRoute)
	menu.Handle("Update Status", h.updateStatus)
	menu.Handle("Board Passengers", h.board)
	menu.Handle("Alight Passengers", h.alight)
	menu.Handle("End Route", h.endRoute)
	menu.Handle("Report Emergency", h.reportEmergency)
	return menu.Run()
}

func (h *attendantHandlers) startRoute() error {
	s, bus := h.shell, h.session.Bus()
	if bus.IsOnRoute {
		return fmt.Errorf("%w: route is already in progress", models.ErrValidation)
	}

	fmt.Fprintln(s.out, "Select direction:")
	fmt.Fprintln(s.out, "1. From City Bus Station")
	fmt.Fprintln(s.out, "2. To City Bus Station")
	dir, err := s.readChoice("Direction: ", 1, 2)
	if err != nil {
		return err
	}
	in := controllers.StartRouteInput{Reverse: dir == 2, StopIndex: -1}
	if in.Boarding, err = s.readInt("Number of passengers boarding: "); err != nil {
		return err
	}

	if stops, err := h.session.StopsFor(in.Reverse); err != nil {
		fmt.Fprintf(s.out, "Route %s was not found.\n", bus.Route)
	} else {
		s.writeStops(stops)
		n, err := s.readInt("Select the current stop number: ")
		if err != nil {
			return err
		}
		in.StopIndex = n - 1
	}

	res, err := h.session.StartRoute(in)
	if res.StartedAt.IsZero() {
		return err
	}
	if res.BoardingErr != nil {
		fmt.Fprintf(s.out, "Boarding rejected: %v\n", res.BoardingErr)
	}
	if res.LocationErr != nil {
		fmt.Fprintf(s.out, "%v; starting at %s.\n", res.LocationErr, res.Location)
	}
	fmt.Fprintf(s.out, "Route started at %s. Current location: %s. Passengers on board: %d.\n",
		res.StartedAt.Format("03:04 PM"), res.Location, bus.CurrentPassengers)
	return err
}

func (h *attendantHandlers) updateStatus() error {
	s, bus := h.shell, h.session.Bus()
	if !bus.IsOnRoute {
		return fmt.Errorf("%w: cannot update status, start the route first", models.ErrValidation)
	}
	stops, err := h.session.StopsFor(bus.IsReverse)
	if err != nil {
		return err
	}
	s.writeStops(stops)
	n, err := s.readInt("Select the current stop number: ")
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "Traffic condition:")
	for i, t := range models.Traffics() {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, t)
	}
	fmt.Fprintln(s.out, "0. Keep current")
	c, err := s.readChoice("Traffic: ", 0, len(models.Traffics()))
	if err != nil {
		return err
	}
	var traffic *models.Traffic
	if c > 0 {
		t := models.Traffics()[c-1]
		traffic = &t
	}

	if err := h.session.UpdateStatus(n-1, traffic); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Status updated: %s, %s traffic.\n", bus.CurrentLocation(), bus.Traffic)
	return nil
}

func (h *attendantHandlers) board() error {
	n, err := h.shell.readInt("Number of passengers boarding: ")
	if err != nil {
		return err
	}
	if err := h.session.Board(n); err != nil {
		return err
	}
	h.printLoad()
	return nil
}

func (h *attendantHandlers) alight() error {
	n, err := h.shell.readInt("Number of passengers alighting: ")
	if err != nil {
		return err
	}
	if err := h.session.Alight(n); err != nil {
		return err
	}
	h.printLoad()
	return nil
}

func (h *attendantHandlers) printLoad() {
	bus := h.session.Bus()
	fmt.Fprintf(h.shell.out, "Passengers on board: %d. Seats available: %d.\n", bus.CurrentPassengers, bus.AvailableSeats())
}

func (h *attendantHandlers) endRoute() error {
	if err := h.session.EndRoute(); err != nil {
		return err
	}
	fmt.Fprintf(h.shell.out, "Route ended. Bus returned to %s.\n", models.LocationBusStation)
	return nil
}

func (h *attendantHandlers) reportEmergency() error {
	h.shell.writeEmergency(h.session.ReportEmergency())
	return nil
}
