package routes

import (
	"fmt"

	"bus_tracker/internal/controllers"
	"bus_tracker/internal/middleware"
)

// OwnerRoutes registers the owner entry behind the PIN gate.
func OwnerRoutes(s *Shell, m *Menu) {
	readPIN := func() (string, error) { return s.readRequired("Enter PIN: ") }
	m.Handle("Bus Owner", middleware.RequireOwner(s.gate, readPIN, s.ownerMenu))
}

type ownerHandlers struct {
	shell   *Shell
	session *controllers.OwnerSession
}

func (s *Shell) ownerMenu() error {
	h := &ownerHandlers{shell: s, session: controllers.NewOwnerSession(s.fleet)}

	menu := s.NewMenu("Owner Menu", "Logout")
	menu.Handle("Add Bus", h.addBus)
	menu.Handle("Remove Bus", h.removeBus)
	menu.Handle("Update Bus Info", h.updateBusInfo)
	menu.Handle("Monitor All Buses", h.monitorAllBuses)
	menu.Handle("Manage Routes", h.manageRoutes)
	menu.Handle("View Travel History", h.viewTravelHistory)
	menu.Handle("Delete Travel History", h.deleteTravelHistory)
	menu.Handle("Report Emergency", h.reportEmergency)
	return menu.Run()
}

func (h *ownerHandlers) addBus() error {
	s := h.shell
	var in controllers.BusInput
	var err error
	for _, f := range []struct {
		prompt string
		dst    *string
	}{
		{"Bus number: ", &in.BusNumber},
		{"Driver name: ", &in.DriverName},
		{"Driver phone number: ", &in.DriverPhoneNumber},
		{"Attendant name: ", &in.AttendantName},
	} {
		if *f.dst, err = s.readRequired(f.prompt); err != nil {
			return err
		}
	}
	if in.Capacity, err = s.readInt("Capacity: "); err != nil {
		return err
	}
	if in.RouteName, err = s.readRequired("Route name: "); err != nil {
		return err
	}

	if !h.session.RouteExists(in.RouteName) {
		fmt.Fprintf(s.out, "Route %s does not exist yet. Enter its stops to create it.\n", in.RouteName)
		n, err := s.readInt("Number of stops: ")
		if err != nil {
			return err
		}
		for i := 1; i <= n; i++ {
			var stop controllers.StopInput
			if stop.Location, err = s.readRequired(fmt.Sprintf("Stop %d location: ", i)); err != nil {
				return err
			}
			if stop.Distance, err = s.readFloat(fmt.Sprintf("Stop %d distance from origin (km): ", i)); err != nil {
				return err
			}
			in.NewRouteStops = append(in.NewRouteStops, stop)
		}
	}

	bus, err := h.session.AddBus(in)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Bus %s added on route %s.\n", bus.BusNumber, bus.Route)
	return nil
}

func (h *ownerHandlers) removeBus() error {
	busNumber, err := h.shell.readRequired("Bus number to remove: ")
	if err != nil {
		return err
	}
	if err := h.session.RemoveBus(busNumber); err != nil {
		return err
	}
	fmt.Fprintf(h.shell.out, "Bus %s removed.\n", busNumber)
	return nil
}

func (h *ownerHandlers) updateBusInfo() error {
	s := h.shell
	busNumber, err := s.readRequired("Bus number to update: ")
	if err != nil {
		return err
	}
	if _, err := s.fleet.Bus(busNumber); err != nil {
		return err
	}
	driver, err := s.readRequired("New driver name: ")
	if err != nil {
		return err
	}
	phone, err := s.readRequired("New driver phone number: ")
	if err != nil {
		return err
	}
	attendant, err := s.readRequired("New attendant name: ")
	if err != nil {
		return err
	}
	if err := h.session.UpdateBusInfo(busNumber, driver, phone, attendant); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Bus %s updated.\n", busNumber)
	return nil
}

func (h *ownerHandlers) monitorAllBuses() error {
	h.shell.writeStatuses(h.session.MonitorAllBuses())
	return nil
}

func (h *ownerHandlers) manageRoutes() error {
	menu := h.shell.NewMenu("Manage Routes", "Back")
	menu.Handle("View Routes", h.viewRoutes)
	menu.Handle("Add Stop", h.addStop)
	menu.Handle("Remove Stop", h.removeStop)
	menu.Handle("Adjust Fares", h.adjustFares)
	return menu.Run()
}

func (h *ownerHandlers) viewRoutes() error {
	h.shell.writeRoutes(h.session.Routes())
	return nil
}

func (h *ownerHandlers) addStop() error {
	s := h.shell
	route, err := s.readRequired("Route name: ")
	if err != nil {
		return err
	}
	location, err := s.readRequired("Stop location: ")
	if err != nil {
		return err
	}
	distance, err := s.readFloat("Distance from origin (km): ")
	if err != nil {
		return err
	}
	stop, err := h.session.AddStop(route, location, distance)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Stop %s added at %.2f km with fare %.2f.\n", stop.Location, stop.Distance, stop.Fare)
	return nil
}

func (h *ownerHandlers) removeStop() error {
	s := h.shell
	route, err := s.readRequired("Route name: ")
	if err != nil {
		return err
	}
	location, err := s.readRequired("Stop location to remove: ")
	if err != nil {
		return err
	}
	if err := h.session.RemoveStop(route, location); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Stop %s removed from %s.\n", location, route)
	return nil
}

func (h *ownerHandlers) adjustFares() error {
	s := h.shell
	route, err := s.readRequired("Route name: ")
	if err != nil {
		return err
	}
	base, err := s.readFloat("Base fare: ")
	if err != nil {
		return err
	}
	perKm, err := s.readFloat("Fare per km beyond 5 km: ")
	if err != nil {
		return err
	}
	if err := h.session.AdjustFares(route, base, perKm); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Fares on %s adjusted.\n", route)
	return nil
}

func (h *ownerHandlers) viewTravelHistory() error {
	s := h.shell
	busNumber, err := s.readRequired("Bus number: ")
	if err != nil {
		return err
	}
	history, err := h.session.ViewTravelHistory(busNumber)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		fmt.Fprintf(s.out, "No travel history for bus %s.\n", busNumber)
		return nil
	}
	for _, record := range history {
		fmt.Fprintln(s.out, record)
	}
	return nil
}

func (h *ownerHandlers) deleteTravelHistory() error {
	busNumber, err := h.shell.readRequired("Bus number: ")
	if err != nil {
		return err
	}
	if err := h.session.DeleteTravelHistory(busNumber); err != nil {
		return err
	}
	fmt.Fprintf(h.shell.out, "Travel history of bus %s deleted.\n", busNumber)
	return nil
}

func (h *ownerHandlers) reportEmergency() error {
	h.shell.writeEmergency(h.session.ReportEmergency())
	return nil
}
