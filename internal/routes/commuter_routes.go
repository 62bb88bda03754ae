package routes

import (
	"fmt"

	"bus_tracker/internal/controllers"
)

func CommuterRoutes(s *Shell, m *Menu) {
	m.Handle("Commuter", s.commuterMenu)
}

type commuterHandlers struct {
	shell   *Shell
	session *controllers.CommuterSession
}

func (s *Shell) commuterMenu() error {
	h := &commuterHandlers{shell: s, session: controllers.NewCommuterSession(s.fleet)}

	menu := s.NewMenu("Commuter Menu", "Back")
	menu.Handle("Track Bus", h.trackBus)
	menu.Handle("Track All Buses", h.trackAllBuses)
	menu.Handle("View Routes", h.viewRoutes)
	menu.Handle("Calculate Fare", h.calculateFare)
	menu.Handle("Report Emergency", h.reportEmergency)
	return menu.Run()
}

func (h *commuterHandlers) trackBus() error {
	busNumber, err := h.shell.readRequired("Bus number: ")
	if err != nil {
		return err
	}
	status, err := h.session.TrackBus(busNumber)
	if err != nil {
		return err
	}
	h.shell.writeStatuses([]controllers.BusStatus{status})
	return nil
}

func (h *commuterHandlers) trackAllBuses() error {
	h.shell.writeStatuses(h.session.TrackAllBuses())
	return nil
}

func (h *commuterHandlers) viewRoutes() error {
	h.shell.writeRoutes(h.session.Routes())
	return nil
}

func (h *commuterHandlers) calculateFare() error {
	s := h.shell
	busNumber, err := s.readRequired("Bus number: ")
	if err != nil {
		return err
	}
	stops, err := h.session.StopsFor(busNumber)
	if err != nil {
		return err
	}
	s.writeStops(stops)
	start, err := s.readInt("Boarding stop number: ")
	if err != nil {
		return err
	}
	end, err := s.readInt("Destination stop number: ")
	if err != nil {
		return err
	}
	quote, err := h.session.CalculateFare(busNumber, start-1, end-1)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Fare from %s to %s (%.2f km): %.2f\n", quote.From, quote.To, quote.Distance, quote.Fare)
	return nil
}

func (h *commuterHandlers) reportEmergency() error {
	h.shell.writeEmergency(h.session.ReportEmergency())
	return nil
}
