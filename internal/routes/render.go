package routes

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"bus_tracker/internal/controllers"
	"bus_tracker/internal/models"
)

func (s *Shell) newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(s.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	return table
}

func (s *Shell) writeStatuses(statuses []controllers.BusStatus) {
	if len(statuses) == 0 {
		fmt.Fprintln(s.out, "No buses registered.")
		return
	}
	table := s.newTable("Bus", "Route", "Direction", "Location", "Seats", "Traffic", "Driver", "Phone", "Attendant")
	for _, st := range statuses {
		table.Append([]string{
			st.BusNumber,
			st.Route,
			st.Direction,
			st.CurrentLocation,
			fmt.Sprintf("%d/%d", st.AvailableSeats, st.Capacity),
			st.Traffic,
			st.DriverName,
			st.DriverPhoneNumber,
			st.AttendantName,
		})
	}
	table.Render()
}

func (s *Shell) writeStops(stops []models.Stop) {
	if len(stops) == 0 {
		fmt.Fprintln(s.out, "No stops on this route.")
		return
	}
	table := s.newTable("#", "Stop", "Distance (km)", "Fare")
	for i, st := range stops {
		table.Append([]string{
			strconv.Itoa(i + 1),
			st.Location,
			strconv.FormatFloat(st.Distance, 'f', 2, 64),
			strconv.FormatFloat(st.Fare, 'f', 2, 64),
		})
	}
	table.Render()
}

func (s *Shell) writeRoutes(routes []*models.Route) {
	if len(routes) == 0 {
		fmt.Fprintln(s.out, "No routes available.")
		return
	}
	for _, r := range routes {
		fmt.Fprintf(s.out, "\nRoute: %s\n", r.Name)
		s.writeStops(r.Stops)
	}
}

func (s *Shell) writeEmergency(rep controllers.EmergencyReport) {
	fmt.Fprintln(s.out, rep.Message)
	fmt.Fprintln(s.out, "Emergency contacts:")
	for _, c := range rep.Contacts {
		fmt.Fprintf(s.out, "  %s: %s\n", c.Service, c.Number)
	}
}
