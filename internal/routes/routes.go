package routes

import (
	"bufio"
	"errors"
	"io"

	"bus_tracker/internal/fleet"
	"bus_tracker/internal/middleware"
)

// Shell is the console front end. Each role registers a menu entry whose
// items dispatch to the session controllers.
type Shell struct {
	in    *bufio.Scanner
	out   io.Writer
	fleet *fleet.Fleet
	gate  *middleware.PINGate
}

func NewShell(in io.Reader, out io.Writer, f *fleet.Fleet, gate *middleware.PINGate) *Shell {
	return &Shell{in: bufio.NewScanner(in), out: out, fleet: f, gate: gate}
}

// SetupMenu builds the main menu.
func (s *Shell) SetupMenu() *Menu {
	m := s.NewMenu("Bus Tracking System", "Exit")

	AttendantRoutes(s, m)
	OwnerRoutes(s, m)
	CommuterRoutes(s, m)

	return m
}

// Run shows the main menu until the user exits or the input ends.
func (s *Shell) Run() error {
	err := s.SetupMenu().Run()
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
