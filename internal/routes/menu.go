package routes

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"bus_tracker/internal/middleware"
)

type menuItem struct {
	label   string
	handler middleware.Handler
}

// Menu is a numbered list of actions. The last entry leaves the menu.
type Menu struct {
	shell *Shell
	title string
	exit  string
	items []menuItem
}

func (s *Shell) NewMenu(title, exitLabel string) *Menu {
	return &Menu{shell: s, title: title, exit: exitLabel}
}

// Handle appends an entry.
func (m *Menu) Handle(label string, h middleware.Handler) {
	m.items = append(m.items, menuItem{label: label, handler: h})
}

// Run loops until the exit entry is chosen. Handler errors are printed and
// the menu is shown again; only input errors end the loop.
func (m *Menu) Run() error {
	out := m.shell.out
	for {
		fmt.Fprintf(out, "\n--- %s ---\n", m.title)
		for i, it := range m.items {
			fmt.Fprintf(out, "%d. %s\n", i+1, it.label)
		}
		fmt.Fprintf(out, "%d. %s\n", len(m.items)+1, m.exit)

		choice, err := m.shell.readChoice("Select an option: ", 1, len(m.items)+1)
		if err != nil {
			return err
		}
		if choice == len(m.items)+1 {
			return nil
		}
		if err := m.items[choice-1].handler(); err != nil {
			if errors.Is(err, io.EOF) {
				return err
			}
			m.shell.printError(err)
		}
	}
}

func (s *Shell) printError(err error) {
	logrus.WithError(err).Debug("menu action failed")
	fmt.Fprintf(s.out, "Error: %v\n", err)
}
