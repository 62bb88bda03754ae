package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"bus_tracker/internal/models"
)

// TravelHistory is an append-only log per bus, one record per line,
// stored as TravelHistory_<busNumber>.txt in dir.
type TravelHistory struct {
	dir string
}

func NewTravelHistory(dir string) *TravelHistory {
	return &TravelHistory{dir: dir}
}

func (h *TravelHistory) path(busNumber string) string {
	return filepath.Join(h.dir, "TravelHistory_"+busNumber+".txt")
}

// Append adds record to the end of the bus's log.
func (h *TravelHistory) Append(busNumber, record string) error {
	path := h.path(busNumber)
	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		return &Error{Op: "append", Path: path, Err: err}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &Error{Op: "append", Path: path, Err: err}
	}
	if _, err := fmt.Fprintln(f, record); err != nil {
		f.Close()
		return &Error{Op: "append", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &Error{Op: "append", Path: path, Err: err}
	}
	logrus.WithField("bus_number", busNumber).Debug("travel history appended")
	return nil
}

// ReadAll returns every record in order. A bus without a log has no records.
func (h *TravelHistory) ReadAll(busNumber string) ([]string, error) {
	lines, err := readLines(h.path(busNumber))
	if isNotExist(err) {
		return nil, nil
	}
	return lines, err
}

// Delete removes the bus's log.
func (h *TravelHistory) Delete(busNumber string) error {
	path := h.path(busNumber)
	err := os.Remove(path)
	if isNotExist(err) {
		return fmt.Errorf("%w: travel history for bus %s", models.ErrNotFound, busNumber)
	}
	if err != nil {
		return &Error{Op: "delete", Path: path, Err: err}
	}
	logrus.WithField("bus_number", busNumber).Info("travel history deleted")
	return nil
}
