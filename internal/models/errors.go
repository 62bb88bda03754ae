package models

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrValidation marks bad user input. State is left unchanged.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a referenced bus, route or stop that does not exist.
	ErrNotFound = errors.New("not found")
)

// RouteSentinel terminates a route block in the route store.
const RouteSentinel = "END"

// ValidateField rejects values that cannot be written to a comma-separated line.
func ValidateField(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s cannot be empty", ErrValidation, name)
	}
	if strings.ContainsAny(value, ",\r\n") {
		return fmt.Errorf("%w: %s cannot contain commas or line breaks", ErrValidation, name)
	}
	if strings.TrimSpace(value) != value {
		return fmt.Errorf("%w: %s cannot start or end with spaces", ErrValidation, name)
	}
	return nil
}

// ValidateAmount rejects distances and fares that are negative, NaN or infinite.
func ValidateAmount(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be a finite number", ErrValidation, name)
	}
	if v < 0 {
		return fmt.Errorf("%w: %s cannot be negative", ErrValidation, name)
	}
	return nil
}

// ValidateBusNumber also rejects path separators since the bus number names its history file.
func ValidateBusNumber(busNumber string) error {
	if err := ValidateField("bus number", busNumber); err != nil {
		return err
	}
	if strings.ContainsAny(busNumber, `/\`) || busNumber == "." || busNumber == ".." {
		return fmt.Errorf("%w: bus number %q is not a valid file name", ErrValidation, busNumber)
	}
	return nil
}

// ValidateRouteName also rejects the route store sentinel.
func ValidateRouteName(name string) error {
	if err := ValidateField("route name", name); err != nil {
		return err
	}
	if name == RouteSentinel {
		return fmt.Errorf("%w: %q is reserved", ErrValidation, RouteSentinel)
	}
	return nil
}
