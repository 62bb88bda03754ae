package middleware

import (
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// DefaultOwnerPIN is used when no PIN hash is configured.
const DefaultOwnerPIN = "1234"

// ErrInvalidPIN is returned when the owner PIN does not match.
var ErrInvalidPIN = errors.New("invalid PIN")

// Handler is a menu action.
type Handler func() error

// PINGate compares an entered PIN with the configured owner PIN hash.
type PINGate struct {
	hash []byte
}

// NewPINGate uses the bcrypt hash in pinHash, or hashes DefaultOwnerPIN when it is empty.
func NewPINGate(pinHash string) (*PINGate, error) {
	if pinHash != "" {
		if _, err := bcrypt.Cost([]byte(pinHash)); err != nil {
			return nil, err
		}
		return &PINGate{hash: []byte(pinHash)}, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultOwnerPIN), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &PINGate{hash: hash}, nil
}

// Check reports whether pin is the owner PIN.
func (g *PINGate) Check(pin string) bool {
	return bcrypt.CompareHashAndPassword(g.hash, []byte(pin)) == nil
}

// RequireOwner runs next only when readPIN yields the owner PIN.
func RequireOwner(g *PINGate, readPIN func() (string, error), next Handler) Handler {
	return func() error {
		pin, err := readPIN()
		if err != nil {
			return err
		}
		if !g.Check(pin) {
			logrus.Warn("owner login rejected")
			return ErrInvalidPIN
		}
		logrus.Info("owner logged in")
		return next()
	}
}
