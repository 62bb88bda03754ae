package main

import (
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"

	"bus_tracker/internal/config"
	"bus_tracker/internal/fleet"
	"bus_tracker/internal/logger"
	"bus_tracker/internal/middleware"
	"bus_tracker/internal/routes"
)

func main() {
	cfg := config.Load()

	rotator := logger.Setup(logger.Options{
		File:       cfg.LogFile,
		Level:      cfg.LogLevel,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	defer rotator.Close()

	gate, err := middleware.NewPINGate(cfg.OwnerPINHash)
	if err != nil {
		log.Fatalf("invalid BUS_OWNER_PIN_HASH: %v", err)
	}

	// Missing or damaged data files still leave a usable fleet.
	f, err := fleet.Load(fleet.NewStores(cfg))
	if err != nil {
		logrus.WithError(err).Warn("fleet loaded with errors")
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	shell := routes.NewShell(os.Stdin, os.Stdout, f, gate)
	if err := shell.Run(); err != nil {
		logrus.WithError(err).Error("console stopped")
		log.Fatal(err)
	}
	fmt.Println("Goodbye.")
}
