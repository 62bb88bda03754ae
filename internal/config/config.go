package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Store file names inside the data directory.
const (
	TripStateFile   = "BusAttendantState.txt"
	RoutesFile      = "RoutesData.txt"
	BusRegistryFile = "BusesData.txt"
)

// Config holds the runtime settings of the console.
type Config struct {
	DataDir             string
	LogFile             string
	LogLevel            string
	LogMaxSizeMB        int
	LogMaxBackups       int
	LogMaxAgeDays       int
	OwnerPINHash        string
	TripStateAutoCreate bool
}

// Load reads .env (if present) and the environment, applying defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	return Config{
		DataDir:             getEnv("BUS_DATA_DIR", "Data"),
		LogFile:             getEnv("BUS_LOG_FILE", "./logs/app.log"),
		LogLevel:            getEnv("BUS_LOG_LEVEL", "info"),
		LogMaxSizeMB:        getEnvInt("BUS_LOG_MAX_SIZE_MB", 10),
		LogMaxBackups:       getEnvInt("BUS_LOG_MAX_BACKUPS", 7),
		LogMaxAgeDays:       getEnvInt("BUS_LOG_MAX_AGE_DAYS", 7),
		OwnerPINHash:        getEnv("BUS_OWNER_PIN_HASH", ""),
		TripStateAutoCreate: getEnvBool("BUS_TRIP_STATE_AUTOCREATE", true),
	}
}

// TripStatePath returns the trip state store file.
func (c Config) TripStatePath() string {
	return filepath.Join(c.DataDir, TripStateFile)
}

// RoutesPath returns the route store file.
func (c Config) RoutesPath() string {
	return filepath.Join(c.DataDir, RoutesFile)
}

// BusRegistryPath returns the bus registry file.
func (c Config) BusRegistryPath() string {
	return filepath.Join(c.DataDir, BusRegistryFile)
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	v, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Invalid boolean for %s=%q, using %t", key, v, defaultValue)
		return defaultValue
	}
	return b
}

func getEnvInt(key string, defaultValue int) int {
	v, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Printf("Invalid number for %s=%q, using %d", key, v, defaultValue)
		return defaultValue
	}
	return n
}
