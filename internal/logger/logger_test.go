package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"WARN", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"", logrus.InfoLevel},
		{"chatty", logrus.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetup_WritesToFile(t *testing.T) {
	prevOut, prevLevel, prevFormatter := logrus.StandardLogger().Out, logrus.GetLevel(), logrus.StandardLogger().Formatter
	t.Cleanup(func() {
		logrus.SetOutput(prevOut)
		logrus.SetLevel(prevLevel)
		logrus.SetFormatter(prevFormatter)
	})

	path := filepath.Join(t.TempDir(), "logs", "app.log")
	rotator := Setup(Options{File: path, Level: "warn", MaxSizeMB: 1, MaxBackups: 2, MaxAgeDays: 3})
	if rotator.MaxSize != 1 || rotator.MaxBackups != 2 || rotator.MaxAge != 3 {
		t.Errorf("rotator = %+v", rotator)
	}

	logrus.WithField("bus_number", "B-1").Info("dropped below level")
	logrus.WithField("bus_number", "B-1").Warn("trip state store not found")
	if err := rotator.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "trip state store not found") || !strings.Contains(got, "bus_number=B-1") {
		t.Errorf("log file = %q", got)
	}
	if strings.Contains(got, "dropped below level") {
		t.Errorf("info entry written at warn level: %q", got)
	}
}
