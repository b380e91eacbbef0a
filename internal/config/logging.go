package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// LogLevel reads LOG_LEVEL. Without it the level is debug in development
// and info otherwise.
func LogLevel() (logrus.Level, error) {
	levelStr, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		if Development() {
			return logrus.DebugLevel, nil
		}
		return logrus.InfoLevel, nil
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	return level, nil
}

// LogFile is the path of the rotated log file, empty when unset.
func LogFile() string {
	return os.Getenv("LOG_FILE")
}
