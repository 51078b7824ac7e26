// Package cli holds the environment and logging setup shared by the commands.
package cli

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// LoadEnv reads a .env file from the working directory when one exists.
// Variables already set in the environment win.
func LoadEnv() {
	_ = godotenv.Load()
}

func Getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func GetenvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// Logger builds a logger on w from LOG_LEVEL (default "info") and
// LOG_FORMAT ("console" for human output, anything else for JSON).
func Logger(w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(Getenv("LOG_LEVEL", "info"))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	if strings.EqualFold(Getenv("LOG_FORMAT", "console"), "console") {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
