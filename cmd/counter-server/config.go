package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type Config struct {
	Addr             string
	LogLevel         string
	LogFormat        string
	Telemetry        string
	HoneycombTeam    string
	HoneycombDataset string
}

// LoadConfig reads defaults from the environment after merging the optional
// env files. Variables already set take precedence over file entries.
func LoadConfig(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		err := godotenv.Load(file)
		if err != nil && !os.IsNotExist(err) {
			return Config{}, errors.Wrapf(err, "failed to load %s", file)
		}
	}

	return Config{
		Addr:             env("COUNTER_ADDR", ":9080"),
		LogLevel:         env("COUNTER_LOG_LEVEL", "info"),
		LogFormat:        env("COUNTER_LOG_FORMAT", "json"),
		Telemetry:        env("COUNTER_TELEMETRY", "none"),
		HoneycombTeam:    env("HONEYCOMB_TEAM", ""),
		HoneycombDataset: env("HONEYCOMB_DATASET", ""),
	}, nil
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}
