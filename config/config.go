package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration values.
type Config struct {
	DatabaseURL        string
	ServerPort         int
	CORSAllowedOrigins []string

	// ScoreSimulationEnabled gates the demo score randomizer. It is a demo
	// utility, not a scoring feed, so it stays off unless explicitly enabled.
	ScoreSimulationEnabled bool
}

// Load reads configuration from environment variables, optionally sourcing a
// .env file first (useful for local development).
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	origins := []string{"*"}
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	simulation := false
	if raw := os.Getenv("SCORE_SIMULATION_ENABLED"); raw != "" {
		simulation, err = strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SCORE_SIMULATION_ENABLED environment variable: %w", err)
		}
	}

	return &Config{
		DatabaseURL:            dbURL,
		ServerPort:             port,
		CORSAllowedOrigins:     origins,
		ScoreSimulationEnabled: simulation,
	}, nil
}
