package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const cutoffDateLayout = "2006-01-02"

// Config holds every configuration parameter of the application.
type Config struct {
	DatabaseURL  string
	JWTSecretKey string
	ServerPort   int

	// Calendar boundaries splitting the knockout bracket into its 1/2/4
	// point bands. Fixed per tournament, never derived from match data.
	FirstKnockoutCutoff  time.Time
	SecondKnockoutCutoff time.Time

	// When true the leaderboard lists every user, including those without
	// a complete set of group picks.
	LeaderboardIncludeAll bool

	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string
}

// Load reads configuration from environment variables, optionally loading a
// .env file first (useful for local development).
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	jwtKey := os.Getenv("JWT_SECRET_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
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

	firstCutoff, err := cutoffDate("KNOCKOUT_FIRST_CUTOFF")
	if err != nil {
		return nil, err
	}
	secondCutoff, err := cutoffDate("KNOCKOUT_SECOND_CUTOFF")
	if err != nil {
		return nil, err
	}
	if !secondCutoff.After(firstCutoff) {
		return nil, fmt.Errorf("KNOCKOUT_SECOND_CUTOFF must be after KNOCKOUT_FIRST_CUTOFF")
	}

	cfg := &Config{
		DatabaseURL:           dbURL,
		JWTSecretKey:          jwtKey,
		ServerPort:            port,
		FirstKnockoutCutoff:   firstCutoff,
		SecondKnockoutCutoff:  secondCutoff,
		LeaderboardIncludeAll: os.Getenv("LEADERBOARD_INCLUDE_ALL") == "true",
		R2AccountID:           os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:         os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey:     os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:          os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:       os.Getenv("R2_PUBLIC_BASE_URL"),
	}

	return cfg, nil
}

func cutoffDate(key string) (time.Time, error) {
	value := os.Getenv(key)
	if value == "" {
		return time.Time{}, fmt.Errorf("%s environment variable is not set", key)
	}
	date, err := time.Parse(cutoffDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s (expected %s): %w", key, cutoffDateLayout, err)
	}
	return date, nil
}
