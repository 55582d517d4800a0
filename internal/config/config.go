package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

const (
	StorageBackendPostgres = "postgres"
	StorageBackendMemory   = "memory"

	// MaxCommitAttempts bounds COMMIT_MAX_ATTEMPTS: one insert plus at most one
	// retry after a stale period.
	MaxCommitAttempts = 2
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort          string
	OperatorWorkers   int
	CommitMaxAttempts int
	LogLevel          logrus.Level
	StorageBackend    string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:   "localhost",
		PostgresPort:      "5433",
		PostgresDB:        "postgres",
		PostgresUsername:  "postgres",
		PostgresPassword:  "testpassword",
		HTTPPort:          "9446",
		OperatorWorkers:   4,
		CommitMaxAttempts: 2,
		LogLevel:          logrus.InfoLevel,
		StorageBackend:    StorageBackendPostgres,
	}

	envPostgresAddress := os.Getenv("POSTGRES_ADDRESS")
	envPostgresPort := os.Getenv("POSTGRES_PORT")
	envPostgresDB := os.Getenv("POSTGRES_DB")
	envPostgresUsername := os.Getenv("POSTGRES_USERNAME")
	envPostgresPassword := os.Getenv("POSTGRES_PASSWORD")
	envHTTPPort := os.Getenv("HTTP_PORT")
	envOperatorWorkers := os.Getenv("OPERATOR_WORKERS")
	envCommitMaxAttempts := os.Getenv("COMMIT_MAX_ATTEMPTS")
	envLogLevel := os.Getenv("LOG_LEVEL")
	envStorageBackend := os.Getenv("STORAGE_BACKEND")

	if len(envPostgresAddress) != 0 {
		env.PostgresAddress = envPostgresAddress
	}

	if len(envPostgresPort) != 0 {
		env.PostgresPort = envPostgresPort
	}

	if len(envPostgresDB) != 0 {
		env.PostgresDB = envPostgresDB
	}

	if len(envPostgresUsername) != 0 {
		env.PostgresUsername = envPostgresUsername
	}

	if len(envPostgresPassword) != 0 {
		env.PostgresPassword = envPostgresPassword
	}

	if len(envHTTPPort) != 0 {
		env.HTTPPort = envHTTPPort
	}

	if len(envOperatorWorkers) != 0 {
		workers, err := positiveInt("OPERATOR_WORKERS", envOperatorWorkers)
		if err != nil {
			return nil, err
		}
		env.OperatorWorkers = workers
	}

	if len(envCommitMaxAttempts) != 0 {
		attempts, err := positiveInt("COMMIT_MAX_ATTEMPTS", envCommitMaxAttempts)
		if err != nil {
			return nil, err
		}
		if attempts > MaxCommitAttempts {
			return nil, fmt.Errorf("config: COMMIT_MAX_ATTEMPTS must be at most %d, got %d", MaxCommitAttempts, attempts)
		}
		env.CommitMaxAttempts = attempts
	}

	if len(envLogLevel) != 0 {
		level, err := logrus.ParseLevel(envLogLevel)
		if err != nil {
			return nil, fmt.Errorf("config: LOG_LEVEL: %w", err)
		}
		env.LogLevel = level
	}

	if len(envStorageBackend) != 0 {
		switch envStorageBackend {
		case StorageBackendPostgres, StorageBackendMemory:
			env.StorageBackend = envStorageBackend
		default:
			return nil, fmt.Errorf("config: STORAGE_BACKEND must be %q or %q, got %q",
				StorageBackendPostgres, StorageBackendMemory, envStorageBackend)
		}
	}

	return &env, nil
}

// PostgresURL builds the lib/pq connection string.
func (c *Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     c.PostgresAddress + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func positiveInt(name, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", name, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("config: %s must be at least 1, got %d", name, n)
	}
	return n, nil
}
