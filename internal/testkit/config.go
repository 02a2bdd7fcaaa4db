// Package testkit starts the Postgres and Redis containers the integration
// tests run against.
package testkit

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config selects the container images and startup behaviour for the test
// infrastructure. Pointing TEST_POSTGRES_DSN or TEST_REDIS_ADDR at an
// external instance skips the corresponding container.
type Config struct {
	PostgresImage  string
	RedisImage     string
	PostgresDSN    string
	RedisAddr      string
	StartupTimeout time.Duration
	KeepContainers bool // leave containers running after the test run
}

// LoadConfig reads the test infrastructure settings from the environment.
func LoadConfig() Config {
	return Config{
		PostgresImage:  envString("TEST_POSTGRES_IMAGE", "postgres:18.1-alpine"),
		RedisImage:     envString("TEST_REDIS_IMAGE", "redis:8.4.0-alpine"),
		PostgresDSN:    os.Getenv("TEST_POSTGRES_DSN"),
		RedisAddr:      os.Getenv("TEST_REDIS_ADDR"),
		StartupTimeout: time.Duration(envInt("TEST_STARTUP_TIMEOUT_SEC", 90)) * time.Second,
		KeepContainers: envBool("TEST_KEEP_CONTAINERS", false),
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "testkit: invalid value %q for %s, using %d\n", v, key, def)
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "testkit: invalid value %q for %s, using %v\n", v, key, def)
		return def
	}
	return b
}
