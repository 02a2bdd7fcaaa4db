package testkit

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
)

// Suite owns the Postgres and Redis instances shared by an integration test
// binary. Use the package-level Run from TestMain.
type Suite struct {
	mu    sync.Mutex
	cfg   Config
	pg    *PostgresInstance
	rdb   *RedisInstance
	ready bool
}

var (
	globalSuite *Suite
	globalOnce  sync.Once
)

// Global returns the singleton Suite instance.
func Global() *Suite {
	globalOnce.Do(func() {
		globalSuite = &Suite{cfg: LoadConfig()}
	})
	return globalSuite
}

// Setup starts the test infrastructure. Calling it on a suite that is
// already running is an error.
func (s *Suite) Setup(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return fmt.Errorf("suite already set up; call Shutdown first")
	}

	pg, err := startPostgres(ctx, s.cfg)
	if err != nil {
		return fmt.Errorf("setup postgres: %w", err)
	}

	rdb, err := startRedis(ctx, s.cfg)
	if err != nil {
		if !s.cfg.KeepContainers {
			_ = pg.Terminate(ctx)
		}
		return fmt.Errorf("setup redis: %w", err)
	}

	s.pg = pg
	s.rdb = rdb
	s.ready = true
	return nil
}

// Shutdown stops the test infrastructure. With TEST_KEEP_CONTAINERS set the
// containers survive the run and their endpoints are printed for reuse.
func (s *Suite) Shutdown(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return
	}
	s.ready = false

	if s.cfg.KeepContainers {
		fmt.Println("TEST_KEEP_CONTAINERS=true, leaving containers running")
		fmt.Println("  postgres:", s.pg.DSN())
		fmt.Println("  redis:", s.rdb.Addr())
		return
	}

	if err := s.rdb.Terminate(ctx); err != nil {
		fmt.Println("warning: failed to terminate redis container:", err)
	}
	if err := s.pg.Terminate(ctx); err != nil {
		fmt.Println("warning: failed to terminate postgres container:", err)
	}
}

// PostgresDSN returns the connection string for the test database.
func (s *Suite) PostgresDSN() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pg == nil {
		return ""
	}
	return s.pg.DSN()
}

// RedisAddr returns the host:port address of the test Redis.
func (s *Suite) RedisAddr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rdb == nil {
		return ""
	}
	return s.rdb.Addr()
}

// Run starts the infrastructure, invokes afterSetup callbacks (opening
// connections, running migrations), runs the tests and shuts everything
// down. Intended for use in TestMain.
func (s *Suite) Run(m *testing.M, afterSetup ...func() error) {
	ctx := context.Background()

	if err := s.Setup(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "integration test setup failed: %v\n", err)
		os.Exit(1)
	}

	for _, fn := range afterSetup {
		if err := fn(); err != nil {
			fmt.Fprintf(os.Stderr, "integration test setup failed: %v\n", err)
			s.Shutdown(ctx)
			os.Exit(1)
		}
	}

	code := m.Run()

	s.Shutdown(ctx)
	os.Exit(code)
}

// Run delegates to the global suite. Most integration packages call this
// straight from TestMain.
func Run(m *testing.M, afterSetup ...func() error) {
	Global().Run(m, afterSetup...)
}
