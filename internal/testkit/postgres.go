package testkit

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver registration
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// PostgresInstance is a running test database: either a container started by
// the suite or an external instance supplied through TEST_POSTGRES_DSN.
type PostgresInstance struct {
	ctr testcontainers.Container
	dsn string
}

// DSN returns the connection string for the test database.
func (p *PostgresInstance) DSN() string { return p.dsn }

// Terminate stops the container. External instances are left alone.
func (p *PostgresInstance) Terminate(ctx context.Context) error {
	if p.ctr == nil {
		return nil
	}
	return p.ctr.Terminate(ctx)
}

func startPostgres(ctx context.Context, cfg Config) (*PostgresInstance, error) {
	if cfg.PostgresDSN != "" {
		return &PostgresInstance{dsn: cfg.PostgresDSN}, nil
	}

	ctr, err := postgres.Run(ctx,
		cfg.PostgresImage,
		postgres.WithDatabase(testDBName()),
		postgres.WithUsername("converter_test"),
		postgres.WithPassword("convpass"),
		testcontainers.WithWaitStrategyAndDeadline(cfg.StartupTimeout,
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = ctr.Terminate(ctx)
		return nil, fmt.Errorf("get postgres connection string: %w", err)
	}

	return &PostgresInstance{ctr: ctr, dsn: dsn}, nil
}

// testDBName returns a unique name like "conv_test_a1b2c3d4" so parallel
// suites sharing one Postgres never collide.
func testDBName() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "conv_test_fallback"
	}
	return "conv_test_" + hex.EncodeToString(b)
}
