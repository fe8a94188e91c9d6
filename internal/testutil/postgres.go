// Package testutil starts the containers the integration suites run against.
package testutil

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/backoffice/internal/db/migrations"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(ctx context.Context) (testcontainers.Container, string, error) {
	container, err := postgres.Run(ctx, "postgres:17-alpine",
		postgres.WithDatabase("backoffice"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return container, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, "", fmt.Errorf("container.ConnectionString: %w", err)
	}

	return container, connStr, nil
}

// StartPostgres runs a database container, opens a pool and applies the schema.
// The container is returned even on failure so the caller can terminate it.
func StartPostgres(ctx context.Context) (*pgxpool.Pool, testcontainers.Container, error) {
	container, connStr, err := startPostgres(ctx)
	if err != nil {
		return nil, container, fmt.Errorf("startPostgres: %w", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, container, fmt.Errorf("pgxpool.New: %w", err)
	}

	if err := migrations.Apply(ctx, pool); err != nil {
		pool.Close()
		return nil, container, fmt.Errorf("migrations.Apply: %w", err)
	}

	return pool, container, nil
}

// Truncate empties every table between tests.
func Truncate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, "TRUNCATE TABLE reviews, order_items, orders, delivery_routes, products, categories, blogs, coupons, users CASCADE")
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}
	return nil
}

// StartRedis runs a redis container and returns its host:port address.
func StartRedis(ctx context.Context) (testcontainers.Container, string, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	if err != nil {
		return container, "", fmt.Errorf("testcontainers.GenericContainer: %w", err)
	}

	addr, err := container.Endpoint(ctx, "")
	if err != nil {
		return container, "", fmt.Errorf("container.Endpoint: %w", err)
	}

	return container, addr, nil
}
