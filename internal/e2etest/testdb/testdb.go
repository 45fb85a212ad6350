// Package testdb starts a throwaway Postgres for end to end tests.
package testdb

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type TestDBInstance struct {
	container *postgres.PostgresContainer
	DSN       string
}

func NewTestDBInstance() (*TestDBInstance, error) {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("smartshop"),
		postgres.WithUsername("smartshop"),
		postgres.WithPassword("smartshop"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return &TestDBInstance{container: container, DSN: dsn}, nil
}

func (db *TestDBInstance) Down() {
	if db.container != nil {
		_ = db.container.Terminate(context.Background())
	}
}
