// Package integration_test provides a shared PostgreSQL for repository tests.
// It uses POSTGRES_* from the environment when POSTGRES_HOST is set and
// otherwise starts a throwaway container. Migrations are applied once.
package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/postgres"
	"marketplace/pkg/logger/zap_adapter"
	"marketplace/pkg/querier"
	"marketplace/pkg/tx"
)

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	setupOnce       sync.Once
)

func setup() {
	ctx := context.Background()
	zapLogger := zap_adapter.NewNop()

	cfg := &config.Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
	if cfg.Host == "" {
		cfg = startContainer(ctx)
	}

	pool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
	if err != nil {
		log.Fatalf("connect test database: %v", err)
	}

	if err := postgres.Migrate(ctx, zapLogger, pool); err != nil {
		log.Fatalf("migrate test database: %v", err)
	}

	poolInstance = pool
	querierInstance = querier.New(pool, pgxv5.DefaultCtxGetter)
}

// startContainer is reaped by testcontainers when the test binary exits.
func startContainer(ctx context.Context) *config.Database {
	container, err := tcpostgres.Run(ctx,
		"postgres:17-alpine",
		tcpostgres.WithDatabase("marketplace"),
		tcpostgres.WithUsername("marketplace"),
		tcpostgres.WithPassword("marketplace"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("start postgres container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		log.Fatalf("postgres container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		log.Fatalf("postgres container port: %v", err)
	}

	return &config.Database{
		Host:     host,
		Port:     port.Port(),
		User:     "marketplace",
		Password: "marketplace",
		DBName:   "marketplace",
		SSLMode:  "disable",
	}
}

func GetQuerier() *querier.Querier {
	setupOnce.Do(setup)
	return querierInstance
}

func GetTxManager() *tx.Manager {
	setupOnce.Do(setup)
	return tx.New(poolInstance)
}

func SetupDB(t *testing.T, setupSql string) {
	t.Helper()
	if setupSql == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE order_status_history, order_events, order_items, orders,
			menu_items, restaurants, couriers, customers CASCADE;
	`)
	require.NoError(t, err)
}

// Fixture ids used across repository tests.
const (
	CustomerID   = "11111111-1111-1111-1111-111111111111"
	RestaurantID = "22222222-2222-2222-2222-222222222222"
	OtherRestID  = "22222222-2222-2222-2222-999999999999"
	CourierA     = "33333333-3333-3333-3333-aaaaaaaaaaaa"
	CourierB     = "33333333-3333-3333-3333-bbbbbbbbbbbb"
	MenuItemX    = "44444444-4444-4444-4444-000000000001"
	MenuItemY    = "44444444-4444-4444-4444-000000000002"
	MenuItemZ    = "44444444-4444-4444-4444-000000000003"
)

// SeedSQL creates one customer, two restaurants (the second inactive), two
// couriers and three menu items (Z belongs to the inactive restaurant).
const SeedSQL = `
	INSERT INTO customers (id, name, email, detailed_address, district, province)
	VALUES ('` + CustomerID + `', 'Alice', 'alice@example.com', '12 Main St', 'Ba Dinh', 'Hanoi');

	INSERT INTO restaurants (id, name, detailed_address, district, province, is_active)
	VALUES ('` + RestaurantID + `', 'Pho 24', '1 Food St', 'Hoan Kiem', 'Hanoi', TRUE),
	       ('` + OtherRestID + `', 'Closed Diner', '', '', '', FALSE);

	INSERT INTO couriers (id, name, email, balance)
	VALUES ('` + CourierA + `', 'Courier A', 'a@example.com', 120.00),
	       ('` + CourierB + `', 'Courier B', 'b@example.com', 0);

	INSERT INTO menu_items (id, restaurant_id, name, price)
	VALUES ('` + MenuItemX + `', '` + RestaurantID + `', 'Pho Bo', 10.00),
	       ('` + MenuItemY + `', '` + RestaurantID + `', 'Spring Rolls', 12.50),
	       ('` + MenuItemZ + `', '` + OtherRestID + `', 'Burger', 8.00);
`
