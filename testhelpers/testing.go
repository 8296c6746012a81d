package testhelpers

import (
	"context"
	"os"
	"testing"

	"mainthub/pkg/database"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TestDB holds the database connection for testing
type TestDB struct {
	Pool    *pgxpool.Pool
	Cleanup func()
}

// fixtureSchema is the subset of tables the integration tests touch.
const fixtureSchema = `
CREATE EXTENSION IF NOT EXISTS pgcrypto;
CREATE TABLE IF NOT EXISTS locations (
	id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	name text NOT NULL,
	description text,
	parent_location_id uuid REFERENCES locations(id),
	created_at timestamptz DEFAULT now(),
	updated_at timestamptz DEFAULT now()
);
CREATE TABLE IF NOT EXISTS assets (
	id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	asset_number text NOT NULL UNIQUE,
	name text NOT NULL,
	description text,
	category text,
	manufacturer text,
	model text,
	serial_number text,
	purchase_date date,
	purchase_cost numeric,
	status text,
	location_id uuid REFERENCES locations(id),
	notes text,
	created_at timestamptz DEFAULT now(),
	updated_at timestamptz DEFAULT now()
);`

// SetupTestDB connects to TEST_DATABASE_URL and creates the fixture tables.
// The test is skipped in short mode or when no database is configured.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, connString, database.PoolOptions{MaxConns: 4})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if _, err := pool.Exec(ctx, fixtureSchema); err != nil {
		pool.Close()
		t.Fatalf("Failed to create fixture schema: %v", err)
	}

	return &TestDB{
		Pool: pool,
		Cleanup: func() {
			_, _ = pool.Exec(context.Background(), "TRUNCATE assets, locations CASCADE")
			pool.Close()
		},
	}
}
