package turso

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	_ "github.com/tursodatabase/go-libsql"

	"github.com/workwatchhq/agent/internal/migrate"
)

// testDB creates an in-memory database with all migrations applied.
// Fast, used by default.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("libsql", "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := migrate.RunAll(context.Background(), db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	return db
}

// testTursoDB starts a libsql-server container for full integration
// testing. Slower; only runs when WORKWATCH_TEST_TURSO=1.
func testTursoDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "ghcr.io/tursodatabase/libsql-server:latest",
		ExposedPorts: []string{"8080/tcp"},
		WaitingFor:   wait.ForHTTP("/health").WithPort("8080/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("start libsql-server container: %v", err)
	}
	t.Cleanup(func() { container.Terminate(ctx) })

	mappedPort, err := container.MappedPort(ctx, "8080")
	if err != nil {
		t.Fatalf("get mapped port: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("get container host: %v", err)
	}

	db, err := NewDB(fmt.Sprintf("http://%s:%s", host, mappedPort.Port()), "")
	if err != nil {
		t.Fatalf("connect to libsql-server: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := migrate.RunAll(ctx, db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	return db
}
