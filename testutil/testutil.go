// Package testutil contains helpers for tests that need a live PostgreSQL server.
package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DatabaseEnvVar names the environment variable holding the connection string of the test database.
const DatabaseEnvVar = "PGRANGE_TEST_DATABASE"

// MustConnectPgx connects to the test database. The test is skipped if DatabaseEnvVar is not set.
func MustConnectPgx(t testing.TB) *pgx.Conn {
	connString := os.Getenv(DatabaseEnvVar)
	if connString == "" {
		t.Skipf("skipping due to missing environment variable %v", DatabaseEnvVar)
	}

	conn, err := pgx.Connect(context.Background(), connString)
	if err != nil {
		t.Fatal(err)
	}

	return conn
}

func MustCloseContext(t testing.TB, conn interface {
	Close(context.Context) error
}) {
	err := conn.Close(context.Background())
	if err != nil {
		t.Fatal(err)
	}
}

// MustBegin starts a transaction that is rolled back when the test ends.
func MustBegin(t testing.TB, conn *pgx.Conn) pgx.Tx {
	tx, err := conn.Begin(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		tx.Rollback(context.Background())
	})

	return tx
}

func MustExec(t testing.TB, conn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}, sql string, arguments ...any) pgconn.CommandTag {
	commandTag, err := conn.Exec(context.Background(), sql, arguments...)
	if err != nil {
		t.Fatalf("Exec unexpectedly failed with %v: %v", sql, err)
	}
	return commandTag
}
