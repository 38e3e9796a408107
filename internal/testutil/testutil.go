// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"

	"storesearch/internal/db"
)

// TestDB creates a test database connection and returns a cleanup function.
// The test is skipped unless TEST_DATABASE_URL is set.
func TestDB(t *testing.T) (*db.DB, func()) {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("Skipping integration test: TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	database, err := db.New(ctx, connString)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := database.RunMigrations(connString); err != nil {
		database.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	database.Pool.Exec(ctx, "DELETE FROM strategy_lookups")

	cleanup := func() {
		database.Pool.Exec(ctx, "DELETE FROM strategy_lookups")
		database.Close()
	}
	return database, cleanup
}

// MemStorage is an in-memory key/value store for recent searches. Expiry is
// ignored.
type MemStorage struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemStorage creates an empty MemStorage.
func NewMemStorage() *MemStorage {
	return &MemStorage{data: make(map[string][]byte)}
}

func (m *MemStorage) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *MemStorage) Set(key string, val []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), val...)
	return nil
}

func (m *MemStorage) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// SubjectVerifier accepts any non-empty bearer token and uses it as the
// token subject.
type SubjectVerifier struct{}

func (SubjectVerifier) Verify(_ context.Context, raw string) (*oidc.IDToken, error) {
	if raw == "" {
		return nil, errors.New("empty token")
	}
	return &oidc.IDToken{Subject: raw}, nil
}
