//go:build !sqlite

package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *Bolt {
	t.Helper()

	db, err := NewBolt(filepath.Join(t.TempDir(), "test.storage"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func TestBolt(t *testing.T) {
	runStoreContract(t, func(t *testing.T) Store {
		return setupTestDB(t)
	})
}

func TestBolt_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "board.bolt")

	db, err := NewBolt(path)
	require.NoError(t, err)
	require.NoError(t, db.Set("GithubExplorer:repositories", `[]`))
	require.NoError(t, db.Close())

	reopened, err := Open(path)
	require.NoError(t, err)

	defer func() { _ = reopened.Close() }()

	v, ok, err := reopened.Get("GithubExplorer:repositories")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[]`, v)
}
