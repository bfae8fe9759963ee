package sqlstore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(DriverSQLite, ":memory:", Options{})
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	for _, table := range []string{"users", "projects", "tasks"} {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}
}

func TestMigrationsAreRepeatable(t *testing.T) {
	db := NewTestDB(t)
	require.NoError(t, db.RunMigrations())
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New("mysql", "whatever", Options{})
	require.Error(t, err)
}

func TestRebind(t *testing.T) {
	sqliteDB := &DB{driver: DriverSQLite}
	pgDB := &DB{driver: DriverPostgres}

	query := "UPDATE tasks SET title = ?, completed = ? WHERE id = ?"
	require.Equal(t, query, sqliteDB.rebind(query))
	require.Equal(t, "UPDATE tasks SET title = $1, completed = $2 WHERE id = $3", pgDB.rebind(query))
}

func TestEscapeLike(t *testing.T) {
	require.Equal(t, `50\% off\_now\\`, escapeLike(`50% off_now\`))
}
