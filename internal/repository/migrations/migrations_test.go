package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresFilesAreEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(Postgres(), ".")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	b, err := fs.ReadFile(Postgres(), "00001_init.sql")
	require.NoError(t, err)

	sql := string(b)
	assert.True(t, strings.HasPrefix(sql, "-- +goose Up"))
	assert.Contains(t, sql, "-- +goose Down")
	for _, table := range []string{"plants", "journal_entries", "reminders", "community_posts"} {
		assert.Contains(t, sql, "CREATE TABLE IF NOT EXISTS "+table)
	}
}
