package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostgresDB(t *testing.T) {
	pg := NewPostgresDB("postgres://localhost:5432/lightbill?sslmode=disable")

	assert.Equal(t, "postgres://localhost:5432/lightbill?sslmode=disable", pg.URL)
	require.NotNil(t, pg.GetContext())
	_, hasDeadline := pg.GetContext().Deadline()
	assert.True(t, hasDeadline, "startup connect must be bounded")
}

func TestDisconnectWithoutConnection(t *testing.T) {
	pg := NewPostgresDB("postgres://localhost:5432/lightbill")
	assert.NoError(t, pg.Disconnect())
}
