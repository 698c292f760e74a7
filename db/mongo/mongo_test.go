package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMongoDB(t *testing.T) {
	mg := NewMongoDB("mongodb://localhost:27017")

	assert.Equal(t, "mongodb://localhost:27017", mg.URL)
	require.NotNil(t, mg.GetContext())
	_, hasDeadline := mg.GetContext().Deadline()
	assert.True(t, hasDeadline, "startup connect must be bounded")
}
