package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-admin-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-admin-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-admin-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
	assert.False(t, CheckPasswordHash("s3cret-admin-pass", "not-a-hash"))
}
