package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole(RoleOwner))
	assert.True(t, IsValidRole(RoleViewer))
	assert.False(t, IsValidRole(Role("admin")))
	assert.False(t, IsValidRole(Role("")))
}

func TestUserJSONOmitsPasswordHash(t *testing.T) {
	u := User{ID: "u-1", Email: "a@b.io", PasswordHash: "secret-hash"}

	out, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "secret-hash")
}
