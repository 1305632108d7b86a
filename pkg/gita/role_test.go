package gita

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, s := range []string{"viewer", "editor", "admin"} {
		role, err := ParseRole(s)
		require.NoError(t, err)
		assert.Equal(t, Role(s), role)
		assert.True(t, role.Valid())
	}

	for _, s := range []string{"", "superadmin", "Editor", "ADMIN"} {
		_, err := ParseRole(s)
		assert.Error(t, err, "role %q should be rejected", s)
	}
}

func TestCanAccess(t *testing.T) {
	tests := []struct {
		role     Role
		required Role
		want     bool
	}{
		{RoleEditor, RoleEditor, true},
		{RoleAdmin, RoleEditor, true},
		{RoleViewer, RoleEditor, false},
		{RoleEditor, RoleAdmin, false},
		{RoleAdmin, RoleAdmin, true},
		{RoleViewer, RoleViewer, true},
		{RoleViewer, RoleAdmin, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanAccess(tt.role, tt.required),
			"CanAccess(%s, %s)", tt.role, tt.required)
	}
}

func TestCanAccessUnknownRole(t *testing.T) {
	assert.False(t, CanAccess("superuser", RoleEditor))
	assert.False(t, CanAccess(RoleAdmin, "root"))
}
