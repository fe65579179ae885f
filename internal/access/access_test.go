package access

import (
	"testing"

	"construction-marketplace/internal/marketerrors"

	"github.com/stretchr/testify/require"
)

func TestController_ToggleActive(t *testing.T) {
	t.Parallel()

	ctrl := NewController("admin")
	require.Equal(t, "admin", ctrl.Owner())
	require.False(t, ctrl.Stopped())

	// non-owner cannot toggle
	_, err := ctrl.ToggleActive("mallory")
	require.ErrorIs(t, err, marketerrors.ErrUnauthorized)
	require.False(t, ctrl.Stopped())

	// owner toggles on, then off again
	stopped, err := ctrl.ToggleActive("admin")
	require.NoError(t, err)
	require.True(t, stopped)
	require.True(t, ctrl.Stopped())

	stopped, err = ctrl.ToggleActive("admin")
	require.NoError(t, err)
	require.False(t, stopped)
	require.False(t, ctrl.Stopped())
}

func TestController_Gates(t *testing.T) {
	t.Parallel()

	ctrl := NewController("admin")

	require.NoError(t, ctrl.RequireRunning())
	require.Error(t, ctrl.RequireStopped())

	_, err := ctrl.ToggleActive("admin")
	require.NoError(t, err)

	err = ctrl.RequireRunning()
	require.ErrorIs(t, err, marketerrors.ErrEmergencyStopped)
	require.NoError(t, ctrl.RequireStopped())
}

func TestController_RequireOwner(t *testing.T) {
	t.Parallel()

	ctrl := NewController("admin")

	require.NoError(t, ctrl.RequireOwner("admin"))
	require.ErrorIs(t, ctrl.RequireOwner("bob"), marketerrors.ErrUnauthorized)
	require.ErrorIs(t, ctrl.RequireOwner(""), marketerrors.ErrUnauthorized)
}
