//go:build unit

package dbtest_test

import (
	"testing"

	"bonojuntos/internal/pkg/password"
	"bonojuntos/tests/common/dbtest"

	"github.com/stretchr/testify/require"
)

// Every e2e login types "password123" against collaborators seeded with
// TestPasswordHash; the fixture must verify or the whole e2e suite fails
// at setup.
func TestFixturePasswordHashVerifies(t *testing.T) {
	require.NoError(t, password.Verify(dbtest.TestPasswordHash, "password123"))
	require.ErrorIs(t, password.Verify(dbtest.TestPasswordHash, "wrong-password"), password.ErrMismatch)
}
