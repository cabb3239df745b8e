//go:build unit || e2e

package authtest

import (
	"testing"

	"limited-drop-api/internal/domain/user"
	"limited-drop-api/tests/common/dbtest"

	"github.com/google/uuid"
)

// CreateAndAuthenticate seeds a user row and returns a bearer token for it.
// Sign-in itself belongs to the auth service, so the token is minted directly.
func CreateAndAuthenticate(t *testing.T, db dbtest.DBLike, h *JWTHelper, email string, role user.Role) (uuid.UUID, string) {
	t.Helper()

	userID := dbtest.CreateTestUser(t, db, email, role.String())
	return userID, h.GenerateToken(t, userID, role)
}
