//go:build unit

package repository

import (
	"context"
	"testing"

	"limited-drop-api/internal/domain/user"
	"limited-drop-api/internal/infra"
	sqlc "limited-drop-api/internal/infra/sqlc/generated"
	"limited-drop-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) UpsertGuestUser(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertGuestUserParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUserWriteQueries) AssignOwnerTag(ctx context.Context, db sqlc.DBTX, arg sqlc.AssignOwnerTagParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

// sqlc.DBTX implementation for MockUserWriteQueries
func (m *MockUserWriteQueries) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockUserWriteQueries) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockUserWriteQueries) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

func TestUpsertGuest(t *testing.T) {
	guestID := uuid.New()
	email, err := user.NewEmail("Guest@Example.com")
	require.NoError(t, err)

	tests := []struct {
		name      string
		phone     string
		wantPhone bool
		mockError error
		wantError bool
	}{
		{name: "success with phone", phone: "+2348012345678", wantPhone: true},
		{name: "success without phone"},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("UpsertGuestUser", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.UpsertGuestUserParams) bool {
				return arg.Email == "guest@example.com" && arg.Phone.Valid == tt.wantPhone
			})).Return(guestID, tt.mockError)

			repo := NewUserRepository(mockQueries, mockQueries)

			id, err := repo.UpsertGuest(context.Background(), mockQueries, email, tt.phone)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, guestID, id)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestAssignOwnerTag(t *testing.T) {
	userID := uuid.New()
	tag, err := user.ParseOwnerTag("ADB-23-78")
	require.NoError(t, err)

	tests := []struct {
		name      string
		rows      int64
		mockError error
		want      bool
		kind      infra.RepositoryErrorKind
	}{
		{name: "assigned", rows: 1, want: true},
		{name: "user already tagged", rows: 0, want: false},
		{name: "tag taken", mockError: &pgconn.PgError{Code: "23505", ConstraintName: "users_owner_tag_key"}, kind: infra.KindDuplicateKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("AssignOwnerTag", mock.Anything, mock.Anything, sqlc.AssignOwnerTagParams{
				ID:       userID,
				OwnerTag: pgconv.StringToPgtype("ADB-23-78"),
			}).Return(tt.rows, tt.mockError)

			repo := NewUserRepository(mockQueries, mockQueries)

			ok, err := repo.AssignOwnerTag(context.Background(), mockQueries, userID, tag)

			if tt.kind != "" {
				assert.True(t, infra.IsKind(err, tt.kind))
				assert.Equal(t, "users_owner_tag_key", infra.ConstraintOf(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, ok)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
