//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"limited-drop-api/internal/domain/user"
	"limited-drop-api/internal/infra"
	"limited-drop-api/internal/infra/readstore"
	sqlc "limited-drop-api/internal/infra/sqlc/generated"
	readstoremock "limited-drop-api/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	testCases := []struct {
		name       string
		row        sqlc.Users
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success",
			row: sqlc.Users{
				ID:           userID,
				Email:        "ada@example.com",
				FirstName:    "Adaeze",
				LastName:     "Bakare",
				Role:         "customer",
				PriorityClub: true,
				OwnerTag:     pgtype.Text{String: "ADB-23-78", Valid: true},
			},
		},
		{
			name:       "not found",
			err:        pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
		{
			name: "stored role is invalid",
			row: sqlc.Users{
				ID:    userID,
				Email: "ada@example.com",
				Role:  "viewer",
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockUserReadQueries(ctrl)
			store := readstore.NewUserReadStore(mockQueries, &mockDBTX{})

			mockQueries.EXPECT().GetUser(ctx, gomock.Any(), userID).Return(tc.row, tc.err)

			u, err := store.FindByID(ctx, userID)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				assert.Nil(t, u)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Adaeze Bakare", u.FullName())
			assert.True(t, u.PriorityClub())
			require.NotNil(t, u.OwnerTag())
			assert.Equal(t, "ADB-23-78", u.OwnerTag().String())
		})
	}
}

func TestUserReadStore_FindByOwnerTag(t *testing.T) {
	ctx := context.Background()
	tag, err := user.ParseOwnerTag("ADB-23-78")
	require.NoError(t, err)
	registered := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockUserReadQueries(ctrl)
	store := readstore.NewUserReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().GetUserByOwnerTag(ctx, gomock.Any(), pgtype.Text{String: "ADB-23-78", Valid: true}).Return(sqlc.Users{
		ID:        uuid.New(),
		FirstName: "Adaeze",
		LastName:  "Bakare",
		OwnerTag:  pgtype.Text{String: "ADB-23-78", Valid: true},
		CreatedAt: pgtype.Timestamptz{Time: registered, Valid: true},
	}, nil)

	view, err := store.FindByOwnerTag(ctx, tag)
	require.NoError(t, err)
	assert.Equal(t, "ADB-23-78", view.OwnerTag)
	assert.Equal(t, "Adaeze Bakare", view.OwnerName)
	assert.Equal(t, registered, view.RegisteredDate)
	assert.True(t, view.Verified)
}
