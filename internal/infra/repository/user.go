package repository

import (
	"context"

	"limited-drop-api/internal/domain/user"
	"limited-drop-api/internal/infra"
	sqlc "limited-drop-api/internal/infra/sqlc/generated"
	"limited-drop-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	UpsertGuestUser(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertGuestUserParams) (uuid.UUID, error)
	AssignOwnerTag(ctx context.Context, db sqlc.DBTX, arg sqlc.AssignOwnerTagParams) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

// UpsertGuest returns the user owning the email, creating a guest customer
// when none exists. An existing phone is never overwritten.
func (r *UserRepository) UpsertGuest(ctx context.Context, tx sqlc.DBTX, email user.Email, phone string) (uuid.UUID, error) {
	var contact *string
	if phone != "" {
		contact = &phone
	}
	id, err := r.queries.UpsertGuestUser(ctx, tx, sqlc.UpsertGuestUserParams{
		Email: email.Normalized(),
		Phone: pgconv.StringPtrToPgtype(contact),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert guest user", err)
	}
	return id, nil
}

func (r *UserRepository) AssignOwnerTag(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, tag user.OwnerTag) (bool, error) {
	n, err := r.queries.AssignOwnerTag(ctx, tx, sqlc.AssignOwnerTagParams{
		ID:       userID,
		OwnerTag: pgconv.StringToPgtype(tag.String()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to assign owner tag", err)
	}
	return n == 1, nil
}
