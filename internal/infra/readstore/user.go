package readstore

import (
	"context"

	"limited-drop-api/internal/domain/user"
	"limited-drop-api/internal/infra"
	"limited-drop-api/internal/infra/repository/converter"
	sqlc "limited-drop-api/internal/infra/sqlc/generated"
	"limited-drop-api/internal/pkg/pgconv"
	"limited-drop-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadQueries interface {
	GetUser(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	GetUserByOwnerTag(ctx context.Context, db sqlc.DBTX, ownerTag pgtype.Text) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.GetUser(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	u, err := converter.UserToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user is invalid", err, infra.KindDBFailure)
	}
	return u, nil
}

func (r *UserReadStore) FindByOwnerTag(ctx context.Context, tag user.OwnerTag) (*queries.OwnerVerificationView, error) {
	row, err := r.queries.GetUserByOwnerTag(ctx, r.db, pgconv.StringToPgtype(tag.String()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by owner tag", err)
	}

	return &queries.OwnerVerificationView{
		OwnerTag:       row.OwnerTag.String,
		OwnerName:      joinName(row.FirstName, row.LastName),
		RegisteredDate: pgconv.TimeFromPgtype(row.CreatedAt),
		Verified:       true,
	}, nil
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}
