package repository

import (
	"context"

	"limited-drop-api/internal/infra"
	sqlc "limited-drop-api/internal/infra/sqlc/generated"
)

type SettingsWriteQueries interface {
	UpsertSetting(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertSettingParams) error
}

type SettingsRepository struct {
	queries SettingsWriteQueries
	db      sqlc.DBTX
}

func NewSettingsRepository(queries SettingsWriteQueries, db sqlc.DBTX) *SettingsRepository {
	return &SettingsRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SettingsRepository) Upsert(ctx context.Context, tx sqlc.DBTX, key, value string) error {
	err := r.queries.UpsertSetting(ctx, tx, sqlc.UpsertSettingParams{Key: key, Value: value})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert setting", err)
	}
	return nil
}
