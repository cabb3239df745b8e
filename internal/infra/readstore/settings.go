package readstore

import (
	"context"

	"limited-drop-api/internal/infra"
	sqlc "limited-drop-api/internal/infra/sqlc/generated"
)

type SettingsReadQueries interface {
	GetSetting(ctx context.Context, db sqlc.DBTX, key string) (sqlc.Settings, error)
}

type SettingsReadStore struct {
	queries SettingsReadQueries
	db      sqlc.DBTX
}

func NewSettingsReadStore(queries SettingsReadQueries, db sqlc.DBTX) *SettingsReadStore {
	return &SettingsReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SettingsReadStore) Get(ctx context.Context, key string) (string, error) {
	row, err := r.queries.GetSetting(ctx, r.db, key)
	if err != nil {
		return "", infra.WrapRepoErr("failed to get setting", err)
	}
	return row.Value, nil
}
