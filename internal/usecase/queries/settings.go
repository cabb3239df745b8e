package queries

import (
	"context"

	"limited-drop-api/internal/domain/user"
	"limited-drop-api/internal/infra"
	"limited-drop-api/internal/pkg/errs"
	"limited-drop-api/internal/usecase/shared"
)

const (
	settingWhatsAppNumber = "whatsapp_number"
	// DefaultWhatsAppNumber is served until an admin stores a number.
	DefaultWhatsAppNumber = "+2348000000000"
)

type SettingsReadStore interface {
	Get(ctx context.Context, key string) (string, error)
}

type SettingsQueries interface {
	Contact(ctx context.Context) (*ContactSettingsView, error)
	VerifyOwner(ctx context.Context, tag string) (*OwnerVerificationView, error)
}

type settingsQueriesImpl struct {
	settings SettingsReadStore
	users    UserReadStore
	cache    shared.SettingsCache
}

func NewSettingsQueries(settings SettingsReadStore, users UserReadStore, cache shared.SettingsCache) SettingsQueries {
	return &settingsQueriesImpl{settings: settings, users: users, cache: cache}
}

func (q *settingsQueriesImpl) Contact(ctx context.Context) (*ContactSettingsView, error) {
	number, err := q.cache.GetOrLoad(ctx, settingWhatsAppNumber, func(ctx context.Context) (string, error) {
		v, err := q.settings.Get(ctx, settingWhatsAppNumber)
		if infra.IsKind(err, infra.KindNotFound) {
			return DefaultWhatsAppNumber, nil
		}
		return v, err
	})
	if err != nil {
		return nil, err
	}
	return &ContactSettingsView{WhatsAppNumber: number}, nil
}

// VerifyOwner looks up the public owner record behind an owner tag.
func (q *settingsQueriesImpl) VerifyOwner(ctx context.Context, tag string) (*OwnerVerificationView, error) {
	parsed, err := user.ParseOwnerTag(tag)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	view, err := q.users.FindByOwnerTag(ctx, parsed)
	if err != nil {
		return nil, notFoundAs(err, errs.ErrOwnerTagNotFound)
	}
	return view, nil
}
