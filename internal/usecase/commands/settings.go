package commands

import (
	"context"
	"log/slog"

	"limited-drop-api/internal/domain/waitlist"
	"limited-drop-api/internal/usecase/shared"
)

// SettingWhatsAppNumber is the settings key of the storefront contact number.
const SettingWhatsAppNumber = "whatsapp_number"

type SettingsCommands interface {
	UpdateContact(ctx context.Context, whatsAppNumber string) (string, error)
}

type settingsUseCaseImpl struct {
	uow   shared.UnitOfWork
	cache shared.SettingsCache
}

func NewSettingsUseCase(uow shared.UnitOfWork, cache shared.SettingsCache) SettingsCommands {
	return &settingsUseCaseImpl{uow: uow, cache: cache}
}

func (uc *settingsUseCaseImpl) UpdateContact(ctx context.Context, whatsAppNumber string) (string, error) {
	number, err := waitlist.NormalizePhone(whatsAppNumber)
	if err != nil {
		return "", validationErr(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return dbErr(tx.Settings().Upsert(ctx, tx.DB(), SettingWhatsAppNumber, number))
	})
	if err != nil {
		return "", err
	}

	if err := uc.cache.Invalidate(ctx, SettingWhatsAppNumber); err != nil {
		slog.Warn("failed to invalidate settings cache", "key", SettingWhatsAppNumber, "error", err.Error())
	}
	return number, nil
}
