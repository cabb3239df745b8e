package middleware

import (
	"limited-drop-api/internal/domain/user"
	"limited-drop-api/internal/domain/waitlist"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by request DTOs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("e164", validateE164); err != nil {
		return err
	}
	return v.RegisterValidation("ownertag", validateOwnerTag)
}

func validateE164(fl validator.FieldLevel) bool {
	return waitlist.IsE164(fl.Field().String())
}

func validateOwnerTag(fl validator.FieldLevel) bool {
	_, err := user.ParseOwnerTag(fl.Field().String())
	return err == nil
}
