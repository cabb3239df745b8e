package waitlist

import (
	"regexp"
	"strings"

	"limited-drop-api/internal/domain/user"
	"limited-drop-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrGuestEmailRequired = errs.New("email is required for guest waitlist joins")
	ErrGuestPhoneRequired = errs.New("whatsapp number is required for guest waitlist joins")
	ErrInvalidPhone       = errs.New("invalid whatsapp number, use E.164 format")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusNotified  Status = "notified"
	StatusConverted Status = "converted"
	StatusExpired   Status = "expired"
)

var e164 = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)

// NormalizePhone strips whitespace and checks E.164.
func NormalizePhone(raw string) (string, error) {
	p := strings.Join(strings.Fields(raw), "")
	if !e164.MatchString(p) {
		return "", ErrInvalidPhone
	}
	return p, nil
}

func IsE164(raw string) bool {
	_, err := NormalizePhone(raw)
	return err == nil
}

type GuestContact struct {
	Email user.Email
	Phone string
}

func NewGuestContact(email, phone string) (GuestContact, error) {
	if strings.TrimSpace(email) == "" {
		return GuestContact{}, ErrGuestEmailRequired
	}
	if strings.TrimSpace(phone) == "" {
		return GuestContact{}, ErrGuestPhoneRequired
	}
	e, err := user.NewEmail(email)
	if err != nil {
		return GuestContact{}, err
	}
	p, err := NormalizePhone(phone)
	if err != nil {
		return GuestContact{}, err
	}
	return GuestContact{Email: e, Phone: p}, nil
}

// VariantKey is the queue partition for an entry. Product-wide entries use "".
func VariantKey(variantID *uuid.UUID) string {
	if variantID == nil || *variantID == uuid.Nil {
		return ""
	}
	return variantID.String()
}
