//go:build unit || e2e

package builder

import (
	"time"

	"limited-drop-api/internal/domain/user"
	sqlc "limited-drop-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	FirstName    string
	LastName     string
	Phone        *string
	Role         string
	PriorityClub bool
	OwnerTag     *string
}

func NewUserBuilder() *UserBuilder {
	phone := "+2348012345678"
	return &UserBuilder{
		ID:        uuid.New(),
		Email:     "test@example.com",
		FirstName: "Adaeze",
		LastName:  "Bakare",
		Phone:     &phone,
		Role:      "customer",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	var tag *user.OwnerTag
	if u.OwnerTag != nil {
		parsed, err := user.ParseOwnerTag(*u.OwnerTag)
		if err != nil {
			return nil, err
		}
		tag = &parsed
	}

	now := time.Now()
	return user.ReconstructUser(u.ID, email, u.FirstName, u.LastName, u.Phone, role, u.PriorityClub, tag, now, now), nil
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	now := time.Now()
	row := sqlc.Users{
		ID:           u.ID,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         u.Role,
		PriorityClub: u.PriorityClub,
		CreatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
	}
	if u.Phone != nil {
		row.Phone = pgtype.Text{String: *u.Phone, Valid: true}
	}
	if u.OwnerTag != nil {
		row.OwnerTag = pgtype.Text{String: *u.OwnerTag, Valid: true}
	}
	return row
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithName(first, last string) *UserBuilder {
	u.FirstName = first
	u.LastName = last
	return u
}

func (u *UserBuilder) WithPhone(phone string) *UserBuilder {
	u.Phone = &phone
	return u
}

func (u *UserBuilder) WithoutPhone() *UserBuilder {
	u.Phone = nil
	return u
}

func (u *UserBuilder) WithOwnerTag(tag string) *UserBuilder {
	u.OwnerTag = &tag
	return u
}

func (u *UserBuilder) AsPriorityClub() *UserBuilder {
	u.PriorityClub = true
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = "admin"
	return u
}
