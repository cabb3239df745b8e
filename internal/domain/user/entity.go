package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the storefront profile. Credentials live with the identity provider.
type User struct {
	id           uuid.UUID
	email        Email
	firstName    string
	lastName     string
	phone        *string
	role         Role
	priorityClub bool
	ownerTag     *OwnerTag
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, firstName, lastName string, phone *string, role Role) *User {
	return &User{
		id:        uuid.New(),
		email:     email,
		firstName: firstName,
		lastName:  lastName,
		phone:     phone,
		role:      role,
	}
}

// NewGuest is the placeholder profile created for guest waitlist joins.
func NewGuest(email Email, phone string) *User {
	return NewUser(email, "", "", &phone, RoleCustomer)
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	firstName, lastName string,
	phone *string,
	role Role,
	priorityClub bool,
	ownerTag *OwnerTag,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		firstName:    firstName,
		lastName:     lastName,
		phone:        phone,
		role:         role,
		priorityClub: priorityClub,
		ownerTag:     ownerTag,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) FirstName() string    { return u.firstName }
func (u *User) LastName() string     { return u.lastName }
func (u *User) Phone() *string       { return u.phone }
func (u *User) Role() Role           { return u.role }
func (u *User) PriorityClub() bool   { return u.priorityClub }
func (u *User) OwnerTag() *OwnerTag  { return u.ownerTag }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func (u *User) FullName() string {
	switch {
	case u.firstName == "":
		return u.lastName
	case u.lastName == "":
		return u.firstName
	default:
		return u.firstName + " " + u.lastName
	}
}
