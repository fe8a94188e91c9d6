package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

func ToRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleCustomer:
		return Role(s), nil
	}
	return "", errors.New("invalid role")
}

type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Role      Role
	CreatedAt time.Time
}

// CurrentUser is the caller identity resolved by the auth layer.
type CurrentUser struct {
	ID   uuid.UUID
	Role Role
}

func (u CurrentUser) IsAdmin() bool {
	return u.ID != uuid.Nil && u.Role == RoleAdmin
}

func (u CurrentUser) IsAnonymous() bool {
	return u.ID == uuid.Nil
}

func (u User) AsCurrentUser() CurrentUser {
	return CurrentUser{ID: u.ID, Role: u.Role}
}
