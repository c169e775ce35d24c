package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is what repositories return when a row does not exist.
// Usecases translate it into the message-bearing domain error.
var ErrNotFound = errors.New("resource not found")

type User struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Password     string      `json:"-"`
	Phone        string      `json:"phone"`
	BirthDate    time.Time   `json:"birth_date"`
	CurrentRole  string      `json:"current_role"`
	InterestArea string      `json:"interest_area"`
	Skills       []Skill     `json:"skills"`
	Courses      []Course    `json:"courses"`
	Educations   []Education `json:"educations"`
}

type CreateUserRequest struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Password     string    `json:"password"`
	Phone        string    `json:"phone"`
	BirthDate    time.Time `json:"birth_date"`
	CurrentRole  string    `json:"current_role"`
	InterestArea string    `json:"interest_area"`
}

// UpdateUserRequest carries the mutable fields; the password is immutable
// through update.
type UpdateUserRequest struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	BirthDate    time.Time `json:"birth_date"`
	CurrentRole  string    `json:"current_role"`
	InterestArea string    `json:"interest_area"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// GetByEmailTrimmed compares emails with surrounding whitespace
	// stripped on both sides; it backs the uniqueness check.
	GetByEmailTrimmed(ctx context.Context, email string) (*User, error)
	Fetch(ctx context.Context) ([]User, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, user *User) error
	// Delete removes the user's skills, courses and education records
	// together with the user itself, in one transaction.
	Delete(ctx context.Context, id int64) error
}

type UserUsecase interface {
	Create(ctx context.Context, req CreateUserRequest) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetAll(ctx context.Context) ([]User, error)
	Update(ctx context.Context, id int64, req UpdateUserRequest) (*User, error)
	Delete(ctx context.Context, id int64) error
}
