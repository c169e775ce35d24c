package domain

import (
	"context"
	"time"
)

type Education struct {
	ID             int64     `json:"id"`
	Degree         string    `json:"degree"`
	Institution    string    `json:"institution"`
	CompletionDate time.Time `json:"completion_date"`
	Certificate    string    `json:"certificate"`
	UserID         int64     `json:"user_id"`
}

type CreateEducationRequest struct {
	Degree         string    `json:"degree"`
	Institution    string    `json:"institution"`
	CompletionDate time.Time `json:"completion_date"`
	Certificate    string    `json:"certificate"`
	UserID         int64     `json:"user_id"`
}

type UpdateEducationRequest struct {
	Degree         string    `json:"degree"`
	Institution    string    `json:"institution"`
	CompletionDate time.Time `json:"completion_date"`
	Certificate    string    `json:"certificate"`
}

type EducationRepository interface {
	Create(ctx context.Context, education *Education) error
	GetByID(ctx context.Context, id int64) (*Education, error)
	Fetch(ctx context.Context) ([]Education, error)
	FetchByUserID(ctx context.Context, userID int64) ([]Education, error)
	Update(ctx context.Context, education *Education) error
	Delete(ctx context.Context, id int64) error
}

type EducationUsecase interface {
	Create(ctx context.Context, req CreateEducationRequest) (*Education, error)
	GetByID(ctx context.Context, id int64) (*Education, error)
	GetAll(ctx context.Context) ([]Education, error)
	GetByUserID(ctx context.Context, userID int64) ([]Education, error)
	Update(ctx context.Context, id int64, req UpdateEducationRequest) (*Education, error)
	Delete(ctx context.Context, id int64) error
}
