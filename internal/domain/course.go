package domain

import (
	"context"
	"time"
)

type Course struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Difficulty  string    `json:"difficulty"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	UserID      int64     `json:"user_id"`
}

type CreateCourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
	URL         string `json:"url"`
	UserID      int64  `json:"user_id"`
}

type UpdateCourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
	URL         string `json:"url"`
}

type CourseRepository interface {
	Create(ctx context.Context, course *Course) error
	GetByID(ctx context.Context, id int64) (*Course, error)
	Fetch(ctx context.Context) ([]Course, error)
	FetchByUserID(ctx context.Context, userID int64) ([]Course, error)
	Update(ctx context.Context, course *Course) error
	Delete(ctx context.Context, id int64) error
}

type CourseUsecase interface {
	Create(ctx context.Context, req CreateCourseRequest) (*Course, error)
	GetByID(ctx context.Context, id int64) (*Course, error)
	GetAll(ctx context.Context) ([]Course, error)
	GetByUserID(ctx context.Context, userID int64) ([]Course, error)
	Update(ctx context.Context, id int64, req UpdateCourseRequest) (*Course, error)
	Delete(ctx context.Context, id int64) error
}
