package postgres

import (
	"context"
	"errors"

	"go-reskilling-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const courseColumns = `id, title, description, category, difficulty, url, created_at, updated_at, user_id`

type courseRepo struct {
	db *pgxpool.Pool
}

func NewCourseRepository(db *pgxpool.Pool) domain.CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) Create(ctx context.Context, course *domain.Course) error {
	query := `INSERT INTO courses (title, description, category, difficulty, url, created_at, updated_at, user_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRow(ctx, query,
		course.Title, course.Description, course.Category, course.Difficulty,
		course.URL, course.CreatedAt, course.UpdatedAt, course.UserID,
	).Scan(&course.ID)
}

func (r *courseRepo) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	var course domain.Course
	err := r.db.QueryRow(ctx, `SELECT `+courseColumns+` FROM courses WHERE id = $1`, id).Scan(
		&course.ID, &course.Title, &course.Description, &course.Category, &course.Difficulty,
		&course.URL, &course.CreatedAt, &course.UpdatedAt, &course.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) Fetch(ctx context.Context) ([]domain.Course, error) {
	return r.fetch(ctx, `SELECT `+courseColumns+` FROM courses ORDER BY id`)
}

func (r *courseRepo) FetchByUserID(ctx context.Context, userID int64) ([]domain.Course, error) {
	return r.fetch(ctx, `SELECT `+courseColumns+` FROM courses WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *courseRepo) fetch(ctx context.Context, query string, args ...any) ([]domain.Course, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		var course domain.Course
		if err := rows.Scan(
			&course.ID, &course.Title, &course.Description, &course.Category, &course.Difficulty,
			&course.URL, &course.CreatedAt, &course.UpdatedAt, &course.UserID,
		); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}

func (r *courseRepo) Update(ctx context.Context, course *domain.Course) error {
	query := `UPDATE courses SET title = $2, description = $3, category = $4,
	          difficulty = $5, url = $6, updated_at = $7 WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		course.ID, course.Title, course.Description, course.Category,
		course.Difficulty, course.URL, course.UpdatedAt,
	)
	return err
}

func (r *courseRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	return err
}
