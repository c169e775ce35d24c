package postgres

import (
	"context"
	"errors"

	"go-reskilling-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const educationColumns = `id, degree, institution, completion_date, certificate, user_id`

type educationRepo struct {
	db *pgxpool.Pool
}

func NewEducationRepository(db *pgxpool.Pool) domain.EducationRepository {
	return &educationRepo{db: db}
}

func (r *educationRepo) Create(ctx context.Context, education *domain.Education) error {
	query := `INSERT INTO educations (degree, institution, completion_date, certificate, user_id)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRow(ctx, query,
		education.Degree, education.Institution, education.CompletionDate,
		education.Certificate, education.UserID,
	).Scan(&education.ID)
}

func (r *educationRepo) GetByID(ctx context.Context, id int64) (*domain.Education, error) {
	var education domain.Education
	err := r.db.QueryRow(ctx, `SELECT `+educationColumns+` FROM educations WHERE id = $1`, id).Scan(
		&education.ID, &education.Degree, &education.Institution,
		&education.CompletionDate, &education.Certificate, &education.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &education, nil
}

func (r *educationRepo) Fetch(ctx context.Context) ([]domain.Education, error) {
	return r.fetch(ctx, `SELECT `+educationColumns+` FROM educations ORDER BY id`)
}

func (r *educationRepo) FetchByUserID(ctx context.Context, userID int64) ([]domain.Education, error) {
	return r.fetch(ctx, `SELECT `+educationColumns+` FROM educations WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *educationRepo) fetch(ctx context.Context, query string, args ...any) ([]domain.Education, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var educations []domain.Education
	for rows.Next() {
		var education domain.Education
		if err := rows.Scan(
			&education.ID, &education.Degree, &education.Institution,
			&education.CompletionDate, &education.Certificate, &education.UserID,
		); err != nil {
			return nil, err
		}
		educations = append(educations, education)
	}
	return educations, rows.Err()
}

func (r *educationRepo) Update(ctx context.Context, education *domain.Education) error {
	query := `UPDATE educations SET degree = $2, institution = $3,
	          completion_date = $4, certificate = $5 WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		education.ID, education.Degree, education.Institution,
		education.CompletionDate, education.Certificate,
	)
	return err
}

func (r *educationRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM educations WHERE id = $1`, id)
	return err
}
