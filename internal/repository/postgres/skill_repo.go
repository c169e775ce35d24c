package postgres

import (
	"context"
	"errors"

	"go-reskilling-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const skillColumns = `id, name, level, category, proficiency_percentage, description, user_id`

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

func (r *skillRepo) Create(ctx context.Context, skill *domain.Skill) error {
	query := `INSERT INTO skills (name, level, category, proficiency_percentage, description, user_id)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRow(ctx, query,
		skill.Name, skill.Level, skill.Category, skill.ProficiencyPercentage, skill.Description, skill.UserID,
	).Scan(&skill.ID)
}

func (r *skillRepo) GetByID(ctx context.Context, id int64) (*domain.Skill, error) {
	var skill domain.Skill
	err := r.db.QueryRow(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = $1`, id).Scan(
		&skill.ID, &skill.Name, &skill.Level, &skill.Category,
		&skill.ProficiencyPercentage, &skill.Description, &skill.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepo) Fetch(ctx context.Context) ([]domain.Skill, error) {
	return r.fetch(ctx, `SELECT `+skillColumns+` FROM skills ORDER BY id`)
}

func (r *skillRepo) FetchByUserID(ctx context.Context, userID int64) ([]domain.Skill, error) {
	return r.fetch(ctx, `SELECT `+skillColumns+` FROM skills WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *skillRepo) fetch(ctx context.Context, query string, args ...any) ([]domain.Skill, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var skill domain.Skill
		if err := rows.Scan(
			&skill.ID, &skill.Name, &skill.Level, &skill.Category,
			&skill.ProficiencyPercentage, &skill.Description, &skill.UserID,
		); err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	return skills, rows.Err()
}

func (r *skillRepo) Update(ctx context.Context, skill *domain.Skill) error {
	query := `UPDATE skills SET name = $2, level = $3, category = $4,
	          proficiency_percentage = $5, description = $6 WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		skill.ID, skill.Name, skill.Level, skill.Category, skill.ProficiencyPercentage, skill.Description,
	)
	return err
}

func (r *skillRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	return err
}
