package domain

import "context"

type Skill struct {
	ID                    int64  `json:"id"`
	Name                  string `json:"name"`
	Level                 string `json:"level"`
	Category              string `json:"category"`
	ProficiencyPercentage int    `json:"proficiency_percentage"`
	Description           string `json:"description"`
	UserID                int64  `json:"user_id"`
}

type CreateSkillRequest struct {
	Name                  string `json:"name"`
	Level                 string `json:"level"`
	Category              string `json:"category"`
	ProficiencyPercentage int    `json:"proficiency_percentage"`
	Description           string `json:"description"`
	UserID                int64  `json:"user_id"`
}

// UpdateSkillRequest omits UserID: ownership does not change on update.
type UpdateSkillRequest struct {
	Name                  string `json:"name"`
	Level                 string `json:"level"`
	Category              string `json:"category"`
	ProficiencyPercentage int    `json:"proficiency_percentage"`
	Description           string `json:"description"`
}

type SkillRepository interface {
	Create(ctx context.Context, skill *Skill) error
	GetByID(ctx context.Context, id int64) (*Skill, error)
	Fetch(ctx context.Context) ([]Skill, error)
	FetchByUserID(ctx context.Context, userID int64) ([]Skill, error)
	Update(ctx context.Context, skill *Skill) error
	Delete(ctx context.Context, id int64) error
}

type SkillUsecase interface {
	Create(ctx context.Context, req CreateSkillRequest) (*Skill, error)
	GetByID(ctx context.Context, id int64) (*Skill, error)
	GetAll(ctx context.Context) ([]Skill, error)
	GetByUserID(ctx context.Context, userID int64) ([]Skill, error)
	Update(ctx context.Context, id int64, req UpdateSkillRequest) (*Skill, error)
	Delete(ctx context.Context, id int64) error
}
