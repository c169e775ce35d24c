package usecase

import (
	"context"
	"errors"

	"go-reskilling-backend/internal/domain"
	"go-reskilling-backend/pkg/apperror"
	"go-reskilling-backend/pkg/validation"
)

type skillUsecase struct {
	skillRepo domain.SkillRepository
	userRepo  domain.UserRepository
}

func NewSkillUsecase(skillRepo domain.SkillRepository, userRepo domain.UserRepository) domain.SkillUsecase {
	return &skillUsecase{skillRepo: skillRepo, userRepo: userRepo}
}

func validateSkillFields(name, level, category string, proficiency int) error {
	if err := validation.RequiredString("Name", name); err != nil {
		return err
	}
	if err := validation.RequiredString("Level", level); err != nil {
		return err
	}
	if err := validation.RequiredString("Category", category); err != nil {
		return err
	}
	if err := validation.IntBetween("Proficiency must be between 0 and 100.", proficiency, 0, 100); err != nil {
		return err
	}
	return nil
}

func (u *skillUsecase) Create(ctx context.Context, req domain.CreateSkillRequest) (*domain.Skill, error) {
	if err := validateSkillFields(req.Name, req.Level, req.Category, req.ProficiencyPercentage); err != nil {
		return nil, err
	}

	// Referential check runs after the field checks and before any insert.
	exists, err := u.userRepo.ExistsByID(ctx, req.UserID)
	if err != nil {
		return nil, storeErr(err)
	}
	if !exists {
		return nil, apperror.ReferenceNotFound("The provided UserId does not exist.")
	}

	skill := &domain.Skill{
		Name:                  req.Name,
		Level:                 req.Level,
		Category:              req.Category,
		ProficiencyPercentage: req.ProficiencyPercentage,
		Description:           req.Description,
		UserID:                req.UserID,
	}
	if err := u.skillRepo.Create(ctx, skill); err != nil {
		return nil, storeErr(err)
	}
	return skill, nil
}

func (u *skillUsecase) GetByID(ctx context.Context, id int64) (*domain.Skill, error) {
	skill, err := u.skillRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Skill not found.")
		}
		return nil, storeErr(err)
	}
	return skill, nil
}

func (u *skillUsecase) GetAll(ctx context.Context) ([]domain.Skill, error) {
	skills, err := u.skillRepo.Fetch(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	if len(skills) == 0 {
		return nil, apperror.NotFound("No skills records found.")
	}
	return skills, nil
}

func (u *skillUsecase) GetByUserID(ctx context.Context, userID int64) ([]domain.Skill, error) {
	skills, err := u.skillRepo.FetchByUserID(ctx, userID)
	if err != nil {
		return nil, storeErr(err)
	}
	if len(skills) == 0 {
		return nil, apperror.NotFound("No skills found for this user.")
	}
	return skills, nil
}

func (u *skillUsecase) Update(ctx context.Context, id int64, req domain.UpdateSkillRequest) (*domain.Skill, error) {
	skill, err := u.skillRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Skill not found.")
		}
		return nil, storeErr(err)
	}

	if err := validateSkillFields(req.Name, req.Level, req.Category, req.ProficiencyPercentage); err != nil {
		return nil, err
	}

	skill.Name = req.Name
	skill.Level = req.Level
	skill.Category = req.Category
	skill.ProficiencyPercentage = req.ProficiencyPercentage
	skill.Description = req.Description

	if err := u.skillRepo.Update(ctx, skill); err != nil {
		return nil, storeErr(err)
	}
	return skill, nil
}

func (u *skillUsecase) Delete(ctx context.Context, id int64) error {
	if _, err := u.skillRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Skill not found.")
		}
		return storeErr(err)
	}
	if err := u.skillRepo.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	return nil
}
