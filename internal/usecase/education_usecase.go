package usecase

import (
	"context"
	"errors"

	"go-reskilling-backend/internal/domain"
	"go-reskilling-backend/pkg/apperror"
	"go-reskilling-backend/pkg/validation"
)

type educationUsecase struct {
	educationRepo domain.EducationRepository
	userRepo      domain.UserRepository
}

func NewEducationUsecase(educationRepo domain.EducationRepository, userRepo domain.UserRepository) domain.EducationUsecase {
	return &educationUsecase{educationRepo: educationRepo, userRepo: userRepo}
}

func validateEducationFields(degree, institution string) error {
	if err := validation.RequiredString("Degree", degree); err != nil {
		return err
	}
	if err := validation.RequiredString("Institution", institution); err != nil {
		return err
	}
	return nil
}

func (u *educationUsecase) Create(ctx context.Context, req domain.CreateEducationRequest) (*domain.Education, error) {
	if err := validateEducationFields(req.Degree, req.Institution); err != nil {
		return nil, err
	}

	exists, err := u.userRepo.ExistsByID(ctx, req.UserID)
	if err != nil {
		return nil, storeErr(err)
	}
	if !exists {
		return nil, apperror.ReferenceNotFound("The provided UserId does not exist.")
	}

	education := &domain.Education{
		Degree:         req.Degree,
		Institution:    req.Institution,
		CompletionDate: req.CompletionDate,
		Certificate:    req.Certificate,
		UserID:         req.UserID,
	}
	if err := u.educationRepo.Create(ctx, education); err != nil {
		return nil, storeErr(err)
	}
	return education, nil
}

func (u *educationUsecase) GetByID(ctx context.Context, id int64) (*domain.Education, error) {
	education, err := u.educationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Education record not found.")
		}
		return nil, storeErr(err)
	}
	return education, nil
}

func (u *educationUsecase) GetAll(ctx context.Context) ([]domain.Education, error) {
	educations, err := u.educationRepo.Fetch(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	if len(educations) == 0 {
		return nil, apperror.NotFound("No education records found.")
	}
	return educations, nil
}

func (u *educationUsecase) GetByUserID(ctx context.Context, userID int64) ([]domain.Education, error) {
	educations, err := u.educationRepo.FetchByUserID(ctx, userID)
	if err != nil {
		return nil, storeErr(err)
	}
	if len(educations) == 0 {
		return nil, apperror.NotFound("No education records found for this user.")
	}
	return educations, nil
}

func (u *educationUsecase) Update(ctx context.Context, id int64, req domain.UpdateEducationRequest) (*domain.Education, error) {
	education, err := u.educationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Education record not found.")
		}
		return nil, storeErr(err)
	}

	if err := validateEducationFields(req.Degree, req.Institution); err != nil {
		return nil, err
	}

	education.Degree = req.Degree
	education.Institution = req.Institution
	education.CompletionDate = req.CompletionDate
	education.Certificate = req.Certificate

	if err := u.educationRepo.Update(ctx, education); err != nil {
		return nil, storeErr(err)
	}
	return education, nil
}

func (u *educationUsecase) Delete(ctx context.Context, id int64) error {
	if _, err := u.educationRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Education record not found.")
		}
		return storeErr(err)
	}
	if err := u.educationRepo.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	return nil
}
