package usecase

import (
	"context"
	"errors"
	"time"

	"go-reskilling-backend/internal/domain"
	"go-reskilling-backend/pkg/apperror"
	"go-reskilling-backend/pkg/validation"
)

type courseUsecase struct {
	courseRepo domain.CourseRepository
	userRepo   domain.UserRepository
}

func NewCourseUsecase(courseRepo domain.CourseRepository, userRepo domain.UserRepository) domain.CourseUsecase {
	return &courseUsecase{courseRepo: courseRepo, userRepo: userRepo}
}

func validateCourseFields(title, description, category, difficulty string) error {
	if err := validation.RequiredString("Title", title); err != nil {
		return err
	}
	if err := validation.RequiredString("Description", description); err != nil {
		return err
	}
	if err := validation.RequiredString("Category", category); err != nil {
		return err
	}
	if err := validation.RequiredString("Difficulty", difficulty); err != nil {
		return err
	}
	return nil
}

func (u *courseUsecase) Create(ctx context.Context, req domain.CreateCourseRequest) (*domain.Course, error) {
	if err := validateCourseFields(req.Title, req.Description, req.Category, req.Difficulty); err != nil {
		return nil, err
	}

	exists, err := u.userRepo.ExistsByID(ctx, req.UserID)
	if err != nil {
		return nil, storeErr(err)
	}
	if !exists {
		return nil, apperror.ReferenceNotFound("The provided UserId does not exist.")
	}

	// Timestamps are service-assigned; client values are never trusted.
	now := time.Now().UTC()
	course := &domain.Course{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		URL:         req.URL,
		CreatedAt:   now,
		UpdatedAt:   now,
		UserID:      req.UserID,
	}
	if err := u.courseRepo.Create(ctx, course); err != nil {
		return nil, storeErr(err)
	}
	return course, nil
}

func (u *courseUsecase) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	course, err := u.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Course not found.")
		}
		return nil, storeErr(err)
	}
	return course, nil
}

func (u *courseUsecase) GetAll(ctx context.Context) ([]domain.Course, error) {
	courses, err := u.courseRepo.Fetch(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	if len(courses) == 0 {
		return nil, apperror.NotFound("No courses records found.")
	}
	return courses, nil
}

func (u *courseUsecase) GetByUserID(ctx context.Context, userID int64) ([]domain.Course, error) {
	courses, err := u.courseRepo.FetchByUserID(ctx, userID)
	if err != nil {
		return nil, storeErr(err)
	}
	if len(courses) == 0 {
		return nil, apperror.NotFound("No courses found for this user.")
	}
	return courses, nil
}

func (u *courseUsecase) Update(ctx context.Context, id int64, req domain.UpdateCourseRequest) (*domain.Course, error) {
	course, err := u.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Course not found.")
		}
		return nil, storeErr(err)
	}

	if err := validateCourseFields(req.Title, req.Description, req.Category, req.Difficulty); err != nil {
		return nil, err
	}

	course.Title = req.Title
	course.Description = req.Description
	course.Category = req.Category
	course.Difficulty = req.Difficulty
	course.URL = req.URL
	course.UpdatedAt = time.Now().UTC()

	if err := u.courseRepo.Update(ctx, course); err != nil {
		return nil, storeErr(err)
	}
	return course, nil
}

func (u *courseUsecase) Delete(ctx context.Context, id int64) error {
	if _, err := u.courseRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Course not found.")
		}
		return storeErr(err)
	}
	if err := u.courseRepo.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	return nil
}
