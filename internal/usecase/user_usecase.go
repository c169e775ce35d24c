package usecase

import (
	"context"
	"errors"
	"strings"

	"go-reskilling-backend/internal/domain"
	"go-reskilling-backend/pkg/apperror"
	"go-reskilling-backend/pkg/validation"

	"golang.org/x/crypto/bcrypt"
)

type userUsecase struct {
	userRepo      domain.UserRepository
	skillRepo     domain.SkillRepository
	courseRepo    domain.CourseRepository
	educationRepo domain.EducationRepository
}

func NewUserUsecase(
	userRepo domain.UserRepository,
	skillRepo domain.SkillRepository,
	courseRepo domain.CourseRepository,
	educationRepo domain.EducationRepository,
) domain.UserUsecase {
	return &userUsecase{
		userRepo:      userRepo,
		skillRepo:     skillRepo,
		courseRepo:    courseRepo,
		educationRepo: educationRepo,
	}
}

func (u *userUsecase) Create(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error) {
	// Check order is user-visible through the returned message and must
	// not change: the first failing check wins.
	if err := validation.RequiredString("Name", req.Name); err != nil {
		return nil, err
	}
	if err := validation.RequiredString("Email", req.Email); err != nil {
		return nil, err
	}

	inUse, err := u.userRepo.GetByEmailTrimmed(ctx, strings.TrimSpace(req.Email))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, storeErr(err)
	}
	if inUse != nil {
		return nil, apperror.Validation("The email provided is already in use.")
	}

	if err := validation.RequiredString("Password", req.Password); err != nil {
		return nil, err
	}
	if err := validation.RequiredString("Phone", req.Phone); err != nil {
		return nil, err
	}
	if err := validation.RequiredTime("BirthDate", req.BirthDate); err != nil {
		return nil, err
	}
	if err := validation.RequiredString("CurrentRole", req.CurrentRole); err != nil {
		return nil, err
	}
	if err := validation.RequiredString("InterestArea", req.InterestArea); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, storeErr(err)
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		Password:     string(hash),
		Phone:        req.Phone,
		BirthDate:    req.BirthDate,
		CurrentRole:  req.CurrentRole,
		InterestArea: req.InterestArea,
		Skills:       []domain.Skill{},
		Courses:      []domain.Course{},
		Educations:   []domain.Education{},
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, storeErr(err)
	}
	return user, nil
}

func (u *userUsecase) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found.")
		}
		return nil, storeErr(err)
	}
	if err := u.loadOwned(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if err := validation.RequiredString("Email", email); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User with this email does not exist.")
		}
		return nil, storeErr(err)
	}
	if err := u.loadOwned(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) GetAll(ctx context.Context) ([]domain.User, error) {
	users, err := u.userRepo.Fetch(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	if len(users) == 0 {
		return nil, apperror.NotFound("No users found.")
	}
	for i := range users {
		if err := u.loadOwned(ctx, &users[i]); err != nil {
			return nil, err
		}
	}
	return users, nil
}

func (u *userUsecase) Update(ctx context.Context, id int64, req domain.UpdateUserRequest) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found.")
		}
		return nil, storeErr(err)
	}

	// Same required-field checks as create, minus email uniqueness and
	// password (the password cannot change through update).
	if err := validation.RequiredString("Name", req.Name); err != nil {
		return nil, err
	}
	if err := validation.RequiredString("Email", req.Email); err != nil {
		return nil, err
	}
	if err := validation.RequiredString("Phone", req.Phone); err != nil {
		return nil, err
	}
	if err := validation.RequiredTime("BirthDate", req.BirthDate); err != nil {
		return nil, err
	}
	if err := validation.RequiredString("CurrentRole", req.CurrentRole); err != nil {
		return nil, err
	}
	if err := validation.RequiredString("InterestArea", req.InterestArea); err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Phone = req.Phone
	user.BirthDate = req.BirthDate
	user.CurrentRole = req.CurrentRole
	user.InterestArea = req.InterestArea

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, storeErr(err)
	}
	if err := u.loadOwned(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) Delete(ctx context.Context, id int64) error {
	if _, err := u.userRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found.")
		}
		return storeErr(err)
	}
	// The repository removes the owned skills, courses and education
	// records together with the user in one transaction.
	if err := u.userRepo.Delete(ctx, id); err != nil {
		return storeErr(err)
	}
	return nil
}

// loadOwned eagerly attaches the three owned collections. Empty
// collections are fine here; the empty-is-an-error policy applies only to
// the sub-resource list endpoints.
func (u *userUsecase) loadOwned(ctx context.Context, user *domain.User) error {
	skills, err := u.skillRepo.FetchByUserID(ctx, user.ID)
	if err != nil {
		return storeErr(err)
	}
	courses, err := u.courseRepo.FetchByUserID(ctx, user.ID)
	if err != nil {
		return storeErr(err)
	}
	educations, err := u.educationRepo.FetchByUserID(ctx, user.ID)
	if err != nil {
		return storeErr(err)
	}

	user.Skills = skills
	user.Courses = courses
	user.Educations = educations
	if user.Skills == nil {
		user.Skills = []domain.Skill{}
	}
	if user.Courses == nil {
		user.Courses = []domain.Course{}
	}
	if user.Educations == nil {
		user.Educations = []domain.Education{}
	}
	return nil
}
