package usecase_test

import (
	"context"
	"testing"

	"go-reskilling-backend/internal/usecase"
	"go-reskilling-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Deleting a user removes everything the user owns; the owned records must
// stop resolving by their own ids afterwards.
func TestUserDelete_CascadesToOwnedRecords(t *testing.T) {
	store := newFakeStore()
	userRepo := &fakeUserRepo{store: store}
	skillRepo := &fakeSkillRepo{store: store}
	courseRepo := &fakeCourseRepo{store: store}
	educationRepo := &fakeEducationRepo{store: store}

	userUC := usecase.NewUserUsecase(userRepo, skillRepo, courseRepo, educationRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo, userRepo)
	courseUC := usecase.NewCourseUsecase(courseRepo, userRepo)
	educationUC := usecase.NewEducationUsecase(educationRepo, userRepo)

	ctx := context.Background()

	user, err := userUC.Create(ctx, validCreateUserRequest())
	require.NoError(t, err)

	skillReq := validCreateSkillRequest()
	skillReq.UserID = user.ID
	skill, err := skillUC.Create(ctx, skillReq)
	require.NoError(t, err)

	courseReq := validCreateCourseRequest()
	courseReq.UserID = user.ID
	course, err := courseUC.Create(ctx, courseReq)
	require.NoError(t, err)

	educationReq := validCreateEducationRequest()
	educationReq.UserID = user.ID
	education, err := educationUC.Create(ctx, educationReq)
	require.NoError(t, err)

	// A second user's records must survive the cascade.
	otherReq := validCreateUserRequest()
	otherReq.Email = "other@example.com"
	other, err := userUC.Create(ctx, otherReq)
	require.NoError(t, err)
	otherSkillReq := validCreateSkillRequest()
	otherSkillReq.UserID = other.ID
	otherSkill, err := skillUC.Create(ctx, otherSkillReq)
	require.NoError(t, err)

	require.NoError(t, userUC.Delete(ctx, user.ID))

	_, err = userUC.GetByID(ctx, user.ID)
	assert.True(t, apperror.IsKind(err, apperror.KindResourceNotFound))

	_, err = skillUC.GetByID(ctx, skill.ID)
	require.Error(t, err)
	assert.Equal(t, "Skill not found.", err.Error())

	_, err = courseUC.GetByID(ctx, course.ID)
	require.Error(t, err)
	assert.Equal(t, "Course not found.", err.Error())

	_, err = educationUC.GetByID(ctx, education.ID)
	require.Error(t, err)
	assert.Equal(t, "Education record not found.", err.Error())

	kept, err := skillUC.GetByID(ctx, otherSkill.ID)
	require.NoError(t, err)
	assert.Equal(t, other.ID, kept.UserID)
}

// Creating against a just-deleted owner must fail the referential check.
func TestCreateAfterOwnerDeleted(t *testing.T) {
	store := newFakeStore()
	userRepo := &fakeUserRepo{store: store}
	skillRepo := &fakeSkillRepo{store: store}
	courseRepo := &fakeCourseRepo{store: store}
	educationRepo := &fakeEducationRepo{store: store}

	userUC := usecase.NewUserUsecase(userRepo, skillRepo, courseRepo, educationRepo)
	courseUC := usecase.NewCourseUsecase(courseRepo, userRepo)

	ctx := context.Background()
	user, err := userUC.Create(ctx, validCreateUserRequest())
	require.NoError(t, err)
	require.NoError(t, userUC.Delete(ctx, user.ID))

	req := validCreateCourseRequest()
	req.UserID = user.ID
	_, err = courseUC.Create(ctx, req)
	require.Error(t, err)
	assert.Equal(t, "The provided UserId does not exist.", err.Error())
	assert.True(t, apperror.IsKind(err, apperror.KindReferenceNotFound))
}

func TestUserGetByEmail_ScenarioRoundTrip(t *testing.T) {
	store := newFakeStore()
	userRepo := &fakeUserRepo{store: store}
	userUC := usecase.NewUserUsecase(userRepo,
		&fakeSkillRepo{store: store}, &fakeCourseRepo{store: store}, &fakeEducationRepo{store: store})

	ctx := context.Background()
	created, err := userUC.Create(ctx, validCreateUserRequest())
	require.NoError(t, err)

	found, err := userUC.GetByEmail(ctx, created.Email)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.NotZero(t, found.BirthDate)
}
