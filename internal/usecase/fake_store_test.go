package usecase_test

import (
	"context"
	"strings"

	"go-reskilling-backend/internal/domain"
)

// fakeStore is an in-memory stand-in for the Postgres repositories, used
// where a scenario spans several repositories and call-by-call mocks get
// unwieldy. Its user Delete mirrors the transactional cascade.
type fakeStore struct {
	nextID     int64
	users      map[int64]domain.User
	skills     map[int64]domain.Skill
	courses    map[int64]domain.Course
	educations map[int64]domain.Education
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		nextID:     1,
		users:      map[int64]domain.User{},
		skills:     map[int64]domain.Skill{},
		courses:    map[int64]domain.Course{},
		educations: map[int64]domain.Education{},
	}
}

func (s *fakeStore) id() int64 {
	id := s.nextID
	s.nextID++
	return id
}

type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = r.store.id()
	r.store.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := r.store.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.store.users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) GetByEmailTrimmed(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.store.users {
		if strings.TrimSpace(user.Email) == email {
			return &user, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) Fetch(_ context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(r.store.users))
	for _, user := range r.store.users {
		users = append(users, user)
	}
	return users, nil
}

func (r *fakeUserRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := r.store.users[id]
	return ok, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.store.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.users[id]; !ok {
		return domain.ErrNotFound
	}
	for skillID, skill := range r.store.skills {
		if skill.UserID == id {
			delete(r.store.skills, skillID)
		}
	}
	for courseID, course := range r.store.courses {
		if course.UserID == id {
			delete(r.store.courses, courseID)
		}
	}
	for educationID, education := range r.store.educations {
		if education.UserID == id {
			delete(r.store.educations, educationID)
		}
	}
	delete(r.store.users, id)
	return nil
}

type fakeSkillRepo struct{ store *fakeStore }

func (r *fakeSkillRepo) Create(_ context.Context, skill *domain.Skill) error {
	skill.ID = r.store.id()
	r.store.skills[skill.ID] = *skill
	return nil
}

func (r *fakeSkillRepo) GetByID(_ context.Context, id int64) (*domain.Skill, error) {
	skill, ok := r.store.skills[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &skill, nil
}

func (r *fakeSkillRepo) Fetch(_ context.Context) ([]domain.Skill, error) {
	skills := make([]domain.Skill, 0, len(r.store.skills))
	for _, skill := range r.store.skills {
		skills = append(skills, skill)
	}
	return skills, nil
}

func (r *fakeSkillRepo) FetchByUserID(_ context.Context, userID int64) ([]domain.Skill, error) {
	var skills []domain.Skill
	for _, skill := range r.store.skills {
		if skill.UserID == userID {
			skills = append(skills, skill)
		}
	}
	return skills, nil
}

func (r *fakeSkillRepo) Update(_ context.Context, skill *domain.Skill) error {
	if _, ok := r.store.skills[skill.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.skills[skill.ID] = *skill
	return nil
}

func (r *fakeSkillRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.skills[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.skills, id)
	return nil
}

type fakeCourseRepo struct{ store *fakeStore }

func (r *fakeCourseRepo) Create(_ context.Context, course *domain.Course) error {
	course.ID = r.store.id()
	r.store.courses[course.ID] = *course
	return nil
}

func (r *fakeCourseRepo) GetByID(_ context.Context, id int64) (*domain.Course, error) {
	course, ok := r.store.courses[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &course, nil
}

func (r *fakeCourseRepo) Fetch(_ context.Context) ([]domain.Course, error) {
	courses := make([]domain.Course, 0, len(r.store.courses))
	for _, course := range r.store.courses {
		courses = append(courses, course)
	}
	return courses, nil
}

func (r *fakeCourseRepo) FetchByUserID(_ context.Context, userID int64) ([]domain.Course, error) {
	var courses []domain.Course
	for _, course := range r.store.courses {
		if course.UserID == userID {
			courses = append(courses, course)
		}
	}
	return courses, nil
}

func (r *fakeCourseRepo) Update(_ context.Context, course *domain.Course) error {
	if _, ok := r.store.courses[course.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.courses[course.ID] = *course
	return nil
}

func (r *fakeCourseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.courses[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.courses, id)
	return nil
}

type fakeEducationRepo struct{ store *fakeStore }

func (r *fakeEducationRepo) Create(_ context.Context, education *domain.Education) error {
	education.ID = r.store.id()
	r.store.educations[education.ID] = *education
	return nil
}

func (r *fakeEducationRepo) GetByID(_ context.Context, id int64) (*domain.Education, error) {
	education, ok := r.store.educations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &education, nil
}

func (r *fakeEducationRepo) Fetch(_ context.Context) ([]domain.Education, error) {
	educations := make([]domain.Education, 0, len(r.store.educations))
	for _, education := range r.store.educations {
		educations = append(educations, education)
	}
	return educations, nil
}

func (r *fakeEducationRepo) FetchByUserID(_ context.Context, userID int64) ([]domain.Education, error) {
	var educations []domain.Education
	for _, education := range r.store.educations {
		if education.UserID == userID {
			educations = append(educations, education)
		}
	}
	return educations, nil
}

func (r *fakeEducationRepo) Update(_ context.Context, education *domain.Education) error {
	if _, ok := r.store.educations[education.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.educations[education.ID] = *education
	return nil
}

func (r *fakeEducationRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.educations[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.educations, id)
	return nil
}
