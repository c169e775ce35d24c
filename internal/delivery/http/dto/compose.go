package dto

import (
	"go-reskilling-backend/internal/domain"
	"go-reskilling-backend/pkg/hateoas"
	"go-reskilling-backend/pkg/pagination"
)

// The composer turns entities into outward representations. The version
// is an explicit parameter everywhere; nested resources inside the
// composite user representation ignore it and link under their own fixed
// version constant.

func ComposeSkill(version string, s domain.Skill) *SkillResponse {
	resp := newSkillResponse(s)
	hateoas.ItemLinks(&resp.Resource, hateoas.ResourceSkills, version, s.ID)
	return &resp
}

func ComposeCourse(version string, c domain.Course) *CourseResponse {
	resp := newCourseResponse(c)
	hateoas.ItemLinks(&resp.Resource, hateoas.ResourceCourses, version, c.ID)
	return &resp
}

func ComposeEducation(version string, e domain.Education) *EducationResponse {
	resp := newEducationResponse(e)
	hateoas.ItemLinks(&resp.Resource, hateoas.ResourceEducations, version, e.ID)
	return &resp
}

func ComposeUser(version string, u domain.User) *UserResponse {
	resp := newUserResponse(u)
	hateoas.ItemLinks(&resp.Resource, hateoas.ResourceUsers, version, u.ID)

	for i := range resp.Skills {
		hateoas.ItemLinks(&resp.Skills[i].Resource, hateoas.ResourceSkills,
			hateoas.Version(hateoas.ResourceSkills), resp.Skills[i].ID)
	}
	for i := range resp.Courses {
		hateoas.ItemLinks(&resp.Courses[i].Resource, hateoas.ResourceCourses,
			hateoas.Version(hateoas.ResourceCourses), resp.Courses[i].ID)
	}
	for i := range resp.Educations {
		hateoas.ItemLinks(&resp.Educations[i].Resource, hateoas.ResourceEducations,
			hateoas.Version(hateoas.ResourceEducations), resp.Educations[i].ID)
	}
	return &resp
}

// composePage paginates the already-fetched set, maps each page item and
// attaches the envelope links.
func composePage[E, R any](
	items []E,
	pageNumber, pageSize int,
	action hateoas.Action,
	name hateoas.ResourceName,
	version string,
	userID int64,
	mapItem func(E) R,
) *PagedResponse[R] {
	page := pagination.Paginate(items, pageNumber, pageSize)

	mapped := make([]R, 0, len(page.Items))
	for _, item := range page.Items {
		mapped = append(mapped, mapItem(item))
	}

	resp := &PagedResponse[R]{
		Items:      mapped,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
	}
	hateoas.CollectionLinks(&resp.Resource, action, name, version, hateoas.Params{
		UserID:     userID,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}, page.TotalPages)
	return resp
}

func ComposeUserPage(version string, users []domain.User, pageNumber, pageSize int) *PagedResponse[*UserResponse] {
	return composePage(users, pageNumber, pageSize, hateoas.ActionGetAll, hateoas.ResourceUsers, version, 0,
		func(u domain.User) *UserResponse { return ComposeUser(version, u) })
}

func ComposeSkillPage(version string, skills []domain.Skill, pageNumber, pageSize int) *PagedResponse[*SkillResponse] {
	return composePage(skills, pageNumber, pageSize, hateoas.ActionGetAll, hateoas.ResourceSkills, version, 0,
		func(s domain.Skill) *SkillResponse { return ComposeSkill(version, s) })
}

func ComposeSkillUserPage(version string, userID int64, skills []domain.Skill, pageNumber, pageSize int) *PagedResponse[*SkillResponse] {
	return composePage(skills, pageNumber, pageSize, hateoas.ActionGetByUser, hateoas.ResourceSkills, version, userID,
		func(s domain.Skill) *SkillResponse { return ComposeSkill(version, s) })
}

func ComposeCoursePage(version string, courses []domain.Course, pageNumber, pageSize int) *PagedResponse[*CourseResponse] {
	return composePage(courses, pageNumber, pageSize, hateoas.ActionGetAll, hateoas.ResourceCourses, version, 0,
		func(c domain.Course) *CourseResponse { return ComposeCourse(version, c) })
}

func ComposeCourseUserPage(version string, userID int64, courses []domain.Course, pageNumber, pageSize int) *PagedResponse[*CourseResponse] {
	return composePage(courses, pageNumber, pageSize, hateoas.ActionGetByUser, hateoas.ResourceCourses, version, userID,
		func(c domain.Course) *CourseResponse { return ComposeCourse(version, c) })
}

func ComposeEducationPage(version string, educations []domain.Education, pageNumber, pageSize int) *PagedResponse[*EducationResponse] {
	return composePage(educations, pageNumber, pageSize, hateoas.ActionGetAll, hateoas.ResourceEducations, version, 0,
		func(e domain.Education) *EducationResponse { return ComposeEducation(version, e) })
}

func ComposeEducationUserPage(version string, userID int64, educations []domain.Education, pageNumber, pageSize int) *PagedResponse[*EducationResponse] {
	return composePage(educations, pageNumber, pageSize, hateoas.ActionGetByUser, hateoas.ResourceEducations, version, userID,
		func(e domain.Education) *EducationResponse { return ComposeEducation(version, e) })
}
