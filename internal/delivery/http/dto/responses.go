package dto

import (
	"time"

	"go-reskilling-backend/internal/domain"
	"go-reskilling-backend/pkg/hateoas"
)

// Response shapes are field-for-field copies of the entities; the only
// derived data is the attached link list. The user's password never
// appears.

type UserResponse struct {
	hateoas.Resource
	ID           int64               `json:"id"`
	Name         string              `json:"name"`
	Email        string              `json:"email"`
	Phone        string              `json:"phone"`
	BirthDate    time.Time           `json:"birth_date"`
	CurrentRole  string              `json:"current_role"`
	InterestArea string              `json:"interest_area"`
	Skills       []SkillResponse     `json:"skills"`
	Courses      []CourseResponse    `json:"courses"`
	Educations   []EducationResponse `json:"educations"`
}

type SkillResponse struct {
	hateoas.Resource
	ID                    int64  `json:"id"`
	Name                  string `json:"name"`
	Level                 string `json:"level"`
	Category              string `json:"category"`
	ProficiencyPercentage int    `json:"proficiency_percentage"`
	Description           string `json:"description"`
	UserID                int64  `json:"user_id"`
}

type CourseResponse struct {
	hateoas.Resource
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Difficulty  string    `json:"difficulty"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	UserID      int64     `json:"user_id"`
}

type EducationResponse struct {
	hateoas.Resource
	ID             int64     `json:"id"`
	Degree         string    `json:"degree"`
	Institution    string    `json:"institution"`
	CompletionDate time.Time `json:"completion_date"`
	Certificate    string    `json:"certificate"`
	UserID         int64     `json:"user_id"`
}

// PagedResponse is the envelope around one page of a listing.
type PagedResponse[T any] struct {
	hateoas.Resource
	Items      []T `json:"items"`
	PageNumber int `json:"page_number"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}

func newSkillResponse(s domain.Skill) SkillResponse {
	return SkillResponse{
		ID:                    s.ID,
		Name:                  s.Name,
		Level:                 s.Level,
		Category:              s.Category,
		ProficiencyPercentage: s.ProficiencyPercentage,
		Description:           s.Description,
		UserID:                s.UserID,
	}
}

func newCourseResponse(c domain.Course) CourseResponse {
	return CourseResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Difficulty:  c.Difficulty,
		URL:         c.URL,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		UserID:      c.UserID,
	}
}

func newEducationResponse(e domain.Education) EducationResponse {
	return EducationResponse{
		ID:             e.ID,
		Degree:         e.Degree,
		Institution:    e.Institution,
		CompletionDate: e.CompletionDate,
		Certificate:    e.Certificate,
		UserID:         e.UserID,
	}
}

func newUserResponse(u domain.User) UserResponse {
	resp := UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Phone:        u.Phone,
		BirthDate:    u.BirthDate,
		CurrentRole:  u.CurrentRole,
		InterestArea: u.InterestArea,
		Skills:       make([]SkillResponse, 0, len(u.Skills)),
		Courses:      make([]CourseResponse, 0, len(u.Courses)),
		Educations:   make([]EducationResponse, 0, len(u.Educations)),
	}
	for _, s := range u.Skills {
		resp.Skills = append(resp.Skills, newSkillResponse(s))
	}
	for _, c := range u.Courses {
		resp.Courses = append(resp.Courses, newCourseResponse(c))
	}
	for _, e := range u.Educations {
		resp.Educations = append(resp.Educations, newEducationResponse(e))
	}
	return resp
}
