package api

import (
	"net/http"

	"go-reskilling-backend/internal/delivery/http/dto"
	"go-reskilling-backend/internal/delivery/http/response"
	"go-reskilling-backend/internal/domain"
	"go-reskilling-backend/pkg/apperror"
	"go-reskilling-backend/pkg/hateoas"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courseUC domain.CourseUsecase
	version  string
}

func NewCourseHandler(group *gin.RouterGroup, courseUC domain.CourseUsecase) {
	handler := &CourseHandler{
		courseUC: courseUC,
		version:  hateoas.Version(hateoas.ResourceCourses),
	}

	group.GET("", handler.List)
	group.GET("/user/:userId", handler.ListByUser)
	group.GET("/:id", handler.GetByID)
	group.POST("", handler.Create)
	group.PUT("/:id", handler.Update)
	group.DELETE("/:id", handler.Delete)
}

func (h *CourseHandler) List(c *gin.Context) {
	pageNumber, pageSize := pageParams(c)

	courses, err := h.courseUC.GetAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Course list", dto.ComposeCoursePage(h.version, courses, pageNumber, pageSize))
}

func (h *CourseHandler) ListByUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	pageNumber, pageSize := pageParams(c)

	courses, err := h.courseUC.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Course list",
		dto.ComposeCourseUserPage(h.version, userID, courses, pageNumber, pageSize))
}

func (h *CourseHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	course, err := h.courseUC.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Course details", dto.ComposeCourse(h.version, *course))
}

func (h *CourseHandler) Create(c *gin.Context) {
	var req domain.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	course, err := h.courseUC.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Course created", dto.ComposeCourse(h.version, *course))
}

func (h *CourseHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req domain.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	course, err := h.courseUC.Update(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Course updated successfully", dto.ComposeCourse(h.version, *course))
}

func (h *CourseHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.courseUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Course deleted successfully", nil)
}
