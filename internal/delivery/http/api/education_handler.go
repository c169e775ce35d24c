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

type EducationHandler struct {
	educationUC domain.EducationUsecase
	version     string
}

func NewEducationHandler(group *gin.RouterGroup, educationUC domain.EducationUsecase) {
	handler := &EducationHandler{
		educationUC: educationUC,
		version:     hateoas.Version(hateoas.ResourceEducations),
	}

	group.GET("", handler.List)
	group.GET("/user/:userId", handler.ListByUser)
	group.GET("/:id", handler.GetByID)
	group.POST("", handler.Create)
	group.PUT("/:id", handler.Update)
	group.DELETE("/:id", handler.Delete)
}

func (h *EducationHandler) List(c *gin.Context) {
	pageNumber, pageSize := pageParams(c)

	educations, err := h.educationUC.GetAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education list",
		dto.ComposeEducationPage(h.version, educations, pageNumber, pageSize))
}

func (h *EducationHandler) ListByUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	pageNumber, pageSize := pageParams(c)

	educations, err := h.educationUC.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education list",
		dto.ComposeEducationUserPage(h.version, userID, educations, pageNumber, pageSize))
}

func (h *EducationHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	education, err := h.educationUC.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education details", dto.ComposeEducation(h.version, *education))
}

func (h *EducationHandler) Create(c *gin.Context) {
	var req domain.CreateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	education, err := h.educationUC.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Education created", dto.ComposeEducation(h.version, *education))
}

func (h *EducationHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req domain.UpdateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	education, err := h.educationUC.Update(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education updated successfully", dto.ComposeEducation(h.version, *education))
}

func (h *EducationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.educationUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education deleted successfully", nil)
}
