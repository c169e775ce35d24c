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

type SkillHandler struct {
	skillUC domain.SkillUsecase
	version string
}

func NewSkillHandler(group *gin.RouterGroup, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{
		skillUC: skillUC,
		version: hateoas.Version(hateoas.ResourceSkills),
	}

	group.GET("", handler.List)
	group.GET("/user/:userId", handler.ListByUser)
	group.GET("/:id", handler.GetByID)
	group.POST("", handler.Create)
	group.PUT("/:id", handler.Update)
	group.DELETE("/:id", handler.Delete)
}

func (h *SkillHandler) List(c *gin.Context) {
	pageNumber, pageSize := pageParams(c)

	skills, err := h.skillUC.GetAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill list", dto.ComposeSkillPage(h.version, skills, pageNumber, pageSize))
}

func (h *SkillHandler) ListByUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	pageNumber, pageSize := pageParams(c)

	skills, err := h.skillUC.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill list",
		dto.ComposeSkillUserPage(h.version, userID, skills, pageNumber, pageSize))
}

func (h *SkillHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	skill, err := h.skillUC.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill details", dto.ComposeSkill(h.version, *skill))
}

func (h *SkillHandler) Create(c *gin.Context) {
	var req domain.CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	skill, err := h.skillUC.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Skill created", dto.ComposeSkill(h.version, *skill))
}

func (h *SkillHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req domain.UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	skill, err := h.skillUC.Update(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill updated successfully", dto.ComposeSkill(h.version, *skill))
}

func (h *SkillHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.skillUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill deleted successfully", nil)
}
