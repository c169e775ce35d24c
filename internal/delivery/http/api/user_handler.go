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

type UserHandler struct {
	userUC  domain.UserUsecase
	version string
}

func NewUserHandler(group *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{
		userUC:  userUC,
		version: hateoas.Version(hateoas.ResourceUsers),
	}

	group.GET("", handler.List)
	group.GET("/:id", handler.GetByID)
	group.GET("/email/:email", handler.GetByEmail)
	group.POST("", handler.Create)
	group.PUT("/:id", handler.Update)
	group.DELETE("/:id", handler.Delete)
}

func (h *UserHandler) List(c *gin.Context) {
	pageNumber, pageSize := pageParams(c)

	users, err := h.userUC.GetAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User list", dto.ComposeUserPage(h.version, users, pageNumber, pageSize))
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.userUC.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User details", dto.ComposeUser(h.version, *user))
}

func (h *UserHandler) GetByEmail(c *gin.Context) {
	user, err := h.userUC.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User details", dto.ComposeUser(h.version, *user))
}

func (h *UserHandler) Create(c *gin.Context) {
	var req domain.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.userUC.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "User created", dto.ComposeUser(h.version, *user))
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req domain.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.userUC.Update(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User updated successfully", dto.ComposeUser(h.version, *user))
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.userUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User deleted successfully", nil)
}
