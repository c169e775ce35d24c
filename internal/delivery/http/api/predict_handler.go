package api

import (
	"net/http"

	"go-reskilling-backend/internal/delivery/http/response"
	"go-reskilling-backend/internal/domain"
	"go-reskilling-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PredictHandler struct {
	predictUC domain.PredictUsecase
}

func NewPredictHandler(group *gin.RouterGroup, predictUC domain.PredictUsecase) {
	handler := &PredictHandler{predictUC: predictUC}
	group.POST("/predict-interest", handler.PredictInterest)
}

func (h *PredictHandler) PredictInterest(c *gin.Context) {
	var req domain.PredictInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	area, err := h.predictUC.PredictInterest(req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interest prediction", gin.H{"recommended_area": area})
}
