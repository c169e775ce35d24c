package api

import (
	"net/http"

	"go-reskilling-backend/config"
	"go-reskilling-backend/internal/delivery/http/middleware"
	"go-reskilling-backend/internal/delivery/http/response"
	"go-reskilling-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	UserUC      domain.UserUsecase
	SkillUC     domain.SkillUsecase
	CourseUC    domain.CourseUsecase
	EducationUC domain.EducationUsecase
	PredictUC   domain.PredictUsecase
	Config      *config.Config
}

// NewRouter mounts every resource under its own fixed API version:
// users v1, skills v2, educations v3, courses v4.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.CORSMiddleware(deps.Config.CORSAllowOrigin))
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	r.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware(deps.Config.APIJWTSecret))
	{
		NewUserHandler(protected.Group("/v1/users"), deps.UserUC)
		NewSkillHandler(protected.Group("/v2/skills"), deps.SkillUC)
		NewEducationHandler(protected.Group("/v3/educations"), deps.EducationUC)
		NewCourseHandler(protected.Group("/v4/courses"), deps.CourseUC)
		NewPredictHandler(protected.Group("/ml"), deps.PredictUC)
	}

	return r
}
