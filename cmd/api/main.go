package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-reskilling-backend/config"
	"go-reskilling-backend/internal/delivery/http/api"
	"go-reskilling-backend/internal/repository/postgres"
	"go-reskilling-backend/internal/usecase"
	"go-reskilling-backend/pkg/database"
	"go-reskilling-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()
	logger.Log.Info("Starting reskilling backend", "port", cfg.Port)

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	userRepo := postgres.NewUserRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	courseRepo := postgres.NewCourseRepository(dbPool)
	educationRepo := postgres.NewEducationRepository(dbPool)

	validate := validator.New()
	userUC := usecase.NewUserUsecase(userRepo, skillRepo, courseRepo, educationRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo, userRepo)
	courseUC := usecase.NewCourseUsecase(courseRepo, userRepo)
	educationUC := usecase.NewEducationUsecase(educationRepo, userRepo)
	predictUC := usecase.NewPredictUsecase(validate)

	router := api.NewRouter(api.RouterDeps{
		UserUC:      userUC,
		SkillUC:     skillUC,
		CourseUC:    courseUC,
		EducationUC: educationUC,
		PredictUC:   predictUC,
		Config:      cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
