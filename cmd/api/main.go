package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/careerpilot/careerpilot-go/internal/ai"
	"github.com/careerpilot/careerpilot-go/internal/config"
	"github.com/careerpilot/careerpilot-go/internal/handler"
	"github.com/careerpilot/careerpilot-go/internal/middleware"
	"github.com/careerpilot/careerpilot-go/internal/repository"
	"github.com/careerpilot/careerpilot-go/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		slog.Error("database open failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	aiClient, err := ai.New(context.Background(), cfg.GeminiAPIKey)
	if err != nil {
		slog.Error("ai client init failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	chatRepo := repository.NewChatRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	conceptRepo := repository.NewConceptRepository(db)
	resumeRepo := repository.NewResumeRepository(db)
	practiceRepo := repository.NewPracticeRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.OpTimeout)
	chatService := service.NewChatService(chatRepo, aiClient)
	projectService := service.NewProjectService(projectRepo)
	skillService := service.NewSkillService(skillRepo)
	conceptService := service.NewConceptService(conceptRepo)
	resumeService := service.NewResumeService(resumeRepo, aiClient)
	practiceService := service.NewPracticeService(practiceRepo, aiClient)
	dashboardService := service.NewDashboardService(dashboardRepo, chatRepo)

	authHandler := handler.NewAuthHandler(authService)
	chatHandler := handler.NewChatHandler(chatService)
	projectHandler := handler.NewProjectHandler(projectService)
	skillHandler := handler.NewSkillHandler(skillService)
	conceptHandler := handler.NewConceptHandler(conceptService)
	resumeHandler := handler.NewResumeHandler(resumeService)
	practiceHandler := handler.NewPracticeHandler(practiceService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/auth/register", authHandler.HandleRegister)
		r.Post("/auth/login", authHandler.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.BearerAuth(cfg.JWTSecret))

		r.Get("/auth/verify", authHandler.HandleVerify)

		r.Post("/chat", chatHandler.HandleSend)
		r.Get("/chat/history", chatHandler.HandleHistory)

		r.Get("/projects", projectHandler.HandleList)
		r.Post("/projects", projectHandler.HandleCreate)
		r.Put("/projects/{project_id}", projectHandler.HandleUpdate)
		r.Delete("/projects/{project_id}", projectHandler.HandleDelete)
		r.Post("/projects/{project_id}/milestones", projectHandler.HandleAddMilestone)
		r.Put("/projects/{project_id}/milestones/{milestone_id}/toggle", projectHandler.HandleToggleMilestone)

		r.Get("/skills", skillHandler.HandleList)
		r.Post("/skills", skillHandler.HandleCreate)
		r.Put("/skills/{skill_id}", skillHandler.HandleUpdate)
		r.Delete("/skills/{skill_id}", skillHandler.HandleDelete)

		r.Get("/concepts", conceptHandler.HandleList)
		r.Post("/concepts", conceptHandler.HandleCreate)
		r.Put("/concepts/{concept_id}", conceptHandler.HandleUpdate)
		r.Delete("/concepts/{concept_id}", conceptHandler.HandleDelete)

		r.Get("/resumes", resumeHandler.HandleList)
		r.Post("/resumes", resumeHandler.HandleUpload)
		r.Get("/resumes/{resume_id}", resumeHandler.HandleGet)
		r.Post("/resumes/{resume_id}/review", resumeHandler.HandleReview)
		r.Delete("/resumes/{resume_id}", resumeHandler.HandleDelete)

		r.Get("/practice", practiceHandler.HandleList)
		r.Post("/practice", practiceHandler.HandleStart)
		r.Get("/practice/{session_id}", practiceHandler.HandleGet)
		r.Post("/practice/{session_id}/feedback", practiceHandler.HandleFeedback)
		r.Delete("/practice/{session_id}", practiceHandler.HandleDelete)

		r.Get("/dashboard", dashboardHandler.HandleGet)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "serverless", cfg.Serverless)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
