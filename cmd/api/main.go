package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/journalmind/journalmind-go/internal/config"
	"github.com/journalmind/journalmind-go/internal/handler"
	"github.com/journalmind/journalmind-go/internal/llm"
	"github.com/journalmind/journalmind-go/internal/middleware"
	"github.com/journalmind/journalmind-go/internal/repository"
	"github.com/journalmind/journalmind-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	if err := repository.InitSchema(ctx, db); err != nil {
		slog.Error("schema initialization failed", "error", err)
		os.Exit(1)
	}

	gateway, err := llm.NewGateway(ctx, cfg.GeminiAPIKey, cfg.LLMModel, cfg.LLMTimeout)
	if err != nil {
		slog.Error("llm gateway initialization failed", "error", err)
		os.Exit(1)
	}
	defer gateway.Close()

	userRepo := repository.NewUserRepository(db)
	reportRepo := repository.NewReportRepository(db)
	goalRepo := repository.NewGoalRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	journalService := service.NewJournalService(reportRepo, goalRepo, gateway)
	goalService := service.NewGoalService(goalRepo)

	authHandler := handler.NewAuthHandler(authService)
	journalHandler := handler.NewJournalHandler(journalService)
	goalHandler := handler.NewGoalHandler(goalService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/register", authHandler.HandleRegister)
		r.Post("/token", authHandler.HandleToken)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret, userRepo))
		r.Get("/verify-token", authHandler.HandleVerifyToken)
		r.Post("/refresh", authHandler.HandleRefresh)

		r.Post("/submit-report", journalHandler.HandleSubmitReport)
		r.Post("/create-advise", journalHandler.HandleCreateAdvise)
		r.Get("/get-today-report", journalHandler.HandleTodayReport)

		r.Post("/add-goal", goalHandler.HandleAddGoal)
		r.Get("/get-goals", goalHandler.HandleGetGoals)
		r.Put("/update-goal/{goal_id}", goalHandler.HandleUpdateGoal)
		r.Delete("/delete-goal/{goal_id}", goalHandler.HandleDeleteGoal)

		r.Get("/personas", handler.HandleListPersonas)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
		// Generation calls can take a while; the write timeout must
		// outlast the LLM timeout.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.LLMTimeout + 30*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
