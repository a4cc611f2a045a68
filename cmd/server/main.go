package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/milionerzyweb/milionerzy-backend/internal/config"
	"github.com/milionerzyweb/milionerzy-backend/internal/database"
	"github.com/milionerzyweb/milionerzy-backend/internal/handler"
	"github.com/milionerzyweb/milionerzy-backend/internal/logger"
	"github.com/milionerzyweb/milionerzy-backend/internal/repository"
	"github.com/milionerzyweb/milionerzy-backend/internal/router"
	"github.com/milionerzyweb/milionerzy-backend/internal/service"
	"github.com/milionerzyweb/milionerzy-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("data_dir", cfg.DataDir).
		Msg("Starting Milionerzy Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to Redis (game session store) ─────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("Failed to create data dir")
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	questionRepo := repository.NewQuestionRepository(cfg.QuestionsFile())
	proposalRepo := repository.NewProposalRepository(cfg.ProposalsFile())
	leaderboardRepo := repository.NewLeaderboardRepository(cfg.LeaderboardFile())
	sessionRepo := repository.NewSessionRepository(rdb, cfg.SessionTTL)

	// ─── Initialize Services ──────────────────────────────────────────
	leaderboardService := service.NewLeaderboardService(leaderboardRepo, cfg.AdminPass, log)
	gameService := service.NewGameService(questionRepo, sessionRepo, leaderboardService, cfg.PhoneAccuracy, log)
	questionService := service.NewQuestionService(proposalRepo, log)

	// Report the bank size at boot; a short bank only rejects at /start.
	if n, err := questionRepo.Count(); err != nil {
		log.Warn().Err(err).Msg("Question bank unreadable")
	} else {
		log.Info().Int("questions", n).Msg("Question bank loaded")
	}

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Game:     handler.NewGameHandler(gameService, log),
		Ranking:  handler.NewRankingHandler(leaderboardService, log),
		Question: handler.NewQuestionHandler(questionService, log),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
