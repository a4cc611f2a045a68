package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/milionerzyweb/milionerzy-backend/internal/config"
	"github.com/milionerzyweb/milionerzy-backend/internal/handler"
	"github.com/milionerzyweb/milionerzy-backend/internal/middleware"
	"github.com/milionerzyweb/milionerzy-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Game     *handler.GameHandler
	Ranking  *handler.RankingHandler
	Question *handler.QuestionHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for the abuse-prone endpoints (10 requests per minute per IP).
	writeLimiter := middleware.NewRateLimiter(10, time.Minute)

	// ─── Game API ──────────────────────────────────────────────────────
	// Every game route runs behind the player session cookie.
	api := router.Group("/api/v1")
	api.Use(middleware.PlayerSession())
	{
		api.POST("/start", handlers.Game.StartGame)
		api.GET("/game", handlers.Game.GetGame)
		api.POST("/check", handlers.Game.CheckAnswer)
		api.GET("/lifeline/:kind", handlers.Game.UseLifeline)
		api.GET("/result", handlers.Game.GetResult)

		api.GET("/ranking", handlers.Ranking.GetRanking)
		api.POST("/reset_scores", writeLimiter.Middleware(), handlers.Ranking.ResetScores)

		api.POST("/add_question", writeLimiter.Middleware(), handlers.Question.AddQuestion)
	}

	return router
}
