package webserver

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/signalworks/intent-engine/src/agentic/processor"
	"github.com/signalworks/intent-engine/src/api/config"
	"github.com/signalworks/intent-engine/src/notify"
)

func attachRoutes(r *gin.Engine, cfg config.Config, db *gorm.DB, rdb *redis.Client, proc *processor.Processor, notifier *notify.Notifier) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	authH := NewAuth(cfg.APIKey, []byte(cfg.JWTSecret))
	sigH := NewSignals(db, rdb, proc, notifier)
	repH := NewReports(db, rdb)
	ingestLimiter := NewRateLimiter(30, time.Minute)

	v1 := r.Group("/v1")
	{
		v1.POST("/auth/login", authH.Login)

		secured := v1.Use(JWTMiddleware([]byte(cfg.JWTSecret)))
		secured.POST("/signals", RateLimitMiddleware(ingestLimiter), sigH.Ingest)
		secured.GET("/signals", sigH.List)
		secured.GET("/signals/:id", sigH.Get)
		secured.GET("/report", repH.Report)
		secured.GET("/export", repH.Export)
	}
}

// New builds the HTTP router for the signal engine API.
func New(cfg config.Config, db *gorm.DB, rdb *redis.Client, proc *processor.Processor, notifier *notify.Notifier) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	attachRoutes(r, cfg, db, rdb, proc, notifier)
	return r
}
