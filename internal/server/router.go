// internal/server/router.go
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"plantscape-service/internal/common/config"
	"plantscape-service/internal/common/logger"
	"plantscape-service/internal/common/observability"
	"plantscape-service/internal/handlers/answer"
	"plantscape-service/internal/handlers/community"
	"plantscape-service/internal/handlers/users"
)

// Dependencies carries the wired handlers and cross-cutting pieces the
// router needs.
type Dependencies struct {
	Answer    *answer.Handler
	Community *community.Handler
	Users     *users.Handler
	Logger    logger.Logger
	Obs       *observability.Observability
	Config    *config.Config
}

// NewRouter assembles the gin engine with middleware and routes.
func NewRouter(deps Dependencies) *gin.Engine {
	if deps.Config != nil && deps.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(CORS())
	if deps.Logger != nil {
		r.Use(RequestLogger(deps.Logger))
	}
	if deps.Obs != nil {
		r.Use(Metrics(deps.Obs))
	}

	if deps.Config != nil && deps.Config.Server.MaxBodyBytes > 0 {
		maxBytes := deps.Config.Server.MaxBodyBytes
		r.Use(func(c *gin.Context) {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
			c.Next()
		})
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/answer", deps.Answer.Handle)
	r.POST("/community", deps.Community.Handle)
	r.GET("/users", deps.Users.Handle)

	return r
}
