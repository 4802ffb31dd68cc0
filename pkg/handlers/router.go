package handlers

import (
	"net/http"

	"capstone-timeline/pkg/config"
	"capstone-timeline/pkg/logging"
	"capstone-timeline/pkg/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires the JSON API under /api and, when enabled, serves the
// public tree (albums/, team/, timeline/, images/) for everything else.
func NewRouter(cfg *config.Config, content *services.Content, logger *zap.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(logging.Middleware(logger), logging.Recovery(logger))

	a := NewAPI(content, logger)
	api := r.Group("/api")
	{
		api.GET("/albums", a.ListAlbums)
		api.GET("/team", a.ListTeam)
		api.GET("/timeline", a.ListTimeline)
		api.GET("/timeline-images", a.ListTimelineImages)
	}

	if cfg.ServeStatic {
		files := http.FileServer(gin.Dir(cfg.PublicPath, false))
		r.NoRoute(func(c *gin.Context) {
			if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
				c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
				return
			}
			files.ServeHTTP(c.Writer, c.Request)
		})
	}

	return r
}
