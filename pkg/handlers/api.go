package handlers

import (
	"net/http"

	"capstone-timeline/pkg/models"
	"capstone-timeline/pkg/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// API serves the content collections as JSON. Failures never leave a
// collection key out of the response: clients always get an array.
type API struct {
	Content *services.Content
	Logger  *zap.Logger
}

func NewAPI(content *services.Content, logger *zap.Logger) *API {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{Content: content, Logger: logger}
}

func (a *API) ListAlbums(c *gin.Context) {
	albums, err := a.Content.ListAlbums()
	if err != nil {
		a.Logger.Error("Error reading albums", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"albums": []models.Album{}, "error": "Failed to load albums"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"albums": albums})
}

func (a *API) ListTeam(c *gin.Context) {
	members, err := a.Content.ListTeam()
	if err != nil {
		a.Logger.Error("Error reading team members", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"members": []models.TeamMember{}, "error": "Failed to load team members"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": members})
}

func (a *API) ListTimeline(c *gin.Context) {
	events, err := a.Content.ListTimeline()
	if err != nil {
		a.Logger.Error("Error reading timeline data", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"events": []models.TimelineEvent{}, "error": "Failed to load timeline data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

type timelineImagesQuery struct {
	Folder string `form:"folder" binding:"required"`
}

func (a *API) ListTimelineImages(c *gin.Context) {
	var q timelineImagesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"images": []string{}, "error": "Folder parameter required"})
		return
	}

	images, err := a.Content.ListTimelineImages(q.Folder)
	if err != nil {
		a.Logger.Warn("Error reading timeline images", zap.String("folder", q.Folder), zap.Error(err))
		images = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"images": images})
}
