package http

import (
	"embed"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"proposal-tracker-backend/internal/features/tracking/models"
	"proposal-tracker-backend/internal/features/tracking/service"
)

//go:embed embed.js
var embedFS embed.FS

const originPlaceholder = "__PUBLIC_BASE_URL__"

type TrackingHandler struct {
	service service.TrackingService

	// publicBaseURL is substituted into the embed script; when empty the
	// request's own scheme and host are used instead.
	publicBaseURL string
}

func NewTrackingHandler(service service.TrackingService, publicBaseURL string) *TrackingHandler {
	return &TrackingHandler{
		service:       service,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (h *TrackingHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/embed.js", h.getEmbedScript)
	router.POST("/va-starter-track/e/:eventName", h.postEvent)
}

// postEvent accepts a beacon report and acknowledges with an empty 204.
// The body is parsed best-effort for logging; a broken body is still a
// success, the browser never retries.
func (h *TrackingHandler) postEvent(c *gin.Context) {
	event := models.BeaconEvent{
		Name: c.Param("eventName"),
	}
	_ = c.ShouldBindJSON(&event)

	h.service.Record(c.Request.Context(), event)

	c.Status(http.StatusNoContent)
}

func (h *TrackingHandler) getEmbedScript(c *gin.Context) {
	script, err := embedFS.ReadFile("embed.js")
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	origin := h.publicBaseURL
	if origin == "" {
		scheme := "https"
		if c.Request.TLS == nil {
			scheme = "http"
		}
		origin = scheme + "://" + c.Request.Host
	}

	body := strings.ReplaceAll(string(script), originPlaceholder, origin)
	c.Data(http.StatusOK, "application/javascript; charset=utf-8", []byte(body))
}
