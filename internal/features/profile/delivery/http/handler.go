package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"proposal-tracker-backend/internal/common/logger"
	"proposal-tracker-backend/internal/features/profile/models"
	"proposal-tracker-backend/internal/features/profile/render"
	"proposal-tracker-backend/internal/features/profile/service"
)

// siteSections are the micro-site pages the embed script navigates to.
// Unknown paths redirect to the overview.
var siteSections = map[string]string{
	"/proposal": "Proposal",
	"/va-cv":    "Curriculum Vitae",
	"/booking":  "Booking",
}

type ProfileHandler struct {
	service service.ProfileService
}

func NewProfileHandler(service service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		service: service,
	}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.Engine) {
	// Route aliases for misconfigured CRM senders; all hit the same handler.
	router.POST("/webhook", h.handleWebhook)
	router.POST("/webhooks", h.handleWebhook)
	router.POST("/suitedash/webhook", h.handleWebhook)

	track := router.Group("/va-starter-track")
	{
		track.GET("/:uid/overview", h.getOverview)
		track.GET("/:uid/debug", h.getDebug)
		track.GET("/p/:uid/*page", h.getPage)
	}
}

func (h *ProfileHandler) handleWebhook(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "unreadable body"})
		return
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid JSON body"})
		return
	}

	record, res, err := h.service.Ingest(c.Request.Context(), payload, raw)
	if err != nil {
		if errors.Is(err, service.ErrMissingIdentifier) {
			c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "missing identifier"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	logger.Info().
		Str("identifier", record.Identifier).
		Str("avatar_source", res.AvatarSource).
		Str("last_event", record.LastEvent).
		Msg("Webhook stored")

	c.JSON(http.StatusOK, models.WebhookAck{
		OK:         true,
		Identifier: record.Identifier,
		Stored: models.StoredInfo{
			AvatarURLPresent: record.AvatarURL != "",
			AvatarSource:     res.AvatarSource,
			LastEvent:        record.LastEvent,
			LastUpdatedAt:    record.LastUpdatedAt,
		},
	})
}

// getOverview always answers 200: an identifier without a record is a
// normal state rendered as a placeholder page, never a 404.
func (h *ProfileHandler) getOverview(c *gin.Context) {
	uid := strings.TrimSpace(c.Param("uid"))

	record, err := h.service.Get(c.Request.Context(), uid)
	if err != nil && !errors.Is(err, service.ErrRecordNotFound) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	var html string
	if record == nil {
		html, err = render.MissingRecord(uid)
	} else {
		html, err = render.Overview(record)
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *ProfileHandler) getDebug(c *gin.Context) {
	uid := strings.TrimSpace(c.Param("uid"))

	record, err := h.service.Get(c.Request.Context(), uid)
	if err != nil && !errors.Is(err, service.ErrRecordNotFound) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.DebugResponse{
		OK:         true,
		Identifier: uid,
		Record:     record,
	})
}

// getPage serves the micro-site section pages the beacon navigates to.
func (h *ProfileHandler) getPage(c *gin.Context) {
	uid := strings.TrimSpace(c.Param("uid"))
	page := c.Param("page")

	title, ok := siteSections[page]
	if !ok {
		c.Redirect(http.StatusFound, "/va-starter-track/"+uid+"/overview")
		return
	}

	html, err := render.Page(uid, page, title)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
