package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campus-hub-api/internal/models"
	appErrors "github.com/campushub/campus-hub-api/pkg/errors"
	"github.com/campushub/campus-hub-api/pkg/response"
)

type eventsService interface {
	CreateEvent(ctx context.Context, identity models.Identity, req models.CreateEventRequest) (*models.Event, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
}

// EventHandler wires HTTP endpoints to the events service.
type EventHandler struct {
	service eventsService
}

// NewEventHandler creates a new handler.
func NewEventHandler(svc eventsService) *EventHandler {
	return &EventHandler{service: svc}
}

// List godoc
// @Summary List campus events
// @Description Returns all events ordered by the literal date string ascending
// @Tags Events
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /events [get]
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.service.ListEvents(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, events)
}

// Create godoc
// @Summary Post a new event
// @Description Create a campus event; title, date and venue are required
// @Tags Events
// @Accept json
// @Produce json
// @Param payload body models.CreateEventRequest true "Event payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /events [post]
func (h *EventHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid event payload"))
		return
	}

	event, err := h.service.CreateEvent(c.Request.Context(), claims.Identity(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, event)
}
