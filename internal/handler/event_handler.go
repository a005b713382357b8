package handler

import (
	"net/http"

	"hotel_management/internal/middleware"
	"hotel_management/internal/model"
	"hotel_management/internal/service"

	"github.com/gin-gonic/gin"
)

// EventHandler handles hotel event requests
type EventHandler struct {
	service service.EventService
}

func NewEventHandler(s service.EventService) *EventHandler {
	return &EventHandler{service: s}
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req model.CreateEventRequest
	if !bindJSON(c, &req) {
		return
	}

	event, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "create event")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Event created successfully", "id": event.ID})
}

func (h *EventHandler) GetEvents(c *gin.Context) {
	events, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "retrieve events")
		return
	}
	c.JSON(http.StatusOK, mapSlice(events, newEventResponse))
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := paramID(c, "event")
	if !ok {
		return
	}

	event, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "retrieve event")
		return
	}
	c.JSON(http.StatusOK, newEventResponse(*event))
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, ok := paramID(c, "event")
	if !ok {
		return
	}
	var req model.UpdateEventRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.service.Update(c.Request.Context(), id, req); err != nil {
		respondError(c, err, "update event")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event updated successfully"})
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, ok := paramID(c, "event")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "delete event")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

// RegisterEventRoutes registers the /events routes. Reads are public.
func (h *EventHandler) RegisterEventRoutes(rg *gin.RouterGroup, verifier middleware.TokenVerifier) {
	adminOnly := middleware.Authorize(verifier, model.RoleAdmin)

	events := rg.Group("/events")
	{
		events.POST("/create", adminOnly, h.CreateEvent)
		events.GET("/", h.GetEvents)
		events.GET("/:id", h.GetEvent)
		events.PUT("/:id", adminOnly, h.UpdateEvent)
		events.DELETE("/:id", adminOnly, h.DeleteEvent)
	}
}
