package handler

import (
	"net/http"

	"hotel_management/internal/middleware"
	"hotel_management/internal/model"
	"hotel_management/internal/service"

	"github.com/gin-gonic/gin"
)

// RoomHandler handles room catalogue requests
type RoomHandler struct {
	service service.RoomService
}

func NewRoomHandler(s service.RoomService) *RoomHandler {
	return &RoomHandler{service: s}
}

func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req model.CreateRoomRequest
	if !bindJSON(c, &req) {
		return
	}

	room, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "create room")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Room created successfully", "id": room.ID})
}

func (h *RoomHandler) GetRooms(c *gin.Context) {
	rooms, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "retrieve rooms")
		return
	}
	if rooms == nil {
		rooms = []model.Room{}
	}
	c.JSON(http.StatusOK, rooms)
}

func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, ok := paramID(c, "room")
	if !ok {
		return
	}

	room, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "retrieve room")
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, ok := paramID(c, "room")
	if !ok {
		return
	}
	var req model.UpdateRoomRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.service.Update(c.Request.Context(), id, req); err != nil {
		respondError(c, err, "update room")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room updated successfully"})
}

func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, ok := paramID(c, "room")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "delete room")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted successfully"})
}

// RegisterRoomRoutes registers the /rooms routes. Reads are public.
func (h *RoomHandler) RegisterRoomRoutes(rg *gin.RouterGroup, verifier middleware.TokenVerifier) {
	adminOnly := middleware.Authorize(verifier, model.RoleAdmin)

	rooms := rg.Group("/rooms")
	{
		rooms.POST("/create", adminOnly, h.CreateRoom)
		rooms.GET("/", h.GetRooms)
		rooms.GET("/:id", h.GetRoom)
		rooms.PUT("/:id", adminOnly, h.UpdateRoom)
		rooms.DELETE("/:id", adminOnly, h.DeleteRoom)
	}
}
