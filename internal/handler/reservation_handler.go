package handler

import (
	"net/http"

	"hotel_management/internal/middleware"
	"hotel_management/internal/model"
	"hotel_management/internal/service"

	"github.com/gin-gonic/gin"
)

// ReservationHandler handles reservation requests
type ReservationHandler struct {
	service service.ReservationService
}

func NewReservationHandler(s service.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: s}
}

func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}
	var req model.CreateReservationRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.service.Create(c.Request.Context(), req, principal)
	if err != nil {
		respondError(c, err, "create reservation")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Reservation created successfully", "id": res.ID})
}

// GetMyReservations lists the caller's own reservations. The customer id
// always comes from the token.
func (h *ReservationHandler) GetMyReservations(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	reservations, err := h.service.ListForCustomer(c.Request.Context(), principal.UserID)
	if err != nil {
		respondError(c, err, "retrieve reservations")
		return
	}
	c.JSON(http.StatusOK, mapSlice(reservations, newReservationResponse))
}

func (h *ReservationHandler) GetReservations(c *gin.Context) {
	reservations, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "retrieve reservations")
		return
	}
	c.JSON(http.StatusOK, mapSlice(reservations, newReservationResponse))
}

func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, ok := paramID(c, "reservation")
	if !ok {
		return
	}

	res, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "retrieve reservation")
		return
	}
	c.JSON(http.StatusOK, newReservationResponse(*res))
}

func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	id, ok := paramID(c, "reservation")
	if !ok {
		return
	}
	var req model.UpdateReservationRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.service.Update(c.Request.Context(), id, req); err != nil {
		respondError(c, err, "update reservation")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation updated successfully"})
}

func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	id, ok := paramID(c, "reservation")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "delete reservation")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation deleted successfully"})
}

// RegisterReservationRoutes registers the /reservations routes
func (h *ReservationHandler) RegisterReservationRoutes(rg *gin.RouterGroup, verifier middleware.TokenVerifier) {
	adminOnly := middleware.Authorize(verifier, model.RoleAdmin)

	reservations := rg.Group("/reservations")
	{
		reservations.POST("/create", middleware.Authenticated(verifier), h.CreateReservation)
		reservations.GET("/", middleware.Authorize(verifier, model.RoleAdmin, model.RoleStaff), h.GetReservations)
		reservations.GET("/my-reservations", middleware.Authorize(verifier, model.RoleCustomer), h.GetMyReservations)
		reservations.GET("/:id", adminOnly, h.GetReservation)
		reservations.PUT("/:id", adminOnly, h.UpdateReservation)
		reservations.DELETE("/:id", adminOnly, h.DeleteReservation)
	}
}
