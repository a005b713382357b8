package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"hotel_management/internal/middleware"
	"hotel_management/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var notFoundMessages = []struct {
	err error
	msg string
}{
	{service.ErrRoomNotFound, "Room not found"},
	{service.ErrCustomerNotFound, "Customer not found"},
	{service.ErrReservationNotFound, "Reservation not found"},
	{service.ErrTaskNotFound, "Task not found"},
	{service.ErrAssignedUserNotFound, "Assigned user not found"},
	{service.ErrEventNotFound, "Event not found"},
	{service.ErrUserNotFound, "User not found"},
}

// respondError maps a service error to its HTTP status and writes {"message": ...}.
// Unrecognised errors are logged with the request id and reported as 500.
func respondError(c *gin.Context, err error, action string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"message": verr.Message})
		return
	case errors.Is(err, service.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
		return
	case errors.Is(err, service.ErrDuplicatePhone):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Phone number already registered"})
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "Access forbidden: " + forbiddenReason(err)})
		return
	}

	for _, nf := range notFoundMessages {
		if errors.Is(err, nf.err) {
			c.JSON(http.StatusNotFound, gin.H{"message": nf.msg})
			return
		}
	}

	log.Printf("[%s] Error %s: %v", middleware.RequestIDFrom(c), action, err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to " + action})
}

// forbiddenReason strips the sentinel prefix from a wrapped ErrForbidden
func forbiddenReason(err error) string {
	if reason, ok := strings.CutPrefix(err.Error(), service.ErrForbidden.Error()+": "); ok {
		return reason
	}
	return "insufficient role"
}

// bindJSON decodes the body into req, answering 400 itself on failure
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
	}
	return false
}

func paramID(c *gin.Context, what string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid " + what + " ID"})
		return 0, false
	}
	return id, true
}
