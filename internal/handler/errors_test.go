package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel_management/internal/model"
	"hotel_management/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, h gin.HandlerFunc, body string) (int, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h(c)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp["message"]
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantMsg    string
	}{
		{&service.ValidationError{Message: "Invalid date format. Use YYYY-MM-DD"}, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD"},
		{fmt.Errorf("wrapped: %w", service.ErrDuplicateEmail), http.StatusBadRequest, "Email already registered"},
		{service.ErrDuplicatePhone, http.StatusBadRequest, "Phone number already registered"},
		{service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{fmt.Errorf("%w: customers can only book for themselves", service.ErrForbidden), http.StatusForbidden, "Access forbidden: customers can only book for themselves"},
		{service.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
		{service.ErrCustomerNotFound, http.StatusNotFound, "Customer not found"},
		{service.ErrAssignedUserNotFound, http.StatusNotFound, "Assigned user not found"},
		{errors.New("connection refused"), http.StatusInternalServerError, "Failed to create room"},
	}

	for _, tt := range tests {
		t.Run(tt.wantMsg, func(t *testing.T) {
			status, msg := run(t, func(c *gin.Context) { respondError(c, tt.err, "create room") }, "")
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestBindJSON(t *testing.T) {
	bind := func(c *gin.Context) {
		var req model.LoginRequest
		if bindJSON(c, &req) {
			c.JSON(http.StatusOK, gin.H{"message": req.Email})
		}
	}

	status, msg := run(t, bind, `{"email":"ana@x.com","password":"pw"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ana@x.com", msg)

	status, msg = run(t, bind, `{"email":"ana@x.com"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Missing required fields", msg)

	status, msg = run(t, bind, `{"email":`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.NotEmpty(t, msg)
}
