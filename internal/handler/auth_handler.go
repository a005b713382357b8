package handler

import (
	"net/http"
	"strings"

	"hotel_management/internal/middleware"
	"hotel_management/internal/model"
	"hotel_management/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login and user administration
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	var actor *model.Principal
	if p, ok := middleware.PrincipalFrom(c); ok {
		actor = &p
	}

	user, err := h.service.Register(c.Request.Context(), registerInput(req, model.Role(strings.ToLower(req.Type))), actor)
	if err != nil {
		respondError(c, err, "register user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": capitalize(string(user.Role)) + " user registered successfully",
		"id":      user.ID,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	// login never says which field was wrong
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	_, token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "login")
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token})
}

func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err, "retrieve users")
		return
	}
	if users == nil {
		users = []model.User{}
	}
	c.JSON(http.StatusOK, users)
}

func (h *AuthHandler) CreateStaff(c *gin.Context) {
	var req model.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.service.CreateStaff(c.Request.Context(), registerInput(req, model.RoleStaff))
	if err != nil {
		respondError(c, err, "create staff user")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Staff user created successfully", "id": user.ID})
}

// RegisterUserRoutes registers the /users routes
func (h *AuthHandler) RegisterUserRoutes(rg *gin.RouterGroup, verifier middleware.TokenVerifier) {
	users := rg.Group("/users")
	{
		users.POST("/register", middleware.OptionalAuth(verifier), h.Register)
		users.POST("/login", h.Login)
		users.GET("/", middleware.Authorize(verifier, model.RoleAdmin), h.ListUsers)
		users.POST("/create-staff", middleware.Authorize(verifier, model.RoleAdmin), h.CreateStaff)
	}
}

func registerInput(req model.RegisterRequest, role model.Role) service.RegisterInput {
	return service.RegisterInput{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		Role:        role,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
