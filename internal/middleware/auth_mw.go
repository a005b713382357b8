package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"hotel_management/internal/model"
	"hotel_management/internal/utils"

	"github.com/gin-gonic/gin"
)

// PrincipalKey is the gin context key holding the authenticated model.Principal
const PrincipalKey = "authPrincipal"

var (
	ErrUnauthenticated = errors.New("authorization header required")
	ErrForbidden       = errors.New("access forbidden: insufficient role")
)

// TokenVerifier turns a bearer token into the principal it identifies
type TokenVerifier interface {
	Verify(token string) (model.Principal, error)
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header
func BearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrUnauthenticated
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}
	return parts[1], nil
}

// AuthorizeRequest authenticates the request and checks the principal's role
// against allowed. Header problems are reported as ErrUnauthenticated, token
// problems as utils.ErrInvalidToken or utils.ErrExpiredToken.
func AuthorizeRequest(r *http.Request, verifier TokenVerifier, allowed model.RoleSet) (model.Principal, error) {
	token, err := BearerToken(r)
	if err != nil {
		if !errors.Is(err, ErrUnauthenticated) {
			err = errors.Join(ErrUnauthenticated, err)
		}
		return model.Principal{}, err
	}

	principal, err := verifier.Verify(token)
	if err != nil {
		return model.Principal{}, err
	}

	if !allowed.Contains(principal.Role) {
		return principal, ErrForbidden
	}
	return principal, nil
}

// Authorize gates a route behind a valid token whose role is one of roles
func Authorize(verifier TokenVerifier, roles ...model.Role) gin.HandlerFunc {
	allowed := model.NewRoleSet(roles...)
	return func(c *gin.Context) {
		principal, err := AuthorizeRequest(c.Request, verifier, allowed)
		if err != nil {
			abortAuth(c, err)
			return
		}
		c.Set(PrincipalKey, principal)
	}
}

// Authenticated accepts any valid token regardless of role
func Authenticated(verifier TokenVerifier) gin.HandlerFunc {
	return Authorize(verifier, model.AnyRole.Roles()...)
}

// OptionalAuth attaches the principal when a valid token is presented and
// otherwise lets the request through anonymously.
func OptionalAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := AuthorizeRequest(c.Request, verifier, model.AnyRole)
		if err != nil {
			if !errors.Is(err, ErrUnauthenticated) {
				log.Printf("[%s] ignoring unusable token on %s: %v", RequestIDFrom(c), c.FullPath(), err)
			}
			return
		}
		c.Set(PrincipalKey, principal)
	}
}

// PrincipalFrom returns the principal stored by Authorize or OptionalAuth
func PrincipalFrom(c *gin.Context) (model.Principal, bool) {
	val, exists := c.Get(PrincipalKey)
	if !exists {
		return model.Principal{}, false
	}
	principal, ok := val.(model.Principal)
	return principal, ok
}

func abortAuth(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrForbidden):
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access forbidden: insufficient role"})
	case errors.Is(err, utils.ErrExpiredToken):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token has expired"})
	case errors.Is(err, utils.ErrInvalidToken):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
	default:
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing or malformed authorization header"})
	}
}
