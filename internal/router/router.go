// Package router assembles the gin engine: ambient middleware, the health
// probe and every /api route group.
package router

import (
	"context"
	"net/http"
	"slices"
	"time"

	"hotel_management/internal/handler"
	"hotel_management/internal/middleware"
	"hotel_management/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators the routes are built from. DB may be nil, in which
// case /health only reports the process as up.
type Deps struct {
	Verifier     middleware.TokenVerifier
	Auth         service.AuthService
	Rooms        service.RoomService
	Tasks        service.TaskService
	Events       service.EventService
	Reservations service.ReservationService
	DB           Pinger
	AllowOrigins []string
}

func New(d Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())
	router.Use(cors.New(corsConfig(d.AllowOrigins)))

	router.GET("/health", health(d.DB))

	api := router.Group("/api")
	handler.NewAuthHandler(d.Auth).RegisterUserRoutes(api, d.Verifier)
	handler.NewRoomHandler(d.Rooms).RegisterRoomRoutes(api, d.Verifier)
	handler.NewTaskHandler(d.Tasks).RegisterTaskRoutes(api, d.Verifier)
	handler.NewEventHandler(d.Events).RegisterEventRoutes(api, d.Verifier)
	handler.NewReservationHandler(d.Reservations).RegisterReservationRoutes(api, d.Verifier)

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader}
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	return cfg
}

func health(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := gin.H{"status": "ok"}
		if db != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
				return
			}
			body["db"] = "healthy"
		}
		c.JSON(http.StatusOK, body)
	}
}
