package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotel_management/internal/config"
	"hotel_management/internal/repository"
	"hotel_management/internal/router"
	"hotel_management/internal/service"
	"hotel_management/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ctx := context.Background()

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(ctx, cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if err := config.AutoMigrate(ctx, dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, cfg.JWTExpirationHours)

	// --- Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	roomRepo := repository.NewRoomRepository(dbPool)
	reservationRepo := repository.NewReservationRepository(dbPool)
	taskRepo := repository.NewTaskRepository(dbPool)
	eventRepo := repository.NewEventRepository(dbPool)

	// --- Services ---
	authService := service.NewAuthService(userRepo, jwtUtil)
	if seed := cfg.InitialAdmin; seed != nil {
		_, err := authService.EnsureAdmin(ctx, service.RegisterInput{
			Name:        seed.Name,
			Email:       seed.Email,
			PhoneNumber: seed.PhoneNumber,
			Password:    seed.Password,
		})
		if err != nil {
			log.Fatalf("Failed to create initial admin: %v", err)
		}
	}

	engine := router.New(router.Deps{
		Verifier:     jwtUtil,
		Auth:         authService,
		Rooms:        service.NewRoomService(roomRepo),
		Tasks:        service.NewTaskService(taskRepo, userRepo),
		Events:       service.NewEventService(eventRepo),
		Reservations: service.NewReservationService(reservationRepo, roomRepo, userRepo),
		DB:           dbPool,
		AllowOrigins: cfg.CORSAllowedOrigins,
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
