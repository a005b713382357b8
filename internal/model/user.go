package model

import "time"

// User represents an account in the system
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	Role         Role      `json:"type"`
	CreatedAt    time.Time `json:"created_at"`
}

// Principal is the authenticated identity carried by a verified token
type Principal struct {
	UserID int64 `json:"user_id"`
	Role   Role  `json:"role"`
}

// RegisterRequest is the body of the registration and staff creation endpoints
type RegisterRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Type        string `json:"type"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
