package model

import "time"

// TimeLayout is the format of an event's time of day
const TimeLayout = "15:04:05"

// Event is a hotel event such as a concert or a dinner
type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"` // HH:MM:SS
	Location    string    `json:"location"`
	Image       *string   `json:"image,omitempty"`
}

type CreateEventRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Time        string  `json:"time" binding:"required"`
	Location    string  `json:"location" binding:"required"`
	Image       *string `json:"image"`
}

type UpdateEventRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty"`
	Time        *string `json:"time,omitempty"`
	Location    *string `json:"location,omitempty"`
	Image       *string `json:"image,omitempty"`
}
