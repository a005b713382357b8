package model

import "time"

// DateLayout is the calendar format used for reservation and event dates
const DateLayout = "2006-01-02"

// Reservation books a room for a customer over a range of nights
type Reservation struct {
	ID         int64     `json:"id"`
	RoomID     int64     `json:"room_id"`
	CustomerID int64     `json:"customer_id"`
	Nights     int       `json:"nights"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateReservationRequest carries dates as YYYY-MM-DD strings
type CreateReservationRequest struct {
	RoomID     int64   `json:"room_id" binding:"required"`
	CustomerID int64   `json:"customer_id" binding:"required"`
	Nights     int     `json:"nights" binding:"required"`
	CheckIn    string  `json:"check_in" binding:"required"`
	CheckOut   string  `json:"check_out" binding:"required"`
	Price      float64 `json:"price" binding:"required"`
}

type UpdateReservationRequest struct {
	Nights   *int     `json:"nights,omitempty"`
	CheckIn  *string  `json:"check_in,omitempty"`
	CheckOut *string  `json:"check_out,omitempty"`
	Price    *float64 `json:"price,omitempty"`
}

// SpanNights returns the number of whole days between check-in and check-out.
// Counted from Unix seconds since time.Duration saturates past ~292 years.
func (r *Reservation) SpanNights() int {
	return int((r.CheckOut.Unix() - r.CheckIn.Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60
