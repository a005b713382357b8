package handler

import "hotel_management/internal/model"

// The response types render dates in the same text formats the API accepts.

type reservationResponse struct {
	ID         int64   `json:"id"`
	RoomID     int64   `json:"room_id"`
	CustomerID int64   `json:"customer_id"`
	Nights     int     `json:"nights"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	Price      float64 `json:"price"`
}

func newReservationResponse(r model.Reservation) reservationResponse {
	return reservationResponse{
		ID:         r.ID,
		RoomID:     r.RoomID,
		CustomerID: r.CustomerID,
		Nights:     r.Nights,
		CheckIn:    r.CheckIn.Format(model.DateLayout),
		CheckOut:   r.CheckOut.Format(model.DateLayout),
		Price:      r.Price,
	}
}

type taskResponse struct {
	ID           int64            `json:"id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	DueDate      string           `json:"due_date"`
	Status       model.TaskStatus `json:"status"`
	UserAssigned *int64           `json:"user_assigned"`
}

func newTaskResponse(t model.Task) taskResponse {
	return taskResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		DueDate:      t.DueDate.Format(model.TimestampLayout),
		Status:       t.Status,
		UserAssigned: t.UserAssigned,
	}
}

type eventResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Location    string  `json:"location"`
	Image       *string `json:"image"`
}

func newEventResponse(e model.Event) eventResponse {
	return eventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date.Format(model.DateLayout),
		Time:        e.Time,
		Location:    e.Location,
		Image:       e.Image,
	}
}

func mapSlice[T, R any](in []T, f func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}
