package service

import (
	"context"
	"fmt"
	"time"

	"hotel_management/internal/model"
	"hotel_management/internal/repository"
)

// ReservationService defines the reservation lifecycle
type ReservationService interface {
	Create(ctx context.Context, req model.CreateReservationRequest, actor model.Principal) (*model.Reservation, error)
	ListForCustomer(ctx context.Context, customerID int64) ([]model.Reservation, error)
	List(ctx context.Context) ([]model.Reservation, error)
	Get(ctx context.Context, id int64) (*model.Reservation, error)
	Update(ctx context.Context, id int64, req model.UpdateReservationRequest) (*model.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

type reservationService struct {
	repo  repository.ReservationRepository
	rooms repository.RoomRepository
	users repository.UserRepository
}

// NewReservationService creates a new ReservationService
func NewReservationService(repo repository.ReservationRepository, rooms repository.RoomRepository, users repository.UserRepository) ReservationService {
	return &reservationService{repo: repo, rooms: rooms, users: users}
}

// Create validates and stores a reservation. Besides the presence and format
// checks it enforces check_out > check_in and nights == the day span.
func (s *reservationService) Create(ctx context.Context, req model.CreateReservationRequest, actor model.Principal) (*model.Reservation, error) {
	if req.RoomID == 0 || req.CustomerID == 0 || req.Nights == 0 || req.CheckIn == "" || req.CheckOut == "" || req.Price == 0 {
		return nil, invalid("Missing required fields")
	}

	checkIn, checkOut, err := parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	res := &model.Reservation{
		RoomID:     req.RoomID,
		CustomerID: req.CustomerID,
		Nights:     req.Nights,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Price:      req.Price,
		CreatedAt:  time.Now(),
	}
	if err := validateStay(res); err != nil {
		return nil, err
	}

	if actor.Role == model.RoleCustomer && actor.UserID != req.CustomerID {
		return nil, fmt.Errorf("%w: customers can only book for themselves", ErrForbidden)
	}

	room, err := s.rooms.FindByID(ctx, req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up room: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	customer, err := s.users.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	if err := s.repo.Create(ctx, res); err != nil {
		return nil, fmt.Errorf("failed to create reservation in repo: %w", err)
	}
	return res, nil
}

// ListForCustomer returns only the reservations owned by customerID
func (s *reservationService) ListForCustomer(ctx context.Context, customerID int64) ([]model.Reservation, error) {
	reservations, err := s.repo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer reservations from repo: %w", err)
	}
	return reservations, nil
}

func (s *reservationService) List(ctx context.Context) ([]model.Reservation, error) {
	reservations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}

func (s *reservationService) Get(ctx context.Context, id int64) (*model.Reservation, error) {
	res, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find reservation by ID: %w", err)
	}
	if res == nil {
		return nil, ErrReservationNotFound
	}
	return res, nil
}

// Update applies a partial update and re-checks the stay invariant on the result
func (s *reservationService) Update(ctx context.Context, id int64, req model.UpdateReservationRequest) (*model.Reservation, error) {
	res, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CheckIn != nil {
		if res.CheckIn, err = parseDate(*req.CheckIn); err != nil {
			return nil, err
		}
	}
	if req.CheckOut != nil {
		if res.CheckOut, err = parseDate(*req.CheckOut); err != nil {
			return nil, err
		}
	}
	if req.Nights != nil {
		res.Nights = *req.Nights
	}
	if req.Price != nil {
		res.Price = *req.Price
	}
	if err := validateStay(res); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, res); err != nil {
		return nil, notFound(err, ErrReservationNotFound)
	}
	return res, nil
}

func (s *reservationService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, ErrReservationNotFound)
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return time.Time{}, invalid("Invalid date format. Use YYYY-MM-DD")
	}
	return t, nil
}

func parseStay(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := parseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	out, err := parseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return in, out, nil
}

func validateStay(res *model.Reservation) error {
	if !res.CheckOut.After(res.CheckIn) {
		return invalid("check_out must be after check_in")
	}
	if res.Nights != res.SpanNights() {
		return invalid(fmt.Sprintf("nights must equal the number of days between check_in and check_out (%d)", res.SpanNights()))
	}
	if res.Price <= 0 {
		return invalid("price must be greater than zero")
	}
	return nil
}
