package repository

import (
	"context"
	"errors"
	"fmt"

	"hotel_management/internal/model"

	"github.com/jackc/pgx/v5"
)

// ReservationRepository defines operations for reservation data
type ReservationRepository interface {
	Create(ctx context.Context, reservation *model.Reservation) error
	FindByID(ctx context.Context, id int64) (*model.Reservation, error)
	FindByCustomer(ctx context.Context, customerID int64) ([]model.Reservation, error)
	FindAll(ctx context.Context) ([]model.Reservation, error)
	Update(ctx context.Context, reservation *model.Reservation) error
	Delete(ctx context.Context, id int64) error
}

type reservationRepository struct {
	db DB
}

// NewReservationRepository creates a new ReservationRepository
func NewReservationRepository(db DB) ReservationRepository {
	return &reservationRepository{db: db}
}

const reservationColumns = `id, room_id, customer_id, nights, check_in, check_out, price, created_at`

// Create inserts a new reservation into the database
func (r *reservationRepository) Create(ctx context.Context, res *model.Reservation) error {
	sql := `INSERT INTO reservations (room_id, customer_id, nights, check_in, check_out, price, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, sql, res.RoomID, res.CustomerID, res.Nights, res.CheckIn, res.CheckOut, res.Price, res.CreatedAt).Scan(&res.ID)
	})
	if err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

// FindByID retrieves a reservation by its ID
func (r *reservationRepository) FindByID(ctx context.Context, id int64) (*model.Reservation, error) {
	res := &model.Reservation{}
	sql := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&res.ID, &res.RoomID, &res.CustomerID, &res.Nights, &res.CheckIn, &res.CheckOut, &res.Price, &res.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find reservation by ID: %w", err)
	}
	return res, nil
}

// FindByCustomer retrieves reservations belonging to one customer
func (r *reservationRepository) FindByCustomer(ctx context.Context, customerID int64) ([]model.Reservation, error) {
	sql := `SELECT ` + reservationColumns + ` FROM reservations WHERE customer_id = $1 ORDER BY check_in, id`
	return r.query(ctx, sql, customerID)
}

func (r *reservationRepository) FindAll(ctx context.Context) ([]model.Reservation, error) {
	return r.query(ctx, `SELECT `+reservationColumns+` FROM reservations ORDER BY check_in, id`)
}

// Update modifies the dates, nights and price of an existing reservation
func (r *reservationRepository) Update(ctx context.Context, res *model.Reservation) error {
	sql := `UPDATE reservations
            SET nights = $1, check_in = $2, check_out = $3, price = $4
            WHERE id = $5`
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, sql, res.Nights, res.CheckIn, res.CheckOut, res.Price, res.ID)
		if err != nil {
			return fmt.Errorf("failed to update reservation: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *reservationRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "reservations", id)
}

func (r *reservationRepository) query(ctx context.Context, sql string, args ...any) ([]model.Reservation, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations: %w", err)
	}
	defer rows.Close()

	var reservations []model.Reservation
	for rows.Next() {
		var res model.Reservation
		if err := rows.Scan(
			&res.ID, &res.RoomID, &res.CustomerID, &res.Nights, &res.CheckIn, &res.CheckOut, &res.Price, &res.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan reservation row: %w", err)
		}
		reservations = append(reservations, res)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reservation rows: %w", err)
	}
	return reservations, nil
}
