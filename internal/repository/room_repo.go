package repository

import (
	"context"
	"errors"
	"fmt"

	"hotel_management/internal/model"

	"github.com/jackc/pgx/v5"
)

// RoomRepository defines operations for room data
type RoomRepository interface {
	Create(ctx context.Context, room *model.Room) error
	FindByID(ctx context.Context, id int64) (*model.Room, error)
	FindAll(ctx context.Context) ([]model.Room, error)
	Update(ctx context.Context, room *model.Room) error
	Delete(ctx context.Context, id int64) error
}

type roomRepository struct {
	db DB
}

func NewRoomRepository(db DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(ctx context.Context, room *model.Room) error {
	sql := `INSERT INTO rooms (name, description, square_meters, price_per_night, images_list)
            VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, sql, room.Name, room.Description, room.SquareMeters, room.PricePerNight, imagesOrEmpty(room.ImagesList)).Scan(&room.ID)
	})
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id int64) (*model.Room, error) {
	room := &model.Room{}
	sql := `SELECT id, name, description, square_meters, price_per_night, images_list FROM rooms WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&room.ID, &room.Name, &room.Description, &room.SquareMeters, &room.PricePerNight, &room.ImagesList)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find room by ID: %w", err)
	}
	return room, nil
}

func (r *roomRepository) FindAll(ctx context.Context) ([]model.Room, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, description, square_meters, price_per_night, images_list FROM rooms ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}
	defer rows.Close()

	var rooms []model.Room
	for rows.Next() {
		var room model.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.Description, &room.SquareMeters, &room.PricePerNight, &room.ImagesList); err != nil {
			return nil, fmt.Errorf("failed to scan room row: %w", err)
		}
		rooms = append(rooms, room)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating room rows: %w", err)
	}
	return rooms, nil
}

func (r *roomRepository) Update(ctx context.Context, room *model.Room) error {
	sql := `UPDATE rooms
            SET name = $1, description = $2, square_meters = $3, price_per_night = $4, images_list = $5
            WHERE id = $6`
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, sql, room.Name, room.Description, room.SquareMeters, room.PricePerNight, imagesOrEmpty(room.ImagesList), room.ID)
		if err != nil {
			return fmt.Errorf("failed to update room: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *roomRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "rooms", id)
}

func imagesOrEmpty(images []string) []string {
	if images == nil {
		return []string{}
	}
	return images
}

// deleteByID removes one row from table in its own transaction
func deleteByID(ctx context.Context, db DB, table string, id int64) error {
	return withTx(ctx, db, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete from %s: %w", table, err)
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}
