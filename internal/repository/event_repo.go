package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel_management/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// EventRepository defines operations for event data
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	FindByID(ctx context.Context, id int64) (*model.Event, error)
	FindAll(ctx context.Context) ([]model.Event, error)
	Update(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, id int64) error
}

type eventRepository struct {
	db DB
}

func NewEventRepository(db DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *model.Event) error {
	tod, err := timeOfDay(event.Time)
	if err != nil {
		return err
	}
	sql := `INSERT INTO events (title, description, date, time, location, image)
            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err = withTx(ctx, r.db, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, sql, event.Title, event.Description, event.Date, tod, event.Location, event.Image).Scan(&event.ID)
	})
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (r *eventRepository) FindByID(ctx context.Context, id int64) (*model.Event, error) {
	sql := `SELECT id, title, description, date, time, location, image FROM events WHERE id = $1`
	event, err := scanEvent(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find event by ID: %w", err)
	}
	return event, nil
}

func (r *eventRepository) FindAll(ctx context.Context) ([]model.Event, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title, description, date, time, location, image FROM events ORDER BY date, time, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, *event)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}
	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, event *model.Event) error {
	tod, err := timeOfDay(event.Time)
	if err != nil {
		return err
	}
	sql := `UPDATE events
            SET title = $1, description = $2, date = $3, time = $4, location = $5, image = $6
            WHERE id = $7`
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, sql, event.Title, event.Description, event.Date, tod, event.Location, event.Image, event.ID)
		if err != nil {
			return fmt.Errorf("failed to update event: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "events", id)
}

func scanEvent(row pgx.Row) (*model.Event, error) {
	event := &model.Event{}
	var tod pgtype.Time
	if err := row.Scan(&event.ID, &event.Title, &event.Description, &event.Date, &tod, &event.Location, &event.Image); err != nil {
		return nil, err
	}
	event.Time = formatTimeOfDay(tod)
	return event, nil
}

// timeOfDay converts an HH:MM:SS string into a TIME column value
func timeOfDay(s string) (pgtype.Time, error) {
	t, err := time.Parse(model.TimeLayout, s)
	if err != nil {
		return pgtype.Time{}, fmt.Errorf("invalid event time %q: %w", s, err)
	}
	us := int64(t.Hour())*int64(time.Hour/time.Microsecond) +
		int64(t.Minute())*int64(time.Minute/time.Microsecond) +
		int64(t.Second())*int64(time.Second/time.Microsecond)
	return pgtype.Time{Microseconds: us, Valid: true}, nil
}

func formatTimeOfDay(t pgtype.Time) string {
	if !t.Valid {
		return ""
	}
	d := time.Duration(t.Microseconds) * time.Microsecond
	return time.Time{}.Add(d).Format(model.TimeLayout)
}
