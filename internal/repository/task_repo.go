package repository

import (
	"context"
	"errors"
	"fmt"

	"hotel_management/internal/model"

	"github.com/jackc/pgx/v5"
)

// TaskRepository defines operations for task data
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	FindByID(ctx context.Context, id int64) (*model.Task, error)
	FindAll(ctx context.Context) ([]model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id int64) error
}

type taskRepository struct {
	db DB
}

func NewTaskRepository(db DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	sql := `INSERT INTO tasks (title, description, due_date, status, user_assigned)
            VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, sql, task.Title, task.Description, task.DueDate, string(task.Status), task.UserAssigned).Scan(&task.ID)
	})
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (r *taskRepository) FindByID(ctx context.Context, id int64) (*model.Task, error) {
	sql := `SELECT id, title, description, due_date, status, user_assigned FROM tasks WHERE id = $1`
	task, err := scanTask(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find task by ID: %w", err)
	}
	return task, nil
}

func (r *taskRepository) FindAll(ctx context.Context) ([]model.Task, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title, description, due_date, status, user_assigned FROM tasks ORDER BY due_date, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, *task)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}
	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, task *model.Task) error {
	sql := `UPDATE tasks
            SET title = $1, description = $2, due_date = $3, status = $4, user_assigned = $5
            WHERE id = $6`
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, sql, task.Title, task.Description, task.DueDate, string(task.Status), task.UserAssigned, task.ID)
		if err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "tasks", id)
}

func scanTask(row pgx.Row) (*model.Task, error) {
	task := &model.Task{}
	var status string
	if err := row.Scan(&task.ID, &task.Title, &task.Description, &task.DueDate, &status, &task.UserAssigned); err != nil {
		return nil, err
	}
	task.Status = model.TaskStatus(status)
	return task, nil
}
