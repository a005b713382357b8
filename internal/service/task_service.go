package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotel_management/internal/model"
	"hotel_management/internal/repository"
)

// TaskService manages housekeeping and maintenance tasks
type TaskService interface {
	Create(ctx context.Context, req model.CreateTaskRequest) (*model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	Get(ctx context.Context, id int64) (*model.Task, error)
	Update(ctx context.Context, id int64, req model.UpdateTaskRequest) (*model.Task, error)
	Delete(ctx context.Context, id int64) error
}

type taskService struct {
	repo  repository.TaskRepository
	users repository.UserRepository
}

func NewTaskService(repo repository.TaskRepository, users repository.UserRepository) TaskService {
	return &taskService{repo: repo, users: users}
}

func (s *taskService) Create(ctx context.Context, req model.CreateTaskRequest) (*model.Task, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" || req.DueDate == "" {
		return nil, invalid("Missing required fields")
	}
	due, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	task := &model.Task{
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      due,
		Status:       model.TaskPending,
		UserAssigned: req.UserAssigned,
	}
	if req.Status != "" {
		task.Status = model.TaskStatus(req.Status)
	}
	if !task.Status.Valid() {
		return nil, invalid(fmt.Sprintf("Invalid status %q", req.Status))
	}
	if err := s.checkAssignee(ctx, task.UserAssigned); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task in repo: %w", err)
	}
	return task, nil
}

func (s *taskService) List(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *taskService) Get(ctx context.Context, id int64) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find task by ID: %w", err)
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (s *taskService) Update(ctx context.Context, id int64, req model.UpdateTaskRequest) (*model.Task, error) {
	task, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.DueDate != nil {
		if task.DueDate, err = parseDueDate(*req.DueDate); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		task.Status = model.TaskStatus(*req.Status)
		if !task.Status.Valid() {
			return nil, invalid(fmt.Sprintf("Invalid status %q", *req.Status))
		}
	}
	if req.UserAssigned.Set {
		task.UserAssigned = req.UserAssigned.ID
		if err := s.checkAssignee(ctx, task.UserAssigned); err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(task.Title) == "" || strings.TrimSpace(task.Description) == "" {
		return nil, invalid("Missing required fields")
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, notFound(err, ErrTaskNotFound)
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, ErrTaskNotFound)
	}
	return nil
}

func (s *taskService) checkAssignee(ctx context.Context, userID *int64) error {
	if userID == nil {
		return nil
	}
	user, err := s.users.FindByID(ctx, *userID)
	if err != nil {
		return fmt.Errorf("failed to look up assigned user: %w", err)
	}
	if user == nil {
		return ErrAssignedUserNotFound
	}
	return nil
}

// parseDueDate accepts a full timestamp or a bare date
func parseDueDate(s string) (time.Time, error) {
	if t, err := time.Parse(model.TimestampLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(model.DateLayout, s); err == nil {
		return t, nil
	}
	return time.Time{}, invalid("Invalid due_date format. Use YYYY-MM-DD HH:MM:SS")
}
