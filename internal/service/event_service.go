package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotel_management/internal/model"
	"hotel_management/internal/repository"
)

// EventService manages hotel events
type EventService interface {
	Create(ctx context.Context, req model.CreateEventRequest) (*model.Event, error)
	List(ctx context.Context) ([]model.Event, error)
	Get(ctx context.Context, id int64) (*model.Event, error)
	Update(ctx context.Context, id int64, req model.UpdateEventRequest) (*model.Event, error)
	Delete(ctx context.Context, id int64) error
}

type eventService struct {
	repo repository.EventRepository
}

func NewEventService(repo repository.EventRepository) EventService {
	return &eventService{repo: repo}
}

func (s *eventService) Create(ctx context.Context, req model.CreateEventRequest) (*model.Event, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" ||
		req.Date == "" || req.Time == "" || strings.TrimSpace(req.Location) == "" {
		return nil, invalid("Missing required fields")
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if err := checkTimeOfDay(req.Time); err != nil {
		return nil, err
	}

	event := &model.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Time:        req.Time,
		Location:    req.Location,
		Image:       req.Image,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event in repo: %w", err)
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context) ([]model.Event, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *eventService) Get(ctx context.Context, id int64) (*model.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find event by ID: %w", err)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

func (s *eventService) Update(ctx context.Context, id int64, req model.UpdateEventRequest) (*model.Event, error) {
	event, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Date != nil {
		if event.Date, err = parseDate(*req.Date); err != nil {
			return nil, err
		}
	}
	if req.Time != nil {
		if err := checkTimeOfDay(*req.Time); err != nil {
			return nil, err
		}
		event.Time = *req.Time
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Image != nil {
		event.Image = req.Image
	}
	if strings.TrimSpace(event.Title) == "" || strings.TrimSpace(event.Description) == "" || strings.TrimSpace(event.Location) == "" {
		return nil, invalid("Missing required fields")
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, notFound(err, ErrEventNotFound)
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, ErrEventNotFound)
	}
	return nil
}

func checkTimeOfDay(s string) error {
	if _, err := time.Parse(model.TimeLayout, s); err != nil {
		return invalid("Invalid time format. Use HH:MM:SS")
	}
	return nil
}
