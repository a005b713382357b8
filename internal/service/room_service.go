package service

import (
	"context"
	"fmt"
	"strings"

	"hotel_management/internal/model"
	"hotel_management/internal/repository"
)

// RoomService manages the room catalogue
type RoomService interface {
	Create(ctx context.Context, req model.CreateRoomRequest) (*model.Room, error)
	List(ctx context.Context) ([]model.Room, error)
	Get(ctx context.Context, id int64) (*model.Room, error)
	Update(ctx context.Context, id int64, req model.UpdateRoomRequest) (*model.Room, error)
	Delete(ctx context.Context, id int64) error
}

type roomService struct {
	repo repository.RoomRepository
}

func NewRoomService(repo repository.RoomRepository) RoomService {
	return &roomService{repo: repo}
}

func (s *roomService) Create(ctx context.Context, req model.CreateRoomRequest) (*model.Room, error) {
	room := &model.Room{
		Name:          req.Name,
		Description:   req.Description,
		SquareMeters:  req.SquareMeters,
		PricePerNight: req.PricePerNight,
		ImagesList:    req.ImagesList,
	}
	if room.ImagesList == nil {
		room.ImagesList = []string{}
	}
	if err := validateRoom(room); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to create room in repo: %w", err)
	}
	return room, nil
}

func (s *roomService) List(ctx context.Context) ([]model.Room, error) {
	rooms, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *roomService) Get(ctx context.Context, id int64) (*model.Room, error) {
	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find room by ID: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

func (s *roomService) Update(ctx context.Context, id int64, req model.UpdateRoomRequest) (*model.Room, error) {
	room, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.SquareMeters != nil {
		room.SquareMeters = *req.SquareMeters
	}
	if req.PricePerNight != nil {
		room.PricePerNight = *req.PricePerNight
	}
	if req.ImagesList != nil {
		room.ImagesList = *req.ImagesList
	}
	if err := validateRoom(room); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, room); err != nil {
		return nil, notFound(err, ErrRoomNotFound)
	}
	return room, nil
}

func (s *roomService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, ErrRoomNotFound)
	}
	return nil
}

func validateRoom(room *model.Room) error {
	if strings.TrimSpace(room.Name) == "" || strings.TrimSpace(room.Description) == "" {
		return invalid("Missing required fields")
	}
	if room.SquareMeters <= 0 {
		return invalid("square_meters must be greater than zero")
	}
	if room.PricePerNight <= 0 {
		return invalid("price_per_night must be greater than zero")
	}
	return nil
}
