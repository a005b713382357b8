// Package memory provides map-backed implementations of the repository
// interfaces. They share one Store so tests can wire the whole service layer
// without a database.
package memory

import (
	"context"
	"slices"
	"sync"

	"hotel_management/internal/model"
	"hotel_management/internal/repository"
)

// Store holds every table behind a single mutex
type Store struct {
	mu           sync.Mutex
	nextID       map[string]int64
	users        map[int64]model.User
	rooms        map[int64]model.Room
	reservations map[int64]model.Reservation
	tasks        map[int64]model.Task
	events       map[int64]model.Event
}

func NewStore() *Store {
	return &Store{
		nextID:       make(map[string]int64),
		users:        make(map[int64]model.User),
		rooms:        make(map[int64]model.Room),
		reservations: make(map[int64]model.Reservation),
		tasks:        make(map[int64]model.Task),
		events:       make(map[int64]model.Event),
	}
}

func (s *Store) id(table string) int64 {
	s.nextID[table]++
	return s.nextID[table]
}

func (s *Store) Users() repository.UserRepository               { return userRepo{s} }
func (s *Store) Rooms() repository.RoomRepository               { return roomRepo{s} }
func (s *Store) Reservations() repository.ReservationRepository { return reservationRepo{s} }
func (s *Store) Tasks() repository.TaskRepository               { return taskRepo{s} }
func (s *Store) Events() repository.EventRepository             { return eventRepo{s} }

// sorted returns the map values ordered by id
func sorted[T any](m map[int64]T) []T {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, m[id])
	}
	return out
}

func find[T any](s *Store, m map[int64]T, id int64) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := m[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func all[T any](s *Store, m map[int64]T) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sorted(m), nil
}

func replace[T any](s *Store, m map[int64]T, id int64, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := m[id]; !ok {
		return repository.ErrNotFound
	}
	m[id] = v
	return nil
}

func remove[T any](s *Store, m map[int64]T, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := m[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m, id)
	return nil
}

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, user *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
		if u.PhoneNumber == user.PhoneNumber {
			return repository.ErrDuplicatePhone
		}
	}
	user.ID = r.s.id("users")
	r.s.users[user.ID] = *user
	return nil
}

func (r userRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	return r.findBy(func(u model.User) bool { return u.Email == email })
}

func (r userRepo) FindByPhone(_ context.Context, phone string) (*model.User, error) {
	return r.findBy(func(u model.User) bool { return u.PhoneNumber == phone })
}

func (r userRepo) FindByID(_ context.Context, id int64) (*model.User, error) {
	return find(r.s, r.s.users, id)
}

func (r userRepo) FindAll(_ context.Context) ([]model.User, error) {
	return all(r.s, r.s.users)
}

func (r userRepo) findBy(match func(model.User) bool) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, nil
}

type roomRepo struct{ s *Store }

func (r roomRepo) Create(_ context.Context, room *model.Room) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	room.ID = r.s.id("rooms")
	r.s.rooms[room.ID] = *room
	return nil
}

func (r roomRepo) FindByID(_ context.Context, id int64) (*model.Room, error) {
	return find(r.s, r.s.rooms, id)
}

func (r roomRepo) FindAll(_ context.Context) ([]model.Room, error) { return all(r.s, r.s.rooms) }

func (r roomRepo) Update(_ context.Context, room *model.Room) error {
	return replace(r.s, r.s.rooms, room.ID, *room)
}

func (r roomRepo) Delete(_ context.Context, id int64) error { return remove(r.s, r.s.rooms, id) }

type reservationRepo struct{ s *Store }

func (r reservationRepo) Create(_ context.Context, res *model.Reservation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	res.ID = r.s.id("reservations")
	r.s.reservations[res.ID] = *res
	return nil
}

func (r reservationRepo) FindByID(_ context.Context, id int64) (*model.Reservation, error) {
	return find(r.s, r.s.reservations, id)
}

func (r reservationRepo) FindByCustomer(_ context.Context, customerID int64) ([]model.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Reservation
	for _, res := range sorted(r.s.reservations) {
		if res.CustomerID == customerID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r reservationRepo) FindAll(_ context.Context) ([]model.Reservation, error) {
	return all(r.s, r.s.reservations)
}

func (r reservationRepo) Update(_ context.Context, res *model.Reservation) error {
	return replace(r.s, r.s.reservations, res.ID, *res)
}

func (r reservationRepo) Delete(_ context.Context, id int64) error {
	return remove(r.s, r.s.reservations, id)
}

type taskRepo struct{ s *Store }

func (r taskRepo) Create(_ context.Context, task *model.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	task.ID = r.s.id("tasks")
	r.s.tasks[task.ID] = *task
	return nil
}

func (r taskRepo) FindByID(_ context.Context, id int64) (*model.Task, error) {
	return find(r.s, r.s.tasks, id)
}

func (r taskRepo) FindAll(_ context.Context) ([]model.Task, error) { return all(r.s, r.s.tasks) }

func (r taskRepo) Update(_ context.Context, task *model.Task) error {
	return replace(r.s, r.s.tasks, task.ID, *task)
}

func (r taskRepo) Delete(_ context.Context, id int64) error { return remove(r.s, r.s.tasks, id) }

type eventRepo struct{ s *Store }

func (r eventRepo) Create(_ context.Context, event *model.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	event.ID = r.s.id("events")
	r.s.events[event.ID] = *event
	return nil
}

func (r eventRepo) FindByID(_ context.Context, id int64) (*model.Event, error) {
	return find(r.s, r.s.events, id)
}

func (r eventRepo) FindAll(_ context.Context) ([]model.Event, error) { return all(r.s, r.s.events) }

func (r eventRepo) Update(_ context.Context, event *model.Event) error {
	return replace(r.s, r.s.events, event.ID, *event)
}

func (r eventRepo) Delete(_ context.Context, id int64) error { return remove(r.s, r.s.events, id) }
