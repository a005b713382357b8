package service

import (
	"errors"

	"hotel_management/internal/repository"
)

var (
	ErrValidation           = errors.New("validation failed")
	ErrForbidden            = errors.New("forbidden: user does not have permission for this action")
	ErrDuplicateEmail       = repository.ErrDuplicateEmail
	ErrDuplicatePhone       = repository.ErrDuplicatePhone
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserNotFound         = errors.New("user not found")
	ErrRoomNotFound         = errors.New("room not found")
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrAssignedUserNotFound = errors.New("assigned user not found")
	ErrEventNotFound        = errors.New("event not found")
)

// ValidationError carries a client-facing message and matches ErrValidation
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// notFound translates the repository's missing-row error into the entity's sentinel
func notFound(err, sentinel error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return sentinel
	}
	return err
}
