package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"hotel_management/internal/model"
	"hotel_management/internal/repository"
	"hotel_management/internal/utils"
)

// RegisterInput holds the fields needed to create an account
type RegisterInput struct {
	Name        string
	Email       string
	PhoneNumber string
	Password    string
	Role        model.Role
}

// AuthService provides registration, login and user administration
type AuthService interface {
	Register(ctx context.Context, in RegisterInput, actor *model.Principal) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	CreateStaff(ctx context.Context, in RegisterInput) (*model.User, error)
	EnsureAdmin(ctx context.Context, in RegisterInput) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
	}
}

// Register creates a new account. Customers may self-register; admin and staff
// accounts require an admin actor.
func (s *authService) Register(ctx context.Context, in RegisterInput, actor *model.Principal) (*model.User, error) {
	if in.Role == "" {
		in.Role = model.RoleCustomer
	}
	if err := validateRegistration(in); err != nil {
		return nil, err
	}

	if in.Role.Privileged() && (actor == nil || actor.Role != model.RoleAdmin) {
		return nil, fmt.Errorf("%w: only admins can create staff or admin users", ErrForbidden)
	}

	return s.createUser(ctx, in)
}

// CreateStaff registers a staff account on behalf of an admin
func (s *authService) CreateStaff(ctx context.Context, in RegisterInput) (*model.User, error) {
	in.Role = model.RoleStaff
	if err := validateRegistration(in); err != nil {
		return nil, err
	}
	return s.createUser(ctx, in)
}

// EnsureAdmin creates the bootstrap admin unless the email is already registered
func (s *authService) EnsureAdmin(ctx context.Context, in RegisterInput) (*model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing admin: %w", err)
	}
	if existing != nil {
		if existing.Role != model.RoleAdmin {
			log.Printf("WARN: initial admin email %s belongs to a %s account", in.Email, existing.Role)
		}
		return existing, nil
	}

	in.Role = model.RoleAdmin
	if err := validateRegistration(in); err != nil {
		return nil, err
	}
	user, err := s.createUser(ctx, in)
	if err != nil {
		return nil, err
	}
	log.Printf("INFO: initial admin %s (ID: %d) created", user.Email, user.ID)
	return user, nil
}

func (s *authService) createUser(ctx context.Context, in RegisterInput) (*model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	existing, err = s.userRepo.FindByPhone(ctx, in.PhoneNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing phone: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicatePhone
	}

	hashedPassword, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         in.Name,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		PasswordHash: hashedPassword,
		Role:         in.Role,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// a concurrent registration can still trip the unique constraints
		if errors.Is(err, ErrDuplicateEmail) || errors.Is(err, ErrDuplicatePhone) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}
	return user, nil
}

// Login authenticates a user and returns a JWT token
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

func (s *authService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func validateRegistration(in RegisterInput) error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.PhoneNumber) == "" || in.Password == "" {
		return invalid("Missing required fields")
	}
	if !in.Role.Valid() {
		return invalid(fmt.Sprintf("Invalid user type %q", in.Role))
	}
	return nil
}
