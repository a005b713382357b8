package service

import (
	"context"
	"errors"
	"testing"

	"hotel_management/internal/model"
	"hotel_management/internal/repository/memory"
	"hotel_management/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) FindByPhone(ctx context.Context, phone string) (*model.User, error) {
	args := m.Called(ctx, phone)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func newAuth(t *testing.T) (AuthService, *memory.Store, *utils.JWTUtil) {
	t.Helper()
	store := memory.NewStore()
	jwtUtil := utils.NewJWTUtil("test-secret", 1)
	return NewAuthService(store.Users(), jwtUtil), store, jwtUtil
}

func ana() RegisterInput {
	return RegisterInput{Name: "Ana", Email: "ana@x.com", PhoneNumber: "555", Password: "pw"}
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	svc, _, jwtUtil := newAuth(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, ana(), nil)
	require.NoError(t, err)
	assert.Equal(t, model.RoleCustomer, user.Role)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "pw", user.PasswordHash)

	got, token, err := svc.Login(ctx, "ana@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	p, err := jwtUtil.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, model.Principal{UserID: user.ID, Role: model.RoleCustomer}, p)
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _, _ := newAuth(t)

	in := ana()
	in.Password = ""
	_, err := svc.Register(context.Background(), in, nil)
	assert.ErrorIs(t, err, ErrValidation)
	assert.EqualError(t, err, "Missing required fields")

	in = ana()
	in.Role = "manager"
	_, err = svc.Register(context.Background(), in, nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthService_Register_Duplicates(t *testing.T) {
	svc, _, _ := newAuth(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, ana(), nil)
	require.NoError(t, err)

	sameEmail := ana()
	sameEmail.PhoneNumber = "777"
	_, err = svc.Register(ctx, sameEmail, nil)
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	samePhone := ana()
	samePhone.Email = "other@x.com"
	_, err = svc.Register(ctx, samePhone, nil)
	assert.ErrorIs(t, err, ErrDuplicatePhone)
}

func TestAuthService_Register_PrivilegedRoles(t *testing.T) {
	admin := &model.Principal{UserID: 1, Role: model.RoleAdmin}
	staff := &model.Principal{UserID: 2, Role: model.RoleStaff}
	customer := &model.Principal{UserID: 3, Role: model.RoleCustomer}

	tests := []struct {
		name    string
		role    model.Role
		actor   *model.Principal
		wantErr error
	}{
		{"anonymous staff", model.RoleStaff, nil, ErrForbidden},
		{"anonymous admin", model.RoleAdmin, nil, ErrForbidden},
		{"customer creates admin", model.RoleAdmin, customer, ErrForbidden},
		{"staff creates staff", model.RoleStaff, staff, ErrForbidden},
		{"admin creates staff", model.RoleStaff, admin, nil},
		{"admin creates admin", model.RoleAdmin, admin, nil},
		{"anonymous customer", model.RoleCustomer, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newAuth(t)
			in := ana()
			in.Role = tt.role

			user, err := svc.Register(context.Background(), in, tt.actor)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.role, user.Role)
		})
	}
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, _, _ := newAuth(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, ana(), nil)
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "ana@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@x.com", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_CreateStaffAndList(t *testing.T) {
	svc, _, _ := newAuth(t)
	ctx := context.Background()

	staff, err := svc.CreateStaff(ctx, RegisterInput{Name: "Sam", Email: "sam@x.com", PhoneNumber: "111", Password: "pw", Role: model.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, model.RoleStaff, staff.Role)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "sam@x.com", users[0].Email)
}

func TestAuthService_EnsureAdmin_Idempotent(t *testing.T) {
	svc, _, _ := newAuth(t)
	ctx := context.Background()
	in := RegisterInput{Name: "Root", Email: "root@x.com", PhoneNumber: "000", Password: "pw"}

	first, err := svc.EnsureAdmin(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, first.Role)

	second, err := svc.EnsureAdmin(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestAuthService_Register_RepositoryFailure(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, utils.NewJWTUtil("test-secret", 1))
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	repo.On("FindByEmail", ctx, "ana@x.com").Return(nil, nil)
	repo.On("FindByPhone", ctx, "555").Return(nil, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*model.User")).Return(dbErr)

	_, err := svc.Register(ctx, ana(), nil)
	assert.ErrorIs(t, err, dbErr)
	repo.AssertExpectations(t)
}

func TestAuthService_Login_RepositoryFailure(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, utils.NewJWTUtil("test-secret", 1))
	ctx := context.Background()

	repo.On("FindByEmail", ctx, "ana@x.com").Return(nil, errors.New("timeout"))

	_, _, err := svc.Login(ctx, "ana@x.com", "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	repo.AssertExpectations(t)
}
