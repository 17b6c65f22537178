package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"foodgram/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateToken(userID int64) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func TestService_Register_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJWT := new(MockJWTService)

	mockUsers.On("ExistsByEmail", mock.Anything, "new@example.com").Return(false, nil)
	mockUsers.On("ExistsByUsername", mock.Anything, "newcook").Return(false, nil)
	mockUsers.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	svc := NewService(mockUsers, mockJWT)
	user, err := svc.Register(context.Background(), RegisterRequest{
		Email:     "New@Example.com",
		Username:  "newcook",
		FirstName: "Иван",
		LastName:  "Петров",
		Password:  "secret-password",
	})

	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	assert.NotEqual(t, "secret-password", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret-password")))
}

func TestService_Register_EmailExists(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJWT := new(MockJWTService)

	mockUsers.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

	svc := NewService(mockUsers, mockJWT)
	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "taken@example.com",
		Username: "somebody",
		Password: "secret-password",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	mockUsers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Register_UsernameTaken(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJWT := new(MockJWTService)

	mockUsers.On("ExistsByEmail", mock.Anything, "new@example.com").Return(false, nil)
	mockUsers.On("ExistsByUsername", mock.Anything, "taken").Return(true, nil)

	svc := NewService(mockUsers, mockJWT)
	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "new@example.com",
		Username: "taken",
		Password: "secret-password",
	})

	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestService_Login_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJWT := new(MockJWTService)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	mockUsers.On("GetByEmail", mock.Anything, "cook@example.com").Return(&domain.User{
		ID:           7,
		Email:        "cook@example.com",
		PasswordHash: string(hash),
	}, nil)
	mockJWT.On("GenerateToken", int64(7)).Return("signed-token", nil)

	svc := NewService(mockUsers, mockJWT)
	user, token, err := svc.Login(context.Background(), LoginRequest{
		Email:    "Cook@Example.com",
		Password: "secret-password",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "signed-token", token)
}

func TestService_Login_WrongPassword(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJWT := new(MockJWTService)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	mockUsers.On("GetByEmail", mock.Anything, "cook@example.com").Return(&domain.User{
		ID:           7,
		PasswordHash: string(hash),
	}, nil)

	svc := NewService(mockUsers, mockJWT)
	_, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "cook@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	mockJWT.AssertNotCalled(t, "GenerateToken", mock.Anything)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJWT := new(MockJWTService)

	mockUsers.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(mockUsers, mockJWT)
	_, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_GetProfile_NotFound(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJWT := new(MockJWTService)

	mockUsers.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(mockUsers, mockJWT)
	_, err := svc.GetProfile(context.Background(), 99)

	assert.ErrorIs(t, err, ErrUserNotFound)
}
