package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ragheeddamaj/dubizzle-mini/internal/lib/apperr"
	"github.com/ragheeddamaj/dubizzle-mini/internal/lib/jwt"
	"github.com/ragheeddamaj/dubizzle-mini/internal/lib/password"
	"github.com/ragheeddamaj/dubizzle-mini/internal/models"
)

type UsersMock struct{ mock.Mock }

func (m *UsersMock) RegisterUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}
func (m *UsersMock) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *UsersMock) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MakerMock struct{ mock.Mock }

func (m *MakerMock) GenerateToken(uid, email, role string) (string, error) {
	args := m.Called(uid, email, role)
	return args.String(0), args.Error(1)
}
func (m *MakerMock) ParseToken(tokenStr string) (*jwt.CustomClaims, error) {
	args := m.Called(tokenStr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jwt.CustomClaims), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		setupMocks func(u *UsersMock, j *MakerMock)
		wantErr    error
		wantRole   string
	}{
		{
			name: "роль по умолчанию user",
			role: "",
			setupMocks: func(u *UsersMock, j *MakerMock) {
				u.On("RegisterUser", mock.Anything, mock.MatchedBy(func(user models.User) bool {
					return user.Email == "new@test.com" &&
						user.Role == models.RoleUser &&
						user.PasswordHash != "" &&
						user.PasswordHash != "secret123"
				})).Return("uid-1", nil).Once()
				j.On("GenerateToken", "uid-1", "new@test.com", models.RoleUser).
					Return("token-1", nil).Once()
			},
			wantRole: models.RoleUser,
		},
		{
			name: "регистрация модератора",
			role: models.RoleModerator,
			setupMocks: func(u *UsersMock, j *MakerMock) {
				u.On("RegisterUser", mock.Anything, mock.Anything).Return("uid-2", nil).Once()
				j.On("GenerateToken", "uid-2", "new@test.com", models.RoleModerator).
					Return("token-2", nil).Once()
			},
			wantRole: models.RoleModerator,
		},
		{
			name:       "неизвестная роль",
			role:       "admin",
			setupMocks: func(_ *UsersMock, _ *MakerMock) {},
			wantErr:    apperr.ErrValidation,
		},
		{
			name: "занятый email",
			role: "",
			setupMocks: func(u *UsersMock, _ *MakerMock) {
				u.On("RegisterUser", mock.Anything, mock.Anything).
					Return("", apperr.ErrDuplicateEmail).Once()
			},
			wantErr: apperr.ErrDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(UsersMock)
			maker := new(MakerMock)
			svc := NewAuthService(users, maker)

			tt.setupMocks(users, maker)

			user, token, err := svc.Register(context.Background(), "Test User", "New@Test.com", "secret123", tt.role)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.Equal(t, tt.wantRole, user.Role)
				assert.Equal(t, "new@test.com", user.Email, "email must be normalized to lowercase")
				assert.Empty(t, user.PasswordHash)
			}

			users.AssertExpectations(t)
			maker.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := password.GetHash("secret123")
	require.NoError(t, err)

	stored := &models.User{
		UID:          "uid-1",
		Email:        "user@test.com",
		PasswordHash: hash,
		Role:         models.RoleUser,
	}

	tests := []struct {
		name       string
		email      string
		pass       string
		setupMocks func(u *UsersMock, j *MakerMock)
		wantErr    error
	}{
		{
			name:  "успешный вход",
			email: "user@test.com",
			pass:  "secret123",
			setupMocks: func(u *UsersMock, j *MakerMock) {
				u.On("GetUserByEmail", mock.Anything, "user@test.com").Return(stored, nil).Once()
				j.On("GenerateToken", "uid-1", "user@test.com", models.RoleUser).
					Return("token-1", nil).Once()
			},
		},
		{
			name:  "email нормализуется к нижнему регистру",
			email: "User@Test.com",
			pass:  "secret123",
			setupMocks: func(u *UsersMock, j *MakerMock) {
				u.On("GetUserByEmail", mock.Anything, "user@test.com").Return(stored, nil).Once()
				j.On("GenerateToken", "uid-1", "user@test.com", models.RoleUser).
					Return("token-1", nil).Once()
			},
		},
		{
			name:  "неизвестный email дает ту же ошибку, что и неверный пароль",
			email: "ghost@test.com",
			pass:  "secret123",
			setupMocks: func(u *UsersMock, _ *MakerMock) {
				u.On("GetUserByEmail", mock.Anything, "ghost@test.com").
					Return(nil, apperr.ErrNotFound).Once()
			},
			wantErr: apperr.ErrInvalidCredentials,
		},
		{
			name:  "неверный пароль",
			email: "user@test.com",
			pass:  "wrongpass",
			setupMocks: func(u *UsersMock, _ *MakerMock) {
				u.On("GetUserByEmail", mock.Anything, "user@test.com").Return(stored, nil).Once()
			},
			wantErr: apperr.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(UsersMock)
			maker := new(MakerMock)
			svc := NewAuthService(users, maker)

			tt.setupMocks(users, maker)

			user, token, err := svc.Login(context.Background(), tt.email, tt.pass)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "token-1", token)
				assert.Empty(t, user.PasswordHash)
			}

			users.AssertExpectations(t)
			maker.AssertExpectations(t)
		})
	}
}

func TestAuthService_ResolveSession(t *testing.T) {
	stored := &models.User{UID: "uid-1", Email: "user@test.com", Role: models.RoleUser}

	tests := []struct {
		name       string
		token      string
		setupMocks func(u *UsersMock, j *MakerMock)
		wantUser   bool
	}{
		{
			name:  "валидный токен возвращает пользователя",
			token: "good-token",
			setupMocks: func(u *UsersMock, j *MakerMock) {
				j.On("ParseToken", "good-token").
					Return(&jwt.CustomClaims{UID: "uid-1"}, nil).Once()
				u.On("GetUser", mock.Anything, "uid-1").Return(stored, nil).Once()
			},
			wantUser: true,
		},
		{
			name:       "пустой токен означает анонимный запрос",
			token:      "",
			setupMocks: func(_ *UsersMock, _ *MakerMock) {},
		},
		{
			name:  "невалидный токен не является ошибкой",
			token: "garbage",
			setupMocks: func(_ *UsersMock, j *MakerMock) {
				j.On("ParseToken", "garbage").Return(nil, assert.AnError).Once()
			},
		},
		{
			name:  "удаленный пользователь означает анонимный запрос",
			token: "good-token",
			setupMocks: func(u *UsersMock, j *MakerMock) {
				j.On("ParseToken", "good-token").
					Return(&jwt.CustomClaims{UID: "uid-ghost"}, nil).Once()
				u.On("GetUser", mock.Anything, "uid-ghost").
					Return(nil, apperr.ErrNotFound).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(UsersMock)
			maker := new(MakerMock)
			svc := NewAuthService(users, maker)

			tt.setupMocks(users, maker)

			user, err := svc.ResolveSession(context.Background(), tt.token)
			assert.NoError(t, err)
			if tt.wantUser {
				require.NotNil(t, user)
				assert.Equal(t, "uid-1", user.UID)
			} else {
				assert.Nil(t, user)
			}

			users.AssertExpectations(t)
			maker.AssertExpectations(t)
		})
	}
}
