// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ragheeddamaj/dubizzle-mini/internal/lib/apperr"
	"github.com/ragheeddamaj/dubizzle-mini/internal/lib/jwt"
	"github.com/ragheeddamaj/dubizzle-mini/internal/lib/password"
	"github.com/ragheeddamaj/dubizzle-mini/internal/models"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его UID.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByEmail возвращает пользователя по email или apperr.ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUser возвращает пользователя по UID или apperr.ErrNotFound.
	GetUser(ctx context.Context, userUID string) (*models.User, error)
}

// AuthService отвечает за регистрацию, авторизацию и восстановление сессии.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля и возвращает
// пользователя вместе с сессионным токеном. Email нормализуется к нижнему
// регистру, поэтому дубликаты ловятся независимо от регистра букв.
func (s *AuthService) Register(ctx context.Context, fullName, email, rawPassword, role string) (*models.User, string, error) {
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && role != models.RoleModerator {
		return nil, "", fmt.Errorf("unknown role %q: %w", role, apperr.ErrValidation)
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, "", err
	}
	user := models.User{
		FullName:     fullName,
		Email:        strings.ToLower(email),
		PasswordHash: hashed,
		Role:         role,
	}
	uid, err := s.users.RegisterUser(ctx, user)
	if err != nil {
		return nil, "", err
	}
	user.UID = uid
	user.PasswordHash = ""

	token, err := s.jwtMaker.GenerateToken(user.UID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Login проверяет пароль пользователя и генерирует сессионный токен.
// Отсутствие пользователя и несовпадение пароля дают одну и ту же ошибку,
// чтобы ответ не раскрывал, зарегистрирован ли email.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (*models.User, string, error) {
	user, err := s.users.GetUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, "", apperr.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, "", apperr.ErrInvalidCredentials
	}
	token, err := s.jwtMaker.GenerateToken(user.UID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}
	user.PasswordHash = ""
	return user, token, nil
}

// Profile возвращает пользователя по UID без хэша пароля.
func (s *AuthService) Profile(ctx context.Context, userUID string) (*models.User, error) {
	user, err := s.users.GetUser(ctx, userUID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// ResolveSession восстанавливает пользователя по сессионному токену.
// Невалидный или истекший токен, как и удаленный пользователь, — это не ошибка:
// запрос просто анонимный, поэтому возвращается (nil, nil).
func (s *AuthService) ResolveSession(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, nil
	}
	user, err := s.users.GetUser(ctx, claims.UID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}
