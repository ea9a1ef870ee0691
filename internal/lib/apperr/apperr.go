// Package apperr определяет доменные ошибки сервиса и их отображение
// в HTTP-статусы. Сервисы возвращают эти ошибки (при необходимости оборачивая
// через fmt.Errorf с %w), а HTTP-обработчики сопоставляют их со статусами
// через errors.Is.
package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials — неверная пара email/пароль. Ответ не различает
	// отсутствие пользователя и несовпадение пароля.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrDuplicateEmail — пользователь с таким email уже зарегистрирован.
	ErrDuplicateEmail = errors.New("user with this email already exists")
	// ErrNotFound — запрошенный ресурс отсутствует.
	ErrNotFound = errors.New("resource not found")
	// ErrUnauthorized — запрос без валидной сессии.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden — несоответствие роли или владельца.
	ErrForbidden = errors.New("forbidden")
	// ErrValidation — отсутствует обязательное поле или значение некорректно.
	ErrValidation = errors.New("validation failed")
)

// HTTPStatus сопоставляет доменную ошибку с HTTP-статусом.
// Неизвестные ошибки считаются сбоем хранилища или внутренней ошибкой.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrDuplicateEmail),
		errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
