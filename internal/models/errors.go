// Package models содержит доменные ошибки системы учёта товаров.
// Ошибки сгруппированы в четыре класса: некорректный аргумент, дубликат ключа,
// отсутствие записи и недоступность внешнего источника. Конкретные ошибки
// оборачивают свой класс, поэтому вызывающий код проверяет и то и другое
// через errors.Is.
package models

import (
	"errors"
	"fmt"
)

// Классы ошибок. HTTP-слой сопоставляет их с кодами ответов.
var (
	// ErrInvalidArgument — входные данные не прошли проверку.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrAlreadyExists — запись с таким ключом уже существует.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotFound — запись с таким ключом отсутствует.
	ErrNotFound = errors.New("not found")
	// ErrRemoteUnavailable — внешний источник каталога недоступен.
	ErrRemoteUnavailable = errors.New("remote source unavailable")
)

// Конкретные ошибки каталога товаров и справочника пользователей.
var (
	ErrEmptyProductName = fmt.Errorf("%w: product name must not be empty", ErrInvalidArgument)
	ErrNegativePrice    = fmt.Errorf("%w: price must not be negative", ErrInvalidArgument)
	ErrNegativeQuantity = fmt.Errorf("%w: quantity must not be negative", ErrInvalidArgument)
	ErrUnknownRole      = fmt.Errorf("%w: unknown user role", ErrInvalidArgument)
	ErrEmptyCredentials = fmt.Errorf("%w: username and password must not be empty", ErrInvalidArgument)

	ErrProductExists   = fmt.Errorf("product %w", ErrAlreadyExists)
	ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)
	ErrUsernameTaken   = fmt.Errorf("username %w", ErrAlreadyExists)
)

// ErrInvalidCredentials возвращается при любой неудачной аутентификации.
// Неизвестный пользователь, неверный пароль и отключённая учётная запись
// дают один и тот же результат, чтобы не раскрывать существование аккаунта.
var ErrInvalidCredentials = errors.New("invalid credentials")
