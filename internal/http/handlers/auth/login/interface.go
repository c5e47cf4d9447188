package login

import (
	"context"
)

// Service описывает интерфейс бизнес-логики аутентификации.
//
// Login возвращает JWT и роль пользователя при верных учётных данных.
type Service interface {
	Login(ctx context.Context, username, password string) (string, string, error)
}
