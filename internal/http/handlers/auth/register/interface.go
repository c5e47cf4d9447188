package register

import (
	"context"
)

// Service описывает интерфейс бизнес-логики регистрации пользователя.
type Service interface {
	Register(ctx context.Context, username, password, role string) (string, error)
}
