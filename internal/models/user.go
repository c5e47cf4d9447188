// Package models содержит доменную модель пользователя системы.
// Структура используется в бизнес-логике и при работе с хранилищем;
// пароль существует только в виде bcrypt-хэша.
package models

// Роли пользователей системы.
const (
	// RoleAdmin — администратор: полный доступ, включая синхронизацию
	// каталога и просмотр справочника пользователей.
	RoleAdmin = "admin"
	// RolePartner — партнёр: работа с каталогом товаров.
	RolePartner = "partner"
)

// ValidRole сообщает, известна ли системе переданная роль.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RolePartner
}

// User представляет учётную запись системы.
type User struct {
	UID          string // Уникальный идентификатор
	Username     string // Имя пользователя (уникальное)
	PasswordHash string // Хэш пароля
	Role         string // Роль: admin или partner
	IsActive     bool   // Активна ли учётная запись
}

// PublicUser — открытые поля учётной записи. Хэш пароля наружу не выходит.
type PublicUser struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

// Public возвращает представление учётной записи без секретов.
func (u User) Public() PublicUser {
	return PublicUser{
		Username: u.Username,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}
