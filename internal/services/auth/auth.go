// Package auth содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/krotovalex/inventory-keeper/internal/lib/jwt"
	"github.com/krotovalex/inventory-keeper/internal/lib/password"
	"github.com/krotovalex/inventory-keeper/internal/models"
)

// DefaultAdminUsername — имя администратора, создаваемого при первом запуске.
const DefaultAdminUsername = "admin"

// insecureAdminPassword — заводской пароль администратора. Его использование
// в работающей системе подсвечивается предупреждением в логе.
const insecureAdminPassword = "admin123"

// UserRepository описывает контракт для работы с пользователями в хранилище.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его ID.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByUsername возвращает пользователя по имени с признаком наличия.
	GetUserByUsername(ctx context.Context, username string) (*models.User, bool, error)

	// ListUsers возвращает список всех пользователей в порядке регистрации.
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// Service отвечает за регистрацию, авторизацию и справочник пользователей.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
	log      *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(users UserRepository, jwtMaker jwt.Maker, log *slog.Logger) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
		log:      log,
	}
}

// Register создает нового пользователя с хэшированием пароля.
// Пустая роль трактуется как "partner".
func (s *Service) Register(ctx context.Context, username, rawPassword, role string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || rawPassword == "" {
		return "", models.ErrEmptyCredentials
	}
	if role == "" {
		role = models.RolePartner
	}
	if !models.ValidRole(role) {
		return "", models.ErrUnknownRole
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", err
	}
	user := models.User{
		Username:     username,
		PasswordHash: hashed,
		Role:         role,
		IsActive:     true,
	}

	uid, err := s.users.RegisterUser(ctx, user)
	if err != nil {
		return "", err
	}

	s.log.Info("registered new user", slog.String("username", username), slog.String("role", role))
	return uid, nil
}

// Login проверяет пароль пользователя и генерирует JWT.
// Неизвестное имя, неверный пароль и отключённая учётная запись
// неразличимы для вызывающей стороны.
func (s *Service) Login(ctx context.Context, username, rawPassword string) (token, role string, err error) {
	user, found, err := s.users.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return "", "", err
	}
	if !found {
		return "", "", models.ErrInvalidCredentials
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", "", models.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", "", models.ErrInvalidCredentials
	}

	token, err = s.jwtMaker.GenerateToken(user.Username, user.Role)
	if err != nil {
		return "", "", err
	}
	return token, user.Role, nil
}

// Users возвращает открытые сведения обо всех пользователях в порядке регистрации.
func (s *Service) Users(ctx context.Context) ([]*models.PublicUser, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*models.PublicUser, 0, len(users))
	for _, user := range users {
		public := user.Public()
		result = append(result, &public)
	}
	return result, nil
}

// EnsureDefaultAdmin создает учётную запись администратора, если её ещё нет.
// Вызывается при старте сервиса до приёма запросов.
func (s *Service) EnsureDefaultAdmin(ctx context.Context, adminPassword string) error {
	admin, found, err := s.users.GetUserByUsername(ctx, DefaultAdminUsername)
	if err != nil {
		return err
	}
	if found {
		if password.CompareHash(admin.PasswordHash, insecureAdminPassword) == nil {
			s.log.Warn("default admin password is in use, change it before exposing the service")
		}
		return nil
	}

	if _, err := s.Register(ctx, DefaultAdminUsername, adminPassword, models.RoleAdmin); err != nil {
		// Параллельный экземпляр мог успеть создать администратора первым.
		if errors.Is(err, models.ErrUsernameTaken) {
			return nil
		}
		return err
	}

	s.log.Info("created default admin user", slog.String("username", DefaultAdminUsername))
	if adminPassword == insecureAdminPassword {
		s.log.Warn("default admin password is in use, change it before exposing the service")
	}
	return nil
}
