package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDataFactory содержит методы для создания тестовых данных
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateProduct создает тестовый товар
func (f *TestDataFactory) CreateProduct(t *testing.T, name string, price float64, quantity int) int {
	var id int
	err := f.storage.DB.QueryRow(`INSERT INTO products (name, price, quantity)
		VALUES ($1, $2, $3) RETURNING id`,
		name, price, quantity).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateUser создает тестового пользователя
func (f *TestDataFactory) CreateUser(t *testing.T, username, passwordHash, role string) string {
	var uid string
	err := f.storage.DB.QueryRow(`INSERT INTO users (username, password_hash, role, is_active)
		VALUES ($1, $2, $3, true) RETURNING uid`,
		username, passwordHash, role).Scan(&uid)
	require.NoError(t, err)
	return uid
}

// TestVerification содержит общие функции для проверки результатов тестов
type TestVerification struct {
	storage *Storage
}

// NewTestVerification создает новый объект для проверки результатов
func NewTestVerification(storage *Storage) *TestVerification {
	return &TestVerification{storage: storage}
}

// VerifyProductExists проверяет существование товара в БД
func (v *TestVerification) VerifyProductExists(t *testing.T, productID int) {
	var count int
	err := v.storage.DB.QueryRow("SELECT COUNT(*) FROM products WHERE id = $1", productID).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

// VerifyProductDeleted проверяет удаление товара из БД
func (v *TestVerification) VerifyProductDeleted(t *testing.T, name string) {
	var count int
	err := v.storage.DB.QueryRow("SELECT COUNT(*) FROM products WHERE name = $1", name).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

// VerifyProductQuantity проверяет количество товара в БД
func (v *TestVerification) VerifyProductQuantity(t *testing.T, name string, expectedQuantity int) {
	var quantity int
	err := v.storage.DB.QueryRow("SELECT quantity FROM products WHERE name = $1", name).Scan(&quantity)
	require.NoError(t, err)
	require.Equal(t, expectedQuantity, quantity)
}

// VerifyUserExists проверяет существование пользователя в БД
func (v *TestVerification) VerifyUserExists(t *testing.T, uid string) {
	var count int
	err := v.storage.DB.QueryRow("SELECT COUNT(*) FROM users WHERE uid = $1", uid).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

// setupTestDatabase создает тестовую БД с контейнером PostgreSQL
func setupTestDatabase(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err, "failed to start container")

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")

	// Пробуем подключиться несколько раз с ретраями
	var storage *Storage
	for range 10 {
		storage, err = New(connStr)
		if err == nil {
			err = storage.DB.Ping()
			if err == nil {
				break
			}
		}
		time.Sleep(1 * time.Second)
	}
	require.NoError(t, err, "failed to create storage after retries")

	// Создаем таблицы
	_, err = storage.DB.Exec(`
        DROP TABLE IF EXISTS products CASCADE;
        DROP TABLE IF EXISTS users CASCADE;

        CREATE EXTENSION IF NOT EXISTS "pgcrypto";

        CREATE TABLE products (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL UNIQUE,
            price FLOAT NOT NULL,
            quantity INT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        );

        CREATE TABLE users (
            uid UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            username TEXT NOT NULL UNIQUE,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'partner',
            is_active BOOLEAN NOT NULL DEFAULT true,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        );
    `)
	require.NoError(t, err, "failed to create tables")

	cleanup := func() {
		if storage != nil && storage.DB != nil {
			_ = storage.DB.Close()
		}
		if pgContainer != nil {
			_ = pgContainer.Terminate(ctx)
		}
	}

	return storage, cleanup
}
