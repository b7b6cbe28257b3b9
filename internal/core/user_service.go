package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PasswordHasher is the external hashing collaborator consumed by CreateUser.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// UserService manages staff accounts.
type UserService interface {
	// CreateUser hashes the password via the configured PasswordHasher.
	// Duplicate username/email surfaces as the raw constraint failure.
	CreateUser(ctx context.Context, username, email, password, fullName, role string) (*User, error)
	GetUsers(ctx context.Context) ([]User, error)
	// GetTechnicians returns active users with the technician role.
	GetTechnicians(ctx context.Context) ([]User, error)
}

type userService struct {
	pool   *pgxpool.Pool
	hasher PasswordHasher
}

// NewUserService constructs a UserService backed by PostgreSQL.
func NewUserService(pool *pgxpool.Pool, hasher PasswordHasher) UserService {
	return &userService{pool: pool, hasher: hasher}
}

const userColumns = "id, username, email, password_hash, full_name, role, is_active, created_at, updated_at"

func (s *userService) CreateUser(ctx context.Context, username, email, password, fullName, role string) (*User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var u User
	err = s.pool.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash, full_name, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns,
		username, email, hash, fullName, role,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FullName, &u.Role,
		&u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			// Propagated untranslated: the caller sees the constraint failure.
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &u, nil
}

func (s *userService) GetUsers(ctx context.Context) ([]User, error) {
	return s.queryUsers(ctx,
		"SELECT "+userColumns+" FROM users ORDER BY username")
}

func (s *userService) GetTechnicians(ctx context.Context) ([]User, error) {
	return s.queryUsers(ctx,
		"SELECT "+userColumns+" FROM users WHERE role = 'technician' AND is_active = true ORDER BY username")
}

func (s *userService) queryUsers(ctx context.Context, query string, args ...any) ([]User, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FullName,
			&u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
