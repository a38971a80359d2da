package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oceanwatch/oceanwatch-be/internal/models"
	"github.com/oceanwatch/oceanwatch-be/internal/storage"
)

// CreateUser inserts a new user row. A duplicate email maps to ErrAlreadyExists.
func (s *Store) CreateUser(ctx context.Context, user models.User) error {
	const query = `
		INSERT INTO users (id, name, email, role, password_hash, created_at, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`
	_, err := s.pool.Exec(ctx, query,
		user.ID, user.Name, user.Email, string(user.Role), user.PasswordHash, user.CreatedAt, user.IsActive)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return storage.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// FindUserByEmail fetches a user by exact (case-sensitive) email match.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	const query = `
		SELECT id, name, email, role, password_hash, created_at, is_active
		FROM users WHERE email = $1;`
	return scanUser(s.pool.QueryRow(ctx, query, email))
}

// ListUsers returns every user, newest first.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	const query = `
		SELECT id, name, email, role, password_hash, created_at, is_active
		FROM users ORDER BY created_at DESC;`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// SetUserActive sets the active flag for the given user id.
func (s *Store) SetUserActive(ctx context.Context, id string, active bool) error {
	tag, err := s.pool.Exec(ctx, `UPDATE users SET is_active = $2 WHERE id = $1;`, id, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	var role string
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &role, &user.PasswordHash, &user.CreatedAt, &user.IsActive); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}
	user.Role = models.Role(role)
	return user, nil
}
