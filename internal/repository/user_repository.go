package repository

//go:generate mockgen -source=user_repository.go -destination=mock/user_repository.go -package=mock

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"portfolio/backend/internal/model"
	"portfolio/backend/internal/snowflake"
)

type UserRepository interface {
	// GetByEmail returns nil without error when no user has the email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (model.User, error)
	Create(ctx context.Context, email, passwordHash string) (model.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Count(ctx context.Context) (int, error)
}

type userRepository struct {
	db dbtx
}

func NewUserRepository(db dbtx) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, password_hash, created_at, updated_at`

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	user, err := scanUser(row)
	if err != nil {
		return model.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (r *userRepository) Create(ctx context.Context, email, passwordHash string) (model.User, error) {
	id := snowflake.NextID()
	now := time.Now().UTC()
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO users (id, email, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		id,
		email,
		passwordHash,
		formatTime(now),
		formatTime(now),
	)
	if err != nil {
		return model.User{}, fmt.Errorf("create user: %w", err)
	}

	return model.User{
		ID:           id,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	result, err := r.db.ExecContext(
		ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		passwordHash,
		formatTime(time.Now()),
		id,
	)
	if err != nil {
		return fmt.Errorf("update user password: %w", err)
	}
	if err := requireAffected(result); err != nil {
		return fmt.Errorf("update user password: %w", err)
	}
	return nil
}

func (r *userRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

func scanUser(row rowScanner) (model.User, error) {
	var u model.User
	var createdAt, updatedAt string
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &createdAt, &updatedAt); err != nil {
		return model.User{}, err
	}

	var err error
	if u.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.User{}, fmt.Errorf("parse user created_at: %w", err)
	}
	if u.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.User{}, fmt.Errorf("parse user updated_at: %w", err)
	}
	return u, nil
}
