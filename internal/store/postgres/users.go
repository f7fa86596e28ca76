package postgres

import (
	"context"
	"fmt"
	"time"

	"focusflow/internal/model"
	"focusflow/internal/store"
)

func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	row := s.db.QueryRow(ctx,
		`INSERT INTO users (email, full_name, hashed_password, last_login)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		u.Email,
		u.FullName,
		u.HashedPassword,
		u.LastLogin,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("CreateUser: %w", store.ErrEmailTaken)
		}
		return wrap("CreateUser", err)
	}
	return nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	row := s.db.QueryRow(ctx,
		`SELECT id, email, full_name, hashed_password, last_login, created_at, updated_at
		 FROM users WHERE email = $1`,
		email,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.FullName,
		&u.HashedPassword,
		&u.LastLogin,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, wrap("GetUserByEmail", err)
	}
	return u, nil
}

func (s *Store) TouchLastLogin(ctx context.Context, userID int, at time.Time) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE users SET last_login = $1, updated_at = $1 WHERE id = $2`,
		at,
		userID,
	)
	if err != nil {
		return wrap("TouchLastLogin", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("TouchLastLogin: %w", store.ErrNotFound)
	}
	return nil
}
