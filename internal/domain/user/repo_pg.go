package user

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mdhrk2001/doctor-appointment-cloud/pkg/timestamp"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) Create(ctx context.Context, u *User) error {
	var createdAt time.Time
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (id, name, email, role)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at`,
		u.ID, u.Name, u.Email, u.Role,
	).Scan(&createdAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyExists
		}
		return err
	}
	u.CreatedAt = timestamp.New(createdAt)
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id string) (*User, error) {
	var u User
	var createdAt time.Time
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email, role, created_at FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Role, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u.CreatedAt = timestamp.New(createdAt)
	return &u, nil
}
