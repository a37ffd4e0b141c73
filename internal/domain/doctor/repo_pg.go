package doctor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mdhrk2001/doctor-appointment-cloud/pkg/timestamp"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const doctorCols = `id, name, specialty, bio, address, latitude, longitude, created_at`

func scanDoctor(row pgx.Row) (*Doctor, error) {
	var d Doctor
	var createdAt time.Time
	err := row.Scan(&d.ID, &d.Name, &d.Specialty, &d.Bio, &d.Address,
		&d.Latitude, &d.Longitude, &createdAt)
	if err != nil {
		return nil, err
	}
	d.CreatedAt = timestamp.New(createdAt)
	return &d, nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	d, err := scanDoctor(r.pool.QueryRow(ctx,
		`SELECT `+doctorCols+` FROM doctors WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *repoPG) Search(ctx context.Context, f SearchFilter, limit, offset int) ([]*Doctor, int, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	if f.Specialty != "" {
		args = append(args, f.Specialty)
		where += fmt.Sprintf(` AND specialty ILIKE $%d`, len(args))
	}
	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		where += fmt.Sprintf(` AND name ILIKE $%d`, len(args))
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM doctors`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	rows, err := r.pool.Query(ctx,
		`SELECT `+doctorCols+` FROM doctors`+where+
			fmt.Sprintf(` ORDER BY name LIMIT $%d OFFSET $%d`, len(args)-1, len(args)),
		args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Doctor
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, d)
	}
	return items, total, rows.Err()
}
