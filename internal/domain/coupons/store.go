package coupons

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/refdudu/api-calvao-de-cria/internal/infra/dbx"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Repository struct {
	db dbx.Querier
}

func NewRepository(q dbx.Querier) *Repository {
	return &Repository{db: q}
}

const couponColumns = `
id, code, description, type, value, min_purchase_cents,
is_active, expires_at, created_at, updated_at`

func scanCoupon(row pgx.Row) (*Coupon, error) {
	var c Coupon
	err := row.Scan(
		&c.ID, &c.Code, &c.Description, &c.Type, &c.Value, &c.MinPurchaseCents,
		&c.IsActive, &c.ExpiresAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan coupon: %w", err)
	}
	return &c, nil
}

func (r *Repository) FindByCode(ctx context.Context, code string) (*Coupon, error) {
	return scanCoupon(r.db.QueryRow(ctx, `
SELECT `+couponColumns+`
FROM coupons
WHERE code = upper($1)
  AND is_active = true
  AND expires_at > now()
`, code))
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Coupon, error) {
	return scanCoupon(r.db.QueryRow(ctx, `
SELECT `+couponColumns+`
FROM coupons
WHERE id = $1
`, id))
}

func (r *Repository) List(ctx context.Context, isActive *bool, limit, offset int) ([]Coupon, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	where := "1=1"
	args := []any{}
	arg := 1

	if isActive != nil {
		where += fmt.Sprintf(" AND is_active = $%d", arg)
		args = append(args, *isActive)
		arg++
	}

	q := fmt.Sprintf(`
SELECT `+couponColumns+`,
       COUNT(*) OVER() AS total
FROM coupons
WHERE %s
ORDER BY created_at DESC
LIMIT $%d OFFSET $%d
`, where, arg, arg+1)

	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list coupons: %w", err)
	}
	defer rows.Close()

	var out []Coupon
	total := 0

	for rows.Next() {
		var c Coupon
		var t int
		if err := rows.Scan(
			&c.ID, &c.Code, &c.Description, &c.Type, &c.Value, &c.MinPurchaseCents,
			&c.IsActive, &c.ExpiresAt, &c.CreatedAt, &c.UpdatedAt,
			&t,
		); err != nil {
			return nil, 0, fmt.Errorf("scan: %w", err)
		}
		if total == 0 {
			total = t
		}
		out = append(out, c)
	}

	return out, total, rows.Err()
}

func (r *Repository) Create(ctx context.Context, c *Coupon) error {
	err := r.db.QueryRow(ctx, `
INSERT INTO coupons (code, description, type, value, min_purchase_cents, is_active, expires_at)
VALUES (upper($1), $2, $3, $4, $5, $6, $7)
RETURNING id, code, created_at, updated_at
`,
		c.Code, c.Description, c.Type, c.Value, c.MinPurchaseCents, c.IsActive, c.ExpiresAt,
	).Scan(&c.ID, &c.Code, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateCode
		}
		return fmt.Errorf("create coupon: %w", err)
	}
	return nil
}

var couponUpdatable = map[string]string{
	"description":        "description",
	"type":               "type",
	"value":              "value",
	"min_purchase_cents": "min_purchase_cents",
	"is_active":          "is_active",
	"expires_at":         "expires_at",
}

func (r *Repository) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	sets := []string{}
	args := []any{id}
	arg := 2

	for key, val := range updates {
		col, ok := couponUpdatable[key]
		if !ok {
			return fmt.Errorf("unknown coupon field: %s", key)
		}
		sets = append(sets, fmt.Sprintf("%s = $%d", col, arg))
		args = append(args, val)
		arg++
	}
	sets = append(sets, "updated_at = now()")

	q := fmt.Sprintf(`UPDATE coupons SET %s WHERE id = $1`, strings.Join(sets, ", "))

	tag, err := r.db.Exec(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("update coupon: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete coupon: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
