package addresses

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/refdudu/api-calvao-de-cria/internal/infra/dbx"

	"github.com/jackc/pgx/v5"
)

type Repository struct {
	db dbx.Querier
}

func NewRepository(q dbx.Querier) *Repository {
	return &Repository{db: q}
}

const addressColumns = `
id, user_id, alias, recipient_name, phone, cep, street, number,
complement, neighborhood, city, state, created_at, updated_at`

func scanAddress(row pgx.Row) (*Address, error) {
	var a Address
	err := row.Scan(
		&a.ID, &a.UserID, &a.Alias, &a.RecipientName, &a.Phone, &a.CEP, &a.Street, &a.Number,
		&a.Complement, &a.Neighborhood, &a.City, &a.State, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan address: %w", err)
	}
	return &a, nil
}

func (r *Repository) Create(ctx context.Context, a *Address) error {
	err := r.db.QueryRow(ctx, `
INSERT INTO addresses (
  user_id, alias, recipient_name, phone, cep, street, number,
  complement, neighborhood, city, state
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id, created_at, updated_at
`,
		a.UserID, a.Alias, a.RecipientName, a.Phone, a.CEP, a.Street, a.Number,
		a.Complement, a.Neighborhood, a.City, a.State,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create address: %w", err)
	}
	return nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]Address, error) {
	rows, err := r.db.Query(ctx, `
SELECT `+addressColumns+`
FROM addresses
WHERE user_id = $1
ORDER BY created_at DESC
`, userID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()

	var out []Address
	for rows.Next() {
		var a Address
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Alias, &a.RecipientName, &a.Phone, &a.CEP, &a.Street, &a.Number,
			&a.Complement, &a.Neighborhood, &a.City, &a.State, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

func (r *Repository) GetForUser(ctx context.Context, id, userID int64) (*Address, error) {
	return scanAddress(r.db.QueryRow(ctx, `
SELECT `+addressColumns+`
FROM addresses
WHERE id = $1 AND user_id = $2
`, id, userID))
}

var addressUpdatable = map[string]string{
	"alias":          "alias",
	"recipient_name": "recipient_name",
	"phone":          "phone",
	"cep":            "cep",
	"street":         "street",
	"number":         "number",
	"complement":     "complement",
	"neighborhood":   "neighborhood",
	"city":           "city",
	"state":          "state",
}

func (r *Repository) Update(ctx context.Context, id, userID int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	sets := []string{}
	args := []any{id, userID}
	arg := 3

	for key, val := range updates {
		col, ok := addressUpdatable[key]
		if !ok {
			return fmt.Errorf("unknown address field: %s", key)
		}
		sets = append(sets, fmt.Sprintf("%s = $%d", col, arg))
		args = append(args, val)
		arg++
	}
	sets = append(sets, "updated_at = now()")

	q := fmt.Sprintf(`UPDATE addresses SET %s WHERE id = $1 AND user_id = $2`, strings.Join(sets, ", "))

	tag, err := r.db.Exec(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("update address: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id, userID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM addresses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
