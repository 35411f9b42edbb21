package products

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

const productColumns = `
id, name, slug, description, price_cents, promo_price_cents,
is_promotion_active, stock_quantity, main_image_url, is_active,
created_at, updated_at`

func (r *Repository) scanProduct(row pgx.Row) (*Product, error) {
	var p Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.PriceCents, &p.PromoPriceCents,
		&p.IsPromotionActive, &p.StockQuantity, &p.MainImageURL, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	return &p, nil
}

// GetPublicByID hides inactive products from the storefront and the cart.
func (r *Repository) GetPublicByID(ctx context.Context, id int64) (*Product, error) {
	return r.scanProduct(r.db.QueryRow(ctx, `
SELECT `+productColumns+`
FROM products
WHERE id = $1 AND is_active = true
`, id))
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Product, error) {
	return r.scanProduct(r.db.QueryRow(ctx, `
SELECT `+productColumns+`
FROM products
WHERE id = $1
`, id))
}

func (r *Repository) List(ctx context.Context, f ListFilters, limit, offset int) ([]Product, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	where := "is_active = true"
	if f.IncludeInactive {
		where = "true"
	}
	args := []any{}
	arg := 1

	if f.Search != "" {
		where += fmt.Sprintf(" AND name ILIKE '%%' || $%d || '%%'", arg)
		args = append(args, f.Search)
		arg++
	}
	if f.PromotionOnly {
		where += " AND is_promotion_active = true"
	}

	q := fmt.Sprintf(`
SELECT `+productColumns+`,
       COUNT(*) OVER() AS total
FROM products
WHERE %s
ORDER BY created_at DESC
LIMIT $%d OFFSET $%d
`, where, arg, arg+1)

	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []Product
	total := 0

	for rows.Next() {
		var p Product
		var t int
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Slug, &p.Description, &p.PriceCents, &p.PromoPriceCents,
			&p.IsPromotionActive, &p.StockQuantity, &p.MainImageURL, &p.IsActive,
			&p.CreatedAt, &p.UpdatedAt,
			&t,
		); err != nil {
			return nil, 0, fmt.Errorf("scan: %w", err)
		}
		if total == 0 {
			total = t
		}
		out = append(out, p)
	}

	return out, total, rows.Err()
}

// DecrementStock is the checkout-time stock reservation. The guard in the
// WHERE clause keeps stock from going negative under concurrent checkouts.
func (r *Repository) DecrementStock(ctx context.Context, productID int64, quantity int) error {
	tag, err := r.db.Exec(ctx, `
UPDATE products
SET stock_quantity = stock_quantity - $2,
    updated_at = now()
WHERE id = $1
  AND stock_quantity >= $2
`, productID, quantity)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrOutOfStock
	}
	return nil
}

func (r *Repository) Create(ctx context.Context, p *Product) error {
	err := r.db.QueryRow(ctx, `
INSERT INTO products (
  name, slug, description, price_cents, promo_price_cents,
  is_promotion_active, stock_quantity, main_image_url, is_active
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, created_at, updated_at
`,
		p.Name, p.Slug, p.Description, p.PriceCents, p.PromoPriceCents,
		p.IsPromotionActive, p.StockQuantity, p.MainImageURL, p.IsActive,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateSlug
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

var updatableColumns = map[string]string{
	"name":                "name",
	"description":         "description",
	"price_cents":         "price_cents",
	"promo_price_cents":   "promo_price_cents",
	"is_promotion_active": "is_promotion_active",
	"stock_quantity":      "stock_quantity",
	"is_active":           "is_active",
}

func (r *Repository) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	sets := []string{}
	args := []any{id}
	arg := 2

	for key, val := range updates {
		col, ok := updatableColumns[key]
		if !ok {
			return fmt.Errorf("unknown product field: %s", key)
		}
		sets = append(sets, fmt.Sprintf("%s = $%d", col, arg))
		args = append(args, val)
		arg++
	}
	sets = append(sets, "updated_at = now()")

	q := fmt.Sprintf(`UPDATE products SET %s WHERE id = $1`, strings.Join(sets, ", "))

	tag, err := r.db.Exec(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) SetMainImage(ctx context.Context, id int64, url string) error {
	tag, err := r.db.Exec(ctx, `
UPDATE products SET main_image_url = $2, updated_at = now() WHERE id = $1
`, id, url)
	if err != nil {
		return fmt.Errorf("set product image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete deactivates instead of removing: order and cart snapshots keep
// referencing the product id.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `
UPDATE products SET is_active = false, updated_at = now() WHERE id = $1
`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
