package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/refdudu/api-calvao-de-cria/internal/domain/carts"
	"github.com/refdudu/api-calvao-de-cria/internal/infra/dbx"

	"github.com/jackc/pgx/v5"
)

type Repository struct {
	db dbx.Querier
}

func NewRepository(q dbx.Querier) *Repository {
	return &Repository{db: q}
}

const orderColumns = `
id, user_id, order_number, status, payment_status, payment_method, paid_at,
subtotal_cents, items_discount_cents, coupon_discount_cents,
total_discount_cents, total_cents, coupon_code, created_at`

// NextOrderNumber reads the highest order number with today's prefix and
// increments it. A transaction-scoped advisory lock on the prefix
// serializes concurrent checkouts: row locks can't do this, since the
// first order of a day has no row to lock, and a blocked reader would
// re-read the pre-insert top row anyway. The unique index on
// order_number is the backstop.
func (r *Repository) NextOrderNumber(ctx context.Context, day time.Time) (string, error) {
	prefix := day.Format(orderNumberDateLayout)

	_, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext('order_number:' || $1))`, prefix)
	if err != nil {
		return "", fmt.Errorf("order number lock: %w", err)
	}

	var last string
	err = r.db.QueryRow(ctx, `
SELECT order_number
FROM orders
WHERE order_number LIKE $1 || '-%'
ORDER BY order_number DESC
LIMIT 1
`, prefix).Scan(&last)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("last order number: %w", err)
	}

	return nextOrderNumber(day, last), nil
}

// CreateFromCart snapshots the cart into an immutable order: one order
// row plus one order_items row per cart line, frozen prices carried over.
// Assumes it runs inside a sales transaction; the callers decrement stock
// and clear the cart in the same transaction.
func (r *Repository) CreateFromCart(ctx context.Context, userID int64, orderNumber string, cart *carts.Cart, ship ShippingInfo, charge PaymentCharge) (*Order, error) {
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	o := &Order{
		UserID:              userID,
		OrderNumber:         orderNumber,
		Status:              StatusAwaitingPayment,
		PaymentStatus:       PaymentPending,
		PaymentMethod:       charge.Method,
		SubtotalCents:       cart.SubtotalCents,
		ItemsDiscountCents:  cart.ItemsDiscountCents,
		CouponDiscountCents: cart.CouponDiscountCents,
		TotalDiscountCents:  cart.TotalDiscountCents,
		TotalCents:          cart.TotalCents,
		CouponCode:          cart.ActiveCouponCode,
	}

	err := r.db.QueryRow(ctx, `
INSERT INTO orders (
  user_id, order_number, status, payment_status, payment_method,
  subtotal_cents, items_discount_cents, coupon_discount_cents,
  total_discount_cents, total_cents, coupon_code,
  shipping_recipient, shipping_phone, shipping_street, shipping_number,
  shipping_complement, shipping_neighborhood,
  shipping_city, shipping_state, shipping_postal_code, shipping_country,
  pix_transaction_id, pix_qr_code, pix_qr_image_url
) VALUES (
  $1, $2, $3, $4, $5,
  $6, $7, $8,
  $9, $10, $11,
  $12, $13, $14, $15,
  $16, $17,
  $18, $19, $20, COALESCE($21, 'BR'),
  $22, $23, $24
)
RETURNING id, created_at
`,
		userID, o.OrderNumber, o.Status, o.PaymentStatus, o.PaymentMethod,
		o.SubtotalCents, o.ItemsDiscountCents, o.CouponDiscountCents,
		o.TotalDiscountCents, o.TotalCents, o.CouponCode,
		ship.RecipientName, ship.Phone, ship.Street, ship.Number,
		ship.Complement, ship.Neighborhood,
		ship.City, ship.State, ship.PostalCode, ship.Country,
		charge.TransactionID, charge.QRCode, charge.QRCodeImageURL,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	for _, line := range cart.Items {
		if _, err := r.db.Exec(ctx, `
INSERT INTO order_items (
  order_id, product_id, name, image_url, quantity, unit_price_cents, line_total_cents
) VALUES ($1, $2, $3, $4, $5, $6, $7)
`,
			o.ID, line.ProductID, line.Name, line.ImageURL,
			line.Quantity, line.UnitPriceCents, line.LineTotalCents,
		); err != nil {
			return nil, fmt.Errorf("copy order item: %w", err)
		}
	}

	return o, nil
}

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	err := row.Scan(
		&o.ID, &o.UserID, &o.OrderNumber, &o.Status, &o.PaymentStatus, &o.PaymentMethod, &o.PaidAt,
		&o.SubtotalCents, &o.ItemsDiscountCents, &o.CouponDiscountCents,
		&o.TotalDiscountCents, &o.TotalCents, &o.CouponCode, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}
	return &o, nil
}

func (r *Repository) GetByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	return scanOrder(r.db.QueryRow(ctx, `
SELECT `+orderColumns+`
FROM orders
WHERE order_number = $1
`, orderNumber))
}

func (r *Repository) ListByUser(ctx context.Context, userID int64, status string, limit, offset int) ([]Order, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx, `
SELECT `+orderColumns+`,
       COUNT(*) OVER() AS total
FROM orders
WHERE user_id = $1
  AND ($2 = '' OR status = $2)
ORDER BY created_at DESC
LIMIT $3 OFFSET $4
`, userID, status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *Repository) ListAll(ctx context.Context, status string, limit, offset int) ([]Order, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx, `
SELECT `+orderColumns+`,
       COUNT(*) OVER() AS total
FROM orders
WHERE ($1 = '' OR status = $1)
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`, status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("admin list orders: %w", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

func collectOrders(rows pgx.Rows) ([]Order, int, error) {
	var out []Order
	total := 0

	for rows.Next() {
		var o Order
		var t int
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.OrderNumber, &o.Status, &o.PaymentStatus, &o.PaymentMethod, &o.PaidAt,
			&o.SubtotalCents, &o.ItemsDiscountCents, &o.CouponDiscountCents,
			&o.TotalDiscountCents, &o.TotalCents, &o.CouponCode, &o.CreatedAt,
			&t,
		); err != nil {
			return nil, 0, fmt.Errorf("scan order: %w", err)
		}
		if total == 0 {
			total = t
		}
		out = append(out, o)
	}

	return out, total, rows.Err()
}

func (r *Repository) GetDetailForUser(ctx context.Context, userID, orderID int64) (*OrderDetail, error) {
	return r.detail(ctx, `WHERE id = $1 AND user_id = $2`, orderID, userID)
}

func (r *Repository) GetDetail(ctx context.Context, orderID int64) (*OrderDetail, error) {
	return r.detail(ctx, `WHERE id = $1`, orderID)
}

func (r *Repository) detail(ctx context.Context, where string, args ...any) (*OrderDetail, error) {
	var (
		o       Order
		ship    ShippingInfo
		charge  PaymentCharge
	)

	err := r.db.QueryRow(ctx, `
SELECT `+orderColumns+`,
       shipping_recipient, shipping_phone, shipping_street, shipping_number,
       shipping_complement, shipping_neighborhood,
       shipping_city, shipping_state, shipping_postal_code, shipping_country,
       pix_transaction_id, pix_qr_code, pix_qr_image_url
FROM orders
`+where, args...).Scan(
		&o.ID, &o.UserID, &o.OrderNumber, &o.Status, &o.PaymentStatus, &o.PaymentMethod, &o.PaidAt,
		&o.SubtotalCents, &o.ItemsDiscountCents, &o.CouponDiscountCents,
		&o.TotalDiscountCents, &o.TotalCents, &o.CouponCode, &o.CreatedAt,
		&ship.RecipientName, &ship.Phone, &ship.Street, &ship.Number,
		&ship.Complement, &ship.Neighborhood,
		&ship.City, &ship.State, &ship.PostalCode, &ship.Country,
		&charge.TransactionID, &charge.QRCode, &charge.QRCodeImageURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("order detail: %w", err)
	}
	charge.Method = o.PaymentMethod

	rows, err := r.db.Query(ctx, `
SELECT id, order_id, product_id, name, image_url, quantity, unit_price_cents, line_total_cents
FROM order_items
WHERE order_id = $1
ORDER BY id ASC
`, o.ID)
	if err != nil {
		return nil, fmt.Errorf("order items: %w", err)
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.ProductID, &it.Name, &it.ImageURL,
			&it.Quantity, &it.UnitPriceCents, &it.LineTotalCents,
		); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &OrderDetail{Order: o, Items: items, Shipping: ship, Payment: charge}, nil
}

func (r *Repository) MarkPaid(ctx context.Context, orderID int64) error {
	tag, err := r.db.Exec(ctx, `
UPDATE orders
SET status = $2,
    payment_status = $3,
    paid_at = now(),
    updated_at = now()
WHERE id = $1
  AND payment_status = $4
`, orderID, StatusPaid, PaymentPaid, PaymentPending)
	if err != nil {
		return fmt.Errorf("mark paid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) Cancel(ctx context.Context, orderID int64, reason string) error {
	tag, err := r.db.Exec(ctx, `
UPDATE orders
SET status = $2,
    cancelled_reason = $3,
    cancelled_at = now(),
    updated_at = now()
WHERE id = $1
  AND status <> $2
`, orderID, StatusCancelled, reason)
	if err != nil {
		return fmt.Errorf("cancel order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
