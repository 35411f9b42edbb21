package carts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/refdudu/api-calvao-de-cria/internal/infra/dbx"

	"github.com/jackc/pgx/v5"
)

// Repository persists one cart row per owner key. Items live in a JSONB
// column; the summary columns mirror the derived totals so admin queries
// don't need to unpack the document. Save is a compare-and-swap on the
// version column.
type Repository struct {
	db dbx.Querier
}

func NewRepository(q dbx.Querier) *Repository {
	return &Repository{db: q}
}

const cartColumns = `
id, user_id, guest_token, items,
subtotal_cents, items_discount_cents, coupon_discount_cents,
total_discount_cents, total_cents, total_items,
active_coupon_code, coupon_code, coupon_description,
version, created_at, updated_at`

func (r *Repository) FindByOwner(ctx context.Context, owner OwnerKey) (*Cart, error) {
	if owner.UserID != nil {
		return r.findOne(ctx, `SELECT `+cartColumns+` FROM carts WHERE user_id = $1`, *owner.UserID)
	}
	if owner.GuestToken == "" {
		return nil, nil
	}
	return r.FindByGuestToken(ctx, owner.GuestToken)
}

func (r *Repository) FindByGuestToken(ctx context.Context, token string) (*Cart, error) {
	return r.findOne(ctx, `SELECT `+cartColumns+` FROM carts WHERE guest_token = $1`, token)
}

func (r *Repository) findOne(ctx context.Context, query string, arg any) (*Cart, error) {
	var (
		c          Cart
		rawItems   []byte
		couponCode *string
		couponDesc *string
	)

	err := r.db.QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.UserID, &c.GuestToken, &rawItems,
		&c.SubtotalCents, &c.ItemsDiscountCents, &c.CouponDiscountCents,
		&c.TotalDiscountCents, &c.TotalCents, &c.TotalItems,
		&c.ActiveCouponCode, &couponCode, &couponDesc,
		&c.Version, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find cart: %w", err)
	}

	if err := json.Unmarshal(rawItems, &c.Items); err != nil {
		return nil, fmt.Errorf("decode cart items: %w", err)
	}
	if couponCode != nil {
		c.CouponInfo = &CouponInfo{Code: *couponCode, Description: derefOr(couponDesc, "")}
	}

	return &c, nil
}

func (r *Repository) Create(ctx context.Context, owner OwnerKey) (*Cart, error) {
	c := &Cart{Items: []CartItem{}, Version: 1}

	var guestToken *string
	if owner.UserID == nil {
		if owner.GuestToken == "" {
			return nil, fmt.Errorf("create cart: owner key is empty")
		}
		guestToken = &owner.GuestToken
	}

	err := r.db.QueryRow(ctx, `
INSERT INTO carts (user_id, guest_token, items, version)
VALUES ($1, $2, '[]'::jsonb, 1)
RETURNING id, created_at, updated_at
`, owner.UserID, guestToken).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create cart: %w", err)
	}

	c.UserID = owner.UserID
	c.GuestToken = guestToken
	return c, nil
}

// Save writes the full cart snapshot. The WHERE clause on version turns a
// lost race into ErrVersionConflict instead of a silent last-write-wins.
func (r *Repository) Save(ctx context.Context, cart *Cart) error {
	rawItems, err := json.Marshal(cart.Items)
	if err != nil {
		return fmt.Errorf("encode cart items: %w", err)
	}

	var couponCode, couponDesc *string
	if cart.CouponInfo != nil {
		couponCode = &cart.CouponInfo.Code
		couponDesc = &cart.CouponInfo.Description
	}

	err = r.db.QueryRow(ctx, `
UPDATE carts
SET items = $2,
    subtotal_cents = $3,
    items_discount_cents = $4,
    coupon_discount_cents = $5,
    total_discount_cents = $6,
    total_cents = $7,
    total_items = $8,
    active_coupon_code = $9,
    coupon_code = $10,
    coupon_description = $11,
    version = version + 1,
    updated_at = now()
WHERE id = $1
  AND version = $12
RETURNING version, updated_at
`,
		cart.ID, rawItems,
		cart.SubtotalCents, cart.ItemsDiscountCents, cart.CouponDiscountCents,
		cart.TotalDiscountCents, cart.TotalCents, cart.TotalItems,
		cart.ActiveCouponCode, couponCode, couponDesc,
		cart.Version,
	).Scan(&cart.Version, &cart.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrVersionConflict
		}
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (r *Repository) DeleteByGuestToken(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM carts WHERE guest_token = $1`, token)
	if err != nil {
		return fmt.Errorf("delete guest cart: %w", err)
	}
	return nil
}

// Clear empties a user's cart after a successful checkout.
func (r *Repository) Clear(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `
UPDATE carts
SET items = '[]'::jsonb,
    subtotal_cents = 0,
    items_discount_cents = 0,
    coupon_discount_cents = 0,
    total_discount_cents = 0,
    total_cents = 0,
    total_items = 0,
    active_coupon_code = NULL,
    coupon_code = NULL,
    coupon_description = NULL,
    version = version + 1,
    updated_at = now()
WHERE user_id = $1
`, userID)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func derefOr(s *string, fallback string) string {
	if s != nil {
		return *s
	}
	return fallback
}
