package coupons

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("coupon not found")
	ErrDuplicateCode = errors.New("a coupon with that code already exists")
)

const (
	TypeFixed   = "fixed"
	TypePercent = "percent"
)

// Coupon value is cents for fixed coupons and a whole percentage for
// percent coupons, mirroring the single value field the storefront shows.
type Coupon struct {
	ID               int64     `json:"id"`
	Code             string    `json:"code"`
	Description      string    `json:"description"`
	Type             string    `json:"type"`
	Value            int64     `json:"value"`
	MinPurchaseCents int64     `json:"min_purchase_cents"`
	IsActive         bool      `json:"is_active"`
	ExpiresAt        time.Time `json:"expires_at"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type Store interface {
	// FindByCode only returns coupons that are active and unexpired;
	// everything else is ErrNotFound.
	FindByCode(ctx context.Context, code string) (*Coupon, error)

	// Admin
	List(ctx context.Context, isActive *bool, limit, offset int) ([]Coupon, int, error)
	GetByID(ctx context.Context, id int64) (*Coupon, error)
	Create(ctx context.Context, c *Coupon) error
	Update(ctx context.Context, id int64, updates map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
}
