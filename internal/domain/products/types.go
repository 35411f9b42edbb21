package products

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("product not found")
	ErrDuplicateSlug = errors.New("a product with that slug already exists")
	ErrOutOfStock    = errors.New("insufficient stock")
)

type Product struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Slug              string    `json:"slug"`
	Description       *string   `json:"description,omitempty"`
	PriceCents        int64     `json:"price_cents"`
	PromoPriceCents   *int64    `json:"promo_price_cents,omitempty"`
	IsPromotionActive bool      `json:"is_promotion_active"`
	StockQuantity     int       `json:"stock_quantity"`
	MainImageURL      *string   `json:"main_image_url,omitempty"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ListFilters narrows the catalog listing. IncludeInactive is for the
// admin view only.
type ListFilters struct {
	Search          string
	PromotionOnly   bool
	IncludeInactive bool
}

type Store interface {
	// Public catalog (active products only)
	GetPublicByID(ctx context.Context, id int64) (*Product, error)
	List(ctx context.Context, f ListFilters, limit, offset int) ([]Product, int, error)

	// Checkout
	DecrementStock(ctx context.Context, productID int64, quantity int) error

	// Admin
	GetByID(ctx context.Context, id int64) (*Product, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, id int64, updates map[string]interface{}) error
	SetMainImage(ctx context.Context, id int64, url string) error
	Delete(ctx context.Context, id int64) error
}
