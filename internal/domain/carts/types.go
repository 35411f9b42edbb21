package carts

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrItemNotFound      = errors.New("product not found in cart")
	ErrCouponNotFound    = errors.New("coupon invalid or expired")
	ErrInsufficientStock = errors.New("requested quantity exceeds available stock")
	ErrVersionConflict   = errors.New("cart was modified concurrently")
)

// MinPurchaseError is returned by ApplyCoupon when the cart's eligible
// subtotal is below the coupon's minimum purchase value.
type MinPurchaseError struct {
	MinPurchaseCents int64
}

func (e *MinPurchaseError) Error() string {
	return fmt.Sprintf("the minimum purchase value for this coupon is R$ %.2f", float64(e.MinPurchaseCents)/100)
}

// OwnerKey identifies the owner of a cart: a registered user or a guest
// token, never both.
type OwnerKey struct {
	UserID     *int64
	GuestToken string
}

func UserOwner(userID int64) OwnerKey  { return OwnerKey{UserID: &userID} }
func GuestOwner(token string) OwnerKey { return OwnerKey{GuestToken: token} }

// CartItem is one line of a cart. Prices are snapshotted when the line is
// first added and never re-synced from the catalog afterward.
type CartItem struct {
	ProductID       int64   `json:"product_id"`
	Name            string  `json:"name"`
	ImageURL        *string `json:"image_url,omitempty"`
	Quantity        int     `json:"quantity"`
	ListPriceCents  int64   `json:"list_price_cents"`
	PromoPriceCents *int64  `json:"promo_price_cents,omitempty"`
	UnitPriceCents  int64   `json:"unit_price_cents"`
	LineTotalCents  int64   `json:"line_total_cents"`
}

type CouponInfo struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type Cart struct {
	ID                  int64       `json:"id"`
	UserID              *int64      `json:"user_id,omitempty"`
	GuestToken          *string     `json:"guest_token,omitempty"`
	Items               []CartItem  `json:"items"`
	SubtotalCents       int64       `json:"subtotal_cents"`
	ItemsDiscountCents  int64       `json:"items_discount_cents"`
	CouponDiscountCents int64       `json:"coupon_discount_cents"`
	TotalDiscountCents  int64       `json:"total_discount_cents"`
	TotalCents          int64       `json:"total_cents"`
	TotalItems          int         `json:"total_items"`
	ActiveCouponCode    *string     `json:"active_coupon_code,omitempty"`
	CouponInfo          *CouponInfo `json:"coupon_info,omitempty"`
	Version             int64       `json:"-"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

// EligibleSubtotalCents is the post-promotion, pre-coupon sum of line
// totals, the amount a coupon's minimum purchase is tested against.
func (c *Cart) EligibleSubtotalCents() int64 {
	var sum int64
	for _, it := range c.Items {
		sum += it.LineTotalCents
	}
	return sum
}

func (c *Cart) findItem(productID int64) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// CatalogProduct is the engine's read-only view of a catalog product.
type CatalogProduct struct {
	ID              int64
	Name            string
	ImageURL        *string
	PriceCents      int64
	PromoPriceCents *int64
	PromotionActive bool
	StockQuantity   int
}

// EffectiveUnitPriceCents is the price a new cart line is frozen at.
func (p *CatalogProduct) EffectiveUnitPriceCents() int64 {
	if p.PromotionActive && p.PromoPriceCents != nil {
		return *p.PromoPriceCents
	}
	return p.PriceCents
}

const (
	CouponTypeFixed   = "fixed"
	CouponTypePercent = "percent"
)

// CouponRecord is the engine's view of a coupon. Value is cents for fixed
// coupons and a whole percentage for percent coupons.
type CouponRecord struct {
	Code             string
	Description      string
	Type             string
	Value            int64
	MinPurchaseCents int64
}

// Catalog resolves products for add/update validation.
type Catalog interface {
	GetProduct(ctx context.Context, productID int64) (*CatalogProduct, error)
}

// CouponFinder resolves coupon codes; inactive or expired coupons must
// surface as ErrCouponNotFound.
type CouponFinder interface {
	FindByCode(ctx context.Context, code string) (*CouponRecord, error)
}

// Store is the durable cart store. Save must fail with ErrVersionConflict
// when the persisted version no longer matches the snapshot's.
type Store interface {
	FindByOwner(ctx context.Context, owner OwnerKey) (*Cart, error)
	FindByGuestToken(ctx context.Context, token string) (*Cart, error)
	Create(ctx context.Context, owner OwnerKey) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
	DeleteByGuestToken(ctx context.Context, token string) error
	Clear(ctx context.Context, userID int64) error
}
