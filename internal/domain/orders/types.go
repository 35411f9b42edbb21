package orders

import (
	"context"
	"errors"
	"time"

	"github.com/refdudu/api-calvao-de-cria/internal/domain/addresses"
	"github.com/refdudu/api-calvao-de-cria/internal/domain/carts"
)

var (
	ErrNotFound  = errors.New("order not found")
	ErrEmptyCart = errors.New("cart is empty")
)

const (
	StatusAwaitingPayment = "awaiting_payment"
	StatusPaid            = "paid"
	StatusCancelled       = "cancelled"

	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

type Order struct {
	ID                  int64      `json:"id"`
	UserID              int64      `json:"user_id"`
	OrderNumber         string     `json:"order_number"`
	Status              string     `json:"status"`
	PaymentStatus       string     `json:"payment_status"`
	PaymentMethod       string     `json:"payment_method"`
	PaidAt              *time.Time `json:"paid_at,omitempty"`
	SubtotalCents       int64      `json:"subtotal_cents"`
	ItemsDiscountCents  int64      `json:"items_discount_cents"`
	CouponDiscountCents int64      `json:"coupon_discount_cents"`
	TotalDiscountCents  int64      `json:"total_discount_cents"`
	TotalCents          int64      `json:"total_cents"`
	CouponCode          *string    `json:"coupon_code,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

// ShippingInfo is snapshotted onto the order at checkout time, so later
// edits to the address book never touch placed orders.
type ShippingInfo struct {
	RecipientName string  `json:"recipient_name"`
	Phone         string  `json:"phone"`
	Street        string  `json:"street"`
	Number        string  `json:"number"`
	Complement    *string `json:"complement,omitempty"`
	Neighborhood  string  `json:"neighborhood"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	PostalCode    string  `json:"postal_code"`
	Country       *string `json:"country,omitempty"`
}

// ShippingFromAddress copies a saved address into the order's shipping
// snapshot.
func ShippingFromAddress(a *addresses.Address) ShippingInfo {
	return ShippingInfo{
		RecipientName: a.RecipientName,
		Phone:         a.Phone,
		Street:        a.Street,
		Number:        a.Number,
		Complement:    a.Complement,
		Neighborhood:  a.Neighborhood,
		City:          a.City,
		State:         a.State,
		PostalCode:    a.CEP,
	}
}

// PaymentCharge holds the gateway artifacts stored with the order (for
// PIX: the BR Code payload and the QR image data URL).
type PaymentCharge struct {
	Method         string  `json:"method"`
	TransactionID  string  `json:"transaction_id"`
	QRCode         string  `json:"qr_code"`
	QRCodeImageURL *string `json:"qr_code_image_url,omitempty"`
}

// OrderItem is an immutable copy of a cart line at checkout.
type OrderItem struct {
	ID             int64   `json:"id"`
	OrderID        int64   `json:"order_id"`
	ProductID      int64   `json:"product_id"`
	Name           string  `json:"name"`
	ImageURL       *string `json:"image_url,omitempty"`
	Quantity       int     `json:"quantity"`
	UnitPriceCents int64   `json:"unit_price_cents"`
	LineTotalCents int64   `json:"line_total_cents"`
}

type OrderDetail struct {
	Order    Order         `json:"order"`
	Items    []OrderItem   `json:"items"`
	Shipping ShippingInfo  `json:"shipping"`
	Payment  PaymentCharge `json:"payment"`
}

type Store interface {
	// Checkout (run inside a sales transaction)
	NextOrderNumber(ctx context.Context, day time.Time) (string, error)
	CreateFromCart(ctx context.Context, userID int64, orderNumber string, cart *carts.Cart, ship ShippingInfo, charge PaymentCharge) (*Order, error)

	// User-facing
	ListByUser(ctx context.Context, userID int64, status string, limit, offset int) ([]Order, int, error)
	GetDetailForUser(ctx context.Context, userID, orderID int64) (*OrderDetail, error)

	// Payment callbacks
	GetByNumber(ctx context.Context, orderNumber string) (*Order, error)

	// Admin
	ListAll(ctx context.Context, status string, limit, offset int) ([]Order, int, error)
	GetDetail(ctx context.Context, orderID int64) (*OrderDetail, error)
	MarkPaid(ctx context.Context, orderID int64) error
	Cancel(ctx context.Context, orderID int64, reason string) error
}
