package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/refdudu/api-calvao-de-cria/internal/domain/addresses"
	"github.com/refdudu/api-calvao-de-cria/internal/domain/carts"
	"github.com/refdudu/api-calvao-de-cria/internal/domain/coupons"
	"github.com/refdudu/api-calvao-de-cria/internal/domain/orders"
	"github.com/refdudu/api-calvao-de-cria/internal/domain/products"
	"github.com/refdudu/api-calvao-de-cria/internal/domain/users"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Sales struct {
	Carts  carts.Store
	Orders orders.Store
}

type Container struct {
	pool      *pgxpool.Pool // IMPORTANT: set the pool so WithSalesTx works
	Users     users.Store
	Products  products.Store
	Coupons   coupons.Store
	Addresses addresses.Store
	Sales     Sales
}

func NewContainer(db *pgxpool.Pool) *Container {
	return &Container{
		pool:      db,
		Users:     users.NewRepository(db),
		Products:  products.NewRepository(db),
		Coupons:   coupons.NewRepository(db),
		Addresses: addresses.NewRepository(db),
		Sales: Sales{
			Carts:  carts.NewRepository(db),
			Orders: orders.NewRepository(db),
		},
	}
}

// Catalog returns the product catalog view the cart engine prices against.
func (c *Container) Catalog() carts.Catalog {
	return &catalogAdapter{products: c.Products}
}

// CouponFinder returns the coupon lookup the cart engine validates against.
func (c *Container) CouponFinder() carts.CouponFinder {
	return &couponAdapter{coupons: c.Coupons}
}

// SalesTx is a temporary, tx-scoped set of repos for atomic units of work.
type SalesTx struct {
	Carts    carts.Store
	Orders   orders.Store
	Products products.Store
}

// WithSalesTx runs a sales unit-of-work atomically.
func (c *Container) WithSalesTx(ctx context.Context, fn func(s *SalesTx) error) error {
	if c.pool == nil {
		return fmt.Errorf("storage container pool is nil (did you forget to set pool in NewContainer?)")
	}

	tx, err := c.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback(ctx) // safe even if already committed
	}()

	s := &SalesTx{
		Carts:    carts.NewRepository(tx),
		Orders:   orders.NewRepository(tx),
		Products: products.NewRepository(tx),
	}

	if err := fn(s); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

type catalogAdapter struct {
	products products.Store
}

func (a *catalogAdapter) GetProduct(ctx context.Context, productID int64) (*carts.CatalogProduct, error) {
	p, err := a.products.GetPublicByID(ctx, productID)
	if err != nil {
		if errors.Is(err, products.ErrNotFound) {
			return nil, carts.ErrProductNotFound
		}
		return nil, err
	}
	return &carts.CatalogProduct{
		ID:              p.ID,
		Name:            p.Name,
		ImageURL:        p.MainImageURL,
		PriceCents:      p.PriceCents,
		PromoPriceCents: p.PromoPriceCents,
		PromotionActive: p.IsPromotionActive,
		StockQuantity:   p.StockQuantity,
	}, nil
}

type couponAdapter struct {
	coupons coupons.Store
}

func (a *couponAdapter) FindByCode(ctx context.Context, code string) (*carts.CouponRecord, error) {
	cp, err := a.coupons.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, coupons.ErrNotFound) {
			return nil, carts.ErrCouponNotFound
		}
		return nil, err
	}
	return &carts.CouponRecord{
		Code:             cp.Code,
		Description:      cp.Description,
		Type:             cp.Type,
		Value:            cp.Value,
		MinPurchaseCents: cp.MinPurchaseCents,
	}, nil
}
