package carts

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Engine applies cart mutations and keeps the derived totals and the
// active coupon consistent. Every mutation runs load → mutate →
// revalidate → recompute → save; on a concurrent save conflict the whole
// mutation is retried once against the fresh snapshot.
type Engine struct {
	store   Store
	catalog Catalog
	coupons CouponFinder
}

func NewEngine(store Store, catalog Catalog, coupons CouponFinder) *Engine {
	return &Engine{store: store, catalog: catalog, coupons: coupons}
}

// CouponNotice reports that a previously applied coupon was dropped while
// the mutation itself succeeded.
type CouponNotice struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// Result is the outcome of a successful engine operation. NewGuestToken is
// set only when the operation had to create a cart for an anonymous owner,
// so the client can remember it.
type Result struct {
	Cart          *Cart
	NewGuestToken string
	CouponNotice  *CouponNotice
}

// resolveOrCreate returns the owner's cart, creating an empty one when
// none exists. An anonymous owner with no (or a stale) guest token gets a
// freshly generated token.
func (e *Engine) resolveOrCreate(ctx context.Context, owner OwnerKey) (*Cart, string, error) {
	cart, err := e.store.FindByOwner(ctx, owner)
	if err != nil {
		return nil, "", err
	}
	if cart != nil {
		return cart, "", nil
	}

	if owner.UserID != nil {
		cart, err = e.store.Create(ctx, owner)
		if err != nil {
			return nil, "", err
		}
		return cart, "", nil
	}

	token := uuid.NewString()
	cart, err = e.store.Create(ctx, GuestOwner(token))
	if err != nil {
		return nil, "", err
	}
	return cart, token, nil
}

// GetCart returns the owner's cart, creating it lazily.
func (e *Engine) GetCart(ctx context.Context, owner OwnerKey) (*Result, error) {
	cart, newToken, err := e.resolveOrCreate(ctx, owner)
	if err != nil {
		return nil, err
	}
	return &Result{Cart: cart, NewGuestToken: newToken}, nil
}

// mutate runs one invariant-preserving mutation: the closure edits the
// cart, then the active coupon is revalidated, totals recomputed and the
// result saved. A version conflict on save retries the whole cycle once.
func (e *Engine) mutate(ctx context.Context, owner OwnerKey, fn func(ctx context.Context, c *Cart) error) (*Result, error) {
	const maxAttempts = 2

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		cart, newToken, err := e.resolveOrCreate(ctx, owner)
		if err != nil {
			return nil, err
		}

		if err := fn(ctx, cart); err != nil {
			return nil, err
		}

		notice, err := e.revalidateCoupon(ctx, cart)
		if err != nil {
			return nil, err
		}

		recomputeTotals(cart)

		if err := e.store.Save(ctx, cart); err != nil {
			if errors.Is(err, ErrVersionConflict) && attempt < maxAttempts {
				continue
			}
			return nil, err
		}

		return &Result{Cart: cart, NewGuestToken: newToken, CouponNotice: notice}, nil
	}

	return nil, ErrVersionConflict
}

// AddItem adds quantity units of a product to the cart. A new line
// freezes the product's current prices; an existing line keeps its frozen
// unit price and only grows its quantity.
func (e *Engine) AddItem(ctx context.Context, owner OwnerKey, productID int64, quantity int) (*Result, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be >= 1")
	}

	return e.mutate(ctx, owner, func(ctx context.Context, cart *Cart) error {
		product, err := e.catalog.GetProduct(ctx, productID)
		if err != nil {
			return err
		}

		if line := cart.findItem(productID); line != nil {
			newQuantity := line.Quantity + quantity
			if product.StockQuantity < newQuantity {
				return ErrInsufficientStock
			}
			line.Quantity = newQuantity
			line.LineTotalCents = int64(newQuantity) * line.UnitPriceCents
			return nil
		}

		if product.StockQuantity < quantity {
			return ErrInsufficientStock
		}

		unit := product.EffectiveUnitPriceCents()

		// Snapshot the promo price only while the promotion is live, so
		// the line's discount matches its frozen unit price.
		var promo *int64
		if product.PromotionActive {
			promo = product.PromoPriceCents
		}

		cart.Items = append(cart.Items, CartItem{
			ProductID:       product.ID,
			Name:            product.Name,
			ImageURL:        product.ImageURL,
			Quantity:        quantity,
			ListPriceCents:  product.PriceCents,
			PromoPriceCents: promo,
			UnitPriceCents:  unit,
			LineTotalCents:  int64(quantity) * unit,
		})
		return nil
	})
}

// UpdateItemQuantity sets the quantity of an existing line. The line's
// unit price stays frozen; only stock is checked against the catalog.
func (e *Engine) UpdateItemQuantity(ctx context.Context, owner OwnerKey, productID int64, quantity int) (*Result, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be >= 1")
	}

	return e.mutate(ctx, owner, func(ctx context.Context, cart *Cart) error {
		line := cart.findItem(productID)
		if line == nil {
			return ErrItemNotFound
		}

		product, err := e.catalog.GetProduct(ctx, productID)
		if err != nil {
			return err
		}
		if product.StockQuantity < quantity {
			return ErrInsufficientStock
		}

		line.Quantity = quantity
		line.LineTotalCents = int64(quantity) * line.UnitPriceCents
		return nil
	})
}

// RemoveItem drops the line for productID.
func (e *Engine) RemoveItem(ctx context.Context, owner OwnerKey, productID int64) (*Result, error) {
	return e.mutate(ctx, owner, func(_ context.Context, cart *Cart) error {
		kept := cart.Items[:0]
		for _, it := range cart.Items {
			if it.ProductID != productID {
				kept = append(kept, it)
			}
		}
		if len(kept) == len(cart.Items) {
			return ErrItemNotFound
		}
		cart.Items = kept
		return nil
	})
}

// ApplyCoupon validates and applies a coupon to the cart. The eligibility
// check here is inline; item mutations use revalidateCoupon instead.
func (e *Engine) ApplyCoupon(ctx context.Context, owner OwnerKey, code string) (*Result, error) {
	const maxAttempts = 2

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		cart, newToken, err := e.resolveOrCreate(ctx, owner)
		if err != nil {
			return nil, err
		}

		coupon, err := e.coupons.FindByCode(ctx, code)
		if err != nil {
			return nil, err
		}

		eligible := cart.EligibleSubtotalCents()
		if eligible < coupon.MinPurchaseCents {
			return nil, &MinPurchaseError{MinPurchaseCents: coupon.MinPurchaseCents}
		}

		cart.ActiveCouponCode = &coupon.Code
		cart.CouponInfo = &CouponInfo{Code: coupon.Code, Description: coupon.Description}
		cart.CouponDiscountCents = couponDiscountCents(coupon, eligible)

		recomputeTotals(cart)

		if err := e.store.Save(ctx, cart); err != nil {
			if errors.Is(err, ErrVersionConflict) && attempt < maxAttempts {
				continue
			}
			return nil, err
		}

		return &Result{Cart: cart, NewGuestToken: newToken}, nil
	}

	return nil, ErrVersionConflict
}

// PreviewCoupon computes the totals the cart would have with the coupon
// applied, without persisting anything. The stored cart keeps whatever
// coupon it already has.
func (e *Engine) PreviewCoupon(ctx context.Context, owner OwnerKey, code string) (*Result, error) {
	cart, err := e.store.FindByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = &Cart{Items: []CartItem{}}
	}

	coupon, err := e.coupons.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	eligible := cart.EligibleSubtotalCents()
	if eligible < coupon.MinPurchaseCents {
		return nil, &MinPurchaseError{MinPurchaseCents: coupon.MinPurchaseCents}
	}

	preview := *cart
	preview.Items = append([]CartItem(nil), cart.Items...)
	preview.ActiveCouponCode = &coupon.Code
	preview.CouponInfo = &CouponInfo{Code: coupon.Code, Description: coupon.Description}
	preview.CouponDiscountCents = couponDiscountCents(coupon, eligible)

	recomputeTotals(&preview)

	return &Result{Cart: &preview}, nil
}

// RemoveCoupon clears any active coupon. It succeeds even when no coupon
// is applied, so calling it twice is harmless.
func (e *Engine) RemoveCoupon(ctx context.Context, owner OwnerKey) (*Result, error) {
	const maxAttempts = 2

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		cart, newToken, err := e.resolveOrCreate(ctx, owner)
		if err != nil {
			return nil, err
		}

		cart.ActiveCouponCode = nil
		cart.CouponInfo = nil
		cart.CouponDiscountCents = 0

		recomputeTotals(cart)

		if err := e.store.Save(ctx, cart); err != nil {
			if errors.Is(err, ErrVersionConflict) && attempt < maxAttempts {
				continue
			}
			return nil, err
		}

		return &Result{Cart: cart, NewGuestToken: newToken}, nil
	}

	return nil, ErrVersionConflict
}

// MergeGuestCart folds a guest cart into the user's cart after login.
// On a product collision quantities are added and the USER cart's frozen
// unit price wins; otherwise the guest line is carried over verbatim.
// A missing or empty guest cart is not an error: the user's cart is
// returned unchanged (created if necessary).
//
// Stock is intentionally not revalidated here, unlike AddItem and
// UpdateItemQuantity: a merged quantity can exceed current stock until
// the next mutation touches the line.
func (e *Engine) MergeGuestCart(ctx context.Context, userID int64, guestToken string) (*Result, error) {
	guestCart, err := e.store.FindByGuestToken(ctx, guestToken)
	if err != nil {
		return nil, err
	}
	if guestCart == nil || len(guestCart.Items) == 0 {
		return e.GetCart(ctx, UserOwner(userID))
	}

	result, err := e.mutate(ctx, UserOwner(userID), func(_ context.Context, cart *Cart) error {
		for _, guestLine := range guestCart.Items {
			if line := cart.findItem(guestLine.ProductID); line != nil {
				line.Quantity += guestLine.Quantity
				line.LineTotalCents = int64(line.Quantity) * line.UnitPriceCents
				continue
			}
			cart.Items = append(cart.Items, guestLine)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := e.store.DeleteByGuestToken(ctx, guestToken); err != nil {
		return nil, fmt.Errorf("delete guest cart: %w", err)
	}

	return result, nil
}

// revalidateCoupon re-checks an applied coupon against the cart's current
// contents. A coupon that disappeared or whose minimum purchase is no
// longer met is dropped and reported as a notice, never as an error.
func (e *Engine) revalidateCoupon(ctx context.Context, cart *Cart) (*CouponNotice, error) {
	if cart.ActiveCouponCode == nil {
		return nil, nil
	}

	eligible := cart.EligibleSubtotalCents()

	coupon, err := e.coupons.FindByCode(ctx, *cart.ActiveCouponCode)
	if err != nil && !errors.Is(err, ErrCouponNotFound) {
		return nil, err
	}

	if coupon == nil || eligible < coupon.MinPurchaseCents {
		cart.ActiveCouponCode = nil
		cart.CouponInfo = nil
		cart.CouponDiscountCents = 0
		return &CouponNotice{
			Status: "REMOVED",
			Reason: "the coupon was removed because the purchase requirements are no longer met",
		}, nil
	}

	// Refreshed record: value or type may have changed since apply.
	cart.CouponDiscountCents = couponDiscountCents(coupon, eligible)
	return nil, nil
}

func couponDiscountCents(coupon *CouponRecord, eligibleCents int64) int64 {
	if coupon.Type == CouponTypeFixed {
		return min(coupon.Value, eligibleCents)
	}
	return eligibleCents * coupon.Value / 100
}

// recomputeTotals rebuilds every derived field from the items and the
// coupon discount. It is the final step of every mutation, before save.
func recomputeTotals(c *Cart) {
	var subtotal, itemsDiscount int64
	totalItems := 0

	for _, it := range c.Items {
		subtotal += it.ListPriceCents * int64(it.Quantity)
		if it.PromoPriceCents != nil {
			itemsDiscount += (it.ListPriceCents - *it.PromoPriceCents) * int64(it.Quantity)
		}
		totalItems += it.Quantity
	}

	if c.ActiveCouponCode == nil {
		c.CouponInfo = nil
		c.CouponDiscountCents = 0
	}

	c.SubtotalCents = subtotal
	c.ItemsDiscountCents = itemsDiscount
	c.TotalDiscountCents = itemsDiscount + c.CouponDiscountCents
	c.TotalCents = subtotal - c.TotalDiscountCents
	c.TotalItems = totalItems
}
