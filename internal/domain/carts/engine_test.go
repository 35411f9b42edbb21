package carts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	carts  map[int64]*Cart
	nextID int64

	// forceConflicts makes the next N Save calls fail with
	// ErrVersionConflict, regardless of versions.
	forceConflicts int
	saveCalls      int
}

func newMemStore() *memStore {
	return &memStore{carts: map[int64]*Cart{}, nextID: 1}
}

func copyCart(c *Cart) *Cart {
	cp := *c
	cp.Items = append([]CartItem(nil), c.Items...)
	if c.ActiveCouponCode != nil {
		code := *c.ActiveCouponCode
		cp.ActiveCouponCode = &code
	}
	if c.CouponInfo != nil {
		info := *c.CouponInfo
		cp.CouponInfo = &info
	}
	return &cp
}

func (s *memStore) FindByOwner(_ context.Context, owner OwnerKey) (*Cart, error) {
	for _, c := range s.carts {
		if owner.UserID != nil && c.UserID != nil && *c.UserID == *owner.UserID {
			return copyCart(c), nil
		}
		if owner.UserID == nil && owner.GuestToken != "" && c.GuestToken != nil && *c.GuestToken == owner.GuestToken {
			return copyCart(c), nil
		}
	}
	return nil, nil
}

func (s *memStore) FindByGuestToken(_ context.Context, token string) (*Cart, error) {
	for _, c := range s.carts {
		if c.GuestToken != nil && *c.GuestToken == token {
			return copyCart(c), nil
		}
	}
	return nil, nil
}

func (s *memStore) Create(_ context.Context, owner OwnerKey) (*Cart, error) {
	c := &Cart{ID: s.nextID, Version: 1}
	s.nextID++
	if owner.UserID != nil {
		id := *owner.UserID
		c.UserID = &id
	} else {
		token := owner.GuestToken
		c.GuestToken = &token
	}
	s.carts[c.ID] = c
	return copyCart(c), nil
}

func (s *memStore) Save(_ context.Context, cart *Cart) error {
	s.saveCalls++
	if s.forceConflicts > 0 {
		s.forceConflicts--
		return ErrVersionConflict
	}

	current, ok := s.carts[cart.ID]
	if !ok || current.Version != cart.Version {
		return ErrVersionConflict
	}
	cart.Version++
	s.carts[cart.ID] = copyCart(cart)
	return nil
}

func (s *memStore) DeleteByGuestToken(_ context.Context, token string) error {
	for id, c := range s.carts {
		if c.GuestToken != nil && *c.GuestToken == token {
			delete(s.carts, id)
		}
	}
	return nil
}

func (s *memStore) Clear(_ context.Context, userID int64) error {
	for _, c := range s.carts {
		if c.UserID != nil && *c.UserID == userID {
			c.Items = nil
			c.ActiveCouponCode = nil
			c.CouponInfo = nil
			recomputeTotals(c)
			c.Version++
		}
	}
	return nil
}

type memCatalog struct {
	products map[int64]*CatalogProduct
}

func (c *memCatalog) GetProduct(_ context.Context, productID int64) (*CatalogProduct, error) {
	p, ok := c.products[productID]
	if !ok {
		return nil, ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

type memCoupons struct {
	coupons map[string]*CouponRecord
}

func (c *memCoupons) FindByCode(_ context.Context, code string) (*CouponRecord, error) {
	cp, ok := c.coupons[code]
	if !ok {
		return nil, ErrCouponNotFound
	}
	out := *cp
	return &out, nil
}

func cents(v int64) *int64 { return &v }

func newTestEngine() (*Engine, *memStore, *memCatalog, *memCoupons) {
	store := newMemStore()
	catalog := &memCatalog{products: map[int64]*CatalogProduct{
		1: {ID: 1, Name: "Camiseta", PriceCents: 100_00, PromoPriceCents: cents(90_00), PromotionActive: true, StockQuantity: 10},
		2: {ID: 2, Name: "Boné", PriceCents: 60_00, StockQuantity: 5},
		3: {ID: 3, Name: "Caneca", PriceCents: 30_00, StockQuantity: 2},
	}}
	coupons := &memCoupons{coupons: map[string]*CouponRecord{
		"SAVE10": {Code: "SAVE10", Description: "10% off", Type: CouponTypePercent, Value: 10, MinPurchaseCents: 150_00},
		"FLAT20": {Code: "FLAT20", Description: "R$20 off", Type: CouponTypeFixed, Value: 20_00},
	}}
	return NewEngine(store, catalog, coupons), store, catalog, coupons
}

func TestAddItemFreezesPromoPrice(t *testing.T) {
	engine, _, _, _ := newTestEngine()
	owner := UserOwner(7)

	res, err := engine.AddItem(context.Background(), owner, 1, 2)
	require.NoError(t, err)

	cart := res.Cart
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(90_00), cart.Items[0].UnitPriceCents)
	assert.Equal(t, int64(180_00), cart.Items[0].LineTotalCents)

	assert.Equal(t, int64(200_00), cart.SubtotalCents)
	assert.Equal(t, int64(20_00), cart.ItemsDiscountCents)
	assert.Equal(t, int64(20_00), cart.TotalDiscountCents)
	assert.Equal(t, int64(180_00), cart.TotalCents)
	assert.Equal(t, 2, cart.TotalItems)
}

func TestAddItemKeepsFrozenPriceAfterCatalogChange(t *testing.T) {
	engine, _, catalog, _ := newTestEngine()
	owner := UserOwner(7)

	_, err := engine.AddItem(context.Background(), owner, 2, 1)
	require.NoError(t, err)

	// the catalog price changes after the line was created
	catalog.products[2].PriceCents = 80_00

	res, err := engine.AddItem(context.Background(), owner, 2, 2)
	require.NoError(t, err)

	require.Len(t, res.Cart.Items, 1)
	assert.Equal(t, 3, res.Cart.Items[0].Quantity)
	assert.Equal(t, int64(60_00), res.Cart.Items[0].UnitPriceCents)
	assert.Equal(t, int64(180_00), res.Cart.Items[0].LineTotalCents)
}

func TestAddItemInsufficientStock(t *testing.T) {
	engine, _, _, _ := newTestEngine()
	owner := UserOwner(7)

	_, err := engine.AddItem(context.Background(), owner, 3, 2)
	require.NoError(t, err)

	// 2 already in the cart, stock is 2: adding one more must fail
	_, err = engine.AddItem(context.Background(), owner, 3, 1)
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestAddItemUnknownProduct(t *testing.T) {
	engine, _, _, _ := newTestEngine()

	_, err := engine.AddItem(context.Background(), UserOwner(7), 99, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestUpdateItemQuantityChecksCartBeforeCatalog(t *testing.T) {
	engine, _, _, _ := newTestEngine()
	owner := UserOwner(7)

	// product 99 does not exist anywhere: the cart lookup must win
	_, err := engine.UpdateItemQuantity(context.Background(), owner, 99, 1)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestUpdateItemQuantityStockAndFrozenPrice(t *testing.T) {
	engine, _, catalog, _ := newTestEngine()
	owner := UserOwner(7)

	_, err := engine.AddItem(context.Background(), owner, 2, 1)
	require.NoError(t, err)

	_, err = engine.UpdateItemQuantity(context.Background(), owner, 2, 6)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	catalog.products[2].PriceCents = 99_00

	res, err := engine.UpdateItemQuantity(context.Background(), owner, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(60_00), res.Cart.Items[0].UnitPriceCents)
	assert.Equal(t, int64(240_00), res.Cart.Items[0].LineTotalCents)
}

func TestUpdateItemQuantityProductGone(t *testing.T) {
	engine, _, catalog, _ := newTestEngine()
	owner := UserOwner(7)

	_, err := engine.AddItem(context.Background(), owner, 2, 1)
	require.NoError(t, err)

	// the product is deleted from the catalog while it sits in the cart
	delete(catalog.products, 2)

	_, err = engine.UpdateItemQuantity(context.Background(), owner, 2, 3)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestApplyCouponPercent(t *testing.T) {
	engine, _, _, _ := newTestEngine()
	owner := UserOwner(7)

	_, err := engine.AddItem(context.Background(), owner, 1, 2) // eligible 180_00
	require.NoError(t, err)

	res, err := engine.ApplyCoupon(context.Background(), owner, "SAVE10")
	require.NoError(t, err)

	cart := res.Cart
	assert.Equal(t, int64(18_00), cart.CouponDiscountCents)
	assert.Equal(t, int64(38_00), cart.TotalDiscountCents)
	assert.Equal(t, int64(162_00), cart.TotalCents)
	require.NotNil(t, cart.CouponInfo)
	assert.Equal(t, "SAVE10", cart.CouponInfo.Code)
}

func TestPreviewCouponDoesNotPersist(t *testing.T) {
	engine, store, _, _ := newTestEngine()
	owner := UserOwner(7)

	_, err := engine.AddItem(context.Background(), owner, 1, 2) // eligible 180_00
	require.NoError(t, err)
	savesBefore := store.saveCalls

	res, err := engine.PreviewCoupon(context.Background(), owner, "SAVE10")
	require.NoError(t, err)

	assert.Equal(t, int64(18_00), res.Cart.CouponDiscountCents)
	assert.Equal(t, int64(162_00), res.Cart.TotalCents)
	assert.Equal(t, savesBefore, store.saveCalls)

	stored, err := store.FindByOwner(context.Background(), owner)
	require.NoError(t, err)
	assert.Nil(t, stored.ActiveCouponCode)
	assert.Zero(t, stored.CouponDiscountCents)
}

func TestApplyCouponFixedCappedAtEligible(t *testing.T) {
	engine, _, _, coupons := newTestEngine()
	owner := UserOwner(7)

	coupons.coupons["FLAT20"].Value = 500_00

	_, err := engine.AddItem(context.Background(), owner, 2, 1) // eligible 60_00
	require.NoError(t, err)

	res, err := engine.ApplyCoupon(context.Background(), owner, "FLAT20")
	require.NoError(t, err)

	assert.Equal(t, int64(60_00), res.Cart.CouponDiscountCents)
	assert.Equal(t, int64(0), res.Cart.TotalCents)
}

func TestApplyCouponMinPurchaseBoundary(t *testing.T) {
	engine, _, _, coupons := newTestEngine()
	owner := UserOwner(7)

	_, err := engine.AddItem(context.Background(), owner, 1, 2) // eligible 180_00
	require.NoError(t, err)

	// exactly at the minimum is eligible
	coupons.coupons["SAVE10"].MinPurchaseCents = 180_00
	_, err = engine.ApplyCoupon(context.Background(), owner, "SAVE10")
	require.NoError(t, err)

	// one cent above the eligible subtotal is not
	coupons.coupons["SAVE10"].MinPurchaseCents = 180_01
	_, err = engine.ApplyCoupon(context.Background(), owner, "SAVE10")

	var minErr *MinPurchaseError
	require.ErrorAs(t, err, &minErr)
	assert.Equal(t, int64(180_01), minErr.MinPurchaseCents)
	assert.Contains(t, minErr.Error(), "R$ 180.01")
}

func TestApplyCouponUnknownCode(t *testing.T) {
	engine, _, _, _ := newTestEngine()
	owner := UserOwner(7)

	_, err := engine.AddItem(context.Background(), owner, 1, 1)
	require.NoError(t, err)

	_, err = engine.ApplyCoupon(context.Background(), owner, "NOPE")
	assert.ErrorIs(t, err, ErrCouponNotFound)
}

func TestRemoveItemDropsCouponWithNotice(t *testing.T) {
	engine, _, _, _ := newTestEngine()
	owner := UserOwner(7)

	_, err := engine.AddItem(context.Background(), owner, 1, 2) // eligible 180_00
	require.NoError(t, err)
	_, err = engine.AddItem(context.Background(), owner, 2, 1) // eligible 240_00
	require.NoError(t, err)

	_, err = engine.ApplyCoupon(context.Background(), owner, "SAVE10") // min 150_00
	require.NoError(t, err)

	// dropping the shirts leaves 60_00 eligible, below the minimum
	res, err := engine.RemoveItem(context.Background(), owner, 1)
	require.NoError(t, err)

	require.NotNil(t, res.CouponNotice)
	assert.Equal(t, "REMOVED", res.CouponNotice.Status)

	cart := res.Cart
	assert.Nil(t, cart.ActiveCouponCode)
	assert.Nil(t, cart.CouponInfo)
	assert.Equal(t, int64(0), cart.CouponDiscountCents)
	assert.Equal(t, int64(60_00), cart.TotalCents)
}

func TestItemMutationRefreshesCouponDiscount(t *testing.T) {
	engine, _, _, coupons := newTestEngine()
	owner := UserOwner(7)

	_, err := engine.AddItem(context.Background(), owner, 1, 2)
	require.NoError(t, err)
	_, err = engine.ApplyCoupon(context.Background(), owner, "SAVE10")
	require.NoError(t, err)

	// the admin bumps the coupon to 20% between requests
	coupons.coupons["SAVE10"].Value = 20

	res, err := engine.AddItem(context.Background(), owner, 2, 1) // eligible 240_00
	require.NoError(t, err)

	assert.Nil(t, res.CouponNotice)
	assert.Equal(t, int64(48_00), res.Cart.CouponDiscountCents)
}

func TestCouponDeletedWhileApplied(t *testing.T) {
	engine, _, _, coupons := newTestEngine()
	owner := UserOwner(7)

	_, err := engine.AddItem(context.Background(), owner, 1, 2)
	require.NoError(t, err)
	_, err = engine.ApplyCoupon(context.Background(), owner, "SAVE10")
	require.NoError(t, err)

	delete(coupons.coupons, "SAVE10")

	res, err := engine.AddItem(context.Background(), owner, 2, 1)
	require.NoError(t, err)

	require.NotNil(t, res.CouponNotice)
	assert.Equal(t, "REMOVED", res.CouponNotice.Status)
	assert.Nil(t, res.Cart.ActiveCouponCode)
}

func TestRemoveCouponIsIdempotent(t *testing.T) {
	engine, _, _, _ := newTestEngine()
	owner := UserOwner(7)

	_, err := engine.AddItem(context.Background(), owner, 1, 2)
	require.NoError(t, err)
	_, err = engine.ApplyCoupon(context.Background(), owner, "SAVE10")
	require.NoError(t, err)

	res, err := engine.RemoveCoupon(context.Background(), owner)
	require.NoError(t, err)
	assert.Nil(t, res.Cart.ActiveCouponCode)
	assert.Equal(t, int64(180_00), res.Cart.TotalCents)

	// removing again is not an error
	res, err = engine.RemoveCoupon(context.Background(), owner)
	require.NoError(t, err)
	assert.Nil(t, res.Cart.ActiveCouponCode)
}

func TestGetCartCreatesGuestToken(t *testing.T) {
	engine, _, _, _ := newTestEngine()

	res, err := engine.GetCart(context.Background(), GuestOwner(""))
	require.NoError(t, err)
	assert.NotEmpty(t, res.NewGuestToken)
	assert.Empty(t, res.Cart.Items)

	// the token now resolves to the same cart
	again, err := engine.GetCart(context.Background(), GuestOwner(res.NewGuestToken))
	require.NoError(t, err)
	assert.Empty(t, again.NewGuestToken)
	assert.Equal(t, res.Cart.ID, again.Cart.ID)
}

func TestMergeGuestCartUserPriceWins(t *testing.T) {
	engine, store, catalog, _ := newTestEngine()

	// the user added the cap at 60_00
	_, err := engine.AddItem(context.Background(), UserOwner(7), 2, 1)
	require.NoError(t, err)

	// price drops, then a guest adds the same cap plus a mug
	catalog.products[2].PriceCents = 50_00

	guest, err := engine.AddItem(context.Background(), GuestOwner(""), 2, 1)
	require.NoError(t, err)
	token := guest.NewGuestToken
	require.NotEmpty(t, token)
	_, err = engine.AddItem(context.Background(), GuestOwner(token), 3, 1)
	require.NoError(t, err)

	res, err := engine.MergeGuestCart(context.Background(), 7, token)
	require.NoError(t, err)

	cart := res.Cart
	require.Len(t, cart.Items, 2)

	capLine := cart.findItem(2)
	require.NotNil(t, capLine)
	assert.Equal(t, 2, capLine.Quantity)
	assert.Equal(t, int64(60_00), capLine.UnitPriceCents) // user's frozen price, not the guest's
	assert.Equal(t, int64(120_00), capLine.LineTotalCents)

	mug := cart.findItem(3)
	require.NotNil(t, mug)
	assert.Equal(t, int64(30_00), mug.UnitPriceCents)

	// the guest cart is gone
	gone, err := store.FindByGuestToken(context.Background(), token)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestMergeGuestCartMissingGuest(t *testing.T) {
	engine, _, _, _ := newTestEngine()

	_, err := engine.AddItem(context.Background(), UserOwner(7), 2, 1)
	require.NoError(t, err)

	res, err := engine.MergeGuestCart(context.Background(), 7, "no-such-token")
	require.NoError(t, err)
	require.Len(t, res.Cart.Items, 1)
	assert.Equal(t, int64(60_00), res.Cart.TotalCents)
}

func TestMergeGuestCartSkipsStockCheck(t *testing.T) {
	engine, _, _, _ := newTestEngine()

	// mug stock is 2; user and guest each hold 2
	_, err := engine.AddItem(context.Background(), UserOwner(7), 3, 2)
	require.NoError(t, err)

	guest, err := engine.AddItem(context.Background(), GuestOwner(""), 3, 2)
	require.NoError(t, err)

	res, err := engine.MergeGuestCart(context.Background(), 7, guest.NewGuestToken)
	require.NoError(t, err)

	mug := res.Cart.findItem(3)
	require.NotNil(t, mug)
	assert.Equal(t, 4, mug.Quantity) // exceeds stock, adjusted on the next mutation
}

func TestMutationRetriesOnceOnVersionConflict(t *testing.T) {
	engine, store, _, _ := newTestEngine()
	owner := UserOwner(7)

	_, err := engine.AddItem(context.Background(), owner, 2, 1)
	require.NoError(t, err)

	store.forceConflicts = 1
	res, err := engine.AddItem(context.Background(), owner, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Cart.Items[0].Quantity)

	store.forceConflicts = 2
	_, err = engine.AddItem(context.Background(), owner, 2, 1)
	assert.ErrorIs(t, err, ErrVersionConflict)
}

func TestRecomputeTotalsEmptyCart(t *testing.T) {
	c := &Cart{}
	recomputeTotals(c)

	assert.Equal(t, int64(0), c.SubtotalCents)
	assert.Equal(t, int64(0), c.TotalCents)
	assert.Equal(t, 0, c.TotalItems)
}
