package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/refdudu/api-calvao-de-cria/internal/domain/carts"
)

// CartResponse is the payload inside the standard envelope { "data": ... }.
// CouponStatus is present only when a mutation silently dropped the
// applied coupon.
type CartResponse struct {
	Cart         *carts.Cart         `json:"cart"`
	CouponStatus *carts.CouponNotice `json:"coupon_status,omitempty"`
}

// writeCartResult renders an engine result. A freshly minted guest token
// travels back in the X-Guest-Cart-Id header so the client can persist it.
func (app *application) writeCartResult(w http.ResponseWriter, r *http.Request, status int, res *carts.Result) {
	if res.NewGuestToken != "" {
		w.Header().Set("X-Guest-Cart-Id", res.NewGuestToken)
	}

	resp := CartResponse{
		Cart:         res.Cart,
		CouponStatus: res.CouponNotice,
	}

	if err := app.jsonResponse(w, status, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) cartErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var minPurchase *carts.MinPurchaseError

	switch {
	case errors.Is(err, carts.ErrProductNotFound),
		errors.Is(err, carts.ErrItemNotFound),
		errors.Is(err, carts.ErrCouponNotFound):
		app.notFoundResponse(w, r, err)
	case errors.Is(err, carts.ErrInsufficientStock),
		errors.Is(err, carts.ErrVersionConflict):
		app.conflictResponse(w, r, err)
	case errors.As(err, &minPurchase):
		app.badRequestResponse(w, r, err)
	default:
		app.internalServerError(w, r, err)
	}
}

// getCartHandler godoc
//
//	@Summary		Get the cart
//	@Description	Returns the owner's cart, creating an empty one (and a guest token, echoed in X-Guest-Cart-Id) when none exists.
//	@Tags			cart
//	@Produce		json
//	@Success		200	{object}	Envelope{data=CartResponse}
//	@Failure		500	{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/cart [get]
func (app *application) getCartHandler(w http.ResponseWriter, r *http.Request) {
	owner := getCartOwnerFromContext(r)

	res, err := app.engine.GetCart(r.Context(), owner)
	if err != nil {
		app.cartErrorResponse(w, r, err)
		return
	}

	app.writeCartResult(w, r, http.StatusOK, res)
}

type AddCartItemPayload struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

// addCartItemHandler godoc
//
//	@Summary		Add an item to the cart
//	@Description	Adds a product (or increases its quantity when already present). The unit price is frozen at first add.
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		AddCartItemPayload	true	"Product and quantity"
//	@Success		200		{object}	Envelope{data=CartResponse}
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		404		{object}	error	"Product not found"
//	@Failure		409		{object}	error	"Insufficient stock"
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/cart/items [post]
func (app *application) addCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var payload AddCartItemPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	owner := getCartOwnerFromContext(r)

	res, err := app.engine.AddItem(r.Context(), owner, payload.ProductID, payload.Quantity)
	if err != nil {
		app.cartErrorResponse(w, r, err)
		return
	}

	app.writeCartResult(w, r, http.StatusOK, res)
}

type UpdateCartItemPayload struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// updateCartItemHandler godoc
//
//	@Summary		Change an item's quantity
//	@Description	Sets the quantity of a cart line. The frozen unit price is kept.
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			productID	path		int64					true	"Product ID"
//	@Param			payload		body		UpdateCartItemPayload	true	"New quantity"
//	@Success		200			{object}	Envelope{data=CartResponse}
//	@Failure		400			{object}	ErrorBadRequestResponse
//	@Failure		404			{object}	error	"Item not in cart"
//	@Failure		409			{object}	error	"Insufficient stock"
//	@Failure		500			{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/cart/items/{productID} [patch]
func (app *application) updateCartItemHandler(w http.ResponseWriter, r *http.Request) {
	productID, err := parseIDParam(r, "productID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload UpdateCartItemPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	owner := getCartOwnerFromContext(r)

	res, err := app.engine.UpdateItemQuantity(r.Context(), owner, productID, payload.Quantity)
	if err != nil {
		app.cartErrorResponse(w, r, err)
		return
	}

	app.writeCartResult(w, r, http.StatusOK, res)
}

// removeCartItemHandler godoc
//
//	@Summary		Remove an item from the cart
//	@Description	Removes a cart line. The applied coupon is revalidated and dropped with a notice when the cart no longer qualifies.
//	@Tags			cart
//	@Produce		json
//	@Param			productID	path		int64	true	"Product ID"
//	@Success		200			{object}	Envelope{data=CartResponse}
//	@Failure		400			{object}	ErrorBadRequestResponse
//	@Failure		404			{object}	error	"Item not in cart"
//	@Failure		500			{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/cart/items/{productID} [delete]
func (app *application) removeCartItemHandler(w http.ResponseWriter, r *http.Request) {
	productID, err := parseIDParam(r, "productID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	owner := getCartOwnerFromContext(r)

	res, err := app.engine.RemoveItem(r.Context(), owner, productID)
	if err != nil {
		app.cartErrorResponse(w, r, err)
		return
	}

	app.writeCartResult(w, r, http.StatusOK, res)
}

type ApplyCouponPayload struct {
	Code string `json:"code" validate:"required,max=50"`
}

// applyCouponHandler godoc
//
//	@Summary		Apply a coupon
//	@Description	Validates and applies a coupon code to the cart. Replaces any previously applied coupon.
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		ApplyCouponPayload	true	"Coupon code"
//	@Success		200		{object}	Envelope{data=CartResponse}
//	@Failure		400		{object}	ErrorBadRequestResponse	"Minimum purchase not met"
//	@Failure		404		{object}	error					"Coupon invalid or expired"
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/cart/coupon [post]
func (app *application) applyCouponHandler(w http.ResponseWriter, r *http.Request) {
	var payload ApplyCouponPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	owner := getCartOwnerFromContext(r)

	res, err := app.engine.ApplyCoupon(r.Context(), owner, payload.Code)
	if err != nil {
		app.cartErrorResponse(w, r, err)
		return
	}

	app.writeCartResult(w, r, http.StatusOK, res)
}

// previewCouponHandler godoc
//
//	@Summary		Preview a coupon against the current cart
//	@Description	Returns the totals the cart would have with the coupon applied. Nothing is persisted; the cart keeps its current coupon.
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		ApplyCouponPayload	true	"Coupon code"
//	@Success		200		{object}	Envelope{data=CartResponse}
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		404		{object}	error					"Coupon invalid or expired"
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/cart/coupon/preview [post]
func (app *application) previewCouponHandler(w http.ResponseWriter, r *http.Request) {
	var payload ApplyCouponPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	owner := getCartOwnerFromContext(r)

	res, err := app.engine.PreviewCoupon(r.Context(), owner, payload.Code)
	if err != nil {
		app.cartErrorResponse(w, r, err)
		return
	}

	app.writeCartResult(w, r, http.StatusOK, res)
}

// removeCouponHandler godoc
//
//	@Summary		Remove the applied coupon
//	@Description	Removes the cart's coupon. Succeeds even when no coupon is applied.
//	@Tags			cart
//	@Produce		json
//	@Success		200	{object}	Envelope{data=CartResponse}
//	@Failure		500	{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/cart/coupon [delete]
func (app *application) removeCouponHandler(w http.ResponseWriter, r *http.Request) {
	owner := getCartOwnerFromContext(r)

	res, err := app.engine.RemoveCoupon(r.Context(), owner)
	if err != nil {
		app.cartErrorResponse(w, r, err)
		return
	}

	app.writeCartResult(w, r, http.StatusOK, res)
}

// mergeCartHandler godoc
//
//	@Summary		Merge the guest cart into the user's cart
//	@Description	Folds the guest cart identified by X-Guest-Cart-Id into the logged-in user's cart. On quantity collisions the user's frozen price wins. The guest cart is deleted afterwards.
//	@Tags			cart
//	@Produce		json
//	@Success		200	{object}	Envelope{data=CartResponse}
//	@Failure		400	{object}	ErrorBadRequestResponse	"Missing X-Guest-Cart-Id header"
//	@Failure		401	{object}	error
//	@Failure		500	{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/cart/merge [post]
func (app *application) mergeCartHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	guestToken := r.Header.Get("X-Guest-Cart-Id")
	if guestToken == "" {
		app.badRequestResponse(w, r, fmt.Errorf("X-Guest-Cart-Id header is required"))
		return
	}

	res, err := app.engine.MergeGuestCart(r.Context(), user.ID, guestToken)
	if err != nil {
		app.cartErrorResponse(w, r, err)
		return
	}

	app.writeCartResult(w, r, http.StatusOK, res)
}
