package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/refdudu/api-calvao-de-cria/internal/domain/addresses"
	"github.com/refdudu/api-calvao-de-cria/internal/domain/carts"
	"github.com/refdudu/api-calvao-de-cria/internal/domain/orders"
	"github.com/refdudu/api-calvao-de-cria/internal/domain/products"
	"github.com/refdudu/api-calvao-de-cria/internal/domain/storage"
	"github.com/refdudu/api-calvao-de-cria/internal/payments"
)

type CheckoutPayload struct {
	AddressID     int64  `json:"address_id" validate:"required,gt=0"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=pix"`
}

// CheckoutResponse is the payload inside the standard envelope { "data": ... }.
type CheckoutResponse struct {
	Order   *orders.Order        `json:"order"`
	Payment orders.PaymentCharge `json:"payment"`
}

// checkoutHandler godoc
//
//	@Summary		Checkout the cart
//	@Description	Converts the user's cart into an order: snapshots the saved address, assigns a sequential order number, reserves stock, copies the cart lines and creates a PIX charge. Everything runs in one transaction; the cart is emptied on success.
//	@Tags			checkout
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CheckoutPayload	true	"Saved address and payment method"
//	@Success		201		{object}	Envelope{data=CheckoutResponse}
//	@Failure		400		{object}	ErrorBadRequestResponse	"Empty cart or invalid payload"
//	@Failure		404		{object}	error					"Address not found or owned by another user"
//	@Failure		409		{object}	error					"A product ran out of stock"
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/checkout [post]
func (app *application) checkoutHandler(w http.ResponseWriter, r *http.Request) {
	var payload CheckoutPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user := getUserFromContext(r)
	ctx := r.Context()

	addr, err := app.store.Addresses.GetForUser(ctx, payload.AddressID, user.ID)
	if err != nil {
		if errors.Is(err, addresses.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	ship := orders.ShippingFromAddress(addr)

	var (
		order  *orders.Order
		charge orders.PaymentCharge
	)

	err = app.store.WithSalesTx(ctx, func(s *storage.SalesTx) error {
		cart, err := s.Carts.FindByOwner(ctx, carts.UserOwner(user.ID))
		if err != nil {
			return err
		}
		if cart == nil || len(cart.Items) == 0 {
			return orders.ErrEmptyCart
		}

		orderNumber, err := s.Orders.NextOrderNumber(ctx, time.Now())
		if err != nil {
			return err
		}

		// Reserve stock line by line; a failed decrement aborts the
		// whole checkout.
		for _, line := range cart.Items {
			if err := s.Products.DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
				if errors.Is(err, products.ErrOutOfStock) {
					return fmt.Errorf("%w: %s", products.ErrOutOfStock, line.Name)
				}
				return err
			}
		}

		resp, err := app.payments.CreateCharge(ctx, payload.PaymentMethod, payments.ChargeRequest{
			OrderNumber:   orderNumber,
			AmountCents:   cart.TotalCents,
			CustomerName:  ship.RecipientName,
			CustomerEmail: user.Email,
		})
		if err != nil {
			return err
		}

		charge = orders.PaymentCharge{
			Method:        payload.PaymentMethod,
			TransactionID: resp.TransactionID,
			QRCode:        resp.Payload,
		}
		if resp.QRCodeImage != "" {
			charge.QRCodeImageURL = &resp.QRCodeImage
		}

		order, err = s.Orders.CreateFromCart(ctx, user.ID, orderNumber, cart, ship, charge)
		if err != nil {
			return err
		}

		return s.Carts.Clear(ctx, user.ID)
	})
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrEmptyCart):
			app.badRequestResponse(w, r, err)
		case errors.Is(err, products.ErrOutOfStock):
			app.conflictResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	app.logger.Infow("order placed", "order_number", order.OrderNumber, "user_id", user.ID, "total_cents", order.TotalCents)

	if err := app.jsonResponse(w, http.StatusCreated, CheckoutResponse{
		Order:   order,
		Payment: charge,
	}); err != nil {
		app.internalServerError(w, r, err)
	}
}
