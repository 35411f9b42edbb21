package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/refdudu/api-calvao-de-cria/internal/domain/orders"
	"github.com/refdudu/api-calvao-de-cria/internal/payments"
)

type PixCallbackPayload struct {
	TransactionID string `json:"transaction_id" validate:"required,max=50"`
}

// pixCallbackHandler godoc
//
//	@Summary		PIX payment confirmation callback
//	@Description	Marks the order matching the transaction as paid. Meant to be called by the payment provider; protected with basic auth.
//	@Tags			payments
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		PixCallbackPayload	true	"Transaction to confirm"
//	@Success		200		{object}	Envelope{data=orders.Order}
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		404		{object}	error	"Unknown transaction or already settled"
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Router			/payments/pix/callback [post]
func (app *application) pixCallbackHandler(w http.ResponseWriter, r *http.Request) {
	var payload PixCallbackPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	orderNumber, ok := strings.CutPrefix(payload.TransactionID, "PIX_")
	if !ok {
		app.badRequestResponse(w, r, fmt.Errorf("malformed transaction id"))
		return
	}

	verify, err := app.payments.VerifyCharge(r.Context(), payments.MethodPix, payments.VerifyRequest{
		TransactionID: payload.TransactionID,
	})
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if !verify.Paid {
		app.badRequestResponse(w, r, fmt.Errorf("transaction %s is not settled", payload.TransactionID))
		return
	}

	order, err := app.store.Sales.Orders.GetByNumber(r.Context(), orderNumber)
	if err != nil {
		switch err {
		case orders.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.store.Sales.Orders.MarkPaid(r.Context(), order.ID); err != nil {
		switch err {
		case orders.ErrNotFound:
			// already paid or cancelled
			app.notFoundResponse(w, r, fmt.Errorf("order %s is not awaiting payment", orderNumber))
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	app.logger.Infow("order paid", "order_number", orderNumber, "transaction_id", payload.TransactionID)

	order.Status = orders.StatusPaid
	order.PaymentStatus = orders.PaymentPaid

	if err := app.jsonResponse(w, http.StatusOK, order); err != nil {
		app.internalServerError(w, r, err)
	}
}
