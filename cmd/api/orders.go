package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/refdudu/api-calvao-de-cria/internal/domain/orders"
	"github.com/refdudu/api-calvao-de-cria/internal/params"
)

// OrderListResponse is the payload inside the standard envelope { "data": ... }.
type OrderListResponse struct {
	Orders     []orders.Order    `json:"orders"`
	Pagination params.Pagination `json:"pagination"`
	Status     string            `json:"status"` // applied filter (echoed back)
}

var validOrderStatus = map[string]bool{
	orders.StatusAwaitingPayment: true,
	orders.StatusPaid:            true,
	orders.StatusCancelled:       true,
}

// listMyOrdersHandler godoc
//
//	@Summary		List my orders
//	@Description	Lists the logged-in user's orders, newest first. Supports optional status filter and pagination.
//	@Tags			orders
//	@Produce		json
//	@Param			status	query		string	false	"Filter by status"	Enums(awaiting_payment,paid,cancelled)
//	@Param			page	query		int		false	"Page number (default: 1)"
//	@Param			limit	query		int		false	"Items per page (default: 15, max: 30)"
//	@Success		200		{object}	Envelope{data=OrderListResponse}
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/orders [get]
func (app *application) listMyOrdersHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	status := strings.TrimSpace(r.URL.Query().Get("status"))
	p := params.ParsePagination(r.URL.Query())

	if status != "" && !validOrderStatus[status] {
		app.badRequestResponse(w, r, fmt.Errorf("invalid status %q", status))
		return
	}

	list, total, err := app.store.Sales.Orders.ListByUser(r.Context(), user.ID, status, p.Limit, p.Offset)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	p.ComputeMeta(total)

	app.jsonResponse(w, http.StatusOK, OrderListResponse{
		Orders:     list,
		Pagination: p,
		Status:     status,
	})
}

// getMyOrderHandler godoc
//
//	@Summary		Get one of my orders
//	@Description	Returns one of the logged-in user's orders with its line items, shipping snapshot and payment artifacts.
//	@Tags			orders
//	@Produce		json
//	@Param			orderID	path		int64	true	"Order ID"
//	@Success		200		{object}	Envelope{data=orders.OrderDetail}
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		404		{object}	error
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/orders/{orderID} [get]
func (app *application) getMyOrderHandler(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseIDParam(r, "orderID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user := getUserFromContext(r)

	detail, err := app.store.Sales.Orders.GetDetailForUser(r.Context(), user.ID, orderID)
	if err != nil {
		switch err {
		case orders.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, detail); err != nil {
		app.internalServerError(w, r, err)
	}
}
