package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/refdudu/api-calvao-de-cria/internal/domain/orders"
	"github.com/refdudu/api-calvao-de-cria/internal/params"
)

// AdminUpdateOrderStatusRequest is the PATCH body.
type AdminUpdateOrderStatusRequest struct {
	Status          string  `json:"status" validate:"required,oneof=paid cancelled" example:"paid"`
	CancelledReason *string `json:"cancelled_reason,omitempty" example:"Customer requested"`
}

// adminListOrdersHandler godoc
//
//	@Summary		List orders (admin)
//	@Description	List all orders for the admin dashboard. Supports optional status filter and pagination.
//	@Tags			Admin-Orders
//	@Produce		json
//	@Param			status	query		string	false	"Filter by status"	Enums(awaiting_payment,paid,cancelled)
//	@Param			page	query		int		false	"Page number (default: 1)"
//	@Param			limit	query		int		false	"Items per page (default: 15, max: 30)"
//	@Success		200		{object}	Envelope{data=OrderListResponse}
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Router			/admin/orders [get]
//	@Security		ApiKeyAuth
func (app *application) adminListOrdersHandler(w http.ResponseWriter, r *http.Request) {
	status := strings.TrimSpace(r.URL.Query().Get("status"))
	p := params.ParsePagination(r.URL.Query())

	if status != "" && !validOrderStatus[status] {
		app.badRequestResponse(w, r, fmt.Errorf("invalid status %q", status))
		return
	}

	ordersList, total, err := app.store.Sales.Orders.ListAll(r.Context(), status, p.Limit, p.Offset)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	p.ComputeMeta(total)

	app.jsonResponse(w, http.StatusOK, OrderListResponse{
		Orders:     ordersList,
		Pagination: p,
		Status:     status,
	})
}

// adminGetOrderHandler godoc
//
//	@Summary		Get order detail (admin)
//	@Description	Get a single order with its line items for the admin dashboard.
//	@Tags			Admin-Orders
//	@Produce		json
//	@Param			orderID	path		int64	true	"Order ID"
//	@Success		200		{object}	Envelope{data=orders.OrderDetail}
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		404		{object}	error
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Router			/admin/orders/{orderID} [get]
//	@Security		ApiKeyAuth
func (app *application) adminGetOrderHandler(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseIDParam(r, "orderID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	detail, err := app.store.Sales.Orders.GetDetail(r.Context(), orderID)
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

// adminUpdateOrderStatusHandler godoc
//
//	@Summary		Update order status (admin)
//	@Description	Marks an order paid (manual settlement) or cancels it with a reason.
//	@Tags			Admin-Orders
//	@Accept			json
//	@Produce		json
//	@Param			orderID	path		int64							true	"Order ID"
//	@Param			payload	body		AdminUpdateOrderStatusRequest	true	"New status"
//	@Success		200		{object}	Envelope{data=map[string]string}
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		404		{object}	error	"Order not found or not in a transitionable state"
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Router			/admin/orders/{orderID}/status [patch]
//	@Security		ApiKeyAuth
func (app *application) adminUpdateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseIDParam(r, "orderID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload AdminUpdateOrderStatusRequest
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	switch payload.Status {
	case orders.StatusPaid:
		err = app.store.Sales.Orders.MarkPaid(r.Context(), orderID)
	case orders.StatusCancelled:
		reason := "cancelled by admin"
		if payload.CancelledReason != nil && *payload.CancelledReason != "" {
			reason = *payload.CancelledReason
		}
		err = app.store.Sales.Orders.Cancel(r.Context(), orderID, reason)
	}
	if err != nil {
		switch err {
		case orders.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]string{
		"message": "status updated",
		"status":  payload.Status,
	})
}
