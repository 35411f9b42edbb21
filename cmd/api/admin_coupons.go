package main

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/refdudu/api-calvao-de-cria/internal/domain/coupons"
	"github.com/refdudu/api-calvao-de-cria/internal/params"
)

type CreateCouponPayload struct {
	Code             string    `json:"code" validate:"required,max=50"`
	Description      string    `json:"description" validate:"required,max=200"`
	Type             string    `json:"type" validate:"required,oneof=fixed percent"`
	Value            int64     `json:"value" validate:"required,gt=0"`
	MinPurchaseCents int64     `json:"min_purchase_cents" validate:"gte=0"`
	ExpiresAt        time.Time `json:"expires_at" validate:"required"`
}

// CouponListResponse is the payload inside the standard envelope { "data": ... }.
type CouponListResponse struct {
	Coupons    []coupons.Coupon  `json:"coupons"`
	Pagination params.Pagination `json:"pagination"`
}

// adminCreateCouponHandler godoc
//
//	@Summary		Create a coupon (admin)
//	@Description	Creates a coupon. Value is cents for fixed coupons and a whole percentage (1-100) for percent coupons.
//	@Tags			Admin-Coupons
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateCouponPayload	true	"Coupon"
//	@Success		201		{object}	Envelope{data=coupons.Coupon}
//	@Failure		400		{object}	ErrorBadRequestResponse	"Invalid payload or duplicate code"
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Router			/admin/coupons [post]
//	@Security		ApiKeyAuth
func (app *application) adminCreateCouponHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateCouponPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if payload.Type == coupons.TypePercent && payload.Value > 100 {
		app.badRequestResponse(w, r, fmt.Errorf("percent coupon value cannot exceed 100"))
		return
	}

	coupon := &coupons.Coupon{
		Code:             payload.Code,
		Description:      payload.Description,
		Type:             payload.Type,
		Value:            payload.Value,
		MinPurchaseCents: payload.MinPurchaseCents,
		IsActive:         true,
		ExpiresAt:        payload.ExpiresAt,
	}

	if err := app.store.Coupons.Create(r.Context(), coupon); err != nil {
		switch err {
		case coupons.ErrDuplicateCode:
			app.badRequestResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, coupon); err != nil {
		app.internalServerError(w, r, err)
	}
}

// adminListCouponsHandler godoc
//
//	@Summary		List coupons (admin)
//	@Description	Lists coupons with an optional active filter.
//	@Tags			Admin-Coupons
//	@Produce		json
//	@Param			active	query		bool	false	"Filter by active flag"
//	@Param			page	query		int		false	"Page number (default: 1)"
//	@Param			limit	query		int		false	"Items per page (default: 15, max: 30)"
//	@Success		200		{object}	Envelope{data=CouponListResponse}
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Router			/admin/coupons [get]
//	@Security		ApiKeyAuth
func (app *application) adminListCouponsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := params.ParsePagination(q)

	var isActive *bool
	if activeStr := q.Get("active"); activeStr != "" {
		active, err := strconv.ParseBool(activeStr)
		if err != nil {
			app.badRequestResponse(w, r, fmt.Errorf("invalid active filter"))
			return
		}
		isActive = &active
	}

	list, total, err := app.store.Coupons.List(r.Context(), isActive, p.Limit, p.Offset)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	p.ComputeMeta(total)

	app.jsonResponse(w, http.StatusOK, CouponListResponse{
		Coupons:    list,
		Pagination: p,
	})
}

// adminGetCouponHandler godoc
//
//	@Summary		Get a coupon (admin)
//	@Tags			Admin-Coupons
//	@Produce		json
//	@Param			couponID	path		int64	true	"Coupon ID"
//	@Success		200			{object}	Envelope{data=coupons.Coupon}
//	@Failure		404			{object}	error
//	@Failure		500			{object}	ErrorInternalServerResponse
//	@Router			/admin/coupons/{couponID} [get]
//	@Security		ApiKeyAuth
func (app *application) adminGetCouponHandler(w http.ResponseWriter, r *http.Request) {
	couponID, err := parseIDParam(r, "couponID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	coupon, err := app.store.Coupons.GetByID(r.Context(), couponID)
	if err != nil {
		switch err {
		case coupons.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, coupon); err != nil {
		app.internalServerError(w, r, err)
	}
}

type UpdateCouponPayload struct {
	Description      *string    `json:"description,omitempty" validate:"omitempty,max=200"`
	Value            *int64     `json:"value,omitempty" validate:"omitempty,gt=0"`
	MinPurchaseCents *int64     `json:"min_purchase_cents,omitempty" validate:"omitempty,gte=0"`
	IsActive         *bool      `json:"is_active,omitempty"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty"`
}

// adminUpdateCouponHandler godoc
//
//	@Summary		Update a coupon (admin)
//	@Description	Partially updates a coupon. Code and type are immutable; carts re-validate the coupon on every mutation, so changes take effect immediately.
//	@Tags			Admin-Coupons
//	@Accept			json
//	@Produce		json
//	@Param			couponID	path		int64				true	"Coupon ID"
//	@Param			payload		body		UpdateCouponPayload	true	"Fields to change"
//	@Success		200			{object}	Envelope{data=coupons.Coupon}
//	@Failure		400			{object}	ErrorBadRequestResponse
//	@Failure		404			{object}	error
//	@Failure		500			{object}	ErrorInternalServerResponse
//	@Router			/admin/coupons/{couponID} [patch]
//	@Security		ApiKeyAuth
func (app *application) adminUpdateCouponHandler(w http.ResponseWriter, r *http.Request) {
	couponID, err := parseIDParam(r, "couponID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload UpdateCouponPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	updates := map[string]interface{}{}
	if payload.Description != nil {
		updates["description"] = *payload.Description
	}
	if payload.Value != nil {
		updates["value"] = *payload.Value
	}
	if payload.MinPurchaseCents != nil {
		updates["min_purchase_cents"] = *payload.MinPurchaseCents
	}
	if payload.IsActive != nil {
		updates["is_active"] = *payload.IsActive
	}
	if payload.ExpiresAt != nil {
		updates["expires_at"] = *payload.ExpiresAt
	}

	if len(updates) == 0 {
		app.badRequestResponse(w, r, fmt.Errorf("no fields to update"))
		return
	}

	if err := app.store.Coupons.Update(r.Context(), couponID, updates); err != nil {
		switch err {
		case coupons.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	coupon, err := app.store.Coupons.GetByID(r.Context(), couponID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, coupon); err != nil {
		app.internalServerError(w, r, err)
	}
}

// adminDeleteCouponHandler godoc
//
//	@Summary		Delete a coupon (admin)
//	@Description	Deletes a coupon. Carts holding it will drop it on their next mutation.
//	@Tags			Admin-Coupons
//	@Produce		json
//	@Param			couponID	path		int64	true	"Coupon ID"
//	@Success		204			{string}	string	"No Content"
//	@Failure		404			{object}	error
//	@Failure		500			{object}	ErrorInternalServerResponse
//	@Router			/admin/coupons/{couponID} [delete]
//	@Security		ApiKeyAuth
func (app *application) adminDeleteCouponHandler(w http.ResponseWriter, r *http.Request) {
	couponID, err := parseIDParam(r, "couponID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.Coupons.Delete(r.Context(), couponID); err != nil {
		switch err {
		case coupons.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
