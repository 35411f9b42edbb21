package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/refdudu/api-calvao-de-cria/internal/domain/products"
	"github.com/refdudu/api-calvao-de-cria/internal/params"

	"github.com/go-chi/chi/v5"
)

// ProductListResponse is the payload inside the standard envelope { "data": ... }.
type ProductListResponse struct {
	Products   []products.Product `json:"products"`
	Pagination params.Pagination  `json:"pagination"`
}

// listProductsHandler godoc
//
//	@Summary		List products
//	@Description	Lists active products with optional search and promotion filter.
//	@Tags			products
//	@Produce		json
//	@Param			search		query		string	false	"Match against product name"
//	@Param			promotion	query		bool	false	"Only products with an active promotion"
//	@Param			page		query		int		false	"Page number (default: 1)"
//	@Param			limit		query		int		false	"Items per page (default: 15, max: 30)"
//	@Success		200			{object}	Envelope{data=ProductListResponse}
//	@Failure		500			{object}	ErrorInternalServerResponse
//	@Router			/products [get]
func (app *application) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := params.ParsePagination(q)

	filters := products.ListFilters{
		Search:        strings.TrimSpace(q.Get("search")),
		PromotionOnly: q.Get("promotion") == "true",
	}

	list, total, err := app.store.Products.List(r.Context(), filters, p.Limit, p.Offset)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	p.ComputeMeta(total)

	app.jsonResponse(w, http.StatusOK, ProductListResponse{
		Products:   list,
		Pagination: p,
	})
}

// getProductHandler godoc
//
//	@Summary		Get a product
//	@Description	Returns one active product by ID.
//	@Tags			products
//	@Produce		json
//	@Param			productID	path		int64	true	"Product ID"
//	@Success		200			{object}	Envelope{data=products.Product}
//	@Failure		400			{object}	ErrorBadRequestResponse
//	@Failure		404			{object}	error
//	@Failure		500			{object}	ErrorInternalServerResponse
//	@Router			/products/{productID} [get]
func (app *application) getProductHandler(w http.ResponseWriter, r *http.Request) {
	productID, err := parseIDParam(r, "productID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	product, err := app.store.Products.GetPublicByID(r.Context(), productID)
	if err != nil {
		switch err {
		case products.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, product); err != nil {
		app.internalServerError(w, r, err)
	}
}

func parseIDParam(r *http.Request, name string) (int64, error) {
	idStr := chi.URLParam(r, name)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}
