package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/refdudu/api-calvao-de-cria/internal/domain/products"
	"github.com/refdudu/api-calvao-de-cria/internal/params"
)

type CreateProductPayload struct {
	Name              string  `json:"name" validate:"required,max=200"`
	Slug              string  `json:"slug" validate:"required,max=200,slug"`
	Description       *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	PriceCents        int64   `json:"price_cents" validate:"required,gt=0"`
	PromoPriceCents   *int64  `json:"promo_price_cents,omitempty" validate:"omitempty,gt=0"`
	IsPromotionActive bool    `json:"is_promotion_active"`
	StockQuantity     int     `json:"stock_quantity" validate:"gte=0"`
}

// adminCreateProductHandler godoc
//
//	@Summary		Create a product (admin)
//	@Description	Creates a catalog product. The promo price, when set, must be below the list price.
//	@Tags			Admin-Products
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateProductPayload	true	"Product"
//	@Success		201		{object}	Envelope{data=products.Product}
//	@Failure		400		{object}	ErrorBadRequestResponse	"Invalid payload or duplicate slug"
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Router			/admin/products [post]
//	@Security		ApiKeyAuth
func (app *application) adminCreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateProductPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if payload.PromoPriceCents != nil && *payload.PromoPriceCents >= payload.PriceCents {
		app.badRequestResponse(w, r, fmt.Errorf("promo price must be below the list price"))
		return
	}

	product := &products.Product{
		Name:              payload.Name,
		Slug:              payload.Slug,
		Description:       payload.Description,
		PriceCents:        payload.PriceCents,
		PromoPriceCents:   payload.PromoPriceCents,
		IsPromotionActive: payload.IsPromotionActive,
		StockQuantity:     payload.StockQuantity,
		IsActive:          true,
	}

	if err := app.store.Products.Create(r.Context(), product); err != nil {
		switch err {
		case products.ErrDuplicateSlug:
			app.badRequestResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, product); err != nil {
		app.internalServerError(w, r, err)
	}
}

// adminListProductsHandler godoc
//
//	@Summary		List products (admin)
//	@Description	Lists products including inactive ones.
//	@Tags			Admin-Products
//	@Produce		json
//	@Param			search	query		string	false	"Match against product name"
//	@Param			page	query		int		false	"Page number (default: 1)"
//	@Param			limit	query		int		false	"Items per page (default: 15, max: 30)"
//	@Success		200		{object}	Envelope{data=ProductListResponse}
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Router			/admin/products [get]
//	@Security		ApiKeyAuth
func (app *application) adminListProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := params.ParsePagination(q)

	filters := products.ListFilters{
		Search:          strings.TrimSpace(q.Get("search")),
		IncludeInactive: true,
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

// adminGetProductHandler godoc
//
//	@Summary		Get a product (admin)
//	@Description	Returns a product by ID, active or not.
//	@Tags			Admin-Products
//	@Produce		json
//	@Param			productID	path		int64	true	"Product ID"
//	@Success		200			{object}	Envelope{data=products.Product}
//	@Failure		404			{object}	error
//	@Failure		500			{object}	ErrorInternalServerResponse
//	@Router			/admin/products/{productID} [get]
//	@Security		ApiKeyAuth
func (app *application) adminGetProductHandler(w http.ResponseWriter, r *http.Request) {
	productID, err := parseIDParam(r, "productID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	product, err := app.store.Products.GetByID(r.Context(), productID)
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

type UpdateProductPayload struct {
	Name              *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Description       *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	PriceCents        *int64  `json:"price_cents,omitempty" validate:"omitempty,gt=0"`
	PromoPriceCents   *int64  `json:"promo_price_cents,omitempty" validate:"omitempty,gt=0"`
	IsPromotionActive *bool   `json:"is_promotion_active,omitempty"`
	StockQuantity     *int    `json:"stock_quantity,omitempty" validate:"omitempty,gte=0"`
	IsActive          *bool   `json:"is_active,omitempty"`
}

// adminUpdateProductHandler godoc
//
//	@Summary		Update a product (admin)
//	@Description	Partially updates a product. Only the provided fields change. Prices of the product in existing carts stay frozen.
//	@Tags			Admin-Products
//	@Accept			json
//	@Produce		json
//	@Param			productID	path		int64					true	"Product ID"
//	@Param			payload		body		UpdateProductPayload	true	"Fields to change"
//	@Success		200			{object}	Envelope{data=products.Product}
//	@Failure		400			{object}	ErrorBadRequestResponse
//	@Failure		404			{object}	error
//	@Failure		500			{object}	ErrorInternalServerResponse
//	@Router			/admin/products/{productID} [patch]
//	@Security		ApiKeyAuth
func (app *application) adminUpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	productID, err := parseIDParam(r, "productID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload UpdateProductPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	updates := map[string]interface{}{}
	if payload.Name != nil {
		updates["name"] = *payload.Name
	}
	if payload.Description != nil {
		updates["description"] = *payload.Description
	}
	if payload.PriceCents != nil {
		updates["price_cents"] = *payload.PriceCents
	}
	if payload.PromoPriceCents != nil {
		updates["promo_price_cents"] = *payload.PromoPriceCents
	}
	if payload.IsPromotionActive != nil {
		updates["is_promotion_active"] = *payload.IsPromotionActive
	}
	if payload.StockQuantity != nil {
		updates["stock_quantity"] = *payload.StockQuantity
	}
	if payload.IsActive != nil {
		updates["is_active"] = *payload.IsActive
	}

	if len(updates) == 0 {
		app.badRequestResponse(w, r, fmt.Errorf("no fields to update"))
		return
	}

	if err := app.store.Products.Update(r.Context(), productID, updates); err != nil {
		switch err {
		case products.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	product, err := app.store.Products.GetByID(r.Context(), productID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, product); err != nil {
		app.internalServerError(w, r, err)
	}
}

// adminDeleteProductHandler godoc
//
//	@Summary		Deactivate a product (admin)
//	@Description	Soft-deletes a product: it disappears from the storefront but stays referenced by past orders.
//	@Tags			Admin-Products
//	@Produce		json
//	@Param			productID	path		int64	true	"Product ID"
//	@Success		204			{string}	string	"No Content"
//	@Failure		404			{object}	error
//	@Failure		500			{object}	ErrorInternalServerResponse
//	@Router			/admin/products/{productID} [delete]
//	@Security		ApiKeyAuth
func (app *application) adminDeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	productID, err := parseIDParam(r, "productID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.Products.Delete(r.Context(), productID); err != nil {
		switch err {
		case products.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// adminUploadProductImageHandler godoc
//
//	@Summary		Upload a product image (admin)
//	@Description	Uploads the product's main image to Cloudinary and stores the returned URL.
//	@Tags			Admin-Products
//	@Accept			mpfd
//	@Produce		json
//	@Param			productID	path		int64	true	"Product ID"
//	@Param			image		formData	file	true	"Image file (JPEG or PNG, max 2MB)"
//	@Success		200			{object}	Envelope{data=products.Product}
//	@Failure		400			{object}	ErrorBadRequestResponse
//	@Failure		404			{object}	error
//	@Failure		500			{object}	ErrorInternalServerResponse
//	@Router			/admin/products/{productID}/image [post]
//	@Security		ApiKeyAuth
func (app *application) adminUploadProductImageHandler(w http.ResponseWriter, r *http.Request) {
	productID, err := parseIDParam(r, "productID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	// Parse the multipart form
	if err := r.ParseMultipartForm(2 << 20); err != nil { // 2 MB
		app.badRequestResponse(w, r, fmt.Errorf("unable to parse form, file size limit is 2MB"))
		return
	}

	file, fileHeader, err := r.FormFile("image")
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("unable to retrieve file"))
		return
	}
	defer file.Close()

	// Validate file type (allow only JPEG & PNG)
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		app.badRequestResponse(w, r, fmt.Errorf("only JPEG and PNG images are allowed"))
		return
	}

	current, err := app.store.Products.GetByID(r.Context(), productID)
	if err != nil {
		switch err {
		case products.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	url, err := app.uploadProductImage(file, productID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	// Replacing an image leaves the old asset orphaned on Cloudinary.
	if current.MainImageURL != nil {
		if err := app.deletePhotoFromCloudinary(*current.MainImageURL); err != nil {
			app.logger.Warnw("error deleting old product image", "product_id", productID, "error", err)
		}
	}

	if err := app.store.Products.SetMainImage(r.Context(), productID, url); err != nil {
		switch err {
		case products.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	product, err := app.store.Products.GetByID(r.Context(), productID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, product); err != nil {
		app.internalServerError(w, r, err)
	}
}
