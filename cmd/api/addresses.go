package main

import (
	"errors"
	"net/http"

	"github.com/refdudu/api-calvao-de-cria/internal/domain/addresses"
)

type CreateAddressPayload struct {
	Alias         string  `json:"alias" validate:"required,max=50"`
	RecipientName string  `json:"recipient_name" validate:"required,max=100"`
	Phone         string  `json:"phone" validate:"required,max=20"`
	CEP           string  `json:"cep" validate:"required,max=9"`
	Street        string  `json:"street" validate:"required,max=200"`
	Number        string  `json:"number" validate:"required,max=20"`
	Complement    *string `json:"complement,omitempty" validate:"omitempty,max=100"`
	Neighborhood  string  `json:"neighborhood" validate:"required,max=100"`
	City          string  `json:"city" validate:"required,max=100"`
	State         string  `json:"state" validate:"required,len=2"`
}

// AddressListResponse is the payload inside the standard envelope.
type AddressListResponse struct {
	Addresses []addresses.Address `json:"addresses"`
	Total     int                 `json:"total"`
}

// createAddressHandler godoc
//
//	@Summary		Add an address to the user's address book
//	@Tags			addresses
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateAddressPayload	true	"Address"
//	@Success		201		{object}	Envelope{data=addresses.Address}
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		401		{object}	error
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/addresses [post]
func (app *application) createAddressHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateAddressPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user := getUserFromContext(r)

	addr := &addresses.Address{
		UserID:        user.ID,
		Alias:         payload.Alias,
		RecipientName: payload.RecipientName,
		Phone:         payload.Phone,
		CEP:           payload.CEP,
		Street:        payload.Street,
		Number:        payload.Number,
		Complement:    payload.Complement,
		Neighborhood:  payload.Neighborhood,
		City:          payload.City,
		State:         payload.State,
	}

	if err := app.store.Addresses.Create(r.Context(), addr); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, addr); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listAddressesHandler godoc
//
//	@Summary		List the user's addresses
//	@Tags			addresses
//	@Produce		json
//	@Success		200	{object}	Envelope{data=AddressListResponse}
//	@Failure		401	{object}	error
//	@Failure		500	{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/addresses [get]
func (app *application) listAddressesHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	list, err := app.store.Addresses.ListByUser(r.Context(), user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, AddressListResponse{
		Addresses: list,
		Total:     len(list),
	}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getAddressHandler godoc
//
//	@Summary		Get one address
//	@Tags			addresses
//	@Produce		json
//	@Param			addressID	path		int	true	"Address ID"
//	@Success		200			{object}	Envelope{data=addresses.Address}
//	@Failure		404			{object}	error	"Not found or owned by another user"
//	@Failure		500			{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/addresses/{addressID} [get]
func (app *application) getAddressHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "addressID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user := getUserFromContext(r)

	addr, err := app.store.Addresses.GetForUser(r.Context(), id, user.ID)
	if err != nil {
		if errors.Is(err, addresses.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, addr); err != nil {
		app.internalServerError(w, r, err)
	}
}

type UpdateAddressPayload struct {
	Alias         *string `json:"alias" validate:"omitempty,max=50"`
	RecipientName *string `json:"recipient_name" validate:"omitempty,max=100"`
	Phone         *string `json:"phone" validate:"omitempty,max=20"`
	CEP           *string `json:"cep" validate:"omitempty,max=9"`
	Street        *string `json:"street" validate:"omitempty,max=200"`
	Number        *string `json:"number" validate:"omitempty,max=20"`
	Complement    *string `json:"complement" validate:"omitempty,max=100"`
	Neighborhood  *string `json:"neighborhood" validate:"omitempty,max=100"`
	City          *string `json:"city" validate:"omitempty,max=100"`
	State         *string `json:"state" validate:"omitempty,len=2"`
}

func (p *UpdateAddressPayload) updates() map[string]interface{} {
	u := map[string]interface{}{}
	if p.Alias != nil {
		u["alias"] = *p.Alias
	}
	if p.RecipientName != nil {
		u["recipient_name"] = *p.RecipientName
	}
	if p.Phone != nil {
		u["phone"] = *p.Phone
	}
	if p.CEP != nil {
		u["cep"] = *p.CEP
	}
	if p.Street != nil {
		u["street"] = *p.Street
	}
	if p.Number != nil {
		u["number"] = *p.Number
	}
	if p.Complement != nil {
		u["complement"] = *p.Complement
	}
	if p.Neighborhood != nil {
		u["neighborhood"] = *p.Neighborhood
	}
	if p.City != nil {
		u["city"] = *p.City
	}
	if p.State != nil {
		u["state"] = *p.State
	}
	return u
}

// updateAddressHandler godoc
//
//	@Summary		Update an address
//	@Tags			addresses
//	@Accept			json
//	@Produce		json
//	@Param			addressID	path		int						true	"Address ID"
//	@Param			payload		body		UpdateAddressPayload	true	"Fields to change"
//	@Success		200			{object}	Envelope{data=addresses.Address}
//	@Failure		400			{object}	ErrorBadRequestResponse
//	@Failure		404			{object}	error
//	@Failure		500			{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/addresses/{addressID} [patch]
func (app *application) updateAddressHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "addressID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload UpdateAddressPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	updates := payload.updates()
	if len(updates) == 0 {
		app.badRequestResponse(w, r, errors.New("no fields to update"))
		return
	}

	user := getUserFromContext(r)

	if err := app.store.Addresses.Update(r.Context(), id, user.ID, updates); err != nil {
		if errors.Is(err, addresses.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	addr, err := app.store.Addresses.GetForUser(r.Context(), id, user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, addr); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteAddressHandler godoc
//
//	@Summary		Remove an address
//	@Tags			addresses
//	@Param			addressID	path	int	true	"Address ID"
//	@Success		204
//	@Failure		404	{object}	error
//	@Failure		500	{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/addresses/{addressID} [delete]
func (app *application) deleteAddressHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "addressID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user := getUserFromContext(r)

	if err := app.store.Addresses.Delete(r.Context(), id, user.ID); err != nil {
		if errors.Is(err, addresses.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
