package main

import (
	"errors"
	"io"
	"net/http"

	"github.com/Beka01247/cafe/internal/domain"
	"github.com/Beka01247/cafe/internal/service"
	"github.com/go-chi/chi"
)

type AddCartItemPayload struct {
	ItemID              string                 `json:"item_id" validate:"required"`
	SelectedOptions     domain.SelectedOptions `json:"selected_options"`
	SpecialInstructions string                 `json:"special_instructions" validate:"max=300"`
}

type UpdateCartItemPayload struct {
	Quantity *int `json:"quantity" validate:"required"`
}

type CustomerPayload struct {
	CustomerName  string `json:"customer_name" validate:"required,customername"`
	CustomerPhone string `json:"customer_phone" validate:"required,phone10"`
}

// CheckoutPayload fields are optional; empty ones fall back to the identity
// stored on the cart.
type CheckoutPayload struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
}

func (app *application) writeCart(w http.ResponseWriter, r *http.Request, status int, c domain.Cart) {
	if err := app.jsonRespone(w, status, service.NewCartView(c)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getCartHandler godoc
//
//	@Summary		Get the session cart
//	@Description	Returns the cart bound to the cart_session cookie with line and grand totals
//	@Tags			cart
//	@Produce		json
//	@Success		200	{object}	service.CartView
//	@Router			/cart [get]
func (app *application) getCartHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := app.cartSessionID(w, r)

	c, err := app.cartService.Get(r.Context(), sessionID)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	app.writeCart(w, r, http.StatusOK, c)
}

// clearCartHandler godoc
//
//	@Summary	Clear the session cart
//	@Tags		cart
//	@Produce	json
//	@Success	200	{object}	service.CartView
//	@Router		/cart [delete]
func (app *application) clearCartHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := app.cartSessionID(w, r)

	c, err := app.cartService.Clear(r.Context(), sessionID)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	app.writeCart(w, r, http.StatusOK, c)
}

// addCartItemHandler godoc
//
//	@Summary		Add an item to the cart
//	@Description	Plain items merge into an existing line; configured items become their own line
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		AddCartItemPayload	true	"Item and selection"
//	@Success		201		{object}	service.CartView
//	@Failure		400		{object}	error
//	@Failure		404		{object}	error
//	@Router			/cart/items [post]
func (app *application) addCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var payload AddCartItemPayload
	if err := readJson(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	sessionID := app.cartSessionID(w, r)

	c, err := app.cartService.AddItem(r.Context(), sessionID, service.AddItemInput{
		ItemID:              payload.ItemID,
		SelectedOptions:     payload.SelectedOptions,
		SpecialInstructions: payload.SpecialInstructions,
	})
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	app.writeCart(w, r, http.StatusCreated, c)
}

// updateCartItemHandler godoc
//
//	@Summary		Set the quantity of a cart line
//	@Description	Zero or a negative quantity removes the line
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			line_id	path		string					true	"Cart line ID"
//	@Param			payload	body		UpdateCartItemPayload	true	"Quantity"
//	@Success		200		{object}	service.CartView
//	@Failure		400		{object}	error
//	@Failure		404		{object}	error
//	@Router			/cart/items/{line_id} [patch]
func (app *application) updateCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var payload UpdateCartItemPayload
	if err := readJson(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	sessionID := app.cartSessionID(w, r)

	c, err := app.cartService.UpdateQuantity(r.Context(), sessionID, chi.URLParam(r, "line_id"), *payload.Quantity)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	app.writeCart(w, r, http.StatusOK, c)
}

// removeCartItemHandler godoc
//
//	@Summary	Remove a cart line
//	@Tags		cart
//	@Produce	json
//	@Param		line_id	path		string	true	"Cart line ID"
//	@Success	200		{object}	service.CartView
//	@Failure	404		{object}	error
//	@Router		/cart/items/{line_id} [delete]
func (app *application) removeCartItemHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := app.cartSessionID(w, r)

	c, err := app.cartService.RemoveItem(r.Context(), sessionID, chi.URLParam(r, "line_id"))
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	app.writeCart(w, r, http.StatusOK, c)
}

// setCustomerHandler godoc
//
//	@Summary	Store the customer identity on the cart
//	@Tags		cart
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		CustomerPayload	true	"Customer"
//	@Success	200		{object}	service.CartView
//	@Failure	400		{object}	error
//	@Router		/cart/customer [put]
func (app *application) setCustomerHandler(w http.ResponseWriter, r *http.Request) {
	var payload CustomerPayload
	if err := readJson(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	sessionID := app.cartSessionID(w, r)

	c, err := app.cartService.SetCustomer(r.Context(), sessionID, payload.CustomerName, payload.CustomerPhone)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	app.writeCart(w, r, http.StatusOK, c)
}

// CheckoutResponse is the delivered order. Persisted is false when the
// webhook accepted the order but it could not be stored locally; the id is
// omitted in that case.
type CheckoutResponse struct {
	*domain.Order
	ID        string `json:"id,omitempty"`
	Persisted bool   `json:"persisted"`
}

func newCheckoutResponse(order *domain.Order) CheckoutResponse {
	resp := CheckoutResponse{Order: order, Persisted: !order.ID.IsZero()}
	if resp.Persisted {
		resp.ID = order.ID.Hex()
	}
	return resp
}

// checkoutHandler godoc
//
//	@Summary		Place the order
//	@Description	Sends the cart to the order webhook and clears it once the order is accepted
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CheckoutPayload	false	"Customer, falls back to the identity stored on the cart"
//	@Success		201		{object}	CheckoutResponse
//	@Failure		400		{object}	error
//	@Failure		502		{object}	error
//	@Router			/cart/checkout [post]
func (app *application) checkoutHandler(w http.ResponseWriter, r *http.Request) {
	var payload CheckoutPayload
	if err := readJson(w, r, &payload); err != nil && !errors.Is(err, io.EOF) {
		app.badRequestResponse(w, r, err)
		return
	}

	sessionID := app.cartSessionID(w, r)

	order, err := app.checkoutService.Checkout(r.Context(), sessionID, service.CheckoutInput{
		CustomerName:  payload.CustomerName,
		CustomerPhone: payload.CustomerPhone,
	})
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, newCheckoutResponse(order)); err != nil {
		app.internalServerError(w, r, err)
	}
}
