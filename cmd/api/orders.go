package main

import (
	"net/http"
	"strconv"

	"github.com/Beka01247/cafe/internal/domain"
	"github.com/Beka01247/cafe/internal/service"
	"github.com/go-chi/chi"
)

const defaultHistoryLimit = 50

type UpdateOrderStatusPayload struct {
	Status string `json:"status" validate:"required,oneof=pending preparing completed rejected"`
}

// queryInt reads a positive integer query parameter, falling back when it is
// missing or malformed.
func queryInt(r *http.Request, key string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// listOrdersHandler godoc
//
//	@Summary		List orders
//	@Description	Newest first, optionally filtered by status and a customer or id search
//	@Tags			orders
//	@Produce		json
//	@Param			status	query		string	false	"Order status"
//	@Param			q		query		string	false	"Customer name or order id search"
//	@Param			limit	query		int		false	"Maximum number of orders"
//	@Success		200		{array}		domain.Order
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/orders [get]
func (app *application) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := app.orderService.List(r.Context(), service.OrderQuery{
		Status: r.URL.Query().Get("status"),
		Query:  r.URL.Query().Get("q"),
		Limit:  int64(queryInt(r, "limit", 0)),
	})
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, orders); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getOrderHandler godoc
//
//	@Summary	Get an order
//	@Tags		orders
//	@Produce	json
//	@Param		order_id	path		string	true	"Order ID"
//	@Success	200			{object}	domain.Order
//	@Failure	404			{object}	error
//	@Security	ApiKeyAuth
//	@Router		/orders/{order_id} [get]
func (app *application) getOrderHandler(w http.ResponseWriter, r *http.Request) {
	order, err := app.orderService.Get(r.Context(), chi.URLParam(r, "order_id"))
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateOrderStatusHandler godoc
//
//	@Summary		Update order status
//	@Description	pending may move to preparing or rejected, preparing may move to completed
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order_id	path		string						true	"Order ID"
//	@Param			payload		body		UpdateOrderStatusPayload	true	"New status"
//	@Success		200			{object}	domain.Order
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Failure		409			{object}	error
//	@Failure		422			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/orders/{order_id}/status [put]
func (app *application) updateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	var payload UpdateOrderStatusPayload
	if err := readJson(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	order, err := app.orderService.UpdateStatus(
		r.Context(),
		chi.URLParam(r, "order_id"),
		domain.OrderStatus(payload.Status),
		actorFromRequest(r),
	)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// orderHistoryHandler godoc
//
//	@Summary	Get the audit trail of an order
//	@Tags		orders
//	@Produce	json
//	@Param		order_id	path		string	true	"Order ID"
//	@Param		limit		query		int		false	"Maximum number of entries"
//	@Success	200			{array}		domain.OrderStatusAudit
//	@Failure	404			{object}	error
//	@Security	ApiKeyAuth
//	@Router		/orders/{order_id}/history [get]
func (app *application) orderHistoryHandler(w http.ResponseWriter, r *http.Request) {
	history, err := app.orderService.History(r.Context(), chi.URLParam(r, "order_id"), queryInt(r, "limit", defaultHistoryLimit))
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, history); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteOrderHandler godoc
//
//	@Summary	Delete an order
//	@Tags		orders
//	@Param		order_id	path	string	true	"Order ID"
//	@Success	204
//	@Failure	404	{object}	error
//	@Security	ApiKeyAuth
//	@Router		/orders/{order_id} [delete]
func (app *application) deleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.orderService.Delete(r.Context(), chi.URLParam(r, "order_id"), actorFromRequest(r)); err != nil {
		app.errorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
