package main

import (
	"net/http"

	"github.com/Beka01247/cafe/internal/domain"
	"github.com/Beka01247/cafe/internal/service"
	"github.com/go-chi/chi"
)

type CategoryResponse struct {
	Categories []domain.Category `json:"categories"`
}

// listMenuHandler godoc
//
//	@Summary		List menu items
//	@Description	Lists the menu, optionally filtered by category and a name search
//	@Tags			menu
//	@Produce		json
//	@Param			category	query		string	false	"Category, or all"
//	@Param			q			query		string	false	"Name search"
//	@Success		200			{array}		domain.FoodItem
//	@Failure		400			{object}	error
//	@Failure		500			{object}	error
//	@Router			/menu [get]
func (app *application) listMenuHandler(w http.ResponseWriter, r *http.Request) {
	filter := service.MenuFilter{
		Category: r.URL.Query().Get("category"),
		Query:    r.URL.Query().Get("q"),
	}

	app.writeMenu(w, r, filter)
}

// menuByCategoryHandler godoc
//
//	@Summary		List menu items of a category
//	@Tags			menu
//	@Produce		json
//	@Param			category	path		string	true	"Category"
//	@Success		200			{array}		domain.FoodItem
//	@Failure		400			{object}	error
//	@Router			/menu/category/{category} [get]
func (app *application) menuByCategoryHandler(w http.ResponseWriter, r *http.Request) {
	app.writeMenu(w, r, service.MenuFilter{Category: chi.URLParam(r, "category")})
}

func (app *application) writeMenu(w http.ResponseWriter, r *http.Request, filter service.MenuFilter) {
	items, err := app.menuService.List(r.Context(), filter)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, items); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listCategoriesHandler godoc
//
//	@Summary	List menu categories
//	@Tags		menu
//	@Produce	json
//	@Success	200	{object}	CategoryResponse
//	@Router		/menu/categories [get]
func (app *application) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	response := CategoryResponse{Categories: app.menuService.Categories()}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// popularMenuHandler godoc
//
//	@Summary	List popular menu items
//	@Tags		menu
//	@Produce	json
//	@Success	200	{array}	domain.FoodItem
//	@Router		/menu/popular [get]
func (app *application) popularMenuHandler(w http.ResponseWriter, r *http.Request) {
	items, err := app.menuService.Popular(r.Context())
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, items); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getMenuItemHandler godoc
//
//	@Summary	Get a menu item
//	@Tags		menu
//	@Produce	json
//	@Param		item_id	path		string	true	"Menu item ID"
//	@Success	200		{object}	domain.FoodItem
//	@Failure	404		{object}	error
//	@Router		/menu/{item_id} [get]
func (app *application) getMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	item, err := app.menuService.Get(r.Context(), chi.URLParam(r, "item_id"))
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, item); err != nil {
		app.internalServerError(w, r, err)
	}
}

type MenuItemPayload struct {
	Name        string              `json:"name" validate:"required,max=100"`
	Description string              `json:"description" validate:"max=500"`
	Price       domain.Money        `json:"price"`
	Category    string              `json:"category" validate:"required"`
	Image       string              `json:"image" validate:"omitempty,max=500"`
	IsVeg       bool                `json:"is_veg"`
	Stock       int                 `json:"stock" validate:"gte=0"`
	Popular     bool                `json:"popular"`
	Options     []domain.FoodOption `json:"options"`
}

func (p MenuItemPayload) toDomain() (domain.FoodItem, error) {
	category, ok := domain.ParseCategory(p.Category)
	if !ok {
		return domain.FoodItem{}, domain.NewValidationError("category", "unknown category "+p.Category)
	}

	return domain.FoodItem{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    category,
		Image:       p.Image,
		IsVeg:       p.IsVeg,
		Stock:       p.Stock,
		Popular:     p.Popular,
		Options:     p.Options,
	}, nil
}

func (app *application) readMenuItem(w http.ResponseWriter, r *http.Request) (domain.FoodItem, bool) {
	var payload MenuItemPayload
	if err := readJson(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return domain.FoodItem{}, false
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return domain.FoodItem{}, false
	}

	item, err := payload.toDomain()
	if err != nil {
		app.badRequestResponse(w, r, err)
		return domain.FoodItem{}, false
	}
	return item, true
}

// createMenuItemHandler godoc
//
//	@Summary	Create a menu item
//	@Tags		menu
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		MenuItemPayload	true	"Menu item"
//	@Success	201		{object}	domain.FoodItem
//	@Failure	400		{object}	error
//	@Failure	405		{object}	error
//	@Security	ApiKeyAuth
//	@Router		/menu [post]
func (app *application) createMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	item, ok := app.readMenuItem(w, r)
	if !ok {
		return
	}

	created, err := app.menuService.Create(r.Context(), item)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, created); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateMenuItemHandler godoc
//
//	@Summary	Replace a menu item
//	@Tags		menu
//	@Accept		json
//	@Produce	json
//	@Param		item_id	path		string			true	"Menu item ID"
//	@Param		payload	body		MenuItemPayload	true	"Menu item"
//	@Success	200		{object}	domain.FoodItem
//	@Failure	400		{object}	error
//	@Failure	404		{object}	error
//	@Security	ApiKeyAuth
//	@Router		/menu/{item_id} [put]
func (app *application) updateMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	item, ok := app.readMenuItem(w, r)
	if !ok {
		return
	}

	updated, err := app.menuService.Update(r.Context(), chi.URLParam(r, "item_id"), item)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, updated); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteMenuItemHandler godoc
//
//	@Summary	Delete a menu item
//	@Tags		menu
//	@Param		item_id	path	string	true	"Menu item ID"
//	@Success	204
//	@Failure	404	{object}	error
//	@Security	ApiKeyAuth
//	@Router		/menu/{item_id} [delete]
func (app *application) deleteMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.menuService.Delete(r.Context(), chi.URLParam(r, "item_id")); err != nil {
		app.errorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
