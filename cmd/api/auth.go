package main

import (
	"net/http"
	"time"
)

type LoginPayload struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=72"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// loginHandler godoc
//
//	@Summary		Admin login
//	@Description	Issues a session token, also set as the admin_session cookie
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		LoginPayload	true	"Credentials"
//	@Success		200		{object}	LoginResponse
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Router			/admin/login [post]
func (app *application) loginHandler(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := readJson(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	session, err := app.authService.Login(r.Context(), payload.Username, payload.Password)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     adminCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   app.config.env == "production",
	})

	response := LoginResponse{
		Token:     session.Token,
		Username:  session.Username,
		ExpiresAt: session.ExpiresAt,
	}
	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// logoutHandler godoc
//
//	@Summary	Admin logout
//	@Tags		admin
//	@Success	204
//	@Failure	401	{object}	error
//	@Security	ApiKeyAuth
//	@Router		/admin/logout [post]
func (app *application) logoutHandler(w http.ResponseWriter, r *http.Request) {
	if session := getAdminFromCtx(r); session != nil {
		if err := app.authService.Logout(r.Context(), session.Token); err != nil {
			app.errorResponse(w, r, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     adminCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	w.WriteHeader(http.StatusNoContent)
}

// statsHandler godoc
//
//	@Summary		Admin dashboard
//	@Description	Accepted order count and revenue, pending orders, menu size and the latest orders
//	@Tags			admin
//	@Produce		json
//	@Success		200	{object}	service.DashboardStats
//	@Failure		401	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/stats [get]
func (app *application) statsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := app.orderService.Stats(r.Context())
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, stats); err != nil {
		app.internalServerError(w, r, err)
	}
}
