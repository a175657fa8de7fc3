package main

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/Beka01247/cafe/internal/domain"
	"github.com/google/uuid"
)

const (
	cartCookieName   = "cart_session"
	adminCookieName  = "admin_session"
	cartCookieMaxAge = 30 * 24 * 60 * 60
)

type adminKey string

const adminCtx adminKey = "admin"

func (app *application) RateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.config.rateLimiter.Enabled {
			if allow, retryAfter := app.rateLimiter.Allow(clientHost(r)); !allow {
				app.rateLimitExceededResponse(w, r, retryAfter)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// clientHost strips the port so every connection from one address shares a
// rate limit bucket.
func clientHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// AdminAuthMiddleware accepts a bearer token or the admin session cookie.
func (app *application) AdminAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := adminToken(r)
		if token == "" {
			app.unauthorizedResponse(w, r, ErrMissingToken)
			return
		}

		session, err := app.authService.Authenticate(r.Context(), token)
		if err != nil {
			app.errorResponse(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), adminCtx, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func adminToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}

	if cookie, err := r.Cookie(adminCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

func getAdminFromCtx(r *http.Request) *domain.AdminSession {
	session, _ := r.Context().Value(adminCtx).(*domain.AdminSession)
	return session
}

func actorFromRequest(r *http.Request) string {
	if session := getAdminFromCtx(r); session != nil {
		return session.Username
	}
	return "admin"
}

// cartSessionID returns the caller's cart session, issuing a new cookie on
// first contact.
func (app *application) cartSessionID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(cartCookieName); err == nil {
		if _, err := uuid.Parse(cookie.Value); err == nil {
			return cookie.Value
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     cartCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   cartCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   app.config.env == "production",
	})
	return id
}
