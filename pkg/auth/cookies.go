package auth

import (
	"net/http"
	"time"

	"github.com/memberhubhq/memberhub-backend/pkg/config"
)

const (
	// AccessTokenCookie carries the signed JWT.
	AccessTokenCookie = "access_token"
	// RefreshTokenCookie carries the opaque refresh token.
	RefreshTokenCookie = "refresh_token"
)

// SetSessionCookies writes the access and refresh cookies with TTLs from config.
func SetSessionCookies(w http.ResponseWriter, cfg config.JWTConfig, accessToken, refreshToken string) {
	http.SetCookie(w, sessionCookie(cfg, AccessTokenCookie, accessToken, cfg.AccessTokenTTL()))
	http.SetCookie(w, sessionCookie(cfg, RefreshTokenCookie, refreshToken, cfg.RefreshTokenTTL()))
}

// ClearSessionCookies expires both session cookies on the client.
func ClearSessionCookies(w http.ResponseWriter, cfg config.JWTConfig) {
	http.SetCookie(w, expiredCookie(cfg, AccessTokenCookie))
	http.SetCookie(w, expiredCookie(cfg, RefreshTokenCookie))
}

// ReadSessionCookie returns the named cookie value, or "" when absent.
func ReadSessionCookie(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func sessionCookie(cfg config.JWTConfig, name, value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteNoneMode,
	}
}

func expiredCookie(cfg config.JWTConfig, name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteNoneMode,
	}
}
