package controllers

import (
	"net/http"

	"github.com/memberhubhq/memberhub-backend/api/middleware"
	"github.com/memberhubhq/memberhub-backend/api/responses"
	"github.com/memberhubhq/memberhub-backend/api/validators"
	"github.com/memberhubhq/memberhub-backend/internal/auth"
	pkgauth "github.com/memberhubhq/memberhub-backend/pkg/auth"
	"github.com/memberhubhq/memberhub-backend/pkg/config"
	pkgerrors "github.com/memberhubhq/memberhub-backend/pkg/errors"
	"github.com/memberhubhq/memberhub-backend/pkg/logger"
)

// Register creates a member account.
func Register(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var payload auth.RegisterInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := svc.Register(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteMessage(w, http.StatusCreated, "Member registered successfully", id)
	}
}

// Login authenticates a member and starts a session. The minted pair travels
// both in the body and as cookies.
func Login(svc auth.Service, jwtCfg config.JWTConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var payload auth.LoginInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp, pair, err := svc.Login(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		pkgauth.SetSessionCookies(w, jwtCfg, pair.AccessToken, pair.RefreshToken)
		responses.WriteSuccess(w, resp)
	}
}

// Logout revokes the caller's session and clears the cookies.
func Logout(svc auth.Service, jwtCfg config.JWTConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		if err := svc.Logout(r.Context(), middleware.AccessIDFromContext(r.Context())); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		pkgauth.ClearSessionCookies(w, jwtCfg)
		responses.WriteMessage(w, http.StatusOK, "Logged out", 0)
	}
}

// Refresh rotates the session named by the stale access token cookie.
func Refresh(svc auth.Service, jwtCfg config.JWTConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		staleToken := pkgauth.ReadSessionCookie(r, pkgauth.AccessTokenCookie)
		refreshToken := pkgauth.ReadSessionCookie(r, pkgauth.RefreshTokenCookie)

		resp, pair, err := svc.Refresh(r.Context(), staleToken, refreshToken)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		pkgauth.SetSessionCookies(w, jwtCfg, pair.AccessToken, pair.RefreshToken)
		responses.WriteSuccess(w, resp)
	}
}
