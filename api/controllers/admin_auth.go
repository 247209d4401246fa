package controllers

import (
	"crypto/subtle"
	"net/http"

	"github.com/mayarosales/cakecafe-backend/api/middleware"
	"github.com/mayarosales/cakecafe-backend/api/responses"
	"github.com/mayarosales/cakecafe-backend/api/validators"
	"github.com/mayarosales/cakecafe-backend/pkg/config"
	pkgerrors "github.com/mayarosales/cakecafe-backend/pkg/errors"
	"github.com/mayarosales/cakecafe-backend/pkg/logger"
)

type adminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// AdminLogin exchanges the shared admin password for the session cookie.
func AdminLogin(cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if cfg.Admin.Password == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "admin access is not configured"))
			return
		}

		var req adminLoginRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if subtle.ConstantTimeCompare([]byte(req.Password), []byte(cfg.Admin.Password)) != 1 {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "wrong password"))
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.AdminCookieName,
			Value:    middleware.AdminTokenFor(cfg.Admin.Password),
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			Secure:   cfg.App.IsProd(),
			MaxAge:   middleware.AdminCookieMaxAge,
		})
		responses.WriteSuccess(w, map[string]bool{"ok": true})
	}
}

// AdminLogout clears the admin session cookie.
func AdminLogout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     middleware.AdminCookieName,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,
		})
		responses.WriteSuccess(w, map[string]bool{"ok": true})
	}
}
