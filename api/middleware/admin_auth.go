package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/mayarosales/cakecafe-backend/api/responses"
	pkgerrors "github.com/mayarosales/cakecafe-backend/pkg/errors"
	"github.com/mayarosales/cakecafe-backend/pkg/logger"
)

// AdminCookieName carries the admin session token, the sha256 hex digest
// of the configured admin password.
const AdminCookieName = "cc_admin"

// AdminCookieMaxAge matches the storefront's 14-day session.
const AdminCookieMaxAge = 14 * 24 * 60 * 60

// AdminTokenFor derives the cookie value for the configured password.
func AdminTokenFor(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// AdminAuth guards the admin API with the shared-secret cookie. An unset
// password opens the API in dev and closes it everywhere else.
func AdminAuth(password string, isDev bool, logg *logger.Logger) func(http.Handler) http.Handler {
	password = strings.TrimSpace(password)
	var expected string
	if password != "" {
		expected = AdminTokenFor(password)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if expected == "" {
				if isDev {
					next.ServeHTTP(w, r)
					return
				}
				if logg != nil {
					logg.Warn(ctx, "admin.auth.password_unset")
				}
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "admin access is not configured"))
				return
			}

			cookie, err := r.Cookie(AdminCookieName)
			if err != nil || subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(expected)) != 1 {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "admin authentication required"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
