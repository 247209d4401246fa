package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mayarosales/cakecafe-backend/api/middleware"
	"github.com/mayarosales/cakecafe-backend/pkg/config"
)

func adminConfig(password string) *config.Config {
	return &config.Config{
		App:   config.AppConfig{Env: "dev"},
		Admin: config.AdminConfig{Password: password},
	}
}

func TestAdminLoginSetsCookie(t *testing.T) {
	handler := AdminLogin(adminConfig("hunter2"), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/auth/login", strings.NewReader(`{"password":"hunter2"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, middleware.AdminCookieName, cookies[0].Name)
	require.Equal(t, middleware.AdminTokenFor("hunter2"), cookies[0].Value)
	require.True(t, cookies[0].HttpOnly)
}

func TestAdminLoginWrongPassword(t *testing.T) {
	handler := AdminLogin(adminConfig("hunter2"), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/auth/login", strings.NewReader(`{"password":"guess"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Empty(t, rec.Result().Cookies())
}

func TestAdminLoginUnconfigured(t *testing.T) {
	handler := AdminLogin(adminConfig(""), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/auth/login", strings.NewReader(`{"password":"x"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminLogoutClearsCookie(t *testing.T) {
	handler := AdminLogout()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/auth/logout", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, middleware.AdminCookieName, cookies[0].Name)
	require.Empty(t, cookies[0].Value)
	require.Negative(t, cookies[0].MaxAge)
}
