package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/memberhubhq/memberhub-backend/internal/auth"
	"github.com/memberhubhq/memberhub-backend/pkg/config"
	pkgerrors "github.com/memberhubhq/memberhub-backend/pkg/errors"
)

type stubAuthService struct {
	registerID  int64
	registerErr error
	loginResp   *auth.LoginResponse
	loginPair   *auth.TokenPair
	loginErr    error
	refreshResp *auth.RefreshResponse
	refreshPair *auth.TokenPair
	refreshErr  error

	loggedOut []string
}

func (s *stubAuthService) Register(ctx context.Context, input auth.RegisterInput) (int64, error) {
	return s.registerID, s.registerErr
}

func (s *stubAuthService) Login(ctx context.Context, input auth.LoginInput) (*auth.LoginResponse, *auth.TokenPair, error) {
	return s.loginResp, s.loginPair, s.loginErr
}

func (s *stubAuthService) Logout(ctx context.Context, accessID string) error {
	s.loggedOut = append(s.loggedOut, accessID)
	return nil
}

func (s *stubAuthService) Refresh(ctx context.Context, staleToken, refreshToken string) (*auth.RefreshResponse, *auth.TokenPair, error) {
	return s.refreshResp, s.refreshPair, s.refreshErr
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:                 "secret",
		Issuer:                 "issuer",
		ExpirationMinutes:      60,
		RefreshTokenTTLMinutes: 120,
	}
}

func cookieByName(resp *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range resp.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestRegisterSuccess(t *testing.T) {
	handler := Register(&stubAuthService{registerID: 51}, nil)
	body := `{"member_name":"Dana","email":"dana@example.com","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}

	var payload struct {
		Message string `json:"message"`
		ID      int64  `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Message != "Member registered successfully" || payload.ID != 51 {
		t.Fatalf("unexpected acknowledgement %+v", payload)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := &stubAuthService{
		registerErr: pkgerrors.New(pkgerrors.CodeConflict, "Email already registered"),
	}
	handler := Register(svc, nil)
	body := `{"member_name":"Dana","email":"dana@example.com","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Error != "Email already registered" {
		t.Fatalf("unexpected error %q", payload.Error)
	}
}

func TestLoginSetsSessionCookies(t *testing.T) {
	svc := &stubAuthService{
		loginResp: &auth.LoginResponse{
			Message: "Login successful",
			Member: auth.LoginMember{
				ID:     3,
				Name:   "Dana",
				Email:  "dana@example.com",
				Role:   "Member",
				Status: "active",
			},
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
		},
		loginPair: &auth.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"},
	}
	handler := Login(svc, testJWTConfig(), nil)
	body := `{"email":"dana@example.com","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	access := cookieByName(resp, "access_token")
	if access == nil || access.Value != "access-token" || !access.HttpOnly {
		t.Fatalf("unexpected access cookie %+v", access)
	}
	refresh := cookieByName(resp, "refresh_token")
	if refresh == nil || refresh.Value != "refresh-token" {
		t.Fatalf("unexpected refresh cookie %+v", refresh)
	}

	var payload auth.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Message != "Login successful" || payload.Member.Email != "dana@example.com" {
		t.Fatalf("unexpected body %+v", payload)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := &stubAuthService{
		loginErr: pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid email or password"),
	}
	handler := Login(svc, testJWTConfig(), nil)
	body := `{"email":"dana@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
	if len(resp.Result().Cookies()) != 0 {
		t.Fatal("no cookies should be set on failed login")
	}
}

func TestLogoutClearsSessionCookies(t *testing.T) {
	svc := &stubAuthService{}
	handler := Logout(svc, testJWTConfig(), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	access := cookieByName(resp, "access_token")
	if access == nil || access.Value != "" || access.MaxAge != -1 {
		t.Fatalf("access cookie not cleared: %+v", access)
	}
	refresh := cookieByName(resp, "refresh_token")
	if refresh == nil || refresh.MaxAge != -1 {
		t.Fatalf("refresh cookie not cleared: %+v", refresh)
	}
}

func TestRefreshRotatesCookies(t *testing.T) {
	svc := &stubAuthService{
		refreshResp: &auth.RefreshResponse{
			Message:      "Token refreshed",
			AccessToken:  "next-access",
			RefreshToken: "next-refresh",
		},
		refreshPair: &auth.TokenPair{AccessToken: "next-access", RefreshToken: "next-refresh"},
	}
	handler := Refresh(svc, testJWTConfig(), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: "stale"})
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "old-refresh"})
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	access := cookieByName(resp, "access_token")
	if access == nil || access.Value != "next-access" {
		t.Fatalf("access cookie not rotated: %+v", access)
	}
}

func TestRefreshRejectsInvalidSession(t *testing.T) {
	svc := &stubAuthService{
		refreshErr: pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid refresh token"),
	}
	handler := Refresh(svc, testJWTConfig(), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}
