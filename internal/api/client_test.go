package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type stubTokens struct {
	access  string
	refresh string
	expired bool
	saves   int
	clears  int
}

func (s *stubTokens) Access() string  { return s.access }
func (s *stubTokens) Refresh() string { return s.refresh }

func (s *stubTokens) AccessExpired(leeway time.Duration) bool { return s.expired }

func (s *stubTokens) Save(access, refresh string) error {
	s.access = access
	s.refresh = refresh
	s.expired = false
	s.saves++
	return nil
}

func (s *stubTokens) Clear() error {
	s.access = ""
	s.refresh = ""
	s.clears++
	return nil
}

func newTestClient(serverURL string, tokens TokenSource) *Client {
	return New(serverURL, 5*time.Second, tokens)
}

func TestErrorMessageFieldMap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"email": ["This field is required."], "password": "Too short."}`))
	}))
	defer server.Close()

	err := newTestClient(server.URL, nil).get(context.Background(), "/auth/me/", nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	want := "email: This field is required.; password: Too short."
	if err.Error() != want {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestErrorMessageDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail": "Not found."}`))
	}))
	defer server.Close()

	err := newTestClient(server.URL, nil).get(context.Background(), "/catalog/products/x/", nil)
	if err == nil || err.Error() != "Not found." {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestErrorMessageFallsBackToStatusText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	err := newTestClient(server.URL, nil).get(context.Background(), "/cart/", nil)
	if err == nil || err.Error() != "API error: Service Unavailable" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRefreshRetrySucceeds(t *testing.T) {
	refreshCalls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/token/refresh/":
			refreshCalls++
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["refresh"] != "refresh-1" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"access": "access-2"})
		case "/auth/me/":
			if r.Header.Get("Authorization") != "Bearer access-2" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"detail": "Token expired."}`))
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"email": "a@b.com"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	tokens := &stubTokens{access: "access-1", refresh: "refresh-1"}
	var out struct {
		Email string `json:"email"`
	}
	if err := newTestClient(server.URL, tokens).get(context.Background(), "/auth/me/", &out); err != nil {
		t.Fatalf("expected success after refresh, got %v", err)
	}
	if refreshCalls != 1 {
		t.Fatalf("expected exactly one refresh, got %d", refreshCalls)
	}
	if tokens.access != "access-2" {
		t.Fatalf("expected new access token saved, got %q", tokens.access)
	}
	// 后端未轮换 refresh token 时保留旧值
	if tokens.refresh != "refresh-1" {
		t.Fatalf("expected refresh token preserved, got %q", tokens.refresh)
	}
	if out.Email != "a@b.com" {
		t.Fatalf("unexpected response: %+v", out)
	}
}

func TestRefreshFailureClearsCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/token/refresh/" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail": "Refresh token invalid."}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Token expired."}`))
	}))
	defer server.Close()

	tokens := &stubTokens{access: "stale", refresh: "stale-refresh"}
	err := newTestClient(server.URL, tokens).get(context.Background(), "/auth/me/", nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	// 向调用方返回最初的 401 错误，不是刷新请求的错误
	if err.Error() != "Token expired." {
		t.Fatalf("expected original error surfaced, got %q", err.Error())
	}
	if tokens.clears == 0 {
		t.Fatalf("expected credentials cleared")
	}
}

func TestRetryStill401NoSecondRefresh(t *testing.T) {
	refreshCalls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/token/refresh/" {
			refreshCalls++
			_ = json.NewEncoder(w).Encode(map[string]string{"access": "access-2"})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Token expired."}`))
	}))
	defer server.Close()

	tokens := &stubTokens{access: "access-1", refresh: "refresh-1"}
	err := newTestClient(server.URL, tokens).get(context.Background(), "/auth/me/", nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if refreshCalls != 1 {
		t.Fatalf("expected exactly one refresh attempt, got %d", refreshCalls)
	}
	if err.Error() != "Token expired." {
		t.Fatalf("expected original error surfaced, got %q", err.Error())
	}
	if tokens.clears == 0 {
		t.Fatalf("expected credentials cleared after retry failure")
	}
}

func TestNoRefreshWithoutRefreshToken(t *testing.T) {
	refreshCalls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/token/refresh/" {
			refreshCalls++
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Auth required."}`))
	}))
	defer server.Close()

	tokens := &stubTokens{}
	err := newTestClient(server.URL, tokens).get(context.Background(), "/cart/orders/", nil)
	if err == nil || err.Error() != "Auth required." {
		t.Fatalf("unexpected error: %v", err)
	}
	if refreshCalls != 0 {
		t.Fatalf("expected no refresh without a refresh token")
	}
}

func TestExpiredTokenRefreshedBeforeRequest(t *testing.T) {
	refreshCalls := 0
	staleRequests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/token/refresh/":
			refreshCalls++
			_ = json.NewEncoder(w).Encode(map[string]string{"access": "access-2"})
		case "/auth/me/":
			if r.Header.Get("Authorization") != "Bearer access-2" {
				staleRequests++
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"detail": "Token expired."}`))
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"email": "a@b.com"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	tokens := &stubTokens{access: "access-1", refresh: "refresh-1", expired: true}
	if err := newTestClient(server.URL, tokens).get(context.Background(), "/auth/me/", nil); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	// 过期的 token 不应到达受保护端点
	if staleRequests != 0 {
		t.Fatalf("expected stale token never sent, got %d requests", staleRequests)
	}
	if refreshCalls != 1 {
		t.Fatalf("expected exactly one refresh, got %d", refreshCalls)
	}
	if tokens.access != "access-2" {
		t.Fatalf("expected new access token saved, got %q", tokens.access)
	}
}

func TestExpiredTokenRefreshThen401NoSecondRefresh(t *testing.T) {
	refreshCalls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/token/refresh/" {
			refreshCalls++
			_ = json.NewEncoder(w).Encode(map[string]string{"access": "access-2"})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Token expired."}`))
	}))
	defer server.Close()

	tokens := &stubTokens{access: "access-1", refresh: "refresh-1", expired: true}
	err := newTestClient(server.URL, tokens).get(context.Background(), "/auth/me/", nil)
	if err == nil || err.Error() != "Token expired." {
		t.Fatalf("expected original error surfaced, got %v", err)
	}
	if refreshCalls != 1 {
		t.Fatalf("expected exactly one refresh attempt, got %d", refreshCalls)
	}
	if tokens.clears == 0 {
		t.Fatalf("expected credentials cleared")
	}
}

func TestIdempotencyKeyHeaderSent(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("Idempotency-Key")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"order_id": "ord-1", "total": "10.00"})
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)
	if _, err := client.CreateGuestOrder(context.Background(), CheckoutPayload{ShippingCity: "Rabat"}, "key-123"); err != nil {
		t.Fatalf("CreateGuestOrder: %v", err)
	}
	if gotKey != "key-123" {
		t.Fatalf("expected idempotency key header, got %q", gotKey)
	}
}
