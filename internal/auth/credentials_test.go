package auth

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/nexus-commerce/storefront/internal/store"

	"github.com/golang-jwt/jwt/v5"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "creds_test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expiresAt)}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestSaveAndReload(t *testing.T) {
	s := newTestStore(t)
	creds := NewCredentials(s)
	if err := creds.Save("acc", "ref"); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded := NewCredentials(s)
	if reloaded.Access() != "acc" || reloaded.Refresh() != "ref" {
		t.Fatalf("unexpected reloaded credentials: %q %q", reloaded.Access(), reloaded.Refresh())
	}
}

func TestClearRemovesBothKeys(t *testing.T) {
	s := newTestStore(t)
	creds := NewCredentials(s)
	if err := creds.Save("acc", "ref"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := creds.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if creds.Access() != "" || creds.Refresh() != "" {
		t.Fatalf("expected empty credentials after clear")
	}
	reloaded := NewCredentials(s)
	if reloaded.Access() != "" || reloaded.Refresh() != "" {
		t.Fatalf("expected cleared credentials after reload")
	}
}

func TestAccessExpired(t *testing.T) {
	creds := NewCredentials(nil)

	if !creds.AccessExpired(0) {
		t.Fatalf("missing token must count as expired")
	}

	_ = creds.Save(signedToken(t, time.Now().Add(time.Hour)), "ref")
	if creds.AccessExpired(0) {
		t.Fatalf("fresh token must not be expired")
	}
	if !creds.AccessExpired(2 * time.Hour) {
		t.Fatalf("token within leeway must count as expired")
	}

	_ = creds.Save(signedToken(t, time.Now().Add(-time.Minute)), "ref")
	if !creds.AccessExpired(0) {
		t.Fatalf("past-exp token must be expired")
	}
}

func TestAccessExpiredMalformedTokenDefersToBackend(t *testing.T) {
	creds := NewCredentials(nil)
	_ = creds.Save("not-a-jwt", "ref")
	if creds.AccessExpired(0) {
		t.Fatalf("malformed token is left for the backend to reject")
	}
}
