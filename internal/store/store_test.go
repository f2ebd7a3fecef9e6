package store

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "store_test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestGetMissingKey(t *testing.T) {
	s, _ := openTestStore(t)
	value, found, err := s.Get("nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found || value != nil {
		t.Fatalf("expected missing key, got found=%v value=%q", found, value)
	}
}

func TestPutGetOverwrite(t *testing.T) {
	s, _ := openTestStore(t)
	if err := s.Put("k", []byte("v1")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Put("k", []byte("v2")); err != nil {
		t.Fatalf("put overwrite: %v", err)
	}
	value, found, err := s.Get("k")
	if err != nil || !found {
		t.Fatalf("get: found=%v err=%v", found, err)
	}
	if string(value) != "v2" {
		t.Fatalf("expected v2, got %q", value)
	}
}

func TestDeleteMissingKeyIsNoop(t *testing.T) {
	s, _ := openTestStore(t)
	if err := s.Delete("nope"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
}

func TestPersistAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen_test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Put("k", []byte("v")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	value, found, err := reopened.Get("k")
	if err != nil || !found || string(value) != "v" {
		t.Fatalf("expected persisted value, got found=%v value=%q err=%v", found, value, err)
	}
}
