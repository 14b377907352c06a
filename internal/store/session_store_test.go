package store_test

import (
	"testing"

	"selfcare/internal/domain"
	"selfcare/internal/store"
)

func TestSession_SetGetRemove_OK(t *testing.T) {
	home := t.TempDir()

	var s domain.SessionStore = store.NewSessionFileStore(home)

	if _, ok, err := s.Get(store.KeyDomain); err != nil || ok {
		t.Fatalf("fresh store: got ok=%v err=%v, want absent", ok, err)
	}

	if err := s.Set(store.KeyDomain, "tenant.example.com"); err != nil {
		t.Fatalf("set domain: %v", err)
	}
	v, ok, err := s.Get(store.KeyDomain)
	if err != nil || !ok {
		t.Fatalf("get domain: ok=%v err=%v", ok, err)
	}
	if v != "tenant.example.com" {
		t.Fatalf("get domain: got %q", v)
	}

	if err := s.Remove(store.KeyDomain); err != nil {
		t.Fatalf("remove domain: %v", err)
	}
	if _, ok, _ := s.Get(store.KeyDomain); ok {
		t.Fatal("domain still present after remove")
	}
	// Removing again must not error.
	if err := s.Remove(store.KeyDomain); err != nil {
		t.Fatalf("second remove: %v", err)
	}
}

func TestSession_TypedAccessors(t *testing.T) {
	home := t.TempDir()
	s := store.NewSessionFileStore(home)

	if err := s.SaveDomain("isp.example.net"); err != nil {
		t.Fatalf("save domain: %v", err)
	}
	if err := s.SaveToken("tok-123"); err != nil {
		t.Fatalf("save token: %v", err)
	}

	d, ok, err := s.Domain()
	if err != nil || !ok || d != "isp.example.net" {
		t.Fatalf("domain: got %q ok=%v err=%v", d, ok, err)
	}
	tok, ok, err := s.Token()
	if err != nil || !ok || tok != "tok-123" {
		t.Fatalf("token: got %q ok=%v err=%v", tok, ok, err)
	}

	// Logout clears only the token.
	if err := s.ClearToken(); err != nil {
		t.Fatalf("clear token: %v", err)
	}
	if _, ok, _ := s.Token(); ok {
		t.Fatal("token survived ClearToken")
	}
	if _, ok, _ := s.Domain(); !ok {
		t.Fatal("domain lost by ClearToken")
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := s.Domain(); ok {
		t.Fatal("domain survived Clear")
	}
}

func TestSession_SurvivesReopen(t *testing.T) {
	home := t.TempDir()

	first := store.NewSessionFileStore(home)
	if err := first.SaveDomain("tenant.example.com"); err != nil {
		t.Fatalf("save: %v", err)
	}

	second := store.NewSessionFileStore(home)
	d, ok, err := second.Domain()
	if err != nil || !ok || d != "tenant.example.com" {
		t.Fatalf("reopen: got %q ok=%v err=%v", d, ok, err)
	}
}
