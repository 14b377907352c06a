package auth

import (
	"context"
	"errors"
	"testing"

	"selfcare/internal/logging"
	"selfcare/internal/portal"
	"selfcare/internal/portal/portaltest"
	"selfcare/internal/store"
)

func TestLogin_PersistsToken(t *testing.T) {
	fake := &portaltest.Fake{LoginToken: "tok-123", Message: "Welcome back"}
	sessions := store.NewSessionFileStore(t.TempDir())
	svc := New(fake, sessions, logging.Discard())

	message, err := svc.Login(context.Background(), "alice", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if message != "Welcome back" {
		t.Fatalf("message = %q", message)
	}

	token, ok, err := sessions.Token()
	if err != nil || !ok {
		t.Fatalf("Token: ok=%v err=%v", ok, err)
	}
	if string(token) != "tok-123" {
		t.Fatalf("token = %q", token)
	}
}

func TestLogin_EmptyCredentialsNeverReachNetwork(t *testing.T) {
	fake := &portaltest.Fake{}
	sessions := store.NewSessionFileStore(t.TempDir())
	svc := New(fake, sessions, logging.Discard())

	for _, creds := range [][2]string{{"", "secret"}, {"alice", ""}, {"", ""}} {
		if _, err := svc.Login(context.Background(), creds[0], creds[1]); !errors.Is(err, ErrMissingCredentials) {
			t.Fatalf("Login(%q, %q) err = %v", creds[0], creds[1], err)
		}
	}
	if n := fake.TotalCalls(); n != 0 {
		t.Fatalf("empty credentials reached the network %d times", n)
	}
}

func TestLogin_FailureStoresNothing(t *testing.T) {
	fake := &portaltest.Fake{Err: &portal.APIError{Message: "Invalid credentials"}}
	sessions := store.NewSessionFileStore(t.TempDir())
	svc := New(fake, sessions, logging.Discard())

	if _, err := svc.Login(context.Background(), "alice", "wrong"); err == nil {
		t.Fatal("expected login failure")
	}
	if _, ok, _ := sessions.Token(); ok {
		t.Fatal("failed login must not persist a token")
	}
}

func TestLogout_KeepsDomain(t *testing.T) {
	fake := &portaltest.Fake{LoginToken: "tok"}
	sessions := store.NewSessionFileStore(t.TempDir())
	if err := sessions.SaveDomain("myisp.co.ke"); err != nil {
		t.Fatalf("SaveDomain: %v", err)
	}
	svc := New(fake, sessions, logging.Discard())

	if _, err := svc.Login(context.Background(), "alice", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := svc.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	if _, ok, _ := sessions.Token(); ok {
		t.Fatal("token must be gone after logout")
	}
	if _, ok, _ := sessions.Domain(); !ok {
		t.Fatal("tenant domain must survive logout")
	}
}
