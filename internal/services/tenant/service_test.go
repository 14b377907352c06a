package tenant

import (
	"context"
	"errors"
	"testing"

	"selfcare/internal/logging"
	"selfcare/internal/portal"
	"selfcare/internal/portal/portaltest"
	"selfcare/internal/store"
)

func TestResolve_RejectsInvalidShapesBeforeNetwork(t *testing.T) {
	fake := &portaltest.Fake{}
	sessions := store.NewSessionFileStore(t.TempDir())
	svc := New(fake, sessions, logging.Discard())

	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"single label", "localhost"},
		{"embedded space", "my isp.co.ke"},
		{"underscore", "my_isp.co.ke"},
		{"trailing dot", "myisp.co.ke."},
		{"scheme prefix", "https://myisp.co.ke"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Resolve(context.Background(), tc.input)
			if !errors.Is(err, ErrInvalidDomain) {
				t.Fatalf("Resolve(%q) err = %v, want ErrInvalidDomain", tc.input, err)
			}
		})
	}
	if n := fake.TotalCalls(); n != 0 {
		t.Fatalf("invalid inputs reached the network %d times", n)
	}
}

func TestResolve_PersistsSubmittedStringExactly(t *testing.T) {
	fake := &portaltest.Fake{AllowedMessage: "Successful"}
	sessions := store.NewSessionFileStore(t.TempDir())
	svc := New(fake, sessions, logging.Discard())

	// Mixed case survives: the stored value is what the user typed, not a
	// normalized form.
	resolved, _, err := svc.Resolve(context.Background(), "  My.ISP.co.KE ")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if string(resolved) != "My.ISP.co.KE" {
		t.Fatalf("resolved = %q", resolved)
	}

	stored, ok, err := sessions.Domain()
	if err != nil || !ok {
		t.Fatalf("Domain: ok=%v err=%v", ok, err)
	}
	if string(stored) != "My.ISP.co.KE" {
		t.Fatalf("stored = %q, want the exact submitted string", stored)
	}
	if n := fake.CallCount("AllowedDomain"); n != 1 {
		t.Fatalf("AllowedDomain called %d times", n)
	}
}

func TestResolve_RejectionStoresNothing(t *testing.T) {
	fake := &portaltest.Fake{Err: &portal.APIError{Message: "Domain not recognized"}}
	sessions := store.NewSessionFileStore(t.TempDir())
	svc := New(fake, sessions, logging.Discard())

	_, _, err := svc.Resolve(context.Background(), "unknown.example.com")
	var apiErr *portal.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want APIError", err)
	}
	if _, ok, _ := sessions.Domain(); ok {
		t.Fatal("rejected domain must not be persisted")
	}
}
