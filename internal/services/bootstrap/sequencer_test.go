package bootstrap

import (
	"context"
	"errors"
	"testing"

	"selfcare/internal/domain"
	"selfcare/internal/logging"
	"selfcare/internal/store"
)

// fakeUpdater serves a canned check result.
type fakeUpdater struct {
	release   domain.Release
	available bool
	err       error
}

func (f *fakeUpdater) Check(context.Context) (domain.Release, bool, error) {
	return f.release, f.available, f.err
}
func (f *fakeUpdater) Fetch(context.Context, domain.Release) (string, error) { return "", nil }
func (f *fakeUpdater) Apply(string) error                                    { return nil }

// brokenStore fails every read, standing in for corrupt local storage.
type brokenStore struct{ domain.SessionStore }

func (brokenStore) Domain() (domain.Domain, bool, error) {
	return "", false, errors.New("storage corrupt")
}
func (brokenStore) Token() (domain.Token, bool, error) {
	return "", false, errors.New("storage corrupt")
}

func TestRun_Routing(t *testing.T) {
	cases := []struct {
		name   string
		domain string
		token  string
		want   State
	}{
		{"fresh install", "", "", RouteDomain},
		{"domain only", "myisp.co.ke", "", RouteLogin},
		{"full session", "myisp.co.ke", "tok", RouteHome},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sessions := store.NewSessionFileStore(t.TempDir())
			if tc.domain != "" {
				if err := sessions.SaveDomain(domain.Domain(tc.domain)); err != nil {
					t.Fatalf("SaveDomain: %v", err)
				}
			}
			if tc.token != "" {
				if err := sessions.SaveToken(domain.Token(tc.token)); err != nil {
					t.Fatalf("SaveToken: %v", err)
				}
			}

			decision := New(sessions, nil, logging.Discard()).Run(context.Background())
			if decision.State != tc.want {
				t.Fatalf("state = %v, want %v", decision.State, tc.want)
			}
			if tc.want != RouteDomain && string(decision.Domain) != tc.domain {
				t.Fatalf("decision domain = %q, want %q", decision.Domain, tc.domain)
			}
		})
	}
}

func TestRun_AvailableUpdatePreemptsSession(t *testing.T) {
	sessions := store.NewSessionFileStore(t.TempDir())
	if err := sessions.SaveDomain("myisp.co.ke"); err != nil {
		t.Fatalf("SaveDomain: %v", err)
	}
	if err := sessions.SaveToken("tok"); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}
	updater := &fakeUpdater{release: domain.Release{Version: "9.9.9"}, available: true}

	decision := New(sessions, updater, logging.Discard()).Run(context.Background())
	if decision.State != RouteUpdate {
		t.Fatalf("state = %v, want RouteUpdate even with a full session", decision.State)
	}
	if decision.Release.Version != "9.9.9" {
		t.Fatalf("release = %+v", decision.Release)
	}
}

func TestRun_UpdateCheckFailureIsNonFatal(t *testing.T) {
	sessions := store.NewSessionFileStore(t.TempDir())
	if err := sessions.SaveDomain("myisp.co.ke"); err != nil {
		t.Fatalf("SaveDomain: %v", err)
	}
	updater := &fakeUpdater{err: errors.New("manifest unreachable")}

	decision := New(sessions, updater, logging.Discard()).Run(context.Background())
	if decision.State != RouteLogin {
		t.Fatalf("state = %v, want RouteLogin past the dead update channel", decision.State)
	}
}

func TestRun_StorageFailureFallsBackToDomain(t *testing.T) {
	decision := New(brokenStore{}, nil, logging.Discard()).Run(context.Background())
	if decision.State != RouteDomain {
		t.Fatalf("state = %v, want RouteDomain on unreadable storage", decision.State)
	}
}
