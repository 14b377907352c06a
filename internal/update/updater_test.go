package update

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"selfcare/internal/domain"
	"selfcare/internal/logging"
)

func TestCheck_ReportsNewerBuildOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"version":"1.2.0","url":"https://example.com/bin","sha256":"","mandatory":true}`))
	}))
	defer srv.Close()

	cases := []struct {
		running string
		want    bool
	}{
		{"1.1.9", true},
		{"1.2.0", false},
		{"1.3.0", false},
	}
	for _, tc := range cases {
		u := New(srv.URL, tc.running, t.TempDir(), srv.Client(), logging.Discard())
		release, available, err := u.Check(context.Background())
		if err != nil {
			t.Fatalf("Check (running %s): %v", tc.running, err)
		}
		if available != tc.want {
			t.Fatalf("running %s: available = %v, want %v", tc.running, available, tc.want)
		}
		if release.Version != "1.2.0" || !release.Mandatory {
			t.Fatalf("release = %+v", release)
		}
	}
}

func TestFetch_VerifiesDigest(t *testing.T) {
	payload := []byte("new build bytes")
	digest := sha256.Sum256(payload)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	home := t.TempDir()
	u := New("", "1.0.0", home, srv.Client(), logging.Discard())

	staged, err := u.Fetch(context.Background(), domain.Release{
		URL:    srv.URL,
		SHA256: hex.EncodeToString(digest[:]),
	})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	got, err := os.ReadFile(staged)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatal("staged bytes differ from download")
	}
}

func TestFetch_RejectsDigestMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("tampered bytes"))
	}))
	defer srv.Close()

	home := t.TempDir()
	u := New("", "1.0.0", home, srv.Client(), logging.Discard())

	_, err := u.Fetch(context.Background(), domain.Release{
		URL:    srv.URL,
		SHA256: strings.Repeat("ab", 32),
	})
	if err == nil || !strings.Contains(err.Error(), "digest mismatch") {
		t.Fatalf("err = %v, want digest mismatch", err)
	}

	// Nothing stays staged after a failed verification.
	entries, readErr := os.ReadDir(home)
	if readErr != nil {
		t.Fatalf("ReadDir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Fatalf("home still holds %d staged files", len(entries))
	}
}

func TestNewerVersion(t *testing.T) {
	cases := []struct {
		candidate string
		current   string
		want      bool
	}{
		{"1.2.0", "1.1.9", true},
		{"1.2.0", "1.2.0", false},
		{"1.2.0", "1.10.0", false},
		{"2.0", "1.9.9", true},
		{"1.2.0.1", "1.2.0", true},
		{"", "1.0.0", false},
		{"abc", "abd", false},
	}
	for _, tc := range cases {
		if got := newerVersion(tc.candidate, tc.current); got != tc.want {
			t.Fatalf("newerVersion(%q, %q) = %v, want %v", tc.candidate, tc.current, got, tc.want)
		}
	}
}
