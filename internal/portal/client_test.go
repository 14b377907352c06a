package portal_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"selfcare/internal/domain"
	"selfcare/internal/logging"
	"selfcare/internal/portal"
	"selfcare/internal/store"
)

// newClient wires a portal client against an httptest tenant server. The
// stored domain carries the server's http:// base so requests stay local.
func newClient(t *testing.T, tenant *httptest.Server, allowlist string) (*portal.Client, *store.SessionFileStore) {
	t.Helper()
	sessions := store.NewSessionFileStore(t.TempDir())
	if tenant != nil {
		if err := sessions.SaveDomain(domain.Domain(tenant.URL)); err != nil {
			t.Fatalf("save domain: %v", err)
		}
	}
	return portal.New(allowlist, sessions, http.DefaultClient, logging.Discard()), sessions
}

func TestAllowedDomain_SentinelOnly(t *testing.T) {
	tests := []struct {
		name string
		body string
		ok   bool
	}{
		{"sentinel", `{"message":"Domain allowed","data":"Successful"}`, true},
		{"other string", `{"message":"ok","data":"Allowed"}`, false},
		{"boolean success shape", `{"success":true,"message":"ok","data":{}}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/app/allowed" {
					t.Errorf("path = %q", r.URL.Path)
				}
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c, _ := newClient(t, nil, srv.URL)
			msg, err := c.AllowedDomain(context.Background(), "tenant.example.com")
			if tt.ok {
				if err != nil {
					t.Fatalf("allowed domain: %v", err)
				}
				if msg != "Domain allowed" {
					t.Fatalf("message = %q", msg)
				}
				return
			}
			var apiErr *portal.APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("want APIError, got %v", err)
			}
		})
	}
}

func TestLogin_SuccessReturnsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/login" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"success":true,"message":"Welcome back","data":{"token":"tok-abc"}}`))
	}))
	defer srv.Close()

	c, _ := newClient(t, srv, "http://allowlist.invalid")
	token, msg, err := c.Login(context.Background(), "user", "pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token != "tok-abc" || msg != "Welcome back" {
		t.Fatalf("got token=%q msg=%q", token, msg)
	}
}

func TestLogin_ApplicationFailureIsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"Invalid username or password","data":null}`))
	}))
	defer srv.Close()

	c, _ := newClient(t, srv, "http://allowlist.invalid")
	_, _, err := c.Login(context.Background(), "user", "bad")
	var apiErr *portal.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("want APIError, got %v", err)
	}
	if apiErr.UserMessage() != "Invalid username or password" {
		t.Fatalf("user message = %q", apiErr.UserMessage())
	}
}

func TestDo_TransportDistinctFromApplicationFailure(t *testing.T) {
	// A non-2xx with an unparseable body must classify as transport, so
	// payment flows can tell "rejected" apart from "unknown outcome".
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream down</html>"))
	}))
	defer srv.Close()

	c, sessions := newClient(t, srv, "http://allowlist.invalid")
	if err := sessions.SaveToken("tok"); err != nil {
		t.Fatalf("save token: %v", err)
	}
	_, err := c.ConfirmPayment(context.Background(), "QAX12345")
	var transportErr *portal.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("want TransportError, got %v", err)
	}
	var apiErr *portal.APIError
	if errors.As(err, &apiErr) {
		t.Fatal("transport failure must not classify as APIError")
	}
}

func TestValidationMap_FirstFieldFirstMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"The given data was invalid.","errors":{"telephone":["The telephone must start with 0."],"amount":["The amount is required."]}}`))
	}))
	defer srv.Close()

	c, sessions := newClient(t, srv, "http://allowlist.invalid")
	if err := sessions.SaveToken("tok"); err != nil {
		t.Fatalf("save token: %v", err)
	}
	_, err := c.InitiatePayment(context.Background(), domain.PaymentRequest{
		Telephone: "0712345678", Amount: "100", AccountNumber: "AC-1",
	})
	var apiErr *portal.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("want APIError, got %v", err)
	}
	// Keys are ordered for a deterministic "first" field.
	if got := apiErr.UserMessage(); got != "The amount is required." {
		t.Fatalf("user message = %q", got)
	}
}

func TestAuthedCall_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"message":"Accounts fetched","data":[]}`))
	}))
	defer srv.Close()

	c, sessions := newClient(t, srv, "http://allowlist.invalid")
	if err := sessions.SaveToken("tok-xyz"); err != nil {
		t.Fatalf("save token: %v", err)
	}
	if _, _, err := c.Accounts(context.Background()); err != nil {
		t.Fatalf("accounts: %v", err)
	}
	if gotAuth != "Bearer tok-xyz" {
		t.Fatalf("authorization header = %q", gotAuth)
	}
}

func TestAuthedCall_MissingPreconditions(t *testing.T) {
	sessions := store.NewSessionFileStore(t.TempDir())
	c := portal.New("http://allowlist.invalid", sessions, http.DefaultClient, logging.Discard())

	// No domain resolved at all.
	if _, _, err := c.Accounts(context.Background()); !errors.Is(err, portal.ErrNoDomain) {
		t.Fatalf("want ErrNoDomain, got %v", err)
	}

	// Domain present, token absent.
	if err := sessions.SaveDomain("tenant.example.com"); err != nil {
		t.Fatalf("save domain: %v", err)
	}
	if _, _, err := c.Accounts(context.Background()); !errors.Is(err, portal.ErrNoToken) {
		t.Fatalf("want ErrNoToken, got %v", err)
	}
}

func TestAccounts_DecodesSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"ok","data":[
			{"id":7,"account_number":"AC-7","expiry":"2026-10-01","account_type":"PPPoE","status":"active","package":"Gold 10Mbps","balance":"120.00","location":"Block C"},
			{"id":9,"account_number":"AC-9","expiry":"2026-09-12","account_type":"Hotspot","status":"suspended","package":"Hourly"}
		]}`))
	}))
	defer srv.Close()

	c, sessions := newClient(t, srv, "http://allowlist.invalid")
	if err := sessions.SaveToken("tok"); err != nil {
		t.Fatalf("save token: %v", err)
	}
	accounts, msg, err := c.Accounts(context.Background())
	if err != nil {
		t.Fatalf("accounts: %v", err)
	}
	if msg != "ok" || len(accounts) != 2 {
		t.Fatalf("got msg=%q len=%d", msg, len(accounts))
	}
	if accounts[0].AccountNumber != "AC-7" || accounts[0].Suspended() {
		t.Fatalf("first account decoded wrong: %+v", accounts[0])
	}
	if !accounts[1].Hotspot() || !accounts[1].Suspended() {
		t.Fatalf("second account decoded wrong: %+v", accounts[1])
	}

	// Against unchanged server state, a refetch decodes to an identical
	// sequence.
	again, _, err := c.Accounts(context.Background())
	if err != nil {
		t.Fatalf("refetch: %v", err)
	}
	if !reflect.DeepEqual(accounts, again) {
		t.Fatalf("refetch differs:\nfirst  = %+v\nsecond = %+v", accounts, again)
	}
}
