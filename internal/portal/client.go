package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"selfcare/internal/domain"
)

// allowedSentinel is the only success value the allow-list endpoint
// returns. Any other data shape, including an otherwise well-formed
// success, is a rejection. The tenant endpoints use a boolean success flag
// instead; the two endpoint families are genuinely heterogeneous.
const allowedSentinel = "Successful"

// Client talks to the allow-list service and the resolved tenant portal.
// The tenant host and bearer token are read from the session store at call
// time, so a freshly resolved domain or login takes effect immediately.
type Client struct {
	allowlistBase string
	sessions      domain.SessionStore
	http          *http.Client
	log           *slog.Logger
}

// New constructs a Client. allowlistBase is the full base URL of the
// central allow-list service.
func New(allowlistBase string, sessions domain.SessionStore, httpClient *http.Client, log *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		allowlistBase: strings.TrimRight(allowlistBase, "/"),
		sessions:      sessions,
		http:          httpClient,
		log:           log,
	}
}

// envelope is the {success, message, data} wrapper used by the portal.
// Success is a pointer because some endpoints (settings, accounts, the
// allow-list) omit the flag and signal success by HTTP status alone.
type envelope struct {
	Success *bool               `json:"success"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

// AllowedDomain validates domain against the central allow-list service.
func (c *Client) AllowedDomain(ctx context.Context, d domain.Domain) (string, error) {
	env, err := c.post(ctx, c.allowlistBase+"/api/app/allowed", "", struct {
		Domain string `json:"domain"`
	}{Domain: d.String()})
	if err != nil {
		return "", err
	}

	var data string
	if err := json.Unmarshal(env.Data, &data); err != nil || data != allowedSentinel {
		msg := env.Message
		if msg == "" {
			msg = "The provided domain is not allowed."
		}
		return "", &APIError{Message: msg}
	}
	return env.Message, nil
}

// Login exchanges credentials for a bearer token. The portal expects the
// username under an "email" key regardless of its actual shape.
func (c *Client) Login(ctx context.Context, username, password string) (domain.Token, string, error) {
	base, err := c.tenantBase()
	if err != nil {
		return "", "", err
	}
	env, err := c.post(ctx, base+"/api/login", "", struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: username, Password: password})
	if err != nil {
		return "", "", err
	}

	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil || data.Token == "" {
		return "", "", &TransportError{Op: "POST", URL: base + "/api/login"}
	}
	return domain.Token(data.Token), env.Message, nil
}

// AppSettings fetches the tenant branding object. Unauthenticated.
func (c *Client) AppSettings(ctx context.Context) (domain.AppSettings, error) {
	base, err := c.tenantBase()
	if err != nil {
		return domain.AppSettings{}, err
	}
	env, err := c.get(ctx, base+"/api/app/setting", "")
	if err != nil {
		return domain.AppSettings{}, err
	}

	var settings domain.AppSettings
	if err := json.Unmarshal(env.Data, &settings); err != nil {
		return domain.AppSettings{}, &TransportError{Op: "GET", URL: base + "/api/app/setting"}
	}
	return settings, nil
}

// Accounts fetches the authenticated customer's internet accounts.
func (c *Client) Accounts(ctx context.Context) ([]domain.Account, string, error) {
	base, token, err := c.authedBase()
	if err != nil {
		return nil, "", err
	}
	env, err := c.get(ctx, base+"/api/customer/accounts", token)
	if err != nil {
		return nil, "", err
	}

	var accounts []domain.Account
	if err := json.Unmarshal(env.Data, &accounts); err != nil {
		return nil, "", &TransportError{Op: "GET", URL: base + "/api/customer/accounts"}
	}
	return accounts, env.Message, nil
}

// InitiatePayment starts a mobile-money charge. No client-side side effect:
// the balance is only reflected after a later account refetch.
func (c *Client) InitiatePayment(ctx context.Context, req domain.PaymentRequest) (string, error) {
	return c.authedPost(ctx, "/api/initiate/payment", req)
}

// ConfirmPayment reconciles a mobile-money transaction code against a
// pending charge.
func (c *Client) ConfirmPayment(ctx context.Context, transactionID string) (string, error) {
	return c.authedPost(ctx, "/api/confirm/payment", struct {
		TransactionID string `json:"transaction_id"`
	}{TransactionID: transactionID})
}

// Packages lists the eligible billing catalog for one account.
func (c *Client) Packages(ctx context.Context, accountID int64) ([]domain.Package, string, error) {
	base, token, err := c.authedBase()
	if err != nil {
		return nil, "", err
	}
	url := base + "/api/packages/list?id=" + strconv.FormatInt(accountID, 10)
	env, err := c.get(ctx, url, token)
	if err != nil {
		return nil, "", err
	}

	var packages []domain.Package
	if err := json.Unmarshal(env.Data, &packages); err != nil {
		return nil, "", &TransportError{Op: "GET", URL: url}
	}
	return packages, env.Message, nil
}

// ChangePackage reassigns the account's billing package.
func (c *Client) ChangePackage(ctx context.Context, accountID, packageID int64) (string, error) {
	return c.authedPost(ctx, "/api/change/package", struct {
		AccountID int64 `json:"account_id"`
		PackageID int64 `json:"package_id"`
	}{AccountID: accountID, PackageID: packageID})
}

// ChangeWiFi updates the account's WiFi SSID and passphrase.
func (c *Client) ChangeWiFi(ctx context.Context, req domain.WiFiChange) (string, error) {
	return c.authedPost(ctx, "/api/change/wifi", req)
}

// SuspendAccount suspends service on the account.
func (c *Client) SuspendAccount(ctx context.Context, accountNumber string) (string, error) {
	return c.authedPost(ctx, "/api/suspend/account", struct {
		AccountNumber string `json:"account_number"`
	}{AccountNumber: accountNumber})
}

// UnsuspendAccount restores service on the account.
func (c *Client) UnsuspendAccount(ctx context.Context, accountNumber string) (string, error) {
	return c.authedPost(ctx, "/api/unsuspend/account", struct {
		AccountNumber string `json:"account_number"`
	}{AccountNumber: accountNumber})
}

// tenantBase builds the base URL for the resolved tenant. A missing domain
// is a precondition failure, not a network error. A stored domain may carry
// an explicit scheme; bare hostnames get https.
func (c *Client) tenantBase() (string, error) {
	d, ok, err := c.sessions.Domain()
	if err != nil {
		return "", err
	}
	if !ok || d == "" {
		return "", ErrNoDomain
	}
	if strings.Contains(d.String(), "://") {
		return strings.TrimRight(d.String(), "/"), nil
	}
	return "https://" + d.String(), nil
}

// authedBase resolves the tenant base URL and the bearer token together.
func (c *Client) authedBase() (string, domain.Token, error) {
	base, err := c.tenantBase()
	if err != nil {
		return "", "", err
	}
	token, ok, err := c.sessions.Token()
	if err != nil {
		return "", "", err
	}
	if !ok || token == "" {
		return "", "", ErrNoToken
	}
	return base, token, nil
}

// authedPost posts a JSON body to a tenant path with the bearer token and
// returns the envelope message.
func (c *Client) authedPost(ctx context.Context, path string, in any) (string, error) {
	base, token, err := c.authedBase()
	if err != nil {
		return "", err
	}
	env, err := c.post(ctx, base+path, token, in)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *Client) post(ctx context.Context, url string, token domain.Token, in any) (*envelope, error) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, token)
}

func (c *Client) get(ctx context.Context, url string, token domain.Token) (*envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req, token)
}

// do executes the request and classifies the outcome. The request either
// yields a parsed envelope, an *APIError (application-level rejection), or
// a *TransportError (no response or no parseable envelope).
func (c *Client) do(req *http.Request, token domain.Token) (*envelope, error) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token.String())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: req.Method, URL: req.URL.String(), Err: err}
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode/100 != 2 {
		// Validation failures and auth rejections arrive as non-2xx with
		// an envelope; anything unparseable is a transport failure.
		if decodeErr == nil && (env.Message != "" || len(env.Errors) > 0) {
			return nil, &APIError{Message: env.Message, Fields: env.Errors}
		}
		return nil, &TransportError{Op: req.Method, URL: req.URL.String(), Status: resp.Status}
	}
	if decodeErr != nil {
		return nil, &TransportError{Op: req.Method, URL: req.URL.String(), Err: decodeErr}
	}
	if env.Success != nil && !*env.Success {
		return nil, &APIError{Message: env.Message, Fields: env.Errors}
	}
	return &env, nil
}

// Compile-time assertion that Client implements domain.PortalClient.
var _ domain.PortalClient = (*Client)(nil)
