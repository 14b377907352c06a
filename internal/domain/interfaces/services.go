package interfaces

import (
	"context"

	domaintypes "selfcare/internal/domain/types"
)

// TenantService resolves and registers a tenant domain.
type TenantService interface {
	// Resolve validates the free-text input locally (domain-name shape),
	// checks it against the allow-list service, and persists it exactly
	// as submitted on success. Invalid shapes are rejected before any
	// network call.
	Resolve(ctx context.Context, input string) (domaintypes.Domain, string, error)
}

// AuthService exchanges credentials for a token and manages logout.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Logout() error
}

// AccountService performs the six account action flows. Each is a single
// request/response cycle with local validation ahead of any network call;
// nothing auto-retries.
type AccountService interface {
	Accounts(ctx context.Context) ([]domaintypes.Account, string, error)
	InitiatePayment(ctx context.Context, accountNumber, telephone, amount string) (string, error)
	ConfirmPayment(ctx context.Context, transactionID string) (string, error)
	Packages(ctx context.Context, account domaintypes.Account) ([]domaintypes.Package, string, error)
	ChangePackage(ctx context.Context, account domaintypes.Account, packageID int64) (string, error)
	ChangeWiFi(ctx context.Context, account domaintypes.Account, name, password string) (string, error)

	// ToggleSuspension suspends an active account or unsuspends a
	// suspended one, returning a copy of accounts with only the matching
	// entry's status updated.
	ToggleSuspension(ctx context.Context, accounts []domaintypes.Account, accountNumber string) ([]domaintypes.Account, string, error)
}

// SettingsSource serves the tenant branding object through a process-wide
// cache: concurrent callers share one in-flight fetch and one cached value
// until Invalidate is called.
type SettingsSource interface {
	Get(ctx context.Context) (domaintypes.AppSettings, error)
	Invalidate()
}
