package interfaces

import (
	"context"

	domaintypes "selfcare/internal/domain/types"
)

// PortalClient is how we talk to the central allow-list service and the
// resolved tenant's portal API, all with context.
//
// Every method returns the server's `message` string for display as a
// transient notification on success. Failures are classified: an
// application-level rejection (`success:false` or a field error map)
// decodes to *portal.APIError, while a transport failure (no response,
// non-2xx without a parseable envelope) decodes to *portal.TransportError.
// Callers that must not double-submit, such as payment confirmation, rely
// on that distinction.
type PortalClient interface {
	// AllowedDomain validates a tenant domain against the fixed,
	// non-tenant-scoped allow-list service. Only the textual
	// "Successful" sentinel in the response data counts as success.
	AllowedDomain(ctx context.Context, domain domaintypes.Domain) (message string, err error)

	// Login exchanges credentials for a bearer token on the resolved
	// tenant. The portal expects the username under an "email" key.
	Login(ctx context.Context, username, password string) (domaintypes.Token, string, error)

	// AppSettings fetches the tenant branding object. Unauthenticated.
	AppSettings(ctx context.Context) (domaintypes.AppSettings, error)

	// Accounts fetches the authenticated customer's internet accounts.
	Accounts(ctx context.Context) ([]domaintypes.Account, string, error)

	InitiatePayment(ctx context.Context, req domaintypes.PaymentRequest) (string, error)
	ConfirmPayment(ctx context.Context, transactionID string) (string, error)

	// Packages lists the eligible billing catalog for one account.
	Packages(ctx context.Context, accountID int64) ([]domaintypes.Package, string, error)
	ChangePackage(ctx context.Context, accountID, packageID int64) (string, error)

	ChangeWiFi(ctx context.Context, req domaintypes.WiFiChange) (string, error)

	SuspendAccount(ctx context.Context, accountNumber string) (string, error)
	UnsuspendAccount(ctx context.Context, accountNumber string) (string, error)
}
