package account

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"selfcare/internal/domain"
)

// Local validation failures. These block submission before the network.
var (
	ErrMissingFields      = errors.New("please fill in all fields")
	ErrTelephonePrefix    = errors.New("the telephone number must start with 0")
	ErrTelephoneNotNumber = errors.New("the telephone number must contain digits only")
	ErrAmountNotNumber    = errors.New("the amount must be a number")
	ErrShortWiFiPassword  = errors.New("the WiFi password must be at least 8 characters")
	ErrNoPackageSelected  = errors.New("please select a package")
	ErrMissingTransaction = errors.New("please enter the transaction code")
	ErrAccountNotFound    = errors.New("no account with that account number")

	// Hotspot accounts have no package choice and no WiFi credentials.
	ErrHotspotPackage = errors.New("package changes are not available for hotspot accounts")
	ErrHotspotWiFi    = errors.New("WiFi changes are not available for hotspot accounts")
)

var validate *validator.Validate

// Initialize the validator with the trunk prefix rule for mobile-money
// telephone numbers.
func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("trunkprefix", hasTrunkPrefix); err != nil {
		panic(err)
	}
}

func hasTrunkPrefix(fl validator.FieldLevel) bool {
	return strings.HasPrefix(fl.Field().String(), "0")
}

// Service performs the account action flows against the tenant portal.
type Service struct {
	portal domain.PortalClient
	log    *slog.Logger
}

// New constructs an account Service.
func New(portal domain.PortalClient, log *slog.Logger) *Service {
	return &Service{portal: portal, log: log}
}

// Accounts fetches a fresh snapshot of the customer's accounts. Repeating
// the fetch against unchanged server state yields an identical sequence.
func (s *Service) Accounts(ctx context.Context) ([]domain.Account, string, error) {
	return s.portal.Accounts(ctx)
}

// InitiatePayment starts a mobile-money charge. The telephone must carry
// the local trunk prefix; there is no client-side side effect on success.
func (s *Service) InitiatePayment(ctx context.Context, accountNumber, telephone, amount string) (string, error) {
	req := domain.PaymentRequest{
		Telephone:     telephone,
		Amount:        amount,
		AccountNumber: accountNumber,
	}
	if err := validate.Struct(req); err != nil {
		return "", paymentValidationError(err)
	}
	return s.portal.InitiatePayment(ctx, req)
}

func paymentValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	for _, fe := range fieldErrs {
		switch {
		case fe.Tag() == "required":
			return ErrMissingFields
		case fe.Field() == "Telephone" && fe.Tag() == "trunkprefix":
			return ErrTelephonePrefix
		case fe.Field() == "Telephone":
			return ErrTelephoneNotNumber
		case fe.Field() == "Amount":
			return ErrAmountNotNumber
		}
	}
	return err
}

// ConfirmPayment reconciles a mobile-money transaction code against a
// pending charge. The caller may refetch accounts afterwards.
func (s *Service) ConfirmPayment(ctx context.Context, transactionID string) (string, error) {
	if strings.TrimSpace(transactionID) == "" {
		return "", ErrMissingTransaction
	}
	return s.portal.ConfirmPayment(ctx, transactionID)
}

// Packages fetches the account's eligible billing catalog. The catalog is
// never cached; every invocation fetches fresh.
func (s *Service) Packages(ctx context.Context, account domain.Account) ([]domain.Package, string, error) {
	return s.portal.Packages(ctx, account.ID)
}

// ChangePackage reassigns the account's billing package. Disabled entirely
// for hotspot accounts.
func (s *Service) ChangePackage(ctx context.Context, account domain.Account, packageID int64) (string, error) {
	if account.Hotspot() {
		return "", ErrHotspotPackage
	}
	if packageID <= 0 {
		return "", ErrNoPackageSelected
	}
	return s.portal.ChangePackage(ctx, account.ID, packageID)
}

// ChangeWiFi updates the account's WiFi SSID and passphrase. The passphrase
// minimum length is enforced locally before submission.
func (s *Service) ChangeWiFi(ctx context.Context, account domain.Account, name, password string) (string, error) {
	if account.Hotspot() {
		return "", ErrHotspotWiFi
	}
	req := domain.WiFiChange{Name: name, Password: password, AccountID: account.ID}
	if err := validate.Struct(req); err != nil {
		return "", wifiValidationError(err)
	}
	return s.portal.ChangeWiFi(ctx, req)
}

func wifiValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	for _, fe := range fieldErrs {
		if fe.Field() == "Password" && fe.Tag() == "min" {
			return ErrShortWiFiPassword
		}
		if fe.Tag() == "required" {
			return ErrMissingFields
		}
	}
	return err
}

// ToggleSuspension suspends an active account or unsuspends a suspended
// one. On confirmation it returns a copy of accounts with only the matching
// entry's status updated; no full refetch happens.
func (s *Service) ToggleSuspension(ctx context.Context, accounts []domain.Account, accountNumber string) ([]domain.Account, string, error) {
	idx := -1
	for i, a := range accounts {
		if a.AccountNumber == accountNumber {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, "", ErrAccountNotFound
	}

	var (
		message string
		err     error
		next    string
	)
	if accounts[idx].Suspended() {
		message, err = s.portal.UnsuspendAccount(ctx, accountNumber)
		next = domain.StatusActive
	} else {
		message, err = s.portal.SuspendAccount(ctx, accountNumber)
		next = domain.StatusSuspended
	}
	if err != nil {
		return nil, "", err
	}

	updated := make([]domain.Account, len(accounts))
	copy(updated, accounts)
	updated[idx].Status = next
	s.log.Info("account suspension toggled", "account", accountNumber, "status", next)
	return updated, message, nil
}

// Compile-time assertion that Service implements domain.AccountService.
var _ domain.AccountService = (*Service)(nil)
