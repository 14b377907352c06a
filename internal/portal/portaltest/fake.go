// Package portaltest provides a configurable in-memory PortalClient for
// service tests, so flow logic can be exercised without a network.
package portaltest

import (
	"context"
	"sync"

	"selfcare/internal/domain"
)

// Fake implements domain.PortalClient. Zero value is usable: every call
// succeeds with empty results. Set an Err to make every call fail with it,
// or populate the typed fields to shape responses. Calls counts every
// method invocation by name, letting tests assert that local validation
// blocked a request before the network.
type Fake struct {
	mu    sync.Mutex
	Calls map[string]int

	Err error

	AllowedMessage string
	LoginToken     domain.Token
	Settings       domain.AppSettings
	AccountList    []domain.Account
	PackageList    []domain.Package
	Message        string
}

func (f *Fake) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Calls == nil {
		f.Calls = map[string]int{}
	}
	f.Calls[name]++
}

// CallCount returns how many times the named method ran.
func (f *Fake) CallCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls[name]
}

// TotalCalls returns the number of method invocations across all methods.
func (f *Fake) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.Calls {
		total += n
	}
	return total
}

func (f *Fake) AllowedDomain(_ context.Context, _ domain.Domain) (string, error) {
	f.record("AllowedDomain")
	if f.Err != nil {
		return "", f.Err
	}
	return f.AllowedMessage, nil
}

func (f *Fake) Login(_ context.Context, _, _ string) (domain.Token, string, error) {
	f.record("Login")
	if f.Err != nil {
		return "", "", f.Err
	}
	return f.LoginToken, f.Message, nil
}

func (f *Fake) AppSettings(_ context.Context) (domain.AppSettings, error) {
	f.record("AppSettings")
	if f.Err != nil {
		return domain.AppSettings{}, f.Err
	}
	return f.Settings, nil
}

func (f *Fake) Accounts(_ context.Context) ([]domain.Account, string, error) {
	f.record("Accounts")
	if f.Err != nil {
		return nil, "", f.Err
	}
	out := make([]domain.Account, len(f.AccountList))
	copy(out, f.AccountList)
	return out, f.Message, nil
}

func (f *Fake) InitiatePayment(_ context.Context, _ domain.PaymentRequest) (string, error) {
	f.record("InitiatePayment")
	if f.Err != nil {
		return "", f.Err
	}
	return f.Message, nil
}

func (f *Fake) ConfirmPayment(_ context.Context, _ string) (string, error) {
	f.record("ConfirmPayment")
	if f.Err != nil {
		return "", f.Err
	}
	return f.Message, nil
}

func (f *Fake) Packages(_ context.Context, _ int64) ([]domain.Package, string, error) {
	f.record("Packages")
	if f.Err != nil {
		return nil, "", f.Err
	}
	return f.PackageList, f.Message, nil
}

func (f *Fake) ChangePackage(_ context.Context, _, _ int64) (string, error) {
	f.record("ChangePackage")
	if f.Err != nil {
		return "", f.Err
	}
	return f.Message, nil
}

func (f *Fake) ChangeWiFi(_ context.Context, _ domain.WiFiChange) (string, error) {
	f.record("ChangeWiFi")
	if f.Err != nil {
		return "", f.Err
	}
	return f.Message, nil
}

func (f *Fake) SuspendAccount(_ context.Context, _ string) (string, error) {
	f.record("SuspendAccount")
	if f.Err != nil {
		return "", f.Err
	}
	return f.Message, nil
}

func (f *Fake) UnsuspendAccount(_ context.Context, _ string) (string, error) {
	f.record("UnsuspendAccount")
	if f.Err != nil {
		return "", f.Err
	}
	return f.Message, nil
}

// Compile-time assertion that Fake implements domain.PortalClient.
var _ domain.PortalClient = (*Fake)(nil)
