package types

import "strings"

// Account statuses as reported by the tenant portal. The status only
// changes client-side after the portal confirms a suspend or unsuspend.
const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
)

// Account is one internet account belonging to the authenticated customer.
// The client holds a transient, refetchable snapshot of these; they are
// never persisted locally.
type Account struct {
	ID            int64  `json:"id"`
	AccountNumber string `json:"account_number"`
	Expiry        string `json:"expiry"`
	AccountType   string `json:"account_type"`
	Status        string `json:"status"`
	Package       string `json:"package"`
	Balance       string `json:"balance,omitempty"`
	Location      string `json:"location,omitempty"`
}

// Suspended reports whether the account is currently suspended.
func (a Account) Suspended() bool { return a.Status == StatusSuspended }

// Hotspot reports whether this is a hotspot account. Hotspot accounts have
// no WiFi credentials of their own and cannot change billing package. The
// portal is inconsistent about casing, so the check is case-insensitive.
func (a Account) Hotspot() bool { return strings.EqualFold(a.AccountType, "hotspot") }
