package interfaces

import domaintypes "selfcare/internal/domain/types"

// SessionStore persists the two-string session (tenant domain, login token)
// between runs. All operations may fail with a storage error which is
// surfaced to the caller, never retried.
type SessionStore interface {
	// Raw string key-value contract. The keys in use are "userdomain"
	// and "userToken"; absent keys report ok=false with a nil error.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error

	// Typed session accessors layered over the raw contract.
	Domain() (domaintypes.Domain, bool, error)
	SaveDomain(domain domaintypes.Domain) error
	Token() (domaintypes.Token, bool, error)
	SaveToken(token domaintypes.Token) error
	ClearToken() error
	Clear() error
}
