package types

// Domain is a tenant deployment hostname, e.g. "tenant.example.com".
// It is resolved once through the allow-list service and cached locally.
type Domain string

// String returns the string form of the domain.
func (d Domain) String() string { return string(d) }

// Token is the bearer token issued by a tenant portal at login.
type Token string

// String returns the string form of the token.
func (t Token) String() string { return string(t) }
