package types

// Session is the pair of persisted values that determine app routing: the
// resolved tenant domain and the bearer token from the last login. Either
// half may be absent.
type Session struct {
	Domain Domain `json:"domain"`
	Token  Token  `json:"token"`
}

// HasDomain reports whether a tenant domain has been resolved.
func (s Session) HasDomain() bool { return s.Domain != "" }

// HasToken reports whether a login token is present.
func (s Session) HasToken() bool { return s.Token != "" }
