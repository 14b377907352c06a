// Package auth exchanges credentials for a bearer token on the resolved
// tenant and manages logout.
//
// There is no client-side lockout, rate limiting or retry tracking; those
// are entirely server concerns.
package auth
