// Package tui implements the interactive self-care portal session.
//
// The model mirrors the original screen flow: the bootstrap decision picks
// the first screen (update, domain resolution, login, or the account list),
// and the account list hosts at most one active dialog at a time (make
// payment, confirm payment, change package, change WiFi, or suspend),
// modelled as a tagged variant rather than a set of visibility booleans.
//
// All network work runs in bubbletea commands; each screen and dialog keeps
// its own busy flag, and a pending flag disables resubmission while a
// request is in flight. Once the account list is reached there is no back
// path to the login screen.
package tui
