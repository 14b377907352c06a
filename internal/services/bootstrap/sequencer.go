package bootstrap

import (
	"context"
	"log/slog"

	"selfcare/internal/domain"
)

// State enumerates the sequencer's states. The two checking states are
// transient; the route states are terminal.
type State int

const (
	StateCheckingUpdate State = iota
	StateCheckingSession

	// RouteUpdate means an update is available; applying it preempts
	// everything else this process would do.
	RouteUpdate
	// RouteDomain means no tenant domain is resolved (or the session
	// could not be read): start at domain resolution.
	RouteDomain
	// RouteLogin means a domain is resolved but no token is stored:
	// start at login, pre-seeded with the domain.
	RouteLogin
	// RouteHome means both domain and token are present: go straight to
	// the account list.
	RouteHome
)

// Terminal reports whether the state is a final routing decision.
func (s State) Terminal() bool { return s >= RouteUpdate }

func (s State) String() string {
	switch s {
	case StateCheckingUpdate:
		return "checking-update"
	case StateCheckingSession:
		return "checking-session"
	case RouteUpdate:
		return "route-update"
	case RouteDomain:
		return "route-domain"
	case RouteLogin:
		return "route-login"
	case RouteHome:
		return "route-home"
	default:
		return "unknown"
	}
}

// Decision is the sequencer's output: a terminal state plus whatever that
// state needs (the resolved domain for login/home, the release for update).
type Decision struct {
	State   State
	Domain  domain.Domain
	Release domain.Release
}

// Sequencer runs the launch state machine. A nil updater skips the update
// check entirely.
type Sequencer struct {
	sessions domain.SessionStore
	updates  domain.Updater
	log      *slog.Logger
}

// New constructs a Sequencer.
func New(sessions domain.SessionStore, updates domain.Updater, log *slog.Logger) *Sequencer {
	return &Sequencer{sessions: sessions, updates: updates, log: log}
}

// Run steps the machine from its initial state to a terminal decision.
func (s *Sequencer) Run(ctx context.Context) Decision {
	decision := Decision{State: StateCheckingUpdate}
	for !decision.State.Terminal() {
		decision = s.next(ctx, decision)
	}
	return decision
}

// next is the single transition function.
func (s *Sequencer) next(ctx context.Context, d Decision) Decision {
	switch d.State {
	case StateCheckingUpdate:
		if s.updates == nil {
			return Decision{State: StateCheckingSession}
		}
		release, available, err := s.updates.Check(ctx)
		if err != nil {
			// Non-fatal: the user is not blocked by a dead update channel.
			s.log.Warn("update check failed", "error", err)
			return Decision{State: StateCheckingSession}
		}
		if available {
			return Decision{State: RouteUpdate, Release: release}
		}
		return Decision{State: StateCheckingSession}

	case StateCheckingSession:
		tenantDomain, ok, err := s.sessions.Domain()
		if err != nil {
			s.log.Warn("session read failed, starting at domain resolution", "error", err)
			return Decision{State: RouteDomain}
		}
		if !ok || tenantDomain == "" {
			return Decision{State: RouteDomain}
		}

		_, hasToken, err := s.sessions.Token()
		if err != nil {
			s.log.Warn("session read failed, starting at domain resolution", "error", err)
			return Decision{State: RouteDomain}
		}
		if hasToken {
			return Decision{State: RouteHome, Domain: tenantDomain}
		}
		return Decision{State: RouteLogin, Domain: tenantDomain}
	}
	return d
}
