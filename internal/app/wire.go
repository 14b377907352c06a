package app

import (
	"net/http"

	"selfcare/internal/domain"
	"selfcare/internal/logging"
	"selfcare/internal/portal"
	accountsvc "selfcare/internal/services/account"
	authsvc "selfcare/internal/services/auth"
	"selfcare/internal/services/bootstrap"
	settingssvc "selfcare/internal/services/settings"
	tenantsvc "selfcare/internal/services/tenant"
	"selfcare/internal/store"
	"selfcare/internal/update"
)

// Wire bundles the stores, services, and clients for the CLI and the
// interactive UI.
type Wire struct {
	Sessions  domain.SessionStore
	Portal    domain.PortalClient
	Tenant    domain.TenantService
	Auth      domain.AuthService
	Accounts  domain.AccountService
	Settings  domain.SettingsSource
	Updater   domain.Updater
	Bootstrap *bootstrap.Sequencer
	HTTP      *http.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	log := cfg.Logger
	if log == nil {
		log = logging.Discard()
	}
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	sessions := store.NewSessionFileStore(cfg.Home)
	portalClient := portal.New(cfg.AllowlistURL, sessions, httpClient, log)

	var updater domain.Updater
	if cfg.ManifestURL != "" {
		updater = update.New(cfg.ManifestURL, cfg.Version, cfg.Home, httpClient, log)
	}

	return &Wire{
		Sessions:  sessions,
		Portal:    portalClient,
		Tenant:    tenantsvc.New(portalClient, sessions, log),
		Auth:      authsvc.New(portalClient, sessions, log),
		Accounts:  accountsvc.New(portalClient, log),
		Settings:  settingssvc.New(portalClient),
		Updater:   updater,
		Bootstrap: bootstrap.New(sessions, updater, log),
		HTTP:      httpClient,
	}, nil
}
