package domain

import (
	interfaces "selfcare/internal/domain/interfaces"
	types "selfcare/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Domain         = types.Domain
	Token          = types.Token
	Session        = types.Session
	Account        = types.Account
	Package        = types.Package
	AppSettings    = types.AppSettings
	Release        = types.Release
	PaymentRequest = types.PaymentRequest
	WiFiChange     = types.WiFiChange
)

// Account status re-exports.
const (
	StatusActive    = types.StatusActive
	StatusSuspended = types.StatusSuspended
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	SessionStore   = interfaces.SessionStore
	PortalClient   = interfaces.PortalClient
	TenantService  = interfaces.TenantService
	AuthService    = interfaces.AuthService
	AccountService = interfaces.AccountService
	SettingsSource = interfaces.SettingsSource
	Updater        = interfaces.Updater
)
