package tenant

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"selfcare/internal/domain"
)

// ErrInvalidDomain is returned for inputs that do not look like a domain
// name. These never reach the network.
var ErrInvalidDomain = errors.New("please enter a valid domain, e.g. tenant.example.com")

// domainPattern accepts labels of alphanumerics and hyphens joined by
// dots, at least two labels.
var domainPattern = regexp.MustCompile(`^[a-zA-Z0-9-]+(\.[a-zA-Z0-9-]+)+$`)

var validate *validator.Validate

// Initialize the validator with the tenant domain rule.
func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("tenantdomain", isTenantDomain); err != nil {
		panic(err)
	}
}

func isTenantDomain(fl validator.FieldLevel) bool {
	return domainPattern.MatchString(fl.Field().String())
}

// Service validates tenant domains against the allow-list service and
// persists them.
type Service struct {
	portal   domain.PortalClient
	sessions domain.SessionStore
	log      *slog.Logger
}

// New constructs a tenant Service.
func New(portal domain.PortalClient, sessions domain.SessionStore, log *slog.Logger) *Service {
	return &Service{portal: portal, sessions: sessions, log: log}
}

// Resolve validates input locally, asks the allow-list service about it,
// and persists it on success. The stored value equals the submitted string
// exactly (after whitespace trimming).
func (s *Service) Resolve(ctx context.Context, input string) (domain.Domain, string, error) {
	input = strings.TrimSpace(input)
	if err := validate.Var(input, "required,tenantdomain"); err != nil {
		return "", "", ErrInvalidDomain
	}

	d := domain.Domain(input)
	message, err := s.portal.AllowedDomain(ctx, d)
	if err != nil {
		return "", "", err
	}

	if err := s.sessions.SaveDomain(d); err != nil {
		return "", "", err
	}
	s.log.Info("tenant domain resolved", "domain", input)
	return d, message, nil
}

// Compile-time assertion that Service implements domain.TenantService.
var _ domain.TenantService = (*Service)(nil)
