package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"selfcare/internal/app"
	"selfcare/internal/config"
	"selfcare/internal/domain"
	"selfcare/internal/logging"
)

// version is stamped at build time via -ldflags.
var version = "0.0.0-dev"

var (
	home       string
	configPath string

	wire *app.Wire
	cfg  config.Config
)

func Execute() error {
	root := &cobra.Command{
		Use:           "selfcare",
		Short:         "ISP self-care portal client",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			if home != "" {
				cfg.Home = home
			}
			if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
				return err
			}

			log := logging.New(cfg.LogLevel)
			wire, err = app.NewWire(app.Config{
				Home:         cfg.Home,
				AllowlistURL: cfg.AllowlistURL,
				ManifestURL:  cfg.Update.ManifestURL,
				Version:      version,
				HTTP:         &http.Client{Timeout: cfg.HTTPTimeout},
				Logger:       log,
			})
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.selfcare)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")

	root.AddCommand(
		domainCmd(), loginCmd(), logoutCmd(),
		accountsCmd(), payCmd(), confirmCmd(),
		packagesCmd(), wifiCmd(), suspendCmd(), unsuspendCmd(),
		settingsCmd(), updateCmd(), portalCmd(),
	)
	return root.Execute()
}

// findAccount resolves an account number to the full account record from
// the portal's current list.
func findAccount(ctx context.Context, accountNumber string) (domain.Account, error) {
	accounts, _, err := wire.Accounts.Accounts(ctx)
	if err != nil {
		return domain.Account{}, err
	}
	for _, account := range accounts {
		if account.AccountNumber == accountNumber {
			return account, nil
		}
	}
	return domain.Account{}, fmt.Errorf("account %q not found", accountNumber)
}
