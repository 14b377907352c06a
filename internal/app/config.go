package app

import (
	"log/slog"
	"net/http"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home         string       // session/config directory, e.g. $HOME/.selfcare
	AllowlistURL string       // central allow-list base URL
	ManifestURL  string       // update manifest URL; empty disables updates
	Version      string       // running build version, for the update check
	HTTP         *http.Client // optional; defaults to http.DefaultClient
	Logger       *slog.Logger // optional; defaults to a discarding logger
}
