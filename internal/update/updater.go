package update

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"selfcare/internal/domain"
)

// HTTPUpdater checks a JSON release manifest over HTTP and stages
// downloaded builds in the client home directory.
type HTTPUpdater struct {
	manifestURL string
	version     string
	home        string
	http        *http.Client
	log         *slog.Logger
}

// New constructs an HTTPUpdater for the running version.
func New(manifestURL, version, home string, httpClient *http.Client, log *slog.Logger) *HTTPUpdater {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPUpdater{
		manifestURL: manifestURL,
		version:     version,
		home:        home,
		http:        httpClient,
		log:         log,
	}
}

// Check fetches the manifest and reports whether it describes a build newer
// than the running one.
func (u *HTTPUpdater) Check(ctx context.Context) (domain.Release, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.manifestURL, nil)
	if err != nil {
		return domain.Release{}, false, err
	}
	resp, err := u.http.Do(req)
	if err != nil {
		return domain.Release{}, false, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return domain.Release{}, false, fmt.Errorf("update manifest %s: %s", u.manifestURL, resp.Status)
	}

	var release domain.Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return domain.Release{}, false, err
	}
	return release, newerVersion(release.Version, u.version), nil
}

// Fetch downloads the release build into the home directory and verifies
// its digest, returning the staged path.
func (u *HTTPUpdater) Fetch(ctx context.Context, release domain.Release) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, release.URL, nil)
	if err != nil {
		return "", err
	}
	resp, err := u.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("update download %s: %s", release.URL, resp.Status)
	}

	staged, err := os.CreateTemp(u.home, "selfcare-update-*")
	if err != nil {
		return "", err
	}
	digest := sha256.New()
	if _, err := io.Copy(io.MultiWriter(staged, digest), resp.Body); err != nil {
		staged.Close()
		os.Remove(staged.Name())
		return "", err
	}
	if err := staged.Close(); err != nil {
		os.Remove(staged.Name())
		return "", err
	}

	if got := hex.EncodeToString(digest.Sum(nil)); !strings.EqualFold(got, release.SHA256) {
		os.Remove(staged.Name())
		return "", fmt.Errorf("update digest mismatch: got %s, manifest says %s", got, release.SHA256)
	}
	u.log.Info("update staged", "version", release.Version, "path", staged.Name())
	return staged.Name(), nil
}

// Apply replaces the running executable with the staged binary via rename.
// The caller exits and restarts afterwards.
func (u *HTTPUpdater) Apply(stagedPath string) error {
	if err := os.Chmod(stagedPath, 0o755); err != nil {
		return err
	}
	executable, err := os.Executable()
	if err != nil {
		return err
	}
	executable, err = filepath.EvalSymlinks(executable)
	if err != nil {
		return err
	}
	return os.Rename(stagedPath, executable)
}

// newerVersion compares dotted numeric versions, e.g. "1.4.2". Unparseable
// segments compare as strings so a malformed manifest never panics.
func newerVersion(candidate, current string) bool {
	if candidate == "" || candidate == current {
		return false
	}
	a := strings.Split(candidate, ".")
	b := strings.Split(current, ".")
	for i := 0; i < len(a) && i < len(b); i++ {
		an, aerr := strconv.Atoi(a[i])
		bn, berr := strconv.Atoi(b[i])
		if aerr != nil || berr != nil {
			if a[i] != b[i] {
				return a[i] > b[i]
			}
			continue
		}
		if an != bn {
			return an > bn
		}
	}
	return len(a) > len(b)
}

// Compile-time assertion that HTTPUpdater implements domain.Updater.
var _ domain.Updater = (*HTTPUpdater)(nil)
