package interfaces

import (
	"context"

	domaintypes "selfcare/internal/domain/types"
)

// Updater is the client's update channel. Check, Fetch and Apply are each
// asynchronous and independently failable; a check failure is non-fatal to
// the caller.
type Updater interface {
	// Check reports whether a newer build than the running one is
	// published, and its release record.
	Check(ctx context.Context) (domaintypes.Release, bool, error)

	// Fetch downloads the release build, verifies its digest, and
	// returns the path of the staged binary.
	Fetch(ctx context.Context, release domaintypes.Release) (string, error)

	// Apply atomically replaces the running executable with the staged
	// binary. A successful apply preempts everything else the process
	// would do; the caller is expected to exit and restart.
	Apply(stagedPath string) error
}
