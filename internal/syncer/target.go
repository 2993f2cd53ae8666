package syncer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ps2mcs/ps2mcs/internal/mapping"
)

// Target binds one logical card-image name to its resolved remote and
// local paths. Targets are immutable after construction and owned by
// the sync loop for the duration of one run.
type Target struct {
	Name       string
	RemotePath string
	LocalPath  string
}

// NewTarget resolves a name through the naming strategy and eagerly
// creates the local parent directory, so transfer code never needs
// existence checks. Directory creation is idempotent.
func NewTarget(name, syncRoot string, strategy mapping.Strategy) (Target, error) {
	remote, err := strategy.MapToRemote(name)
	if err != nil {
		return Target{}, err
	}

	local, err := strategy.MapToLocal(name, syncRoot)
	if err != nil {
		return Target{}, err
	}

	if err := os.MkdirAll(filepath.Dir(local), 0o755); err != nil {
		return Target{}, fmt.Errorf("creating local directory for %s: %w", name, err)
	}

	return Target{Name: name, RemotePath: remote, LocalPath: local}, nil
}

// NewTargets builds all targets up front, before any network activity.
// The first mapping failure aborts the whole run: the target list is
// assumed pre-validated, and one bad entry must not be silently
// skipped.
func NewTargets(names []string, syncRoot string, strategy mapping.Strategy) ([]Target, error) {
	targets := make([]Target, 0, len(names))

	for _, name := range names {
		t, err := NewTarget(name, syncRoot, strategy)
		if err != nil {
			return nil, err
		}

		targets = append(targets, t)
	}

	return targets, nil
}
