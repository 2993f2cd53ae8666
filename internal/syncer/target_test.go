package syncer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ps2mcs/ps2mcs/internal/errors"
	"github.com/ps2mcs/ps2mcs/internal/mapping"
)

func TestNewTarget_ResolvesPaths(t *testing.T) {
	root := t.TempDir()

	target, err := NewTarget("SLUS-21274-1.mc2", root, mapping.CardStrategy{})
	require.NoError(t, err)

	assert.Equal(t, "SLUS-21274-1.mc2", target.Name)
	assert.Equal(t, "PS2/SLUS-21274/SLUS-21274-1.mc2", target.RemotePath)
	assert.Equal(t, filepath.Join(root, "SLUS-21274-1.bin"), target.LocalPath)
}

func TestNewTarget_CreatesLocalParent(t *testing.T) {
	root := filepath.Join(t.TempDir(), "cards", "ps2")

	target, err := NewTarget("SLUS-21274-1.mc2", root, mapping.CardStrategy{})
	require.NoError(t, err)

	info, err := os.Stat(filepath.Dir(target.LocalPath))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Construction is idempotent when the directory already exists.
	_, err = NewTarget("SLUS-21274-2.mc2", root, mapping.CardStrategy{})
	assert.NoError(t, err)
}

func TestNewTargets_PreservesOrder(t *testing.T) {
	root := t.TempDir()
	names := []string{"SLUS-21274-2.mc2", "SLUS-21274-1.mc2", "SCUS-94163-1.mcd"}

	targets, err := NewTargets(names, root, mapping.CardStrategy{})
	require.NoError(t, err)
	require.Len(t, targets, 3)

	for i, name := range names {
		assert.Equal(t, name, targets[i].Name)
	}
}

func TestNewTargets_BadNameAbortsAll(t *testing.T) {
	root := t.TempDir()
	names := []string{"SLUS-21274-1.mc2", "not a card image", "SCUS-94163-1.mcd"}

	targets, err := NewTargets(names, root, mapping.CardStrategy{})
	assert.ErrorIs(t, err, errors.ErrInvalidTargetFormat)
	assert.Nil(t, targets)
}
