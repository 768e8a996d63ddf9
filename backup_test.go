package skinvault

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSavePath(t *testing.T, contents []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.sav")
	require.NoError(t, os.WriteFile(path, contents, 0644))
	return path
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestMaybeBackupFirstBackup(t *testing.T) {
	contents := []byte("pre-mutation bytes")
	path := testSavePath(t, contents)

	now := time.UnixMilli(1700000000000)
	m := newBackupManager(0)
	m.now = fixedClock(now)

	dest, err := m.maybeBackup(path)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%s.backup-%d", path, now.UnixMilli()), dest)

	copied, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, contents, copied)
}

func TestMaybeBackupWithinWindow(t *testing.T) {
	path := testSavePath(t, []byte("save"))

	now := time.UnixMilli(1700000000000)
	m := newBackupManager(0)
	m.now = fixedClock(now)

	first, err := m.maybeBackup(path)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	// repeated imports inside the window copy nothing more
	m.now = fixedClock(now.Add(6 * 24 * time.Hour))
	for i := 0; i < 3; i++ {
		dest, err := m.maybeBackup(path)
		require.NoError(t, err)
		assert.Empty(t, dest)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 2) // the save and one backup
}

func TestMaybeBackupStaleBackup(t *testing.T) {
	path := testSavePath(t, []byte("save"))

	now := time.UnixMilli(1700000000000)
	stale := now.Add(-8 * 24 * time.Hour)
	require.NoError(t, os.WriteFile(fmt.Sprintf("%s.backup-%d", path, stale.UnixMilli()), []byte("old"), 0644))

	m := newBackupManager(0)
	m.now = fixedClock(now)

	dest, err := m.maybeBackup(path)
	require.NoError(t, err)
	assert.NotEmpty(t, dest)
}

func TestLatestBackupIgnoresUnrelatedSiblings(t *testing.T) {
	path := testSavePath(t, []byte("save"))
	dir := filepath.Dir(path)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "game.sav.backup-notanumber"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.sav.backup-1700000000000"), nil, 0644))
	require.NoError(t, os.WriteFile(fmt.Sprintf("%s.backup-%d", path, int64(1600000000000)), nil, 0644))
	require.NoError(t, os.WriteFile(fmt.Sprintf("%s.backup-%d", path, int64(1650000000000)), nil, 0644))

	m := newBackupManager(0)
	latest, err := m.latestBackup(path)
	require.NoError(t, err)
	assert.Equal(t, time.UnixMilli(1650000000000), latest)
}

func TestMaybeBackupMissingSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.sav")

	m := newBackupManager(0)
	_, err := m.maybeBackup(path)
	require.Error(t, err)
}
