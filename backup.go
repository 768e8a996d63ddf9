package skinvault

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const backupInfix = ".backup-"

// DefaultBackupWindow is how long a protective copy of the save file
// stays fresh before the next import takes another one.
const DefaultBackupWindow = 7 * 24 * time.Hour

// backupManager takes at most one protective copy of the save file per
// window. Backups are never deleted or rotated.
type backupManager struct {
	window time.Duration
	now    func() time.Time
}

func newBackupManager(window time.Duration) *backupManager {
	if window <= 0 {
		window = DefaultBackupWindow
	}
	return &backupManager{
		window: window,
		now:    time.Now,
	}
}

// latestBackup returns the creation time of the newest backup of the
// named save file, or the zero time if none exist. The timestamp is
// the millisecond suffix baked into the backup name; siblings with an
// unparsable suffix are ignored.
func (m *backupManager) latestBackup(savePath string) (time.Time, error) {
	entries, err := os.ReadDir(filepath.Dir(savePath))
	if err != nil {
		return time.Time{}, err
	}

	prefix := filepath.Base(savePath) + backupInfix

	var latest time.Time
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), prefix) {
			continue
		}
		ms, err := strconv.ParseInt(strings.TrimPrefix(e.Name(), prefix), 10, 64)
		if err != nil {
			continue
		}
		if t := time.UnixMilli(ms); t.After(latest) {
			latest = t
		}
	}

	return latest, nil
}

// maybeBackup copies the save file verbatim to a timestamped sibling
// unless a backup newer than the window already exists. It returns the
// path of the copy it made, or "" when the existing backup is still
// fresh.
func (m *backupManager) maybeBackup(savePath string) (string, error) {
	latest, err := m.latestBackup(savePath)
	if err != nil {
		return "", err
	}

	now := m.now()
	if !latest.IsZero() && now.Sub(latest) <= m.window {
		return "", nil
	}

	dest := fmt.Sprintf("%s%s%d", savePath, backupInfix, now.UnixMilli())
	if err := copyFile(savePath, dest); err != nil {
		return "", err
	}

	return dest, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
