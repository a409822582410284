// Package backup writes a daily JSON dump of the database and prunes old dumps.
package backup

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/junaidrashid-git/storefront-api/dataio"
)

const (
	filePrefix      = "storefront-"
	fileExt         = ".json"
	timestampLayout = "2006-01-02_15-04-05"
)

type Scheduler struct {
	DB        *gorm.DB
	Dir       string
	Hour      int
	Retention time.Duration
	Log       *zap.Logger

	now func() time.Time
}

func (s *Scheduler) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

// Run backs up daily at s.Hour:00 local time until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		next := nextRun(s.clock(), s.Hour)
		s.Log.Info("next database backup scheduled", zap.Time("at", next))

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		if path, err := s.Backup(ctx); err != nil {
			s.Log.Error("database backup failed", zap.Error(err))
		} else {
			s.Log.Info("database backed up", zap.String("path", path))
		}

		removed, err := cleanupOldBackups(s.Dir, s.Retention, s.clock())
		if err != nil {
			s.Log.Error("backup cleanup failed", zap.Error(err))
		} else if removed > 0 {
			s.Log.Info("old backups removed", zap.Int("count", removed))
		}
	}
}

// Backup writes one dump now and returns its path.
func (s *Scheduler) Backup(ctx context.Context) (string, error) {
	name := filePrefix + s.clock().Format(timestampLayout) + fileExt
	path := filepath.Join(s.Dir, name)
	if _, err := dataio.ExportFile(ctx, s.DB, path); err != nil {
		return "", err
	}
	return path, nil
}

// nextRun is the first hour:00 strictly after now.
func nextRun(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// cleanupOldBackups removes dump files older than retention and reports how
// many went. Files not written by Backup are left alone.
func cleanupOldBackups(dir string, retention time.Duration, now time.Time) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	cutoff := now.Add(-retention)
	removed := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileExt) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return removed, err
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(dir, name)); err != nil {
				return removed, err
			}
			removed++
		}
	}
	return removed, nil
}
