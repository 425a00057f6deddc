package config

import (
	"context"
	"os"
	"time"
)

// WatchFile polls a file's mtime and calls onChange whenever it moves
// forward. It performs an initial stat before entering the loop and
// blocks until ctx is done. Transient stat failures are skipped.
func WatchFile(ctx context.Context, path string, interval time.Duration, onChange func()) error {
	if interval <= 0 {
		interval = 5 * time.Second
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	lastMod := info.ModTime()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				continue // transient errors
			}
			if !info.ModTime().After(lastMod) {
				continue
			}
			lastMod = info.ModTime()
			if onChange != nil {
				onChange()
			}
		}
	}
}
