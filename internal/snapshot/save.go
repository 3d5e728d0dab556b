package snapshot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/olivier-w/springcurve/internal/scene"
)

// ErrExists is returned when the destination file is already there.
var ErrExists = errors.New("file already exists")

// DefaultName returns a timestamped file name for a snapshot taken at now.
func DefaultName(now time.Time) string {
	return "springcurve-" + now.Format("20060102-150405") + ".png"
}

// SaveFile renders src to a new PNG at path. It never overwrites.
func SaveFile(path string, src scene.Source, opts Options) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%s: %w", path, ErrExists)
		}
		return fmt.Errorf("creating snapshot: %w", err)
	}
	if err := WritePNG(f, src, opts); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing snapshot: %w", err)
	}
	return nil
}
