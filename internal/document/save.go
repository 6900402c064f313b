package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/clems4ever/kmltools/internal/logger"
	"github.com/clems4ever/kmltools/internal/tree"
)

// AvailablePath returns preferred when nothing exists there, otherwise the
// first of <base>_1<ext>, <base>_2<ext>, ... that is free.
func AvailablePath(preferred string) string {
	ext := filepath.Ext(preferred)
	base := strings.TrimSuffix(preferred, ext)
	path := preferred
	for i := 1; exists(path); i++ {
		path = fmt.Sprintf("%s_%d%s", base, i, ext)
	}
	return path
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// Save writes root to preferred, or to the next free variant of it, and
// returns the path used. An existing file is never replaced.
func Save(root *tree.Node, preferred string, opts tree.WriteOptions, log *logger.Logger) (string, error) {
	for {
		path := AvailablePath(preferred)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, fs.ErrExist) {
			// created between the probe and the open; probe again
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to create %s: %w", path, err)
		}

		if err := tree.Write(f, root, opts); err != nil {
			f.Close()
			return "", fmt.Errorf("failed to write %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", path, err)
		}
		log.FileCreated(path)
		return path, nil
	}
}

// SafeName turns a track name into a file name component.
func SafeName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.NewReplacer("/", "_", "\\", "_").Replace(name)
	if name == "" || name == "." || name == ".." {
		return "track"
	}
	return name
}
