package destination

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Dir writes files into a local directory, replacing an existing file with
// the same name.
type Dir struct {
	path string
}

func NewDir(path string) *Dir {
	if path == "" {
		path = "."
	}
	return &Dir{path: path}
}

func (d *Dir) Deliver(ctx context.Context, fileName, _ string, body io.Reader) error {
	if fileName != filepath.Base(fileName) {
		return fmt.Errorf("file name %q must not contain a path", fileName)
	}
	if err := os.MkdirAll(d.path, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	target := filepath.Join(d.path, fileName)
	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}

	if _, err := io.Copy(f, body); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", target, err)
	}

	zerolog.Ctx(ctx).Info().Str("path", target).Msg("report written")
	return nil
}

// Path returns where a file with the given name ends up.
func (d *Dir) Path(fileName string) string {
	return filepath.Join(d.path, fileName)
}

func (d *Dir) String() string {
	return d.path
}
