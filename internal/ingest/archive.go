package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Archiver relocates processed source files into per-vendor folders under its
// root. It only ever consumes a ready-made slug; deriving one is the
// extraction side's job.
type Archiver struct {
	Root string
}

func NewArchiver(root string) *Archiver {
	return &Archiver{Root: root}
}

// Move relocates srcPath into <root>/<slug>/, suffixing the filename with
// _1, _2, ... when the destination already exists. Returns the final path.
func (a *Archiver) Move(srcPath, slug string) (string, error) {
	dir := filepath.Join(a.Root, slug)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create vendor folder: %w", err)
	}

	base := filepath.Base(srcPath)
	dest := filepath.Join(dir, base)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(dest); os.IsNotExist(err) {
			break
		}
		dest = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, counter, ext))
	}

	if err := os.Rename(srcPath, dest); err != nil {
		// cross-device fallback
		if err := copyFile(srcPath, dest); err != nil {
			return "", fmt.Errorf("archive %s: %w", base, err)
		}
		if err := os.Remove(srcPath); err != nil {
			return "", fmt.Errorf("remove source %s: %w", base, err)
		}
	}
	return dest, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
