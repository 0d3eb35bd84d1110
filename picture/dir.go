package picture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Dir keeps pictures in a local directory, created on first use.
type Dir struct {
	Root string
}

var _ Store = (*Dir)(nil)

func NewDir(root string) *Dir {
	return &Dir{Root: root}
}

func (d *Dir) Store(_ context.Context, propertyID uint, sourcePath string) (string, error) {
	ext, err := checkSource(sourcePath)
	if err != nil {
		return "", err
	}
	dest := filepath.Join(d.Root, FileName(propertyID, ext))
	if same(sourcePath, dest) {
		return dest, nil
	}
	if err := os.MkdirAll(d.Root, 0o755); err != nil {
		return "", fmt.Errorf("failed to create picture directory: %w", err)
	}
	if err := replaceFile(sourcePath, dest); err != nil {
		return "", fmt.Errorf("failed to copy picture: %w", err)
	}
	if err := d.removeExcept(propertyID, ext); err != nil {
		return "", err
	}
	return dest, nil
}

func (d *Dir) Lookup(_ context.Context, propertyID uint) (string, bool, error) {
	for _, ext := range Extensions {
		path := filepath.Join(d.Root, FileName(propertyID, ext))
		_, err := os.Stat(path)
		if err == nil {
			return path, true, nil
		}
		if !os.IsNotExist(err) {
			return "", false, err
		}
	}
	return "", false, nil
}

// Remove deletes every stored picture of the property. A property without a picture is not an error.
func (d *Dir) Remove(_ context.Context, propertyID uint) error {
	return d.removeExcept(propertyID, "")
}

func (d *Dir) removeExcept(propertyID uint, keep string) error {
	var errs []error
	for _, ext := range Extensions {
		if ext == keep {
			continue
		}
		err := os.Remove(filepath.Join(d.Root, FileName(propertyID, ext)))
		if err != nil && !os.IsNotExist(err) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// replaceFile copies src next to dst and renames it into place, so dst is
// either the old file or the complete new one.
func replaceFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dst)
}

func same(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}
