// Package picture stores one picture per property, named property_<id><ext>.
package picture

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/beesaferoot/property-leasing/models"
)

// Extensions lists the accepted picture formats.
var Extensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp"}

// Store is implemented by every picture backend. Storing a picture replaces any
// earlier picture of the same property.
type Store interface {
	Store(ctx context.Context, propertyID uint, sourcePath string) (string, error)
	Lookup(ctx context.Context, propertyID uint) (string, bool, error)
	Remove(ctx context.Context, propertyID uint) error
}

// FileName is the stored name of a property's picture.
func FileName(propertyID uint, ext string) string {
	return fmt.Sprintf("property_%d%s", propertyID, ext)
}

func Supported(ext string) bool {
	ext = strings.ToLower(ext)
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// checkSource returns the lower-cased extension of a readable picture file.
// A missing file is reported before its format.
func checkSource(path string) (string, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", &models.NotFoundError{What: path}
	}
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", &models.ValidationError{Field: "picture", Reason: path + " is a directory"}
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !Supported(ext) {
		return "", &models.ValidationError{
			Field:  "picture",
			Reason: fmt.Sprintf("unsupported format %q, use one of %s", ext, strings.Join(Extensions, " ")),
		}
	}
	return ext, nil
}
