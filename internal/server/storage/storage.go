// Package storage stores uploaded images (item photos and claim proofs) and
// returns a reference the API serves back to clients.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Store persists uploaded files.
type Store interface {
	// Save writes the content and returns the stored reference: a relative
	// URL for the disk backend, an object key for S3.
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
	Delete(ctx context.Context, ref string) error
}

// randomKey builds a collision-free storage key keeping the upload's
// extension, grouped by date.
func randomKey(filename string) string {
	d := time.Now()
	return fmt.Sprintf("%d/%02d/%02d/%s%s", d.Year(), d.Month(), d.Day(), uuid.New(), filepath.Ext(filename))
}
