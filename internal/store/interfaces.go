// Package store persists the last known set of remote variables on the
// local filesystem so a client can start while the remote service is down.
package store

import (
	"context"

	"github.com/MKhiriev/go-doppler-env/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backup_storage_mock.go -package=mock

// BackupStorage reads and writes a dotenv backup of remote variables.
type BackupStorage interface {
	// Load parses the backup at path. A missing file yields ErrBackupNotFound.
	Load(ctx context.Context, path string) (models.Variables, error)
	// Save replaces the backup at path with vars. Readers never observe a
	// partially written file.
	Save(ctx context.Context, path string, vars models.Variables) error
}
