// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-doppler-env/models"
	"github.com/joho/godotenv"
)

const (
	backupTempPattern = ".doppler-backup-*"
	backupFileMode    = 0o600
)

type fileBackupStorage struct{}

// NewFileBackupStorage returns a [BackupStorage] that keeps the backup as a
// dotenv file with one KEY="VALUE" line per variable.
func NewFileBackupStorage() BackupStorage {
	return &fileBackupStorage{}
}

func (s *fileBackupStorage) Load(ctx context.Context, path string) (models.Variables, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vars, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrBackupNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadingBackup, path, err)
	}

	return models.Variables(vars), nil
}

// Save writes vars into a fresh temporary directory next to path and then
// renames the file into place. The temporary directory lives on the same
// filesystem as path so the rename is atomic.
func (s *fileBackupStorage) Save(ctx context.Context, path string, vars models.Variables) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content, err := MarshalDotenv(vars)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingBackup, err)
	}

	tmpDir, err := os.MkdirTemp(filepath.Dir(path), backupTempPattern)
	if err != nil {
		return fmt.Errorf("%w: creating temp dir: %w", ErrWritingBackup, err)
	}
	defer os.RemoveAll(tmpDir)

	tmpFile := filepath.Join(tmpDir, filepath.Base(path))
	if err = os.WriteFile(tmpFile, []byte(content), backupFileMode); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingBackup, err)
	}

	if err = os.Rename(tmpFile, path); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingBackup, err)
	}

	return nil
}

// MarshalDotenv renders vars as sorted KEY="VALUE" lines. godotenv writes
// integer-looking values unquoted and in canonical form, which would turn
// "007" into 7, so those are quoted verbatim here.
func MarshalDotenv(vars models.Variables) (string, error) {
	var b strings.Builder
	for _, key := range slices.Sorted(maps.Keys(vars)) {
		value := vars[key]
		if _, err := strconv.Atoi(value); err == nil {
			fmt.Fprintf(&b, "%s=\"%s\"\n", key, value)
			continue
		}

		line, err := godotenv.Marshal(map[string]string{key: value})
		if err != nil {
			return "", err
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String(), nil
}
