package store

import "errors"

var (
	// ErrBackupNotFound is returned by Load when there is no file at the
	// backup path.
	ErrBackupNotFound = errors.New("backup file not found")

	// ErrReadingBackup is returned when the backup exists but cannot be
	// opened or parsed as dotenv.
	ErrReadingBackup = errors.New("failed to read backup file")

	// ErrEncodingBackup is returned when variables cannot be serialised to
	// dotenv.
	ErrEncodingBackup = errors.New("failed to encode backup")

	// ErrWritingBackup is returned when the temporary file cannot be written
	// or moved onto the backup path.
	ErrWritingBackup = errors.New("failed to write backup file")
)
