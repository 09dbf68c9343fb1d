// Package storage provides object storage implementations for generated
// documents.
package storage

import (
	"context"
	"time"
)

// ContentTypePDF is the content type for uploaded PDF documents
const ContentTypePDF = "application/pdf"

// ObjectStorage stores generated documents and hands out time-limited
// download URLs for them.
type ObjectStorage interface {
	// Upload writes an object under the given key, overwriting any
	// previous object with the same key.
	Upload(ctx context.Context, key string, data []byte, contentType string) error

	// PresignDownload returns a presigned GET URL for the object and the
	// instant the URL expires. A non-positive expiresIn uses the storage's
	// configured default.
	PresignDownload(ctx context.Context, key string, expiresIn time.Duration) (string, time.Time, error)
}

// Storage error codes
const (
	ErrCodeInvalidKey    = "INVALID_KEY"
	ErrCodeUploadFailed  = "UPLOAD_FAILED"
	ErrCodePresignFailed = "PRESIGN_FAILED"
)

// StorageError represents an error from the object storage backend
type StorageError struct {
	Code    string
	Message string
	Cause   error
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewStorageError creates a new StorageError
func NewStorageError(code, message string, cause error) *StorageError {
	return &StorageError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
