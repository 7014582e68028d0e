package filestorage

import (
	"errors"
	"mime/multipart"
)

// Upload validation errors
var (
	ErrNoFile          = errors.New("no file uploaded")
	ErrFileTooLarge    = errors.New("file is too large")
	ErrUnsupportedType = errors.New("unsupported file type")
)

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFileWithPath stores the upload under subPath and returns its public URL
	SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a file previously returned by SaveFileWithPath
	DeleteFile(fileURL string) error
}
