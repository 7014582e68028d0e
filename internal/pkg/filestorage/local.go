package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/harish176/placement-portal/internal/pkg/logger"
)

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where files will be stored
	baseURL  string // Public URL prefix the directory is served under
}

// NewLocalStorage creates a new LocalStorage instance.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// ValidateUpload checks size and extension before anything touches disk.
func ValidateUpload(fileHeader *multipart.FileHeader, maxSize int64, allowedExts ...string) error {
	if fileHeader == nil {
		return ErrNoFile
	}
	if fileHeader.Size > maxSize {
		return fmt.Errorf("%w: %d bytes exceeds %d", ErrFileTooLarge, fileHeader.Size, maxSize)
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	for _, allowed := range allowedExts {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
}

// SaveFileWithPath saves a file to a specified subdirectory under a random
// name and returns the URL it is served at.
func (ls *LocalStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", ErrNoFile
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	subPath = cleanSubPath(subPath)
	dir := filepath.Join(ls.basePath, filepath.FromSlash(subPath))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Error().Err(err).Str("path", dir).Msg("Failed to create subdirectory")
		return "", fmt.Errorf("failed to create subdirectory: %w", err)
	}

	uniqueFilename := uuid.New().String() + strings.ToLower(filepath.Ext(fileHeader.Filename))
	dstPath := filepath.Join(dir, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	url := ls.baseURL + "/" + path.Join(subPath, uniqueFilename)
	logger.Info().Str("filename", fileHeader.Filename).Str("url", url).Msg("File saved successfully")
	return url, nil
}

// DeleteFile removes a file given the URL SaveFileWithPath returned.
// Missing files are not an error.
func (ls *LocalStorage) DeleteFile(fileURL string) error {
	physicalPath, ok := ls.localPath(fileURL)
	if !ok {
		return fmt.Errorf("file %q is not managed by this storage", fileURL)
	}

	if err := os.Remove(physicalPath); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
			return nil
		}
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted successfully")
	return nil
}

// localPath maps a served URL back to disk, refusing anything outside basePath.
func (ls *LocalStorage) localPath(fileURL string) (string, bool) {
	rel := strings.TrimPrefix(fileURL, ls.baseURL)
	if rel == fileURL && ls.baseURL != "" {
		return "", false
	}
	rel = cleanSubPath(rel)
	if rel == "" {
		return "", false
	}
	return filepath.Join(ls.basePath, filepath.FromSlash(rel)), true
}

// cleanSubPath normalises a slash path and strips any attempt to climb out.
func cleanSubPath(p string) string {
	p = path.Clean("/" + strings.ReplaceAll(p, "\\", "/"))
	return strings.TrimPrefix(p, "/")
}
