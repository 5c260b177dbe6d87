package service

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oakpress/storefront/internal/metrics"
	"github.com/oakpress/storefront/internal/model"
	"github.com/oakpress/storefront/internal/repository"
)

// MaxUploadSize is the upload payload cap.
const MaxUploadSize = 10 << 20 // 10 MiB

// Upload validation errors.
var (
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileTooLarge    = errors.New("file exceeds maximum size of 10 MiB")
)

// allowedUploadTypes is matched against both the filename extension and the
// declared MIME type.
var allowedUploadTypes = map[string]bool{
	"jpeg": true,
	"jpg":  true,
	"png":  true,
	"gif":  true,
	"pdf":  true,
	"mp3":  true,
	"wav":  true,
}

// UploadService stores uploaded files on disk under content-free unique
// names. File metadata is derived live from the filesystem on listing,
// nothing is recorded separately.
type UploadService struct {
	dir string
}

// NewUploadService creates an upload service writing into dir. The
// directory is created on demand by Store.
func NewUploadService(dir string) *UploadService {
	return &UploadService{dir: dir}
}

// urlFor derives the public URL of a stored file.
func urlFor(filename string) string {
	return "/api/uploads/" + filename
}

// Store validates and writes an uploaded file, returning its metadata. The
// stored name is `<millis>-<rand9digits><ext>`, preserving only the
// original extension.
func (us *UploadService) Store(src io.Reader, originalName, mimeType string, size int64) (*model.StoredFile, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedUploadTypes[strings.TrimPrefix(ext, ".")] || !mimeAllowed(mimeType) {
		return nil, ErrInvalidFileType
	}
	if size > MaxUploadSize {
		return nil, ErrFileTooLarge
	}

	if err := os.MkdirAll(us.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := fmt.Sprintf("%d-%09d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)
	path := filepath.Join(us.dir, filename)

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, io.LimitReader(src, MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to write upload file: %w", err)
	}
	if written > MaxUploadSize {
		// The declared size lied; drop the partial file.
		os.Remove(path)
		return nil, ErrFileTooLarge
	}

	metrics.FilesUploaded.Inc()

	return &model.StoredFile{
		Filename: filename,
		URL:      urlFor(filename),
		Size:     written,
		Created:  time.Now(),
	}, nil
}

// List enumerates the upload directory. A missing directory yields an empty
// listing.
func (us *UploadService) List() ([]model.StoredFile, error) {
	entries, err := os.ReadDir(us.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.StoredFile{}, nil
		}
		return nil, fmt.Errorf("failed to read upload directory: %w", err)
	}

	files := make([]model.StoredFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat uploaded file: %w", err)
		}
		files = append(files, model.StoredFile{
			Filename: entry.Name(),
			URL:      urlFor(entry.Name()),
			Size:     info.Size(),
			Created:  info.ModTime(),
		})
	}
	return files, nil
}

// Delete removes a stored file by name. Only the base name is honored, so
// callers cannot escape the upload directory.
func (us *UploadService) Delete(filename string) error {
	path := filepath.Join(us.dir, filepath.Base(filename))
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return repository.ErrNotFound
		}
		return fmt.Errorf("failed to stat file: %w", err)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	metrics.FilesDeleted.Inc()
	return nil
}

func mimeAllowed(mimeType string) bool {
	for t := range allowedUploadTypes {
		if strings.Contains(mimeType, t) {
			return true
		}
	}
	return false
}
