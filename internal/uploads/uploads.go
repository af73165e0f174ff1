// Package uploads stores admin-submitted image files on local disk and
// maps them to their public /uploads paths.
package uploads

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/lapirenov/backend/internal/logger"
)

// Upload constraints
const (
	// MaxFileSize is the per-file size ceiling in bytes (5 MB).
	MaxFileSize = 5 * 1024 * 1024
	// MaxGalleryFiles caps the gallery multipart slot.
	MaxGalleryFiles = 12
	// PublicPrefix is the URL prefix uploaded files are served under.
	PublicPrefix = "/uploads/"
)

// Multipart field names accepted by the admin project routes.
const (
	FieldImage   = "imageFile"
	FieldGallery = "imageFiles"
)

// Upload rejection errors. These are request-level failures, distinct from
// payload validation errors, and get their own user-facing messages.
var (
	ErrNotAnImage   = errors.New("Seules les images sont autorisees.")
	ErrFileTooLarge = errors.New("Image trop volumineuse. Taille maximale: 5 MB.")
)

// Manager stores uploaded files in a local directory.
type Manager struct {
	dir string
}

// NewManager creates a Manager rooted at dir, creating the directory if
// missing.
func NewManager(dir string) (*Manager, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &Manager{dir: dir}, nil
}

// Dir returns the absolute upload directory path.
func (m *Manager) Dir() string {
	return m.dir
}

// PublicPath maps a stored filename to its public URL path.
func PublicPath(fileName string) string {
	return PublicPrefix + fileName
}

// sanitizeExtension keeps the original extension when it is short and
// plausible, and falls back to .jpg otherwise.
func sanitizeExtension(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" || len(ext) > 8 {
		return ".jpg"
	}
	return ext
}

// newFileName generates a collision-resistant name for a stored file.
func newFileName(originalName string) string {
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), sanitizeExtension(originalName))
}

// checkFile rejects files that are not images or exceed the size ceiling.
func checkFile(file *multipart.FileHeader) error {
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return ErrNotAnImage
	}
	if file.Size > MaxFileSize {
		return ErrFileTooLarge
	}
	return nil
}

// CollectFiles gathers the files from the primary and gallery multipart
// slots, primary first, gallery capped at MaxGalleryFiles.
func CollectFiles(form *multipart.Form) []*multipart.FileHeader {
	if form == nil {
		return nil
	}

	var files []*multipart.FileHeader
	if primary := form.File[FieldImage]; len(primary) > 0 {
		files = append(files, primary[0])
	}
	gallery := form.File[FieldGallery]
	if len(gallery) > MaxGalleryFiles {
		gallery = gallery[:MaxGalleryFiles]
	}
	files = append(files, gallery...)
	return files
}

// Store validates and saves every file, returning the public paths of the
// stored copies. On any rejection the files already written are removed and
// the rejection error is returned.
func (m *Manager) Store(c *fiber.Ctx, files []*multipart.FileHeader) ([]string, error) {
	var paths []string
	for _, file := range files {
		if err := checkFile(file); err != nil {
			m.RemoveAll(paths)
			return nil, err
		}

		fileName := newFileName(file.Filename)
		if err := c.SaveFile(file, filepath.Join(m.dir, fileName)); err != nil {
			m.RemoveAll(paths)
			return nil, fmt.Errorf("save upload: %w", err)
		}
		paths = append(paths, PublicPath(fileName))
	}
	return paths, nil
}

// Remove deletes the file behind a public path. Only paths rooted at
// /uploads/ are touched; a missing file is not an error, anything else is
// logged and swallowed since cleanup is best-effort.
func (m *Manager) Remove(publicPath string) {
	if !strings.HasPrefix(publicPath, PublicPrefix) {
		return
	}

	fileName := strings.TrimPrefix(publicPath, PublicPrefix)
	absolutePath := filepath.Join(m.dir, fileName)

	if err := os.Remove(absolutePath); err != nil && !os.IsNotExist(err) {
		logger.Errorf("Unable to remove upload file %s: %v", absolutePath, err)
	}
}

// RemoveAll deletes every file behind the given public paths.
func (m *Manager) RemoveAll(publicPaths []string) {
	for _, path := range publicPaths {
		m.Remove(path)
	}
}
