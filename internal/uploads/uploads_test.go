package uploads

import (
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType)
	return &multipart.FileHeader{
		Filename: name,
		Header:   header,
		Size:     size,
	}
}

func TestSanitizeExtension(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		expected string
	}{
		{"jpg kept", "photo.jpg", ".jpg"},
		{"uppercase lowered", "photo.JPG", ".jpg"},
		{"png kept", "photo.png", ".png"},
		{"no extension", "photo", ".jpg"},
		{"absurdly long extension", "photo.verylongext", ".jpg"},
		{"empty name", "", ".jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeExtension(tt.fileName))
		})
	}
}

func TestNewFileNameUnique(t *testing.T) {
	a := newFileName("photo.jpg")
	b := newFileName("photo.jpg")
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a, ".jpg"))
}

func TestCheckFile(t *testing.T) {
	assert.NoError(t, checkFile(fileHeader("a.jpg", "image/jpeg", 1024)))
	assert.ErrorIs(t, checkFile(fileHeader("a.pdf", "application/pdf", 1024)), ErrNotAnImage)
	assert.ErrorIs(t, checkFile(fileHeader("a.jpg", "image/jpeg", MaxFileSize+1)), ErrFileTooLarge)
	assert.NoError(t, checkFile(fileHeader("a.jpg", "image/jpeg", MaxFileSize)))
}

func TestPublicPath(t *testing.T) {
	assert.Equal(t, "/uploads/x.jpg", PublicPath("x.jpg"))
}

func TestCollectFiles(t *testing.T) {
	primary := fileHeader("primary.jpg", "image/jpeg", 10)
	gallery := make([]*multipart.FileHeader, 0, MaxGalleryFiles+3)
	for i := 0; i < MaxGalleryFiles+3; i++ {
		gallery = append(gallery, fileHeader("g.jpg", "image/jpeg", 10))
	}

	form := &multipart.Form{
		File: map[string][]*multipart.FileHeader{
			FieldImage:   {primary},
			FieldGallery: gallery,
		},
	}

	files := CollectFiles(form)
	require.Len(t, files, 1+MaxGalleryFiles)
	assert.Same(t, primary, files[0])

	assert.Nil(t, CollectFiles(nil))
}

func TestManagerCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	manager, err := NewManager(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, manager.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	manager, err := NewManager(dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "photo.jpg")
	require.NoError(t, os.WriteFile(path, []byte("fake"), 0o644))

	manager.Remove("/uploads/photo.jpg")
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Missing file is not an error.
	manager.Remove("/uploads/photo.jpg")
}

func TestRemoveIgnoresExternalPaths(t *testing.T) {
	dir := t.TempDir()
	manager, err := NewManager(dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "keep.jpg")
	require.NoError(t, os.WriteFile(path, []byte("fake"), 0o644))

	// Remote URLs and anything outside /uploads/ are left alone.
	manager.Remove("https://example.com/keep.jpg")
	manager.Remove("keep.jpg")

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestRemoveAll(t *testing.T) {
	dir := t.TempDir()
	manager, err := NewManager(dir)
	require.NoError(t, err)

	for _, name := range []string{"a.jpg", "b.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("fake"), 0o644))
	}

	manager.RemoveAll([]string{"/uploads/a.jpg", "/uploads/b.jpg", "https://example.com/c.jpg"})

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
