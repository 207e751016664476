package filestore

import (
	"io"
	"os"
	"testing"

	"palaver/internal/models"

	"github.com/stretchr/testify/require"
)

// Minimal valid PNG header; enough for content sniffing.
var pngBytes = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00}

func newTestFileStore(t *testing.T) *LocalFileStore {
	t.Helper()
	dir, err := os.MkdirTemp("", "filestore_test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	fs, err := NewLocalFileStore(dir)
	require.NoError(t, err)
	return fs
}

func TestSaveAttachmentImage(t *testing.T) {
	fs := newTestFileStore(t)

	att, err := SaveAttachment(fs, "screenshot.png", pngBytes)
	require.NoError(t, err)
	require.Equal(t, models.AttachmentTypeImage, att.Type)
	require.Equal(t, "screenshot.png", att.Name)
	require.Equal(t, int64(len(pngBytes)), att.Size)
	require.NotEmpty(t, att.ID)
	require.NotEmpty(t, att.URL)

	r, err := fs.Get(att.URL)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, pngBytes, data)
}

func TestSaveAttachmentFile(t *testing.T) {
	fs := newTestFileStore(t)

	att, err := SaveAttachment(fs, "notes.txt", []byte("plain text"))
	require.NoError(t, err)
	require.Equal(t, models.AttachmentTypeFile, att.Type)
}

func TestSaveAttachmentDeduplicates(t *testing.T) {
	fs := newTestFileStore(t)

	first, err := SaveAttachment(fs, "a.txt", []byte("same content"))
	require.NoError(t, err)
	second, err := SaveAttachment(fs, "b.txt", []byte("same content"))
	require.NoError(t, err)

	// Same content hashes to the same stored object, metadata stays distinct
	require.Equal(t, first.URL, second.URL)
	require.NotEqual(t, first.ID, second.ID)
}

func TestGetMissing(t *testing.T) {
	fs := newTestFileStore(t)

	_, err := fs.Get("deadbeef")
	require.Error(t, err)
}
