package media

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/red4golf/historical-places-explorer/internal/platform/apperr"
	"github.com/red4golf/historical-places-explorer/internal/platform/constants"
)

func newTestService(t *testing.T, maxBytes int64) (*Service, string) {
	t.Helper()
	root := t.TempDir()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	service := NewService(func(kind string) string {
		return filepath.Join(root, "media", kind)
	}, maxBytes, logger)
	return service, root
}

/*
TestIngest_MimeAllowList: the declared type decides, never the bytes.
*/
func TestIngest_MimeAllowList(t *testing.T) {
	tests := []struct {
		name     string
		kind     string
		declared string
		allowed  bool
	}{
		{"jpeg_image", "image", "image/jpeg", true},
		{"png_image", "image", "image/png", true},
		{"gif_image", "image", "image/gif", true},
		{"jpeg_with_params", "image", "image/jpeg; charset=binary", true},
		{"zip_as_image", "image", "application/zip", false},
		{"pdf_document", "document", "application/pdf", true},
		{"markdown_document", "document", "text/markdown", true},
		{"png_as_document", "document", "image/png", false},
		{"unknown_kind", "video", "video/mp4", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestService(t, 1024)

			_, err := service.Ingest(context.Background(), []byte("payload"), "file.bin", tt.declared, tt.kind)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, "INVALID_MEDIA_TYPE", apperr.As(err).Code)
			}
		})
	}
}

/*
TestIngest_SizeCeiling: an over-limit payload is rejected even with a valid
MIME type.
*/
func TestIngest_SizeCeiling(t *testing.T) {
	service, _ := newTestService(t, 8)

	_, err := service.Ingest(context.Background(), []byte("123456789"), "big.png", "image/png", "image")
	require.Error(t, err)
	assert.Equal(t, "PAYLOAD_TOO_LARGE", apperr.As(err).Code)

	// At the limit is fine.
	_, err = service.Ingest(context.Background(), []byte("12345678"), "ok.png", "image/png", "image")
	assert.NoError(t, err)
}

/*
TestIngest_StoredName: <stem>-<millis>-<random>.<ext>, written into the
kind partition, defaulting to image.
*/
func TestIngest_StoredName(t *testing.T) {
	service, root := newTestService(t, 1024)

	upload, err := service.Ingest(context.Background(), []byte("abc"), "old pier.jpg", "image/jpeg", "")
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^old pier-\d+-\d+\.jpg$`), upload.Filename)
	assert.Equal(t, "/content/media/image/"+upload.Filename, upload.Path)

	stored, err := os.ReadFile(filepath.Join(root, "media", constants.MediaKindImage, upload.Filename))
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), stored)
}

/*
TestIngest_SanitizesOriginalName: path components in the client-supplied
name never escape the partition.
*/
func TestIngest_SanitizesOriginalName(t *testing.T) {
	service, root := newTestService(t, 1024)

	upload, err := service.Ingest(context.Background(), []byte("abc"), "../../etc/passwd.png", "image/png", "image")
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^passwd-\d+-\d+\.png$`), upload.Filename)
	assert.True(t, os.IsNotExist(func() error {
		_, err := os.Stat(filepath.Join(root, "etc"))
		return err
	}()))
}

/*
TestRemove_ProbesAllPartitions: deletion finds an asset stored under any
kind partition without being told which one.
*/
func TestRemove_ProbesAllPartitions(t *testing.T) {
	service, _ := newTestService(t, 1024)
	ctx := context.Background()

	upload, err := service.Ingest(ctx, []byte("doc"), "notes.md", "text/markdown", "document")
	require.NoError(t, err)

	require.NoError(t, service.Remove(ctx, upload.Filename))

	err = service.Remove(ctx, upload.Filename)
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestRemove_RejectsDirectoryNames: names that resolve to the partition
directory or its parent are nonexistent files, never deletion targets.
*/
func TestRemove_RejectsDirectoryNames(t *testing.T) {
	service, root := newTestService(t, 1024)
	ctx := context.Background()

	_, err := service.Ingest(ctx, []byte("abc"), "keep.png", "image/png", "image")
	require.NoError(t, err)

	for _, name := range []string{".", "..", "", "a/.."} {
		assert.True(t, apperr.IsNotFound(service.Remove(ctx, name)), "name %q", name)
	}

	// The partitions themselves are untouched.
	_, err = os.Stat(filepath.Join(root, "media", constants.MediaKindImage))
	require.NoError(t, err)
}
