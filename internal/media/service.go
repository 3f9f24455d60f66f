package media

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/red4golf/historical-places-explorer/internal/platform/apperr"
	"github.com/red4golf/historical-places-explorer/internal/platform/constants"
)

// Service validates and stores uploaded media assets under type-partitioned
// directories (media/<kind>/).
type Service struct {
	mediaDir func(kind string) string
	maxBytes int64
	logger   *slog.Logger
}

// NewService constructs the media service. mediaDir maps a kind to its
// partition directory; maxBytes is the upload size ceiling.
func NewService(mediaDir func(kind string) string, maxBytes int64, logger *slog.Logger) *Service {
	return &Service{
		mediaDir: mediaDir,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// Ingest validates an upload and writes it to the kind's partition.
//
// The stored name is <stem>-<unix-millis>-<random>.<ext>. Uniqueness rests
// on the timestamp plus random suffix; existing files are not inspected.
// The original name is reduced to its base name first, so it can never
// steer the write outside the partition.
func (service *Service) Ingest(context context.Context, data []byte, originalName, declaredType, kind string) (*Upload, error) {
	if kind == "" {
		kind = constants.MediaKindImage
	}

	allowed, knownKind := allowedMimeTypes[kind]
	if !knownKind {
		return nil, apperr.InvalidMediaType(fmt.Sprintf("Unknown media type %q", kind))
	}

	mimeType := declaredType
	if parsed, _, err := mime.ParseMediaType(declaredType); err == nil {
		mimeType = parsed
	}
	if !allowed[mimeType] {
		return nil, apperr.InvalidMediaType(fmt.Sprintf("MIME type %q is not allowed for %s uploads", declaredType, kind))
	}

	if int64(len(data)) > service.maxBytes {
		return nil, apperr.PayloadTooLarge(fmt.Sprintf("Upload exceeds the %d byte limit", service.maxBytes))
	}

	filename := storedName(originalName)

	dir := service.mediaDir(kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperr.Internal(fmt.Errorf("media: create partition %s: %w", dir, err))
	}
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return nil, apperr.Internal(fmt.Errorf("media: write %s: %w", filename, err))
	}

	service.logger.InfoContext(context, "media_stored",
		slog.String("filename", filename),
		slog.String("kind", kind),
		slog.Int("bytes", len(data)),
	)

	return &Upload{
		Filename: filename,
		Path:     path.Join("/content/media", kind, filename),
	}, nil
}

// Remove deletes a stored asset by filename, probing every kind partition
// in fixed order because the kind is not recorded with the reference.
func (service *Service) Remove(context context.Context, filename string) error {
	filename = filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	// filepath.Base passes "." and ".." through, which would resolve to
	// the partition directory or its parent.
	if filename == "." || filename == ".." || filename == "/" {
		return apperr.NotFound("Media file")
	}

	for _, kind := range kindProbeOrder {
		err := os.Remove(filepath.Join(service.mediaDir(kind), filename))
		if err == nil {
			service.logger.InfoContext(context, "media_removed",
				slog.String("filename", filename),
				slog.String("kind", kind),
			)
			return nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return apperr.Internal(fmt.Errorf("media: delete %s: %w", filename, err))
		}
	}
	return apperr.NotFound("Media file")
}

// storedName builds the unique on-disk name from the sanitized original.
func storedName(originalName string) string {
	base := filepath.Base(strings.ReplaceAll(originalName, "\\", "/"))
	base = strings.TrimLeft(base, ".")
	if base == "" || base == "/" {
		base = "upload"
	}

	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		stem = "upload"
	}

	suffix := fmt.Sprintf("%d-%d", time.Now().UnixMilli(), rand.Intn(1_000_000_000))
	return stem + "-" + suffix + ext
}
