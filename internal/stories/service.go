package stories

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/red4golf/historical-places-explorer/internal/platform/apperr"
)

// markdownInstance is initialized once and reused; the goldmark pipeline is
// safe to share across requests.
var markdownInstance = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Service reads narrative documents from the stories directory. The
// documents are produced externally; this service only ever reads them.
type Service struct {
	dir    string
	logger *slog.Logger
}

func NewService(dir string, logger *slog.Logger) *Service {
	return &Service{dir: dir, logger: logger}
}

// Raw returns the stored document verbatim.
func (service *Service) Raw(context context.Context, filename string) ([]byte, error) {
	path, err := service.storyPath(filename)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.NotFound("Story")
		}
		return nil, apperr.Internal(fmt.Errorf("stories: read %s: %w", filename, err))
	}
	return raw, nil
}

// Parsed returns the document split into front-matter metadata and body.
func (service *Service) Parsed(context context.Context, filename string) (*Story, error) {
	raw, err := service.Raw(context, filename)
	if err != nil {
		return nil, err
	}
	story := Parse(string(raw))
	return &story, nil
}

// RenderHTML returns the document body rendered to HTML, front-matter
// stripped.
func (service *Service) RenderHTML(context context.Context, filename string) ([]byte, error) {
	story, err := service.Parsed(context, filename)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := markdownInstance.Convert([]byte(story.Body), &buf); err != nil {
		return nil, apperr.Internal(fmt.Errorf("stories: render %s: %w", filename, err))
	}
	return buf.Bytes(), nil
}

// storyPath resolves a caller-supplied filename inside the stories
// directory. The name is reduced to its base so it cannot traverse out;
// "." and ".." survive filepath.Base and would name the directory itself
// or its parent, so they are treated as nonexistent stories.
func (service *Service) storyPath(filename string) (string, error) {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "." || base == ".." || base == "/" {
		return "", apperr.NotFound("Story")
	}
	return filepath.Join(service.dir, base), nil
}
