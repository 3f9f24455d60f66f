package stories

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/red4golf/historical-places-explorer/internal/platform/apperr"
)

const sampleStory = "---\n" +
	"title: The Mill Fire\n" +
	"tags:\n" +
	"  - industry\n" +
	"---\n" +
	"# The Mill Fire\n\nThe **mill** burned in 1902.\n"

func newTestService(t *testing.T) *Service {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mill-fire.md"), []byte(sampleStory), 0o644))
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewService(dir, logger)
}

func TestRaw(t *testing.T) {
	service := newTestService(t)

	raw, err := service.Raw(context.Background(), "mill-fire.md")
	require.NoError(t, err)
	assert.Equal(t, sampleStory, string(raw))
}

func TestRaw_NotFound(t *testing.T) {
	service := newTestService(t)

	_, err := service.Raw(context.Background(), "no-such.md")
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestRaw_CannotTraverse: a filename with path components only ever resolves
inside the stories directory.
*/
func TestRaw_CannotTraverse(t *testing.T) {
	service := newTestService(t)

	_, err := service.Raw(context.Background(), "../../../etc/passwd")
	assert.True(t, apperr.IsNotFound(err))

	for _, name := range []string{".", "..", ""} {
		_, err := service.Raw(context.Background(), name)
		assert.True(t, apperr.IsNotFound(err), "name %q", name)
	}

	raw, err := service.Raw(context.Background(), "..\\..\\mill-fire.md")
	require.NoError(t, err)
	assert.Equal(t, sampleStory, string(raw))
}

func TestParsed(t *testing.T) {
	service := newTestService(t)

	story, err := service.Parsed(context.Background(), "mill-fire.md")
	require.NoError(t, err)
	assert.Equal(t, "The Mill Fire", story.Metadata.Title)
	assert.Equal(t, []string{"industry"}, story.Metadata.Tags)
	assert.Equal(t, "# The Mill Fire\n\nThe **mill** burned in 1902.\n", story.Body)
}

func TestRenderHTML(t *testing.T) {
	service := newTestService(t)

	html, err := service.RenderHTML(context.Background(), "mill-fire.md")
	require.NoError(t, err)
	assert.Contains(t, string(html), "<h1")
	assert.Contains(t, string(html), "<strong>mill</strong>")
	assert.NotContains(t, string(html), "title: The Mill Fire")
}
