package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/red4golf/historical-places-explorer/internal/media"
	"github.com/red4golf/historical-places-explorer/internal/places"
	"github.com/red4golf/historical-places-explorer/internal/platform/config"
	"github.com/red4golf/historical-places-explorer/internal/stories"
)

// envelope mirrors the success wrapper every endpoint writes.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

type errorEnvelope struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func newTestServer(t *testing.T) (http.Handler, string) {
	t.Helper()

	root := t.TempDir()
	cfg := &config.Config{
		ServerPort:     "0",
		Environment:    "test",
		ContentRoot:    root,
		MaxUploadBytes: 1 << 20,
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	placesService := places.NewService(
		places.NewLocationStore(cfg.LocationsDir()),
		places.NewDraftStore(cfg.DraftsDir()),
		cfg.ApprovePreserveLabels,
		logger,
	)
	mediaService := media.NewService(cfg.MediaDir, cfg.MaxUploadBytes, logger)
	storiesService := stories.NewService(cfg.StoriesDir(), logger)

	liveness, readiness := NewHealthHandlers(HealthDependencies{
		CheckContentStore: func() error { return nil },
	}, logger)

	server := NewServer(context.Background(), cfg, logger, Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Places:    places.NewHandler(placesService),
		Media:     media.NewHandler(mediaService, cfg.MaxUploadBytes),
		Stories:   stories.NewHandler(storiesService),
	})
	return server.Router(), root
}

func doJSON(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, target, reader)
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func decodeData(t *testing.T, recorder *httptest.ResponseRecorder, out any) {
	t.Helper()
	var wrapped envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &wrapped))
	require.NoError(t, json.Unmarshal(wrapped.Data, out))
}

func TestHealthEndpoints(t *testing.T) {
	router, _ := newTestServer(t)

	recorder := doJSON(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, router, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "content_store")
}

/*
TestDraftLifecycle drives a submission through the full review pipeline:
submit, list, annotate, approve, then read it back as a verified record.
*/
func TestDraftLifecycle(t *testing.T) {
	router, _ := newTestServer(t)

	submission := `{
		"id": "x1",
		"name": "Old Pier",
		"coordinates": {"lat": 47.6, "lng": -122.5},
		"shortDescription": "A pier that outlived its town.",
		"historicalPeriods": ["1900s"],
		"tags": ["maritime"]
	}`

	// Submit
	recorder := doJSON(t, router, http.MethodPost, "/api/locations/draft", submission)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var draft places.Draft
	decodeData(t, recorder, &draft)
	assert.Equal(t, places.StatusPendingReview, draft.Status)
	require.NotNil(t, draft.SubmittedAt)

	// The draft shows up in the review queue and in the merged listing.
	recorder = doJSON(t, router, http.MethodGet, "/api/locations/drafts", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	var queue []places.Draft
	decodeData(t, recorder, &queue)
	require.Len(t, queue, 1)
	assert.Equal(t, "x1", queue[0].ID)

	recorder = doJSON(t, router, http.MethodGet, "/api/locations/", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	var listed []places.ListedLocation
	decodeData(t, recorder, &listed)
	require.Len(t, listed, 1)
	assert.True(t, listed[0].IsDraft)

	// Annotate
	recorder = doJSON(t, router, http.MethodPost, "/api/locations/draft/x1/notes", `{"note": "needs photo"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	decodeData(t, recorder, &draft)
	require.Len(t, draft.ReviewNotes, 1)
	assert.Equal(t, "needs photo", draft.ReviewNotes[0].Text)

	// Approve
	recorder = doJSON(t, router, http.MethodPost, "/api/locations/draft/x1/approve", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var approved places.Location
	decodeData(t, recorder, &approved)
	assert.Equal(t, "x1", approved.ID)
	assert.Equal(t, []string{}, approved.Tags)
	assert.Equal(t, []string{}, approved.HistoricalPeriods)
	assert.NotNil(t, approved.ApprovedAt)

	// The verified record is readable and the queue is empty.
	recorder = doJSON(t, router, http.MethodGet, "/api/locations/x1", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, router, http.MethodGet, "/api/locations/drafts", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	queue = nil
	decodeData(t, recorder, &queue)
	assert.Empty(t, queue)
}

func TestDraftSubmission_Invalid(t *testing.T) {
	router, _ := newTestServer(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/locations/draft", `{"name": "No Coordinates"}`)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var failure errorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &failure))
	assert.Equal(t, "VALIDATION_ERROR", failure.Code)
}

func TestGetLocation_NotFound(t *testing.T) {
	router, _ := newTestServer(t)

	recorder := doJSON(t, router, http.MethodGet, "/api/locations/missing", "")
	require.Equal(t, http.StatusNotFound, recorder.Code)

	var failure errorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &failure))
	assert.Equal(t, "NOT_FOUND", failure.Code)
}

func TestMediaUpload(t *testing.T) {
	router, root := newTestServer(t)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", `form-data; name="file"; filename="pier.png"`)
	partHeader.Set("Content-Type", "image/png")
	part, err := form.CreatePart(partHeader)
	require.NoError(t, err)
	_, err = part.Write([]byte("not really a png"))
	require.NoError(t, err)
	require.NoError(t, form.WriteField("caption", "The pier in 1910"))
	require.NoError(t, form.Close())

	request := httptest.NewRequest(http.MethodPost, "/api/media/upload", &body)
	request.Header.Set("Content-Type", form.FormDataContentType())
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var upload media.Upload
	decodeData(t, recorder, &upload)
	assert.Equal(t, "The pier in 1910", upload.Caption)

	_, err = os.Stat(filepath.Join(root, "media", "image", upload.Filename))
	require.NoError(t, err)

	// Delete it through the API.
	recorder = doJSON(t, router, http.MethodDelete, "/api/media/"+upload.Filename, "")
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestStoryEndpoints(t *testing.T) {
	router, root := newTestServer(t)

	story := "---\ntitle: The Pier\n---\n# The Pier\n\nStill standing.\n"
	require.NoError(t, os.MkdirAll(filepath.Join(root, "stories"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "stories", "pier.md"), []byte(story), 0o644))

	recorder := doJSON(t, router, http.MethodGet, "/api/stories/pier.md", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, story, recorder.Body.String())

	recorder = doJSON(t, router, http.MethodGet, "/api/stories/pier.md/parsed", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	var parsed stories.Story
	decodeData(t, recorder, &parsed)
	assert.Equal(t, "The Pier", parsed.Metadata.Title)

	recorder = doJSON(t, router, http.MethodGet, "/api/stories/pier.md/html", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "<h1")
}
