package media

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/red4golf/historical-places-explorer/internal/platform/apperr"
	requestutil "github.com/red4golf/historical-places-explorer/internal/platform/request"
	"github.com/red4golf/historical-places-explorer/internal/platform/respond"
)

type Handler struct {
	service  *Service
	maxBytes int64
}

func NewHandler(service *Service, maxBytes int64) *Handler {
	return &Handler{service: service, maxBytes: maxBytes}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/upload", handler.upload)
	router.Delete("/{filename}", handler.remove)
	return router
}

func (handler *Handler) upload(writer http.ResponseWriter, request *http.Request) {
	file, header, err := request.FormFile("file")
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("No file uploaded"))
		return
	}
	defer file.Close()

	// One byte past the ceiling so the service sees the over-limit case
	// and reports PAYLOAD_TOO_LARGE itself.
	data, err := io.ReadAll(io.LimitReader(file, handler.maxBytes+1))
	if err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	upload, err := handler.service.Ingest(
		request.Context(),
		data,
		header.Filename,
		header.Header.Get("Content-Type"),
		request.FormValue("type"),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	upload.Caption = request.FormValue("caption")
	respond.Created(writer, upload)
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	filename := requestutil.Param(request, "filename")

	if err := handler.service.Remove(request.Context(), filename); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
