package stories

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	requestutil "github.com/red4golf/historical-places-explorer/internal/platform/request"
	"github.com/red4golf/historical-places-explorer/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{filename}", handler.getRaw)
	router.Get("/{filename}/parsed", handler.getParsed)
	router.Get("/{filename}/html", handler.getHTML)
	return router
}

func (handler *Handler) getRaw(writer http.ResponseWriter, request *http.Request) {
	filename := requestutil.Param(request, "filename")

	raw, err := handler.service.Raw(request.Context(), filename)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Markdown(writer, raw)
}

func (handler *Handler) getParsed(writer http.ResponseWriter, request *http.Request) {
	filename := requestutil.Param(request, "filename")

	story, err := handler.service.Parsed(request.Context(), filename)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, story)
}

func (handler *Handler) getHTML(writer http.ResponseWriter, request *http.Request) {
	filename := requestutil.Param(request, "filename")

	rendered, err := handler.service.RenderHTML(request.Context(), filename)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.HTML(writer, rendered)
}
