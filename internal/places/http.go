package places

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

// Routes mounts the published-location API and the draft workflow under a
// single /locations subtree, matching the paths the map and admin UIs call.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listLocations)
	router.Post("/", handler.createLocation)

	router.Post("/draft", handler.submitDraft)
	router.Get("/drafts", handler.listDrafts)
	router.Post("/draft/{id}/notes", handler.annotateDraft)
	router.Post("/draft/{id}/approve", handler.approveDraft)
	router.Delete("/draft/{id}", handler.rejectDraft)

	router.Get("/{id}", handler.getLocation)
	router.Put("/{id}", handler.updateLocation)
	router.Delete("/{id}", handler.deleteLocation)

	return router
}

// # Published Location API

func (handler *Handler) listLocations(writer http.ResponseWriter, request *http.Request) {
	listed, err := handler.service.ListAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, listed)
}

func (handler *Handler) getLocation(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	location, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, location)
}

func (handler *Handler) createLocation(writer http.ResponseWriter, request *http.Request) {
	var location Location
	if err := requestutil.DecodeJSON(request, &location); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), &location)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateLocation(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var location Location
	if err := requestutil.DecodeJSON(request, &location); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(), id, &location)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteLocation(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Draft Workflow

func (handler *Handler) submitDraft(writer http.ResponseWriter, request *http.Request) {
	var location Location
	if err := requestutil.DecodeJSON(request, &location); err != nil {
		respond.Error(writer, request, err)
		return
	}

	draft, err := handler.service.SubmitDraft(request.Context(), &location)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, draft)
}

func (handler *Handler) listDrafts(writer http.ResponseWriter, request *http.Request) {
	drafts, err := handler.service.ListDrafts(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, drafts)
}

func (handler *Handler) annotateDraft(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var body struct {
		Note string `json:"note"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	draft, err := handler.service.AnnotateDraft(request.Context(), id, body.Note)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, draft)
}

func (handler *Handler) rejectDraft(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.RejectDraft(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) approveDraft(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	location, err := handler.service.ApproveDraft(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, location)
}
