package places

import (
	"context"
	"log/slog"

	"github.com/red4golf/historical-places-explorer/internal/platform/apperr"
	"github.com/red4golf/historical-places-explorer/internal/platform/validate"
	"github.com/red4golf/historical-places-explorer/pkg/slug"
)

// Admin-entered records must fall inside the Pacific Northwest region the
// map covers. Draft submissions are only checked against global WGS84
// bounds; the narrower check is an admin-editor rule.
const (
	regionMinLat = 42.0
	regionMaxLat = 49.0
	regionMinLng = -124.5
	regionMaxLng = -116.5
)

// Service implements the published-location API and the draft moderation
// workflow over the two storage partitions.
type Service struct {
	locations      LocationRepository
	drafts         DraftRepository
	preserveLabels bool
	logger         *slog.Logger
}

// NewService constructs the places service.
//
// preserveLabels controls whether approval carries a draft's
// historicalPeriods and tags into the verified record; the historical
// behavior (false) resets both to empty.
func NewService(locations LocationRepository, drafts DraftRepository, preserveLabels bool, logger *slog.Logger) *Service {
	return &Service{
		locations:      locations,
		drafts:         drafts,
		preserveLabels: preserveLabels,
		logger:         logger,
	}
}

// ListAll returns every verified location followed by every pending draft,
// each tagged with its provenance. Individual unreadable documents are
// skipped by the store, never failing the whole listing.
func (service *Service) ListAll(context context.Context) ([]ListedLocation, error) {
	verified, err := service.locations.List(context)
	if err != nil {
		return nil, err
	}
	drafts, err := service.drafts.List(context)
	if err != nil {
		return nil, err
	}

	listed := make([]ListedLocation, 0, len(verified)+len(drafts))
	for _, location := range verified {
		listed = append(listed, ListedLocation{Location: location})
	}
	for _, draft := range drafts {
		listed = append(listed, ListedLocation{
			Location:    draft.Location,
			IsDraft:     true,
			Status:      draft.Status,
			ReviewNotes: draft.ReviewNotes,
		})
	}
	return listed, nil
}

// Get returns a verified location by id. Anything other than a missing
// document (corrupt file, I/O failure) surfaces as a generic internal
// error; the caller cannot act on the distinction.
func (service *Service) Get(context context.Context, id string) (*Location, error) {
	location, err := service.locations.Get(context, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, err
		}
		return nil, apperr.Internal(err)
	}
	return location, nil
}

// Create writes a complete verified location document. The caller supplies
// the whole record; when the id is missing it is derived from the name.
func (service *Service) Create(context context.Context, location *Location) (*Location, error) {
	if location.ID == "" && location.Name.Current != "" {
		location.ID = slug.From(location.Name.Current)
	}
	if err := service.validateVerified(location); err != nil {
		return nil, err
	}

	if err := service.locations.Put(context, location); err != nil {
		return nil, err
	}
	service.logger.InfoContext(context, "location_created", slog.String("id", location.ID))
	return location, nil
}

// Update replaces the stored document wholesale. There is no partial-field
// patching; the path id wins over any id in the body.
func (service *Service) Update(context context.Context, id string, location *Location) (*Location, error) {
	location.ID = id
	if err := service.validateVerified(location); err != nil {
		return nil, err
	}

	if err := service.locations.Put(context, location); err != nil {
		return nil, err
	}
	service.logger.InfoContext(context, "location_updated", slog.String("id", id))
	return location, nil
}

// Delete removes a verified location by id.
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.locations.Delete(context, id); err != nil {
		return err
	}
	service.logger.InfoContext(context, "location_deleted", slog.String("id", id))
	return nil
}

// validateVerified enforces the admin-editor rules: complete identity
// fields and coordinates inside the regional bounds.
func (service *Service) validateVerified(location *Location) error {
	v := &validate.Validator{}
	v.Required("id", location.ID)
	if location.ID != "" {
		v.Slug("id", location.ID)
	}
	v.Required("name", location.Name.Current)
	v.Required("shortDescription", location.ShortDescription)
	v.Custom("coordinates", location.Coordinates == nil, "Coordinates are required")
	if location.Coordinates != nil {
		v.FloatRange("coordinates.lat", location.Coordinates.Lat, regionMinLat, regionMaxLat)
		v.FloatRange("coordinates.lng", location.Coordinates.Lng, regionMinLng, regionMaxLng)
	}
	return v.Err()
}
