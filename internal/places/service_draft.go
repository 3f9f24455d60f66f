package places

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/red4golf/historical-places-explorer/internal/platform/apperr"
	"github.com/red4golf/historical-places-explorer/internal/platform/validate"
	"github.com/red4golf/historical-places-explorer/pkg/slug"
)

// SubmitDraft validates a candidate record and persists it as a pending
// draft. Resubmitting an existing id overwrites the prior draft; there is
// no merge.
func (service *Service) SubmitDraft(context context.Context, location *Location) (*Draft, error) {
	v := &validate.Validator{}
	v.Required("name", location.Name.Current)
	v.Custom("coordinates", location.Coordinates == nil, "Coordinates are required")
	if location.Coordinates != nil {
		v.FloatRange("coordinates.lat", location.Coordinates.Lat, -90, 90)
		v.FloatRange("coordinates.lng", location.Coordinates.Lng, -180, 180)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	if location.ID == "" {
		// Names with no ASCII-alphanumeric content slug to nothing; an
		// empty id would store the draft as a hidden dotfile that listings
		// skip, so the submission would vanish from the review queue.
		location.ID = slug.From(location.Name.Current)
		if location.ID == "" {
			return nil, apperr.RequiredError("id", "An id is required when one cannot be derived from the name")
		}
	}

	now := time.Now().UTC()
	draft := &Draft{
		Location:    *location,
		Status:      StatusPendingReview,
		ReviewNotes: []ReviewNote{},
	}
	draft.SubmittedAt = &now
	draft.ApprovedAt = nil

	if err := service.drafts.Put(context, draft); err != nil {
		return nil, err
	}
	service.logger.InfoContext(context, "draft_submitted", slog.String("id", draft.ID))
	return draft, nil
}

// ListDrafts returns all pending drafts, newest submission first. The
// ordering is part of the review-queue contract, not a side effect of
// directory enumeration.
func (service *Service) ListDrafts(context context.Context) ([]Draft, error) {
	drafts, err := service.drafts.List(context)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(drafts, func(i, j int) bool {
		return submittedAt(drafts[i]).After(submittedAt(drafts[j]))
	})
	return drafts, nil
}

// AnnotateDraft appends a review note to a pending draft.
func (service *Service) AnnotateDraft(context context.Context, id, text string) (*Draft, error) {
	v := &validate.Validator{}
	v.Required("note", text)
	if err := v.Err(); err != nil {
		return nil, err
	}

	draft, err := service.drafts.Get(context, id)
	if err != nil {
		return nil, err
	}

	draft.ReviewNotes = append(draft.ReviewNotes, ReviewNote{
		Text:      text,
		Timestamp: time.Now().UTC(),
	})

	if err := service.drafts.Put(context, draft); err != nil {
		return nil, err
	}
	service.logger.InfoContext(context, "draft_annotated", slog.String("id", id))
	return draft, nil
}

// RejectDraft deletes a pending draft. No tombstone remains.
func (service *Service) RejectDraft(context context.Context, id string) error {
	if err := service.drafts.Delete(context, id); err != nil {
		return err
	}
	service.logger.InfoContext(context, "draft_rejected", slog.String("id", id))
	return nil
}

// ApproveDraft publishes a pending draft as a verified location and removes
// the draft — move semantics across two partitions.
//
// The write and the delete are two independent filesystem operations with
// no transaction around them. The operation is safe to replay: re-approving
// rewrites the same projection and a missing draft file on the delete step
// counts as already removed, so a crash between the steps is repaired by
// calling approve again.
func (service *Service) ApproveDraft(context context.Context, id string) (*Location, error) {
	draft, err := service.drafts.Get(context, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	location := &Location{
		ID:                draft.ID,
		Name:              draft.Name,
		Coordinates:       draft.Coordinates,
		ShortDescription:  draft.ShortDescription,
		HistoricalPeriods: []string{},
		Tags:              []string{},
		SubmittedAt:       draft.SubmittedAt,
		ApprovedAt:        &now,
	}

	// Historically approval discards the submitter's period and tag labels;
	// the preserve flag opts in to carrying them over.
	if service.preserveLabels {
		location.HistoricalPeriods = append([]string{}, draft.HistoricalPeriods...)
		location.Tags = append([]string{}, draft.Tags...)
	}

	if err := service.locations.Put(context, location); err != nil {
		return nil, err
	}

	if err := service.drafts.Delete(context, id); err != nil && !apperr.IsNotFound(err) {
		return nil, err
	}

	service.logger.InfoContext(context, "draft_approved", slog.String("id", id))
	return location, nil
}

// submittedAt returns the draft's submission time, zero when unset.
func submittedAt(draft Draft) time.Time {
	if draft.SubmittedAt == nil {
		return time.Time{}
	}
	return *draft.SubmittedAt
}
