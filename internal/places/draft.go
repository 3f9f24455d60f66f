package places

import "time"

// StatusPendingReview is the only persisted draft status. There is no
// rejected status: rejection deletes the document outright.
const StatusPendingReview = "pending_review"

// ReviewNote is one append-only moderation annotation on a draft.
type ReviewNote struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Draft is a submitter-provided candidate record awaiting moderation.
// It carries the full Location shape plus review state, and lives in the
// drafts partition until it is approved (moved) or rejected (deleted).
type Draft struct {
	Location
	Status      string       `json:"status"`
	ReviewNotes []ReviewNote `json:"reviewNotes"`
}
