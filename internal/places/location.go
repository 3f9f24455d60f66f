package places

import (
	"encoding/json"
	"time"
)

// Name is the display name of a place. Two schema shapes exist in stored
// documents: a plain string and a structured {current, historical} object.
// Both decode into this type; the rest of the package only ever sees the
// canonical form.
type Name struct {
	Current    string
	Historical string
}

// UnmarshalJSON accepts either a JSON string or a {current, historical} object.
func (n *Name) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		n.Current = plain
		n.Historical = ""
		return nil
	}

	var structured struct {
		Current    string `json:"current"`
		Historical string `json:"historical"`
	}
	if err := json.Unmarshal(data, &structured); err != nil {
		return err
	}
	n.Current = structured.Current
	n.Historical = structured.Historical
	return nil
}

// MarshalJSON writes the plain-string form when no historical name is set,
// so documents that arrived in the legacy shape round-trip unchanged.
func (n Name) MarshalJSON() ([]byte, error) {
	if n.Historical == "" {
		return json.Marshal(n.Current)
	}
	return json.Marshal(struct {
		Current    string `json:"current"`
		Historical string `json:"historical"`
	}{n.Current, n.Historical})
}

// Coordinates is a WGS84 point. Older documents spell the keys out as
// latitude/longitude; both spellings are accepted on read, the short form
// is written.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (c *Coordinates) UnmarshalJSON(data []byte) error {
	var raw struct {
		Lat       *float64 `json:"lat"`
		Lng       *float64 `json:"lng"`
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch {
	case raw.Lat != nil:
		c.Lat = *raw.Lat
	case raw.Latitude != nil:
		c.Lat = *raw.Latitude
	}
	switch {
	case raw.Lng != nil:
		c.Lng = *raw.Lng
	case raw.Longitude != nil:
		c.Lng = *raw.Longitude
	}
	return nil
}

// Photo is a reference to an uploaded media asset with an optional caption.
type Photo struct {
	Path    string `json:"path"`
	Caption string `json:"caption,omitempty"`
}

// Location is a published historical place, one JSON document per id.
//
// The id doubles as the storage key and is never reassigned. SubmittedAt
// and ApprovedAt are immutable once set; both are nil for records created
// directly through the admin API rather than via draft approval.
type Location struct {
	ID                string       `json:"id"`
	Name              Name         `json:"name"`
	Coordinates       *Coordinates `json:"coordinates"`
	ShortDescription  string       `json:"shortDescription"`
	HistoricalPeriods []string     `json:"historicalPeriods"`
	Tags              []string     `json:"tags"`
	Photos            []Photo      `json:"photos,omitempty"`
	Sources           []string     `json:"sources,omitempty"`
	SubmittedAt       *time.Time   `json:"submittedAt,omitempty"`
	ApprovedAt        *time.Time   `json:"approvedAt,omitempty"`
}

// ListedLocation is a Location tagged with its provenance for the merged
// verified+draft listing the map and admin UIs consume.
type ListedLocation struct {
	Location
	IsDraft bool `json:"isDraft"`

	// Status and ReviewNotes are populated for draft entries only.
	Status      string       `json:"status,omitempty"`
	ReviewNotes []ReviewNote `json:"reviewNotes,omitempty"`
}
