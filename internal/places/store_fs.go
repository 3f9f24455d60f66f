package places

import (
	"context"

	"github.com/red4golf/historical-places-explorer/internal/platform/fserr"
	"github.com/red4golf/historical-places-explorer/internal/platform/jsonstore"
)

// LocationStore is the file-backed [LocationRepository]. One pretty-printed
// JSON document per id under the verified-locations partition.
type LocationStore struct {
	dir string
}

func NewLocationStore(dir string) *LocationStore {
	return &LocationStore{dir: dir}
}

func (store *LocationStore) List(context context.Context) ([]Location, error) {
	locations, err := jsonstore.List[Location](context, store.dir)
	if err != nil {
		return nil, fserr.Wrap(err, "Location")
	}
	return locations, nil
}

func (store *LocationStore) Get(context context.Context, id string) (*Location, error) {
	location, err := jsonstore.Get[Location](store.dir, id)
	if err != nil {
		return nil, fserr.Wrap(err, "Location")
	}
	return &location, nil
}

func (store *LocationStore) Put(context context.Context, location *Location) error {
	return fserr.Wrap(jsonstore.Put(store.dir, location.ID, location), "Location")
}

func (store *LocationStore) Delete(context context.Context, id string) error {
	return fserr.Wrap(jsonstore.Delete(store.dir, id), "Location")
}

// DraftStore is the file-backed [DraftRepository] over the drafts partition.
//
// The drafts partition nests inside the verified partition
// (locations/drafts/); the store never lists across the boundary because
// [jsonstore.List] skips subdirectories.
type DraftStore struct {
	dir string
}

func NewDraftStore(dir string) *DraftStore {
	return &DraftStore{dir: dir}
}

func (store *DraftStore) List(context context.Context) ([]Draft, error) {
	drafts, err := jsonstore.List[Draft](context, store.dir)
	if err != nil {
		return nil, fserr.Wrap(err, "Draft location")
	}
	return drafts, nil
}

func (store *DraftStore) Get(context context.Context, id string) (*Draft, error) {
	draft, err := jsonstore.Get[Draft](store.dir, id)
	if err != nil {
		return nil, fserr.Wrap(err, "Draft location")
	}
	return &draft, nil
}

func (store *DraftStore) Put(context context.Context, draft *Draft) error {
	return fserr.Wrap(jsonstore.Put(store.dir, draft.ID, draft), "Draft location")
}

func (store *DraftStore) Delete(context context.Context, id string) error {
	return fserr.Wrap(jsonstore.Delete(store.dir, id), "Draft location")
}
