package places

import "context"

// LocationRepository persists verified location documents.
type LocationRepository interface {
	List(context context.Context) ([]Location, error)
	Get(context context.Context, id string) (*Location, error)
	Put(context context.Context, location *Location) error
	Delete(context context.Context, id string) error
}

// DraftRepository persists draft location documents.
type DraftRepository interface {
	List(context context.Context) ([]Draft, error)
	Get(context context.Context, id string) (*Draft, error)
	Put(context context.Context, draft *Draft) error
	Delete(context context.Context, id string) error
}
