package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Add(ctx context.Context, e Entry) (Entry, error)
	List(ctx context.Context, in ListInput) (ListResult, error)
	Clear(ctx context.Context) (ClearResult, error)
}
