package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Record(ctx context.Context, ev Event) error
	Summary(ctx context.Context, in SummaryInput) (Summary, error)
}
