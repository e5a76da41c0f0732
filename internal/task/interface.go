package task

import (
	"context"

	"day-planner/internal/model"
)

// UseCase defines the business logic interface for the task ingestion
// domain. Planning never infers task shape ad hoc; cognitive load and due
// dates are typed here, once, at ingestion.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
