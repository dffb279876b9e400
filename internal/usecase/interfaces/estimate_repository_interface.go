package interfaces

import (
	"context"

	"preconstruct/internal/domain/entities"
)

//go:generate mockgen -source=estimate_repository_interface.go -destination=mocks/estimate_repository_mock.go -package=mock_interfaces

// IEstimateRepository abstracts DynamoDB persistence for the Estimate
// aggregate.
//
// The estimating-service must be able to:
//   - create an estimate session seeded with default rates and approval steps
//   - load the full aggregate for roll-up computation
//   - save the aggregate back after a replace-collection mutation
//
// Save persists the whole aggregate; per-field updates are not exposed since
// the domain mutation model is "replace the owning collection".

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	Save(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
}
