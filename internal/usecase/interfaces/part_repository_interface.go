package interfaces

import (
	"context"
	"cnc_quote/internal/domain/entities"
)

// IPartRepository abstracts DynamoDB persistence for Part geometry.
//
// GetByID returns a zero-value Part (ID == "") when nothing is stored under
// the id; repositories never invent a not-found error.

type IPartRepository interface {
	Create(ctx context.Context, p entities.Part) (entities.Part, error)
	GetByID(ctx context.Context, id string) (entities.Part, error)
}
