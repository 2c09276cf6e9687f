package product

import (
	"context"

	"github.com/avelasco/productos-client/internal/model"
)

// Client talks to the remote product service. Implementations issue exactly
// one HTTP request per call, never retry, and report failure through the
// error taxonomy in errors.go.
type Client interface {
	// List fetches the full product collection in the server's order.
	List(ctx context.Context) ([]model.Product, error)

	// Create sends a draft (its id is zeroed by convention) and returns the
	// server's echoed record carrying the assigned id.
	Create(ctx context.Context, draft *model.Product) (*model.Product, error)

	// Update sends the full replacement record for id and returns the
	// server's echo.
	Update(ctx context.Context, id int64, p *model.Product) (*model.Product, error)

	// Delete removes the record with the given id.
	Delete(ctx context.Context, id int64) error
}
