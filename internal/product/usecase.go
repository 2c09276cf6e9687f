package product

import (
	"context"

	"github.com/avelasco/productos-client/internal/model"
	"github.com/avelasco/productos-client/internal/product/dto"
)

// RefreshPolicy decides how the local list is brought in line after a
// successful mutation: patched in place, or re-fetched whole.
type RefreshPolicy int

const (
	PatchLocally RefreshPolicy = iota
	RefreshAfterMutation
)

// UseCase is the synchronization layer between the remote service and the
// caller-owned list. Every mutation touches the local list only after the
// remote call has confirmed success, so the list never shows a state the
// server rejected. Concurrent mutations are uncoordinated: if two in-flight
// calls race on the same id, the last completion wins locally.
type UseCase interface {
	// RefreshProducts fetches the collection and replaces the local list.
	// On failure the list is left exactly as it was.
	RefreshProducts(ctx context.Context) ([]model.Product, error)

	// Products returns a copy of the current local list.
	Products() []model.Product

	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}
