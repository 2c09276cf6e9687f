package product

import (
	"context"

	"github.com/avelasco/productos-client/internal/model"
	"github.com/avelasco/productos-client/internal/product/dto"
)

// Completion results. Each channel returned by Async receives exactly one
// value (success or failure, never both) and is then closed.

type ListResult struct {
	Products []model.Product
	Err      error
}

type ProductResult struct {
	Product *model.Product
	Err     error
}

type OpResult struct {
	Err error
}

// Async adapts the synchronous UseCase to one-shot completion channels for
// callers structured around non-blocking requests. Requests are independent
// and uncoordinated once issued.
type Async struct {
	uc UseCase
}

func NewAsync(uc UseCase) *Async {
	return &Async{uc: uc}
}

func (a *Async) RefreshProducts(ctx context.Context) <-chan ListResult {
	ch := make(chan ListResult, 1)
	go func() {
		defer close(ch)
		products, err := a.uc.RefreshProducts(ctx)
		ch <- ListResult{Products: products, Err: err}
	}()
	return ch
}

func (a *Async) CreateProduct(ctx context.Context, input *dto.CreateProductInput) <-chan ProductResult {
	ch := make(chan ProductResult, 1)
	go func() {
		defer close(ch)
		p, err := a.uc.CreateProduct(ctx, input)
		ch <- ProductResult{Product: p, Err: err}
	}()
	return ch
}

func (a *Async) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) <-chan ProductResult {
	ch := make(chan ProductResult, 1)
	go func() {
		defer close(ch)
		p, err := a.uc.UpdateProduct(ctx, input)
		ch <- ProductResult{Product: p, Err: err}
	}()
	return ch
}

func (a *Async) DeleteProduct(ctx context.Context, id int64) <-chan OpResult {
	ch := make(chan OpResult, 1)
	go func() {
		defer close(ch)
		ch <- OpResult{Err: a.uc.DeleteProduct(ctx, id)}
	}()
	return ch
}
