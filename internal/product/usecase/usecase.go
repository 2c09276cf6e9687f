package usecase

import (
	"context"
	"errors"

	"github.com/avelasco/productos-client/internal/model"
	"github.com/avelasco/productos-client/internal/product"
	"github.com/avelasco/productos-client/internal/product/dto"
	"github.com/avelasco/productos-client/pkg/cache"
	"github.com/avelasco/productos-client/pkg/logger"
	"go.uber.org/zap"
)

var (
	ErrNameRequired  = errors.New("product name is required")
	ErrNegativePrice = errors.New("product price must not be negative")
)

type productUseCase struct {
	client product.Client
	cache  *cache.ListCache
	policy product.RefreshPolicy
	logger logger.ZapLogger
}

func NewProductUseCase(client product.Client, cache *cache.ListCache, policy product.RefreshPolicy, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		client: client,
		cache:  cache,
		policy: policy,
		logger: log,
	}
}

func (uc *productUseCase) RefreshProducts(ctx context.Context) ([]model.Product, error) {
	products, err := uc.client.List(ctx)
	if err != nil {
		// The previous list stays; a failed fetch must be a no-op locally.
		return nil, err
	}
	uc.cache.Replace(products)
	return products, nil
}

func (uc *productUseCase) Products() []model.Product {
	return uc.cache.Snapshot()
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if err := validate(input.Name, input.Price); err != nil {
		return nil, err
	}

	draft := &model.Product{
		Name:     input.Name,
		Price:    input.Price,
		ImageURL: optionalURL(input.ImageURL),
	}

	created, err := uc.client.Create(ctx, draft)
	if err != nil {
		return nil, err
	}
	if created.IsDraft() {
		// A success response without an id would poison every later
		// patch/remove by id; refuse it.
		return nil, errors.New("server did not assign an id on create")
	}

	if !uc.refreshed(ctx) {
		uc.cache.Append(*created)
	}

	uc.logger.Info("product created",
		zap.Int64("id", created.ID),
		zap.String("name", created.Name))
	return created, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	if err := validate(input.Name, input.Price); err != nil {
		return nil, err
	}

	replacement := &model.Product{
		ID:       input.ID,
		Name:     input.Name,
		Price:    input.Price,
		ImageURL: optionalURL(input.ImageURL),
	}

	updated, err := uc.client.Update(ctx, input.ID, replacement)
	if err != nil {
		return nil, err
	}

	if !uc.refreshed(ctx) {
		if !uc.cache.Patch(*updated) {
			// Not cached yet (e.g. no list fetch happened); keep the
			// confirmed record rather than dropping it.
			uc.cache.Append(*updated)
		}
	}

	uc.logger.Info("product updated", zap.Int64("id", updated.ID))
	return updated, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int64) error {
	if err := uc.client.Delete(ctx, id); err != nil {
		return err
	}

	if !uc.refreshed(ctx) {
		uc.cache.Remove(id)
	}

	uc.logger.Info("product deleted", zap.Int64("id", id))
	return nil
}

// refreshed applies the RefreshAfterMutation policy. It reports whether the
// whole list was replaced; the caller falls back to a local patch otherwise.
// The mutation itself already succeeded, so a failed refresh is logged and
// absorbed instead of being surfaced as the operation's error.
func (uc *productUseCase) refreshed(ctx context.Context) bool {
	if uc.policy != product.RefreshAfterMutation {
		return false
	}
	if _, err := uc.RefreshProducts(ctx); err != nil {
		uc.logger.Warn("post-mutation refresh failed, patching locally", zap.Error(err))
		return false
	}
	return true
}

func validate(name string, price float64) error {
	if name == "" {
		return ErrNameRequired
	}
	if price < 0 {
		return ErrNegativePrice
	}
	return nil
}

func optionalURL(u string) *string {
	if u == "" {
		return nil
	}
	return &u
}
