package devserver

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/avelasco/productos-client/config"
	"github.com/avelasco/productos-client/internal/model"
	"github.com/avelasco/productos-client/internal/product"
	"github.com/avelasco/productos-client/internal/product/client"
	"github.com/avelasco/productos-client/internal/product/dto"
	"github.com/avelasco/productos-client/internal/product/usecase"
	"github.com/avelasco/productos-client/pkg/cache"
	"github.com/avelasco/productos-client/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSetup struct {
	store  *Store
	client product.Client
	uc     product.UseCase
	cache  *cache.ListCache
}

// setupTest runs the dev server on an httptest listener and wires the real
// REST client against it, so these tests cover the full wire path.
func setupTest(t *testing.T) *testSetup {
	t.Helper()

	store, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	srv := NewServer(store, logger.NewNop())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	c := client.NewRESTClient(&config.ClientConfig{BaseURL: ts.URL, TimeoutSeconds: 5}, logger.NewNop())
	lc := cache.NewListCache()
	uc := usecase.NewProductUseCase(c, lc, product.PatchLocally, logger.NewNop())

	return &testSetup{store: store, client: c, uc: uc, cache: lc}
}

func draft(name string, price float64) *model.Product {
	return &model.Product{Name: name, Price: price}
}

func TestEmptyListOnFreshStore(t *testing.T) {
	s := setupTest(t)

	products, err := s.uc.RefreshProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	s := setupTest(t)
	ctx := context.Background()

	first, err := s.uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Uno", Price: 1})
	require.NoError(t, err)
	second, err := s.uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Dos", Price: 2})
	require.NoError(t, err)

	assert.Positive(t, first.ID)
	assert.Greater(t, second.ID, first.ID)
}

func TestFullLifecycle(t *testing.T) {
	s := setupTest(t)
	ctx := context.Background()

	created, err := s.uc.CreateProduct(ctx, &dto.CreateProductInput{
		Name:     "Widget",
		Price:    9.99,
		ImageURL: "https://img.example/widget.png",
	})
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.Equal(t, "Widget", created.Name)
	assert.Equal(t, 9.99, created.Price)
	require.NotNil(t, created.ImageURL)

	// A fresh list shows the record with the image reference intact.
	products, err := s.uc.RefreshProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.NotNil(t, products[0].ImageURL)
	assert.Equal(t, "https://img.example/widget.png", *products[0].ImageURL)

	// Update replaces the record under the same id; the image goes away.
	updated, err := s.uc.UpdateProduct(ctx, &dto.UpdateProductInput{
		ID:    created.ID,
		Name:  "Widget v2",
		Price: 19.99,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	products, err = s.uc.RefreshProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Widget v2", products[0].Name)
	assert.Equal(t, 19.99, products[0].Price)
	assert.Nil(t, products[0].ImageURL)

	// Delete removes it remotely and locally.
	require.NoError(t, s.uc.DeleteProduct(ctx, created.ID))
	assert.Equal(t, 0, s.cache.Len())

	products, err = s.uc.RefreshProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestUnknownIDIsRemoteNotFound(t *testing.T) {
	s := setupTest(t)
	ctx := context.Background()

	err := s.uc.DeleteProduct(ctx, 4242)
	require.Error(t, err)
	re, ok := product.AsRemoteError(err)
	require.True(t, ok)
	assert.Equal(t, 404, re.Status)

	_, err = s.uc.UpdateProduct(ctx, &dto.UpdateProductInput{ID: 4242, Name: "x", Price: 1})
	require.Error(t, err)
	re, ok = product.AsRemoteError(err)
	require.True(t, ok)
	assert.Equal(t, 404, re.Status)
}

func TestServerRejectsBadPayloads(t *testing.T) {
	s := setupTest(t)
	ctx := context.Background()

	// Validation fires server-side too; bypass the usecase validator by
	// calling the client directly.
	_, err := s.client.Create(ctx, draft("", 1))
	re, ok := product.AsRemoteError(err)
	require.True(t, ok)
	assert.Equal(t, 400, re.Status)

	_, err = s.client.Create(ctx, draft("x", -1))
	re, ok = product.AsRemoteError(err)
	require.True(t, ok)
	assert.Equal(t, 400, re.Status)
}

func TestListNameFilter(t *testing.T) {
	s := setupTest(t)
	ctx := context.Background()

	_, err := s.uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Taladro", Price: 50})
	require.NoError(t, err)
	_, err = s.uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Martillo", Price: 10})
	require.NoError(t, err)

	rows, err := s.store.List(ctx, "Tala")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Taladro", rows[0].Name)
}
