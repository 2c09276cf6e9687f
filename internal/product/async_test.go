package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avelasco/productos-client/internal/model"
	"github.com/avelasco/productos-client/internal/product/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	listErr error
}

func (f *fakeUseCase) RefreshProducts(ctx context.Context) ([]model.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return []model.Product{{ID: 1, Name: "Uno", Price: 1}}, nil
}

func (f *fakeUseCase) Products() []model.Product { return nil }

func (f *fakeUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	return &model.Product{ID: 2, Name: input.Name, Price: input.Price}, nil
}

func (f *fakeUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	return &model.Product{ID: input.ID, Name: input.Name, Price: input.Price}, nil
}

func (f *fakeUseCase) DeleteProduct(ctx context.Context, id int64) error { return nil }

func TestAsyncFiresExactlyOnceThenCloses(t *testing.T) {
	a := NewAsync(&fakeUseCase{})

	ch := a.RefreshProducts(context.Background())

	res, ok := <-ch
	require.True(t, ok)
	require.NoError(t, res.Err)
	assert.Len(t, res.Products, 1)

	// Exactly one value: the channel is closed afterwards.
	_, ok = <-ch
	assert.False(t, ok)
}

func TestAsyncDeliversFailure(t *testing.T) {
	wantErr := errors.New("remote down")
	a := NewAsync(&fakeUseCase{listErr: wantErr})

	res := <-a.RefreshProducts(context.Background())
	assert.ErrorIs(t, res.Err, wantErr)
	assert.Nil(t, res.Products)
}

func TestAsyncMutations(t *testing.T) {
	a := NewAsync(&fakeUseCase{})

	created := <-a.CreateProduct(context.Background(), &dto.CreateProductInput{Name: "W", Price: 9.99})
	require.NoError(t, created.Err)
	assert.Equal(t, int64(2), created.Product.ID)

	updated := <-a.UpdateProduct(context.Background(), &dto.UpdateProductInput{ID: 2, Name: "W2", Price: 1})
	require.NoError(t, updated.Err)
	assert.Equal(t, "W2", updated.Product.Name)

	deleted := <-a.DeleteProduct(context.Background(), 2)
	assert.NoError(t, deleted.Err)
}

func TestAsyncResultsAreIndependent(t *testing.T) {
	a := NewAsync(&fakeUseCase{})

	// Two in-flight operations complete without coordinating.
	ch1 := a.DeleteProduct(context.Background(), 1)
	ch2 := a.DeleteProduct(context.Background(), 2)

	select {
	case res := <-ch2:
		assert.NoError(t, res.Err)
	case <-time.After(time.Second):
		t.Fatal("second completion never fired")
	}
	select {
	case res := <-ch1:
		assert.NoError(t, res.Err)
	case <-time.After(time.Second):
		t.Fatal("first completion never fired")
	}
}
