package infrastructure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mateusmacedo/go-domain-events/internal/product/domain"
	zapAdapter "github.com/mateusmacedo/go-domain-events/pkg/infrastructure/zaplogger/adapter"
)

func TestInMemoryProductRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryProductRepository(zapAdapter.NewZapAppLoggerFrom(zap.NewNop()))

	product, err := domain.NewProduct("p1", "Product 1", "Product 1 description", 10.0)
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, product))
	assert.ErrorIs(t, repo.Create(ctx, product), domain.ErrProductAlreadyExists)

	found, err := repo.FindByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, product, found)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
