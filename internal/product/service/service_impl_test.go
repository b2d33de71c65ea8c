package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/contafacil/portal/internal/clock"
	"github.com/contafacil/portal/internal/product/domain"
	"github.com/contafacil/portal/internal/product/repository"
	"github.com/contafacil/portal/internal/usercontext"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, context.Context) {
	t.Helper()

	dbConn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dbConn.AutoMigrate(&domain.Product{}, &domain.Sale{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := NewService(Params{
		DB:    dbConn,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.NewRepository(),
		Clock: clock.NewFakeClock(time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)),
	})
	ctx := usercontext.WithUserID(context.Background(), node.Generate())
	return svc, ctx
}

func upsertProduct(t *testing.T, svc domain.Service, ctx context.Context, req domain.UpsertRequest) *domain.Product {
	t.Helper()
	product, err := svc.Upsert(ctx, req)
	require.NoError(t, err)
	return product
}

func TestUpsert_Validation(t *testing.T) {
	svc, ctx := newTestService(t)

	_, err := svc.Upsert(ctx, domain.UpsertRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Upsert(ctx, domain.UpsertRequest{Name: "Consultoria", SalePriceCents: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	_, err = svc.Upsert(ctx, domain.UpsertRequest{Name: "Consultoria", CurrentStock: -5})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestRecordSale_DecrementsStock(t *testing.T) {
	svc, ctx := newTestService(t)
	product := upsertProduct(t, svc, ctx, domain.UpsertRequest{
		SKU: "TRE-001", Name: "Treinamento", Category: "Serviços",
		CostPriceCents: 20000, SalePriceCents: 50000,
		CurrentStock: 10, MinStock: 2,
	})

	sale, err := svc.RecordSale(ctx, domain.SaleRequest{ProductID: product.ID.String(), Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(150000), sale.TotalCents)
	assert.Equal(t, time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC), sale.SoldAt)

	products, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(7), products[0].CurrentStock)
}

func TestRecordSale_InsufficientStock(t *testing.T) {
	svc, ctx := newTestService(t)
	product := upsertProduct(t, svc, ctx, domain.UpsertRequest{
		SKU: "TRE-001", Name: "Treinamento",
		SalePriceCents: 50000, CurrentStock: 2,
	})

	_, err := svc.RecordSale(ctx, domain.SaleRequest{ProductID: product.ID.String(), Quantity: 3})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Stock untouched after the rejected sale.
	products, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), products[0].CurrentStock)
}

func TestRecordSale_InvalidQuantity(t *testing.T) {
	svc, ctx := newTestService(t)
	product := upsertProduct(t, svc, ctx, domain.UpsertRequest{
		SKU: "TRE-001", Name: "Treinamento", SalePriceCents: 50000, CurrentStock: 5,
	})

	_, err := svc.RecordSale(ctx, domain.SaleRequest{ProductID: product.ID.String(), Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestInventorySummary(t *testing.T) {
	svc, ctx := newTestService(t)

	// Stock value 10*2000 + 4*5000 = 40000; potential profit
	// 10*(3000-2000) + 4*(9000-5000) = 26000.
	upsertProduct(t, svc, ctx, domain.UpsertRequest{
		SKU: "A", Name: "Produto A", CostPriceCents: 2000, SalePriceCents: 3000,
		CurrentStock: 10, MinStock: 3,
	})
	low := upsertProduct(t, svc, ctx, domain.UpsertRequest{
		SKU: "B", Name: "Produto B", CostPriceCents: 5000, SalePriceCents: 9000,
		CurrentStock: 4, MinStock: 4,
	})

	_, err := svc.RecordSale(ctx, domain.SaleRequest{ProductID: low.ID.String(), Quantity: 1})
	require.NoError(t, err)

	summary, err := svc.Inventory(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.ProductCount)
	// One unit of B left stock since the snapshot above.
	assert.Equal(t, int64(35000), summary.StockValueCents)
	assert.Equal(t, int64(22000), summary.PotentialProfitCents)
	assert.Equal(t, int64(9000), summary.SalesTotalCents)
	require.Len(t, summary.LowStock, 1)
	assert.Equal(t, "Produto B", summary.LowStock[0].Name)
}
