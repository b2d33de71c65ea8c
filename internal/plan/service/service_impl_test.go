package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/contafacil/portal/internal/plan/domain"
	"github.com/contafacil/portal/internal/plan/repository"
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
	require.NoError(t, dbConn.AutoMigrate(&domain.Subscription{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := NewService(Params{
		DB:   dbConn,
		Log:  zap.NewNop(),
		Repo: repository.NewRepository(),
	})
	ctx := usercontext.WithUserID(context.Background(), node.Generate())
	return svc, ctx
}

func TestCurrent_DefaultsToBasico(t *testing.T) {
	svc, ctx := newTestService(t)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.TierBasico, current.Tier)
	assert.Equal(t, int64(9900), current.MonthlyPriceCents)
}

func TestChange_Persists(t *testing.T) {
	svc, ctx := newTestService(t)

	changed, err := svc.Change(ctx, domain.TierPremium)
	require.NoError(t, err)
	assert.Equal(t, domain.TierPremium, changed.Tier)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.TierPremium, current.Tier)

	// Downgrades go through the same upsert path.
	_, err = svc.Change(ctx, domain.TierStandard)
	require.NoError(t, err)
	current, err = svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.TierStandard, current.Tier)
}

func TestChange_InvalidTier(t *testing.T) {
	svc, ctx := newTestService(t)

	_, err := svc.Change(ctx, domain.Tier("platina"))
	assert.ErrorIs(t, err, domain.ErrInvalidTier)
}

func TestCatalog_AscendingPrices(t *testing.T) {
	svc, _ := newTestService(t)

	catalog := svc.Catalog()
	require.Len(t, catalog, 4)
	for i := 1; i < len(catalog); i++ {
		assert.Greater(t, catalog[i].MonthlyPriceCents, catalog[i-1].MonthlyPriceCents)
	}
	assert.True(t, catalog[3].Tier.IsUpgradeFrom(catalog[0].Tier))
}
