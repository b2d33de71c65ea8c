package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/contafacil/portal/internal/partner/domain"
	"github.com/contafacil/portal/internal/partner/repository"
	"github.com/contafacil/portal/internal/usercontext"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, context.Context) {
	t.Helper()

	dbConn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dbConn.AutoMigrate(&domain.Partner{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := NewService(Params{
		DB:    dbConn,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.NewRepository(),
	})
	ctx := usercontext.WithUserID(context.Background(), node.Generate())
	return svc, ctx
}

func TestUpsert_ShareValidation(t *testing.T) {
	svc, ctx := newTestService(t)

	_, err := svc.Upsert(ctx, domain.UpsertRequest{
		Name:            "Maria Silva",
		SharePercentage: decimal.NewFromInt(101),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidShare)

	_, err = svc.Upsert(ctx, domain.UpsertRequest{
		Name:            "Maria Silva",
		SharePercentage: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidShare)

	partner, err := svc.Upsert(ctx, domain.UpsertRequest{
		Name:            "Maria Silva",
		SharePercentage: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	assert.True(t, partner.SharePercentage.Equal(decimal.NewFromInt(100)))
}

func TestList_OrderedByShare(t *testing.T) {
	svc, ctx := newTestService(t)

	_, err := svc.Upsert(ctx, domain.UpsertRequest{Name: "João Souza", SharePercentage: decimal.NewFromInt(40)})
	require.NoError(t, err)
	_, err = svc.Upsert(ctx, domain.UpsertRequest{Name: "Maria Silva", SharePercentage: decimal.NewFromInt(60)})
	require.NoError(t, err)

	partners, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, partners, 2)
	assert.Equal(t, "Maria Silva", partners[0].Name)
}

func TestUpsert_UpdateExisting(t *testing.T) {
	svc, ctx := newTestService(t)

	created, err := svc.Upsert(ctx, domain.UpsertRequest{Name: "Maria Silva", SharePercentage: decimal.NewFromInt(50)})
	require.NoError(t, err)

	updated, err := svc.Upsert(ctx, domain.UpsertRequest{
		ID:              created.ID.String(),
		Name:            "Maria Silva Santos",
		SharePercentage: decimal.NewFromInt(55),
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Maria Silva Santos", updated.Name)

	partners, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, partners, 1)
}
