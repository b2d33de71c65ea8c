package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/contafacil/portal/internal/client/domain"
	"github.com/contafacil/portal/internal/client/repository"
	"github.com/contafacil/portal/internal/clock"
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
	require.NoError(t, dbConn.AutoMigrate(&domain.Client{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:    dbConn,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
		Clock: clock.NewFakeClock(time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)),
	})
	ctx := usercontext.WithUserID(context.Background(), node.Generate())
	return svc, ctx
}

func TestUpsert_RequiresNameAndTaxID(t *testing.T) {
	svc, ctx := newTestService(t)

	_, err := svc.Upsert(ctx, domain.UpsertRequest{TaxID: "98.765.432/0001-10"})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Upsert(ctx, domain.UpsertRequest{Name: "Padaria Estrela Ltda"})
	assert.ErrorIs(t, err, domain.ErrInvalidTaxID)
}

func TestUpsert_CreateAndUpdate(t *testing.T) {
	svc, ctx := newTestService(t)

	created, err := svc.Upsert(ctx, domain.UpsertRequest{
		Name:  "Padaria Estrela Ltda",
		TaxID: "98.765.432/0001-10",
		City:  "São Paulo",
		State: "SP",
	})
	require.NoError(t, err)

	updated, err := svc.Upsert(ctx, domain.UpsertRequest{
		ID:    created.ID.String(),
		Name:  "Padaria Estrela e Filhos Ltda",
		TaxID: "98.765.432/0001-10",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	fetched, err := svc.GetByID(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Padaria Estrela e Filhos Ltda", fetched.Name)
}

func TestDelete(t *testing.T) {
	svc, ctx := newTestService(t)

	created, err := svc.Upsert(ctx, domain.UpsertRequest{Name: "Padaria Estrela Ltda", TaxID: "98.765.432/0001-10"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID.String()))

	_, err = svc.GetByID(ctx, created.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
