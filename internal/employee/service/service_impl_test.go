package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/contafacil/portal/internal/employee/domain"
	"github.com/contafacil/portal/internal/employee/repository"
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
	require.NoError(t, dbConn.AutoMigrate(&domain.Employee{}))

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

func TestUpsert_Validation(t *testing.T) {
	svc, ctx := newTestService(t)

	_, err := svc.Upsert(ctx, domain.UpsertRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Upsert(ctx, domain.UpsertRequest{Name: "João", SalaryCents: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidSalary)
}

func TestPayroll(t *testing.T) {
	svc, ctx := newTestService(t)

	_, err := svc.Upsert(ctx, domain.UpsertRequest{Name: "João Pereira", Role: "Vendedor", SalaryCents: 250000})
	require.NoError(t, err)
	_, err = svc.Upsert(ctx, domain.UpsertRequest{Name: "Ana Lima", Role: "Atendente", SalaryCents: 180000})
	require.NoError(t, err)

	summary, err := svc.Payroll(ctx)
	require.NoError(t, err)

	// Gross 4.300,00; INSS at 11% = 473,00; net 3.827,00.
	assert.Equal(t, 2, summary.EmployeeCount)
	assert.Equal(t, int64(430000), summary.GrossCents)
	assert.Equal(t, int64(47300), summary.INSSCents)
	assert.Equal(t, int64(382700), summary.NetCents)
}

func TestPayroll_Empty(t *testing.T) {
	svc, ctx := newTestService(t)

	summary, err := svc.Payroll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.EmployeeCount)
	assert.Zero(t, summary.GrossCents)
	assert.Zero(t, summary.NetCents)
}
