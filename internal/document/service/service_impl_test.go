package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/contafacil/portal/internal/clock"
	"github.com/contafacil/portal/internal/document/domain"
	"github.com/contafacil/portal/internal/document/repository"
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
	require.NoError(t, dbConn.AutoMigrate(&domain.Document{}))

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

func TestAppend_Validation(t *testing.T) {
	svc, ctx := newTestService(t)

	_, err := svc.Append(ctx, domain.AppendRequest{Title: "  ", Type: domain.DocumentTypeTax})
	assert.ErrorIs(t, err, domain.ErrInvalidTitle)

	_, err = svc.Append(ctx, domain.AppendRequest{Title: "Contrato Social", Type: domain.DocumentType("nota")})
	assert.ErrorIs(t, err, domain.ErrInvalidType)
}

func TestAppend_DefaultsToPending(t *testing.T) {
	svc, ctx := newTestService(t)

	doc, err := svc.Append(ctx, domain.AppendRequest{
		Title: "Contrato Social",
		Type:  domain.DocumentTypeContract,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DocumentStatusPending, doc.Status)
}

func TestUpdateStatus(t *testing.T) {
	svc, ctx := newTestService(t)
	doc, err := svc.Append(ctx, domain.AppendRequest{
		Title: "DAS - Simples Nacional - 03/2024",
		Type:  domain.DocumentTypeTax,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, doc.ID.String(), domain.DocumentStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, domain.DocumentStatusPaid, updated.Status)

	_, err = svc.UpdateStatus(ctx, doc.ID.String(), domain.DocumentStatus("rasgado"))
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestList_FilterByTypeAndStatus(t *testing.T) {
	svc, ctx := newTestService(t)

	guide, err := svc.Append(ctx, domain.AppendRequest{Title: "DAS - 03/2024", Type: domain.DocumentTypeTax, Competence: "2024-03"})
	require.NoError(t, err)
	_, err = svc.Append(ctx, domain.AppendRequest{Title: "Balancete Fev", Type: domain.DocumentTypeReport})
	require.NoError(t, err)

	docs, err := svc.List(ctx, domain.ListRequest{Type: domain.DocumentTypeTax})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, guide.ID, docs[0].ID)

	_, err = svc.UpdateStatus(ctx, guide.ID.String(), domain.DocumentStatusPaid)
	require.NoError(t, err)
	docs, err = svc.List(ctx, domain.ListRequest{Status: domain.DocumentStatusPending})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Balancete Fev", docs[0].Title)
}

func TestFindPendingGuide(t *testing.T) {
	svc, ctx := newTestService(t)

	found, err := svc.FindPendingGuide(ctx, "2024-03", "simples")
	require.NoError(t, err)
	assert.Nil(t, found)

	guide, err := svc.Append(ctx, domain.AppendRequest{
		Title:      "DAS - Simples Nacional - 03/2024",
		Type:       domain.DocumentTypeTax,
		Competence: "2024-03",
		Regime:     "simples",
	})
	require.NoError(t, err)

	found, err = svc.FindPendingGuide(ctx, "2024-03", "simples")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, guide.ID, found.ID)

	// A paid guide no longer blocks a fresh one.
	_, err = svc.UpdateStatus(ctx, guide.ID.String(), domain.DocumentStatusPaid)
	require.NoError(t, err)
	found, err = svc.FindPendingGuide(ctx, "2024-03", "simples")
	require.NoError(t, err)
	assert.Nil(t, found)
}
