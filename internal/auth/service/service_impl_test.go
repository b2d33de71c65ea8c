package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/contafacil/portal/internal/auth/domain"
	"github.com/contafacil/portal/internal/auth/repository"
	"github.com/contafacil/portal/internal/clock"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *clock.FakeClock) {
	t.Helper()

	dbConn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dbConn.AutoMigrate(&domain.User{}, &domain.Session{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	clk := clock.NewFakeClock(time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC))
	svc := NewService(Params{
		DB:          dbConn,
		Log:         zap.NewNop(),
		GenID:       node,
		Repo:        repository.NewRepository(),
		SessionRepo: repository.NewSessionRepository(),
		Clock:       clk,
	})
	return svc, clk
}

func signup(t *testing.T, svc domain.Service) *domain.LoginResult {
	t.Helper()
	result, err := svc.Signup(context.Background(), domain.SignupRequest{
		Email:       "maria@empresa.com.br",
		Password:    "segredo123",
		CompanyName: "Silva Consultoria ME",
		CNPJ:        "12.345.678/0001-90",
	})
	require.NoError(t, err)
	return result
}

func TestSignupAndLogin(t *testing.T) {
	svc, _ := newTestService(t)
	result := signup(t, svc)

	assert.NotEmpty(t, result.RawToken)
	assert.Equal(t, "maria@empresa.com.br", result.User.Email)
	require.NotNil(t, result.User.PasswordHash)
	assert.NotContains(t, *result.User.PasswordHash, "segredo123")

	login, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "Maria@Empresa.com.br",
		Password: "segredo123",
	})
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, login.User.ID)
	assert.NotEqual(t, result.RawToken, login.RawToken)
}

func TestSignup_Validation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Signup(context.Background(), domain.SignupRequest{Email: "not-an-email", Password: "segredo123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Signup(context.Background(), domain.SignupRequest{Email: "a@b.com", Password: "curta"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	signup(t, svc)

	_, err := svc.Signup(context.Background(), domain.SignupRequest{
		Email:    "maria@empresa.com.br",
		Password: "outrasenha",
	})
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestService(t)
	signup(t, svc)

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "maria@empresa.com.br",
		Password: "senha-errada",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), domain.LoginRequest{
		Email:    "ninguem@empresa.com.br",
		Password: "segredo123",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthenticate_Lifecycle(t *testing.T) {
	svc, clk := newTestService(t)
	result := signup(t, svc)

	session, err := svc.Authenticate(context.Background(), result.RawToken)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, session.UserID)

	// Expired sessions are rejected after the TTL elapses.
	clk.Advance(8 * 24 * time.Hour)
	_, err = svc.Authenticate(context.Background(), result.RawToken)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestLogout_RevokesSession(t *testing.T) {
	svc, _ := newTestService(t)
	result := signup(t, svc)

	require.NoError(t, svc.Logout(context.Background(), result.RawToken))

	_, err := svc.Authenticate(context.Background(), result.RawToken)
	assert.ErrorIs(t, err, domain.ErrSessionRevoked)
}

func TestAuthenticate_UnknownToken(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Authenticate(context.Background(), "01HTXYZZZZZZZZZZZZZZZZZZZZ")
	assert.ErrorIs(t, err, domain.ErrInvalidSession)

	_, err = svc.Authenticate(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidSession)
}
