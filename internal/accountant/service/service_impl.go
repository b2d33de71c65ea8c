package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/contafacil/portal/internal/accountant/domain"
	"github.com/contafacil/portal/internal/clock"
	"github.com/contafacil/portal/internal/usercontext"
)

// assignedAccountant is the single in-house accountant every account is
// paired with until multi-accountant routing exists.
var assignedAccountant = domain.Accountant{
	Name:  "Carla Mendes",
	CRC:   "CRC-SP 312456/O-7",
	Email: "carla.mendes@contafacil.com.br",
	Phone: "+55 11 98765-4321",
}

const acknowledgement = "Recebemos sua mensagem! Sua contadora responderá em até 1 dia útil."

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
	Clock clock.Clock
}

type accountantService struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
	clock clock.Clock
}

func NewService(p Params) domain.Service {
	return &accountantService{
		db:    p.DB,
		log:   p.Log.Named("accountant.service"),
		genID: p.GenID,
		repo:  p.Repo,
		clock: p.Clock,
	}
}

func (s *accountantService) Assigned(ctx context.Context) (*domain.Accountant, error) {
	if _, ok := usercontext.UserIDFromContext(ctx); !ok {
		return nil, domain.ErrInvalidAccount
	}
	assigned := assignedAccountant
	return &assigned, nil
}

func (s *accountantService) Messages(ctx context.Context) ([]domain.SupportMessage, error) {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidAccount
	}
	rows, err := s.repo.List(ctx, s.db, ownerID)
	if err != nil {
		return nil, err
	}
	msgs := make([]domain.SupportMessage, 0, len(rows))
	for _, row := range rows {
		msgs = append(msgs, *row)
	}
	return msgs, nil
}

func (s *accountantService) Send(ctx context.Context, body string) ([]domain.SupportMessage, error) {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidAccount
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, domain.ErrEmptyMessage
	}

	now := s.clock.Now().UTC()
	userMsg := &domain.SupportMessage{
		ID:        s.genID.Generate(),
		OwnerID:   ownerID,
		Sender:    domain.SenderUser,
		Body:      body,
		CreatedAt: now,
	}
	reply := &domain.SupportMessage{
		ID:        s.genID.Generate(),
		OwnerID:   ownerID,
		Sender:    domain.SenderAccountant,
		Body:      acknowledgement,
		CreatedAt: now,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Insert(ctx, tx, userMsg); err != nil {
			return err
		}
		return s.repo.Insert(ctx, tx, reply)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("support message received", zap.String("owner_id", ownerID.String()))
	return []domain.SupportMessage{*userMsg, *reply}, nil
}
