package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/contafacil/portal/internal/employee/domain"
	"github.com/contafacil/portal/internal/usercontext"
)

// inssRate is the flat employee withholding applied over gross salaries.
var inssRate = decimal.NewFromFloat(0.11)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type employeeService struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func NewService(p Params) domain.Service {
	return &employeeService{
		db:    p.DB,
		log:   p.Log.Named("employee.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *employeeService) Upsert(ctx context.Context, req domain.UpsertRequest) (*domain.Employee, error) {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidAccount
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, domain.ErrInvalidName
	}
	if req.SalaryCents < 0 {
		return nil, domain.ErrInvalidSalary
	}

	if req.ID != "" {
		id, err := snowflake.ParseString(req.ID)
		if err != nil {
			return nil, domain.ErrInvalidID
		}
		employee, err := s.repo.FindByID(ctx, s.db, ownerID, id)
		if err != nil {
			return nil, err
		}
		applyFields(employee, req)
		if err := s.repo.Save(ctx, s.db, employee); err != nil {
			return nil, err
		}
		return employee, nil
	}

	employee := &domain.Employee{
		ID:      s.genID.Generate(),
		OwnerID: ownerID,
	}
	applyFields(employee, req)
	if err := s.repo.Insert(ctx, s.db, employee); err != nil {
		return nil, err
	}
	s.log.Info("employee created", zap.String("employee_id", employee.ID.String()))
	return employee, nil
}

func (s *employeeService) List(ctx context.Context) ([]domain.Employee, error) {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidAccount
	}
	rows, err := s.repo.List(ctx, s.db, ownerID)
	if err != nil {
		return nil, err
	}
	employees := make([]domain.Employee, 0, len(rows))
	for _, row := range rows {
		employees = append(employees, *row)
	}
	return employees, nil
}

func (s *employeeService) Delete(ctx context.Context, rawID string) error {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok {
		return domain.ErrInvalidAccount
	}
	id, err := snowflake.ParseString(rawID)
	if err != nil {
		return domain.ErrInvalidID
	}
	if _, err := s.repo.FindByID(ctx, s.db, ownerID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, ownerID, id)
}

func (s *employeeService) Payroll(ctx context.Context) (*domain.PayrollSummary, error) {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidAccount
	}
	rows, err := s.repo.List(ctx, s.db, ownerID)
	if err != nil {
		return nil, err
	}

	var gross int64
	for _, row := range rows {
		gross += row.SalaryCents
	}
	inss := decimal.New(gross, 0).Mul(inssRate).Round(0).IntPart()

	return &domain.PayrollSummary{
		EmployeeCount: len(rows),
		GrossCents:    gross,
		INSSCents:     inss,
		NetCents:      gross - inss,
	}, nil
}

func applyFields(employee *domain.Employee, req domain.UpsertRequest) {
	employee.Name = req.Name
	employee.TaxID = strings.TrimSpace(req.TaxID)
	employee.Role = strings.TrimSpace(req.Role)
	employee.SalaryCents = req.SalaryCents
	employee.HiredAt = req.HiredAt
}
