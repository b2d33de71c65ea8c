package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

var (
	ErrInvalidAccount = errors.New("invalid_account")
	ErrInvalidID      = errors.New("invalid_id")
	ErrInvalidName    = errors.New("invalid_name")
	ErrInvalidSalary  = errors.New("invalid_salary")
	ErrNotFound       = errors.New("not_found")
)

// Employee is a payroll entry in the account's registry.
type Employee struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	OwnerID     snowflake.ID `gorm:"column:owner_id;not null;index" json:"owner_id"`
	Name        string       `gorm:"type:text;not null" json:"name"`
	TaxID       string       `gorm:"column:tax_id;type:text" json:"tax_id"`
	Role        string       `gorm:"type:text" json:"role"`
	SalaryCents int64        `gorm:"column:salary_cents;not null" json:"salary_cents"`
	HiredAt     *time.Time   `gorm:"column:hired_at" json:"hired_at,omitempty"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Employee) TableName() string { return "employees" }

type UpsertRequest struct {
	ID          string     `json:"id,omitempty"`
	Name        string     `json:"name"`
	TaxID       string     `json:"tax_id"`
	Role        string     `json:"role"`
	SalaryCents int64      `json:"salary_cents"`
	HiredAt     *time.Time `json:"hired_at,omitempty"`
}

// PayrollSummary aggregates the monthly payroll. INSS is the employee
// withholding at the flat 11% rate; net is gross minus the withholding.
type PayrollSummary struct {
	EmployeeCount int   `json:"employee_count"`
	GrossCents    int64 `json:"gross_cents"`
	INSSCents     int64 `json:"inss_cents"`
	NetCents      int64 `json:"net_cents"`
}

type Service interface {
	Upsert(ctx context.Context, req UpsertRequest) (*Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Delete(ctx context.Context, id string) error
	Payroll(ctx context.Context) (*PayrollSummary, error)
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, employee *Employee) error
	Save(ctx context.Context, db *gorm.DB, employee *Employee) error
	FindByID(ctx context.Context, db *gorm.DB, ownerID, id snowflake.ID) (*Employee, error)
	List(ctx context.Context, db *gorm.DB, ownerID snowflake.ID) ([]*Employee, error)
	Delete(ctx context.Context, db *gorm.DB, ownerID, id snowflake.ID) error
}
