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
	ErrEmptyMessage   = errors.New("empty_message")
)

// Accountant is the professional assigned to the account. Assignment is
// static for now; every account gets the in-house accountant.
type Accountant struct {
	Name  string `json:"name"`
	CRC   string `json:"crc"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Sender string

const (
	SenderUser       Sender = "user"
	SenderAccountant Sender = "accountant"
)

// SupportMessage is one entry in the account's support thread.
type SupportMessage struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	OwnerID   snowflake.ID `gorm:"column:owner_id;not null;index" json:"owner_id"`
	Sender    Sender       `gorm:"type:text;not null" json:"sender"`
	Body      string       `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (SupportMessage) TableName() string { return "support_messages" }

type Service interface {
	Assigned(ctx context.Context) (*Accountant, error)
	Messages(ctx context.Context) ([]SupportMessage, error)

	// Send appends the user's message and the accountant's acknowledgement
	// to the thread, returning both in order.
	Send(ctx context.Context, body string) ([]SupportMessage, error)
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, msg *SupportMessage) error
	List(ctx context.Context, db *gorm.DB, ownerID snowflake.ID) ([]*SupportMessage, error)
}
