package domain

import (
	"context"
	"errors"
)

var (
	ErrInvalidAccount = errors.New("invalid_account")
	ErrEmptyPrompt    = errors.New("empty_prompt")
)

// Assistant answers free-form accounting questions for the portal chat.
type Assistant interface {
	Ask(ctx context.Context, prompt string) (string, error)
}
