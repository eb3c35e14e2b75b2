package models

import (
	"time"

	"github.com/google/uuid"
)

// Status is the internal transaction status vocabulary. Provider statuses
// are normalized into one of these values before they reach the store.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusPending    Status = "pending"
	StatusSuccessful Status = "successful"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

// IsTerminal reports whether no further transitions are expected for s.
func (s Status) IsTerminal() bool {
	return s == StatusSuccessful || s == StatusFailed || s == StatusCancelled
}

// Transaction represents one payment attempt for a book. All fields except
// Status and UpdatedAt are immutable after creation.
type Transaction struct {
	UUID        string     `json:"uuid"`                 // Provider-assigned identifier, primary key
	Reference   string     `json:"reference"`            // Merchant-side reference
	BookID      int64      `json:"book_id"`              // Purchased book
	BookTitle   string     `json:"book_title"`           // Denormalized title for display
	Amount      int64      `json:"amount"`               // Amount in minor-free units (UGX has no cents)
	Currency    string     `json:"currency"`             // Currency code at creation time
	PhoneNumber string     `json:"phone_number"`         // Payer's mobile-money number
	Status      Status     `json:"status"`               // Current normalized status
	CreatedAt   time.Time  `json:"created_at"`           // Creation timestamp
	UpdatedAt   *time.Time `json:"updated_at,omitempty"` // Set on first status mutation
	UserID      uuid.UUID  `json:"user_id"`              // Owning user
}

// TransactionDB represents a transaction row in the database.
type TransactionDB struct {
	UUID        string     `json:"uuid" db:"uuid"`
	Reference   string     `json:"reference" db:"reference"`
	BookID      int64      `json:"book_id" db:"book_id"`
	BookTitle   string     `json:"book_title" db:"book_title"`
	Amount      int64      `json:"amount" db:"amount"`
	Currency    string     `json:"currency" db:"currency"`
	PhoneNumber string     `json:"phone_number" db:"phone_number"`
	Status      string     `json:"status" db:"status"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at" db:"updated_at"`
	UserID      uuid.UUID  `json:"user_id" db:"user_id"`
}
