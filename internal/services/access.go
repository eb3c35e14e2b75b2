package services

import (
	"github.com/google/uuid"
)

// PaidChecker answers whether any successful transaction exists for a
// (book, user) pair.
type PaidChecker interface {
	HasPaid(bookID int64, userID uuid.UUID) bool
}

// AccessService is the reading-access policy: a user may read a book iff
// some transaction of theirs for that book is successful. The predicate is
// recomputed from current store contents on every call; nothing is cached.
type AccessService struct {
	transactions PaidChecker
}

// NewAccessService creates a new AccessService.
func NewAccessService(transactions PaidChecker) *AccessService {
	return &AccessService{transactions: transactions}
}

// CanRead reports whether userID has paid for bookID.
func (s *AccessService) CanRead(bookID int64, userID uuid.UUID) bool {
	return s.transactions.HasPaid(bookID, userID)
}
