package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/monosijkayal/open-form/internal/model"
	"github.com/monosijkayal/open-form/internal/repository"
)

// BankService handles the standalone question bank. The bank shares the
// Question field shape with forms but is a separate collection; nothing
// keeps the two consistent.
type BankService struct {
	bankRepo repository.BankRepo
}

// NewBankService creates a new question bank service
func NewBankService(bankRepo repository.BankRepo) *BankService {
	return &BankService{bankRepo: bankRepo}
}

// Add stores a question in the bank, assigning an id when the caller did
// not supply one.
func (s *BankService) Add(ctx context.Context, q *model.BankQuestion) error {
	if q.ID == "" {
		q.ID = uuid.New().String()
	}
	return s.bankRepo.Insert(ctx, q)
}

// List returns every question in the bank.
func (s *BankService) List(ctx context.Context) ([]*model.BankQuestion, error) {
	return s.bankRepo.List(ctx)
}
