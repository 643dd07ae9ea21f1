package service

import (
	"context"
	"fmt"

	"github.com/monosijkayal/open-form/internal/model"
	"github.com/monosijkayal/open-form/internal/repository"
)

// ResponseService handles response submission and listing
type ResponseService struct {
	responseRepo repository.ResponseRepo
	formRepo     repository.FormRepo
}

// NewResponseService creates a new response service
func NewResponseService(responseRepo repository.ResponseRepo, formRepo repository.FormRepo) *ResponseService {
	return &ResponseService{
		responseRepo: responseRepo,
		formRepo:     formRepo,
	}
}

// Submit stores a response under the given formId. The formId is not
// checked against the forms collection and the answers are accepted
// verbatim, matching the original contract.
func (s *ResponseService) Submit(ctx context.Context, formID string, answers []model.Answer) (*model.Response, error) {
	response := &model.Response{
		FormID:  formID,
		Answers: answers,
	}
	if err := s.responseRepo.Create(ctx, response); err != nil {
		return nil, fmt.Errorf("failed to store response: %w", err)
	}
	return response, nil
}

// SubmitByShareID resolves the form behind a share identifier and stores a
// response under its formId.
func (s *ResponseService) SubmitByShareID(ctx context.Context, shareID string, answers []model.Answer) (*model.Response, error) {
	form, err := s.formRepo.GetByShareID(ctx, shareID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve share id: %w", err)
	}
	if form == nil {
		return nil, ErrNotFound
	}
	return s.Submit(ctx, form.FormID, answers)
}

// ListByFormID returns every response submitted for a form, in submission
// order.
func (s *ResponseService) ListByFormID(ctx context.Context, formID string) ([]*model.Response, error) {
	return s.responseRepo.ListByFormID(ctx, formID)
}

// CountByFormID returns the number of responses submitted for a form.
func (s *ResponseService) CountByFormID(ctx context.Context, formID string) (int64, error) {
	return s.responseRepo.CountByFormID(ctx, formID)
}
