package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/monosijkayal/open-form/internal/cache"
	"github.com/monosijkayal/open-form/internal/model"
	"github.com/monosijkayal/open-form/internal/repository"
	"github.com/monosijkayal/open-form/internal/token"
)

var (
	ErrNotFound  = errors.New("form not found")
	ErrForbidden = errors.New("invalid edit key")
)

// FormService handles form CRUD and the identifier-based access rules
type FormService struct {
	formRepo  repository.FormRepo
	formCache cache.FormCache
	baseURL   string
}

// NewFormService creates a new form service
func NewFormService(formRepo repository.FormRepo, formCache cache.FormCache, baseURL string) *FormService {
	return &FormService{
		formRepo:  formRepo,
		formCache: formCache,
		baseURL:   baseURL,
	}
}

// Create generates the three identifiers, merges them with the caller's
// fields and persists the form. A duplicate-key error from the unique
// indexes means a generated identifier collided; generation is retried a
// bounded number of times before giving up.
func (s *FormService) Create(ctx context.Context, form *model.Form) (*model.Form, error) {
	for attempts := 0; attempts < 5; attempts++ {
		var err error
		if form.FormID, err = token.Generate(token.FormIDLen); err != nil {
			return nil, fmt.Errorf("failed to generate formId: %w", err)
		}
		if form.EditKey, err = token.Generate(token.EditKeyLen); err != nil {
			return nil, fmt.Errorf("failed to generate editKey: %w", err)
		}
		if form.ShareID, err = token.Generate(token.ShareIDLen); err != nil {
			return nil, fmt.Errorf("failed to generate shareId: %w", err)
		}

		err = s.formRepo.Create(ctx, form)
		if err == nil {
			return form, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("failed to create form: %w", err)
		}
		log.Printf("form identifier collision, regenerating (attempt %d)", attempts+1)
	}
	return nil, fmt.Errorf("failed to create form: identifier collisions exhausted retries")
}

// GetByFormID retrieves a form by its internal identifier. Returns nil when
// unknown. The full document, editKey included, is returned to any caller
// holding the formId (source behavior, kept as-is).
func (s *FormService) GetByFormID(ctx context.Context, formID string) (*model.Form, error) {
	return s.formRepo.GetByFormID(ctx, formID)
}

// GetByShareID retrieves a form by its public share identifier, serving
// from the share cache when possible.
func (s *FormService) GetByShareID(ctx context.Context, shareID string) (*model.Form, error) {
	cached, err := s.formCache.GetByShareID(ctx, shareID)
	if err != nil {
		log.Printf("form cache read failed for %s: %v", shareID, err)
	}
	if cached != nil {
		return cached, nil
	}

	form, err := s.formRepo.GetByShareID(ctx, shareID)
	if err != nil || form == nil {
		return form, err
	}

	if err := s.formCache.SetByShareID(ctx, shareID, form); err != nil {
		log.Printf("form cache write failed for %s: %v", shareID, err)
	}
	return form, nil
}

// Update applies a patch to the form identified by formID. The supplied key
// must equal the stored editKey exactly; any holder of it may change every
// patchable field, the editKey itself included.
func (s *FormService) Update(ctx context.Context, formID, editKey string, patch *model.FormPatch) error {
	form, err := s.formRepo.GetByFormID(ctx, formID)
	if err != nil {
		return fmt.Errorf("failed to fetch form: %w", err)
	}
	if form == nil {
		return ErrNotFound
	}
	if form.EditKey != editKey {
		return ErrForbidden
	}

	if err := s.formRepo.Update(ctx, formID, patch); err != nil {
		return fmt.Errorf("failed to update form: %w", err)
	}

	if err := s.formCache.Invalidate(ctx, form.ShareID); err != nil {
		log.Printf("form cache invalidation failed for %s: %v", form.ShareID, err)
	}
	return nil
}

// ShareURL builds the public respond link for a share identifier.
func (s *FormService) ShareURL(shareID string) string {
	return fmt.Sprintf("%s/respond/%s", s.baseURL, shareID)
}
