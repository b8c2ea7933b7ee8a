package service

import (
	"context"
	"time"

	"github.com/aspirecareer/consultancy-api/internal/core/domain"
	"github.com/aspirecareer/consultancy-api/internal/core/ports"
)

// FormService implements form CRUD with owner-or-admin authorization.
type FormService struct {
	forms ports.FormRepository
}

func NewFormService(forms ports.FormRepository) *FormService {
	return &FormService{forms: forms}
}

// canAccess reports whether actor may touch a form owned by ownerID.
func canAccess(actor *domain.User, ownerID string) bool {
	return actor != nil && (actor.IsAdmin || actor.ID == ownerID)
}

func (s *FormService) Create(ctx context.Context, actor *domain.User, data map[string]any) (*domain.Form, error) {
	if len(data) == 0 {
		return nil, domain.ErrValidation
	}
	now := time.Now().UTC()
	return s.forms.Create(ctx, &domain.Form{
		UserID:    actor.ID,
		Data:      data,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *FormService) Get(ctx context.Context, actor *domain.User, id string) (*domain.Form, error) {
	form, err := s.forms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canAccess(actor, form.UserID) {
		return nil, domain.ErrForbidden
	}
	return form, nil
}

func (s *FormService) Update(ctx context.Context, actor *domain.User, id string, data map[string]any) (*domain.Form, error) {
	form, err := s.forms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canAccess(actor, form.UserID) {
		return nil, domain.ErrForbidden
	}
	if len(data) == 0 {
		return nil, domain.ErrValidation
	}
	form.Data = data
	form.UpdatedAt = time.Now().UTC()
	return s.forms.Update(ctx, form)
}

// Submit marks a form submitted exactly once.
func (s *FormService) Submit(ctx context.Context, actor *domain.User, id string) (*domain.Form, error) {
	form, err := s.forms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canAccess(actor, form.UserID) {
		return nil, domain.ErrForbidden
	}
	if form.Submitted {
		return nil, domain.ErrFormAlreadySubmitted
	}
	now := time.Now().UTC()
	form.Submitted = true
	form.SubmittedAt = &now
	form.UpdatedAt = now
	return s.forms.Update(ctx, form)
}

func (s *FormService) ListByUser(ctx context.Context, actor *domain.User, userID string) ([]*domain.Form, error) {
	if !canAccess(actor, userID) {
		return nil, domain.ErrForbidden
	}
	return s.forms.FindByUserID(ctx, userID)
}

func (s *FormService) ListAll(ctx context.Context, actor *domain.User) ([]*domain.Form, error) {
	if actor == nil || !actor.IsAdmin {
		return nil, domain.ErrForbidden
	}
	return s.forms.FindAll(ctx)
}

func (s *FormService) StatsByUser(ctx context.Context, actor *domain.User, userID string) (*domain.FormStats, error) {
	forms, err := s.ListByUser(ctx, actor, userID)
	if err != nil {
		return nil, err
	}
	stats := &domain.FormStats{Total: len(forms)}
	for _, f := range forms {
		if f.Submitted {
			stats.Submitted++
		}
	}
	stats.Left = stats.Total - stats.Submitted
	return stats, nil
}

func (s *FormService) Delete(ctx context.Context, actor *domain.User, id string) error {
	if actor == nil || !actor.IsAdmin {
		return domain.ErrForbidden
	}
	return s.forms.DeleteByID(ctx, id)
}
