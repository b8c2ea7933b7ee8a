package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/aspirecareer/consultancy-api/internal/core/domain"
)

type stubFormRepo struct {
	forms  map[string]*domain.Form
	nextID int
}

func newStubFormRepo() *stubFormRepo {
	return &stubFormRepo{forms: map[string]*domain.Form{}}
}

func (r *stubFormRepo) Create(_ context.Context, form *domain.Form) (*domain.Form, error) {
	r.nextID++
	clone := *form
	clone.ID = "form-" + strconv.Itoa(r.nextID)
	r.forms[clone.ID] = &clone
	return &clone, nil
}

func (r *stubFormRepo) FindByID(_ context.Context, id string) (*domain.Form, error) {
	f, ok := r.forms[id]
	if !ok {
		return nil, domain.ErrFormNotFound
	}
	clone := *f
	return &clone, nil
}

func (r *stubFormRepo) FindByUserID(_ context.Context, userID string) ([]*domain.Form, error) {
	var out []*domain.Form
	for _, f := range r.forms {
		if f.UserID == userID {
			clone := *f
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubFormRepo) FindAll(_ context.Context) ([]*domain.Form, error) {
	var out []*domain.Form
	for _, f := range r.forms {
		clone := *f
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubFormRepo) Update(_ context.Context, form *domain.Form) (*domain.Form, error) {
	if _, ok := r.forms[form.ID]; !ok {
		return nil, domain.ErrFormNotFound
	}
	clone := *form
	r.forms[form.ID] = &clone
	return form, nil
}

func (r *stubFormRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := r.forms[id]; !ok {
		return domain.ErrFormNotFound
	}
	delete(r.forms, id)
	return nil
}

var (
	formOwner = &domain.User{ID: "owner-1", Name: "Owner"}
	otherUser = &domain.User{ID: "other-1", Name: "Other"}
	adminUser = &domain.User{ID: "admin-1", Name: "Admin", IsAdmin: true}
)

func TestFormService_CreateAndGet(t *testing.T) {
	svc := NewFormService(newStubFormRepo())

	created, err := svc.Create(context.Background(), formOwner, map[string]any{"course": "IELTS"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected an assigned id")
	}
	if created.UserID != "owner-1" {
		t.Fatalf("form should belong to its creator, got %q", created.UserID)
	}

	got, err := svc.Get(context.Background(), formOwner, created.ID)
	if err != nil {
		t.Fatalf("get as owner: %v", err)
	}
	if got.Data["course"] != "IELTS" {
		t.Fatalf("unexpected data: %+v", got.Data)
	}

	if _, err := svc.Get(context.Background(), adminUser, created.ID); err != nil {
		t.Fatalf("get as admin: %v", err)
	}
	if _, err := svc.Get(context.Background(), otherUser, created.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("get as stranger: expected ErrForbidden, got %v", err)
	}
}

func TestFormService_Create_EmptyData(t *testing.T) {
	svc := NewFormService(newStubFormRepo())

	if _, err := svc.Create(context.Background(), formOwner, nil); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestFormService_Update(t *testing.T) {
	svc := NewFormService(newStubFormRepo())

	created, err := svc.Create(context.Background(), formOwner, map[string]any{"course": "IELTS"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), formOwner, created.ID, map[string]any{"course": "PTE"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Data["course"] != "PTE" {
		t.Fatalf("data not replaced: %+v", updated.Data)
	}

	if _, err := svc.Update(context.Background(), otherUser, created.ID, map[string]any{"x": 1}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("stranger update: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Update(context.Background(), formOwner, "missing", map[string]any{"x": 1}); !errors.Is(err, domain.ErrFormNotFound) {
		t.Fatalf("missing form: expected ErrFormNotFound, got %v", err)
	}
}

func TestFormService_Submit_Once(t *testing.T) {
	svc := NewFormService(newStubFormRepo())

	created, err := svc.Create(context.Background(), formOwner, map[string]any{"course": "IELTS"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	submitted, err := svc.Submit(context.Background(), formOwner, created.ID)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !submitted.Submitted || submitted.SubmittedAt == nil {
		t.Fatalf("submission not recorded: %+v", submitted)
	}

	if _, err := svc.Submit(context.Background(), formOwner, created.ID); !errors.Is(err, domain.ErrFormAlreadySubmitted) {
		t.Fatalf("second submit: expected ErrFormAlreadySubmitted, got %v", err)
	}
}

func TestFormService_ListAndStats(t *testing.T) {
	svc := NewFormService(newStubFormRepo())

	for i := 0; i < 3; i++ {
		if _, err := svc.Create(context.Background(), formOwner, map[string]any{"n": i}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if _, err := svc.Create(context.Background(), otherUser, map[string]any{"n": 99}); err != nil {
		t.Fatalf("create: %v", err)
	}

	mine, err := svc.ListByUser(context.Background(), formOwner, "owner-1")
	if err != nil {
		t.Fatalf("list mine: %v", err)
	}
	if len(mine) != 3 {
		t.Fatalf("expected 3 forms, got %d", len(mine))
	}

	if _, err := svc.ListByUser(context.Background(), otherUser, "owner-1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("stranger list: expected ErrForbidden, got %v", err)
	}

	all, err := svc.ListAll(context.Background(), adminUser)
	if err != nil {
		t.Fatalf("list all as admin: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 forms, got %d", len(all))
	}
	if _, err := svc.ListAll(context.Background(), formOwner); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("list all as owner: expected ErrForbidden, got %v", err)
	}

	if _, err := svc.Submit(context.Background(), formOwner, mine[0].ID); err != nil {
		t.Fatalf("submit: %v", err)
	}
	stats, err := svc.StatsByUser(context.Background(), formOwner, "owner-1")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 3 || stats.Submitted != 1 || stats.Left != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestFormService_Delete_AdminOnly(t *testing.T) {
	repo := newStubFormRepo()
	svc := NewFormService(repo)

	created, err := svc.Create(context.Background(), formOwner, map[string]any{"course": "IELTS"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), formOwner, created.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("owner delete: expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), adminUser, created.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if _, ok := repo.forms[created.ID]; ok {
		t.Fatalf("form still present after delete")
	}
}
