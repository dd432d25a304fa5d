package quickaction

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/repository"
)

type fakeActionRepo struct {
	actions []domain.QuickAction
	seq     int
}

func (r *fakeActionRepo) ListByUser(_ context.Context, userID string, activeOnly bool) ([]domain.QuickAction, error) {
	var out []domain.QuickAction
	for _, action := range r.actions {
		if action.UserID != userID {
			continue
		}
		if activeOnly && !action.IsActive {
			continue
		}
		out = append(out, action)
	}
	return out, nil
}

func (r *fakeActionRepo) GetByID(_ context.Context, userID, id string) (*domain.QuickAction, error) {
	for _, action := range r.actions {
		if action.ID == id && action.UserID == userID {
			copied := action
			return &copied, nil
		}
	}
	return nil, domain.ErrQuickActionNotFound
}

func (r *fakeActionRepo) Create(_ context.Context, action *domain.QuickAction) error {
	for _, existing := range r.actions {
		if existing.UserID == action.UserID && existing.Label == action.Label {
			return domain.ErrDuplicateLabel
		}
	}
	r.seq++
	action.ID = fmt.Sprintf("action-%d", r.seq)
	r.actions = append(r.actions, *action)
	return nil
}

func (r *fakeActionRepo) Update(_ context.Context, action *domain.QuickAction) error {
	for i, existing := range r.actions {
		if existing.ID == action.ID && existing.UserID == action.UserID {
			r.actions[i] = *action
			return nil
		}
	}
	return domain.ErrQuickActionNotFound
}

func (r *fakeActionRepo) Delete(_ context.Context, userID, id string) error {
	for i, existing := range r.actions {
		if existing.ID == id && existing.UserID == userID {
			r.actions = append(r.actions[:i], r.actions[i+1:]...)
			return nil
		}
	}
	return domain.ErrQuickActionNotFound
}

func (r *fakeActionRepo) SetOrder(_ context.Context, userID, id string, order int) (bool, error) {
	for i, existing := range r.actions {
		if existing.ID == id && existing.UserID == userID {
			r.actions[i].Order = order
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeActionRepo) find(id string) *domain.QuickAction {
	for i := range r.actions {
		if r.actions[i].ID == id {
			return &r.actions[i]
		}
	}
	return nil
}

func TestCreateBindsCallerAndDefaults(t *testing.T) {
	repo := &fakeActionRepo{}
	uc := New(repo, nil)

	created, err := uc.Create(context.Background(), "me", &domain.QuickAction{
		UserID:     "spoofed",
		Label:      "Inbox",
		ActionType: domain.ActionTypeFilter,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != "me" {
		t.Errorf("owner = %q, want me", created.UserID)
	}
	if created.ActionData == nil {
		t.Error("action data should default to an empty map")
	}
}

func TestCreateDuplicateLabel(t *testing.T) {
	repo := &fakeActionRepo{}
	uc := New(repo, nil)
	ctx := context.Background()

	if _, err := uc.Create(ctx, "me", &domain.QuickAction{Label: "Inbox", ActionType: domain.ActionTypeFilter}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := uc.Create(ctx, "me", &domain.QuickAction{Label: "Inbox", ActionType: domain.ActionTypeModal})
	if !errors.Is(err, domain.ErrDuplicateLabel) {
		t.Fatalf("expected ErrDuplicateLabel, got %v", err)
	}

	// Another user may reuse the label.
	if _, err := uc.Create(ctx, "other", &domain.QuickAction{Label: "Inbox", ActionType: domain.ActionTypeFilter}); err != nil {
		t.Fatalf("same label for another user: %v", err)
	}
}

func TestListReturnsActiveOnly(t *testing.T) {
	repo := &fakeActionRepo{}
	uc := New(repo, nil)
	ctx := context.Background()

	active, err := uc.Create(ctx, "me", &domain.QuickAction{Label: "Active", ActionType: domain.ActionTypeFilter, IsActive: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := uc.Create(ctx, "me", &domain.QuickAction{Label: "Disabled", ActionType: domain.ActionTypeFilter}); err != nil {
		t.Fatalf("create: %v", err)
	}

	listed, err := uc.List(ctx, "me")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != active.ID {
		t.Fatalf("expected only the active action, got %v", listed)
	}
}

func TestReorderSkipsUnknownIDs(t *testing.T) {
	repo := &fakeActionRepo{}
	uc := New(repo, nil)
	ctx := context.Background()

	mine, err := uc.Create(ctx, "me", &domain.QuickAction{Label: "Mine", ActionType: domain.ActionTypeFilter, Order: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	foreign, err := uc.Create(ctx, "other", &domain.QuickAction{Label: "Foreign", ActionType: domain.ActionTypeFilter, Order: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	err = uc.Reorder(ctx, "me", []ReorderItem{
		{ID: mine.ID, Order: 9},
		{ID: foreign.ID, Order: 9},
		{ID: "missing", Order: 9},
	})
	if err != nil {
		t.Fatalf("reorder must not fail on unknown ids: %v", err)
	}

	if got := repo.find(mine.ID).Order; got != 9 {
		t.Errorf("owned action order = %d, want 9", got)
	}
	if got := repo.find(foreign.ID).Order; got != 1 {
		t.Errorf("foreign action order changed to %d", got)
	}
}

func TestBulkCreateSkipsInvalidAndDuplicates(t *testing.T) {
	repo := &fakeActionRepo{}
	uc := New(repo, nil)
	ctx := context.Background()

	if _, err := uc.Create(ctx, "me", &domain.QuickAction{Label: "Existing", ActionType: domain.ActionTypeFilter}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	created, err := uc.BulkCreate(ctx, "me", []domain.QuickAction{
		{Label: "Fresh", ActionType: domain.ActionTypeFilter},
		{Label: "", ActionType: domain.ActionTypeFilter},   // invalid: no label
		{Label: "Existing", ActionType: domain.ActionTypeModal}, // duplicate
		{Label: "Another", ActionType: domain.ActionTypeModal},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("created %d actions, want 2", len(created))
	}
	if created[0].Label != "Fresh" || created[1].Label != "Another" {
		t.Errorf("unexpected creations: %v", created)
	}
	for _, action := range created {
		if action.UserID != "me" {
			t.Errorf("action %q bound to %q", action.Label, action.UserID)
		}
	}
}

func TestUpdateValidatesResult(t *testing.T) {
	repo := &fakeActionRepo{}
	uc := New(repo, nil)
	ctx := context.Background()

	created, err := uc.Create(ctx, "me", &domain.QuickAction{Label: "Inbox", ActionType: domain.ActionTypeFilter})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	empty := ""
	_, err = uc.Update(ctx, "me", created.ID, Patch{Label: &empty})
	var fieldErrs domain.FieldErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs["label"]) == 0 {
		t.Fatalf("expected label validation error, got %v", err)
	}
	if got := repo.find(created.ID).Label; got != "Inbox" {
		t.Errorf("label changed despite failed validation: %q", got)
	}
}

var _ repository.QuickActionRepository = (*fakeActionRepo)(nil)
