package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/valyala/fasthttp"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/repository"
	qaUC "github.com/taskdeck/backend/usecase/quickaction"
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

func newQuickActionHandler() (*QuickActionHandler, *fakeActionRepo) {
	repo := &fakeActionRepo{}
	return NewQuickActionHandler(qaUC.New(repo, nil), nil, nil), repo
}

func TestQuickActionGet(t *testing.T) {
	h, repo := newQuickActionHandler()
	repo.actions = append(repo.actions, domain.QuickAction{
		ID:         "action-1",
		UserID:     "me",
		Label:      "Due Today",
		Icon:       "fas fa-clock",
		ActionType: domain.ActionTypeFilter,
		ActionData: map[string]any{"filter_type": "due_date", "filter_value": "today"},
		Order:      2,
		IsActive:   true,
	})

	ctx := newRequestCtx(fasthttp.MethodGet, "/api/quick-actions/action-1/", "me", nil)
	ctx.SetUserValue("id", "action-1")
	h.Get(ctx)

	if ctx.Response.StatusCode() != http.StatusOK {
		t.Fatalf("status = %d, body = %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}
	env := decodeEnvelope(t, ctx)

	var got domain.QuickAction
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode action: %v", err)
	}
	if got.ID != "action-1" || got.Label != "Due Today" || got.Order != 2 {
		t.Errorf("action = %+v", got)
	}
	if got.ActionData["filter_value"] != "today" {
		t.Errorf("action data = %v", got.ActionData)
	}
}

func TestQuickActionGetScopedToOwner(t *testing.T) {
	h, repo := newQuickActionHandler()
	repo.actions = append(repo.actions, domain.QuickAction{
		ID: "action-1", UserID: "owner", Label: "Private", ActionType: domain.ActionTypeModal,
	})

	ctx := newRequestCtx(fasthttp.MethodGet, "/api/quick-actions/action-1/", "intruder", nil)
	ctx.SetUserValue("id", "action-1")
	h.Get(ctx)

	if ctx.Response.StatusCode() != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", ctx.Response.StatusCode())
	}
}

func TestQuickActionGetUnauthenticated(t *testing.T) {
	h, _ := newQuickActionHandler()

	ctx := newRequestCtx(fasthttp.MethodGet, "/api/quick-actions/action-1/", "", nil)
	ctx.SetUserValue("id", "action-1")
	h.Get(ctx)

	if ctx.Response.StatusCode() != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", ctx.Response.StatusCode())
	}
}

func TestQuickActionPutResetsAbsentFields(t *testing.T) {
	h, repo := newQuickActionHandler()
	repo.actions = append(repo.actions, domain.QuickAction{
		ID:         "action-1",
		UserID:     "me",
		Label:      "Old Label",
		Icon:       "fas fa-star",
		ActionType: domain.ActionTypeFilter,
		ActionData: map[string]any{"filter_type": "priority"},
		Order:      5,
		IsActive:   false,
	})

	ctx := newRequestCtx(fasthttp.MethodPut, "/api/quick-actions/action-1/", "me",
		[]byte(`{"label": "New Label", "action_type": "modal"}`))
	ctx.SetUserValue("id", "action-1")
	h.Update(ctx)

	if ctx.Response.StatusCode() != http.StatusOK {
		t.Fatalf("status = %d, body = %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}
	stored := repo.actions[0]
	if stored.Label != "New Label" || stored.ActionType != domain.ActionTypeModal {
		t.Errorf("replace not applied: %+v", stored)
	}
	if stored.Icon != "" || stored.Order != 0 || len(stored.ActionData) != 0 {
		t.Errorf("absent fields not reset: %+v", stored)
	}
	if !stored.IsActive {
		t.Error("is_active should reset to its default true")
	}
}

func TestQuickActionPatchKeepsAbsentFields(t *testing.T) {
	h, repo := newQuickActionHandler()
	repo.actions = append(repo.actions, domain.QuickAction{
		ID:         "action-1",
		UserID:     "me",
		Label:      "Old Label",
		Icon:       "fas fa-star",
		ActionType: domain.ActionTypeFilter,
		Order:      5,
		IsActive:   true,
	})

	ctx := newRequestCtx(fasthttp.MethodPatch, "/api/quick-actions/action-1/", "me",
		[]byte(`{"label": "Renamed"}`))
	ctx.SetUserValue("id", "action-1")
	h.Patch(ctx)

	if ctx.Response.StatusCode() != http.StatusOK {
		t.Fatalf("status = %d, body = %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}
	stored := repo.actions[0]
	if stored.Label != "Renamed" {
		t.Errorf("label = %q", stored.Label)
	}
	if stored.Icon != "fas fa-star" || stored.Order != 5 || stored.ActionType != domain.ActionTypeFilter {
		t.Errorf("untouched fields changed: %+v", stored)
	}
}

func TestQuickActionPutRequiresLabel(t *testing.T) {
	h, repo := newQuickActionHandler()
	repo.actions = append(repo.actions, domain.QuickAction{
		ID: "action-1", UserID: "me", Label: "Old Label", ActionType: domain.ActionTypeModal,
	})

	// A full replace with no label resets it to empty, which fails validation.
	ctx := newRequestCtx(fasthttp.MethodPut, "/api/quick-actions/action-1/", "me",
		[]byte(`{"action_type": "modal"}`))
	ctx.SetUserValue("id", "action-1")
	h.Update(ctx)

	if ctx.Response.StatusCode() != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", ctx.Response.StatusCode())
	}
	env := decodeEnvelope(t, ctx)
	var fields map[string][]string
	if err := json.Unmarshal(env.Error, &fields); err != nil {
		t.Fatalf("error payload is not a field map: %s", env.Error)
	}
	if len(fields["label"]) == 0 {
		t.Fatalf("expected label error, got %v", fields)
	}
	if repo.actions[0].Label != "Old Label" {
		t.Errorf("label changed despite failed validation: %q", repo.actions[0].Label)
	}
}

var _ repository.QuickActionRepository = (*fakeActionRepo)(nil)
