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
	taskUC "github.com/taskdeck/backend/usecase/task"
)

type fakeTaskRepo struct {
	tasks map[string]*domain.Task
	seq   int
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[string]*domain.Task{}}
}

func (r *fakeTaskRepo) GetByID(_ context.Context, userID, id string) (*domain.Task, error) {
	task, ok := r.tasks[id]
	if !ok || task.UserID != userID {
		return nil, domain.ErrTaskNotFound
	}
	copied := *task
	return &copied, nil
}

func (r *fakeTaskRepo) List(_ context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	var out []domain.Task
	for _, task := range r.tasks {
		if task.UserID == filter.UserID {
			out = append(out, *task)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	r.seq++
	task.ID = fmt.Sprintf("task-%d", r.seq)
	copied := *task
	r.tasks[task.ID] = &copied
	return task, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, task *domain.Task) error {
	stored, ok := r.tasks[task.ID]
	if !ok || stored.UserID != task.UserID {
		return domain.ErrTaskNotFound
	}
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, userID, id string) error {
	task, ok := r.tasks[id]
	if !ok || task.UserID != userID {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) DashboardCounts(_ context.Context, _ string, _ domain.Date) (*repository.DashboardCounts, error) {
	return &repository.DashboardCounts{}, nil
}

type envelope struct {
	Status string          `json:"status"`
	Code   string          `json:"code"`
	Data   json.RawMessage `json:"data"`
	Error  json.RawMessage `json:"error"`
}

func newTaskHandler() (*TaskHandler, *fakeTaskRepo) {
	repo := newFakeTaskRepo()
	return NewTaskHandler(taskUC.New(repo, nil), nil, nil), repo
}

func newRequestCtx(method, uri, userID string, body []byte) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	if userID != "" {
		ctx.Request.Header.Set("X-User-ID", userID)
	}
	if body != nil {
		ctx.Request.SetBody(body)
	}
	return ctx
}

func decodeEnvelope(t *testing.T, ctx *fasthttp.RequestCtx) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(ctx.Response.Body(), &env); err != nil {
		t.Fatalf("decode response %q: %v", ctx.Response.Body(), err)
	}
	return env
}

func TestTaskCreate(t *testing.T) {
	h, repo := newTaskHandler()

	body := []byte(`{"title": "buy milk", "priority": "high", "user_id": "smuggled"}`)
	ctx := newRequestCtx(fasthttp.MethodPost, "/api/tasks/", "me", body)
	h.Create(ctx)

	if ctx.Response.StatusCode() != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}
	env := decodeEnvelope(t, ctx)
	if env.Status != "success" {
		t.Fatalf("envelope status = %q", env.Status)
	}

	var created domain.Task
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode task: %v", err)
	}
	if created.Title != "buy milk" || created.Priority != domain.PriorityHigh {
		t.Errorf("created = %+v", created)
	}
	if created.Status != domain.StatusPending || created.Category != domain.CategoryOther {
		t.Errorf("defaults not applied: %+v", created)
	}
	if stored := repo.tasks[created.ID]; stored.UserID != "me" {
		t.Errorf("owner = %q, want me", stored.UserID)
	}
}

func TestTaskCreateUnauthenticated(t *testing.T) {
	h, _ := newTaskHandler()

	ctx := newRequestCtx(fasthttp.MethodPost, "/api/tasks/", "", []byte(`{"title": "x"}`))
	h.Create(ctx)

	if ctx.Response.StatusCode() != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", ctx.Response.StatusCode())
	}
}

func TestTaskCreateBadDueDate(t *testing.T) {
	h, _ := newTaskHandler()

	ctx := newRequestCtx(fasthttp.MethodPost, "/api/tasks/", "me",
		[]byte(`{"title": "x", "due_date": "31/12/2025"}`))
	h.Create(ctx)

	if ctx.Response.StatusCode() != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", ctx.Response.StatusCode())
	}
	env := decodeEnvelope(t, ctx)
	var fields map[string][]string
	if err := json.Unmarshal(env.Error, &fields); err != nil {
		t.Fatalf("error payload is not a field map: %s", env.Error)
	}
	if len(fields["due_date"]) == 0 {
		t.Fatalf("expected due_date error, got %v", fields)
	}
}

func TestTaskGetScopedToOwner(t *testing.T) {
	h, repo := newTaskHandler()
	repo.tasks["task-1"] = &domain.Task{ID: "task-1", UserID: "owner", Title: "private"}

	ctx := newRequestCtx(fasthttp.MethodGet, "/api/tasks/task-1/", "intruder", nil)
	ctx.SetUserValue("id", "task-1")
	h.Get(ctx)

	// Foreign rows are indistinguishable from missing ones.
	if ctx.Response.StatusCode() != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", ctx.Response.StatusCode())
	}
}

func TestTaskPutResetsAbsentFields(t *testing.T) {
	h, repo := newTaskHandler()
	due := domain.Today()
	repo.tasks["task-1"] = &domain.Task{
		ID:          "task-1",
		UserID:      "me",
		Title:       "old title",
		Description: "old description",
		Status:      domain.StatusInProgress,
		Priority:    domain.PriorityHigh,
		Category:    domain.CategoryWork,
		DueDate:     &due,
	}

	ctx := newRequestCtx(fasthttp.MethodPut, "/api/tasks/task-1/", "me",
		[]byte(`{"title": "new title"}`))
	ctx.SetUserValue("id", "task-1")
	h.Update(ctx)

	if ctx.Response.StatusCode() != http.StatusOK {
		t.Fatalf("status = %d, body = %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}
	stored := repo.tasks["task-1"]
	if stored.Title != "new title" {
		t.Errorf("title = %q", stored.Title)
	}
	if stored.Description != "" || stored.Status != domain.StatusPending ||
		stored.Priority != domain.PriorityMedium || stored.DueDate != nil {
		t.Errorf("absent fields not reset: %+v", stored)
	}
}

func TestTaskPatchKeepsAbsentFields(t *testing.T) {
	h, repo := newTaskHandler()
	repo.tasks["task-1"] = &domain.Task{
		ID:       "task-1",
		UserID:   "me",
		Title:    "old title",
		Status:   domain.StatusInProgress,
		Priority: domain.PriorityHigh,
		Category: domain.CategoryWork,
	}

	ctx := newRequestCtx(fasthttp.MethodPatch, "/api/tasks/task-1/", "me",
		[]byte(`{"status": "completed"}`))
	ctx.SetUserValue("id", "task-1")
	h.Patch(ctx)

	if ctx.Response.StatusCode() != http.StatusOK {
		t.Fatalf("status = %d, body = %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}
	stored := repo.tasks["task-1"]
	if stored.Status != domain.StatusCompleted {
		t.Errorf("status = %q", stored.Status)
	}
	if stored.Title != "old title" || stored.Priority != domain.PriorityHigh {
		t.Errorf("untouched fields changed: %+v", stored)
	}
}

func TestTaskListEmpty(t *testing.T) {
	h, _ := newTaskHandler()

	ctx := newRequestCtx(fasthttp.MethodGet, "/api/tasks/", "me", nil)
	h.List(ctx)

	if ctx.Response.StatusCode() != http.StatusOK {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}
	env := decodeEnvelope(t, ctx)
	// An empty listing is an empty array, never null.
	if string(env.Data) != "[]" {
		t.Fatalf("data = %s, want []", env.Data)
	}
}

var _ repository.TaskRepository = (*fakeTaskRepo)(nil)
