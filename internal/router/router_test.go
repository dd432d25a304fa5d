package router

import (
	"testing"

	"github.com/valyala/fasthttp"

	apiHandler "github.com/taskdeck/backend/api/handler"
)

func TestRouteTable(t *testing.T) {
	passthrough := func(next fasthttp.RequestHandler) fasthttp.RequestHandler { return next }
	handlers := Handlers{
		Auth:        apiHandler.NewAuthHandler(nil, nil, nil),
		Profile:     apiHandler.NewProfileHandler(nil, nil, nil, nil),
		Task:        apiHandler.NewTaskHandler(nil, nil, nil),
		QuickAction: apiHandler.NewQuickActionHandler(nil, nil, nil),
		Health:      apiHandler.NewHealthHandler(nil, nil, nil),
	}
	r := New(handlers, passthrough)

	routes := []struct {
		method string
		path   string
	}{
		{fasthttp.MethodGet, "/health"},
		{fasthttp.MethodPost, "/api/auth/signup/"},
		{fasthttp.MethodPost, "/api/auth/login/"},
		{fasthttp.MethodPost, "/api/auth/logout/"},
		{fasthttp.MethodPatch, "/api/auth/update_user/"},
		{fasthttp.MethodGet, "/api/tasks/"},
		{fasthttp.MethodPost, "/api/tasks/"},
		{fasthttp.MethodGet, "/api/tasks/dashboard_stats/"},
		{fasthttp.MethodGet, "/api/tasks/filter_tasks/"},
		{fasthttp.MethodGet, "/api/tasks/some-id/"},
		{fasthttp.MethodPut, "/api/tasks/some-id/"},
		{fasthttp.MethodPatch, "/api/tasks/some-id/"},
		{fasthttp.MethodDelete, "/api/tasks/some-id/"},
		{fasthttp.MethodGet, "/api/profile/me/"},
		{fasthttp.MethodPatch, "/api/profile/update_profile/"},
		{fasthttp.MethodPost, "/api/profile/change_password/"},
		{fasthttp.MethodGet, "/api/profile/photo/"},
		{fasthttp.MethodGet, "/api/quick-actions/"},
		{fasthttp.MethodPost, "/api/quick-actions/"},
		{fasthttp.MethodPost, "/api/quick-actions/reorder/"},
		{fasthttp.MethodPost, "/api/quick-actions/bulk_create/"},
		{fasthttp.MethodGet, "/api/quick-actions/some-id/"},
		{fasthttp.MethodPut, "/api/quick-actions/some-id/"},
		{fasthttp.MethodPatch, "/api/quick-actions/some-id/"},
		{fasthttp.MethodDelete, "/api/quick-actions/some-id/"},
	}

	for _, tt := range routes {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			ctx := &fasthttp.RequestCtx{}
			if handler, _ := r.Lookup(tt.method, tt.path, ctx); handler == nil {
				t.Fatalf("no %s route registered for %s", tt.method, tt.path)
			}
		})
	}
}
