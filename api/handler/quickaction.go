package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskdeck/backend/api/transport"
	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/pkg/httpcontext"
	qaUC "github.com/taskdeck/backend/usecase/quickaction"
)

type QuickActionHandler struct {
	baseHandler
	uc *qaUC.UseCase
}

func NewQuickActionHandler(uc *qaUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *QuickActionHandler {
	return &QuickActionHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List quick actions
// @Tags quick-actions
// @Router /api/quick-actions [get]
func (h *QuickActionHandler) List(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	actions, err := h.uc.List(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	if actions == nil {
		actions = []domain.QuickAction{}
	}
	h.respondSuccess(ctx, http.StatusOK, actions)
}

// @Summary Create quick action
// @Tags quick-actions
// @Router /api/quick-actions [post]
func (h *QuickActionHandler) Create(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.QuickActionRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Create(stdCtx, userID, actionFromRequest(req))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Retrieve quick action
// @Tags quick-actions
// @Router /api/quick-actions/{id} [get]
func (h *QuickActionHandler) Get(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}
	id, _ := ctx.UserValue("id").(string)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	action, err := h.uc.Get(stdCtx, userID, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, action)
}

// @Summary Replace quick action
// @Tags quick-actions
// @Router /api/quick-actions/{id} [put]
func (h *QuickActionHandler) Update(ctx *fasthttp.RequestCtx) {
	h.update(ctx, false)
}

// @Summary Partially update quick action
// @Tags quick-actions
// @Router /api/quick-actions/{id} [patch]
func (h *QuickActionHandler) Patch(ctx *fasthttp.RequestCtx) {
	h.update(ctx, true)
}

func (h *QuickActionHandler) update(ctx *fasthttp.RequestCtx, partial bool) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}
	id, _ := ctx.UserValue("id").(string)

	var req transport.QuickActionRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	patch := qaUC.Patch{
		Label:      req.Label,
		Icon:       req.Icon,
		ActionType: req.ActionType,
		ActionData: req.ActionData,
		Order:      req.Order,
		IsActive:   req.IsActive,
	}
	if !partial {
		// A full replace resets every absent field to its default.
		patch = fillActionReplace(patch)
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.Update(stdCtx, userID, id, patch)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete quick action
// @Tags quick-actions
// @Router /api/quick-actions/{id} [delete]
func (h *QuickActionHandler) Delete(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}
	id, _ := ctx.UserValue("id").(string)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Delete(stdCtx, userID, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary Reorder quick actions
// @Tags quick-actions
// @Router /api/quick-actions/reorder [post]
func (h *QuickActionHandler) Reorder(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.ReorderRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	items := make([]qaUC.ReorderItem, 0, len(req.Actions))
	for _, item := range req.Actions {
		items = append(items, qaUC.ReorderItem{ID: item.ID, Order: item.Order})
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Reorder(stdCtx, userID, items); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, nil)
}

// @Summary Bulk create quick actions
// @Tags quick-actions
// @Router /api/quick-actions/bulk_create [post]
func (h *QuickActionHandler) BulkCreate(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.BulkCreateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	payloads := make([]domain.QuickAction, 0, len(req.Actions))
	for _, item := range req.Actions {
		payloads = append(payloads, *actionFromRequest(item))
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.BulkCreate(stdCtx, userID, payloads)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.BulkCreateResponse{
		Actions: created,
		Count:   len(created),
	})
}

func fillActionReplace(patch qaUC.Patch) qaUC.Patch {
	empty := ""
	zero := 0
	active := true

	if patch.Label == nil {
		patch.Label = &empty
	}
	if patch.Icon == nil {
		patch.Icon = &empty
	}
	if patch.ActionType == nil {
		patch.ActionType = &empty
	}
	if patch.ActionData == nil {
		patch.ActionData = map[string]any{}
	}
	if patch.Order == nil {
		patch.Order = &zero
	}
	if patch.IsActive == nil {
		patch.IsActive = &active
	}
	return patch
}

func actionFromRequest(req transport.QuickActionRequest) *domain.QuickAction {
	action := &domain.QuickAction{
		ActionData: req.ActionData,
		IsActive:   true,
	}
	if req.Label != nil {
		action.Label = *req.Label
	}
	if req.Icon != nil {
		action.Icon = *req.Icon
	}
	if req.ActionType != nil {
		action.ActionType = *req.ActionType
	}
	if req.Order != nil {
		action.Order = *req.Order
	}
	if req.IsActive != nil {
		action.IsActive = *req.IsActive
	}
	return action
}
