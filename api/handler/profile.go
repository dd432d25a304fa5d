package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskdeck/backend/api/transport"
	"github.com/taskdeck/backend/pkg/httpcontext"
	authUC "github.com/taskdeck/backend/usecase/auth"
	profileUC "github.com/taskdeck/backend/usecase/profile"
)

type ProfileHandler struct {
	baseHandler
	uc   *profileUC.UseCase
	auth *authUC.UseCase
}

func NewProfileHandler(uc *profileUC.UseCase, auth *authUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
		auth:        auth,
	}
}

// @Summary Current user's profile
// @Tags profile
// @Router /api/profile/me [get]
func (h *ProfileHandler) Me(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	profile, owner, err := h.uc.Get(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.NewProfileResponse(profile, owner))
}

// @Summary Update profile
// @Tags profile
// @Accept json
// @Accept multipart/form-data
// @Router /api/profile/update_profile [patch]
func (h *ProfileHandler) UpdateProfile(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	if isMultipart(ctx) {
		h.updateMultipart(ctx, userID)
		return
	}

	var req transport.ProfileUpdateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	profile, owner, err := h.uc.Update(stdCtx, userID, profileUC.Patch{
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.NewProfileResponse(profile, owner))
}

func (h *ProfileHandler) updateMultipart(ctx *fasthttp.RequestCtx, userID string) {
	form, err := ctx.MultipartForm()
	if err != nil {
		h.respondInvalid(ctx, "invalid multipart form")
		return
	}

	patch := profileUC.Patch{}
	if values := form.Value["display_name"]; len(values) > 0 {
		patch.DisplayName = &values[0]
	}
	if values := form.Value["bio"]; len(values) > 0 {
		patch.Bio = &values[0]
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	profile, owner, err := h.uc.Update(stdCtx, userID, patch)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	if files := form.File["profile_photo"]; len(files) > 0 {
		file, err := files[0].Open()
		if err != nil {
			h.respondInvalid(ctx, "unreadable photo upload")
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			h.respondInvalid(ctx, "unreadable photo upload")
			return
		}

		contentType := files[0].Header.Get("Content-Type")
		profile, err = h.uc.UploadPhoto(stdCtx, userID, contentType, data)
		if err != nil {
			h.respondError(ctx, err)
			return
		}
	}

	h.respondSuccess(ctx, http.StatusOK, transport.NewProfileResponse(profile, owner))
}

// @Summary Change password
// @Tags profile
// @Router /api/profile/change_password [post]
func (h *ProfileHandler) ChangePassword(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.ChangePasswordRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.auth.ChangePassword(stdCtx, userID, req.CurrentPassword, req.NewPassword); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]string{"message": "Password changed successfully"})
}

// @Summary Serve the profile photo
// @Tags profile
// @Router /api/profile/photo [get]
func (h *ProfileHandler) Photo(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	obj, err := h.uc.Photo(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	contentType := obj.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	ctx.Response.Header.SetContentType(contentType)
	ctx.SetStatusCode(http.StatusOK)
	ctx.SetBody(obj.Data)
}

func isMultipart(ctx *fasthttp.RequestCtx) bool {
	return strings.HasPrefix(string(ctx.Request.Header.ContentType()), "multipart/form-data")
}
