package http

import (
	"context"
	"net/http"
	"ovpnapi/internal/api/http/logger"
	apimodel "ovpnapi/internal/api/http/utils"
	"ovpnapi/internal/core/bundle"
	"ovpnapi/internal/core/client"
	"ovpnapi/internal/runtime"
	"time"
)

func NewRequestHandler(clientService client.ClientServiceHandler, bundleIndex bundle.BundleIndexHandler) *RequestHandler {
	return &RequestHandler{
		clientServiceHandler: clientService,
		bundleIndexHandler:   bundleIndex,
	}
}

type RequestHandler struct {
	clientServiceHandler client.ClientServiceHandler
	bundleIndexHandler   bundle.BundleIndexHandler
}

// AddUser godoc
// @Summary Add a VPN client
// @Description issue a new client certificate and return its .ovpn bundle
// @Tags users
// @Accept json
// @Produce json
// @Param request body UserRequest true "Client"
// @Success 200 {object} AddUserResponse
// @Failure 400 {object} apimodel.ApiResponse
// @Failure 500 {object} apimodel.ApiResponse
// @Router /add_user [post]
func (h *RequestHandler) AddUser(w http.ResponseWriter, r *http.Request) {
	// decode request
	var req UserRequest
	if !h.decodeUserRequest(w, r, &req) {
		return
	}

	// service: add
	result, err := h.clientServiceHandler.Add(r.Context(), client.ServiceAddModel{
		Username: req.Username,
		Password: req.Password,
	})
	h.recordInvocation(r.Context(), result.ServiceResult, err)
	if err != nil {
		h.respondBridgeFail(w, r, err)
		return
	}

	// encode response
	apimodel.WriteJson(w, http.StatusOK, AddUserResponse{
		Username: req.Username,
		Ovpn:     result.Bundle,
	})
}

// RevokeUser godoc
// @Summary Revoke a VPN client
// @Description revoke the client certificate of an existing user
// @Tags users
// @Accept json
// @Produce json
// @Param request body UserRequest true "Client"
// @Success 200 {object} RevokeUserResponse
// @Failure 400 {object} apimodel.ApiResponse
// @Failure 500 {object} apimodel.ApiResponse
// @Router /revoke_user [post]
func (h *RequestHandler) RevokeUser(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if !h.decodeUserRequest(w, r, &req) {
		return
	}

	// service: revoke (password is accepted but unused)
	result, err := h.clientServiceHandler.Revoke(r.Context(), client.ServiceRevokeModel{
		Username: req.Username,
	})
	h.recordInvocation(r.Context(), result, err)
	if err != nil {
		h.respondBridgeFail(w, r, err)
		return
	}

	apimodel.WriteJson(w, http.StatusOK, RevokeUserResponse{
		Username: req.Username,
		Status:   StatusRevoked,
	})
}

// RegenUser godoc
// @Summary Regenerate a VPN client
// @Description reissue the client certificate and return the new .ovpn bundle
// @Tags users
// @Accept json
// @Produce json
// @Param request body UserRequest true "Client"
// @Success 200 {object} RegenUserResponse
// @Failure 400 {object} apimodel.ApiResponse
// @Failure 500 {object} apimodel.ApiResponse
// @Router /regen_user [post]
func (h *RequestHandler) RegenUser(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if !h.decodeUserRequest(w, r, &req) {
		return
	}

	// service: regen
	result, err := h.clientServiceHandler.Regen(r.Context(), client.ServiceRegenModel{
		Username: req.Username,
		Password: req.Password,
	})
	h.recordInvocation(r.Context(), result.ServiceResult, err)
	if err != nil {
		h.respondBridgeFail(w, r, err)
		return
	}

	apimodel.WriteJson(w, http.StatusOK, RegenUserResponse{
		Username: req.Username,
		Ovpn:     result.Bundle,
		Status:   StatusRegenerated,
	})
}

// ListUsers godoc
// @Summary List VPN clients
// @Description list the users known to openvpn-ctl
// @Tags users
// @Produce json
// @Success 200 {object} ListUsersResponse
// @Failure 500 {object} apimodel.ApiResponse
// @Router /list_users [post]
func (h *RequestHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	// service: list
	result, err := h.clientServiceHandler.List(r.Context())
	h.recordInvocation(r.Context(), result.ServiceResult, err)
	if err != nil {
		h.respondBridgeFail(w, r, err)
		return
	}

	apimodel.WriteJson(w, http.StatusOK, ListUsersResponse{Users: result.Users})
}

// ShowOvpn godoc
// @Summary Show a client bundle
// @Description return the output of openvpn-ctl show verbatim
// @Tags users
// @Accept json
// @Produce plain
// @Param request body UserRequest true "Client"
// @Success 200 {string} string
// @Failure 400 {object} apimodel.ApiResponse
// @Failure 500 {object} apimodel.ApiResponse
// @Router /show_ovpn [post]
func (h *RequestHandler) ShowOvpn(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if !h.decodeUserRequest(w, r, &req) {
		return
	}

	// service: show
	result, err := h.clientServiceHandler.Show(r.Context(), client.ServiceShowModel{
		Username: req.Username,
	})
	h.recordInvocation(r.Context(), result.ServiceResult, err)
	if err != nil {
		h.respondBridgeFail(w, r, err)
		return
	}

	apimodel.WriteText(w, http.StatusOK, result.Text)
}

// ExportOvpn godoc
// @Summary Export a client bundle
// @Description have openvpn-ctl write the bundle to output_path
// @Tags users
// @Accept json
// @Produce json
// @Param request body ExportRequest true "Export"
// @Success 200 {object} ExportResponse
// @Failure 400 {object} apimodel.ApiResponse
// @Failure 500 {object} apimodel.ApiResponse
// @Router /export_ovpn [post]
func (h *RequestHandler) ExportOvpn(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if err := apimodel.DecodeRequestBody(r, &req); err != nil {
		apimodel.RespondFail(w, http.StatusBadRequest, "invalid json: "+err.Error(), nil)
		return
	}
	if req.Username == "" || req.OutputPath == "" {
		apimodel.RespondFail(w, http.StatusBadRequest, "username and output_path are required", nil)
		return
	}
	logger.SetTarget(r.Context(), logger.Target{Username: req.Username, OutputPath: req.OutputPath})

	// service: export
	result, err := h.clientServiceHandler.Export(r.Context(), client.ServiceExportModel{
		Username:   req.Username,
		OutputPath: req.OutputPath,
	})
	h.recordInvocation(r.Context(), result, err)
	if err != nil {
		h.respondBridgeFail(w, r, err)
		return
	}

	apimodel.WriteJson(w, http.StatusOK, ExportResponse{
		Username:   req.Username,
		ExportedTo: req.OutputPath,
	})
}

// ListBundles godoc
// @Summary List bundles on disk
// @Description list the .ovpn bundles present in the output directory
// @Tags bundles
// @Produce json
// @Success 200 {object} ListBundlesResponse
// @Failure 500 {object} apimodel.ApiResponse
// @Router /bundles [get]
func (h *RequestHandler) ListBundles(w http.ResponseWriter, r *http.Request) {
	bundles, err := h.bundleIndexHandler.List()
	if err != nil {
		apimodel.RespondFail(w, http.StatusInternalServerError, "list bundles: "+err.Error(), nil)
		return
	}

	resp := ListBundlesResponse{Bundles: make([]BundleResponse, 0, len(bundles))}
	for _, b := range bundles {
		resp.Bundles = append(resp.Bundles, BundleResponse{
			Username:   b.Username,
			Path:       b.Path,
			Size:       b.Size,
			ModifiedAt: b.ModifiedAt.UTC().Format(time.RFC3339),
		})
	}
	apimodel.WriteJson(w, http.StatusOK, resp)
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} apimodel.ApiResponse
// @Router /healthz [get]
func (h *RequestHandler) Health(w http.ResponseWriter, r *http.Request) {
	apimodel.RespondSuccess(w, http.StatusOK, "ok", nil)
}

func (h *RequestHandler) decodeUserRequest(w http.ResponseWriter, r *http.Request, req *UserRequest) bool {
	if err := apimodel.DecodeRequestBody(r, req); err != nil {
		apimodel.RespondFail(w, http.StatusBadRequest, "invalid json: "+err.Error(), nil)
		return false
	}
	if req.Username == "" {
		apimodel.RespondFail(w, http.StatusBadRequest, "username is required", nil)
		return false
	}
	logger.SetTarget(r.Context(), logger.Target{Username: req.Username})
	return true
}

func (h *RequestHandler) recordInvocation(ctx context.Context, result client.ServiceResult, err error) {
	id := result.InvocationId
	if id == "" {
		id = runtime.InvocationIdOf(err)
	}
	if id != "" {
		logger.PutExtra(ctx, "invocation_id", id)
	}
	if result.Command != "" {
		logger.PutExtra(ctx, "command", result.Command)
	}
}

// respondBridgeFail maps every bridge failure to the same 500 response.
// The kind only reaches the audit log.
func (h *RequestHandler) respondBridgeFail(w http.ResponseWriter, r *http.Request, err error) {
	kind := runtime.KindOf(err)
	logger.SetReason(r.Context(), string(kind)+": "+err.Error())
	apimodel.RespondFail(w, http.StatusInternalServerError, err.Error(), nil)
}
