package audit

import (
	"errors"
	"net/http"
	apimodel "ovpnapi/internal/api/http/utils"
	"ovpnapi/internal/core/audit"
	"strconv"
)

const defaultTailLines = 100

func NewRequestHandler(auditService audit.AuditServiceHandler) *RequestHandler {
	return &RequestHandler{
		serviceHandler: auditService,
	}
}

type RequestHandler struct {
	serviceHandler audit.AuditServiceHandler
}

// GetAuditLog godoc
// @Summary Tail the audit log
// @Description return the last tail_lines JSON-lines audit events
// @Tags audit
// @Produce plain
// @Param tail_lines query int false "number of events (default 100)"
// @Success 200 {string} string
// @Failure 400 {object} apimodel.ApiResponse
// @Failure 404 {object} apimodel.ApiResponse
// @Failure 500 {object} apimodel.ApiResponse
// @Router /audit [get]
func (h *RequestHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	n := defaultTailLines
	if s := r.URL.Query().Get("tail_lines"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			apimodel.RespondFail(w, http.StatusBadRequest, "invalid tail_lines", nil)
			return
		}
		n = v
	}

	data, err := h.serviceHandler.Tail(n)
	switch {
	case errors.Is(err, audit.ErrInvalidLines):
		apimodel.RespondFail(w, http.StatusBadRequest, err.Error(), nil)
		return
	case errors.Is(err, audit.ErrNotConfigured):
		apimodel.RespondFail(w, http.StatusNotFound, err.Error(), nil)
		return
	case err != nil:
		apimodel.RespondFail(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	apimodel.WriteText(w, http.StatusOK, string(data))
}
