package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dukahub/pos-terminal-service/internal/application"
	"github.com/dukahub/pos-terminal-service/internal/domain"
)

// posLogin exchanges a device UUID plus staff PIN for a terminal session.
// Every rejection carries the login path so the terminal can route the
// operator back to the PIN pad with the message rendered as-is.
func (h *Handler) posLogin(w http.ResponseWriter, r *http.Request) {
	var req application.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "pos_login", err)
		return
	}
	if req.IPAddress == "" {
		req.IPAddress = readIP(r)
	}
	if req.UserAgent == "" {
		req.UserAgent = r.UserAgent()
	}

	res, err := h.service.Login(r.Context(), req)
	if err != nil {
		status, code, msg := mapDomainError(err)
		logHTTPOperationError(r.Context(), "pos_login", status, code, msg, err)
		if isLoginScreenError(err) {
			writeRedirectError(w, status, code, msg, h.service.LoginPath())
			return
		}
		writeError(w, status, code, msg)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

// isLoginScreenError covers the rejections a terminal renders on the PIN pad.
func isLoginScreenError(err error) bool {
	return errors.Is(err, domain.ErrInvalidPinFormat) ||
		errors.Is(err, domain.ErrDeviceNotRegistered) ||
		errors.Is(err, domain.ErrDeviceLockedOut) ||
		errors.Is(err, domain.ErrCredentialMismatch)
}

func (h *Handler) posLogout(w http.ResponseWriter, r *http.Request) {
	token, ok := tokenFromContext(r)
	if !ok {
		writeMissingBearerError(r.Context(), w, "pos_logout")
		return
	}
	res, err := h.service.Logout(r.Context(), token)
	if err != nil {
		writeMappedError(r.Context(), w, "pos_logout", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	token, ok := tokenFromContext(r)
	if !ok {
		writeMissingBearerError(r.Context(), w, "session_info")
		return
	}
	res, err := h.service.SessionInfo(r.Context(), token)
	if err != nil {
		writeMappedError(r.Context(), w, "session_info", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) openShifts(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeMissingBearerError(r.Context(), w, "open_shifts")
		return
	}
	res, err := h.service.OpenShifts(r.Context(), claims)
	if err != nil {
		writeMappedError(r.Context(), w, "open_shifts", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) deviceStatus(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.DeviceStatus(r.Context(), chi.URLParam(r, "device_uuid"))
	if err != nil {
		writeMappedError(r.Context(), w, "device_status", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) jwks(w http.ResponseWriter, r *http.Request) {
	keys, err := h.service.PublicJWKs()
	if err != nil {
		writeMappedError(r.Context(), w, "jwks", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"keys": keys})
}
