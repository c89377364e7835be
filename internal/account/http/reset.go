package http

import (
	"net/http"

	"github.com/aussiebroadwan/gearbox/internal/account/service"
	"github.com/aussiebroadwan/gearbox/pkg/accountsdk"
	"github.com/aussiebroadwan/gearbox/pkg/httpx"
)

type ResetHandler struct {
	PasswordResetService *service.PasswordResetService
}

// HandleRequest godoc
//
//	@Summary		Request Password Reset Endpoint
//	@Description	Mails a 6-digit reset code. A new request replaces any earlier code.
//	@Tags			Password Reset
//	@Accept			json
//	@Produce		json
//	@Param			body	body		accountsdk.EmailRequest		true	"Account email"
//	@Success		200		{object}	accountsdk.MessageResponse	"Password reset code sent to your email"
//	@Failure		400		{object}	accountsdk.ErrorResponse	"Email missing"
//	@Failure		404		{object}	accountsdk.ErrorResponse	"Unknown email"
//	@Failure		429		{object}	accountsdk.ErrorResponse	"Too many reset requests"
//	@Failure		500		{object}	accountsdk.ErrorResponse	"Internal server error"
//	@Router			/reset/request [post].
func (h *ResetHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.EmailRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, msgBadBody)
		return
	}

	if err := h.PasswordResetService.Request(r.Context(), req.Email); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteMessage(w, http.StatusOK, service.MsgResetCodeSent)
}

// HandleConfirm godoc
//
//	@Summary		Confirm Password Reset Endpoint
//	@Description	Redeems a reset code and sets a new password. Every refresh token of the account is revoked.
//	@Tags			Password Reset
//	@Accept			json
//	@Produce		json
//	@Param			body	body		accountsdk.ResetConfirmRequest	true	"Email, code and new password"
//	@Success		200		{object}	accountsdk.MessageResponse		"Password has been reset successfully"
//	@Failure		400		{object}	accountsdk.ErrorResponse		"Invalid or expired code, or invalid password"
//	@Failure		404		{object}	accountsdk.ErrorResponse		"Unknown email"
//	@Failure		429		{object}	accountsdk.ErrorResponse		"Too many reset attempts"
//	@Failure		500		{object}	accountsdk.ErrorResponse		"Internal server error"
//	@Router			/reset/confirm [post].
func (h *ResetHandler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.ResetConfirmRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, msgBadBody)
		return
	}

	err := h.PasswordResetService.Confirm(r.Context(), service.ConfirmResetInput{
		Email:       req.Email,
		Code:        req.Code,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteMessage(w, http.StatusOK, service.MsgPasswordReset)
}
