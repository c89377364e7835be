package http

import (
	"net/http"

	"github.com/aussiebroadwan/gearbox/internal/account/service"
	"github.com/aussiebroadwan/gearbox/pkg/accountsdk"
	"github.com/aussiebroadwan/gearbox/pkg/httpx"
)

type VerifyHandler struct {
	VerificationService *service.VerificationService
}

// HandleVerify godoc
//
//	@Summary		Verify Email Endpoint
//	@Description	Redeems the token from the emailed link and activates the account. Verifying twice is harmless.
//	@Tags			Accounts
//	@Produce		json
//	@Param			token	query		string						true	"Verification token"
//	@Success		200		{object}	accountsdk.MessageResponse	"Email verified successfully / Email already verified"
//	@Failure		400		{object}	accountsdk.ErrorResponse	"Missing, invalid or expired token"
//	@Failure		500		{object}	accountsdk.ErrorResponse	"Internal server error"
//	@Router			/verify [get].
func (h *VerifyHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	msg, err := h.VerificationService.Verify(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteMessage(w, http.StatusOK, msg)
}

// HandleResend godoc
//
//	@Summary		Resend Verification Endpoint
//	@Description	Mails a fresh verification link to an unverified account.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			body	body		accountsdk.EmailRequest		true	"Account email"
//	@Success		200		{object}	accountsdk.MessageResponse	"Verification email sent / Email already verified"
//	@Failure		400		{object}	accountsdk.ErrorResponse	"Email missing"
//	@Failure		404		{object}	accountsdk.ErrorResponse	"Unknown email"
//	@Failure		429		{object}	accountsdk.ErrorResponse	"Rate limited"
//	@Failure		500		{object}	accountsdk.ErrorResponse	"Internal server error"
//	@Router			/verify/resend [post].
func (h *VerifyHandler) HandleResend(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.EmailRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, msgBadBody)
		return
	}

	msg, err := h.VerificationService.Resend(r.Context(), req.Email)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteMessage(w, http.StatusOK, msg)
}
