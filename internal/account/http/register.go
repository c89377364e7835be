package http

import (
	"net/http"

	"github.com/aussiebroadwan/gearbox/internal/account/service"
	"github.com/aussiebroadwan/gearbox/pkg/accountsdk"
	"github.com/aussiebroadwan/gearbox/pkg/httpx"
)

type RegisterHandler struct {
	RegistrationService *service.RegistrationService
}

// ServeHTTP godoc
//
//	@Summary		Register Endpoint
//	@Description	Creates an inactive, unverified account and emails a verification link.
//	@Description	The verification token is never part of the response.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			body	body		accountsdk.RegisterRequest	true	"New account"
//	@Success		201		{object}	accountsdk.RegisterResponse	"message, email"
//	@Failure		400		{object}	accountsdk.ErrorResponse	"Validation failed or email already exists"
//	@Failure		429		{object}	accountsdk.ErrorResponse	"Rate limited"
//	@Failure		500		{object}	accountsdk.ErrorResponse	"Internal server error"
//	@Router			/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, msgBadBody)
		return
	}

	email, err := h.RegistrationService.Register(r.Context(), service.RegisterInput{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, accountsdk.RegisterResponse{
		Message: service.MsgRegistered,
		Email:   email,
	})
}
