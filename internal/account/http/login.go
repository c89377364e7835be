package http

import (
	"net/http"

	"github.com/aussiebroadwan/gearbox/internal/account/service"
	"github.com/aussiebroadwan/gearbox/pkg/accountsdk"
	"github.com/aussiebroadwan/gearbox/pkg/httpx"
)

type LoginHandler struct {
	LoginService *service.LoginService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Exchanges email and password for an access and refresh token.
//	@Description	Unknown emails and wrong passwords get the same answer.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Param			body	body		accountsdk.LoginRequest		true	"Credentials"
//	@Success		200		{object}	accountsdk.TokenResponse	"message, token"
//	@Failure		400		{object}	accountsdk.ErrorResponse	"Email or password missing"
//	@Failure		401		{object}	accountsdk.ErrorResponse	"Invalid credentials, unverified or inactive"
//	@Failure		429		{object}	accountsdk.ErrorResponse	"Rate limited"
//	@Failure		500		{object}	accountsdk.ErrorResponse	"Internal server error"
//	@Header			200		{string}	Cache-Control				"no-store"
//	@Router			/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, msgBadBody)
		return
	}

	pair, err := h.LoginService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.TokenResponse{
		Message: service.MsgLoggedIn,
		Token:   accountsdk.TokenPair{Access: pair.Access, Refresh: pair.Refresh},
	})
}
