package http

import (
	"net/http"

	"github.com/aussiebroadwan/gearbox/internal/account/service"
	"github.com/aussiebroadwan/gearbox/pkg/accountsdk"
	"github.com/aussiebroadwan/gearbox/pkg/httpx"
	"github.com/aussiebroadwan/gearbox/pkg/slogx"
)

// LogoutHandler revokes whatever the caller presents and always answers 200,
// so it cannot be used to probe token validity.
type LogoutHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Logout Endpoint
//	@Description	Revokes the refresh token in the body and denylists the bearer access token until it expires.
//	@Description	Both are optional. Always returns 200.
//	@Tags			Sessions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		accountsdk.RefreshRequest	false	"Refresh token to revoke"
//	@Success		200		{object}	accountsdk.MessageResponse	"Logout Successful"
//	@Router			/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req accountsdk.RefreshRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		slogx.FromContext(ctx).Debug("logout body ignored", "error", err)
	}
	access, _ := httpx.BearerToken(r)

	h.SessionService.Logout(ctx, access, req.Refresh)
	httpx.WriteMessage(w, http.StatusOK, service.MsgLoggedOut)
}

type RefreshHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Refresh Token Endpoint
//	@Description	Rotates a refresh token. The presented token stops working and a new pair is returned.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Param			body	body		accountsdk.RefreshRequest	true	"Refresh token"
//	@Success		200		{object}	accountsdk.TokenResponse	"message, token"
//	@Failure		400		{object}	accountsdk.ErrorResponse	"Refresh token missing"
//	@Failure		401		{object}	accountsdk.ErrorResponse	"Invalid, expired or revoked refresh token"
//	@Failure		500		{object}	accountsdk.ErrorResponse	"Internal server error"
//	@Header			200		{string}	Cache-Control				"no-store"
//	@Router			/token/refresh [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req accountsdk.RefreshRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, msgBadBody)
		return
	}

	pair, err := h.SessionService.Refresh(r.Context(), req.Refresh)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.TokenResponse{
		Message: service.MsgTokenRefreshed,
		Token:   accountsdk.TokenPair{Access: pair.Access, Refresh: pair.Refresh},
	})
}

type MeHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Profile Endpoint
//	@Description	Returns the profile of the access token's owner.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	accountsdk.ProfileResponse	"Profile"
//	@Failure		401	{object}	accountsdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		404	{object}	accountsdk.ErrorResponse	"Account no longer exists"
//	@Failure		500	{object}	accountsdk.ErrorResponse	"Internal server error"
//	@Router			/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, ok := httpx.PrincipalFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Authentication credentials were not provided or are invalid")
		return
	}

	profile, err := h.SessionService.Profile(r.Context(), p.UserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.ProfileResponse{
		ID:         profile.ID,
		Email:      profile.Email,
		FirstName:  profile.FirstName,
		LastName:   profile.LastName,
		IsVerified: profile.IsVerified,
		DateJoined: profile.DateJoined,
	})
}
