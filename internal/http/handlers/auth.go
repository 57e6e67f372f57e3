package handlers

import (
	"net/http"

	"github.com/just-nibble/folio-service/internal/auth"
	"github.com/just-nibble/folio-service/internal/http/dtos"
	"github.com/just-nibble/folio-service/internal/usecases"
	"github.com/just-nibble/folio-service/pkg/config"
	"github.com/just-nibble/folio-service/pkg/response"
)

type AuthHandler struct {
	authUsecase usecases.AuthUsecase
	cfg         config.AuthConfig
}

func NewAuthHandler(authUsecase usecases.AuthUsecase, cfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, cfg: cfg}
}

// SignIn godoc
// @Summary  Start a dashboard session
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    credentials body dtos.SignInInput true "email and password"
// @Success  200 {object} dtos.SignInResponse
// @Router   /api/auth/sign-in [post]
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var input dtos.SignInInput
	if !decodeJSON(w, r, &input) {
		return
	}

	token, session, err := h.authUsecase.SignIn(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, auth.SessionCookie(h.cfg, token, session.ExpiresAt))
	response.SuccessResponse(w, http.StatusOK, dtos.SignInResponse{
		Email:     session.Email,
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	})
}

func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, auth.ClearedCookie(h.cfg))
	response.SuccessResponse(w, http.StatusOK, map[string]string{"message": "Signed out"})
}

// Me returns the session attached by the auth middleware.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFrom(r.Context())
	if !ok {
		response.ErrorResponse(w, http.StatusUnauthorized, "Not signed in")
		return
	}
	response.SuccessResponse(w, http.StatusOK, session)
}
