package handlers

import (
	"net/http"

	"motofix/internal/adapter/http/dto/response"
	"motofix/internal/adapter/http/middleware"
	"motofix/internal/usecase"

	"github.com/gin-gonic/gin"
)

// IdentityHandler exposes the caller's projected profile.

type IdentityHandler struct {
	usecase usecase.IIdentityUseCase
}

func NewIdentityHandler(uc usecase.IIdentityUseCase) *IdentityHandler {
	return &IdentityHandler{usecase: uc}
}

// Me returns the profile the auth middleware projected for this principal.
func (h *IdentityHandler) Me(c *gin.Context) {
	profile, err := h.usecase.GetByID(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromUserProfile(profile))
}
