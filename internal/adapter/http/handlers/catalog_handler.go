package handlers

import (
	"net/http"

	"motofix/internal/adapter/http/dto/response"
	"motofix/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only service catalog.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.usecase.ListCategories(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceCategories(categories))
}

func (h *CatalogHandler) ListQuestions(c *gin.Context) {
	questions, err := h.usecase.ListQuestions(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDiagnosticQuestions(questions))
}
