package handlers

import (
	"errors"
	"net/http"

	request "cnc_quote/internal/adapter/http/dto/request"
	response "cnc_quote/internal/adapter/http/dto/response"
	"cnc_quote/internal/usecase"
	"cnc_quote/pkg"

	"github.com/gin-gonic/gin"
)

// PartHandler handles HTTP requests for part geometry records.

type PartHandler struct {
	usecase usecase.IPartUseCase
}

func NewPartHandler(uc usecase.IPartUseCase) *PartHandler {
	return &PartHandler{usecase: uc}
}

// RegisterPart stores geometry produced by the CAD-processing step.
func (h *PartHandler) RegisterPart(c *gin.Context) {
	var payload request.PartCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PART_INPUT", "Invalid part payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	part, err := h.usecase.RegisterPart(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapPartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPart(part))
}

func (h *PartHandler) GetPart(c *gin.Context) {
	part, err := h.usecase.GetByID(c.Request.Context(), c.Param("part_id"))
	if err != nil {
		appErr := mapPartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPart(part))
}

func mapPartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPartID), errors.Is(err, usecase.ErrInvalidGeometry):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPartNotFound):
		return pkg.NewDomainErrorSimple("PART_NOT_FOUND", "Part not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
