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

var (
	errInvalidCatalogPayload = pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid catalog payload", http.StatusBadRequest)
)

// CatalogHandler handles admin CRUD for materials, finishes, tolerances and
// rate cards. Deactivation is the only delete: rows referenced by historical
// quotes must stay readable.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) CreateMaterial(c *gin.Context) {
	var payload request.MaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateMaterial(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromMaterial(created))
}

func (h *CatalogHandler) UpdateMaterial(c *gin.Context) {
	var payload request.MaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateMaterial(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMaterial(updated))
}

func (h *CatalogHandler) DeactivateMaterial(c *gin.Context) {
	updated, err := h.usecase.DeactivateMaterial(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMaterial(updated))
}

func (h *CatalogHandler) GetMaterial(c *gin.Context) {
	m, err := h.usecase.GetMaterial(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMaterial(m))
}

func (h *CatalogHandler) ListMaterials(c *gin.Context) {
	ms, err := h.usecase.ListMaterials(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMaterials(ms))
}

func (h *CatalogHandler) CreateFinish(c *gin.Context) {
	var payload request.FinishRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateFinish(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromFinish(created))
}

func (h *CatalogHandler) UpdateFinish(c *gin.Context) {
	var payload request.FinishRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateFinish(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFinish(updated))
}

func (h *CatalogHandler) DeactivateFinish(c *gin.Context) {
	updated, err := h.usecase.DeactivateFinish(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFinish(updated))
}

func (h *CatalogHandler) GetFinish(c *gin.Context) {
	f, err := h.usecase.GetFinish(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFinish(f))
}

func (h *CatalogHandler) ListFinishes(c *gin.Context) {
	fs, err := h.usecase.ListFinishes(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFinishes(fs))
}

func (h *CatalogHandler) CreateTolerance(c *gin.Context) {
	var payload request.ToleranceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateTolerance(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromTolerance(created))
}

func (h *CatalogHandler) UpdateTolerance(c *gin.Context) {
	var payload request.ToleranceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateTolerance(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTolerance(updated))
}

func (h *CatalogHandler) DeactivateTolerance(c *gin.Context) {
	updated, err := h.usecase.DeactivateTolerance(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTolerance(updated))
}

func (h *CatalogHandler) GetTolerance(c *gin.Context) {
	t, err := h.usecase.GetTolerance(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTolerance(t))
}

func (h *CatalogHandler) ListTolerances(c *gin.Context) {
	ts, err := h.usecase.ListTolerances(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTolerances(ts))
}

func (h *CatalogHandler) CreateRateCard(c *gin.Context) {
	var payload request.RateCardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateRateCard(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromRateCard(created))
}

func (h *CatalogHandler) UpdateRateCard(c *gin.Context) {
	var payload request.RateCardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	entity := payload.ToEntity()
	entity.Region = c.Param("region")
	updated, err := h.usecase.UpdateRateCard(c.Request.Context(), entity)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRateCard(updated))
}

func (h *CatalogHandler) GetRateCard(c *gin.Context) {
	rc, err := h.usecase.GetRateCard(c.Request.Context(), c.Param("region"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRateCard(rc))
}

func (h *CatalogHandler) ListRateCards(c *gin.Context) {
	rcs, err := h.usecase.ListRateCards(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRateCards(rcs))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCatalogEntry), errors.Is(err, usecase.ErrInvalidRateCard):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCatalogEntryNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_ENTRY_NOT_FOUND", "Catalog entry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRateCardNotFound):
		return pkg.NewDomainErrorSimple("RATE_CARD_NOT_FOUND", "Rate card not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
