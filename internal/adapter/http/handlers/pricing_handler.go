package handlers

import (
	"errors"
	"net/http"

	request "offertehub/internal/adapter/http/dto/request"
	"offertehub/internal/domain/entities"
	"offertehub/internal/domain/pricing"
	"offertehub/internal/usecase"
	"offertehub/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// PricingHandler manages tenant rate-table overrides.

type PricingHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewPricingHandler(uc usecase.IQuoteUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// UpsertPricing godoc
// @Summary      Set a tenant's rate table for a domain
// @Description  Stores a complete rate table that replaces the default for this tenant and domain
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        tenant_id  path      string                          true  "Tenant id"
// @Param        domain     path      string                          true  "Project domain"
// @Param        payload    body      request.PricingOverrideRequest  true  "Complete rate table"
// @Success      200        {object}  entities.RateTable
// @Failure      400        {object}  pkg.HTTPError
// @Failure      500        {object}  pkg.HTTPError
// @Router       /v1/pricing/{tenant_id}/{domain} [put]
func (h *PricingHandler) UpsertPricing(c *gin.Context) {
	var payload request.PricingOverrideRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_RATE_TABLE", "Invalid rate table payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	tenantID := c.Param("tenant_id")
	domain := entities.ProjectDomain(c.Param("domain"))
	if err := h.usecase.UpsertRates(c.Request.Context(), tenantID, domain, payload.ResolveRates()); err != nil {
		log.Warnf("[pricing][handler] upsert failed tenant_id=%s domain=%s err=%v", tenantID, domain, err)
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Infof("[pricing][handler] upsert success tenant_id=%s domain=%s", tenantID, domain)

	c.JSON(http.StatusOK, payload.ResolveRates())
}

// GetPricing godoc
// @Summary      Fetch the effective rate table for a tenant and domain
// @Tags         pricing
// @Produce      json
// @Param        tenant_id  path      string  true  "Tenant id"
// @Param        domain     path      string  true  "Project domain"
// @Success      200        {object}  entities.RateTable
// @Failure      400        {object}  pkg.HTTPError
// @Router       /v1/pricing/{tenant_id}/{domain} [get]
func (h *PricingHandler) GetPricing(c *gin.Context) {
	rates, err := h.usecase.ResolveRates(c.Request.Context(), c.Param("tenant_id"), entities.ProjectDomain(c.Param("domain")))
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, rates)
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, pricing.ErrUnknownDomain):
		return pkg.NewDomainErrorSimple("UNKNOWN_DOMAIN", "Unknown project domain", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTenantID),
		errors.Is(err, usecase.ErrInvalidRateTable):
		return pkg.NewDomainErrorSimple("INVALID_RATE_TABLE", "Invalid rate table", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
