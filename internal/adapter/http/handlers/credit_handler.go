package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"

	request "offertehub/internal/adapter/http/dto/request"
	response "offertehub/internal/adapter/http/dto/response"
	"offertehub/internal/usecase"
	"offertehub/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// CreditHandler handles tenant lead-credit top-ups.

type CreditHandler struct {
	usecase usecase.ICreditUseCase
}

func NewCreditHandler(uc usecase.ICreditUseCase) *CreditHandler {
	return &CreditHandler{usecase: uc}
}

// PurchaseCredits godoc
// @Summary      Purchase lead credits for a tenant
// @Description  Charges the payment provider and raises the tenant's monthly lead quota on approval
// @Tags         credits
// @Accept       json
// @Produce      json
// @Param        tenant_id  path      string                         true  "Tenant id"
// @Param        payload    body      request.CreditPurchaseRequest  true  "Credit amount and provider payload"
// @Success      200        {object}  response.CreditPurchaseResponse
// @Failure      400        {object}  pkg.HTTPError
// @Failure      401        {object}  pkg.HTTPError
// @Failure      403        {object}  pkg.HTTPError
// @Failure      404        {object}  pkg.HTTPError
// @Router       /v1/credits/{tenant_id} [post]
func (h *CreditHandler) PurchaseCredits(c *gin.Context) {
	tenantID := c.Param("tenant_id")
	log.Infof("[credit][handler] purchase start tenant_id=%s", tenantID)

	var payload request.CreditPurchaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	mpPayload := payload.MPPayload
	if len(strings.TrimSpace(string(mpPayload))) == 0 || strings.TrimSpace(string(mpPayload)) == "null" {
		if isPaymentGatewayMockEnabled() {
			mpPayload = json.RawMessage("{}")
		} else {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.Purchase(c.Request.Context(), tenantID, payload.Credits, mpPayload)
	if err != nil {
		log.Warnf("[credit][handler] purchase failed tenant_id=%s err=%v", tenantID, err)
		appErr := mapCreditError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Infof("[credit][handler] purchase success tenant_id=%s purchase_id=%s credits=%d", tenantID, created.ID, created.Credits)

	c.JSON(http.StatusOK, response.FromCreditPurchase(created))
}

// ListCreditPurchases godoc
// @Summary      List a tenant's credit purchases
// @Tags         credits
// @Produce      json
// @Param        tenant_id  path      string  true  "Tenant id"
// @Success      200        {array}   response.CreditPurchaseResponse
// @Failure      400        {object}  pkg.HTTPError
// @Router       /v1/credits/{tenant_id} [get]
func (h *CreditHandler) ListCreditPurchases(c *gin.Context) {
	purchases, err := h.usecase.ListByTenantID(c.Request.Context(), c.Param("tenant_id"))
	if err != nil {
		appErr := mapCreditError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCreditPurchases(purchases))
}

func mapCreditError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTenantID),
		errors.Is(err, usecase.ErrInvalidCreditAmount),
		errors.Is(err, usecase.ErrInvalidProviderPayload),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Payment was not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrTenantNotFound):
		return pkg.NewDomainErrorSimple("TENANT_NOT_FOUND", "Tenant not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTenantInactive):
		return pkg.NewDomainErrorSimple("TENANT_INACTIVE", "Tenant is inactive", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
