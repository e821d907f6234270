package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "offertehub/internal/adapter/http/dto/request"
	response "offertehub/internal/adapter/http/dto/response"
	"offertehub/internal/domain/entities"
	"offertehub/internal/domain/pricing"
	"offertehub/internal/usecase"
	"offertehub/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var errInvalidLeadPayload = pkg.NewDomainErrorSimple("INVALID_LEAD_INPUT", "Invalid lead payload", http.StatusBadRequest)

// LeadHandler handles widget lead submissions and the lead lifecycle routes.

type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

// CreateLead godoc
// @Summary      Submit a lead
// @Description  Normalizes a widget submission (structured or legacy shape), computes the quote and persists the lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        payload  body      request.LeadRequest  true  "Lead submission"
// @Success      201      {object}  response.LeadCreatedResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      403      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      429      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /v1/leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var payload request.LeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	quoteReq, err := payload.ResolveQuoteRequest()
	if err != nil {
		log.Warnf("[lead][handler] quote fields invalid err=%v", err)
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}
	slot, err := payload.ResolveAppointmentSlot()
	if err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	sub := usecase.LeadSubmission{
		TenantID:        payload.ResolveTenantID(),
		Domain:          quoteReq.Domain,
		Name:            payload.ResolveName(),
		Email:           payload.ResolveEmail(),
		Phone:           payload.ResolvePhone(),
		Quote:           quoteReq,
		PhotoURLs:       payload.ResolvePhotos(),
		AppointmentSlot: slot,
	}

	lead, err := h.usecase.Ingest(c.Request.Context(), sub)
	if err != nil {
		log.Warnf("[lead][handler] ingest failed tenant_id=%s err=%v", sub.TenantID, err)
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Infof("[lead][handler] ingest success tenant_id=%s lead_id=%s", sub.TenantID, lead.ID)

	c.JSON(http.StatusCreated, response.FromLeadCreated(lead))
}

// GetLead godoc
// @Summary      Fetch a lead
// @Tags         leads
// @Produce      json
// @Param        id   path      string  true  "Lead id"
// @Success      200  {object}  response.LeadResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /v1/leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	lead, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLead(lead))
}

// ListLeads godoc
// @Summary      List a tenant's leads
// @Tags         leads
// @Produce      json
// @Param        tenant_id  query     string  true  "Tenant id"
// @Success      200        {array}   response.LeadResponse
// @Failure      400        {object}  pkg.HTTPError
// @Router       /v1/leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	leads, err := h.usecase.ListByTenantID(c.Request.Context(), c.Query("tenant_id"))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLeads(leads))
}

// UpdateLeadStatus godoc
// @Summary      Transition a lead's status
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        id       path      string                           true  "Lead id"
// @Param        payload  body      request.LeadStatusUpdateRequest  true  "New status"
// @Success      200      {object}  response.LeadResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /v1/leads/{id}/status [patch]
func (h *LeadHandler) UpdateLeadStatus(c *gin.Context) {
	var payload request.LeadStatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	lead, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.LeadStatus(payload.Status))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLead(lead))
}

// BookAppointment godoc
// @Summary      Book an appointment on a lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        id       path      string                          true  "Lead id"
// @Param        payload  body      request.LeadAppointmentRequest  true  "Appointment slot (RFC3339)"
// @Success      200      {object}  response.LeadResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /v1/leads/{id}/appointment [patch]
func (h *LeadHandler) BookAppointment(c *gin.Context) {
	var payload request.LeadAppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}
	slot, err := payload.ResolveSlot()
	if err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	lead, err := h.usecase.BookAppointment(c.Request.Context(), c.Param("id"), slot)
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLead(lead))
}

func mapLeadError(err error) *pkg.AppError {
	var missing *usecase.MissingFieldError
	switch {
	case errors.As(err, &missing):
		return pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELD", fmt.Sprintf("Missing required field: %s", missing.Field), http.StatusBadRequest)
	case errors.Is(err, pricing.ErrUnknownDomain):
		return pkg.NewDomainErrorSimple("UNKNOWN_DOMAIN", "Unknown project domain", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrInvalidQuantity),
		errors.Is(err, pricing.ErrUnknownMaterial),
		errors.Is(err, pricing.ErrUnknownGlazing),
		errors.Is(err, pricing.ErrMissingFrames),
		errors.Is(err, usecase.ErrInvalidLeadID),
		errors.Is(err, usecase.ErrInvalidTenantID),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidSlot):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTenantNotFound):
		return pkg.NewDomainErrorSimple("TENANT_NOT_FOUND", "Tenant not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTenantInactive):
		return pkg.NewDomainErrorSimple("TENANT_INACTIVE", "Tenant is inactive", http.StatusForbidden)
	case errors.Is(err, usecase.ErrQuotaExceeded):
		return pkg.NewDomainErrorSimple("QUOTA_EXCEEDED", "Lead quota exceeded for this tenant", http.StatusTooManyRequests)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
