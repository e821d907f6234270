package handlers

import (
	"errors"
	"net/http"

	request "offertehub/internal/adapter/http/dto/request"
	response "offertehub/internal/adapter/http/dto/response"
	"offertehub/internal/domain/pricing"
	"offertehub/internal/usecase"
	"offertehub/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles the standalone price calculation endpoint used by the
// widget before a lead is submitted.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote godoc
// @Summary      Compute a price quote
// @Description  Computes a deterministic price breakdown for a project, using tenant rate overrides when available
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        payload  body      request.QuoteRequest  true  "Quote input"
// @Success      200      {object}  response.QuoteResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /v1/quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	req, err := payload.ResolveQuoteRequest()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	breakdown, err := h.usecase.Quote(c.Request.Context(), payload.ResolveTenantID(), req)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBreakdown(breakdown))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, pricing.ErrUnknownDomain):
		return pkg.NewDomainErrorSimple("UNKNOWN_DOMAIN", "Unknown project domain", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrInvalidQuantity),
		errors.Is(err, pricing.ErrUnknownMaterial),
		errors.Is(err, pricing.ErrUnknownGlazing),
		errors.Is(err, pricing.ErrMissingFrames):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote input", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
