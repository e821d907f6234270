package routes

import (
	"offertehub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes  = "/quotes"
	PathLeads   = "/leads"
	PathPhotos  = "/photos"
	PathCredits = "/credits"
	PathPricing = "/pricing"
)

func addLeadRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, leadHandler *handlers.LeadHandler, photoHandler *handlers.PhotoHandler, creditHandler *handlers.CreditHandler, pricingHandler *handlers.PricingHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
	}

	leads := rg.Group(PathLeads)
	{
		leads.POST("", leadHandler.CreateLead)
		leads.GET("", leadHandler.ListLeads)
		leads.GET("/:id", leadHandler.GetLead)
		leads.PATCH("/:id/status", leadHandler.UpdateLeadStatus)
		leads.PATCH("/:id/appointment", leadHandler.BookAppointment)
	}

	photos := rg.Group(PathPhotos)
	{
		photos.POST("", photoHandler.UploadPhoto)
	}

	credits := rg.Group(PathCredits)
	{
		credits.POST("/:tenant_id", creditHandler.PurchaseCredits)
		credits.GET("/:tenant_id", creditHandler.ListCreditPurchases)
	}

	pricing := rg.Group(PathPricing)
	{
		pricing.PUT("/:tenant_id/:domain", pricingHandler.UpsertPricing)
		pricing.GET("/:tenant_id/:domain", pricingHandler.GetPricing)
	}
}
