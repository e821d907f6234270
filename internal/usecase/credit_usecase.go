package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"offertehub/internal/domain/entities"
	"offertehub/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidTenantID            = errors.New("invalid tenant id")
	ErrInvalidCreditAmount        = errors.New("invalid credit amount")
	ErrInvalidProviderPayload     = errors.New("invalid payment provider payload")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
	ErrPaymentNotApproved         = errors.New("payment not approved")
)

// creditUnitPrice is the price in euros of one additional monthly lead credit.
const creditUnitPrice = 12.5

// maxCreditsPerPurchase bounds a single top-up.
const maxCreditsPerPurchase = 1000

// ICreditUseCase encapsulates tenant lead-credit top-ups: charge the tenant
// through the payment gateway and raise its quota limit on approval.

type ICreditUseCase interface {
	Purchase(ctx context.Context, tenantID string, credits int, providerPayload json.RawMessage) (entities.CreditPurchase, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.CreditPurchase, error)
}

type CreditUseCase struct {
	purchases interfaces.ICreditPurchaseRepository
	tenants   interfaces.ITenantRepository
	gateway   interfaces.IPaymentGateway
}

var _ ICreditUseCase = (*CreditUseCase)(nil)

func NewCreditUseCase(purchases interfaces.ICreditPurchaseRepository, tenants interfaces.ITenantRepository, gateway interfaces.IPaymentGateway) *CreditUseCase {
	return &CreditUseCase{purchases: purchases, tenants: tenants, gateway: gateway}
}

func (u *CreditUseCase) Purchase(ctx context.Context, tenantID string, credits int, providerPayload json.RawMessage) (entities.CreditPurchase, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.CreditPurchase{}, ErrInvalidTenantID
	}
	if credits <= 0 || credits > maxCreditsPerPurchase {
		return entities.CreditPurchase{}, ErrInvalidCreditAmount
	}
	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		return entities.CreditPurchase{}, ErrInvalidProviderPayload
	}
	if u.gateway == nil {
		return entities.CreditPurchase{}, errors.New("payment gateway not configured")
	}

	tenant, err := u.tenants.GetByID(ctx, tenantID)
	if err != nil {
		return entities.CreditPurchase{}, err
	}
	if tenant.ID == "" {
		return entities.CreditPurchase{}, ErrTenantNotFound
	}
	if !tenant.Active {
		return entities.CreditPurchase{}, ErrTenantInactive
	}

	amount := float64(credits) * creditUnitPrice

	// The amount is always derived from the credit count server-side; the
	// provider payload can never override it.
	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err != nil {
		return entities.CreditPurchase{}, ErrInvalidProviderPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = tenantID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Lead credits x%d for tenant %s", credits, tenantID)
	}
	reqMap["transaction_amount"] = amount
	if enriched, err := json.Marshal(reqMap); err == nil {
		providerPayload = enriched
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, providerPayload)
	if err != nil {
		log.Warnf("[credit][usecase] payment gateway failed tenant_id=%s err=%v", tenantID, err)
		if isGatewayUnauthorized(err) {
			return entities.CreditPurchase{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.CreditPurchase{}, ErrPaymentGatewayBadRequest
		}
		return entities.CreditPurchase{}, err
	}
	if providerStatus != "approved" {
		log.Warnf("[credit][usecase] payment not approved tenant_id=%s provider_status=%s", tenantID, providerStatus)
		return entities.CreditPurchase{}, ErrPaymentNotApproved
	}

	if _, err := u.tenants.AddQuota(ctx, tenantID, credits); err != nil {
		return entities.CreditPurchase{}, err
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warnf("[credit][usecase] provider response unmarshal failed tenant_id=%s err=%v", tenantID, err)
	}

	p := entities.CreditPurchase{
		ID:                 providerPaymentID,
		TenantID:           tenantID,
		Credits:            credits,
		Amount:             amount,
		Status:             entities.PurchaseStatusApproved,
		Date:               time.Now().UTC(),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.purchases.Create(ctx, p)
	if err != nil {
		return entities.CreditPurchase{}, err
	}
	log.Infof("[credit][usecase] purchase success tenant_id=%s credits=%d purchase_id=%s", tenantID, credits, created.ID)
	return created, nil
}

func (u *CreditUseCase) ListByTenantID(ctx context.Context, tenantID string) ([]entities.CreditPurchase, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	return u.purchases.ListByTenantID(ctx, tenantID)
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
