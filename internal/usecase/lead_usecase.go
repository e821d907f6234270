package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"offertehub/internal/domain/entities"
	"offertehub/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrLeadNotFound    = errors.New("lead not found")
	ErrInvalidLeadID   = errors.New("invalid lead id")
	ErrInvalidStatus   = errors.New("invalid lead status")
	ErrInvalidSlot     = errors.New("invalid appointment slot")
	ErrTenantNotFound  = errors.New("tenant not found")
	ErrTenantInactive  = errors.New("tenant inactive")
	ErrQuotaExceeded   = errors.New("tenant lead quota exceeded")
)

// MissingFieldError reports which mandatory submission field is absent after
// structured/legacy fallback resolution.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// PreviewUnavailableNote annotates leads whose AI preview generation failed and
// whose preview refs fall back to the original photos.
const PreviewUnavailableNote = "preview unavailable"

// LeadSubmission is the canonical submission after payload-shape normalization
// (structured-first, legacy-fallback) performed by the HTTP layer.
type LeadSubmission struct {
	TenantID string
	Domain   entities.ProjectDomain

	Name  string
	Email string
	Phone string

	Quote           entities.QuoteRequest
	PhotoURLs       []string
	AppointmentSlot *time.Time
}

// ILeadUseCase exposes lead ingestion and the two post-creation mutations the
// lifecycle allows (status, appointment slot).

type ILeadUseCase interface {
	Ingest(ctx context.Context, sub LeadSubmission) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.Lead, error)
	UpdateStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error)
	BookAppointment(ctx context.Context, id string, slot time.Time) (entities.Lead, error)
}

type LeadUseCase struct {
	leads    interfaces.ILeadRepository
	tenants  interfaces.ITenantRepository
	activity interfaces.IActivityLogRepository
	quotes   IQuoteUseCase
	previews interfaces.IPreviewGenerator
	notifier interfaces.INotifier
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(
	leads interfaces.ILeadRepository,
	tenants interfaces.ITenantRepository,
	activity interfaces.IActivityLogRepository,
	quotes IQuoteUseCase,
	previews interfaces.IPreviewGenerator,
	notifier interfaces.INotifier,
) *LeadUseCase {
	return &LeadUseCase{
		leads:    leads,
		tenants:  tenants,
		activity: activity,
		quotes:   quotes,
		previews: previews,
		notifier: notifier,
	}
}

// Ingest validates a normalized submission, computes the quote snapshot,
// reserves tenant quota, persists the lead and fires best-effort side effects
// (preview generation, activity log, notifications).
//
// Ordering matters: tenant existence and quota are settled before anything is
// written; the quota reservation is a single conditional increment so that
// concurrent submissions cannot pass the limit. Only the lead write itself is
// fatal - every side effect after it is logged and swallowed.
func (u *LeadUseCase) Ingest(ctx context.Context, sub LeadSubmission) (entities.Lead, error) {
	if strings.TrimSpace(sub.Name) == "" {
		return entities.Lead{}, &MissingFieldError{Field: "name"}
	}
	if strings.TrimSpace(sub.Email) == "" {
		return entities.Lead{}, &MissingFieldError{Field: "email"}
	}

	breakdown, err := u.quotes.Quote(ctx, sub.TenantID, sub.Quote)
	if err != nil {
		return entities.Lead{}, err
	}

	var tenant entities.Tenant
	reserved := false
	if sub.TenantID != "" {
		tenant, err = u.tenants.GetByID(ctx, sub.TenantID)
		if err != nil {
			return entities.Lead{}, err
		}
		if tenant.ID == "" {
			return entities.Lead{}, ErrTenantNotFound
		}
		if !tenant.Active {
			return entities.Lead{}, ErrTenantInactive
		}

		ok, err := u.tenants.ConsumeQuota(ctx, sub.TenantID)
		if err != nil {
			return entities.Lead{}, err
		}
		if !ok {
			return entities.Lead{}, ErrQuotaExceeded
		}
		reserved = true
	}

	previews, note := u.generatePreviews(ctx, sub)

	now := time.Now().UTC()
	lead := entities.Lead{
		ID:              uuid.NewString(),
		TenantID:        sub.TenantID,
		Domain:          sub.Domain,
		CustomerName:    strings.TrimSpace(sub.Name),
		CustomerEmail:   strings.TrimSpace(sub.Email),
		CustomerPhone:   strings.TrimSpace(sub.Phone),
		Request:         sub.Quote,
		Breakdown:       breakdown,
		PhotoURLs:       sub.PhotoURLs,
		PreviewURLs:     previews,
		PreviewNote:     note,
		Status:          entities.LeadStatusNew,
		AppointmentSlot: sub.AppointmentSlot,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.leads.Create(ctx, lead)
	if err != nil {
		if reserved {
			if relErr := u.tenants.ReleaseQuota(ctx, sub.TenantID); relErr != nil {
				log.Warnf("[lead][usecase] quota release failed tenant_id=%s err=%v", sub.TenantID, relErr)
			}
		}
		return entities.Lead{}, err
	}

	u.logActivity(ctx, "lead", created.ID, "created",
		fmt.Sprintf("domain=%s total=%.0f tenant_id=%s", created.Domain, created.Breakdown.Total, created.TenantID))
	u.maybeNotify(ctx, created, tenant)

	return created, nil
}

// generatePreviews asks the AI service for a preview per photo. Any failure
// falls back to the original photo URL and annotates the lead; it never fails
// the submission.
func (u *LeadUseCase) generatePreviews(ctx context.Context, sub LeadSubmission) ([]string, string) {
	if len(sub.PhotoURLs) == 0 {
		return nil, ""
	}
	if u.previews == nil {
		return append([]string(nil), sub.PhotoURLs...), PreviewUnavailableNote
	}

	note := ""
	previews := make([]string, 0, len(sub.PhotoURLs))
	for _, photo := range sub.PhotoURLs {
		previewURL, err := u.previews.GeneratePreview(ctx, photo, sub.Quote)
		if err != nil {
			log.Warnf("[lead][usecase] preview generation failed photo=%s err=%v", photo, err)
			previewURL = photo
			note = PreviewUnavailableNote
		}
		previews = append(previews, previewURL)
	}
	return previews, note
}

// maybeNotify fires the confirmation/notification mails when a lead carries an
// appointment slot and the tenant has a resolvable contact address. Both sends
// are best-effort; the caller's response never depends on them.
func (u *LeadUseCase) maybeNotify(ctx context.Context, lead entities.Lead, tenant entities.Tenant) {
	if u.notifier == nil || lead.AppointmentSlot == nil {
		return
	}
	if tenant.ID == "" || tenant.ContactEmail == "" {
		return
	}

	if err := u.notifier.SendCustomerConfirmation(ctx, lead); err != nil {
		log.Warnf("[lead][usecase] customer confirmation failed lead_id=%s err=%v", lead.ID, err)
	}
	if err := u.notifier.SendBusinessNotification(ctx, lead, tenant); err != nil {
		log.Warnf("[lead][usecase] business notification failed lead_id=%s err=%v", lead.ID, err)
	}
}

func (u *LeadUseCase) logActivity(ctx context.Context, entityType, entityID, action, content string) {
	if u.activity == nil {
		return
	}
	entry := entities.ActivityLogEntry{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		Content:    content,
		CreatedAt:  time.Now().UTC(),
	}
	if err := u.activity.Append(ctx, entry); err != nil {
		log.Warnf("[lead][usecase] activity log append failed entity_id=%s err=%v", entityID, err)
	}
}

func (u *LeadUseCase) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}

	lead, err := u.leads.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if lead.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return lead, nil
}

func (u *LeadUseCase) ListByTenantID(ctx context.Context, tenantID string) ([]entities.Lead, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	return u.leads.ListByTenantID(ctx, tenantID)
}

func (u *LeadUseCase) UpdateStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}
	if !entities.ValidLeadStatus(status) {
		return entities.Lead{}, ErrInvalidStatus
	}

	updated, err := u.leads.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Lead{}, err
	}
	if updated.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}

	u.logActivity(ctx, "lead", updated.ID, "status_changed", string(status))
	return updated, nil
}

// BookAppointment sets the appointment slot and triggers the notification pair
// for the freshly booked lead.
func (u *LeadUseCase) BookAppointment(ctx context.Context, id string, slot time.Time) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}
	if slot.IsZero() {
		return entities.Lead{}, ErrInvalidSlot
	}

	updated, err := u.leads.UpdateAppointment(ctx, id, slot.UTC())
	if err != nil {
		return entities.Lead{}, err
	}
	if updated.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}

	u.logActivity(ctx, "lead", updated.ID, "appointment_booked", slot.UTC().Format(time.RFC3339))

	if updated.TenantID != "" {
		tenant, err := u.tenants.GetByID(ctx, updated.TenantID)
		if err != nil {
			log.Warnf("[lead][usecase] tenant lookup for notification failed tenant_id=%s err=%v", updated.TenantID, err)
		} else {
			u.maybeNotify(ctx, updated, tenant)
		}
	}
	return updated, nil
}
