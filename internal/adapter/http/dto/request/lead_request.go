package request

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"offertehub/internal/domain/entities"
)

var (
	ErrInvalidArea        = errors.New("invalid surface area")
	ErrInvalidFrameCount  = errors.New("invalid frame count")
	ErrInvalidAppointment = errors.New("invalid appointment slot")
)

// CustomerInfo is the structured identity block of the new payload shape.
type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// LeadFormData is the structured project block of the new payload shape.
// Pointer fields distinguish "absent" from zero so legacy fallback only
// kicks in when the structured field was truly not sent.
type LeadFormData struct {
	Domain       string   `json:"domain"`
	Material     string   `json:"material"`
	GlassType    string   `json:"glassType"`
	Color        string   `json:"color"`
	FrameType    string   `json:"frameType"`
	FrameCount   *int     `json:"frameCount"`
	Area         *string  `json:"area"`
	HighCeiling  *bool    `json:"highCeiling"`
	Installation *bool    `json:"installation"`
	Removal      *bool    `json:"removal"`
	Modifiers    []string `json:"modifiers"`
}

// LeadRequest accepts both historical widget payload shapes: the structured
// formData/customerInfo/photos shape and the flat legacy shape with Dutch
// field names. Resolution is structured-first, legacy-fallback, decided per
// field rather than per payload, so mixed requests stay valid.
type LeadRequest struct {
	TenantID        string        `json:"tenantId"`
	FormData        *LeadFormData `json:"formData"`
	CustomerInfo    *CustomerInfo `json:"customerInfo"`
	Photos          []string      `json:"photos"`
	AppointmentSlot string        `json:"appointmentSlot"`

	// Legacy flat shape.
	Naam                string   `json:"naam"`
	Email               string   `json:"email"`
	Telefoon            string   `json:"telefoon"`
	Domein              string   `json:"domein"`
	Materiaal           string   `json:"materiaal"`
	GlasType            string   `json:"glasType"`
	Kleur               string   `json:"kleur"`
	Uitvoering          string   `json:"uitvoering"`
	AantalRamen         int      `json:"aantalRamen"`
	VierkanteMeterRamen string   `json:"vierkanteMeterRamen"`
	Oppervlakte         string   `json:"oppervlakte"`
	Type                string   `json:"type"`
	HoogPlafond         bool     `json:"hoogPlafond"`
	Montage             bool     `json:"montage"`
	AfvoerOudeKozijnen  bool     `json:"afvoerOudeKozijnen"`
	FotoURLs            []string `json:"fotoUrls"`
}

func (r LeadRequest) ResolveTenantID() string {
	return strings.TrimSpace(r.TenantID)
}

func (r LeadRequest) ResolveName() string {
	if r.CustomerInfo != nil {
		if v := strings.TrimSpace(r.CustomerInfo.Name); v != "" {
			return v
		}
	}
	return strings.TrimSpace(r.Naam)
}

func (r LeadRequest) ResolveEmail() string {
	if r.CustomerInfo != nil {
		if v := strings.TrimSpace(r.CustomerInfo.Email); v != "" {
			return v
		}
	}
	return strings.TrimSpace(r.Email)
}

func (r LeadRequest) ResolvePhone() string {
	if r.CustomerInfo != nil {
		if v := strings.TrimSpace(r.CustomerInfo.Phone); v != "" {
			return v
		}
	}
	return strings.TrimSpace(r.Telefoon)
}

func (r LeadRequest) ResolveDomain() entities.ProjectDomain {
	if r.FormData != nil {
		if v := strings.TrimSpace(r.FormData.Domain); v != "" {
			return entities.ProjectDomain(v)
		}
	}
	if v := strings.TrimSpace(r.Domein); v != "" {
		return entities.ProjectDomain(v)
	}
	// The legacy widget never sent a domain; it only ever sold windows.
	if r.AantalRamen > 0 || r.VierkanteMeterRamen != "" {
		return entities.DomainWindows
	}
	return ""
}

func (r LeadRequest) ResolveMaterial() string {
	if r.FormData != nil {
		if v := strings.TrimSpace(r.FormData.Material); v != "" {
			return v
		}
	}
	if v := strings.TrimSpace(r.Materiaal); v != "" {
		return v
	}
	return strings.TrimSpace(r.Type)
}

func (r LeadRequest) ResolveGlazing() string {
	if r.FormData != nil {
		if v := strings.TrimSpace(r.FormData.GlassType); v != "" {
			return v
		}
	}
	return strings.TrimSpace(r.GlasType)
}

func (r LeadRequest) ResolveColor() string {
	if r.FormData != nil {
		if v := strings.TrimSpace(r.FormData.Color); v != "" {
			return v
		}
	}
	return strings.TrimSpace(r.Kleur)
}

func (r LeadRequest) ResolveFrameCount() (int, error) {
	if r.FormData != nil && r.FormData.FrameCount != nil {
		if *r.FormData.FrameCount < 0 {
			return 0, ErrInvalidFrameCount
		}
		return *r.FormData.FrameCount, nil
	}
	if r.AantalRamen < 0 {
		return 0, ErrInvalidFrameCount
	}
	return r.AantalRamen, nil
}

// ResolveArea parses the surface area, accepting both a plain number and the
// widget's range notation ("15-20"), which resolves to the range midpoint.
func (r LeadRequest) ResolveArea() (float64, error) {
	if r.FormData != nil && r.FormData.Area != nil {
		return parseArea(*r.FormData.Area)
	}
	if v := strings.TrimSpace(r.VierkanteMeterRamen); v != "" {
		return parseArea(v)
	}
	if v := strings.TrimSpace(r.Oppervlakte); v != "" {
		return parseArea(v)
	}
	return 0, ErrInvalidArea
}

// ResolveModifiers treats the structured block as authoritative for the whole
// modifiers list as soon as any of its modifier fields was sent, so an explicit
// empty list or a false highCeiling cannot be overridden by legacy fields.
func (r LeadRequest) ResolveModifiers() []entities.ModifierKind {
	var out []entities.ModifierKind
	if r.FormData != nil && (r.FormData.Modifiers != nil || strings.TrimSpace(r.FormData.FrameType) != "" || r.FormData.HighCeiling != nil) {
		for _, m := range r.FormData.Modifiers {
			if v := strings.TrimSpace(m); v != "" {
				out = append(out, entities.ModifierKind(v))
			}
		}
		if v := strings.TrimSpace(r.FormData.FrameType); v != "" {
			out = append(out, entities.ModifierKind(v))
		}
		if r.FormData.HighCeiling != nil && *r.FormData.HighCeiling {
			out = append(out, entities.ModifierHighCeiling)
		}
		return out
	}
	if v := strings.TrimSpace(r.Uitvoering); v != "" {
		out = append(out, entities.ModifierKind(v))
	}
	if r.HoogPlafond {
		out = append(out, entities.ModifierHighCeiling)
	}
	return out
}

func (r LeadRequest) ResolveInstallation() bool {
	if r.FormData != nil && r.FormData.Installation != nil {
		return *r.FormData.Installation
	}
	return r.Montage
}

func (r LeadRequest) ResolveRemoval() bool {
	if r.FormData != nil && r.FormData.Removal != nil {
		return *r.FormData.Removal
	}
	return r.AfvoerOudeKozijnen
}

func (r LeadRequest) ResolvePhotos() []string {
	var out []string
	for _, p := range r.Photos {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) > 0 {
		return out
	}
	for _, p := range r.FotoURLs {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (r LeadRequest) ResolveAppointmentSlot() (*time.Time, error) {
	v := strings.TrimSpace(r.AppointmentSlot)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, ErrInvalidAppointment
	}
	t = t.UTC()
	return &t, nil
}

// ResolveQuoteRequest assembles the canonical quote input from whichever
// payload shape supplied each field.
func (r LeadRequest) ResolveQuoteRequest() (entities.QuoteRequest, error) {
	area, err := r.ResolveArea()
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	frames, err := r.ResolveFrameCount()
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	return entities.QuoteRequest{
		Domain:       r.ResolveDomain(),
		Area:         area,
		FrameCount:   frames,
		Material:     entities.MaterialKind(r.ResolveMaterial()),
		Glazing:      entities.GlazingKind(r.ResolveGlazing()),
		Color:        entities.ColorKind(r.ResolveColor()),
		Modifiers:    r.ResolveModifiers(),
		Installation: r.ResolveInstallation(),
		Removal:      r.ResolveRemoval(),
	}, nil
}

// LeadStatusUpdateRequest is the payload for the lead status transition route.
type LeadStatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// LeadAppointmentRequest is the payload for booking an appointment on a lead.
type LeadAppointmentRequest struct {
	AppointmentSlot string `json:"appointmentSlot" binding:"required"`
}

func (r LeadAppointmentRequest) ResolveSlot() (time.Time, error) {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(r.AppointmentSlot))
	if err != nil {
		return time.Time{}, ErrInvalidAppointment
	}
	return t.UTC(), nil
}

// parseArea accepts "17.5" and range notation "15-20" (midpoint 17.5).
func parseArea(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidArea
	}
	if lo, hi, ok := strings.Cut(s, "-"); ok {
		a, errA := strconv.ParseFloat(strings.TrimSpace(lo), 64)
		b, errB := strconv.ParseFloat(strings.TrimSpace(hi), 64)
		if errA != nil || errB != nil || a <= 0 || b < a {
			return 0, fmt.Errorf("%w: %q", ErrInvalidArea, s)
		}
		return (a + b) / 2, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidArea, s)
	}
	return v, nil
}
