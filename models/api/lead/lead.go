package leadapimodels

import (
	"fmt"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"pv-leads-backend/models"
	apimodels "pv-leads-backend/models/api"
	dbmodels "pv-leads-backend/models/db"
)

var (
	phoneRegex      = regexp.MustCompile(`^(?:(?:\+|00)33|0)\s*[1-9](?:[\s.-]*\d{2}){4}$`)
	postalCodeRegex = regexp.MustCompile(`^\d{5}$`)
)

type LeadRequest struct {
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Phone       string             `json:"phone"`
	CityID      string             `json:"city_id"`
	PostalCode  string             `json:"postal_code"`
	ProjectType models.ProjectType `json:"project_type"`
	Message     string             `json:"message"`
	Budget      string             `json:"budget"`
	Surface     string             `json:"surface"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Details []FieldError
}

func (e ValidationError) Error() string {
	parts := make([]string, 0, len(e.Details))
	for _, item := range e.Details {
		parts = append(parts, fmt.Sprintf("%s: %s", item.Field, item.Message))
	}
	return "données invalides (" + strings.Join(parts, "; ") + ")"
}

// Validate collects every field error instead of stopping at the first one.
func (r LeadRequest) Validate() error {
	details := make([]FieldError, 0)
	add := func(field, message string) {
		details = append(details, FieldError{Field: field, Message: message})
	}
	if len([]rune(strings.TrimSpace(r.Name))) < 2 {
		add("name", "Le nom doit contenir au moins 2 caractères")
	}
	if !isBareEmail(r.Email) {
		add("email", "Email invalide")
	}
	if !phoneRegex.MatchString(strings.TrimSpace(r.Phone)) {
		add("phone", "Numéro de téléphone invalide")
	}
	if _, err := uuid.Parse(r.CityID); err != nil {
		add("city_id", "Ville invalide")
	}
	if !postalCodeRegex.MatchString(r.PostalCode) {
		add("postal_code", "Code postal invalide")
	}
	if !r.ProjectType.IsValid() {
		add("project_type", "Type de projet invalide")
	}
	if _, err := r.SurfaceValue(); err != nil {
		add("surface", "Surface invalide")
	}
	if len(details) > 0 {
		return ValidationError{Details: details}
	}
	return nil
}

// isBareEmail rejects display-name forms such as "Jean <jean@example.fr>",
// the address is used as is for the confirmation mail.
func isBareEmail(value string) bool {
	value = strings.TrimSpace(value)
	addr, err := mail.ParseAddress(value)
	return err == nil && addr.Address == value
}

// SurfaceValue converts the optional surface field, empty gives nil.
func (r LeadRequest) SurfaceValue() (*int, error) {
	value := strings.TrimSpace(r.Surface)
	if value == "" {
		return nil, nil
	}
	surface, err := strconv.Atoi(value)
	if err != nil || surface < 0 {
		return nil, errors.Errorf("surface invalide: %s", value)
	}
	return &surface, nil
}

type Tracking struct {
	IpAddress string
	UserAgent string
	Source    string
}

type CreateResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type LeadFilter struct {
	apimodels.Pagination
	Status models.LeadStatus `json:"status"`
	CityID string            `json:"city_id"`
}

type StatusRequest struct {
	Status models.LeadStatus `json:"status"`
}

func (r StatusRequest) Validate() error {
	if !r.Status.IsValid() {
		return errors.Errorf("statut invalide: %s", r.Status)
	}
	return nil
}

type LeadView struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Email           string             `json:"email"`
	Phone           string             `json:"phone"`
	CityID          string             `json:"city_id"`
	CityName        string             `json:"city_name,omitempty"`
	PostalCode      string             `json:"postal_code"`
	ProjectType     models.ProjectType `json:"project_type"`
	ProjectTypeName string             `json:"project_type_name"`
	Message         string             `json:"message,omitempty"`
	Budget          string             `json:"budget,omitempty"`
	Surface         *int               `json:"surface,omitempty"`
	Status          models.LeadStatus  `json:"status"`
	Source          string             `json:"source"`
	IpAddress       string             `json:"ip_address,omitempty"`
	UserAgent       string             `json:"user_agent,omitempty"`
	NotifiedAt      *time.Time         `json:"notified_at,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}

func LeadConvert(rec dbmodels.Lead) LeadView {
	result := LeadView{
		ID:              rec.ID,
		Name:            rec.Name,
		Email:           rec.Email,
		Phone:           rec.Phone,
		CityID:          rec.CityID,
		PostalCode:      rec.PostalCode,
		ProjectType:     rec.ProjectType,
		ProjectTypeName: rec.ProjectType.ToHuman(),
		Message:         rec.Message,
		Budget:          rec.Budget,
		Surface:         rec.Surface,
		Status:          rec.Status,
		Source:          rec.Source,
		IpAddress:       rec.IpAddress,
		UserAgent:       rec.UserAgent,
		NotifiedAt:      rec.NotifiedAt,
		CreatedAt:       rec.CreatedAt,
	}
	if rec.City != nil {
		result.CityName = rec.City.Name
	}
	return result
}
