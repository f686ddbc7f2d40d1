package businessapimodels

import (
	"strings"

	"github.com/pkg/errors"
	apimodels "pv-leads-backend/models/api"
	dbmodels "pv-leads-backend/models/db"
)

type BusinessData struct {
	CityID      string   `json:"city_id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	PostalCode  string   `json:"postal_code"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
	Website     string   `json:"website"`
	Rating      *float64 `json:"rating,omitempty"`
	ReviewCount *int     `json:"review_count,omitempty"`
	Services    []string `json:"services"`
}

func (b BusinessData) Validate() error {
	if b.CityID == "" {
		return errors.New("ville de l'entreprise non renseignée")
	}
	if strings.TrimSpace(b.Name) == "" {
		return errors.New("nom de l'entreprise non renseigné")
	}
	if b.Rating != nil && (*b.Rating < 0 || *b.Rating > 5) {
		return errors.New("note de l'entreprise invalide")
	}
	return nil
}

type BusinessView struct {
	BusinessData
	ID           string `json:"id"`
	CityName     string `json:"city_name,omitempty"`
	Scraped      bool   `json:"scraped"`
	Verified     bool   `json:"verified"`
	QualityScore int    `json:"quality_score"`
}

type BusinessFilter struct {
	apimodels.Pagination
	Search   string `json:"search"`
	CityID   string `json:"city_id"`
	Scraped  *bool  `json:"scraped"`
	Verified *bool  `json:"verified"`
}

type BusinessImportRequest struct {
	Businesses []BusinessData `json:"businesses"`
}

func (r BusinessImportRequest) Validate() error {
	if len(r.Businesses) == 0 {
		return errors.New("liste des entreprises vide")
	}
	return nil
}

type BusinessIDs struct {
	IDs []string `json:"ids"`
}

func (r BusinessIDs) Validate() error {
	if len(r.IDs) == 0 {
		return errors.New("aucune entreprise sélectionnée")
	}
	return nil
}

type VerifyRequest struct {
	Verified bool `json:"verified"`
}

func BusinessConvert(rec dbmodels.Business) BusinessView {
	result := BusinessView{
		BusinessData: BusinessData{
			CityID:      rec.CityID,
			Name:        rec.Name,
			Address:     rec.Address,
			PostalCode:  rec.PostalCode,
			Phone:       rec.Phone,
			Email:       rec.Email,
			Website:     rec.Website,
			Rating:      rec.Rating,
			ReviewCount: rec.ReviewCount,
			Services:    rec.Services,
		},
		ID:           rec.ID,
		Scraped:      rec.Scraped,
		Verified:     rec.Verified,
		QualityScore: rec.QualityScore,
	}
	if result.Services == nil {
		result.Services = []string{}
	}
	if rec.City != nil {
		result.CityName = rec.City.Name
	}
	return result
}
