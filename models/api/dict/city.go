package dictapimodels

import (
	"github.com/pkg/errors"
	apimodels "pv-leads-backend/models/api"
	dbmodels "pv-leads-backend/models/db"
)

type CityShortView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Department string `json:"department"`
	Region     string `json:"region"`
}

type CitySearchView struct {
	CityShortView
	PostalCode    string `json:"postal_code"`
	Population    *int   `json:"population,omitempty"`
	BusinessCount int64  `json:"business_count"`
}

type CityData struct {
	Name              string   `json:"name"`
	Slug              string   `json:"slug"`
	PostalCode        string   `json:"postal_code"`
	Department        string   `json:"department"`
	Region            string   `json:"region"`
	Population        *int     `json:"population,omitempty"`
	Latitude          *float64 `json:"latitude,omitempty"`
	Longitude         *float64 `json:"longitude,omitempty"`
	CustomTitle       string   `json:"custom_title,omitempty"`
	CustomDescription string   `json:"custom_description,omitempty"`
}

func (c CityData) Validate() error {
	if c.Name == "" {
		return errors.New("nom de la ville non renseigné")
	}
	if c.Department == "" {
		return errors.New("département non renseigné")
	}
	if c.Region == "" {
		return errors.New("région non renseignée")
	}
	if (c.Latitude == nil) != (c.Longitude == nil) {
		return errors.New("latitude et longitude doivent être renseignées ensemble")
	}
	if c.Population != nil && *c.Population < 0 {
		return errors.New("population négative")
	}
	return nil
}

type CityView struct {
	CityData
	ID string `json:"id"`
}

type CityFilter struct {
	apimodels.Pagination
	Name string `json:"name"`
}

type CityBulkRequest struct {
	Cities []CityData `json:"cities"`
}

func (r CityBulkRequest) Validate() error {
	if len(r.Cities) == 0 {
		return errors.New("liste des villes vide")
	}
	return nil
}

type BulkError struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Error string `json:"error"`
}

type BulkResult struct {
	Created int         `json:"created"`
	Skipped int         `json:"skipped"`
	Failed  []BulkError `json:"failed"`
}

func CityConvert(rec dbmodels.City) CityView {
	return CityView{
		CityData: CityData{
			Name:              rec.Name,
			Slug:              rec.Slug,
			PostalCode:        rec.PostalCode,
			Department:        rec.Department,
			Region:            rec.Region,
			Population:        rec.Population,
			Latitude:          rec.Latitude,
			Longitude:         rec.Longitude,
			CustomTitle:       rec.CustomTitle,
			CustomDescription: rec.CustomDescription,
		},
		ID: rec.ID,
	}
}

func CityShortConvert(rec dbmodels.City) CityShortView {
	return CityShortView{
		ID:         rec.ID,
		Name:       rec.Name,
		Slug:       rec.Slug,
		Department: rec.Department,
		Region:     rec.Region,
	}
}

func CitySearchConvert(rec dbmodels.CityWithCount) CitySearchView {
	return CitySearchView{
		CityShortView: CityShortConvert(rec.City),
		PostalCode:    rec.PostalCode,
		Population:    rec.Population,
		BusinessCount: rec.BusinessCount,
	}
}
