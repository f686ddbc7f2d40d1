package dictapimodels

import (
	"github.com/pkg/errors"
	dbmodels "pv-leads-backend/models/db"
)

type RegionData struct {
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Active *bool  `json:"active,omitempty"`
}

func (r RegionData) Validate() error {
	if r.Name == "" {
		return errors.New("nom de la région non renseigné")
	}
	return nil
}

type RegionView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Active bool   `json:"active"`
}

func RegionConvert(rec dbmodels.Region) RegionView {
	return RegionView{
		ID:     rec.ID,
		Name:   rec.Name,
		Slug:   rec.Slug,
		Active: rec.Active,
	}
}
