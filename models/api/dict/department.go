package dictapimodels

import (
	"github.com/pkg/errors"
	dbmodels "pv-leads-backend/models/db"
)

type DepartmentData struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Code     string `json:"code"`
	RegionID string `json:"region_id"`
	Active   *bool  `json:"active,omitempty"`
}

func (d DepartmentData) Validate() error {
	if d.Name == "" {
		return errors.New("nom du département non renseigné")
	}
	if d.RegionID == "" {
		return errors.New("région du département non renseignée")
	}
	if len(d.Code) > 3 {
		return errors.New("code du département invalide")
	}
	return nil
}

type DepartmentView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Code       string `json:"code"`
	RegionID   string `json:"region_id"`
	RegionName string `json:"region_name,omitempty"`
	Active     bool   `json:"active"`
	CityCount  *int64 `json:"city_count,omitempty"`
}

func DepartmentConvert(rec dbmodels.Department) DepartmentView {
	result := DepartmentView{
		ID:       rec.ID,
		Name:     rec.Name,
		Slug:     rec.Slug,
		Code:     rec.Code,
		RegionID: rec.RegionID,
		Active:   rec.Active,
	}
	if rec.Region != nil {
		result.RegionName = rec.Region.Name
	}
	return result
}

func DepartmentWithCountConvert(rec dbmodels.DepartmentWithCount) DepartmentView {
	result := DepartmentConvert(rec.Department)
	count := rec.CityCount
	result.CityCount = &count
	return result
}
