package dbmodels

import (
	"github.com/pkg/errors"
)

type Department struct {
	BaseModel
	Name     string `gorm:"uniqueIndex;type:varchar(100)"`
	Slug     string `gorm:"uniqueIndex;type:varchar(100)"`
	Code     string `gorm:"type:varchar(3)"` // 01..95, 2A, 2B, 971..976
	RegionID string `gorm:"type:varchar(36);index"`
	Region   *Region
	Active   bool `gorm:"default:true"`
}

func (d Department) Validate() error {
	if d.Name == "" {
		return errors.New("nom du département non renseigné")
	}
	if d.Slug == "" {
		return errors.New("slug du département non renseigné")
	}
	if d.RegionID == "" {
		return errors.New("région du département non renseignée")
	}
	return nil
}

type DepartmentWithCount struct {
	Department
	CityCount int64
}
