package dbmodels

import "github.com/pkg/errors"

type Region struct {
	BaseModel
	Name   string `gorm:"uniqueIndex;type:varchar(100)"`
	Slug   string `gorm:"uniqueIndex;type:varchar(100)"`
	Active bool   `gorm:"default:true"`
}

func (r Region) Validate() error {
	if r.Name == "" {
		return errors.New("nom de la région non renseigné")
	}
	if r.Slug == "" {
		return errors.New("slug de la région non renseigné")
	}
	return nil
}
