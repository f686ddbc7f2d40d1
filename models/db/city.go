package dbmodels

import (
	"github.com/pkg/errors"
)

type City struct {
	BaseModel
	Name              string   `gorm:"index;type:varchar(255)"`
	Slug              string   `gorm:"uniqueIndex;type:varchar(255)"`
	PostalCode        string   `gorm:"type:varchar(10)"`
	Department        string   `gorm:"index;type:varchar(100)"`
	Region            string   `gorm:"index;type:varchar(100)"`
	Population        *int     // Nombre d'habitants, inconnu pour une partie des communes
	Latitude          *float64 `gorm:"index:idx_city_coords"`
	Longitude         *float64 `gorm:"index:idx_city_coords"`
	CustomTitle       string   `gorm:"type:varchar(255)"`
	CustomDescription string   `gorm:"type:varchar(500)"`
}

func (c City) HasCoordinates() bool {
	return c.Latitude != nil && c.Longitude != nil
}

func (c City) Validate() error {
	if c.Name == "" {
		return errors.New("nom de la ville non renseigné")
	}
	if c.Slug == "" {
		return errors.New("slug de la ville non renseigné")
	}
	if (c.Latitude == nil) != (c.Longitude == nil) {
		return errors.New("latitude et longitude doivent être renseignées ensemble")
	}
	if c.Population != nil && *c.Population < 0 {
		return errors.New("population négative")
	}
	return nil
}

type CityWithCount struct {
	City
	BusinessCount int64
}
