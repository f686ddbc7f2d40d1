package dbmodels

import (
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

type Business struct {
	BaseModel
	CityID       string `gorm:"type:varchar(36);index"`
	City         *City
	ExternalID   string `gorm:"index;type:varchar(255)"`
	Name         string `gorm:"type:varchar(255)"`
	Address      string `gorm:"type:varchar(500)"`
	PostalCode   string `gorm:"type:varchar(10)"`
	Phone        string `gorm:"type:varchar(20)"`
	Email        string `gorm:"type:varchar(255)"`
	Website      string `gorm:"type:varchar(500)"`
	Rating       *float64
	ReviewCount  *int
	Services     pq.StringArray `gorm:"type:text[]"`
	Scraped      bool
	Verified     bool
	QualityScore int
}

func (b Business) Validate() error {
	if b.CityID == "" {
		return errors.New("ville de l'entreprise non renseignée")
	}
	if b.Name == "" {
		return errors.New("nom de l'entreprise non renseigné")
	}
	return nil
}
