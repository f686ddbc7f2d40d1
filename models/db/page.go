package dbmodels

import "github.com/pkg/errors"

type Page struct {
	BaseModel
	Title           string `gorm:"type:varchar(255)"`
	Slug            string `gorm:"uniqueIndex;type:varchar(255)"`
	Content         string
	MetaTitle       string `gorm:"type:varchar(255)"`
	MetaDescription string `gorm:"type:varchar(500)"`
	Category        string `gorm:"type:varchar(50);default:legal"`
	Published       bool
}

func (p Page) Validate() error {
	if p.Title == "" {
		return errors.New("titre de la page non renseigné")
	}
	if p.Slug == "" {
		return errors.New("slug de la page non renseigné")
	}
	return nil
}
