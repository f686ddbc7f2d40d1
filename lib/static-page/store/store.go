package staticpagestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "pv-leads-backend/models/db"
)

type Filter struct {
	Category  string
	Published *bool
}

type Provider interface {
	List(filter Filter, page, limit int) (list []dbmodels.Page, rowCount int64, err error)
	ListPublished() ([]dbmodels.Page, error)
	GetByID(id string) (*dbmodels.Page, error)
	GetBySlug(slug string) (*dbmodels.Page, error)
	Create(rec dbmodels.Page) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) List(filter Filter, page, limit int) (list []dbmodels.Page, rowCount int64, err error) {
	tx := i.db.Model(dbmodels.Page{})
	if filter.Category != "" {
		tx = tx.Where("category = ?", filter.Category)
	}
	if filter.Published != nil {
		tx = tx.Where("published = ?", *filter.Published)
	}
	if err = tx.Count(&rowCount).Error; err != nil {
		return nil, 0, errors.Wrap(err, "erreur de comptage des pages")
	}
	err = tx.
		Order("title").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "erreur de récupération des pages")
	}
	return list, rowCount, nil
}

func (i impl) ListPublished() ([]dbmodels.Page, error) {
	var list []dbmodels.Page
	err := i.db.
		Select("id", "slug", "title", "updated_at").
		Where("published = ?", true).
		Order("slug").
		Find(&list).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "erreur de récupération des pages publiées")
	}
	return list, nil
}

func (i impl) GetByID(id string) (*dbmodels.Page, error) {
	return i.first("id = ?", id)
}

func (i impl) GetBySlug(slug string) (*dbmodels.Page, error) {
	return i.first("slug = ?", slug)
}

func (i impl) first(query string, value string) (*dbmodels.Page, error) {
	rec := dbmodels.Page{}
	err := i.db.
		Where(query, value).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Create(rec dbmodels.Page) (id string, err error) {
	existed, err := i.GetBySlug(rec.Slug)
	if err != nil {
		return "", err
	}
	if existed != nil {
		return "", errors.Errorf("une page avec le slug %v existe déjà", rec.Slug)
	}
	if err = i.db.Save(&rec).Error; err != nil {
		return "", errors.Wrap(err, "erreur d'enregistrement de la page")
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if slug, ok := updMap["Slug"]; ok {
		var count int64
		err := i.db.
			Model(dbmodels.Page{}).
			Where("slug = ? AND id <> ?", slug, id).
			Count(&count).
			Error
		if err != nil {
			return err
		}
		if count > 0 {
			return errors.Errorf("une page avec le slug %v existe déjà", slug)
		}
	}
	err := i.db.
		Model(&dbmodels.Page{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return errors.Wrap(err, "erreur de mise à jour de la page")
	}
	return nil
}

func (i impl) Delete(id string) error {
	err := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Page{}).
		Error
	if err != nil {
		return errors.Wrap(err, "erreur de suppression de la page")
	}
	return nil
}
