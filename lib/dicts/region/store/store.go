package regionstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "pv-leads-backend/models/db"
)

type Provider interface {
	List(activeOnly bool) ([]dbmodels.Region, error)
	GetByID(id string) (*dbmodels.Region, error)
	GetBySlug(slug string) (*dbmodels.Region, error)
	FindByName(name string) (*dbmodels.Region, error)
	Create(rec dbmodels.Region) (id string, err error)
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

func (i impl) List(activeOnly bool) ([]dbmodels.Region, error) {
	var list []dbmodels.Region
	tx := i.db.Model(dbmodels.Region{})
	if activeOnly {
		tx = tx.Where("active = ?", true)
	}
	err := tx.Order("name").Find(&list).Error
	if err != nil {
		return nil, errors.Wrap(err, "erreur de récupération de la liste des régions")
	}
	return list, nil
}

func (i impl) GetByID(id string) (*dbmodels.Region, error) {
	return i.first("id = ?", id)
}

func (i impl) GetBySlug(slug string) (*dbmodels.Region, error) {
	return i.first("slug = ?", slug)
}

func (i impl) FindByName(name string) (*dbmodels.Region, error) {
	return i.first("name = ?", name)
}

func (i impl) first(query string, value string) (*dbmodels.Region, error) {
	rec := dbmodels.Region{}
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

func (i impl) Create(rec dbmodels.Region) (id string, err error) {
	if err = rec.Validate(); err != nil {
		return "", err
	}
	existed, err := i.GetBySlug(rec.Slug)
	if err != nil {
		return "", err
	}
	if existed != nil {
		return "", errors.New("la région existe déjà")
	}
	if err = i.db.Save(&rec).Error; err != nil {
		return "", errors.Wrap(err, "erreur d'ajout de la région")
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.Region{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return errors.Wrap(err, "erreur de mise à jour de la région")
	}
	return nil
}

func (i impl) Delete(id string) error {
	var rowCount int64
	err := i.db.Model(dbmodels.Department{}).Where("region_id = ?", id).Count(&rowCount).Error
	if err != nil {
		return errors.Wrap(err, "erreur de vérification des départements de la région")
	}
	if rowCount > 0 {
		return errors.New("la région contient des départements")
	}
	err = i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Region{}).
		Error
	if err != nil {
		return errors.Wrap(err, "erreur de suppression de la région")
	}
	return nil
}
