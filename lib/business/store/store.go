package businessstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "pv-leads-backend/models/db"
)

type Filter struct {
	Search   string
	CityID   string
	Scraped  *bool
	Verified *bool
}

type Provider interface {
	List(filter Filter, page, limit int) (list []dbmodels.Business, rowCount int64, err error)
	ListByCity(cityID string) ([]dbmodels.Business, error)
	GetByID(id string) (*dbmodels.Business, error)
	FindByExternalID(externalID string) (*dbmodels.Business, error)
	Save(rec dbmodels.Business) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(ids []string) (int64, error)
	Count() (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) List(filter Filter, page, limit int) (list []dbmodels.Business, rowCount int64, err error) {
	tx := i.db.Model(dbmodels.Business{})
	if filter.Search != "" {
		tx = tx.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.CityID != "" {
		tx = tx.Where("city_id = ?", filter.CityID)
	}
	if filter.Scraped != nil {
		tx = tx.Where("scraped = ?", *filter.Scraped)
	}
	if filter.Verified != nil {
		tx = tx.Where("verified = ?", *filter.Verified)
	}
	if err = tx.Count(&rowCount).Error; err != nil {
		return nil, 0, errors.Wrap(err, "erreur de comptage des entreprises")
	}
	err = tx.
		Preload("City").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "erreur de récupération des entreprises")
	}
	return list, rowCount, nil
}

func (i impl) ListByCity(cityID string) ([]dbmodels.Business, error) {
	var list []dbmodels.Business
	err := i.db.
		Where("city_id = ?", cityID).
		Order("verified DESC").
		Order("quality_score DESC").
		Order("name").
		Find(&list).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "erreur de récupération des entreprises de la ville")
	}
	return list, nil
}

func (i impl) GetByID(id string) (*dbmodels.Business, error) {
	rec := dbmodels.Business{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) FindByExternalID(externalID string) (*dbmodels.Business, error) {
	rec := dbmodels.Business{}
	err := i.db.
		Where("external_id = ?", externalID).
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

func (i impl) Save(rec dbmodels.Business) (id string, err error) {
	err = i.db.
		Omit("City").
		Save(&rec).
		Error
	if err != nil {
		return "", errors.Wrap(err, "erreur d'enregistrement de l'entreprise")
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.Business{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return errors.Wrap(err, "erreur de mise à jour de l'entreprise")
	}
	return nil
}

func (i impl) Delete(ids []string) (int64, error) {
	tx := i.db.
		Where("id IN ?", ids).
		Delete(&dbmodels.Business{})
	if tx.Error != nil {
		return 0, errors.Wrap(tx.Error, "erreur de suppression des entreprises")
	}
	return tx.RowsAffected, nil
}

func (i impl) Count() (int64, error) {
	var rowCount int64
	err := i.db.Model(dbmodels.Business{}).Count(&rowCount).Error
	if err != nil {
		return 0, errors.Wrap(err, "erreur de comptage des entreprises")
	}
	return rowCount, nil
}
