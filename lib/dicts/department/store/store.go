package departmentstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "pv-leads-backend/models/db"
)

type Provider interface {
	List(activeOnly bool) ([]dbmodels.Department, error)
	ListByRegion(regionID string) ([]dbmodels.DepartmentWithCount, error)
	GetByID(id string) (*dbmodels.Department, error)
	GetBySlug(slug string) (*dbmodels.Department, error)
	Create(rec dbmodels.Department) (id string, err error)
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

func (i impl) List(activeOnly bool) ([]dbmodels.Department, error) {
	var list []dbmodels.Department
	tx := i.db.Model(dbmodels.Department{}).Preload("Region")
	if activeOnly {
		tx = tx.Where("active = ?", true)
	}
	err := tx.Order("name").Find(&list).Error
	if err != nil {
		return nil, errors.Wrap(err, "erreur de récupération de la liste des départements")
	}
	return list, nil
}

func (i impl) ListByRegion(regionID string) ([]dbmodels.DepartmentWithCount, error) {
	var list []dbmodels.DepartmentWithCount
	err := i.db.
		Model(dbmodels.Department{}).
		Select("departments.*, (SELECT COUNT(*) FROM cities c WHERE c.department = departments.name) AS city_count").
		Where("departments.region_id = ?", regionID).
		Where("departments.active = ?", true).
		Order("departments.name").
		Scan(&list).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "erreur de récupération des départements de la région")
	}
	return list, nil
}

func (i impl) GetByID(id string) (*dbmodels.Department, error) {
	return i.first("departments.id = ?", id)
}

func (i impl) GetBySlug(slug string) (*dbmodels.Department, error) {
	return i.first("departments.slug = ?", slug)
}

func (i impl) first(query string, value string) (*dbmodels.Department, error) {
	rec := dbmodels.Department{}
	err := i.db.
		Preload("Region").
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

func (i impl) Create(rec dbmodels.Department) (id string, err error) {
	if err = rec.Validate(); err != nil {
		return "", err
	}
	existed, err := i.GetBySlug(rec.Slug)
	if err != nil {
		return "", err
	}
	if existed != nil {
		return "", errors.New("le département existe déjà")
	}
	if err = i.db.Omit("Region").Save(&rec).Error; err != nil {
		return "", errors.Wrap(err, "erreur d'ajout du département")
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.Department{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return errors.Wrap(err, "erreur de mise à jour du département")
	}
	return nil
}

func (i impl) Delete(id string) error {
	err := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Department{}).
		Error
	if err != nil {
		return errors.Wrap(err, "erreur de suppression du département")
	}
	return nil
}
