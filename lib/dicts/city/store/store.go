package citystore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "pv-leads-backend/models/db"
)

type Provider interface {
	ListAll() ([]dbmodels.City, error)
	ListWithBusinessCount() ([]dbmodels.CityWithCount, error)
	Find(name string, page, limit int) (list []dbmodels.City, rowCount int64, err error)
	Search(query string, limit int) ([]dbmodels.CityWithCount, error)
	GetByID(id string) (*dbmodels.City, error)
	GetBySlug(slug string) (*dbmodels.City, error)
	ListInBoundingBox(lat, lon, delta float64, limit int) ([]dbmodels.City, error)
	ListByDepartment(department string, limit int) ([]dbmodels.City, error)
	CountByDepartment(department string) (int64, error)
	ListByPopulationBand(region string, min, max int, limit int) ([]dbmodels.City, error)
	Count() (int64, error)
	Create(rec dbmodels.City, skipDuplicate bool) (id string, err error)
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

const businessCountSelect = "cities.*, (SELECT COUNT(*) FROM businesses b WHERE b.city_id = cities.id) AS business_count"

func (i impl) ListAll() ([]dbmodels.City, error) {
	var result []dbmodels.City
	err := i.db.
		Model(dbmodels.City{}).
		Order("name").
		Find(&result).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "erreur de récupération de la liste des villes")
	}
	return result, nil
}

func (i impl) ListWithBusinessCount() ([]dbmodels.CityWithCount, error) {
	var result []dbmodels.CityWithCount
	err := i.db.
		Model(dbmodels.City{}).
		Select(businessCountSelect).
		Order("cities.name").
		Scan(&result).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "erreur de récupération des villes avec entreprises")
	}
	return result, nil
}

func (i impl) Find(name string, page, limit int) (list []dbmodels.City, rowCount int64, err error) {
	tx := i.db.Model(dbmodels.City{})
	if name != "" {
		tx = tx.Where("LOWER(name) like ?", "%"+strings.ToLower(name)+"%")
	}
	if err = tx.Count(&rowCount).Error; err != nil {
		return nil, 0, errors.Wrap(err, "erreur de comptage des villes")
	}
	err = tx.
		Order("name").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "erreur de récupération de la liste des villes")
	}
	return list, rowCount, nil
}

func (i impl) Search(query string, limit int) ([]dbmodels.CityWithCount, error) {
	var result []dbmodels.CityWithCount
	err := i.db.
		Model(dbmodels.City{}).
		Select(businessCountSelect).
		Where("cities.name ILIKE ?", "%"+query+"%").
		Order("cities.population DESC NULLS LAST").
		Limit(limit).
		Scan(&result).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "erreur de recherche des villes")
	}
	return result, nil
}

func (i impl) GetByID(id string) (*dbmodels.City, error) {
	rec := dbmodels.City{}
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

func (i impl) GetBySlug(slug string) (*dbmodels.City, error) {
	rec := dbmodels.City{}
	err := i.db.
		Where("slug = ?", slug).
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

func (i impl) ListInBoundingBox(lat, lon, delta float64, limit int) ([]dbmodels.City, error) {
	var result []dbmodels.City
	err := i.db.
		Model(dbmodels.City{}).
		Where("latitude BETWEEN ? AND ?", lat-delta, lat+delta).
		Where("longitude BETWEEN ? AND ?", lon-delta, lon+delta).
		Limit(limit).
		Find(&result).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "erreur de récupération des villes proches")
	}
	return result, nil
}

func (i impl) ListByDepartment(department string, limit int) ([]dbmodels.City, error) {
	var result []dbmodels.City
	err := i.db.
		Model(dbmodels.City{}).
		Where("department = ?", department).
		Order("population DESC NULLS LAST").
		Order("name").
		Limit(limit).
		Find(&result).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "erreur de récupération des villes du département")
	}
	return result, nil
}

func (i impl) CountByDepartment(department string) (int64, error) {
	var rowCount int64
	err := i.db.
		Model(dbmodels.City{}).
		Where("department = ?", department).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, errors.Wrap(err, "erreur de comptage des villes du département")
	}
	return rowCount, nil
}

func (i impl) ListByPopulationBand(region string, min, max int, limit int) ([]dbmodels.City, error) {
	var result []dbmodels.City
	err := i.db.
		Model(dbmodels.City{}).
		Where("region = ?", region).
		Where("population BETWEEN ? AND ?", min, max).
		Order("population DESC").
		Limit(limit).
		Find(&result).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "erreur de récupération des villes de population similaire")
	}
	return result, nil
}

func (i impl) Count() (int64, error) {
	var rowCount int64
	err := i.db.Model(dbmodels.City{}).Count(&rowCount).Error
	if err != nil {
		return 0, errors.Wrap(err, "erreur de comptage des villes")
	}
	return rowCount, nil
}

func (i impl) Create(rec dbmodels.City, skipDuplicate bool) (id string, err error) {
	unique, err := i.isUnique("", rec.Slug)
	if err != nil {
		return "", err
	}
	if !unique {
		if skipDuplicate {
			return "", nil
		}
		return "", errors.New("la ville existe déjà")
	}
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", errors.Wrap(err, "erreur d'ajout de la ville")
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	if slug, ok := updMap["Slug"]; ok {
		unique, err := i.isUnique(id, slug.(string))
		if err != nil {
			return err
		}
		if !unique {
			return errors.New("une ville avec ce slug existe déjà")
		}
	}
	err := i.db.
		Model(&dbmodels.City{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return errors.Wrap(err, "erreur de mise à jour de la ville")
	}
	return nil
}

func (i impl) Delete(id string) error {
	err := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.City{}).
		Error
	if err != nil {
		return errors.Wrap(err, "erreur de suppression de la ville")
	}
	return nil
}

func (i impl) isUnique(selfID string, slug string) (bool, error) {
	var rowCount int64
	tx := i.db.Model(dbmodels.City{}).Where("slug = ?", slug)
	if selfID != "" {
		tx = tx.Where("id <> ?", selfID)
	}
	err := tx.Count(&rowCount).Error
	if err != nil {
		return false, errors.Wrap(err, "erreur de vérification d'unicité de la ville")
	}
	return rowCount == 0, nil
}
