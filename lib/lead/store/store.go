package leadstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"pv-leads-backend/models"
	dbmodels "pv-leads-backend/models/db"
)

type Filter struct {
	Status models.LeadStatus
	CityID string
}

type Provider interface {
	Create(rec dbmodels.Lead) (id string, err error)
	GetByID(id string) (*dbmodels.Lead, error)
	List(filter Filter, page, limit int) (list []dbmodels.Lead, rowCount int64, err error)
	ListAll(filter Filter) ([]dbmodels.Lead, error)
	ListToNotify(maxAttempts int, createdBefore time.Time, limit int) ([]dbmodels.Lead, error)
	Latest(limit int) ([]dbmodels.Lead, error)
	Update(id string, updMap map[string]interface{}) error
	IncNotifyAttempt(id string) error
	Delete(id string) error
	Count(status models.LeadStatus) (int64, error)
	CountSince(from time.Time) (int64, error)
	CountByStatus() ([]dbmodels.LeadStatusCount, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Lead) (id string, err error) {
	err = i.db.
		Omit("City").
		Save(&rec).
		Error
	if err != nil {
		return "", errors.Wrap(err, "erreur d'enregistrement de la demande")
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Lead, error) {
	rec := dbmodels.Lead{}
	err := i.db.
		Preload("City").
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

func (i impl) filtered(filter Filter) *gorm.DB {
	tx := i.db.Model(dbmodels.Lead{})
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.CityID != "" {
		tx = tx.Where("city_id = ?", filter.CityID)
	}
	return tx
}

func (i impl) List(filter Filter, page, limit int) (list []dbmodels.Lead, rowCount int64, err error) {
	tx := i.filtered(filter)
	if err = tx.Count(&rowCount).Error; err != nil {
		return nil, 0, errors.Wrap(err, "erreur de comptage des demandes")
	}
	err = tx.
		Preload("City").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "erreur de récupération des demandes")
	}
	return list, rowCount, nil
}

func (i impl) ListAll(filter Filter) ([]dbmodels.Lead, error) {
	var list []dbmodels.Lead
	err := i.filtered(filter).
		Preload("City").
		Order("created_at DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "erreur de récupération des demandes")
	}
	return list, nil
}

func (i impl) ListToNotify(maxAttempts int, createdBefore time.Time, limit int) ([]dbmodels.Lead, error) {
	var list []dbmodels.Lead
	err := i.db.
		Preload("City").
		Where("notified_at IS NULL").
		Where("notify_attempt < ?", maxAttempts).
		Where("created_at < ?", createdBefore).
		Order("created_at").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "erreur de récupération des demandes à notifier")
	}
	return list, nil
}

func (i impl) Latest(limit int) ([]dbmodels.Lead, error) {
	var list []dbmodels.Lead
	err := i.db.
		Preload("City").
		Order("created_at DESC").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "erreur de récupération des dernières demandes")
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.Lead{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return errors.Wrap(err, "erreur de mise à jour de la demande")
	}
	return nil
}

func (i impl) IncNotifyAttempt(id string) error {
	err := i.db.
		Model(&dbmodels.Lead{}).
		Where("id = ?", id).
		UpdateColumn("notify_attempt", gorm.Expr("notify_attempt + 1")).
		Error
	if err != nil {
		return errors.Wrap(err, "erreur de mise à jour du compteur de notification")
	}
	return nil
}

func (i impl) Delete(id string) error {
	err := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Lead{}).
		Error
	if err != nil {
		return errors.Wrap(err, "erreur de suppression de la demande")
	}
	return nil
}

func (i impl) Count(status models.LeadStatus) (int64, error) {
	var rowCount int64
	err := i.filtered(Filter{Status: status}).Count(&rowCount).Error
	if err != nil {
		return 0, errors.Wrap(err, "erreur de comptage des demandes")
	}
	return rowCount, nil
}

func (i impl) CountSince(from time.Time) (int64, error) {
	var rowCount int64
	err := i.db.
		Model(dbmodels.Lead{}).
		Where("created_at >= ?", from).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, errors.Wrap(err, "erreur de comptage des demandes récentes")
	}
	return rowCount, nil
}

func (i impl) CountByStatus() ([]dbmodels.LeadStatusCount, error) {
	var list []dbmodels.LeadStatusCount
	err := i.db.
		Model(dbmodels.Lead{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&list).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "erreur de comptage des demandes par statut")
	}
	return list, nil
}
