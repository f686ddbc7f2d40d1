package adminpaneluserstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "pv-leads-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.AdminPanelUser) (userID string, err error)
	GetByID(userID string) (*dbmodels.AdminPanelUser, error)
	FindByEmail(email string) (*dbmodels.AdminPanelUser, error)
	Update(userID string, updMap map[string]interface{}) error
	Delete(userID string) error
	List() ([]dbmodels.AdminPanelUser, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AdminPanelUser) (userID string, err error) {
	if err = rec.Validate(); err != nil {
		return "", err
	}
	existed, err := i.FindByEmail(rec.Email)
	if err != nil {
		return "", err
	}
	if existed != nil {
		return "", errors.New("l'utilisateur existe déjà")
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", errors.Wrap(err, "erreur d'enregistrement de l'utilisateur")
	}
	return rec.ID, nil
}

func (i impl) GetByID(userID string) (*dbmodels.AdminPanelUser, error) {
	return i.first("id = ?", userID)
}

func (i impl) FindByEmail(email string) (*dbmodels.AdminPanelUser, error) {
	return i.first("email = ?", email)
}

func (i impl) first(query, value string) (*dbmodels.AdminPanelUser, error) {
	rec := dbmodels.AdminPanelUser{}
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

func (i impl) Update(userID string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	email, ok := updMap["Email"]
	if ok {
		existedRec, err := i.FindByEmail(email.(string))
		if err != nil {
			return err
		}
		if existedRec != nil && existedRec.ID != userID {
			return errors.New("un utilisateur avec cet email existe déjà")
		}
	}
	err := i.db.
		Model(&dbmodels.AdminPanelUser{}).
		Where("id = ?", userID).
		Updates(updMap).
		Error
	if err != nil {
		return errors.Wrap(err, "erreur de mise à jour de l'utilisateur")
	}
	return nil
}

func (i impl) Delete(userID string) error {
	err := i.db.
		Where("id = ?", userID).
		Delete(&dbmodels.AdminPanelUser{}).
		Error
	if err != nil {
		return errors.Wrap(err, "erreur de suppression de l'utilisateur")
	}
	return nil
}

func (i impl) List() ([]dbmodels.AdminPanelUser, error) {
	list := []dbmodels.AdminPanelUser{}
	err := i.db.
		Order("email").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
