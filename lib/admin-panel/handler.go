package adminpanelhandler

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"pv-leads-backend/db"
	adminpaneluserstore "pv-leads-backend/lib/admin-panel/store"
	authutils "pv-leads-backend/lib/utils/auth-utils"
	initchecker "pv-leads-backend/lib/utils/init-checker"
	adminpanelapimodels "pv-leads-backend/models/api/admin-panel"
	dbmodels "pv-leads-backend/models/db"
)

var ErrUserNotFound = errors.New("utilisateur non trouvé")

type Provider interface {
	CreateUser(request adminpanelapimodels.User) (userID string, err error)
	UpdateUser(userID string, request adminpanelapimodels.UserUpdate) error
	DeleteUser(userID string) error
	GetUser(userID string) (adminpanelapimodels.UserView, error)
	List() ([]adminpanelapimodels.UserView, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: adminpaneluserstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store adminpaneluserstore.Provider
}

func (i impl) CreateUser(request adminpanelapimodels.User) (userID string, err error) {
	if err = request.Validate(); err != nil {
		return "", err
	}
	hash, err := authutils.HashPassword(request.Password)
	if err != nil {
		return "", errors.Wrap(err, "erreur de hachage du mot de passe")
	}
	rec := dbmodels.AdminPanelUser{
		IsActive:    true,
		Role:        request.Role,
		Password:    hash,
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		Email:       strings.ToLower(strings.TrimSpace(request.Email)),
		PhoneNumber: request.PhoneNumber,
	}
	userID, err = i.store.Create(rec)
	if err != nil {
		log.
			WithField("email", rec.Email).
			WithError(err).
			Error("erreur de création de l'utilisateur de l'admin")
		return "", err
	}
	log.
		WithField("user_id", userID).
		WithField("email", rec.Email).
		Info("utilisateur de l'admin créé")
	return userID, nil
}

func (i impl) UpdateUser(userID string, request adminpanelapimodels.UserUpdate) error {
	logger := log.WithField("user_id", userID)
	if err := request.Validate(); err != nil {
		return err
	}
	rec, err := i.store.GetByID(userID)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrUserNotFound
	}
	updMap := map[string]interface{}{}
	if request.Role != nil {
		updMap["Role"] = *request.Role
	}
	if request.FirstName != nil {
		updMap["FirstName"] = *request.FirstName
	}
	if request.LastName != nil {
		updMap["LastName"] = *request.LastName
	}
	if request.Password != nil {
		hash, err := authutils.HashPassword(*request.Password)
		if err != nil {
			return errors.Wrap(err, "erreur de hachage du mot de passe")
		}
		updMap["Password"] = hash
	}
	if request.Email != nil {
		updMap["Email"] = strings.ToLower(strings.TrimSpace(*request.Email))
	}
	if request.PhoneNumber != nil {
		updMap["PhoneNumber"] = *request.PhoneNumber
	}
	if request.IsActive != nil {
		updMap["IsActive"] = *request.IsActive
	}
	err = i.store.Update(userID, updMap)
	if err != nil {
		logger.
			WithError(err).
			Error("erreur de mise à jour de l'utilisateur de l'admin")
		return err
	}
	logger.Info("utilisateur de l'admin mis à jour")
	return nil
}

func (i impl) DeleteUser(userID string) error {
	logger := log.WithField("user_id", userID)
	rec, err := i.store.GetByID(userID)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrUserNotFound
	}
	err = i.store.Delete(userID)
	if err != nil {
		logger.
			WithError(err).
			Error("erreur de suppression de l'utilisateur de l'admin")
		return err
	}
	logger.Info("utilisateur de l'admin supprimé")
	return nil
}

func (i impl) GetUser(userID string) (adminpanelapimodels.UserView, error) {
	rec, err := i.store.GetByID(userID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("erreur de récupération de l'utilisateur de l'admin")
		return adminpanelapimodels.UserView{}, err
	}
	if rec == nil {
		return adminpanelapimodels.UserView{}, ErrUserNotFound
	}
	return adminpanelapimodels.UserConvert(*rec), nil
}

func (i impl) List() ([]adminpanelapimodels.UserView, error) {
	list, err := i.store.List()
	if err != nil {
		log.
			WithError(err).
			Error("erreur de récupération des utilisateurs de l'admin")
		return nil, err
	}
	result := make([]adminpanelapimodels.UserView, 0, len(list))
	for _, rec := range list {
		result = append(result, adminpanelapimodels.UserConvert(rec))
	}
	return result, nil
}
