package adminpanelauthhandler

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"pv-leads-backend/config"
	"pv-leads-backend/db"
	adminpaneluserstore "pv-leads-backend/lib/admin-panel/store"
	authutils "pv-leads-backend/lib/utils/auth-utils"
	initchecker "pv-leads-backend/lib/utils/init-checker"
	authapimodels "pv-leads-backend/models/api/auth"
)

var ErrInvalidCredentials = errors.New("email ou mot de passe incorrect")

type Provider interface {
	Login(email, password string) (response authapimodels.JWTResponse, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:       adminpaneluserstore.NewInstance(db.DB),
		secret:      config.Conf.AdminPanelAuth.JWTSecret,
		expireInSec: config.Conf.AdminPanelAuth.JWTExpireInSec,
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store       adminpaneluserstore.Provider
	secret      string
	expireInSec int64
}

func (i impl) Login(email, password string) (response authapimodels.JWTResponse, err error) {
	email = strings.ToLower(strings.TrimSpace(email))
	logger := log.WithField("email", email)
	user, err := i.store.FindByEmail(email)
	if err != nil {
		logger.
			WithError(err).
			Error("erreur de recherche de l'utilisateur par email")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil || !user.IsActive {
		logger.Debug("utilisateur inconnu ou désactivé")
		return authapimodels.JWTResponse{}, ErrInvalidCredentials
	}
	if !authutils.CheckPassword(user.Password, password) {
		logger.Debug("mot de passe incorrect")
		return authapimodels.JWTResponse{}, ErrInvalidCredentials
	}
	tokenString, err := authutils.GetToken(user.ID, user.FullName(), user.Role, i.secret, i.expireInSec)
	if err != nil {
		logger.WithError(err).Error("erreur de génération du JWT")
		return authapimodels.JWTResponse{}, err
	}
	err = i.store.Update(user.ID, map[string]interface{}{"LastLogin": time.Now()})
	if err != nil {
		logger.
			WithError(err).
			Error("erreur de mise à jour de la date de dernière connexion")
	}
	logger.Info("connexion à l'admin")
	return authapimodels.JWTResponse{
		Token:     tokenString,
		ExpiresIn: i.expireInSec,
	}, nil
}
