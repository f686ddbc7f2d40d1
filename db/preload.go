package db

import (
	"pv-leads-backend/config"
	adminpaneluserstore "pv-leads-backend/lib/admin-panel/store"
	authutils "pv-leads-backend/lib/utils/auth-utils"
	"pv-leads-backend/models"
	dbmodels "pv-leads-backend/models/db"

	log "github.com/sirupsen/logrus"
)

func InitPreload() {
	addSuperAdmin()
	fillRegions(config.Conf.Database.PreloadDir)
	fillDepartments(config.Conf.Database.PreloadDir)
	fillCities(config.Conf.Database.PreloadDir)
}

func addSuperAdmin() {
	if config.Conf.Admin.Email == "" {
		log.Warn("super administrateur non ajouté, le paramètre ADMIN_EMAIL est absent")
		return
	}
	adminStore := adminpaneluserstore.NewInstance(DB)
	existedRec, err := adminStore.FindByEmail(config.Conf.Admin.Email)
	if err != nil {
		log.WithError(err).Error("erreur d'ajout du super administrateur")
		return
	}
	if existedRec != nil {
		return
	}
	hash, err := authutils.HashPassword(config.Conf.Admin.Password)
	if err != nil {
		log.WithError(err).Error("erreur de hachage du mot de passe du super administrateur")
		return
	}
	rec := dbmodels.AdminPanelUser{
		IsActive:    true,
		Role:        models.UserRoleSuperAdmin,
		Password:    hash,
		FirstName:   config.Conf.Admin.FirstName,
		LastName:    config.Conf.Admin.LastName,
		Email:       config.Conf.Admin.Email,
		PhoneNumber: config.Conf.Admin.PhoneNumber,
	}
	_, err = adminStore.Create(rec)
	if err != nil {
		log.WithError(err).Error("erreur d'ajout du super administrateur")
	}
}
