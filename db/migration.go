package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "pv-leads-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("lancement des migrations")
	if err := DB.AutoMigrate(&dbmodels.Region{}); err != nil {
		return errors.Wrap(err, "erreur de création de la structure Region")
	}
	if err := DB.AutoMigrate(&dbmodels.Department{}); err != nil {
		return errors.Wrap(err, "erreur de création de la structure Department")
	}
	if err := DB.AutoMigrate(&dbmodels.City{}); err != nil {
		return errors.Wrap(err, "erreur de création de la structure City")
	}
	if err := DB.AutoMigrate(&dbmodels.Business{}); err != nil {
		return errors.Wrap(err, "erreur de création de la structure Business")
	}
	if err := DB.AutoMigrate(&dbmodels.Lead{}); err != nil {
		return errors.Wrap(err, "erreur de création de la structure Lead")
	}
	if err := DB.AutoMigrate(&dbmodels.Page{}); err != nil {
		return errors.Wrap(err, "erreur de création de la structure Page")
	}
	if err := DB.AutoMigrate(&dbmodels.AdminPanelUser{}); err != nil {
		return errors.Wrap(err, "erreur de création de la structure AdminPanelUser")
	}
	log.Info("migrations terminées")
	return nil
}
