package initializers

import (
	"pv-leads-backend/config"
	"pv-leads-backend/db"
)

func InitDBConnection() {
	conf := config.Conf.Database
	err := db.Connect(db.Options{
		Host:         conf.Host,
		Port:         conf.Port,
		Name:         conf.Name,
		User:         conf.User,
		Password:     conf.Password,
		DebugMode:    isEnabled(conf.DebugMode),
		Migrate:      isEnabled(conf.MigrateOnStart),
		MaxOpenConns: conf.MaxOpenConns,
		MaxIdleConns: conf.MaxIdleConns,
	})
	if err != nil {
		panic(err.Error())
	}

	// régions, départements, communes, puis le super administrateur
	db.InitPreload()
}

func isEnabled(flag *bool) bool {
	return flag != nil && *flag
}
