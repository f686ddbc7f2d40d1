package initializers

import (
	log "github.com/sirupsen/logrus"
	"pv-leads-backend/config"
	"pv-leads-backend/lib/smtp"
)

func InitSmtp() {
	conf := config.Conf.Smtp
	err := smtp.Connect(conf.User, conf.Password, conf.Host, conf.Port, conf.From, isEnabled(conf.TLSEnabled))
	if err != nil {
		panic(err.Error())
	}
	if !smtp.Instance.IsConfigured() {
		log.Warn("client smtp non configuré, les notifications email des demandes sont désactivées")
	}
}
