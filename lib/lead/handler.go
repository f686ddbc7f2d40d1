package leadhandler

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"pv-leads-backend/config"
	"pv-leads-backend/db"
	citystore "pv-leads-backend/lib/dicts/city/store"
	pdfexport "pv-leads-backend/lib/export/pdf"
	xlsexport "pv-leads-backend/lib/export/xls"
	leadstore "pv-leads-backend/lib/lead/store"
	messagetemplate "pv-leads-backend/lib/message-template"
	"pv-leads-backend/lib/smtp"
	initchecker "pv-leads-backend/lib/utils/init-checker"
	"pv-leads-backend/lib/utils/lock"
	connectionhub "pv-leads-backend/lib/ws/hub/connection-hub"
	"pv-leads-backend/models"
	leadapimodels "pv-leads-backend/models/api/lead"
	dbmodels "pv-leads-backend/models/db"
	wsmodels "pv-leads-backend/models/ws"
)

const (
	MaxNotifyAttempt = 5
	sourceDirect     = "direct"
	createdMessage   = "Votre demande a bien été envoyée. Vous serez contacté sous 24 à 48h."
	notifyTimeout    = time.Minute
	eventTimeLayout  = "02/01/2006 15:04:05"
)

var ErrLeadNotFound = errors.New("demande non trouvée")

type Provider interface {
	Create(request leadapimodels.LeadRequest, tracking leadapimodels.Tracking) (leadapimodels.CreateResponse, error)
	Notify(ctx context.Context, id string) error
	List(filter leadapimodels.LeadFilter) (list []leadapimodels.LeadView, rowCount int64, err error)
	Get(id string) (leadapimodels.LeadView, error)
	UpdateStatus(id string, status models.LeadStatus) error
	Delete(id string) error
	ExportXlsx(filter leadapimodels.LeadFilter) (*bytes.Buffer, error)
	ExportPdf(id string) ([]byte, error)
}

var Instance Provider

type eventPublisher interface {
	Broadcast(msg wsmodels.ServerMessage)
}

func NewHandler() {
	instance := impl{
		store:      leadstore.NewInstance(db.DB),
		cityStore:  citystore.NewInstance(db.DB),
		mailer:     smtp.Instance,
		xls:        xlsexport.Instance,
		webhook:    newHttpWebhook(),
		events:     connectionhub.Instance,
		siteName:   config.Conf.Site.Name,
		baseURL:    config.Conf.Site.BaseURL,
		adminEmail: config.Conf.Site.AdminEmail,
		webhookURL: config.Conf.Site.LeadWebhookURL,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"cityStore", instance.cityStore,
		"mailer", instance.mailer,
		"xls", instance.xls,
	)
	Instance = instance
}

type impl struct {
	store      leadstore.Provider
	cityStore  citystore.Provider
	mailer     smtp.Provider
	xls        xlsexport.Provider
	webhook    webhookSender
	events     eventPublisher
	siteName   string
	baseURL    string
	adminEmail string
	webhookURL string
}

func (i impl) Create(request leadapimodels.LeadRequest, tracking leadapimodels.Tracking) (leadapimodels.CreateResponse, error) {
	if err := request.Validate(); err != nil {
		return leadapimodels.CreateResponse{}, err
	}
	city, err := i.cityStore.GetByID(request.CityID)
	if err != nil {
		return leadapimodels.CreateResponse{}, err
	}
	if city == nil {
		return leadapimodels.CreateResponse{}, leadapimodels.ValidationError{
			Details: []leadapimodels.FieldError{{Field: "city_id", Message: "Ville introuvable"}},
		}
	}
	surface, _ := request.SurfaceValue()
	source := strings.TrimSpace(tracking.Source)
	if source == "" {
		source = sourceDirect
	}
	rec := dbmodels.Lead{
		Name:        strings.TrimSpace(request.Name),
		Email:       strings.TrimSpace(request.Email),
		Phone:       strings.TrimSpace(request.Phone),
		CityID:      city.ID,
		PostalCode:  request.PostalCode,
		ProjectType: request.ProjectType,
		Message:     request.Message,
		Budget:      request.Budget,
		Surface:     surface,
		Status:      models.LeadStatusNew,
		Source:      source,
		IpAddress:   tracking.IpAddress,
		UserAgent:   tracking.UserAgent,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return leadapimodels.CreateResponse{}, err
	}
	log.
		WithField("lead_id", id).
		WithField("city_id", city.ID).
		WithField("source", source).
		Info("nouvelle demande de devis")

	if i.events != nil {
		rec.ID = id
		rec.City = city
		i.events.Broadcast(wsmodels.ServerMessage{
			Time: time.Now().Format(eventTimeLayout),
			Code: wsmodels.CodeLeadCreated,
			Msg:  fmt.Sprintf("Nouvelle demande de %s (%s)", rec.Name, city.Name),
			Data: leadapimodels.LeadConvert(rec),
		})
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := i.Notify(ctx, id); err != nil {
			log.WithError(err).WithField("lead_id", id).Warn("notification de la demande échouée, nouvel essai planifié")
		}
	}()

	return leadapimodels.CreateResponse{ID: id, Message: createdMessage}, nil
}

// Notify sends the admin mail, the customer confirmation and the webhook.
// A lead already notified, or one being notified elsewhere, is skipped.
func (i impl) Notify(ctx context.Context, id string) error {
	_, err := lock.TryRun("lead-notify:"+id, func() error {
		return i.notify(ctx, id)
	})
	return err
}

func (i impl) notify(ctx context.Context, id string) error {
	logger := log.WithField("lead_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrLeadNotFound
	}
	if rec.NotifiedAt != nil {
		return nil
	}
	var sendErr error
	if i.adminEmail != "" {
		sendErr = i.sendMail(i.adminEmail, *rec, messagetemplate.BuildLeadNotification)
	}
	if err = i.sendMail(rec.Email, *rec, messagetemplate.BuildLeadConfirmation); err != nil {
		sendErr = err
	}
	if i.webhookURL != "" && i.webhook != nil {
		payload := WebhookPayload{Event: "lead.created", Lead: leadapimodels.LeadConvert(*rec)}
		if err = i.webhook.Send(ctx, i.webhookURL, payload); err != nil {
			logger.WithError(err).Error("erreur d'envoi du webhook")
			sendErr = err
		}
	}
	if sendErr != nil {
		if err = i.store.IncNotifyAttempt(id); err != nil {
			logger.WithError(err).Error("erreur de mise à jour du compteur de notification")
		}
		return sendErr
	}
	now := time.Now()
	if err = i.store.Update(id, map[string]interface{}{"NotifiedAt": &now}); err != nil {
		return err
	}
	logger.Info("demande notifiée")
	return nil
}

type mailBuilder func(lead dbmodels.Lead, siteName, baseURL string) (subject, body string, err error)

func (i impl) sendMail(to string, lead dbmodels.Lead, build mailBuilder) error {
	if i.mailer == nil {
		return nil
	}
	subject, body, err := build(lead, i.siteName, i.baseURL)
	if err != nil {
		return errors.Wrap(err, "erreur de génération de l'email")
	}
	return i.mailer.SendEMail(to, subject, body)
}

func (i impl) List(filter leadapimodels.LeadFilter) (list []leadapimodels.LeadView, rowCount int64, err error) {
	page, limit := filter.GetPage()
	recList, rowCount, err := i.store.List(leadstore.Filter{Status: filter.Status, CityID: filter.CityID}, page, limit)
	if err != nil {
		return nil, 0, err
	}
	list = make([]leadapimodels.LeadView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, leadapimodels.LeadConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) Get(id string) (leadapimodels.LeadView, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return leadapimodels.LeadView{}, err
	}
	return leadapimodels.LeadConvert(*rec), nil
}

func (i impl) UpdateStatus(id string, status models.LeadStatus) error {
	if err := (leadapimodels.StatusRequest{Status: status}).Validate(); err != nil {
		return err
	}
	if _, err := i.getRec(id); err != nil {
		return err
	}
	if err := i.store.Update(id, map[string]interface{}{"Status": status}); err != nil {
		return err
	}
	log.WithField("lead_id", id).WithField("status", status).Info("statut de la demande mis à jour")
	return nil
}

func (i impl) Delete(id string) error {
	if _, err := i.getRec(id); err != nil {
		return err
	}
	if err := i.store.Delete(id); err != nil {
		return err
	}
	log.WithField("lead_id", id).Info("demande supprimée")
	return nil
}

func (i impl) ExportXlsx(filter leadapimodels.LeadFilter) (*bytes.Buffer, error) {
	list, err := i.store.ListAll(leadstore.Filter{Status: filter.Status, CityID: filter.CityID})
	if err != nil {
		return nil, err
	}
	return i.xls.ExportLeadList(list)
}

func (i impl) ExportPdf(id string) ([]byte, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return nil, err
	}
	return pdfexport.GenerateLeadSheet(i.siteName, *rec)
}

func (i impl) getRec(id string) (*dbmodels.Lead, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrLeadNotFound
	}
	return rec, nil
}
