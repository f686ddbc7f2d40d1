package messagetemplate

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/pkg/errors"
	"pv-leads-backend/models"
	dbmodels "pv-leads-backend/models/db"
)

//go:embed templates/*.html
var templateFiles embed.FS

const (
	leadNotificationFile = "templates/lead_notification.html"
	leadConfirmationFile = "templates/lead_confirmation.html"
)

func BuildLeadNotification(lead dbmodels.Lead, siteName, baseURL string) (subject, body string, err error) {
	data := newLeadTemplateData(lead, siteName, baseURL)
	body, err = execute(leadNotificationFile, data)
	if err != nil {
		return "", "", err
	}
	return fmt.Sprintf("Nouvelle demande : %s - %s", data.Name, data.CityName), body, nil
}

func BuildLeadConfirmation(lead dbmodels.Lead, siteName, baseURL string) (subject, body string, err error) {
	data := newLeadTemplateData(lead, siteName, baseURL)
	body, err = execute(leadConfirmationFile, data)
	if err != nil {
		return "", "", err
	}
	return fmt.Sprintf("Votre demande de devis pour %s", data.CityName), body, nil
}

func newLeadTemplateData(lead dbmodels.Lead, siteName, baseURL string) models.LeadTemplateData {
	data := models.LeadTemplateData{
		SiteName:    siteName,
		Name:        lead.Name,
		Email:       lead.Email,
		Phone:       lead.Phone,
		PostalCode:  lead.PostalCode,
		ProjectType: lead.ProjectType.ToHuman(),
		Message:     lead.Message,
		Budget:      lead.Budget,
		CreatedAt:   lead.CreatedAt.Format("02/01/2006 15:04"),
		AdminURL:    strings.TrimRight(baseURL, "/") + "/admin/leads",
	}
	if lead.Surface != nil {
		data.Surface = *lead.Surface
	}
	if lead.City != nil {
		data.CityName = lead.City.Name
		data.Department = lead.City.Department
		if data.PostalCode == "" {
			data.PostalCode = lead.City.PostalCode
		}
	}
	return data
}

func execute(filePath string, data interface{}) (string, error) {
	tmplBody, err := templateFiles.ReadFile(filePath)
	if err != nil {
		return "", errors.Wrapf(err, "erreur de lecture du modèle %v", filePath)
	}
	tpl, err := template.New("msg_body").Parse(strings.Replace(string(tmplBody), "\n", "", -1))
	if err != nil {
		return "", err
	}
	buf := new(bytes.Buffer)
	if err = tpl.Execute(buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
