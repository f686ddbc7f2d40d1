package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	dbmodels "pv-leads-backend/models/db"
)

type Provider interface {
	ExportLeadList(list []dbmodels.Lead) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const sheetName = "Demandes"

var leadColumns = []column{
	{"Date", 17},
	{"Nom", 24},
	{"Contact", 30},
	{"Ville", 22},
	{"Code postal", 12},
	{"Type de projet", 18},
	{"Budget", 16},
	{"Surface (m²)", 13},
	{"Statut", 12},
	{"Source", 28},
	{"Message", 50},
}

func (i impl) ExportLeadList(list []dbmodels.Lead) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("erreur de fermeture du fichier")
		}
	}()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}
	if err := writeHeader(f, sheetName, leadColumns); err != nil {
		return nil, errors.Wrap(err, "erreur de génération de l'en-tête xlsx")
	}
	if len(list) != 0 {
		if err := writeLeadData(f, sheetName, list); err != nil {
			return nil, errors.Wrap(err, "erreur de génération du tableau xlsx")
		}
	}
	return f.WriteToBuffer()
}

func writeLeadData(f *excelize.File, sheet string, list []dbmodels.Lead) error {
	if err := applyDataCellStyle(f, sheet, len(leadColumns), 2, len(list)+1); err != nil {
		return err
	}
	for k, item := range list {
		if err := writeRow(f, sheet, k+2, leadRow(item)); err != nil {
			return err
		}
	}
	return nil
}

func leadRow(item dbmodels.Lead) []interface{} {
	cityName := ""
	if item.City != nil {
		cityName = item.City.Name
	}
	var surface interface{}
	if item.Surface != nil {
		surface = *item.Surface
	}
	return []interface{}{
		item.CreatedAt.Format("02/01/2006 15:04"),
		item.Name,
		fmt.Sprintf("%v\n%v", item.Phone, item.Email),
		cityName,
		item.PostalCode,
		item.ProjectType.ToHuman(),
		item.Budget,
		surface,
		string(item.Status),
		item.Source,
		item.Message,
	}
}
