package pdfexport

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	dbmodels "pv-leads-backend/models/db"
)

// GenerateLeadSheet renders a one page summary of a lead with the core
// Helvetica font, text goes through the cp1252 translator for accents.
func GenerateLeadSheet(siteName string, lead dbmodels.Lead) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateLeadSheet panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Demande de devis"), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, tr("Demande de devis"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s - reçue le %s", siteName, lead.CreatedAt.Format("02/01/2006 à 15:04"))), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	for _, row := range leadRows(lead) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(50, 8, tr(row[0]), "B", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 8, tr(row[1]), "B", "L", false)
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func leadRows(lead dbmodels.Lead) [][2]string {
	cityName := ""
	if lead.City != nil {
		cityName = lead.City.Name
	}
	rows := [][2]string{
		{"Nom", lead.Name},
		{"Email", lead.Email},
		{"Téléphone", lead.Phone},
		{"Ville", fmt.Sprintf("%s (%s)", cityName, lead.PostalCode)},
		{"Type de projet", lead.ProjectType.ToHuman()},
		{"Statut", string(lead.Status)},
		{"Source", lead.Source},
	}
	if lead.Budget != "" {
		rows = append(rows, [2]string{"Budget", lead.Budget})
	}
	if lead.Surface != nil {
		rows = append(rows, [2]string{"Surface", strconv.Itoa(*lead.Surface) + " m²"})
	}
	if lead.Message != "" {
		rows = append(rows, [2]string{"Message", lead.Message})
	}
	return rows
}
