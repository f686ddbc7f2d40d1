package xlsexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"pv-leads-backend/models"
	dbmodels "pv-leads-backend/models/db"
)

func TestExportLeadList(t *testing.T) {
	surface := 40
	lead := dbmodels.Lead{
		Name:        "Jean Dupont",
		Email:       "jean@exemple.fr",
		Phone:       "0612345678",
		PostalCode:  "69001",
		ProjectType: models.ProjectTypeRenovation,
		Surface:     &surface,
		Status:      models.LeadStatusNew,
		Source:      "direct",
		City:        &dbmodels.City{Name: "Lyon"},
	}
	lead.CreatedAt = time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)

	buf, err := impl{}.ExportLeadList([]dbmodels.Lead{lead, {Name: "Sans ville", Status: models.LeadStatusLost}})
	require.Nil(t, err)

	f, err := excelize.OpenReader(buf)
	require.Nil(t, err)
	rows, err := f.GetRows("Demandes")
	require.Nil(t, err)
	require.Len(t, rows, 3)
	titles := make([]string, 0, len(leadColumns))
	for _, col := range leadColumns {
		titles = append(titles, col.title)
	}
	require.Equal(t, titles, rows[0])
	require.Equal(t, "Jean Dupont", rows[1][1])
	require.Equal(t, "Lyon", rows[1][3])
	require.Equal(t, "Rénovation", rows[1][5])
	require.Equal(t, "40", rows[1][7])
	require.Equal(t, "perdu", rows[2][8])
}

func TestExportEmptyList(t *testing.T) {
	buf, err := impl{}.ExportLeadList(nil)
	require.Nil(t, err)

	f, err := excelize.OpenReader(buf)
	require.Nil(t, err)
	rows, err := f.GetRows(sheetName)
	require.Nil(t, err)
	require.Len(t, rows, 1)
}
