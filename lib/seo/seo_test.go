package seo

import (
	"testing"

	"github.com/stretchr/testify/require"
	dbmodels "pv-leads-backend/models/db"
)

func TestSlugify(t *testing.T) {
	require.Equal(t, "saint-etienne", Slugify("Saint-Étienne"))
	require.Equal(t, "l-hay-les-roses", Slugify("L'Haÿ-les-Roses"))
	require.Equal(t, "oeuilly", Slugify("Œuilly"))
	require.Equal(t, "provence-alpes-cote-d-azur", Slugify("Provence-Alpes-Côte d'Azur"))
	require.Equal(t, "ile-de-france", Slugify("  Île-de-France  "))
	require.Equal(t, "", Slugify("---"))
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "court", Truncate("court", 10))
	require.Equal(t, "un texte...", Truncate("un texte assez long", 10))
	require.Equal(t, "abcdefghij...", Truncate("abcdefghijklmnop", 10))
	require.LessOrEqual(t, len([]rune(SEOTitle([]string{"Installateur Panneaux Solaires Saint-Rémy-de-Provence", "Devis Gratuit"}, ""))), 63)
	require.Equal(t, "A | B", SEOTitle([]string{"A", "B"}, ""))
}

func TestCleanPhoneNumber(t *testing.T) {
	require.Equal(t, "0612345678", CleanPhoneNumber("06 12 34 56 78"))
	require.Equal(t, "0612345678", CleanPhoneNumber("+33 6 12 34 56 78"))
	require.Equal(t, "0612345678", CleanPhoneNumber("0033612345678"))
	require.Equal(t, "12-34", CleanPhoneNumber("12-34"))
}

func TestBusiness(t *testing.T) {
	require.Equal(t, "solairesas-12ruedelapaix75002pa", BusinessID("Solaire SAS", "12 rue de la Paix, 75002 Paris"))

	rating := 4.5
	reviews := 12
	full := dbmodels.Business{
		Name:        "Solaire SAS",
		Address:     "12 rue de la Paix",
		Phone:       "0612345678",
		Website:     "https://solaire.fr",
		Rating:      &rating,
		ReviewCount: &reviews,
	}
	require.Equal(t, 100, BusinessQualityScore(full))
	require.Equal(t, 0, BusinessQualityScore(dbmodels.Business{Name: "ABC"}))
	require.Equal(t, 0, BusinessQualityScore(dbmodels.Business{Name: "Été", Address: "12 rue Éèà"}))
	require.Equal(t, 20, BusinessQualityScore(dbmodels.Business{Name: "Éole"}))

	low := 3.9
	full.Rating = &low
	require.Equal(t, 80, BusinessQualityScore(full))
}

func TestCityKeywords(t *testing.T) {
	city := dbmodels.City{Name: "Lyon", PostalCode: "69001", Department: "Rhône", Region: "Auvergne-Rhône-Alpes"}
	keywords := CityKeywords(city)
	require.Len(t, keywords, 8)
	require.Equal(t, "panneaux solaires Lyon", keywords[0])
	require.Equal(t, "69001", keywords[3])
	require.Equal(t, "énergie solaire Auvergne-Rhône-Alpes", keywords[7])
}
