package contentgenerator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	dbmodels "pv-leads-backend/models/db"
)

func intPtr(v int) *int { return &v }

func lyon() dbmodels.City {
	return dbmodels.City{
		Name:       "Lyon",
		PostalCode: "69001",
		Department: "Rhône",
		Region:     "Auvergne-Rhône-Alpes",
		Population: intPtr(522969),
	}
}

func TestGenerate(t *testing.T) {
	g := NewGenerator(DefaultSunHoursTable())

	t.Run(`deterministic`, func(t *testing.T) {
		first := g.Generate(lyon(), 12)
		second := g.Generate(lyon(), 12)
		require.Equal(t, first, second)
		require.Len(t, first.FAQ, 6)
		require.Equal(t, "Combien de kWh produit une installation solaire à Lyon ?", first.FAQ[1].Question)
		require.Contains(t, first.FAQ[1].Answer, "entre 2100 et 2700 kWh par an")
		require.Contains(t, first.FAQ[1].Answer, "entre 4200 et 5400 kWh/an")
		require.Equal(t, introTemplates[VariantIndex(len(introTemplates), "Lyon")](newVars(lyon(), 12, 2100)), first.Intro)
	})

	t.Run(`benefits blend climate or urban phrases with common ones`, func(t *testing.T) {
		content := g.Generate(lyon(), 12)
		require.Len(t, content.Benefits, 6)
		require.Equal(t, urbanBenefits, content.Benefits[:3])
		require.Equal(t, "12 installateurs certifiés RGE à Lyon", content.Benefits[3])

		nice := dbmodels.City{Name: "Nice", PostalCode: "06000", Department: "Alpes-Maritimes",
			Region: "Provence-Alpes-Côte d'Azur", Population: intPtr(342669)}
		content = g.Generate(nice, 1)
		require.Equal(t, sunnyBenefits, content.Benefits[:3])
		require.Equal(t, "1 installateur certifié RGE à Nice", content.Benefits[3])
		require.Equal(t, localAdvantagesTemplates[ClimateSunny](newVars(nice, 1, 2800)), content.LocalAdvantagesText)
	})

	t.Run(`sparse city still gets full content`, func(t *testing.T) {
		city := dbmodels.City{Name: "Saint-Martin", PostalCode: "12345", Department: "Inconnu", Region: "Nulle part"}
		content := g.Generate(city, 0)
		require.Len(t, content.FAQ, 6)
		require.Equal(t, moderateBenefits, content.Benefits[:3])
		for _, item := range content.FAQ {
			require.NotEmpty(t, item.Question)
			require.NotEmpty(t, item.Answer)
			require.NotContains(t, item.Answer, "undefined")
			require.NotContains(t, item.Answer, "%!")
		}
		require.Contains(t, content.FAQ[1].Answer, "2000h/an")
		require.Contains(t, content.FAQ[3].Answer, "10 à 12 ans")
		require.NotEmpty(t, content.Intro)
		require.NotEmpty(t, content.ProcessText)
		require.NotEmpty(t, content.WhyRGEText)
		require.NotEmpty(t, content.LocalAdvantagesText)
	})

	t.Run(`cloudy region`, func(t *testing.T) {
		city := dbmodels.City{Name: "Lille", PostalCode: "59000", Department: "Nord", Region: "Hauts-de-France", Population: intPtr(30000)}
		content := g.Generate(city, 3)
		require.Equal(t, moderateBenefits, content.Benefits[:3])
		require.Contains(t, content.FAQ[3].Answer, "12 à 15 ans")
		require.True(t, strings.HasPrefix(content.LocalAdvantagesText, "Même avec 1600 heures"))
	})

	t.Run(`injected table`, func(t *testing.T) {
		custom := NewGenerator(SunHoursTable{"Auvergne-Rhône-Alpes": 2400})
		content := custom.Generate(lyon(), 12)
		require.Equal(t, sunnyBenefits, content.Benefits[:3])
		require.Contains(t, content.FAQ[3].Answer, "8 à 10 ans")
	})
}

func TestClimate(t *testing.T) {
	require.Equal(t, ClimateSunny, Climate(2300))
	require.Equal(t, ClimateModerate, Climate(2299))
	require.Equal(t, ClimateModerate, Climate(1800))
	require.Equal(t, ClimateCloudy, Climate(1799))
}

func TestReturnOnInvestment(t *testing.T) {
	require.Equal(t, "8 à 10 ans", returnOnInvestment(2201))
	require.Equal(t, "10 à 12 ans", returnOnInvestment(2200))
	require.Equal(t, "10 à 12 ans", returnOnInvestment(1901))
	require.Equal(t, "12 à 15 ans", returnOnInvestment(1900))
	require.Equal(t, "12 à 15 ans", returnOnInvestment(0))
}

func TestVariantIndex(t *testing.T) {
	t.Run(`stable and in range`, func(t *testing.T) {
		for _, name := range []string{"Lyon", "Paris", "Saint-Étienne", "Aix-en-Provence", ""} {
			idx := VariantIndex(3, name)
			require.Equal(t, idx, VariantIndex(3, name))
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, 3)
		}
		require.Equal(t, 0, VariantIndex(1, "Lyon"))
		require.Equal(t, 0, VariantIndex(0, "Lyon"))
		require.Equal(t, ('A'+'B')%2, VariantIndex(2, "A", "B"))
	})

	t.Run(`spreads across variants`, func(t *testing.T) {
		hits := map[int]int{}
		for _, name := range []string{"Lyon", "Paris", "Nice", "Brest", "Caen", "Metz", "Dijon", "Rouen", "Tours", "Nancy", "Reims", "Pau"} {
			hits[VariantIndex(3, name)]++
		}
		require.Len(t, hits, 3)
	})
}

func TestLoadSunHoursTable(t *testing.T) {
	t.Run(`no file keeps defaults`, func(t *testing.T) {
		table, err := LoadSunHoursTable("")
		require.Nil(t, err)
		require.Equal(t, 2800, table.Hours("Provence-Alpes-Côte d'Azur"))
		require.Equal(t, DefaultSunHours, table.Hours("Atlantide"))
	})

	t.Run(`override`, func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sun.yml")
		require.Nil(t, os.WriteFile(path, []byte("Bretagne: 1750\nGuadeloupe: 2900\n"), 0o600))
		table, err := LoadSunHoursTable(path)
		require.Nil(t, err)
		require.Equal(t, 1750, table.Hours("Bretagne"))
		require.Equal(t, 2900, table.Hours("Guadeloupe"))
		require.Equal(t, 1600, table.Hours("Hauts-de-France"))
	})

	t.Run(`invalid value`, func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sun.yml")
		require.Nil(t, os.WriteFile(path, []byte("Bretagne: 0\n"), 0o600))
		_, err := LoadSunHoursTable(path)
		require.NotNil(t, err)
	})
}

func TestMeta(t *testing.T) {
	city := lyon()
	require.Equal(t, "Installateur Panneaux Solaires à Lyon (69001)", H1(city))
	require.Equal(t, "Installateur Panneaux Solaires Lyon (69001) | Devis Gratuit", PageTitle(city))
	require.Contains(t, MetaDescription(city, 1), "1 professionnel certifié RGE")
	require.Contains(t, MetaDescription(city, 4), "4 professionnels certifiés RGE")

	city.CustomTitle = "Titre"
	city.CustomDescription = "Description"
	require.Equal(t, "Titre", PageTitle(city))
	require.Equal(t, "Description", MetaDescription(city, 4))
}
