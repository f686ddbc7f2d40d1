package contentgenerator

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type ClimateType string

const (
	ClimateSunny    ClimateType = "sunny"
	ClimateModerate ClimateType = "moderate"
	ClimateCloudy   ClimateType = "cloudy"
)

const (
	DefaultSunHours = 2000

	sunnyThreshold    = 2300
	moderateThreshold = 1800

	urbanPopulation = 50000
)

// SunHoursTable maps a region name to its average yearly sunlight hours.
type SunHoursTable map[string]int

func DefaultSunHoursTable() SunHoursTable {
	return SunHoursTable{
		"Provence-Alpes-Côte d'Azur": 2800,
		"Occitanie":                  2500,
		"Nouvelle-Aquitaine":         2200,
		"Auvergne-Rhône-Alpes":       2100,
		"Corse":                      2900,
		"Pays de la Loire":           1900,
		"Centre-Val de Loire":        1900,
		"Bretagne":                   1700,
		"Normandie":                  1650,
		"Hauts-de-France":            1600,
		"Grand Est":                  1750,
		"Bourgogne-Franche-Comté":    1900,
		"Île-de-France":              1750,
	}
}

// LoadSunHoursTable reads a YAML "region: hours" file on top of the default table.
func LoadSunHoursTable(path string) (SunHoursTable, error) {
	table := DefaultSunHoursTable()
	if path == "" {
		return table, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "erreur de lecture de la table d'ensoleillement")
	}
	override := map[string]int{}
	if err = yaml.Unmarshal(data, &override); err != nil {
		return nil, errors.Wrap(err, "erreur de décodage de la table d'ensoleillement")
	}
	for region, hours := range override {
		if hours <= 0 {
			return nil, errors.Errorf("ensoleillement invalide pour la région %q", region)
		}
		table[region] = hours
	}
	return table, nil
}

func (t SunHoursTable) Hours(region string) int {
	if hours, ok := t[region]; ok {
		return hours
	}
	return DefaultSunHours
}

func Climate(sunHours int) ClimateType {
	switch {
	case sunHours >= sunnyThreshold:
		return ClimateSunny
	case sunHours >= moderateThreshold:
		return ClimateModerate
	default:
		return ClimateCloudy
	}
}

func returnOnInvestment(sunHours int) string {
	switch {
	case sunHours > 2200:
		return "8 à 10 ans"
	case sunHours > 1900:
		return "10 à 12 ans"
	default:
		return "12 à 15 ans"
	}
}

func isUrban(population *int) bool {
	return population != nil && *population > urbanPopulation
}
