package contentgenerator

import (
	"math"

	dbmodels "pv-leads-backend/models/db"
)

type FAQItem struct {
	Question string
	Answer   string
}

type Content struct {
	Intro               string
	Benefits            []string
	FAQ                 []FAQItem
	ProcessText         string
	WhyRGEText          string
	LocalAdvantagesText string
}

type Generator struct {
	sunHours SunHoursTable
}

func NewGenerator(sunHours SunHoursTable) *Generator {
	if sunHours == nil {
		sunHours = DefaultSunHoursTable()
	}
	return &Generator{sunHours: sunHours}
}

func (g *Generator) SunHours(region string) int {
	return g.sunHours.Hours(region)
}

// Generate returns the page copy for city. The result only depends on its arguments.
func (g *Generator) Generate(city dbmodels.City, businessCount int) Content {
	v := newVars(city, businessCount, g.sunHours.Hours(city.Region))
	climate := Climate(v.SunHours)

	benefits := make([]string, 0, 6)
	switch {
	case climate == ClimateSunny:
		benefits = append(benefits, sunnyBenefits...)
	case isUrban(city.Population):
		benefits = append(benefits, urbanBenefits...)
	default:
		benefits = append(benefits, moderateBenefits...)
	}
	benefits = append(benefits, commonBenefits(v)[:3]...)

	return Content{
		Intro:               introTemplates[VariantIndex(len(introTemplates), city.Name)](v),
		Benefits:            benefits,
		FAQ:                 faq(v),
		ProcessText:         processTemplates[VariantIndex(len(processTemplates), city.Name, city.PostalCode)](v),
		WhyRGEText:          whyRGETemplates[VariantIndex(len(whyRGETemplates), city.Name, city.Department)](v),
		LocalAdvantagesText: localAdvantagesTemplates[climate](v),
	}
}

// VariantIndex picks a template in [0, n) from the sum of the seed runes.
// Identical seeds always give the same index.
func VariantIndex(n int, seeds ...string) int {
	if n <= 1 {
		return 0
	}
	sum := 0
	for _, seed := range seeds {
		for _, r := range seed {
			sum += int(r)
		}
	}
	return sum % n
}

type vars struct {
	Name          string
	PostalCode    string
	Department    string
	Region        string
	BusinessCount int
	SunHours      int
	Production    int
	ROI           string
}

func newVars(city dbmodels.City, businessCount, sunHours int) vars {
	if businessCount < 0 {
		businessCount = 0
	}
	return vars{
		Name:          city.Name,
		PostalCode:    city.PostalCode,
		Department:    city.Department,
		Region:        city.Region,
		BusinessCount: businessCount,
		SunHours:      sunHours,
		Production:    int(math.Round(float64(sunHours) / 1000 * 1000)),
		ROI:           returnOnInvestment(sunHours),
	}
}

// plural returns the "s" suffix for counts above one.
func plural(count int) string {
	if count > 1 {
		return "s"
	}
	return ""
}
