package citypageapimodels

import (
	contentgenerator "pv-leads-backend/lib/content-generator"
	internallinking "pv-leads-backend/lib/internal-linking"
	businessapimodels "pv-leads-backend/models/api/business"
	dictapimodels "pv-leads-backend/models/api/dict"
)

type RelatedCityView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Department  string `json:"department"`
	Reason      string `json:"reason"`
	ReasonLabel string `json:"reason_label"`
	DistanceKm  *int   `json:"distance_km,omitempty"`
}

type FAQItemView struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type ContentView struct {
	Intro               string        `json:"intro"`
	Benefits            []string      `json:"benefits"`
	FAQ                 []FAQItemView `json:"faq"`
	ProcessText         string        `json:"process_text"`
	WhyRGEText          string        `json:"why_rge_text"`
	LocalAdvantagesText string        `json:"local_advantages_text"`
	SunHours            int           `json:"sun_hours"`
}

type CityPageView struct {
	City            dictapimodels.CityView           `json:"city"`
	H1              string                           `json:"h1"`
	Title           string                           `json:"title"`
	MetaDescription string                           `json:"meta_description"`
	Keywords        []string                         `json:"keywords"`
	BusinessCount   int                              `json:"business_count"`
	Businesses      []businessapimodels.BusinessView `json:"businesses"`
	Content         ContentView                      `json:"content"`
	RelatedCities   []RelatedCityView                `json:"related_cities,omitempty"`
}

type DepartmentPageView struct {
	Department dictapimodels.DepartmentView  `json:"department"`
	Cities     []dictapimodels.CityShortView `json:"cities"`
	CityCount  int64                         `json:"city_count"`
}

type RegionPageView struct {
	Region      dictapimodels.RegionView       `json:"region"`
	Departments []dictapimodels.DepartmentView `json:"departments"`
}

func RelatedCityConvert(item internallinking.RelatedCity) RelatedCityView {
	tag := item.Reason.Tag()
	result := RelatedCityView{
		ID:          item.City.ID,
		Name:        item.City.Name,
		Slug:        item.City.Slug,
		Department:  item.City.Department,
		Reason:      string(tag),
		ReasonLabel: tag.ToHuman(),
	}
	if distance, ok := item.DistanceKm(); ok {
		result.DistanceKm = &distance
	}
	return result
}

func RelatedCityListConvert(list []internallinking.RelatedCity) []RelatedCityView {
	result := make([]RelatedCityView, 0, len(list))
	for _, item := range list {
		result = append(result, RelatedCityConvert(item))
	}
	return result
}

func ContentConvert(content contentgenerator.Content, sunHours int) ContentView {
	faq := make([]FAQItemView, 0, len(content.FAQ))
	for _, item := range content.FAQ {
		faq = append(faq, FAQItemView{Question: item.Question, Answer: item.Answer})
	}
	return ContentView{
		Intro:               content.Intro,
		Benefits:            content.Benefits,
		FAQ:                 faq,
		ProcessText:         content.ProcessText,
		WhyRGEText:          content.WhyRGEText,
		LocalAdvantagesText: content.LocalAdvantagesText,
		SunHours:            sunHours,
	}
}
