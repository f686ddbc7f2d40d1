package dashboardhandler

import (
	"time"

	"pv-leads-backend/db"
	businessstore "pv-leads-backend/lib/business/store"
	citystore "pv-leads-backend/lib/dicts/city/store"
	leadstore "pv-leads-backend/lib/lead/store"
	initchecker "pv-leads-backend/lib/utils/init-checker"
	"pv-leads-backend/models"
	adminpanelapimodels "pv-leads-backend/models/api/admin-panel"
	leadapimodels "pv-leads-backend/models/api/lead"
)

const latestLeadsLimit = 5

type Provider interface {
	Stats() (adminpanelapimodels.DashboardView, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		leadStore:     leadstore.NewInstance(db.DB),
		cityStore:     citystore.NewInstance(db.DB),
		businessStore: businessstore.NewInstance(db.DB),
		now:           time.Now,
	}
	initchecker.CheckInit(
		"leadStore", instance.leadStore,
		"cityStore", instance.cityStore,
		"businessStore", instance.businessStore,
	)
	Instance = instance
}

type impl struct {
	leadStore     leadstore.Provider
	cityStore     citystore.Provider
	businessStore businessstore.Provider
	now           func() time.Time
}

func (i impl) Stats() (result adminpanelapimodels.DashboardView, err error) {
	if result.TotalLeads, err = i.leadStore.Count(""); err != nil {
		return result, err
	}
	if result.NewLeads, err = i.leadStore.Count(models.LeadStatusNew); err != nil {
		return result, err
	}
	if result.LeadsLastWeek, err = i.leadStore.CountSince(i.now().AddDate(0, 0, -7)); err != nil {
		return result, err
	}
	if result.TotalCities, err = i.cityStore.Count(); err != nil {
		return result, err
	}
	if result.TotalBusinesses, err = i.businessStore.Count(); err != nil {
		return result, err
	}
	byStatus, err := i.leadStore.CountByStatus()
	if err != nil {
		return result, err
	}
	counts := make(map[models.LeadStatus]int64, len(byStatus))
	for _, item := range byStatus {
		counts[item.Status] = item.Count
	}
	// every known status is listed, zero counts included
	result.LeadsByStatus = make([]adminpanelapimodels.StatusCount, 0, len(models.LeadStatusList))
	for _, status := range models.LeadStatusList {
		result.LeadsByStatus = append(result.LeadsByStatus, adminpanelapimodels.StatusCount{Status: status, Count: counts[status]})
	}
	latest, err := i.leadStore.Latest(latestLeadsLimit)
	if err != nil {
		return result, err
	}
	result.LatestLeads = make([]leadapimodels.LeadView, 0, len(latest))
	for _, rec := range latest {
		result.LatestLeads = append(result.LatestLeads, leadapimodels.LeadConvert(rec))
	}
	return result, nil
}
