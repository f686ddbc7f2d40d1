package adminpanelapimodels

import (
	"pv-leads-backend/models"
	leadapimodels "pv-leads-backend/models/api/lead"
)

type StatusCount struct {
	Status models.LeadStatus `json:"status"`
	Count  int64             `json:"count"`
}

type DashboardView struct {
	TotalLeads      int64                    `json:"total_leads"`
	NewLeads        int64                    `json:"new_leads"`
	LeadsLastWeek   int64                    `json:"leads_last_week"`
	TotalCities     int64                    `json:"total_cities"`
	TotalBusinesses int64                    `json:"total_businesses"`
	LeadsByStatus   []StatusCount            `json:"leads_by_status"`
	LatestLeads     []leadapimodels.LeadView `json:"latest_leads"`
}
