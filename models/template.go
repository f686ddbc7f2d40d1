package models

type LeadTemplateData struct {
	SiteName    string
	Name        string
	Email       string
	Phone       string
	CityName    string
	PostalCode  string
	Department  string
	ProjectType string
	Message     string
	Budget      string
	Surface     int
	CreatedAt   string
	AdminURL    string
}
