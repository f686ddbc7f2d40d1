package dbmodels

import (
	"pv-leads-backend/models"
	"time"
)

type Lead struct {
	BaseModel
	Name          string `gorm:"type:varchar(255)"`
	Email         string `gorm:"type:varchar(255)"`
	Phone         string `gorm:"type:varchar(30)"`
	CityID        string `gorm:"type:varchar(36);index"`
	City          *City
	PostalCode    string             `gorm:"type:varchar(10)"`
	ProjectType   models.ProjectType `gorm:"type:varchar(50)"`
	Message       string
	Budget        string `gorm:"type:varchar(100)"`
	Surface       *int
	Status        models.LeadStatus `gorm:"index;type:varchar(50)"`
	Source        string            `gorm:"type:varchar(500)"`
	IpAddress     string            `gorm:"type:varchar(100)"`
	UserAgent     string            `gorm:"type:varchar(500)"`
	NotifiedAt    *time.Time
	NotifyAttempt int
}

type LeadStatusCount struct {
	Status models.LeadStatus
	Count  int64
}
