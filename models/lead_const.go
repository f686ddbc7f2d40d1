package models

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "nouveau"
	LeadStatusContacted LeadStatus = "contacté"
	LeadStatusQualified LeadStatus = "qualifié"
	LeadStatusConverted LeadStatus = "converti"
	LeadStatusLost      LeadStatus = "perdu"
)

var LeadStatusList = []LeadStatus{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusQualified,
	LeadStatusConverted,
	LeadStatusLost,
}

func (s LeadStatus) IsValid() bool {
	for _, status := range LeadStatusList {
		if status == s {
			return true
		}
	}
	return false
}

type ProjectType string

const (
	ProjectTypeInstallation ProjectType = "installation"
	ProjectTypeRenovation   ProjectType = "renovation"
	ProjectTypeMaintenance  ProjectType = "maintenance"
	ProjectTypeOther        ProjectType = "autre"
)

var projectTypeHumanName = map[ProjectType]string{
	ProjectTypeInstallation: "Nouvelle installation",
	ProjectTypeRenovation:   "Rénovation",
	ProjectTypeMaintenance:  "Maintenance",
	ProjectTypeOther:        "Autre",
}

func (p ProjectType) ToHuman() string {
	if human, exist := projectTypeHumanName[p]; exist {
		return human
	}
	return string(p)
}

func (p ProjectType) IsValid() bool {
	_, exist := projectTypeHumanName[p]
	return exist
}
