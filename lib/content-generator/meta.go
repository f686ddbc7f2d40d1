package contentgenerator

import (
	"fmt"

	dbmodels "pv-leads-backend/models/db"
)

func H1(city dbmodels.City) string {
	return fmt.Sprintf("Installateur Panneaux Solaires à %s (%s)", city.Name, city.PostalCode)
}

// PageTitle prefers the title set in the back-office.
func PageTitle(city dbmodels.City) string {
	if city.CustomTitle != "" {
		return city.CustomTitle
	}
	return fmt.Sprintf("Installateur Panneaux Solaires %s (%s) | Devis Gratuit", city.Name, city.PostalCode)
}

func MetaDescription(city dbmodels.City, businessCount int) string {
	if city.CustomDescription != "" {
		return city.CustomDescription
	}
	return fmt.Sprintf("Trouvez les meilleurs installateurs de panneaux solaires à %s (%s). %d professionnel%s certifié%s RGE. "+
		"Comparez et demandez un devis gratuit.",
		city.Name, city.PostalCode, businessCount, plural(businessCount), plural(businessCount))
}
