package internallinking

import (
	log "github.com/sirupsen/logrus"
	"pv-leads-backend/db"
	citystore "pv-leads-backend/lib/dicts/city/store"
	initchecker "pv-leads-backend/lib/utils/init-checker"
	dbmodels "pv-leads-backend/models/db"
)

const (
	boundingBoxDelta = 1.0
	boundingBoxLimit = 50
	tierPoolLimit    = 20
)

type Provider interface {
	RelatedCities(cityID string, limit int) ([]RelatedCity, error)
	RelatedTo(target dbmodels.City, limit int) ([]RelatedCity, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: citystore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store citystore.Provider
}

func (i impl) RelatedCities(cityID string, limit int) ([]RelatedCity, error) {
	target, err := i.store.GetByID(cityID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrCityNotFound
	}
	return i.RelatedTo(*target, limit)
}

func (i impl) RelatedTo(target dbmodels.City, limit int) ([]RelatedCity, error) {
	pool, err := i.candidatePool(target)
	if err != nil {
		log.
			WithError(err).
			WithField("city_id", target.ID).
			Error("erreur de récupération des villes candidates")
		return nil, err
	}
	return Rank(target, pool, limit), nil
}

// candidatePool fetches enough cities for each tier: a bounding box around the
// target, the most populated cities of its department and its population band.
func (i impl) candidatePool(target dbmodels.City) ([]dbmodels.City, error) {
	pool := make([]dbmodels.City, 0, boundingBoxLimit+2*tierPoolLimit)
	if target.HasCoordinates() {
		list, err := i.store.ListInBoundingBox(*target.Latitude, *target.Longitude, boundingBoxDelta, boundingBoxLimit)
		if err != nil {
			return nil, err
		}
		pool = append(pool, list...)
	}
	if target.Department != "" {
		list, err := i.store.ListByDepartment(target.Department, tierPoolLimit)
		if err != nil {
			return nil, err
		}
		pool = append(pool, list...)
	}
	if target.Population != nil && target.Region != "" {
		low, high := PopulationBand(*target.Population)
		list, err := i.store.ListByPopulationBand(target.Region, low, high, tierPoolLimit)
		if err != nil {
			return nil, err
		}
		pool = append(pool, list...)
	}
	return pool, nil
}

// PopulationBand returns the inclusive integer bounds of the ±20% band.
func PopulationBand(population int) (low, high int) {
	low = (population*bandLow + bandDenominator - 1) / bandDenominator
	high = population * bandHigh / bandDenominator
	return low, high
}
