package internallinking

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	dbmodels "pv-leads-backend/models/db"
)

const (
	DefaultLimit = 10

	earthRadiusKm = 6371.0

	nearbyTake            = 5
	sameDepartmentTake    = 3
	similarPopulationTake = 2

	// ±20% band, compared as 5*candidate against 4*target and 6*target to stay in integers.
	bandDenominator = 5
	bandLow         = 4
	bandHigh        = 6
)

var ErrCityNotFound = errors.New("ville non trouvée")

type RelatedCity struct {
	City   dbmodels.City
	Reason Reason
}

// DistanceKm returns the rounded distance for nearby entries.
func (r RelatedCity) DistanceKm() (int, bool) {
	if nearby, ok := r.Reason.(Nearby); ok {
		return nearby.DistanceKm, true
	}
	return 0, false
}

// RelatedCities resolves targetID inside pool and ranks the other pool members.
func RelatedCities(targetID string, pool []dbmodels.City, limit int) ([]RelatedCity, error) {
	for k := range pool {
		if pool[k].ID == targetID {
			return Rank(pool[k], pool, limit), nil
		}
	}
	return nil, ErrCityNotFound
}

// Rank builds the nearby, same-department and similar-population tiers for target.
// The target itself and duplicate ids in pool are ignored. A non-positive limit means DefaultLimit.
func Rank(target dbmodels.City, pool []dbmodels.City, limit int) []RelatedCity {
	if limit <= 0 {
		limit = DefaultLimit
	}
	candidates := uniqueCandidates(target.ID, pool)
	selected := make(map[string]bool, len(candidates))
	result := make([]RelatedCity, 0, nearbyTake+sameDepartmentTake+similarPopulationTake)

	for _, item := range nearbyTier(target, candidates) {
		selected[item.City.ID] = true
		result = append(result, item)
	}

	sameDepartment := make([]dbmodels.City, 0)
	for _, city := range candidates {
		if selected[city.ID] || city.Department != target.Department {
			continue
		}
		sameDepartment = append(sameDepartment, city)
	}
	for _, city := range takeByPopulation(sameDepartment, sameDepartmentTake) {
		selected[city.ID] = true
		result = append(result, RelatedCity{City: city, Reason: SameDepartment{}})
	}

	if target.Population != nil {
		similar := make([]dbmodels.City, 0)
		for _, city := range candidates {
			if selected[city.ID] || city.Region != target.Region || city.Population == nil {
				continue
			}
			if !withinPopulationBand(*target.Population, *city.Population) {
				continue
			}
			similar = append(similar, city)
		}
		for _, city := range takeByPopulation(similar, similarPopulationTake) {
			selected[city.ID] = true
			result = append(result, RelatedCity{City: city, Reason: SimilarPopulation{}})
		}
	}

	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

func withinPopulationBand(target, candidate int) bool {
	t, c := int64(target), int64(candidate)
	return c*bandDenominator >= t*bandLow && c*bandDenominator <= t*bandHigh
}

func uniqueCandidates(targetID string, pool []dbmodels.City) []dbmodels.City {
	seen := make(map[string]bool, len(pool))
	result := make([]dbmodels.City, 0, len(pool))
	for _, city := range pool {
		if city.ID == targetID || seen[city.ID] {
			continue
		}
		seen[city.ID] = true
		result = append(result, city)
	}
	return result
}

func nearbyTier(target dbmodels.City, candidates []dbmodels.City) []RelatedCity {
	if !target.HasCoordinates() {
		return nil
	}
	type withDistance struct {
		city     dbmodels.City
		distance float64
	}
	list := make([]withDistance, 0, len(candidates))
	for _, city := range candidates {
		if !city.HasCoordinates() {
			continue
		}
		list = append(list, withDistance{
			city:     city,
			distance: Distance(*target.Latitude, *target.Longitude, *city.Latitude, *city.Longitude),
		})
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].distance < list[j].distance
	})
	if len(list) > nearbyTake {
		list = list[:nearbyTake]
	}
	result := make([]RelatedCity, 0, len(list))
	for _, item := range list {
		result = append(result, RelatedCity{
			City:   item.city,
			Reason: Nearby{DistanceKm: int(math.Round(item.distance))},
		})
	}
	return result
}

// takeByPopulation sorts by population desc, unknown population last, and keeps the first n.
func takeByPopulation(list []dbmodels.City, n int) []dbmodels.City {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i].Population, list[j].Population
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a > *b
		}
	})
	if len(list) > n {
		list = list[:n]
	}
	return list
}

// Distance is the haversine great-circle distance in kilometres.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func toRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}
