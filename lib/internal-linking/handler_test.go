package internallinking

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	citystore "pv-leads-backend/lib/dicts/city/store"
	dbmodels "pv-leads-backend/models/db"
)

type fakeCityStore struct {
	citystore.Provider
	cities  []dbmodels.City
	bboxErr error
	calls   []string
}

func (f *fakeCityStore) GetByID(id string) (*dbmodels.City, error) {
	for k := range f.cities {
		if f.cities[k].ID == id {
			return &f.cities[k], nil
		}
	}
	return nil, nil
}

func (f *fakeCityStore) ListInBoundingBox(lat, lon, delta float64, limit int) ([]dbmodels.City, error) {
	f.calls = append(f.calls, "bbox")
	if f.bboxErr != nil {
		return nil, f.bboxErr
	}
	result := []dbmodels.City{}
	for _, city := range f.cities {
		if city.HasCoordinates() && *city.Latitude >= lat-delta && *city.Latitude <= lat+delta &&
			*city.Longitude >= lon-delta && *city.Longitude <= lon+delta {
			result = append(result, city)
		}
	}
	return result, nil
}

func (f *fakeCityStore) ListByDepartment(department string, limit int) ([]dbmodels.City, error) {
	f.calls = append(f.calls, "department")
	result := []dbmodels.City{}
	for _, city := range f.cities {
		if city.Department == department {
			result = append(result, city)
		}
	}
	return result, nil
}

func (f *fakeCityStore) ListByPopulationBand(region string, min, max int, limit int) ([]dbmodels.City, error) {
	f.calls = append(f.calls, "band")
	result := []dbmodels.City{}
	for _, city := range f.cities {
		if city.Region == region && city.Population != nil && *city.Population >= min && *city.Population <= max {
			result = append(result, city)
		}
	}
	return result, nil
}

func TestHandler(t *testing.T) {
	boulogne := newCity("boulogne", "Boulogne-Billancourt", "Hauts-de-Seine", "Île-de-France",
		intPtr(121583), floatPtr(48.8397), floatPtr(2.2399))
	marseille := newCity("marseille", "Marseille", "Bouches-du-Rhône", "Provence-Alpes-Côte d'Azur",
		intPtr(870731), floatPtr(43.2965), floatPtr(5.3698))

	t.Run(`related cities from store pool`, func(t *testing.T) {
		store := &fakeCityStore{cities: []dbmodels.City{paris(), boulogne, marseille}}
		i := impl{store: store}
		result, err := i.RelatedCities("paris", 10)
		require.Nil(t, err)
		require.Len(t, result, 1)
		require.Equal(t, "boulogne", result[0].City.ID)
		require.Equal(t, []string{"bbox", "department", "band"}, store.calls)
	})

	t.Run(`unknown city`, func(t *testing.T) {
		i := impl{store: &fakeCityStore{}}
		_, err := i.RelatedCities("paris", 10)
		require.ErrorIs(t, err, ErrCityNotFound)
	})

	t.Run(`store failure`, func(t *testing.T) {
		store := &fakeCityStore{cities: []dbmodels.City{paris()}, bboxErr: errors.New("db down")}
		i := impl{store: store}
		_, err := i.RelatedCities("paris", 10)
		require.NotNil(t, err)
		require.False(t, errors.Is(err, ErrCityNotFound))
	})

	t.Run(`sparse city only asks the department`, func(t *testing.T) {
		store := &fakeCityStore{}
		i := impl{store: store}
		result, err := i.RelatedTo(newCity("x", "X", "Gers", "", nil, nil, nil), 10)
		require.Nil(t, err)
		require.Len(t, result, 0)
		require.Equal(t, []string{"department"}, store.calls)
	})
}

func TestPopulationBand(t *testing.T) {
	low, high := PopulationBand(1000)
	require.Equal(t, 800, low)
	require.Equal(t, 1200, high)

	low, high = PopulationBand(12)
	require.Equal(t, 10, low)
	require.Equal(t, 14, high)
	require.True(t, withinPopulationBand(12, low))
	require.False(t, withinPopulationBand(12, low-1))
	require.True(t, withinPopulationBand(12, high))
	require.False(t, withinPopulationBand(12, high+1))
}
