package cityprovider

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	citystore "pv-leads-backend/lib/dicts/city/store"
	dictapimodels "pv-leads-backend/models/api/dict"
	dbmodels "pv-leads-backend/models/db"
)

type fakeStore struct {
	citystore.Provider
	searchErr error
	queries   []string
	slugs     map[string]bool
}

func (f *fakeStore) Search(query string, limit int) ([]dbmodels.CityWithCount, error) {
	f.queries = append(f.queries, query)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	city := dbmodels.City{Name: "Lyon", Slug: "lyon-69001"}
	return []dbmodels.CityWithCount{{City: city, BusinessCount: 3}}, nil
}

func (f *fakeStore) Create(rec dbmodels.City, skipDuplicate bool) (string, error) {
	if f.slugs[rec.Slug] {
		if skipDuplicate {
			return "", nil
		}
		return "", errors.New("la ville existe déjà")
	}
	f.slugs[rec.Slug] = true
	return "id-" + rec.Slug, nil
}

func TestSearch(t *testing.T) {
	t.Run(`short query`, func(t *testing.T) {
		store := &fakeStore{}
		i := impl{store: store}
		require.Len(t, i.Search(""), 0)
		require.Len(t, i.Search(" L "), 0)
		require.Len(t, store.queries, 0)
	})

	t.Run(`results with business count`, func(t *testing.T) {
		store := &fakeStore{}
		i := impl{store: store}
		result := i.Search(" Ly ")
		require.Len(t, result, 1)
		require.Equal(t, int64(3), result[0].BusinessCount)
		require.Equal(t, []string{"Ly"}, store.queries)
	})

	t.Run(`store error gives empty list`, func(t *testing.T) {
		i := impl{store: &fakeStore{searchErr: errors.New("db down")}}
		result := i.Search("Lyon")
		require.NotNil(t, result)
		require.Len(t, result, 0)
	})
}

func TestBulkCreate(t *testing.T) {
	lat := 45.76
	i := impl{store: &fakeStore{slugs: map[string]bool{}}}
	result := i.BulkCreate(dictapimodels.CityBulkRequest{Cities: []dictapimodels.CityData{
		{Name: "Lyon", PostalCode: "69001", Department: "Rhône", Region: "Auvergne-Rhône-Alpes"},
		{Name: "Lyon", PostalCode: "69001", Department: "Rhône", Region: "Auvergne-Rhône-Alpes"},
		{Name: "", Department: "Rhône", Region: "Auvergne-Rhône-Alpes"},
		{Name: "Villeurbanne", Department: "Rhône", Region: "Auvergne-Rhône-Alpes", Latitude: &lat},
		{Name: "Bron", Department: "Rhône", Region: "Auvergne-Rhône-Alpes"},
	}})
	require.Equal(t, 2, result.Created)
	require.Equal(t, 1, result.Skipped)
	require.Len(t, result.Failed, 2)
	require.Equal(t, 2, result.Failed[0].Index)
	require.Equal(t, 3, result.Failed[1].Index)
}

func TestCityFromRequest(t *testing.T) {
	rec := cityFromRequest(dictapimodels.CityData{Name: " Saint-Étienne ", PostalCode: "42000"})
	require.Equal(t, "Saint-Étienne", rec.Name)
	require.Equal(t, "saint-etienne-42000", rec.Slug)

	rec = cityFromRequest(dictapimodels.CityData{Name: "Île-d'Yeu"})
	require.Equal(t, "ile-d-yeu", rec.Slug)

	rec = cityFromRequest(dictapimodels.CityData{Name: "Paris", Slug: "paris"})
	require.Equal(t, "paris", rec.Slug)
}
