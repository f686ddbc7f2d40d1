package citypage

import (
	"fmt"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	businessstore "pv-leads-backend/lib/business/store"
	contentgenerator "pv-leads-backend/lib/content-generator"
	cityprovider "pv-leads-backend/lib/dicts/city"
	citystore "pv-leads-backend/lib/dicts/city/store"
	departmentprovider "pv-leads-backend/lib/dicts/department"
	departmentstore "pv-leads-backend/lib/dicts/department/store"
	internallinking "pv-leads-backend/lib/internal-linking"
	dbmodels "pv-leads-backend/models/db"
)

type fakeCityStore struct {
	citystore.Provider
	cities  map[string]dbmodels.City
	lookups int
}

func (f *fakeCityStore) GetBySlug(slug string) (*dbmodels.City, error) {
	f.lookups++
	if city, ok := f.cities[slug]; ok {
		return &city, nil
	}
	return nil, nil
}

func (f *fakeCityStore) ListByDepartment(department string, limit int) ([]dbmodels.City, error) {
	result := []dbmodels.City{}
	for _, city := range f.cities {
		if city.Department == department && len(result) < limit {
			result = append(result, city)
		}
	}
	return result, nil
}

func (f *fakeCityStore) CountByDepartment(department string) (int64, error) {
	var count int64
	for _, city := range f.cities {
		if city.Department == department {
			count++
		}
	}
	return count, nil
}

type fakeBusinessStore struct {
	businessstore.Provider
	list []dbmodels.Business
}

func (f *fakeBusinessStore) ListByCity(cityID string) ([]dbmodels.Business, error) {
	return f.list, nil
}

type fakeDepartmentStore struct {
	departmentstore.Provider
	department *dbmodels.Department
}

func (f *fakeDepartmentStore) GetBySlug(slug string) (*dbmodels.Department, error) {
	if f.department != nil && f.department.Slug == slug {
		return f.department, nil
	}
	return nil, nil
}

type fakeLinker struct {
	result []internallinking.RelatedCity
	err    error
}

func (f fakeLinker) RelatedCities(cityID string, limit int) ([]internallinking.RelatedCity, error) {
	return f.result, f.err
}

func (f fakeLinker) RelatedTo(target dbmodels.City, limit int) ([]internallinking.RelatedCity, error) {
	return f.result, f.err
}

func intPtr(v int) *int { return &v }

func lyon() dbmodels.City {
	city := dbmodels.City{
		Name:       "Lyon",
		Slug:       "lyon-69001",
		PostalCode: "69001",
		Department: "Rhône",
		Region:     "Auvergne-Rhône-Alpes",
		Population: intPtr(522969),
	}
	city.ID = "lyon"
	return city
}

func newInstance(cities *fakeCityStore, linker internallinking.Provider) impl {
	return impl{
		cityStore:       cities,
		businessStore:   &fakeBusinessStore{list: []dbmodels.Business{{Name: "Soleil Rhône"}, {Name: "PV Lyon"}}},
		departmentStore: &fakeDepartmentStore{},
		linker:          linker,
		generator:       contentgenerator.NewGenerator(contentgenerator.DefaultSunHoursTable()),
		cache:           cache.New(time.Minute, time.Minute),
	}
}

func TestCityPage(t *testing.T) {
	villeurbanne := dbmodels.City{Name: "Villeurbanne", Slug: "villeurbanne-69100", Department: "Rhône"}
	villeurbanne.ID = "villeurbanne"

	t.Run(`full page`, func(t *testing.T) {
		cities := &fakeCityStore{cities: map[string]dbmodels.City{"lyon-69001": lyon()}}
		linker := fakeLinker{result: []internallinking.RelatedCity{
			{City: villeurbanne, Reason: internallinking.Nearby{DistanceKm: 4}},
		}}
		i := newInstance(cities, linker)

		page, err := i.CityPage("lyon-69001")
		require.Nil(t, err)
		require.Equal(t, "lyon", page.City.ID)
		require.Equal(t, 2, page.BusinessCount)
		require.Len(t, page.Businesses, 2)
		require.Len(t, page.Content.FAQ, 6)
		require.Equal(t, 2100, page.Content.SunHours)
		require.Equal(t, "Installateur Panneaux Solaires à Lyon (69001)", page.H1)
		require.Len(t, page.Keywords, 8)
		require.LessOrEqual(t, len([]rune(page.MetaDescription)), 163)
		require.Len(t, page.RelatedCities, 1)
		require.Equal(t, "nearby", page.RelatedCities[0].Reason)
		require.Equal(t, 4, *page.RelatedCities[0].DistanceKm)

		_, err = i.CityPage("lyon-69001")
		require.Nil(t, err)
		require.Equal(t, 1, cities.lookups)

		i.Flush()
		_, err = i.CityPage("lyon-69001")
		require.Nil(t, err)
		require.Equal(t, 2, cities.lookups)
	})

	t.Run(`related cities failure keeps the page`, func(t *testing.T) {
		cities := &fakeCityStore{cities: map[string]dbmodels.City{"lyon-69001": lyon()}}
		i := newInstance(cities, fakeLinker{err: internallinking.ErrCityNotFound})
		page, err := i.CityPage("lyon-69001")
		require.Nil(t, err)
		require.Nil(t, page.RelatedCities)
		require.NotEmpty(t, page.Content.Intro)

		i = newInstance(cities, fakeLinker{err: errors.New("db down")})
		page, err = i.CityPage("lyon-69001")
		require.Nil(t, err)
		require.Nil(t, page.RelatedCities)
	})

	t.Run(`unknown slug`, func(t *testing.T) {
		i := newInstance(&fakeCityStore{cities: map[string]dbmodels.City{}}, fakeLinker{})
		_, err := i.CityPage("atlantide")
		require.ErrorIs(t, err, cityprovider.ErrCityNotFound)
	})
}

func TestDepartmentPage(t *testing.T) {
	department := &dbmodels.Department{Name: "Rhône", Slug: "rhone", Code: "69", Active: true}
	cities := &fakeCityStore{cities: map[string]dbmodels.City{"lyon-69001": lyon()}}
	i := newInstance(cities, fakeLinker{})
	i.departmentStore = &fakeDepartmentStore{department: department}

	page, err := i.DepartmentPage("rhone")
	require.Nil(t, err)
	require.Equal(t, int64(1), page.CityCount)
	require.Equal(t, "Lyon", page.Cities[0].Name)

	_, err = i.DepartmentPage("gers")
	require.ErrorIs(t, err, departmentprovider.ErrDepartmentNotFound)

	department.Active = false
	department.Slug = "inactive"
	_, err = i.DepartmentPage("inactive")
	require.ErrorIs(t, err, departmentprovider.ErrDepartmentNotFound)
}

func TestDepartmentPageCountsEveryCity(t *testing.T) {
	cities := &fakeCityStore{cities: map[string]dbmodels.City{}}
	for n := 0; n < departmentCityLimit+20; n++ {
		slug := fmt.Sprintf("commune-%d", n)
		cities.cities[slug] = dbmodels.City{Name: slug, Slug: slug, Department: "Nord"}
	}
	i := newInstance(cities, fakeLinker{})
	i.departmentStore = &fakeDepartmentStore{department: &dbmodels.Department{Name: "Nord", Slug: "nord", Code: "59", Active: true}}

	page, err := i.DepartmentPage("nord")
	require.Nil(t, err)
	require.Len(t, page.Cities, departmentCityLimit)
	require.Equal(t, int64(departmentCityLimit+20), page.CityCount)
}
