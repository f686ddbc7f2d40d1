package citypage

import (
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"pv-leads-backend/db"
	businessstore "pv-leads-backend/lib/business/store"
	contentgenerator "pv-leads-backend/lib/content-generator"
	cityprovider "pv-leads-backend/lib/dicts/city"
	citystore "pv-leads-backend/lib/dicts/city/store"
	departmentprovider "pv-leads-backend/lib/dicts/department"
	departmentstore "pv-leads-backend/lib/dicts/department/store"
	regionprovider "pv-leads-backend/lib/dicts/region"
	regionstore "pv-leads-backend/lib/dicts/region/store"
	internallinking "pv-leads-backend/lib/internal-linking"
	"pv-leads-backend/lib/seo"
	initchecker "pv-leads-backend/lib/utils/init-checker"
	businessapimodels "pv-leads-backend/models/api/business"
	citypageapimodels "pv-leads-backend/models/api/citypage"
	dictapimodels "pv-leads-backend/models/api/dict"
)

const (
	departmentCityLimit = 100
	cacheCleanup        = 10 * time.Minute
)

type Provider interface {
	CityPage(slug string) (citypageapimodels.CityPageView, error)
	DepartmentPage(slug string) (citypageapimodels.DepartmentPageView, error)
	RegionPage(slug string) (citypageapimodels.RegionPageView, error)
	Flush()
}

var Instance Provider

func NewHandler(sunHours contentgenerator.SunHoursTable, ttl time.Duration) {
	instance := impl{
		cityStore:       citystore.NewInstance(db.DB),
		businessStore:   businessstore.NewInstance(db.DB),
		departmentStore: departmentstore.NewInstance(db.DB),
		regionStore:     regionstore.NewInstance(db.DB),
		linker:          internallinking.Instance,
		generator:       contentgenerator.NewGenerator(sunHours),
		cache:           cache.New(ttl, cacheCleanup),
	}
	initchecker.CheckInit(
		"cityStore", instance.cityStore,
		"businessStore", instance.businessStore,
		"departmentStore", instance.departmentStore,
		"regionStore", instance.regionStore,
		"linker", instance.linker,
	)
	Instance = instance
}

type impl struct {
	cityStore       citystore.Provider
	businessStore   businessstore.Provider
	departmentStore departmentstore.Provider
	regionStore     regionstore.Provider
	linker          internallinking.Provider
	generator       *contentgenerator.Generator
	cache           *cache.Cache
}

func (i impl) CityPage(slug string) (citypageapimodels.CityPageView, error) {
	cacheKey := "city:" + slug
	if cached, found := i.cache.Get(cacheKey); found {
		return cached.(citypageapimodels.CityPageView), nil
	}
	logger := log.WithField("slug", slug)
	city, err := i.cityStore.GetBySlug(slug)
	if err != nil {
		return citypageapimodels.CityPageView{}, err
	}
	if city == nil {
		return citypageapimodels.CityPageView{}, cityprovider.ErrCityNotFound
	}
	businesses, err := i.businessStore.ListByCity(city.ID)
	if err != nil {
		return citypageapimodels.CityPageView{}, err
	}
	businessCount := len(businesses)

	result := citypageapimodels.CityPageView{
		City:            dictapimodels.CityConvert(*city),
		H1:              contentgenerator.H1(*city),
		Title:           contentgenerator.PageTitle(*city),
		MetaDescription: seo.MetaDescription(contentgenerator.MetaDescription(*city, businessCount)),
		Keywords:        seo.CityKeywords(*city),
		BusinessCount:   businessCount,
		Businesses:      make([]businessapimodels.BusinessView, 0, businessCount),
		Content: citypageapimodels.ContentConvert(
			i.generator.Generate(*city, businessCount),
			i.generator.SunHours(city.Region),
		),
	}
	for _, rec := range businesses {
		result.Businesses = append(result.Businesses, businessapimodels.BusinessConvert(rec))
	}

	// the related cities block is optional, the page renders without it
	related, err := i.linker.RelatedTo(*city, internallinking.DefaultLimit)
	if err != nil {
		logger.WithError(err).Warn("villes associées indisponibles")
	} else {
		result.RelatedCities = citypageapimodels.RelatedCityListConvert(related)
	}

	i.cache.Set(cacheKey, result, cache.DefaultExpiration)
	return result, nil
}

func (i impl) DepartmentPage(slug string) (citypageapimodels.DepartmentPageView, error) {
	cacheKey := "department:" + slug
	if cached, found := i.cache.Get(cacheKey); found {
		return cached.(citypageapimodels.DepartmentPageView), nil
	}
	department, err := i.departmentStore.GetBySlug(slug)
	if err != nil {
		return citypageapimodels.DepartmentPageView{}, err
	}
	if department == nil || !department.Active {
		return citypageapimodels.DepartmentPageView{}, departmentprovider.ErrDepartmentNotFound
	}
	cities, err := i.cityStore.ListByDepartment(department.Name, departmentCityLimit)
	if err != nil {
		return citypageapimodels.DepartmentPageView{}, errors.Wrap(err, "erreur de composition de la page département")
	}
	cityCount, err := i.cityStore.CountByDepartment(department.Name)
	if err != nil {
		return citypageapimodels.DepartmentPageView{}, errors.Wrap(err, "erreur de composition de la page département")
	}
	result := citypageapimodels.DepartmentPageView{
		Department: dictapimodels.DepartmentConvert(*department),
		Cities:     make([]dictapimodels.CityShortView, 0, len(cities)),
		CityCount:  cityCount,
	}
	for _, rec := range cities {
		result.Cities = append(result.Cities, dictapimodels.CityShortConvert(rec))
	}
	i.cache.Set(cacheKey, result, cache.DefaultExpiration)
	return result, nil
}

func (i impl) RegionPage(slug string) (citypageapimodels.RegionPageView, error) {
	cacheKey := "region:" + slug
	if cached, found := i.cache.Get(cacheKey); found {
		return cached.(citypageapimodels.RegionPageView), nil
	}
	region, err := i.regionStore.GetBySlug(slug)
	if err != nil {
		return citypageapimodels.RegionPageView{}, err
	}
	if region == nil || !region.Active {
		return citypageapimodels.RegionPageView{}, regionprovider.ErrRegionNotFound
	}
	departments, err := i.departmentStore.ListByRegion(region.ID)
	if err != nil {
		return citypageapimodels.RegionPageView{}, errors.Wrap(err, "erreur de composition de la page région")
	}
	result := citypageapimodels.RegionPageView{
		Region:      dictapimodels.RegionConvert(*region),
		Departments: make([]dictapimodels.DepartmentView, 0, len(departments)),
	}
	for _, rec := range departments {
		result.Departments = append(result.Departments, dictapimodels.DepartmentWithCountConvert(rec))
	}
	i.cache.Set(cacheKey, result, cache.DefaultExpiration)
	return result, nil
}

func (i impl) Flush() {
	i.cache.Flush()
}
