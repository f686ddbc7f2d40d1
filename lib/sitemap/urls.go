package sitemap

import (
	"fmt"

	"github.com/pkg/errors"
)

// Page kinds an admin can list for search engine submission.
const (
	KindCities      = "cities"
	KindDepartments = "departments"
	KindRegions     = "regions"
	KindPages       = "pages"
)

var ErrUnknownKind = errors.New("type de pages inconnu")

func CityURL(baseURL, slug string) string {
	return fmt.Sprintf("%s/photovoltaique/%s", baseURL, slug)
}

func DepartmentURL(baseURL, slug string) string {
	return fmt.Sprintf("%s/photovoltaique/departement/%s", baseURL, slug)
}

func RegionURL(baseURL, slug string) string {
	return fmt.Sprintf("%s/photovoltaique/region/%s", baseURL, slug)
}

func PageURL(baseURL, slug string) string {
	return fmt.Sprintf("%s/%s", baseURL, slug)
}

// KindURLs lists the public URLs of one kind of page: every city, the active
// departments and regions, or the published static pages.
func (i impl) KindURLs(kind string) ([]string, error) {
	switch kind {
	case KindCities:
		cities, err := i.cityStore.ListAll()
		if err != nil {
			return nil, err
		}
		result := make([]string, 0, len(cities))
		for _, rec := range cities {
			result = append(result, CityURL(i.baseURL, rec.Slug))
		}
		return result, nil
	case KindDepartments:
		departments, err := i.departmentStore.List(true)
		if err != nil {
			return nil, err
		}
		result := make([]string, 0, len(departments))
		for _, rec := range departments {
			result = append(result, DepartmentURL(i.baseURL, rec.Slug))
		}
		return result, nil
	case KindRegions:
		regions, err := i.regionStore.List(true)
		if err != nil {
			return nil, err
		}
		result := make([]string, 0, len(regions))
		for _, rec := range regions {
			result = append(result, RegionURL(i.baseURL, rec.Slug))
		}
		return result, nil
	case KindPages:
		pages, err := i.pageStore.ListPublished()
		if err != nil {
			return nil, err
		}
		result := make([]string, 0, len(pages))
		for _, rec := range pages {
			result = append(result, PageURL(i.baseURL, rec.Slug))
		}
		return result, nil
	}
	return nil, errors.Wrap(ErrUnknownKind, kind)
}
