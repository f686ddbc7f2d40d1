package sitemap

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"pv-leads-backend/config"
	"pv-leads-backend/db"
	citystore "pv-leads-backend/lib/dicts/city/store"
	departmentstore "pv-leads-backend/lib/dicts/department/store"
	regionstore "pv-leads-backend/lib/dicts/region/store"
	staticpagestore "pv-leads-backend/lib/static-page/store"
	initchecker "pv-leads-backend/lib/utils/init-checker"
)

const (
	xmlns      = "http://www.sitemaps.org/schemas/sitemap/0.9"
	dateLayout = "2006-01-02"

	ChangeDaily  = "daily"
	ChangeWeekly = "weekly"
)

type URL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

type Provider interface {
	URLs() []URL
	KindURLs(kind string) ([]string, error)
	Sitemap() ([]byte, error)
	Robots() string
}

var Instance Provider

func NewHandler() {
	instance := impl{
		cityStore:       citystore.NewInstance(db.DB),
		departmentStore: departmentstore.NewInstance(db.DB),
		regionStore:     regionstore.NewInstance(db.DB),
		pageStore:       staticpagestore.NewInstance(db.DB),
		baseURL:         strings.TrimRight(config.Conf.Site.BaseURL, "/"),
		now:             time.Now,
	}
	initchecker.CheckInit(
		"cityStore", instance.cityStore,
		"departmentStore", instance.departmentStore,
		"regionStore", instance.regionStore,
		"pageStore", instance.pageStore,
	)
	Instance = instance
}

type impl struct {
	cityStore       citystore.Provider
	departmentStore departmentstore.Provider
	regionStore     regionstore.Provider
	pageStore       staticpagestore.Provider
	baseURL         string
	now             func() time.Time
}

// URLs always contains the static pages. Database pages are added only when
// every list could be read.
func (i impl) URLs() []URL {
	today := i.now().Format(dateLayout)
	static := []URL{
		{Loc: i.baseURL, LastMod: today, ChangeFreq: ChangeDaily, Priority: 1.0},
		{Loc: i.baseURL + "/photovoltaique", LastMod: today, ChangeFreq: ChangeDaily, Priority: 0.9},
	}
	dynamic, err := i.dynamicURLs()
	if err != nil {
		log.WithError(err).Warn("base de données indisponible, sitemap limité aux pages statiques")
		return static
	}
	return append(static, dynamic...)
}

func (i impl) dynamicURLs() ([]URL, error) {
	cities, err := i.cityStore.ListWithBusinessCount()
	if err != nil {
		return nil, err
	}
	departments, err := i.departmentStore.List(true)
	if err != nil {
		return nil, err
	}
	regions, err := i.regionStore.List(true)
	if err != nil {
		return nil, err
	}
	result := make([]URL, 0, len(cities)+len(departments)+len(regions))
	for _, city := range cities {
		priority := 0.6
		if city.BusinessCount > 0 {
			priority = 0.8
		}
		result = append(result, URL{
			Loc:        CityURL(i.baseURL, city.Slug),
			LastMod:    city.UpdatedAt.Format(dateLayout),
			ChangeFreq: ChangeWeekly,
			Priority:   priority,
		})
	}
	for _, department := range departments {
		result = append(result, URL{
			Loc:        DepartmentURL(i.baseURL, department.Slug),
			LastMod:    department.UpdatedAt.Format(dateLayout),
			ChangeFreq: ChangeWeekly,
			Priority:   0.7,
		})
	}
	for _, region := range regions {
		result = append(result, URL{
			Loc:        RegionURL(i.baseURL, region.Slug),
			LastMod:    region.UpdatedAt.Format(dateLayout),
			ChangeFreq: ChangeWeekly,
			Priority:   0.7,
		})
	}
	return result, nil
}

func (i impl) Sitemap() ([]byte, error) {
	body, err := xml.MarshalIndent(urlSet{Xmlns: xmlns, URLs: i.URLs()}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

func (i impl) Robots() string {
	return Robots(i.baseURL)
}

func Robots(baseURL string) string {
	var b strings.Builder
	b.WriteString("User-Agent: *\nAllow: /\nDisallow: /api/\nDisallow: /admin/\nDisallow: /*?*\n\n")
	b.WriteString("User-Agent: Googlebot\nAllow: /\nDisallow: /api/\nDisallow: /admin/\n\n")
	b.WriteString(fmt.Sprintf("Sitemap: %s/sitemap.xml\n", strings.TrimRight(baseURL, "/")))
	return b.String()
}
