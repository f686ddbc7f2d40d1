package cityprovider

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"pv-leads-backend/db"
	"pv-leads-backend/lib/dicts/city/store"
	internallinking "pv-leads-backend/lib/internal-linking"
	"pv-leads-backend/lib/seo"
	initchecker "pv-leads-backend/lib/utils/init-checker"
	dictapimodels "pv-leads-backend/models/api/dict"
	dbmodels "pv-leads-backend/models/db"
)

const (
	searchMinLength = 2
	searchLimit     = 10
)

// ErrCityNotFound is the same value as internallinking.ErrCityNotFound.
var ErrCityNotFound = internallinking.ErrCityNotFound

type Provider interface {
	List() ([]dictapimodels.CityShortView, error)
	Search(query string) []dictapimodels.CitySearchView
	Get(id string) (dictapimodels.CityView, error)
	Find(filter dictapimodels.CityFilter) (list []dictapimodels.CityView, rowCount int64, err error)
	Create(request dictapimodels.CityData) (id string, err error)
	BulkCreate(request dictapimodels.CityBulkRequest) dictapimodels.BulkResult
	Update(id string, request dictapimodels.CityData) error
	Delete(id string) error
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

func (i impl) List() ([]dictapimodels.CityShortView, error) {
	recList, err := i.store.ListAll()
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.CityShortView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.CityShortConvert(rec))
	}
	return result, nil
}

// Search never fails: short queries and store errors give an empty list.
func (i impl) Search(query string) []dictapimodels.CitySearchView {
	result := make([]dictapimodels.CitySearchView, 0)
	query = strings.TrimSpace(query)
	if len([]rune(query)) < searchMinLength {
		return result
	}
	recList, err := i.store.Search(query, searchLimit)
	if err != nil {
		log.WithError(err).WithField("query", query).Error("erreur de recherche des villes")
		return result
	}
	for _, rec := range recList {
		result = append(result, dictapimodels.CitySearchConvert(rec))
	}
	return result
}

func (i impl) Get(id string) (dictapimodels.CityView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.CityView{}, err
	}
	if rec == nil {
		return dictapimodels.CityView{}, ErrCityNotFound
	}
	return dictapimodels.CityConvert(*rec), nil
}

func (i impl) Find(filter dictapimodels.CityFilter) (list []dictapimodels.CityView, rowCount int64, err error) {
	page, limit := filter.GetPage()
	recList, rowCount, err := i.store.Find(filter.Name, page, limit)
	if err != nil {
		return nil, 0, err
	}
	list = make([]dictapimodels.CityView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.CityConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) Create(request dictapimodels.CityData) (id string, err error) {
	rec := cityFromRequest(request)
	if err = rec.Validate(); err != nil {
		return "", err
	}
	id, err = i.store.Create(rec, false)
	if err != nil {
		return "", err
	}
	log.
		WithField("city_id", id).
		WithField("slug", rec.Slug).
		Info("ville créée")
	return id, nil
}

func (i impl) BulkCreate(request dictapimodels.CityBulkRequest) dictapimodels.BulkResult {
	result := dictapimodels.BulkResult{Failed: []dictapimodels.BulkError{}}
	for k, item := range request.Cities {
		if err := item.Validate(); err != nil {
			result.Failed = append(result.Failed, dictapimodels.BulkError{Index: k, Name: item.Name, Error: err.Error()})
			continue
		}
		rec := cityFromRequest(item)
		if err := rec.Validate(); err != nil {
			result.Failed = append(result.Failed, dictapimodels.BulkError{Index: k, Name: item.Name, Error: err.Error()})
			continue
		}
		id, err := i.store.Create(rec, true)
		if err != nil {
			result.Failed = append(result.Failed, dictapimodels.BulkError{Index: k, Name: item.Name, Error: err.Error()})
			continue
		}
		if id == "" {
			result.Skipped++
			continue
		}
		result.Created++
	}
	log.
		WithField("created", result.Created).
		WithField("skipped", result.Skipped).
		WithField("failed", len(result.Failed)).
		Info("import de villes terminé")
	return result
}

func (i impl) Update(id string, request dictapimodels.CityData) error {
	logger := log.WithField("city_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrCityNotFound
	}
	updated := cityFromRequest(request)
	updated.ID = id
	if err = updated.Validate(); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"Name":              updated.Name,
		"Slug":              updated.Slug,
		"PostalCode":        updated.PostalCode,
		"Department":        updated.Department,
		"Region":            updated.Region,
		"Population":        updated.Population,
		"Latitude":          updated.Latitude,
		"Longitude":         updated.Longitude,
		"CustomTitle":       updated.CustomTitle,
		"CustomDescription": updated.CustomDescription,
	}
	if err = i.store.Update(id, updMap); err != nil {
		logger.WithError(err).Error("erreur de mise à jour de la ville")
		return err
	}
	logger.Info("ville mise à jour")
	return nil
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrCityNotFound
	}
	if err = i.store.Delete(id); err != nil {
		return err
	}
	log.WithField("city_id", id).Info("ville supprimée")
	return nil
}

// cityFromRequest fills the slug from name and postal code when it is not given.
func cityFromRequest(request dictapimodels.CityData) dbmodels.City {
	slug := request.Slug
	if slug == "" {
		slug = seo.Slugify(request.Name)
		if request.PostalCode != "" {
			slug = seo.Slugify(fmt.Sprintf("%s %s", request.Name, request.PostalCode))
		}
	}
	return dbmodels.City{
		Name:              strings.TrimSpace(request.Name),
		Slug:              slug,
		PostalCode:        request.PostalCode,
		Department:        request.Department,
		Region:            request.Region,
		Population:        request.Population,
		Latitude:          request.Latitude,
		Longitude:         request.Longitude,
		CustomTitle:       request.CustomTitle,
		CustomDescription: request.CustomDescription,
	}
}
