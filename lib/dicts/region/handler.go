package regionprovider

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"pv-leads-backend/db"
	regionstore "pv-leads-backend/lib/dicts/region/store"
	"pv-leads-backend/lib/seo"
	initchecker "pv-leads-backend/lib/utils/init-checker"
	dictapimodels "pv-leads-backend/models/api/dict"
	dbmodels "pv-leads-backend/models/db"
)

var ErrRegionNotFound = errors.New("région non trouvée")

type Provider interface {
	List(activeOnly bool) ([]dictapimodels.RegionView, error)
	Create(request dictapimodels.RegionData) (id string, err error)
	Update(id string, request dictapimodels.RegionData) error
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: regionstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store regionstore.Provider
}

func (i impl) List(activeOnly bool) ([]dictapimodels.RegionView, error) {
	list, err := i.store.List(activeOnly)
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.RegionView, 0, len(list))
	for _, rec := range list {
		result = append(result, dictapimodels.RegionConvert(rec))
	}
	return result, nil
}

func (i impl) Create(request dictapimodels.RegionData) (id string, err error) {
	rec := dbmodels.Region{
		Name:   request.Name,
		Slug:   request.Slug,
		Active: true,
	}
	if rec.Slug == "" {
		rec.Slug = seo.Slugify(request.Name)
	}
	if request.Active != nil {
		rec.Active = *request.Active
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.WithField("region_id", id).WithField("slug", rec.Slug).Info("région créée")
	return id, nil
}

func (i impl) Update(id string, request dictapimodels.RegionData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrRegionNotFound
	}
	updMap := map[string]interface{}{
		"Name": request.Name,
	}
	if request.Slug != "" {
		updMap["Slug"] = request.Slug
	}
	if request.Active != nil {
		updMap["Active"] = *request.Active
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	log.WithField("region_id", id).Info("région mise à jour")
	return nil
}

func (i impl) Delete(id string) error {
	if err := i.store.Delete(id); err != nil {
		return err
	}
	log.WithField("region_id", id).Info("région supprimée")
	return nil
}
