package departmentprovider

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"pv-leads-backend/db"
	departmentstore "pv-leads-backend/lib/dicts/department/store"
	regionstore "pv-leads-backend/lib/dicts/region/store"
	"pv-leads-backend/lib/seo"
	initchecker "pv-leads-backend/lib/utils/init-checker"
	dictapimodels "pv-leads-backend/models/api/dict"
	dbmodels "pv-leads-backend/models/db"
)

var (
	ErrDepartmentNotFound = errors.New("département non trouvé")
	ErrUnknownRegion      = errors.New("région du département introuvable")
)

type Provider interface {
	List(activeOnly bool) ([]dictapimodels.DepartmentView, error)
	Create(request dictapimodels.DepartmentData) (id string, err error)
	Update(id string, request dictapimodels.DepartmentData) error
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:       departmentstore.NewInstance(db.DB),
		regionStore: regionstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"regionStore", instance.regionStore,
	)
	Instance = instance
}

type impl struct {
	store       departmentstore.Provider
	regionStore regionstore.Provider
}

func (i impl) List(activeOnly bool) ([]dictapimodels.DepartmentView, error) {
	list, err := i.store.List(activeOnly)
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.DepartmentView, 0, len(list))
	for _, rec := range list {
		result = append(result, dictapimodels.DepartmentConvert(rec))
	}
	return result, nil
}

func (i impl) Create(request dictapimodels.DepartmentData) (id string, err error) {
	if err = i.checkRegion(request.RegionID); err != nil {
		return "", err
	}
	rec := dbmodels.Department{
		Name:     request.Name,
		Slug:     request.Slug,
		Code:     request.Code,
		RegionID: request.RegionID,
		Active:   true,
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
	log.WithField("department_id", id).WithField("slug", rec.Slug).Info("département créé")
	return id, nil
}

func (i impl) Update(id string, request dictapimodels.DepartmentData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrDepartmentNotFound
	}
	if err = i.checkRegion(request.RegionID); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"Name":     request.Name,
		"Code":     request.Code,
		"RegionID": request.RegionID,
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
	log.WithField("department_id", id).Info("département mis à jour")
	return nil
}

func (i impl) Delete(id string) error {
	if err := i.store.Delete(id); err != nil {
		return err
	}
	log.WithField("department_id", id).Info("département supprimé")
	return nil
}

func (i impl) checkRegion(regionID string) error {
	region, err := i.regionStore.GetByID(regionID)
	if err != nil {
		return err
	}
	if region == nil {
		return ErrUnknownRegion
	}
	return nil
}
