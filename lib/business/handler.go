package businesshandler

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"pv-leads-backend/db"
	businessstore "pv-leads-backend/lib/business/store"
	citystore "pv-leads-backend/lib/dicts/city/store"
	"pv-leads-backend/lib/seo"
	initchecker "pv-leads-backend/lib/utils/init-checker"
	businessapimodels "pv-leads-backend/models/api/business"
	dictapimodels "pv-leads-backend/models/api/dict"
	dbmodels "pv-leads-backend/models/db"
)

var ErrBusinessNotFound = errors.New("entreprise non trouvée")

type Provider interface {
	List(filter businessapimodels.BusinessFilter) (list []businessapimodels.BusinessView, rowCount int64, err error)
	Import(request businessapimodels.BusinessImportRequest) dictapimodels.BulkResult
	SetVerified(id string, verified bool) error
	Delete(ids []string) (int64, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:     businessstore.NewInstance(db.DB),
		cityStore: citystore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"cityStore", instance.cityStore,
	)
	Instance = instance
}

type impl struct {
	store     businessstore.Provider
	cityStore citystore.Provider
}

func (i impl) List(filter businessapimodels.BusinessFilter) (list []businessapimodels.BusinessView, rowCount int64, err error) {
	page, limit := filter.GetPage()
	recList, rowCount, err := i.store.List(businessstore.Filter{
		Search:   strings.TrimSpace(filter.Search),
		CityID:   filter.CityID,
		Scraped:  filter.Scraped,
		Verified: filter.Verified,
	}, page, limit)
	if err != nil {
		return nil, 0, err
	}
	list = make([]businessapimodels.BusinessView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, businessapimodels.BusinessConvert(rec))
	}
	return list, rowCount, nil
}

// Import upserts scraped listings keyed by the name/address external id.
func (i impl) Import(request businessapimodels.BusinessImportRequest) dictapimodels.BulkResult {
	result := dictapimodels.BulkResult{Failed: []dictapimodels.BulkError{}}
	for k, item := range request.Businesses {
		created, err := i.importOne(item)
		if err != nil {
			result.Failed = append(result.Failed, dictapimodels.BulkError{Index: k, Name: item.Name, Error: err.Error()})
			continue
		}
		if created {
			result.Created++
		} else {
			result.Skipped++
		}
	}
	log.
		WithField("created", result.Created).
		WithField("updated", result.Skipped).
		WithField("failed", len(result.Failed)).
		Info("import des entreprises terminé")
	return result
}

func (i impl) importOne(item businessapimodels.BusinessData) (created bool, err error) {
	if err = item.Validate(); err != nil {
		return false, err
	}
	city, err := i.cityStore.GetByID(item.CityID)
	if err != nil {
		return false, err
	}
	if city == nil {
		return false, errors.New("ville de l'entreprise introuvable")
	}
	rec := dbmodels.Business{
		CityID:      city.ID,
		ExternalID:  seo.BusinessID(item.Name, item.Address),
		Name:        strings.TrimSpace(item.Name),
		Address:     item.Address,
		PostalCode:  item.PostalCode,
		Phone:       seo.CleanPhoneNumber(item.Phone),
		Email:       item.Email,
		Website:     item.Website,
		Rating:      item.Rating,
		ReviewCount: item.ReviewCount,
		Services:    item.Services,
		Scraped:     true,
	}
	if rec.PostalCode == "" {
		rec.PostalCode = city.PostalCode
	}
	existed, err := i.store.FindByExternalID(rec.ExternalID)
	if err != nil {
		return false, err
	}
	if existed != nil {
		rec.BaseModel = existed.BaseModel
		rec.Verified = existed.Verified
	}
	rec.QualityScore = seo.BusinessQualityScore(rec)
	if err = rec.Validate(); err != nil {
		return false, err
	}
	if _, err = i.store.Save(rec); err != nil {
		return false, err
	}
	return existed == nil, nil
}

func (i impl) SetVerified(id string, verified bool) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrBusinessNotFound
	}
	rec.Verified = verified
	rec.QualityScore = seo.BusinessQualityScore(*rec)
	err = i.store.Update(id, map[string]interface{}{
		"Verified":     rec.Verified,
		"QualityScore": rec.QualityScore,
	})
	if err != nil {
		return err
	}
	log.WithField("business_id", id).WithField("verified", verified).Info("vérification de l'entreprise mise à jour")
	return nil
}

func (i impl) Delete(ids []string) (int64, error) {
	count, err := i.store.Delete(ids)
	if err != nil {
		return 0, err
	}
	log.WithField("count", count).Info("entreprises supprimées")
	return count, nil
}
