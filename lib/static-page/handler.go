package staticpage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"pv-leads-backend/config"
	"pv-leads-backend/db"
	yagptclient "pv-leads-backend/lib/gpt/yagpt-client"
	"pv-leads-backend/lib/seo"
	staticpagestore "pv-leads-backend/lib/static-page/store"
	initchecker "pv-leads-backend/lib/utils/init-checker"
	pageapimodels "pv-leads-backend/models/api/page"
	dbmodels "pv-leads-backend/models/db"
)

const (
	defaultCategory      = "legal"
	generateTimeout      = 90 * time.Second
	generateInstructions = "Tu es rédacteur web pour %s, un site qui met en relation des particuliers avec des installateurs de panneaux solaires en France. " +
		"Rédige en français un contenu clair et factuel au format HTML simple (h2, p, ul, li), sans balise html ni body."
)

var (
	ErrPageNotFound       = errors.New("page non trouvée")
	ErrGenerationDisabled = errors.New("la génération de contenu n'est pas configurée")
)

type Provider interface {
	List(filter pageapimodels.PageFilter) (list []pageapimodels.PageView, rowCount int64, err error)
	Get(id string) (pageapimodels.PageView, error)
	GetPublished(slug string) (pageapimodels.PageView, error)
	Create(request pageapimodels.PageData) (id string, err error)
	Update(id string, request pageapimodels.PageData) error
	Delete(id string) error
	Generate(ctx context.Context, request pageapimodels.GenerateRequest) (pageapimodels.GenerateResponse, error)
}

var Instance Provider

// NewHandler takes a nil generator when YandexGPT is not configured.
func NewHandler(generator yagptclient.Provider) {
	instance := impl{
		store:     staticpagestore.NewInstance(db.DB),
		generator: generator,
		siteName:  config.Conf.Site.Name,
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store     staticpagestore.Provider
	generator yagptclient.Provider
	siteName  string
}

func (i impl) List(filter pageapimodels.PageFilter) (list []pageapimodels.PageView, rowCount int64, err error) {
	page, limit := filter.GetPage()
	recList, rowCount, err := i.store.List(staticpagestore.Filter{
		Category:  filter.Category,
		Published: filter.Published,
	}, page, limit)
	if err != nil {
		return nil, 0, err
	}
	list = make([]pageapimodels.PageView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, pageapimodels.PageConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) Get(id string) (pageapimodels.PageView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return pageapimodels.PageView{}, err
	}
	if rec == nil {
		return pageapimodels.PageView{}, ErrPageNotFound
	}
	return pageapimodels.PageConvert(*rec), nil
}

// GetPublished hides drafts behind the not found error.
func (i impl) GetPublished(slug string) (pageapimodels.PageView, error) {
	rec, err := i.store.GetBySlug(slug)
	if err != nil {
		return pageapimodels.PageView{}, err
	}
	if rec == nil || !rec.Published {
		return pageapimodels.PageView{}, ErrPageNotFound
	}
	return pageapimodels.PageConvert(*rec), nil
}

func (i impl) Create(request pageapimodels.PageData) (id string, err error) {
	if err = request.Validate(); err != nil {
		return "", err
	}
	rec := pageFromRequest(request)
	if err = rec.Validate(); err != nil {
		return "", err
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.WithField("page_id", id).WithField("slug", rec.Slug).Info("page créée")
	return id, nil
}

func (i impl) Update(id string, request pageapimodels.PageData) error {
	if err := request.Validate(); err != nil {
		return err
	}
	existed, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if existed == nil {
		return ErrPageNotFound
	}
	rec := pageFromRequest(request)
	updMap := map[string]interface{}{
		"Title":           rec.Title,
		"Slug":            rec.Slug,
		"Content":         rec.Content,
		"MetaTitle":       rec.MetaTitle,
		"MetaDescription": rec.MetaDescription,
		"Category":        rec.Category,
		"Published":       rec.Published,
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	log.WithField("page_id", id).Info("page mise à jour")
	return nil
}

func (i impl) Delete(id string) error {
	existed, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if existed == nil {
		return ErrPageNotFound
	}
	if err = i.store.Delete(id); err != nil {
		return err
	}
	log.WithField("page_id", id).Info("page supprimée")
	return nil
}

func (i impl) Generate(ctx context.Context, request pageapimodels.GenerateRequest) (pageapimodels.GenerateResponse, error) {
	if i.generator == nil {
		return pageapimodels.GenerateResponse{}, ErrGenerationDisabled
	}
	if err := request.Validate(); err != nil {
		return pageapimodels.GenerateResponse{}, err
	}
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	text := fmt.Sprintf("Rédige une page sur le sujet : %s.", strings.TrimSpace(request.Topic))
	if len(request.Keywords) > 0 {
		text += fmt.Sprintf(" Mots-clés à intégrer : %s.", strings.Join(request.Keywords, ", "))
	}
	content, err := i.generator.Complete(ctx, fmt.Sprintf(generateInstructions, i.siteName), text)
	if err != nil {
		log.WithError(err).WithField("topic", request.Topic).Error("erreur de génération du contenu de la page")
		return pageapimodels.GenerateResponse{}, err
	}
	return pageapimodels.GenerateResponse{Content: content}, nil
}

func pageFromRequest(request pageapimodels.PageData) dbmodels.Page {
	slug := request.Slug
	if slug == "" {
		slug = request.Title
	}
	category := request.Category
	if category == "" {
		category = defaultCategory
	}
	metaTitle := request.MetaTitle
	if metaTitle == "" {
		metaTitle = seo.SEOTitle([]string{request.Title}, " | ")
	}
	return dbmodels.Page{
		Title:           strings.TrimSpace(request.Title),
		Slug:            seo.Slugify(slug),
		Content:         request.Content,
		MetaTitle:       metaTitle,
		MetaDescription: seo.MetaDescription(request.MetaDescription),
		Category:        category,
		Published:       request.Published,
	}
}
