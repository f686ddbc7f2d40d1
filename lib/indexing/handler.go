package indexing

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	indexingclient "pv-leads-backend/lib/indexing/indexing-client"
	"pv-leads-backend/lib/sitemap"
	initchecker "pv-leads-backend/lib/utils/init-checker"
	indexingapimodels "pv-leads-backend/models/api/indexing"
)

const projectPrefix = "Indexation_"

var ErrIndexingDisabled = errors.New("le service d'indexation n'est pas configuré")

type Provider interface {
	URLs(kind string) (indexingapimodels.URLList, error)
	Status(ctx context.Context) (indexingapimodels.StatusView, error)
	Submit(ctx context.Context, request indexingapimodels.SubmitRequest) (indexingapimodels.SubmitResponse, error)
}

var Instance Provider

// NewHandler takes a nil client when the indexing service is not configured.
func NewHandler(client indexingclient.Provider) {
	instance := impl{
		sitemap: sitemap.Instance,
		client:  client,
		now:     time.Now,
	}
	initchecker.CheckInit(
		"sitemap", instance.sitemap,
	)
	Instance = instance
}

type impl struct {
	sitemap sitemap.Provider
	client  indexingclient.Provider
	now     func() time.Time
}

func (i impl) URLs(kind string) (indexingapimodels.URLList, error) {
	urls, err := i.sitemap.KindURLs(kind)
	if err != nil {
		return indexingapimodels.URLList{}, err
	}
	return indexingapimodels.URLList{Kind: kind, Count: len(urls), URLs: urls}, nil
}

// Status reports the service state, the balance is left empty when it cannot be read.
func (i impl) Status(ctx context.Context) (indexingapimodels.StatusView, error) {
	if i.client == nil {
		return indexingapimodels.StatusView{Status: indexingapimodels.StatusDisabled}, nil
	}
	status, err := i.client.Status(ctx)
	if err != nil {
		return indexingapimodels.StatusView{}, errors.Wrap(err, "erreur de lecture du statut d'indexation")
	}
	view := indexingapimodels.StatusView{Status: status}
	balance, err := i.client.Balance(ctx)
	if err != nil {
		log.WithError(err).Warn("solde du service d'indexation indisponible")
		return view, nil
	}
	view.Balance = &balance
	return view, nil
}

func (i impl) Submit(ctx context.Context, request indexingapimodels.SubmitRequest) (indexingapimodels.SubmitResponse, error) {
	if i.client == nil {
		return indexingapimodels.SubmitResponse{}, ErrIndexingDisabled
	}
	urls := uniqueURLs(request.URLs)
	if len(urls) == 0 {
		return indexingapimodels.SubmitResponse{}, errors.New("aucune URL à indexer")
	}
	projectName := strings.TrimSpace(request.ProjectName)
	if projectName == "" {
		projectName = projectPrefix + i.now().Format("2006-01-02")
	}
	result, err := i.client.Submit(ctx, projectName, urls)
	if err != nil {
		return indexingapimodels.SubmitResponse{}, errors.Wrap(err, "erreur d'envoi des URL à indexer")
	}
	log.
		WithField("project_name", projectName).
		WithField("url_count", len(urls)).
		Info("URL envoyées à l'indexation")
	return indexingapimodels.SubmitResponse{
		ProjectName: projectName,
		ProjectID:   result.ProjectID,
		Submitted:   len(urls),
		Accepted:    result.Accepted,
	}, nil
}

func uniqueURLs(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}
	return result
}
