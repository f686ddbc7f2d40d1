package indexingclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Provider talks to the paid URL indexing service used to push new pages to
// search engines.
type Provider interface {
	Status(ctx context.Context) (string, error)
	Balance(ctx context.Context) (int64, error)
	Submit(ctx context.Context, projectName string, urls []string) (SubmitResult, error)
}

type SubmitResult struct {
	ProjectID string `json:"project_id"`
	Accepted  int    `json:"accepted"`
}

type impl struct {
	host   string
	apiKey string
	client *http.Client
}

func NewClient(host, apiKey string) Provider {
	return impl{
		host:   strings.TrimRight(host, "/"),
		apiKey: apiKey,
		client: &http.Client{Timeout: requestTimeout},
	}
}

const (
	requestTimeout = 30 * time.Second
	statusPath     = "%s/status"
	balancePath    = "%s/balance"
	projectsPath   = "%s/projects"
	apiKeyHeader   = "X-Api-Key"
)

type statusResponse struct {
	Status string `json:"status"`
}

type balanceResponse struct {
	Balance int64 `json:"balance"`
}

type submitRequest struct {
	Name string   `json:"name"`
	URLs []string `json:"urls"`
}

func (i impl) Status(ctx context.Context) (string, error) {
	uri := fmt.Sprintf(statusPath, i.host)
	logger := log.WithField("external_request", uri)
	r, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return "", errors.Wrap(err, "erreur de création de la requête")
	}
	resp := statusResponse{}
	if err = i.sendRequest(logger, r, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}

func (i impl) Balance(ctx context.Context) (int64, error) {
	uri := fmt.Sprintf(balancePath, i.host)
	logger := log.WithField("external_request", uri)
	r, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return 0, errors.Wrap(err, "erreur de création de la requête")
	}
	resp := balanceResponse{}
	if err = i.sendRequest(logger, r, &resp); err != nil {
		return 0, err
	}
	return resp.Balance, nil
}

func (i impl) Submit(ctx context.Context, projectName string, urls []string) (SubmitResult, error) {
	uri := fmt.Sprintf(projectsPath, i.host)
	body, err := json.Marshal(submitRequest{Name: projectName, URLs: urls})
	if err != nil {
		return SubmitResult{}, errors.Wrap(err, "erreur de sérialisation de la requête")
	}
	logger := log.
		WithField("external_request", uri).
		WithField("project_name", projectName).
		WithField("url_count", len(urls))
	r, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, bytes.NewReader(body))
	if err != nil {
		return SubmitResult{}, errors.Wrap(err, "erreur de création de la requête")
	}
	r.Header.Set("Content-Type", "application/json")
	resp := SubmitResult{}
	if err = i.sendRequest(logger, r, &resp); err != nil {
		return SubmitResult{}, err
	}
	return resp, nil
}

func (i impl) sendRequest(logger *log.Entry, r *http.Request, out interface{}) error {
	r.Header.Set(apiKeyHeader, i.apiKey)
	r.Header.Set("Accept", "application/json")
	resp, err := i.client.Do(r)
	if err != nil {
		logger.WithError(err).Error("erreur d'appel au service d'indexation")
		return errors.Wrap(err, "erreur d'appel au service d'indexation")
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "erreur de lecture de la réponse")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.
			WithField("status_code", resp.StatusCode).
			WithField("response_body", string(body)).
			Warn("le service d'indexation a refusé la requête")
		return errors.Errorf("le service d'indexation a répondu avec le statut %v", resp.StatusCode)
	}
	if err = json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "erreur de désérialisation de la réponse")
	}
	return nil
}
