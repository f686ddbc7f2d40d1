package indexingapimodels

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// MaxSubmitURLs caps one indexing project.
const MaxSubmitURLs = 10000

const StatusDisabled = "disabled"

type URLList struct {
	Kind  string   `json:"kind"`
	Count int      `json:"count"`
	URLs  []string `json:"urls"`
}

type StatusView struct {
	Status  string `json:"status"`
	Balance *int64 `json:"balance"`
}

type SubmitRequest struct {
	ProjectName string   `json:"project_name"`
	URLs        []string `json:"urls"`
}

func (r SubmitRequest) Validate() error {
	if len(r.URLs) > MaxSubmitURLs {
		return errors.Errorf("trop d'URL, maximum %v par projet", MaxSubmitURLs)
	}
	filled := 0
	for _, value := range r.URLs {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		parsed, err := url.Parse(value)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			return errors.Errorf("URL invalide: %s", value)
		}
		filled++
	}
	if filled == 0 {
		return errors.New("aucune URL à indexer")
	}
	return nil
}

type SubmitResponse struct {
	ProjectName string `json:"project_name"`
	ProjectID   string `json:"project_id"`
	Submitted   int    `json:"submitted"`
	Accepted    int    `json:"accepted"`
}
