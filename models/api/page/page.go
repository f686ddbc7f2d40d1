package pageapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	apimodels "pv-leads-backend/models/api"
	dbmodels "pv-leads-backend/models/db"
)

type PageData struct {
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	Content         string `json:"content"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	Category        string `json:"category"`
	Published       bool   `json:"published"`
}

func (r PageData) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("titre de la page non renseigné")
	}
	return nil
}

type PageView struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Content         string    `json:"content"`
	MetaTitle       string    `json:"meta_title"`
	MetaDescription string    `json:"meta_description"`
	Category        string    `json:"category"`
	Published       bool      `json:"published"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type PageFilter struct {
	apimodels.Pagination
	Category  string `json:"category"`
	Published *bool  `json:"published"`
}

type GenerateRequest struct {
	Topic    string   `json:"topic"`
	Keywords []string `json:"keywords"`
}

func (r GenerateRequest) Validate() error {
	if len([]rune(strings.TrimSpace(r.Topic))) < 3 {
		return errors.New("sujet de la page trop court")
	}
	return nil
}

type GenerateResponse struct {
	Content string `json:"content"`
}

func PageConvert(rec dbmodels.Page) PageView {
	return PageView{
		ID:              rec.ID,
		Title:           rec.Title,
		Slug:            rec.Slug,
		Content:         rec.Content,
		MetaTitle:       rec.MetaTitle,
		MetaDescription: rec.MetaDescription,
		Category:        rec.Category,
		Published:       rec.Published,
		UpdatedAt:       rec.UpdatedAt,
	}
}
