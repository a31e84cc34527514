package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/fr4nk3nst1ner/devsalary/internal/client"
	"github.com/fr4nk3nst1ner/devsalary/internal/config"
	"github.com/fr4nk3nst1ner/devsalary/internal/models"
)

const superJobName = "superjob"

// SuperJob searches vacancies through the api.superjob.ru 2.0 API
type SuperJob struct {
	client   *client.Client
	cfg      config.SuperJobConfig
	progress io.Writer
}

// NewSuperJob creates a SuperJob source. progress may be nil.
func NewSuperJob(httpClient *http.Client, cfg config.SuperJobConfig, progress io.Writer) *SuperJob {
	headers := http.Header{}
	headers.Set("X-Api-App-Id", cfg.SecretKey)
	return &SuperJob{
		client:   client.New(httpClient, cfg.RequestsPerSecond, headers),
		cfg:      cfg,
		progress: progress,
	}
}

func (s *SuperJob) Name() string     { return superJobName }
func (s *SuperJob) Title() string    { return s.cfg.Title }
func (s *SuperJob) Currency() string { return s.cfg.Currency }

// Search fetches pages for keyword until the API reports there are no more.
func (s *SuperJob) Search(ctx context.Context, keyword string) (models.SearchResult, error) {
	var result models.SearchResult

	progress := newPageProgress(s.progress, "sj "+keyword)
	defer progress.finish()

	for page := 0; ; page++ {
		body, err := s.client.GetJSON(ctx, s.cfg.BaseURL, s.params(keyword, page))
		if err != nil {
			return models.SearchResult{}, fmt.Errorf("page %d: %w", page, err)
		}

		doc, err := parseBody(body)
		if err != nil {
			return models.SearchResult{}, fmt.Errorf("page %d: %w", page, err)
		}

		result.Found = int(doc.Get("total").Int())
		if page == 0 {
			progress.start(s.pageCount(result.Found))
		} else {
			progress.setTotal(s.pageCount(result.Found))
		}

		objects := doc.Get("objects").Array()
		for _, object := range objects {
			result.Listings = append(result.Listings, s.parseItem(object))
		}
		progress.increment()

		log.Debug().
			Str("source", superJobName).
			Str("language", keyword).
			Int("page", page).
			Int("objects", len(objects)).
			Msg("Fetched page")

		// an empty page with more=true would otherwise loop forever
		if !doc.Get("more").Bool() || len(objects) == 0 {
			break
		}
	}

	return result, nil
}

func (s *SuperJob) pageCount(total int) int {
	pages := (total + s.cfg.Count - 1) / s.cfg.Count
	if pages < 1 {
		pages = 1
	}
	return pages
}

func (s *SuperJob) params(keyword string, page int) url.Values {
	params := url.Values{}
	params.Set("keyword", keyword)
	if s.cfg.Town != "" {
		params.Set("town", s.cfg.Town)
	}
	if s.cfg.Catalogues != "" {
		params.Set("catalogues", s.cfg.Catalogues)
	}
	params.Set("count", strconv.Itoa(s.cfg.Count))
	params.Set("page", strconv.Itoa(page))
	return params
}

// parseItem maps one SuperJob object. SuperJob has no separate salary record,
// the payment fields sit on the vacancy itself.
func (s *SuperJob) parseItem(object gjson.Result) models.Listing {
	return models.Listing{
		ID:          idString(object.Get("id")),
		Title:       object.Get("profession").String(),
		Requirement: object.Get("candidat").String(),
		Employer:    object.Get("firm_name").String(),
		URL:         object.Get("link").String(),
		Source:      superJobName,
		Salary: &models.Salary{
			Currency: object.Get("currency").String(),
			From:     bound(object.Get("payment_from")),
			To:       bound(object.Get("payment_to")),
		},
	}
}
