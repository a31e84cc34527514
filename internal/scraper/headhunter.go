package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/fr4nk3nst1ner/devsalary/internal/client"
	"github.com/fr4nk3nst1ner/devsalary/internal/config"
	"github.com/fr4nk3nst1ner/devsalary/internal/models"
)

const headHunterName = "headhunter"

// HeadHunter searches vacancies through the api.hh.ru public API
type HeadHunter struct {
	client   *client.Client
	cfg      config.HeadHunterConfig
	progress io.Writer
}

// NewHeadHunter creates a HeadHunter source. progress may be nil.
func NewHeadHunter(httpClient *http.Client, cfg config.HeadHunterConfig, progress io.Writer) *HeadHunter {
	headers := http.Header{}
	headers.Set("User-Agent", cfg.UserAgent)
	return &HeadHunter{
		client:   client.New(httpClient, cfg.RequestsPerSecond, headers),
		cfg:      cfg,
		progress: progress,
	}
}

func (h *HeadHunter) Name() string     { return headHunterName }
func (h *HeadHunter) Title() string    { return h.cfg.Title }
func (h *HeadHunter) Currency() string { return h.cfg.Currency }

// Search fetches every page for keyword. The page count and the found total
// are taken from the first page.
func (h *HeadHunter) Search(ctx context.Context, keyword string) (models.SearchResult, error) {
	var result models.SearchResult

	progress := newPageProgress(h.progress, "hh "+keyword)
	defer progress.finish()

	pages := 1
	for page := 0; page < pages; page++ {
		body, err := h.client.GetJSON(ctx, h.cfg.BaseURL, h.params(keyword, page))
		if err != nil {
			return models.SearchResult{}, fmt.Errorf("page %d: %w", page, err)
		}

		doc, err := parseBody(body)
		if err != nil {
			return models.SearchResult{}, fmt.Errorf("page %d: %w", page, err)
		}

		if page == 0 {
			pages = int(doc.Get("pages").Int())
			result.Found = int(doc.Get("found").Int())
			progress.start(pages)
		}

		doc.Get("items").ForEach(func(_, item gjson.Result) bool {
			result.Listings = append(result.Listings, parseHeadHunterItem(item))
			return true
		})
		progress.increment()

		log.Debug().
			Str("source", headHunterName).
			Str("language", keyword).
			Int("page", page).
			Int("pages", pages).
			Msg("Fetched page")
	}

	return result, nil
}

func (h *HeadHunter) params(keyword string, page int) url.Values {
	params := url.Values{}
	params.Set("text", strings.ToLower(keyword))
	if h.cfg.Area != "" {
		params.Set("area", h.cfg.Area)
	}
	params.Set("per_page", strconv.Itoa(h.cfg.PerPage))
	params.Set("page", strconv.Itoa(page))
	return params
}

func parseHeadHunterItem(item gjson.Result) models.Listing {
	listing := models.Listing{
		ID:          idString(item.Get("id")),
		Title:       item.Get("name").String(),
		Requirement: item.Get("snippet.requirement").String(),
		Employer:    item.Get("employer.name").String(),
		URL:         item.Get("alternate_url").String(),
		Source:      headHunterName,
	}

	salary := item.Get("salary")
	if salary.IsObject() {
		listing.Salary = &models.Salary{
			Currency: salary.Get("currency").String(),
			From:     bound(salary.Get("from")),
			To:       bound(salary.Get("to")),
		}
	}
	return listing
}
