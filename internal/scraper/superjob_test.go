package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/devsalary/internal/client"
	"github.com/fr4nk3nst1ner/devsalary/internal/config"
)

func superJobConfig(baseURL string) config.SuperJobConfig {
	cfg := config.Default().SuperJob
	cfg.BaseURL = baseURL
	cfg.SecretKey = "v3.r.secret"
	cfg.Count = 2
	cfg.RequestsPerSecond = 0
	return cfg
}

func TestSuperJobSearch(t *testing.T) {
	var pages []int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "v3.r.secret", r.Header.Get("X-Api-App-Id"))
		assert.Equal(t, "Go", r.URL.Query().Get("keyword"))
		assert.Equal(t, "4", r.URL.Query().Get("town"))
		assert.Equal(t, "2", r.URL.Query().Get("count"))
		assert.Empty(t, r.URL.Query().Get("catalogues"))

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		pages = append(pages, page)

		more := page < 1
		fmt.Fprintf(w, `{
			"total": 4,
			"more": %t,
			"objects": [
				{"id": %d, "profession": "Go developer", "firm_name": "Acme", "link": "https://superjob.ru/v/1",
				 "candidat": "Go, PostgreSQL", "payment_from": 0, "payment_to": 200000, "currency": "rub"},
				{"id": %d, "profession": "Backend developer", "payment_from": 0, "payment_to": 0, "currency": "rub"}
			]
		}`, more, page*10+1, page*10+2)
	}))
	defer server.Close()

	sj := NewSuperJob(server.Client(), superJobConfig(server.URL), nil)
	result, err := sj.Search(context.Background(), "Go")
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, pages)
	assert.Equal(t, 4, result.Found)
	require.Len(t, result.Listings, 4)

	first := result.Listings[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "Go developer", first.Title)
	assert.Equal(t, "Go, PostgreSQL", first.Requirement)
	assert.Equal(t, "superjob", first.Source)
	require.NotNil(t, first.Salary)
	assert.Equal(t, "rub", first.Salary.Currency)
	assert.False(t, first.Salary.HasFrom())
	assert.True(t, first.Salary.HasTo())

	second := result.Listings[1]
	assert.False(t, second.Salary.HasFrom())
	assert.False(t, second.Salary.HasTo())
}

func TestSuperJobSearchStopsOnEmptyPage(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"total": 0, "more": true, "objects": []}`)
	}))
	defer server.Close()

	sj := NewSuperJob(server.Client(), superJobConfig(server.URL), nil)
	result, err := sj.Search(context.Background(), "Go")
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Empty(t, result.Listings)
}

func TestSuperJobSearchSendsCatalogues(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "48", r.URL.Query().Get("catalogues"))
		fmt.Fprint(w, `{"total": 0, "more": false, "objects": []}`)
	}))
	defer server.Close()

	cfg := superJobConfig(server.URL)
	cfg.Catalogues = "48"
	_, err := NewSuperJob(server.Client(), cfg, nil).Search(context.Background(), "Go")
	require.NoError(t, err)
}

func TestSuperJobSearchFailsOnStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := NewSuperJob(server.Client(), superJobConfig(server.URL), nil).Search(context.Background(), "Go")

	assert.ErrorIs(t, err, client.ErrUnexpectedStatus)
}

func TestSuperJobPageCount(t *testing.T) {
	sj := &SuperJob{cfg: config.SuperJobConfig{Count: 100}}
	assert.Equal(t, 1, sj.pageCount(0))
	assert.Equal(t, 1, sj.pageCount(100))
	assert.Equal(t, 2, sj.pageCount(101))
}
