package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, hhURL, sjURL string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := fmt.Sprintf(`
languages: [Go, Python]
headhunter:
  base_url: %s
  requests_per_second: -1
superjob:
  base_url: %s
  secret_key: test-key
  requests_per_second: -1
`, hhURL, sjURL)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func newHeadHunterServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("text") {
		case "go":
			fmt.Fprint(w, `{"found": 2, "pages": 1, "items": [
				{"id": "1", "name": "Go developer", "salary": {"from": 100, "to": 200, "currency": "RUR"}},
				{"id": "2", "name": "Go developer", "salary": {"from": null, "to": 200, "currency": "RUR"}}
			]}`)
		default:
			fmt.Fprint(w, `{"found": 1, "pages": 1, "items": [
				{"id": "3", "name": "Python developer", "salary": {"from": 100, "to": 200, "currency": "USD"}}
			]}`)
		}
	}))
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.RunContext(context.Background(), append([]string{"devsalary"}, args...))
	return out.String(), err
}

func TestReportActionJSON(t *testing.T) {
	hh := newHeadHunterServer()
	defer hh.Close()

	path := writeConfig(t, hh.URL, "http://127.0.0.1:1")
	out, err := runApp(t, "--config", path, "--source", "hh", "--json", "--silence")
	require.NoError(t, err)

	var reports []struct {
		Title      string `json:"title"`
		Aggregates []struct {
			Language           string `json:"language"`
			VacanciesFound     int    `json:"vacancies_found"`
			VacanciesProcessed int    `json:"vacancies_processed"`
			AverageSalary      *int   `json:"average_salary"`
		} `json:"aggregates"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "HeadHunter Moscow", reports[0].Title)

	aggs := reports[0].Aggregates
	require.Len(t, aggs, 2)
	assert.Equal(t, "Go", aggs[0].Language)
	assert.Equal(t, 2, aggs[0].VacanciesProcessed)
	require.NotNil(t, aggs[0].AverageSalary)
	assert.Equal(t, 155, *aggs[0].AverageSalary)

	assert.Equal(t, "Python", aggs[1].Language)
	assert.Equal(t, 1, aggs[1].VacanciesFound)
	assert.Equal(t, 0, aggs[1].VacanciesProcessed)
	assert.Nil(t, aggs[1].AverageSalary)
}

func TestReportActionLanguageFlag(t *testing.T) {
	hh := newHeadHunterServer()
	defer hh.Close()

	path := writeConfig(t, hh.URL, "http://127.0.0.1:1")
	out, err := runApp(t, "--config", path, "--source", "hh", "--json", "--language", "Python")
	require.NoError(t, err)
	assert.Contains(t, out, `"Python"`)
	assert.NotContains(t, out, `"Go"`)
}

func TestReportActionAbortsOnHTTPError(t *testing.T) {
	sj := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer sj.Close()

	path := writeConfig(t, "http://127.0.0.1:1", sj.URL)
	_, err := runApp(t, "--config", path, "--source", "sj", "--json")
	assert.Error(t, err)
}

func TestReportActionInvalidSource(t *testing.T) {
	_, err := runApp(t, "--source", "linkedin")
	assert.ErrorContains(t, err, "invalid source")
}

func TestLanguagesAction(t *testing.T) {
	path := writeConfig(t, "http://127.0.0.1:1", "http://127.0.0.1:1")
	out, err := runApp(t, "--config", path, "languages")
	require.NoError(t, err)
	assert.Equal(t, "Go\nPython\n", out)
}
