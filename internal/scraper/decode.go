package scraper

import (
	"errors"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/fr4nk3nst1ner/devsalary/internal/models"
)

// ErrInvalidResponse is returned when a source answers with something that is not JSON
var ErrInvalidResponse = errors.New("invalid JSON response")

func parseBody(body []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, ErrInvalidResponse
	}
	return gjson.ParseBytes(body), nil
}

// bound returns a salary bound, or nil when the field is missing, null or not a number
func bound(r gjson.Result) *float64 {
	if r.Type != gjson.Number {
		return nil
	}
	return models.Float(r.Float())
}

// idString renders an id that may come as a string (HeadHunter) or a number (SuperJob)
func idString(r gjson.Result) string {
	if r.Type == gjson.Number {
		return strconv.FormatInt(r.Int(), 10)
	}
	return r.String()
}
