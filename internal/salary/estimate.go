package salary

import (
	"github.com/fr4nk3nst1ner/devsalary/internal/models"
)

const (
	onlyToFactor   = 0.8
	onlyFromFactor = 1.2
	midpointFactor = 0.5
)

type bounds struct {
	from bool
	to   bool
}

type rule func(from, to float64) (float64, bool)

// rules maps which bounds are present to the way the estimate is derived
var rules = map[bounds]rule{
	{from: false, to: false}: func(_, _ float64) (float64, bool) { return 0, false },
	{from: false, to: true}:  func(_, to float64) (float64, bool) { return to * onlyToFactor, true },
	{from: true, to: false}:  func(from, _ float64) (float64, bool) { return from * onlyFromFactor, true },
	{from: true, to: true}:   func(from, to float64) (float64, bool) { return (from + to) * midpointFactor, true },
}

// Estimate converts a salary record into a single value in the expected currency.
// The second return value is false when no estimate can be made: the record is
// missing, is in another currency or carries no usable bound.
func Estimate(s *models.Salary, currency string) (float64, bool) {
	if s == nil || s.Currency != currency {
		return 0, false
	}

	var from, to float64
	if s.HasFrom() {
		from = *s.From
	}
	if s.HasTo() {
		to = *s.To
	}

	return rules[bounds{from: s.HasFrom(), to: s.HasTo()}](from, to)
}
