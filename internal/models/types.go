package models

// Salary is the salary sub-record of a listing. A bound is present only when it
// is non-nil and positive; both sources report a missing bound as null or 0.
type Salary struct {
	Currency string   `json:"currency"`
	From     *float64 `json:"from,omitempty"`
	To       *float64 `json:"to,omitempty"`
}

// HasFrom reports whether the lower bound is present
func (s Salary) HasFrom() bool {
	return s.From != nil && *s.From > 0
}

// HasTo reports whether the upper bound is present
func (s Salary) HasTo() bool {
	return s.To != nil && *s.To > 0
}

// Listing represents one job vacancy returned by a source API
type Listing struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Requirement string  `json:"requirement,omitempty"`
	Employer    string  `json:"employer,omitempty"`
	URL         string  `json:"url,omitempty"`
	Salary      *Salary `json:"salary,omitempty"`
	Source      string  `json:"source"`
}

// SearchResult holds every listing a source returned for one query together with
// the total the source claims to have found.
type SearchResult struct {
	Listings []Listing
	Found    int
}

// LanguageAggregate is the per-language salary summary
type LanguageAggregate struct {
	Language           string `json:"language"`
	VacanciesFound     int    `json:"vacancies_found"`
	VacanciesProcessed int    `json:"vacancies_processed"`
	AverageSalary      *int   `json:"average_salary"`
}

// Report is the ordered set of aggregates produced for one source
type Report struct {
	Title      string              `json:"title"`
	Source     string              `json:"source"`
	Currency   string              `json:"currency"`
	Aggregates []LanguageAggregate `json:"aggregates"`
}

// Float returns a pointer to v, handy for building salary bounds
func Float(v float64) *float64 {
	return &v
}
