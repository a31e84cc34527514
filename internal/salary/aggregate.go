package salary

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/fr4nk3nst1ner/devsalary/internal/models"
	"github.com/fr4nk3nst1ner/devsalary/internal/utils"
)

// Source is anything that can search vacancies for a keyword
type Source interface {
	Name() string
	Title() string
	Currency() string
	Search(ctx context.Context, keyword string) (models.SearchResult, error)
}

// Aggregate summarises the listings found for one language. found is the total
// reported by the source; it is raised to len(listings) if the source
// under-reports so that processed never exceeds found.
func Aggregate(language string, listings []models.Listing, found int, currency string) models.LanguageAggregate {
	if found < len(listings) {
		found = len(listings)
	}

	var (
		sum       float64
		processed int
	)
	for _, listing := range listings {
		estimate, ok := Estimate(listing.Salary, currency)
		if !ok {
			continue
		}
		sum += estimate
		processed++
	}

	agg := models.LanguageAggregate{
		Language:           language,
		VacanciesFound:     found,
		VacanciesProcessed: processed,
	}
	if processed > 0 {
		average := int(sum / float64(processed))
		agg.AverageSalary = &average
	}
	return agg
}

// Options tune Collect
type Options struct {
	// Strict drops listings whose title and requirement text do not mention the language
	Strict bool
}

// Collect searches src for every language in order and aggregates the results.
// The first fetch error aborts the whole run.
func Collect(ctx context.Context, src Source, languages []string, opts Options) (*models.Report, error) {
	report := &models.Report{
		Title:      src.Title(),
		Source:     src.Name(),
		Currency:   src.Currency(),
		Aggregates: make([]models.LanguageAggregate, 0, len(languages)),
	}

	for _, language := range languages {
		result, err := src.Search(ctx, language)
		if err != nil {
			return nil, fmt.Errorf("%s: search %q: %w", src.Name(), language, err)
		}

		listings := result.Listings
		if opts.Strict {
			listings = FilterByKeyword(listings, language)
		}

		agg := Aggregate(language, listings, result.Found, src.Currency())
		log.Info().
			Str("source", src.Name()).
			Str("language", language).
			Int("found", agg.VacanciesFound).
			Int("processed", agg.VacanciesProcessed).
			Msg("Aggregated vacancies")

		report.Aggregates = append(report.Aggregates, agg)
	}

	return report, nil
}

// FilterByKeyword keeps listings whose title or requirement mentions keyword
func FilterByKeyword(listings []models.Listing, keyword string) []models.Listing {
	var kept []models.Listing
	for _, listing := range listings {
		if utils.MatchesKeyword(listing.Title, keyword) || utils.MatchesKeyword(listing.Requirement, keyword) {
			kept = append(kept, listing)
		}
	}
	return kept
}
