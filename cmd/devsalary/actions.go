package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/fr4nk3nst1ner/devsalary/internal/client"
	"github.com/fr4nk3nst1ner/devsalary/internal/config"
	"github.com/fr4nk3nst1ner/devsalary/internal/models"
	"github.com/fr4nk3nst1ner/devsalary/internal/salary"
	"github.com/fr4nk3nst1ner/devsalary/internal/scraper"
	"github.com/fr4nk3nst1ner/devsalary/internal/ui"
	"github.com/fr4nk3nst1ner/devsalary/internal/utils"
)

// ReportAction fetches, aggregates and renders one report per selected source
func ReportAction(c *cli.Context) error {
	source := strings.ToLower(c.String("source"))
	if !utils.IsValidSource(source) {
		return fmt.Errorf("invalid source %q: must be one of hh, sj, all", source)
	}

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if languages := c.StringSlice("language"); len(languages) > 0 {
		cfg.Languages = languages
	}

	useHH := source == utils.SourceHeadHunter || source == utils.SourceAll
	useSJ := source == utils.SourceSuperJob || source == utils.SourceAll
	if err := cfg.Validate(useSJ); err != nil {
		return err
	}

	asJSON := c.Bool("json")
	if !asJSON {
		ui.PrintBanner(c.Bool("silence"))
	}

	progress := scraper.ProgressWriter(c.Bool("quiet") || asJSON)
	httpClient := client.CreateHTTPClient()

	var sources []salary.Source
	if useHH {
		sources = append(sources, scraper.NewHeadHunter(httpClient, cfg.HeadHunter, progress))
	}
	if useSJ {
		sources = append(sources, scraper.NewSuperJob(httpClient, cfg.SuperJob, progress))
	}

	opts := salary.Options{Strict: c.Bool("strict")}
	var reports []*models.Report
	for _, src := range sources {
		report, err := salary.Collect(c.Context, src, cfg.Languages, opts)
		if err != nil {
			return err
		}
		reports = append(reports, report)
	}

	if asJSON {
		return ui.RenderJSON(c.App.Writer, reports)
	}
	for _, report := range reports {
		if err := ui.RenderTable(c.App.Writer, report); err != nil {
			return err
		}
	}
	return nil
}

// LanguagesAction prints the languages that would be benchmarked
func LanguagesAction(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	for _, language := range cfg.Languages {
		fmt.Fprintln(c.App.Writer, language)
	}
	return nil
}
