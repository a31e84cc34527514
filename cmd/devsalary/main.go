package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"

	"github.com/fr4nk3nst1ner/devsalary/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		log := logger.Get()
		log.Error().Err(err).Msg("devsalary failed")
		stop()
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "devsalary",
		Usage: "Average salaries of programming languages on HeadHunter and SuperJob",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "Path to YAML config", EnvVars: []string{"DEVSALARY_CONFIG"}},
			&cli.StringFlag{Name: "source", Aliases: []string{"s"}, Value: "all", Usage: "Source to query (hh, sj, all)"},
			&cli.StringSliceFlag{Name: "language", Aliases: []string{"l"}, Usage: "Language to benchmark, repeatable (default: languages from config)"},
			&cli.BoolFlag{Name: "strict", Usage: "Drop vacancies whose title and requirements do not mention the language"},
			&cli.BoolFlag{Name: "json", Usage: "Print reports as JSON instead of tables"},
			&cli.BoolFlag{Name: "debug", Usage: "Enable debug logging"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "Hide progress bars"},
			&cli.BoolFlag{Name: "silence", Aliases: []string{"nobanner"}, Usage: "Silence the banner"},
		},
		Before: func(c *cli.Context) error {
			logger.Init(c.Bool("debug"))
			return nil
		},
		Action: ReportAction,
		Commands: []*cli.Command{
			{
				Name:   "languages",
				Usage:  "List the configured languages",
				Action: LanguagesAction,
			},
			{
				Name:   "examples",
				Usage:  "Show usage examples",
				Action: ExamplesAction,
			},
		},
	}
}

// ExamplesAction displays usage examples for the program
func ExamplesAction(c *cli.Context) error {
	w := c.App.Writer
	fmt.Fprintln(w, "\n📋 devsalary Usage Examples 📋")
	fmt.Fprintln(w, "\n1. Benchmark the default languages on both HeadHunter and SuperJob:")
	fmt.Fprintln(w, "   SJ_SECRET_KEY=... devsalary")

	fmt.Fprintln(w, "\n2. Only HeadHunter, only Go and Python:")
	fmt.Fprintln(w, "   devsalary -source hh -l Go -l Python")

	fmt.Fprintln(w, "\n3. SuperJob with a custom config and no banner:")
	fmt.Fprintln(w, "   devsalary -source sj -config ./config.yaml -silence")

	fmt.Fprintln(w, "\n4. Only count vacancies that mention the language, print JSON:")
	fmt.Fprintln(w, "   devsalary -strict -json -q")
	return nil
}
