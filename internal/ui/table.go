package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/devsalary/internal/models"
	"github.com/fr4nk3nst1ner/devsalary/internal/utils"
)

var tableHeader = []string{
	"Language",
	"Vacancies found",
	"Vacancies processed",
	"Average salary",
}

// ColorizeSalary applies color formatting to an average salary in roubles
func ColorizeSalary(salary *int) string {
	formatted := utils.FormatSalary(salary)
	if salary == nil {
		return pterm.Gray(formatted)
	}

	switch {
	case *salary >= 250000:
		return pterm.Green(formatted)
	case *salary >= 150000:
		return pterm.LightGreen(formatted)
	case *salary >= 80000:
		return pterm.Yellow(formatted)
	default:
		return pterm.Red(formatted)
	}
}

// TableData lays a report out as rows, header first, in the report's language order
func TableData(report *models.Report) pterm.TableData {
	data := pterm.TableData{tableHeader}
	for _, agg := range report.Aggregates {
		data = append(data, []string{
			agg.Language,
			strconv.Itoa(agg.VacanciesFound),
			strconv.Itoa(agg.VacanciesProcessed),
			ColorizeSalary(agg.AverageSalary),
		})
	}
	return data
}

// RenderTable writes the report as a titled table
func RenderTable(w io.Writer, report *models.Report) error {
	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(TableData(report)).
		Srender()
	if err != nil {
		return fmt.Errorf("failed to render %s table: %w", report.Source, err)
	}

	if report.Title != "" {
		fmt.Fprintln(w, pterm.Bold.Sprint(report.Title))
	}
	fmt.Fprintln(w, table)
	return nil
}

// RenderJSON writes reports as indented JSON
func RenderJSON(w io.Writer, reports []*models.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}
