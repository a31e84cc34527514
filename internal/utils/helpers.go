package utils

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dustin/go-humanize"
)

// Characters that, when glued to a keyword, make it part of a different word.
// '+' and '#' are included so that "C" does not match "C++" or "C#".
const wordChars = `\p{L}\p{N}_+#`

// Sources supported by the CLI
const (
	SourceHeadHunter = "hh"
	SourceSuperJob   = "sj"
	SourceAll        = "all"
)

// IsValidSource checks if the source is supported
func IsValidSource(source string) bool {
	validSources := map[string]bool{
		SourceHeadHunter: true,
		SourceSuperJob:   true,
		SourceAll:        true,
	}
	return validSources[strings.ToLower(source)]
}

// StripHTML returns the text content of an HTML fragment, e.g. the
// <highlighttext> markup HeadHunter puts around matched keywords
func StripHTML(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return fragment
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// MatchesKeyword reports whether text mentions keyword as a standalone word,
// ignoring case and any HTML markup in text
func MatchesKeyword(text, keyword string) bool {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" || text == "" {
		return false
	}
	re := regexp.MustCompile(`(?i)(?:^|[^` + wordChars + `])` + regexp.QuoteMeta(keyword) + `(?:$|[^` + wordChars + `])`)
	return re.MatchString(StripHTML(text))
}

// FormatSalary formats a salary with thousands separators, "-" when absent
func FormatSalary(salary *int) string {
	if salary == nil {
		return "-"
	}
	return humanize.Comma(int64(*salary))
}
