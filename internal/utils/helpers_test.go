package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesKeyword(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		keyword string
		want    bool
	}{
		{"exact word", "Senior Go developer", "Go", true},
		{"case insensitive", "senior GO developer", "go", true},
		{"prefix of another word", "Google Cloud engineer", "Go", false},
		{"C does not match C++", "Разработчик C++", "C", false},
		{"C does not match C#", "C# developer", "C", false},
		{"C++ matches itself", "Разработчик C++ (Qt)", "C++", true},
		{"C# at end of text", "Backend C#", "C#", true},
		{"Java does not match JavaScript", "JavaScript developer", "Java", false},
		{"highlight markup is stripped", "Опыт работы с <highlighttext>Python</highlighttext>", "Python", true},
		{"keyword inside markup only", "<highlighttext>Go</highlighttext>lang", "Go", false},
		{"cyrillic neighbours", "Программист-Go", "Go", true},
		{"empty keyword", "anything", "", false},
		{"empty text", "", "Go", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesKeyword(tt.text, tt.keyword))
		})
	}
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "plain text", StripHTML("plain text"))
	assert.Equal(t, "Знание Go и SQL", StripHTML("Знание <highlighttext>Go</highlighttext> и   SQL"))
	assert.Equal(t, "R&D", StripHTML("R&amp;D"))
}

func TestFormatSalary(t *testing.T) {
	v := 1234567
	assert.Equal(t, "1,234,567", FormatSalary(&v))
	assert.Equal(t, "-", FormatSalary(nil))
}

func TestIsValidSource(t *testing.T) {
	assert.True(t, IsValidSource("hh"))
	assert.True(t, IsValidSource("SJ"))
	assert.True(t, IsValidSource("all"))
	assert.False(t, IsValidSource("linkedin"))
}
