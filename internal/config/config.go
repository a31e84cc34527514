package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks for the YAML file when no path is given
const DefaultPath = "config.yaml"

// ErrMissingSecret is returned when SuperJob is selected without an API secret
var ErrMissingSecret = errors.New("SJ_SECRET_KEY is required for SuperJob")

// Config represents the application configuration
type Config struct {
	Languages  []string         `yaml:"languages"`
	HeadHunter HeadHunterConfig `yaml:"headhunter"`
	SuperJob   SuperJobConfig   `yaml:"superjob"`
}

type HeadHunterConfig struct {
	BaseURL           string  `yaml:"base_url"`
	Title             string  `yaml:"title"`
	UserAgent         string  `yaml:"user_agent"` // Prefer HH_USER_AGENT env var
	Area              string  `yaml:"area"`
	PerPage           int     `yaml:"per_page"`
	Currency          string  `yaml:"currency"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

type SuperJobConfig struct {
	BaseURL           string  `yaml:"base_url"`
	Title             string  `yaml:"title"`
	SecretKey         string  `yaml:"secret_key"` // Prefer SJ_SECRET_KEY env var
	Town              string  `yaml:"town"`
	Catalogues        string  `yaml:"catalogues"`
	Count             int     `yaml:"count"`
	Currency          string  `yaml:"currency"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

// Load reads .env (if any), then the YAML file at path (if any), then applies
// environment overrides and fills in defaults for anything left unset.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	if path == "" {
		path = DefaultPath
	}

	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if key := os.Getenv("SJ_SECRET_KEY"); key != "" {
		c.SuperJob.SecretKey = key
	}
	if ua := os.Getenv("HH_USER_AGENT"); ua != "" {
		c.HeadHunter.UserAgent = ua
	}
	if rps := os.Getenv("HH_REQUESTS_PER_SECOND"); rps != "" {
		v, err := strconv.ParseFloat(rps, 64)
		if err != nil {
			return fmt.Errorf("invalid HH_REQUESTS_PER_SECOND: %w", err)
		}
		c.HeadHunter.RequestsPerSecond = v
	}
	return nil
}

func (c *Config) applyDefaults() {
	def := Default()

	if len(c.Languages) == 0 {
		c.Languages = def.Languages
	}

	hh := &c.HeadHunter
	if hh.BaseURL == "" {
		hh.BaseURL = def.HeadHunter.BaseURL
	}
	if hh.Title == "" {
		hh.Title = def.HeadHunter.Title
	}
	if hh.UserAgent == "" {
		hh.UserAgent = def.HeadHunter.UserAgent
	}
	if hh.Area == "" {
		hh.Area = def.HeadHunter.Area
	}
	if hh.PerPage <= 0 || hh.PerPage > 100 {
		hh.PerPage = def.HeadHunter.PerPage
	}
	if hh.Currency == "" {
		hh.Currency = def.HeadHunter.Currency
	}
	if hh.RequestsPerSecond == 0 {
		hh.RequestsPerSecond = def.HeadHunter.RequestsPerSecond
	}

	sj := &c.SuperJob
	if sj.BaseURL == "" {
		sj.BaseURL = def.SuperJob.BaseURL
	}
	if sj.Title == "" {
		sj.Title = def.SuperJob.Title
	}
	if sj.Town == "" {
		sj.Town = def.SuperJob.Town
	}
	if sj.Count <= 0 || sj.Count > 100 {
		sj.Count = def.SuperJob.Count
	}
	if sj.Currency == "" {
		sj.Currency = def.SuperJob.Currency
	}
	if sj.RequestsPerSecond == 0 {
		sj.RequestsPerSecond = def.SuperJob.RequestsPerSecond
	}
}

// Validate checks that the selected sources can run
func (c *Config) Validate(useSuperJob bool) error {
	if useSuperJob && c.SuperJob.SecretKey == "" {
		return ErrMissingSecret
	}
	if len(c.Languages) == 0 {
		return errors.New("at least one language is required")
	}
	return nil
}

// Default returns the configuration used when nothing else is set
func Default() *Config {
	return &Config{
		Languages: []string{
			"TypeScript",
			"Swift",
			"Scala",
			"Objective-C",
			"Shell",
			"Go",
			"C",
			"C#",
			"C++",
			"PHP",
			"Ruby",
			"Python",
			"Java",
			"JavaScript",
		},
		HeadHunter: HeadHunterConfig{
			BaseURL:           "https://api.hh.ru/vacancies",
			Title:             "HeadHunter Moscow",
			UserAgent:         "salary_benchmarking_app/1.2",
			Area:              "1",
			PerPage:           100,
			Currency:          "RUR",
			RequestsPerSecond: 5,
		},
		SuperJob: SuperJobConfig{
			BaseURL:           "https://api.superjob.ru/2.0/vacancies/",
			Title:             "SuperJob Moscow",
			Town:              "4",
			Count:             100,
			Currency:          "rub",
			RequestsPerSecond: 2,
		},
	}
}
