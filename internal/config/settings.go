package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"lms/internal/listview"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix      = "LMS_"
	DefaultChatURL = "https://chatbot-interrait.eastus.cloudapp.azure.com/"
)

var ErrInvalidSettings = errors.New("invalid settings")

type Settings struct {
	Locale        string `koanf:"locale"`
	DefaultSort   string `koanf:"default_sort"`
	DefaultStatus string `koanf:"default_status"`
	Theme         string `koanf:"theme"`
	ChatURL       string `koanf:"chat_url"`
	Width         int    `koanf:"width"`
}

func defaults() map[string]any {
	return map[string]any{
		"locale":         "en",
		"default_sort":   string(listview.SortDueDateAsc),
		"default_status": string(listview.StatusAll),
		"theme":          "auto",
		"chat_url":       DefaultChatURL,
		"width":          0,
	}
}

// LoadSettings merges defaults, the YAML file at path (if it exists) and
// LMS_* environment variables, in increasing order of precedence.
func LoadSettings(path string) (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("error reading config file %s: %w", path, err)
			}
		}
	}

	// LMS_DEFAULT_SORT -> default_sort
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) Validate() error {
	var errs []error
	if _, err := listview.ParseLocale(s.Locale); err != nil {
		errs = append(errs, fmt.Errorf("locale: %w", err))
	}
	if _, err := listview.ParseSortKey(s.DefaultSort); err != nil {
		errs = append(errs, fmt.Errorf("default_sort: %w", err))
	}
	if _, err := listview.ParseStatusFilter(s.DefaultStatus); err != nil {
		errs = append(errs, fmt.Errorf("default_status: %w", err))
	}
	switch strings.ToLower(s.Theme) {
	case "", "auto", "light", "dark":
	default:
		errs = append(errs, fmt.Errorf("theme: unknown value %q", s.Theme))
	}
	if s.Width < 0 {
		errs = append(errs, fmt.Errorf("width: must not be negative, got %d", s.Width))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, errors.Join(errs...))
	}
	return nil
}

// Query returns the initial query state for a list view. Settings are
// validated on load, so parse errors cannot occur here.
func (s *Settings) Query() listview.QueryState {
	q := listview.DefaultQuery()
	if k, err := listview.ParseSortKey(s.DefaultSort); err == nil {
		q.Sort = k
	}
	if f, err := listview.ParseStatusFilter(s.DefaultStatus); err == nil {
		q.Status = f
	}
	return q
}

func (s *Settings) Collation() listview.Collation {
	c, err := listview.ParseLocale(s.Locale)
	if err != nil {
		return listview.Collation{}
	}
	return c
}
