package config

import (
	"errors"
	"os"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Environment variables naming the notes service base URL. EnvAPIURL takes
// precedence; the settings file is the last fallback.
const (
	EnvAPIURL         = "NOTED_API_URL"
	EnvAPIURLFallback = "NOTES_API_URL"
)

const defaultSearchDebounceMS = 200

type Settings struct {
	API     APISettings     `toml:"api"`
	UI      UISettings      `toml:"ui"`
	Logging LoggingSettings `toml:"logging"`
}

type APISettings struct {
	BaseURL string `toml:"base_url"`
}

type UISettings struct {
	SearchDebounceMS int   `toml:"search_debounce_ms"`
	MarkdownPreview  *bool `toml:"markdown_preview"`
}

type LoggingSettings struct {
	Level string `toml:"level"`
}

func DefaultSettings() Settings {
	return Settings{
		UI: UISettings{
			SearchDebounceMS: defaultSearchDebounceMS,
		},
		Logging: LoggingSettings{
			Level: "info",
		},
	}
}

// LoadSettings reads the settings file, tolerating its absence.
func LoadSettings() (Settings, error) {
	path, err := SettingsPath()
	if err != nil {
		return DefaultSettings(), err
	}
	return loadSettingsFromPath(path)
}

func loadSettingsFromPath(path string) (Settings, error) {
	settings := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, err
	}
	if err := toml.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), err
	}
	return settings, nil
}

// APIBaseURL resolves the base URL: NOTED_API_URL first, then NOTES_API_URL,
// then the settings file. Trailing slashes are stripped. Empty means
// unconfigured; nothing is silently defaulted.
func (s Settings) APIBaseURL() string {
	for _, env := range []string{EnvAPIURL, EnvAPIURLFallback} {
		if value := strings.TrimSpace(os.Getenv(env)); value != "" {
			return strings.TrimRight(value, "/")
		}
	}
	return strings.TrimRight(strings.TrimSpace(s.API.BaseURL), "/")
}

// SearchDebounce returns the debounce delay for the search box.
func (s Settings) SearchDebounce() time.Duration {
	ms := s.UI.SearchDebounceMS
	if ms <= 0 {
		ms = defaultSearchDebounceMS
	}
	return time.Duration(ms) * time.Millisecond
}

// MarkdownPreviewEnabled reports whether the markdown preview toggle is
// available. Defaults to on.
func (s Settings) MarkdownPreviewEnabled() bool {
	if s.UI.MarkdownPreview == nil {
		return true
	}
	return *s.UI.MarkdownPreview
}

func (s Settings) LogLevel() string {
	level := strings.TrimSpace(s.Logging.Level)
	if level == "" {
		return "info"
	}
	return level
}

// Render serializes the effective settings as TOML.
func (s Settings) Render() (string, error) {
	out, err := toml.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
