package config

import (
	"os"

	"gopkg.in/yaml.v3"

	positivuserrors "github.com/alexisbeaulieu97/positivus/pkg/errors"
)

// Assets controls how logical asset ids map to URLs.
type Assets struct {
	BasePath  string `yaml:"base_path" validate:"required"`
	Extension string `yaml:"extension" validate:"required,startswith=."`
}

// Settings holds catalog-wide options read from positivus.yaml.
type Settings struct {
	Assets     Assets `yaml:"assets"`
	Stylesheet string `yaml:"stylesheet,omitempty"`
	// Backgrounds maps a background name to its CSS color.
	Backgrounds       map[string]string `yaml:"backgrounds" validate:"required,min=1,dive,keys,required,endkeys,hexcolor"`
	DefaultBackground string            `yaml:"default_background" validate:"required"`
	// StoryOrder lists the title sections that sort first, in order.
	StoryOrder []string `yaml:"story_order,omitempty"`
	// StoryFiles are extra story documents loaded next to the built-in deck.
	StoryFiles []string `yaml:"story_files,omitempty" validate:"omitempty,dive,required"`
	LogLevel   string   `yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() Settings {
	return Settings{
		Assets: Assets{
			BasePath:  "/assets/images",
			Extension: ".svg",
		},
		Stylesheet: "/assets/positivus.css",
		Backgrounds: map[string]string{
			"white": "#FFFFFF",
			"grey":  "#F3F3F3",
			"dark":  "#191A23",
		},
		DefaultBackground: "white",
		StoryOrder:        []string{"Design Guidelines", "Components"},
		LogLevel:          "info",
	}
}

// LoadSettings reads a settings file over the defaults. An empty path
// returns the defaults unchanged.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, positivuserrors.NewParseError(path, 0, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, positivuserrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateSettings(settings); err != nil {
		return Settings{}, err
	}

	return settings, nil
}

// ValidateSettings checks field rules and that the default background is one
// of the declared backgrounds.
func ValidateSettings(s Settings) error {
	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(err)
	}
	if _, ok := s.Backgrounds[s.DefaultBackground]; !ok {
		return positivuserrors.NewValidationError("default_background", "default_background must name a declared background", nil)
	}
	return nil
}

// BackgroundColor returns the CSS color for name, falling back to the
// default background.
func (s Settings) BackgroundColor(name string) string {
	if color, ok := s.Backgrounds[name]; ok {
		return color
	}
	return s.Backgrounds[s.DefaultBackground]
}
