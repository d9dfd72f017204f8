package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	positivuserrors "github.com/alexisbeaulieu97/positivus/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseStories loads a story file from disk, validates it, and returns the
// resulting document.
func ParseStories(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, positivuserrors.NewParseError(path, 0, err)
	}
	return ParseStoriesBytes(path, data)
}

// ParseStoriesBytes parses and validates story file contents. name is only
// used in error messages.
func ParseStoriesBytes(name string, data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, positivuserrors.NewParseError(name, extractLine(err), err)
	}

	if err := ValidateDocument(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
