package config

import (
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/positivus/internal/ui/components"
	"github.com/alexisbeaulieu97/positivus/internal/ui/variant"
	positivuserrors "github.com/alexisbeaulieu97/positivus/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern     = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	storyTitlePattern = regexp.MustCompile(`^[^/\s][^/]*(?:/[^/\s][^/]*)*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("story_title", func(fl validator.FieldLevel) bool {
			return storyTitlePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("kind", func(fl validator.FieldLevel) bool {
			kind, ok := variant.ParseKind(fl.Field().String())
			return ok && slices.Contains(components.Buildable(), kind)
		})

		validateInst = v
	})

	return validateInst
}

// ValidateDocument performs schema and cross-field validation on a story
// document.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return positivuserrors.NewValidationError("document", "document is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(doc); err != nil {
		return convertValidationError(err)
	}

	titles := make(map[string]int, len(doc.Components))
	for i, component := range doc.Components {
		if prev, exists := titles[component.Title]; exists {
			return positivuserrors.NewValidationError(fieldForComponent(i, "title"), fmt.Sprintf("duplicate title %q (also components[%d])", component.Title, prev), nil)
		}
		titles[component.Title] = i

		if err := validateStories(i, component); err != nil {
			return err
		}
	}

	return nil
}

func validateStories(index int, component Component) error {
	names := make(map[string]struct{}, len(component.Stories))
	for j, story := range component.Stories {
		field := fmt.Sprintf("components[%d].stories[%d]", index, j)

		if _, exists := names[story.Name]; exists {
			return positivuserrors.NewValidationError(field+".name", fmt.Sprintf("duplicate story name %q", story.Name), nil)
		}
		names[story.Name] = struct{}{}

		switch {
		case story.Gallery != nil && len(story.Args) > 0:
			return positivuserrors.NewValidationError(field, "args and gallery are mutually exclusive", nil)
		case story.Gallery != nil:
			if err := validateGallery(field+".gallery", *story.Gallery); err != nil {
				return err
			}
		case component.StoryKind(story) == "":
			return positivuserrors.NewValidationError(field+".kind", "kind is required when the component declares none", nil)
		}
	}
	return nil
}

func validateGallery(field string, g Gallery) error {
	if len(g.Entries) > 0 && len(g.Groups) > 0 {
		return positivuserrors.NewValidationError(field, "entries and groups are mutually exclusive", nil)
	}
	if len(g.Entries) == 0 && len(g.Groups) == 0 {
		return positivuserrors.NewValidationError(field, "gallery needs entries or groups", nil)
	}
	for i, group := range g.Groups {
		if len(group.Groups) > 0 {
			return positivuserrors.NewValidationError(fmt.Sprintf("%s.groups[%d]", field, i), "groups cannot be nested", nil)
		}
		if err := validateGallery(fmt.Sprintf("%s.groups[%d]", field, i), group); err != nil {
			return err
		}
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return positivuserrors.NewValidationError(field, msg, err)
	}

	return positivuserrors.NewValidationError("document", err.Error(), err)
}

// yamlishFieldName drops the root type name from the namespace, leaving the
// YAML path of the field.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func fieldForComponent(index int, field string) string {
	return fmt.Sprintf("components[%d].%s", index, field)
}
