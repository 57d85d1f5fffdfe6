package http

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/weatherlookup/backend/internal/domain"
)

const (
	MinCityLength = 2
	MaxCityLength = 100
)

var (
	markupPattern = regexp.MustCompile(`<[^>]*>`)
	cityStripper  = strings.NewReplacer("<", "", ">", "", `"`, "", "'", "", "&", "", ";", "")
	cityPattern   = regexp.MustCompile(`^[\p{L}\p{M}\p{Zs}\s\-'.]+$`)

	validate = newValidator()
)

// cityQuery is the validated form of the city query parameter.
// min and max count runes.
type cityQuery struct {
	City string `validate:"min=2,max=100,city"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("city", func(fl validator.FieldLevel) bool {
		return cityPattern.MatchString(fl.Field().String())
	})
	return v
}

// SanitizeCity drops markup tags, strips < > " ' & ; and trims whitespace
func SanitizeCity(city string) string {
	city = markupPattern.ReplaceAllString(city, "")
	return strings.TrimSpace(cityStripper.Replace(city))
}

// ValidateCity sanitizes raw and checks it, returning the sanitized city or a validation error
func ValidateCity(raw string) (string, error) {
	if raw == "" {
		return "", domain.NewValidationError("city parameter is required")
	}

	q := cityQuery{City: SanitizeCity(raw)}
	if err := validate.Struct(q); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) || len(verrs) == 0 {
			return "", domain.NewValidationError("invalid city name")
		}
		switch verrs[0].Tag() {
		case "min":
			return "", domain.NewValidationError("city name must have at least %d characters", MinCityLength)
		case "max":
			return "", domain.NewValidationError("city name must not exceed %d characters", MaxCityLength)
		default:
			return "", domain.NewValidationError("city name contains invalid characters")
		}
	}

	return q.City, nil
}
